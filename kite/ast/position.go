package ast

import "fmt"

// Position is a source location. Line is 1-based, Column is 0-based.
type Position struct {
	Line   int
	Column int
}

// NoPos marks nodes that were synthesized rather than read from source.
var NoPos = Position{Line: -1, Column: -1}

func (p Position) IsValid() bool {
	return p.Line >= 0 && p.Column >= 0
}

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes before q in the source. Invalid positions
// sort first.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// At is embedded in every node and records where the node starts.
type At struct {
	Position Position
}

func (a At) Pos() Position {
	return a.Position
}

func (At) node() {}
