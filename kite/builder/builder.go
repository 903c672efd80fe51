// Package builder converts the concrete syntax tree produced by package
// parser into the AST of package ast.
//
// The conversion walks the syntax tree once, top-down, and constructs every
// AST node after its children. There is one conversion method per grammar
// production. Build expects a tree without syntax errors; callers check
// the parser's error list first. A tree that does not have the shape the
// parser guarantees is a programming error: Build stops at the first such
// place and returns an error wrapping ErrMalformedTree. It never guesses a
// replacement shape.
package builder

import (
	"errors"
	"fmt"

	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/parser"
)

// ErrMalformedTree is wrapped by every error Build returns.
var ErrMalformedTree = errors.New("malformed syntax tree")

// StructuralError describes where the syntax tree deviated from the shape
// the parser produces.
type StructuralError struct {
	Kind    parser.NodeKind
	Pos     parser.Position
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// Build converts a CompilationUnit syntax tree.
func Build(root *parser.Node) (unit *ast.CompilationUnit, err error) {
	defer recoverStructural(&err)
	if root == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrMalformedTree)
	}
	b := &builder{}
	return b.compilationUnit(root), nil
}

// BuildExpression converts the tree returned by parser.ParseExpression.
func BuildExpression(root *parser.Node) (expr ast.Expr, err error) {
	defer recoverStructural(&err)
	if root == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrMalformedTree)
	}
	b := &builder{}
	return b.expression(root), nil
}

func recoverStructural(err *error) {
	r := recover()
	if r == nil {
		return
	}
	se, ok := r.(*StructuralError)
	if !ok {
		panic(r)
	}
	*err = fmt.Errorf("%w: %w", ErrMalformedTree, se)
}

type builder struct{}

func (b *builder) fail(n *parser.Node, format string, args ...any) {
	se := &StructuralError{Message: fmt.Sprintf(format, args...)}
	if n != nil {
		se.Kind = n.Kind
		se.Pos = n.Span.Start
		if n.IsError() && n.Error != nil {
			se.Message += ": " + n.Error.Message
		}
	}
	panic(se)
}

func (b *builder) unexpected(n *parser.Node, context string) {
	b.fail(n, "unexpected %s in %s", n.Kind, context)
}

func pos(n *parser.Node) ast.Position {
	return ast.Position{Line: n.Span.Start.Line, Column: n.Span.Start.Column}
}

func at(n *parser.Node) ast.At {
	return ast.At{Position: pos(n)}
}

// cursor reads the children of a node in order.
type cursor struct {
	b    *builder
	node *parser.Node
	i    int
}

func (b *builder) cursor(n *parser.Node) *cursor {
	if n.IsError() {
		b.fail(n, "syntax error in tree")
	}
	return &cursor{b: b, node: n}
}

func (c *cursor) peek() *parser.Node {
	if c.i < len(c.node.Children) {
		return c.node.Children[c.i]
	}
	return nil
}

// next returns the next child, which must exist.
func (c *cursor) next() *parser.Node {
	child := c.peek()
	if child == nil {
		c.b.fail(c.node, "missing child %d", c.i)
	}
	if child.IsError() {
		c.b.fail(child, "syntax error in tree")
	}
	c.i++
	return child
}

// optional consumes the next child if it has one of kinds.
func (c *cursor) optional(kinds ...parser.NodeKind) *parser.Node {
	child := c.peek()
	if child == nil {
		return nil
	}
	for _, kind := range kinds {
		if child.Kind == kind {
			c.i++
			return child
		}
	}
	return nil
}

// expect consumes the next child, which must have one of kinds.
func (c *cursor) expect(kinds ...parser.NodeKind) *parser.Node {
	child := c.next()
	for _, kind := range kinds {
		if child.Kind == kind {
			return child
		}
	}
	c.b.fail(child, "expected %v in %s", kinds, c.node.Kind)
	return nil
}

// many consumes consecutive children of kind.
func (c *cursor) many(kind parser.NodeKind) []*parser.Node {
	var out []*parser.Node
	for {
		child := c.optional(kind)
		if child == nil {
			return out
		}
		out = append(out, child)
	}
}

func (c *cursor) rest() []*parser.Node {
	out := c.node.Children[c.i:]
	c.i = len(c.node.Children)
	for _, child := range out {
		if child.IsError() {
			c.b.fail(child, "syntax error in tree")
		}
	}
	return out
}

// done fails if children are left over.
func (c *cursor) done() {
	if child := c.peek(); child != nil {
		c.b.fail(child, "unexpected %s in %s", child.Kind, c.node.Kind)
	}
}

func (b *builder) identifier(n *parser.Node) string {
	if n == nil || n.Kind != parser.KindIdentifier {
		b.fail(n, "expected identifier")
	}
	return n.TokenLiteral()
}

func (b *builder) qualifiedName(n *parser.Node) *ast.QualifiedName {
	c := b.cursor(n)
	name := &ast.QualifiedName{At: at(n)}
	for c.peek() != nil {
		name.Parts = append(name.Parts, b.identifier(c.next()))
	}
	if len(name.Parts) == 0 {
		b.fail(n, "empty qualified name")
	}
	return name
}
