package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/parser"
)

// LineEncoder writes a syntax tree as an outline with one node per line,
// indented by depth. Fields are tab separated: kind, position, details.
type LineEncoder struct {
	w io.Writer
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

// EncodeAST writes the outline of a Kite syntax tree.
func (e *LineEncoder) EncodeAST(node ast.Node) error {
	var sb strings.Builder
	writeASTLines(&sb, node, 0)
	_, err := io.WriteString(e.w, sb.String())
	return err
}

// EncodeCST writes the outline of a concrete syntax tree followed by one
// line per kept comment.
func (e *LineEncoder) EncodeCST(node *parser.Node, comments []parser.Token) error {
	var sb strings.Builder
	writeCSTLines(&sb, node, 0)
	for _, c := range comments {
		fmt.Fprintf(&sb, "%s\t%d:%d\t%q\n", commentKind(c.Kind), c.Span.Start.Line, c.Span.Start.Column, c.Literal)
	}
	_, err := io.WriteString(e.w, sb.String())
	return err
}

func writeASTLines(sb *strings.Builder, n ast.Node, depth int) {
	fmt.Fprintf(sb, "%s%s\t%s\t%s\n", strings.Repeat("  ", depth), n.Kind(), n.Pos(), attrsStr(nodeAttrs(n)))
	for _, child := range n.Children() {
		writeASTLines(sb, child, depth+1)
	}
}

func writeCSTLines(sb *strings.Builder, n *parser.Node, depth int) {
	detail := "-"
	switch {
	case n.Error != nil:
		detail = "error: " + n.Error.Message
	case n.Token != nil:
		detail = n.Token.Literal
	}
	fmt.Fprintf(sb, "%s%s\t%d:%d\t%s\n", strings.Repeat("  ", depth), n.Kind, n.Span.Start.Line, n.Span.Start.Column, detail)
	for _, child := range n.Children {
		writeCSTLines(sb, child, depth+1)
	}
}

func attrsStr(attrs map[string]string) string {
	if len(attrs) == 0 {
		return "-"
	}
	var parts []string
	for _, k := range sortedKeys(attrs) {
		parts = append(parts, k+"="+attrs[k])
	}
	return strings.Join(parts, ",")
}
