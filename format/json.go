package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/kitejava/kite/parser"
)

// CSTJSONEncoder writes a Kite concrete syntax tree as indented JSON. The
// document names the source file and, when given, the comments the parser
// kept aside.
type CSTJSONEncoder struct {
	w io.Writer
}

func NewCSTJSONEncoder(w io.Writer) *CSTJSONEncoder {
	return &CSTJSONEncoder{w: w}
}

func (e *CSTJSONEncoder) Encode(root *parser.Node, comments []parser.Token) error {
	text, err := e.MarshalText(root, comments)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *CSTJSONEncoder) MarshalText(root *parser.Node, comments []parser.Token) ([]byte, error) {
	doc := cstJSONDocument{
		File: sourceFile(root),
		Root: cstToJSON(root),
	}
	for _, c := range comments {
		doc.Comments = append(doc.Comments, cstJSONToken{
			Kind: commentKind(c.Kind),
			Text: c.Literal,
			Span: spanToJSON(c.Span),
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

type cstJSONDocument struct {
	File     string         `json:"file,omitempty"`
	Root     *cstJSONNode   `json:"root"`
	Comments []cstJSONToken `json:"comments,omitempty"`
}

type cstJSONNode struct {
	Kind     string         `json:"kind"`
	Span     *cstJSONSpan   `json:"span,omitempty"`
	Token    *cstJSONToken  `json:"token,omitempty"`
	Error    *cstJSONError  `json:"error,omitempty"`
	Children []*cstJSONNode `json:"children,omitempty"`
}

type cstJSONToken struct {
	Kind string       `json:"kind"`
	Text string       `json:"text"`
	Span *cstJSONSpan `json:"span,omitempty"`
}

type cstJSONSpan struct {
	Start cstJSONPosition `json:"start"`
	End   cstJSONPosition `json:"end"`
}

type cstJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type cstJSONError struct {
	Message  string   `json:"message"`
	Expected []string `json:"expected,omitempty"`
	Got      string   `json:"got,omitempty"`
}

// sourceFile finds the file name recorded in the first positioned node.
func sourceFile(root *parser.Node) string {
	file := ""
	parser.Walk(root, func(n *parser.Node) bool {
		if file == "" {
			file = n.Span.Start.File
		}
		return file == ""
	})
	return file
}

func commentKind(kind parser.TokenKind) string {
	if kind == parser.TokenLineComment {
		return "LineComment"
	}
	return "BlockComment"
}

func spanToJSON(s parser.Span) *cstJSONSpan {
	if s.Start.Line == 0 && s.End.Line == 0 {
		return nil
	}
	return &cstJSONSpan{
		Start: cstJSONPosition{Line: s.Start.Line, Column: s.Start.Column},
		End:   cstJSONPosition{Line: s.End.Line, Column: s.End.Column},
	}
}

func cstToJSON(n *parser.Node) *cstJSONNode {
	jn := &cstJSONNode{
		Kind: n.Kind.String(),
		Span: spanToJSON(n.Span),
	}
	if n.Token != nil {
		jn.Token = &cstJSONToken{Kind: n.Token.Kind.String(), Text: n.Token.Literal}
	}
	if n.Error != nil {
		jn.Error = &cstJSONError{Message: n.Error.Message}
		for _, exp := range n.Error.Expected {
			jn.Error.Expected = append(jn.Error.Expected, exp.String())
		}
		if n.Error.Got != nil {
			jn.Error.Got = n.Error.Got.Literal
		}
	}
	for _, child := range n.Children {
		jn.Children = append(jn.Children, cstToJSON(child))
	}
	return jn
}
