package format

import (
	"encoding/json"
	"io"
	"reflect"
	"sort"

	"github.com/dhamidi/kitejava/kite/ast"
)

// ASTJSONEncoder writes a Kite syntax tree as indented JSON.
type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(node ast.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *ASTJSONEncoder) MarshalText(node ast.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type astJSONNode struct {
	Kind     string            `json:"kind"`
	Pos      *astJSONPosition  `json:"pos,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []*astJSONNode    `json:"children,omitempty"`
}

type astJSONPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func nodeToJSON(n ast.Node) *astJSONNode {
	jn := &astJSONNode{
		Kind:  n.Kind().String(),
		Attrs: nodeAttrs(n),
	}
	if pos := n.Pos(); pos.IsValid() {
		jn.Pos = &astJSONPosition{Line: pos.Line, Column: pos.Column}
	}
	for _, child := range n.Children() {
		jn.Children = append(jn.Children, nodeToJSON(child))
	}
	return jn
}

// nodeAttrs collects the scalar fields of a node: non-empty strings and
// set booleans. Sub-nodes and positions are left to the tree structure.
func nodeAttrs(n ast.Node) map[string]string {
	v := reflect.Indirect(reflect.ValueOf(n))
	if v.Kind() != reflect.Struct {
		return nil
	}
	attrs := map[string]string{}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.String:
			if s := fv.String(); s != "" {
				attrs[f.Name] = s
			}
		case reflect.Bool:
			if fv.Bool() {
				attrs[f.Name] = "true"
			}
		}
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
