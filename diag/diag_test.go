package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/parser"
)

func TestDiagnosticString(t *testing.T) {
	d := Errorf(ast.Position{Line: 3, Column: 7}, "duplicate modifier %q", "public")
	assert.Equal(t, `3:8: error: duplicate modifier "public"`, d.String())
	assert.Equal(t, `A.kite:3:8: error: duplicate modifier "public"`, d.Format("A.kite"))

	w := Warningf(ast.NoPos, "redundant")
	assert.Equal(t, "-: warning: redundant", w.String())
}

func TestCounting(t *testing.T) {
	diags := []Diagnostic{
		Warningf(ast.Position{Line: 1}, "w"),
		Errorf(ast.Position{Line: 2}, "e1"),
		Errorf(ast.Position{Line: 3}, "e2"),
	}
	assert.True(t, HasErrors(diags))
	assert.False(t, HasErrors(diags[:1]))
	assert.Equal(t, 2, Count(diags, Error))
	assert.Equal(t, 1, Count(diags, Warning))

	promoted := PromoteWarnings(diags[:1])
	assert.True(t, HasErrors(promoted))
	assert.Equal(t, Warning, diags[0].Severity, "input is not modified")
}

func TestFromSyntaxErrors(t *testing.T) {
	errs := []*parser.Error{
		{Message: "expected ';', found '}'", Pos: parser.Position{Line: 2, Column: 4}},
	}
	diags := FromSyntaxErrors(errs)
	require.Len(t, diags, 1)
	assert.Equal(t, Error, diags[0].Severity)
	assert.Equal(t, ast.Position{Line: 2, Column: 4}, diags[0].Pos)
}

func TestTranspilationFailure(t *testing.T) {
	var err error = &TranspilationFailure{
		SourceFile: "A.kite",
		Diagnostics: []Diagnostic{
			Errorf(ast.Position{Line: 1, Column: 0}, "first"),
			Warningf(ast.Position{Line: 2, Column: 1}, "second"),
		},
	}
	want := "A.kite: 1 error and 1 warning\n" +
		"A.kite:1:1: error: first\n" +
		"A.kite:2:2: warning: second"
	assert.Equal(t, want, err.Error())

	var failure *TranspilationFailure
	require.True(t, errors.As(err, &failure))
	assert.Len(t, failure.Diagnostics, 2)
}

func TestRender(t *testing.T) {
	source := []byte("public public class Counter {\n}\n")
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.SetColor(false)

	err := r.Render("Counter.kite", source, []Diagnostic{
		Errorf(ast.Position{Line: 1, Column: 7}, "duplicate modifier %q", "public"),
	})
	require.NoError(t, err)

	want := "Counter.kite:1:8: error: duplicate modifier \"public\"\n" +
		" 1 | public public class Counter {\n" +
		"   |        ^\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderExpandsTabsAndWideCharacters(t *testing.T) {
	assert.Equal(t, 4, columnWidth("a\tb", 2))
	assert.Equal(t, 8, columnWidth("\t\tx", 2))
	assert.Equal(t, 4, columnWidth("日本x", len("日本")))
	assert.Equal(t, 3, columnWidth("abc", 10))
}

func TestRenderWithoutSource(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.SetColor(false)

	require.NoError(t, r.Render("", nil, []Diagnostic{Warningf(ast.Position{Line: 4, Column: 0}, "w")}))
	assert.Equal(t, "4:1: warning: w\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Summary([]Diagnostic{Errorf(ast.NoPos, "a"), Errorf(ast.NoPos, "b")}))
	assert.Equal(t, "encountered 2 errors\n", buf.String())
}
