package check

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/kitejava/diag"
	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/builder"
	"github.com/dhamidi/kitejava/kite/parser"
)

func build(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	p := parser.ParseCompilationUnit(strings.NewReader(src))
	root, err := p.Finish()
	require.NoError(t, err)
	require.Empty(t, p.Errors())
	unit, err := builder.Build(root)
	require.NoError(t, err)
	return unit
}

// messages renders diagnostics as line:column: severity: message.
func messages(diags []diag.Diagnostic) []string {
	var out []string
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		file string
		src  string
		want []string
	}{
		{
			name: "valid class",
			file: "A.kite",
			src:  "@Deprecated public final class A extends B of I, J { public static void m(int a, int b) {} }",
		},
		{
			name: "duplicate top-level modifier",
			file: "A.kite",
			src:  "public public class A {}",
			want: []string{`1:8: error: duplicate modifier public`},
		},
		{
			name: "duplicate member modifier",
			file: "A.kite",
			src:  "class A {\n  static public static int x;\n}",
			want: []string{`2:17: error: duplicate modifier static`},
		},
		{
			name: "file name mismatch",
			file: "src/demo/Other.kite",
			src:  "package demo;\nclass A {}",
			want: []string{`2:7: error: type A must be declared in a file named A.kite, not Other.kite`},
		},
		{
			name: "top-level modifiers",
			file: "A.kite",
			src:  "private static class A {}",
			want: []string{
				`1:1: error: modifier private not allowed on a top-level type`,
				`1:9: error: modifier static not allowed on a top-level type`,
			},
		},
		{
			name: "nested types may be private",
			file: "A.kite",
			src:  "class A { private static class B {} }",
		},
		{
			name: "duplicate type parameters",
			file: "A.kite",
			src:  "class A<T, U, T> { <V, V> void m() {} }",
			want: []string{
				`1:15: error: duplicate type parameter T`,
				`1:24: error: duplicate type parameter V`,
			},
		},
		{
			name: "duplicate of interfaces",
			file: "A.kite",
			src:  "class A of I, List<String>, I, List<Integer> {}",
			want: []string{`1:29: error: duplicate interface I in of clause`},
		},
		{
			name: "duplicate extends interfaces",
			file: "A.kite",
			src:  "interface A extends I, java.io.Serializable, java.io.Serializable {}",
			want: []string{`1:46: error: duplicate interface java.io.Serializable in extends clause`},
		},
		{
			name: "duplicate exceptions",
			file: "A.kite",
			src:  "class A { A() throws E, E {} void m() throws E, F, E, E {} }",
			want: []string{
				`1:25: error: duplicate exception type E in throws clause`,
				`1:52: error: duplicate exception type E in throws clause`,
				`1:55: error: duplicate exception type E in throws clause`,
			},
		},
		{
			name: "duplicate parameters",
			file: "A.kite",
			src:  "class A { void m(int a, String a) {} Runnable r = (x, x) -> {}; }",
			want: []string{
				`1:25: error: duplicate parameter a`,
				`1:55: error: duplicate parameter x`,
			},
		},
		{
			name: "abstract interface",
			file: "A.kite",
			src:  "public abstract interface A { interface B {} abstract interface C {} }",
			want: []string{
				`1:8: warning: redundant modifier abstract on interface A`,
				`1:46: warning: redundant modifier abstract on interface C`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := messages(Validate(build(t, tt.src), tt.file))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiagnosticsInDocumentOrder(t *testing.T) {
	src := `public public class A<T, T> {
    void m(final final int a, int a) throws E, E {}
}`
	got := messages(Validate(build(t, src), "A.kite"))
	want := []string{
		`1:8: error: duplicate modifier public`,
		`1:26: error: duplicate type parameter T`,
		`2:18: error: duplicate modifier final`,
		`2:31: error: duplicate parameter a`,
		`2:48: error: duplicate exception type E in throws clause`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
}

func TestOnlyLaterOccurrencesAreReported(t *testing.T) {
	unit := build(t, "class A { public public public void m() {} }")
	diags := Validate(unit, "A.kite")
	require.Len(t, diags, 2)
	method := unit.Type.(*ast.ClassDecl).Members[0].(*ast.MethodDecl)
	assert.Equal(t, method.Modifiers[1].Pos(), diags[0].Pos)
	assert.Equal(t, method.Modifiers[2].Pos(), diags[1].Pos)
}

func TestImplicitFinalIsNotADuplicate(t *testing.T) {
	unit := build(t, "class A { void m(final int a, int b, mutable int c) { int d = 1; } }")
	assert.Empty(t, Validate(unit, "A.kite"))
}

func TestValidateIsDeterministic(t *testing.T) {
	unit := build(t, "public public interface B extends I, I {}")
	first := Validate(unit, "A.kite")
	second := Validate(unit, "A.kite")
	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
	assert.False(t, diag.HasErrors(Apply(unit, RedundantInterfaceAbstract)))
}

func TestApplySingleRule(t *testing.T) {
	unit := build(t, "abstract interface A {}")
	diags := Apply(unit, RedundantInterfaceAbstract)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.Warning, diags[0].Severity)
	assert.False(t, diag.HasErrors(Validate(unit, "A.kite")))
}
