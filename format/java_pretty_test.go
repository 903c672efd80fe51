package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/dhamidi/kitejava/java/jast"
)

func name(n string) *jast.Name          { return &jast.Name{Name: n} }
func lit(text string) *jast.Literal     { return &jast.Literal{Text: text} }
func prim(n string) *jast.PrimitiveType { return &jast.PrimitiveType{Name: n} }
func ann(n string) *jast.Annotation     { return &jast.Annotation{Name: n} }

func exprStmt(e jast.Expr) *jast.ExprStmt { return &jast.ExprStmt{X: e} }

func call(n string, args ...jast.Expr) *jast.MethodCall {
	return &jast.MethodCall{Name: n, Args: args}
}

func formatStmt(s jast.Stmt) string {
	var buf bytes.Buffer
	NewJavaPrettyPrinter(&buf).printStatement(s)
	return buf.String()
}

func diff(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	d, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	t.Errorf("output mismatch:\n%s", d)
}

func TestPrintExpr(t *testing.T) {
	tests := []struct {
		name     string
		input    jast.Expr
		expected string
	}{
		{
			name:     "binary",
			input:    &jast.Binary{Op: "+", Left: name("a"), Right: lit("1")},
			expected: "a + 1",
		},
		{
			name:     "prefix unary",
			input:    &jast.Unary{Op: "!", X: name("done")},
			expected: "!done",
		},
		{
			name:     "postfix unary",
			input:    &jast.Unary{Op: "++", Postfix: true, X: name("i")},
			expected: "i++",
		},
		{
			name:     "compound assignment",
			input:    &jast.Assign{Op: "+=", Target: name("sum"), Value: name("x")},
			expected: "sum += x",
		},
		{
			name:     "conditional",
			input:    &jast.Conditional{Cond: name("ok"), Then: lit("1"), Else: lit("2")},
			expected: "ok ? 1 : 2",
		},
		{
			name:     "cast",
			input:    &jast.Cast{Type: jast.NewClassType("String"), X: name("x")},
			expected: "(String) x",
		},
		{
			name: "intersection cast",
			input: &jast.Cast{
				Type: &jast.IntersectionType{Types: []jast.Type{jast.NewClassType("Runnable"), jast.NewClassType("Serializable")}},
				X:    name("x"),
			},
			expected: "(Runnable & Serializable) x",
		},
		{
			name:     "instanceof",
			input:    &jast.InstanceOf{X: name("o"), Type: jast.NewClassType("String")},
			expected: "o instanceof String",
		},
		{
			name:     "parenthesized",
			input:    &jast.Binary{Op: "*", Left: &jast.Paren{X: &jast.Binary{Op: "+", Left: name("a"), Right: name("b")}}, Right: name("c")},
			expected: "(a + b) * c",
		},
		{
			name: "generic method call",
			input: &jast.MethodCall{
				Scope:    name("Collections"),
				TypeArgs: []jast.Type{jast.NewClassType("String")},
				Name:     "emptyList",
			},
			expected: "Collections.<String>emptyList()",
		},
		{
			name:     "method reference",
			input:    &jast.MethodRef{Scope: name("String"), Name: "valueOf"},
			expected: "String::valueOf",
		},
		{
			name:     "constructor reference",
			input:    &jast.MethodRef{Scope: &jast.TypeExpr{Type: jast.ArrayOf(prim("int"), 1)}, Name: "new"},
			expected: "int[]::new",
		},
		{
			name:     "field access and index",
			input:    &jast.ArrayAccess{X: &jast.FieldAccess{Scope: &jast.This{}, Name: "items"}, Index: lit("0")},
			expected: "this.items[0]",
		},
		{
			name:     "qualified this",
			input:    &jast.This{Qualifier: "Outer"},
			expected: "Outer.this",
		},
		{
			name:     "class literal",
			input:    &jast.ClassLiteral{Type: jast.ArrayOf(jast.NewClassType("String"), 1)},
			expected: "String[].class",
		},
		{
			name: "new with diamond",
			input: &jast.New{
				Type: &jast.ClassType{Name: "ArrayList", Diamond: true},
				Args: []jast.Expr{lit("10")},
			},
			expected: "new ArrayList<>(10)",
		},
		{
			name: "qualified new",
			input: &jast.New{
				Scope: name("outer"),
				Type:  jast.NewClassType("Inner"),
			},
			expected: "outer.new Inner()",
		},
		{
			name: "array creation",
			input: &jast.NewArray{
				ElementType: prim("int"),
				Dims:        []*jast.ArrayDim{{Size: lit("2")}, {}},
			},
			expected: "new int[2][]",
		},
		{
			name: "array creation with initializer",
			input: &jast.NewArray{
				ElementType: prim("int"),
				Dims:        []*jast.ArrayDim{{}},
				Init:        &jast.ArrayInit{Values: []jast.Expr{lit("1"), lit("2")}},
			},
			expected: "new int[] {1, 2}",
		},
		{
			name: "annotated array creation",
			input: &jast.NewArray{
				ElementType: prim("int"),
				Dims:        []*jast.ArrayDim{{Annotations: []*jast.Annotation{ann("NonNull")}, Size: lit("3")}},
			},
			expected: "new int @NonNull [3]",
		},
		{
			name: "inferred lambda",
			input: &jast.Lambda{
				Params: []*jast.Parameter{{Name: "x"}},
				Body:   &jast.Binary{Op: "*", Left: name("x"), Right: lit("2")},
			},
			expected: "x -> x * 2",
		},
		{
			name: "typed lambda",
			input: &jast.Lambda{
				Params: []*jast.Parameter{
					{Type: prim("int"), Name: "a"},
					{Modifiers: []string{"final"}, Type: prim("int"), Name: "b"},
				},
				Parenthesized: true,
				Body:          &jast.Binary{Op: "+", Left: name("a"), Right: name("b")},
			},
			expected: "(int a, final int b) -> a + b",
		},
		{
			name:     "lambda without parameters",
			input:    &jast.Lambda{Parenthesized: true, Body: lit("1")},
			expected: "() -> 1",
		},
		{
			name: "annotation with pairs",
			input: &jast.Annotation{Name: "Range", Pairs: []*jast.MemberValue{
				{Name: "min", Value: lit("0")},
				{Name: "max", Value: lit("10")},
			}},
			expected: "@Range(min = 0, max = 10)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExprString(tt.input)
			if got != tt.expected {
				t.Errorf("ExprString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPrintType(t *testing.T) {
	mapType := jast.NewClassType("java", "util", "Map")
	mapType.TypeArgs = []jast.Type{
		jast.NewClassType("String"),
		&jast.ClassType{Name: "List", TypeArgs: []jast.Type{jast.NewClassType("Integer")}},
	}
	annotated := jast.NewClassType("java", "util", "List")
	annotated.Annotations = []*jast.Annotation{ann("NonNull")}

	tests := []struct {
		name     string
		input    jast.Type
		expected string
	}{
		{name: "qualified generic", input: mapType, expected: "java.util.Map<String, List<Integer>>"},
		{name: "annotated simple name", input: annotated, expected: "java.util.@NonNull List"},
		{name: "array", input: jast.ArrayOf(prim("int"), 2), expected: "int[][]"},
		{
			name: "annotated dimensions outermost first",
			input: &jast.ArrayType{
				Component:   &jast.ArrayType{Component: prim("int"), Annotations: []*jast.Annotation{ann("B")}},
				Annotations: []*jast.Annotation{ann("A")},
			},
			expected: "int @A [] @B []",
		},
		{name: "unbounded wildcard", input: &jast.WildcardType{}, expected: "?"},
		{name: "bounded wildcard", input: &jast.WildcardType{Super: jast.NewClassType("Number")}, expected: "? super Number"},
		{name: "void", input: &jast.VoidType{}, expected: "void"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypeString(tt.input)
			if got != tt.expected {
				t.Errorf("TypeString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPrintStatements(t *testing.T) {
	tests := []struct {
		name     string
		input    jast.Stmt
		expected string
	}{
		{
			name: "if else chain",
			input: &jast.IfStmt{
				Cond: name("a"),
				Then: &jast.Block{Stmts: []jast.Stmt{exprStmt(call("one"))}},
				Else: &jast.IfStmt{
					Cond: name("b"),
					Then: &jast.Block{Stmts: []jast.Stmt{exprStmt(call("two"))}},
					Else: &jast.Block{Stmts: []jast.Stmt{exprStmt(call("three"))}},
				},
			},
			expected: "if (a) {\n    one();\n} else if (b) {\n    two();\n} else {\n    three();\n}\n",
		},
		{
			name:     "if without block",
			input:    &jast.IfStmt{Cond: name("a"), Then: &jast.ReturnStmt{}},
			expected: "if (a)\n    return;\n",
		},
		{
			name: "for loop",
			input: &jast.ForStmt{
				Decl: &jast.LocalVarDecl{
					Type:      prim("int"),
					Variables: []*jast.VariableDeclarator{{Name: "i", Init: lit("0")}},
				},
				Cond:   &jast.Binary{Op: "<", Left: name("i"), Right: lit("3")},
				Update: []jast.Expr{&jast.Unary{Op: "++", Postfix: true, X: name("i")}},
				Body:   exprStmt(call("tick", name("i"))),
			},
			expected: "for (int i = 0; i < 3; i++)\n    tick(i);\n",
		},
		{
			name:     "empty for loop",
			input:    &jast.ForStmt{Body: &jast.Block{}},
			expected: "for (;;) {\n}\n",
		},
		{
			name: "for each",
			input: &jast.ForEachStmt{
				Variable: &jast.Parameter{Modifiers: []string{"final"}, Type: jast.NewClassType("String"), Name: "s"},
				Iterable: name("names"),
				Body:     &jast.Block{Stmts: []jast.Stmt{exprStmt(call("print", name("s")))}},
			},
			expected: "for (final String s : names) {\n    print(s);\n}\n",
		},
		{
			name: "do while",
			input: &jast.DoStmt{
				Body: &jast.Block{Stmts: []jast.Stmt{exprStmt(call("step"))}},
				Cond: call("more"),
			},
			expected: "do {\n    step();\n} while (more());\n",
		},
		{
			name: "labeled loop",
			input: &jast.LabeledStmt{
				Label: "outer",
				Body: &jast.WhileStmt{
					Cond: lit("true"),
					Body: &jast.Block{Stmts: []jast.Stmt{&jast.BreakStmt{Label: "outer"}}},
				},
			},
			expected: "outer: while (true) {\n    break outer;\n}\n",
		},
		{
			name: "switch",
			input: &jast.SwitchStmt{
				Selector: name("x"),
				Groups: []*jast.SwitchGroup{
					{
						Labels: []*jast.SwitchLabel{{Value: lit("1")}, {Value: lit("2")}},
						Stmts: []jast.Stmt{
							exprStmt(&jast.Assign{Op: "=", Target: name("y"), Value: lit("1")}),
							&jast.BreakStmt{},
						},
					},
					{
						Labels: []*jast.SwitchLabel{{}},
						Stmts:  []jast.Stmt{exprStmt(&jast.Assign{Op: "=", Target: name("y"), Value: lit("0")})},
					},
				},
			},
			expected: "switch (x) {\n    case 1:\n    case 2:\n        y = 1;\n        break;\n    default:\n        y = 0;\n}\n",
		},
		{
			name: "try with resources",
			input: &jast.TryStmt{
				Resources: []*jast.Resource{
					{Type: jast.NewClassType("Reader"), Name: "r", Init: call("open")},
					{Init: name("lock")},
				},
				Body: &jast.Block{Stmts: []jast.Stmt{exprStmt(call("read", name("r")))}},
				Catches: []*jast.CatchClause{{
					Modifiers: []string{"final"},
					Types:     []*jast.ClassType{jast.NewClassType("IOException"), jast.NewClassType("RuntimeException")},
					Name:      "e",
					Body:      &jast.Block{Stmts: []jast.Stmt{exprStmt(call("log", name("e")))}},
				}},
				Finally: &jast.Block{Stmts: []jast.Stmt{exprStmt(call("close"))}},
			},
			expected: "try (Reader r = open(); lock) {\n    read(r);\n} catch (final IOException | RuntimeException e) {\n    log(e);\n} finally {\n    close();\n}\n",
		},
		{
			name:     "assert with message",
			input:    &jast.AssertStmt{Cond: name("ok"), Message: lit(`"broken"`)},
			expected: "assert ok : \"broken\";\n",
		},
		{
			name:     "qualified super call",
			input:    &jast.ConstructorCall{Scope: name("outer"), Args: []jast.Expr{lit("1")}},
			expected: "outer.super(1);\n",
		},
		{
			name: "local variables",
			input: &jast.LocalVarDecl{
				Annotations: []*jast.Annotation{ann("SuppressWarnings")},
				Modifiers:   []string{"final"},
				Type:        prim("int"),
				Variables:   []*jast.VariableDeclarator{{Name: "a", Init: lit("1")}, {Name: "b"}},
			},
			expected: "@SuppressWarnings final int a = 1, b;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.expected, formatStmt(tt.input))
		})
	}
}

func TestLongArgumentListsWrap(t *testing.T) {
	a := strings.Repeat("a", 30)
	b := strings.Repeat("b", 30)
	c := strings.Repeat("c", 30)
	got := formatStmt(exprStmt(call("process", name(a), name(b), name(c))))
	want := "process(\n    " + a + ",\n    " + b + ",\n    " + c + "\n);\n"
	diff(t, want, got)

	short := formatStmt(exprStmt(call("process", name("a"), name("b"))))
	diff(t, "process(a, b);\n", short)
}

func TestLongParameterListsWrap(t *testing.T) {
	m := &jast.MethodDecl{Result: &jast.VoidType{}, Name: "configure"}
	for _, n := range []string{"firstArgument", "secondArgument", "thirdArgument", "fourthArgument"} {
		m.AddParam(&jast.Parameter{Type: jast.NewClassType("String"), Name: n})
	}
	var buf bytes.Buffer
	NewJavaPrettyPrinter(&buf).printMethodDecl(m)
	want := "void configure(\n" +
		"        String firstArgument,\n" +
		"        String secondArgument,\n" +
		"        String thirdArgument,\n" +
		"        String fourthArgument\n" +
		");\n"
	diff(t, want, buf.String())
}

func TestVarargsParameter(t *testing.T) {
	var buf bytes.Buffer
	p := NewJavaPrettyPrinter(&buf)
	p.printParameter(&jast.Parameter{
		Type:              jast.NewClassType("String"),
		Varargs:           true,
		VarargAnnotations: []*jast.Annotation{ann("NonNull")},
		Name:              "args",
	})
	if got := buf.String(); got != "String @NonNull ... args" {
		t.Errorf("printParameter() = %q", got)
	}
}

func TestPrintCompilationUnit(t *testing.T) {
	unit := jast.NewCompilationUnit()
	unit.SetPackage("demo")
	unit.AddImport("java.util.List", false, false)
	unit.AddImport("java.lang.Math", true, true)

	class := jast.NewClass("Counter")
	class.Modifiers = []string{"public"}
	class.Extends = jast.NewClassType("Base")
	class.AddImplements(jast.NewClassType("Runnable"))
	class.Body.AddMember(&jast.FieldDecl{
		Modifiers: []string{"private"},
		Type:      prim("int"),
		Variables: []*jast.VariableDeclarator{{Name: "count"}},
	})
	class.Body.AddMember(&jast.FieldDecl{
		Modifiers: []string{"private", "final"},
		Type:      jast.NewClassType("String"),
		Variables: []*jast.VariableDeclarator{{Name: "name", Init: lit(`"c"`)}},
	})

	ctor := &jast.ConstructorDecl{Modifiers: []string{"public"}, Name: "Counter", Body: &jast.Block{}}
	ctor.AddParam(&jast.Parameter{Modifiers: []string{"final"}, Type: prim("int"), Name: "start"})
	ctor.Body.Add(&jast.ConstructorCall{})
	ctor.Body.Add(exprStmt(&jast.Assign{Op: "=", Target: name("count"), Value: name("start")}))
	class.Body.AddMember(ctor)

	run := &jast.MethodDecl{
		Annotations: []*jast.Annotation{ann("Override")},
		Modifiers:   []string{"public"},
		Result:      &jast.VoidType{},
		Name:        "run",
		Body:        &jast.Block{},
	}
	run.Body.Add(&jast.IfStmt{
		Cond: &jast.Binary{Op: ">", Left: name("count"), Right: lit("0")},
		Then: &jast.Block{Stmts: []jast.Stmt{exprStmt(&jast.Unary{Op: "--", Postfix: true, X: name("count")})}},
		Else: &jast.ReturnStmt{},
	})
	run.Body.Add(&jast.LocalVarDecl{
		Type: jast.NewClassType("Runnable"),
		Variables: []*jast.VariableDeclarator{{Name: "r", Init: &jast.New{
			Type: jast.NewClassType("Runnable"),
			Body: &jast.ClassBody{Members: []jast.Member{
				&jast.MethodDecl{Modifiers: []string{"public"}, Result: &jast.VoidType{}, Name: "run", Body: &jast.Block{}},
			}},
		}}},
	})
	class.Body.AddMember(run)
	class.Body.AddMember(&jast.Initializer{Static: true, Body: &jast.Block{Stmts: []jast.Stmt{
		exprStmt(&jast.MethodCall{Scope: name("System"), Name: "gc"}),
	}}})
	class.Body.AddMember(&jast.MethodDecl{Modifiers: []string{"abstract"}, Result: prim("int"), Name: "size"})

	note := jast.NewAnnotationDecl("Note")
	note.Body.AddMember(&jast.AnnotationMember{Type: jast.NewClassType("String"), Name: "value", Default: lit(`""`)})
	class.Body.AddType(note)
	unit.AddType(class)

	want := `package demo;

import java.util.List;
import static java.lang.Math.*;

public class Counter extends Base implements Runnable {
    private int count;
    private final String name = "c";

    public Counter(final int start) {
        super();
        count = start;
    }

    @Override
    public void run() {
        if (count > 0) {
            count--;
        } else
            return;
        Runnable r = new Runnable() {
            public void run() {
            }
        };
    }

    static {
        System.gc();
    }

    abstract int size();

    @interface Note {
        String value() default "";
    }
}
`
	var buf bytes.Buffer
	if err := PrintJava(&buf, unit); err != nil {
		t.Fatalf("PrintJava() error = %v", err)
	}
	diff(t, want, buf.String())
}

func TestEmptyCompilationUnit(t *testing.T) {
	out, err := PrettyPrintJava(jast.NewCompilationUnit())
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Errorf("PrettyPrintJava() = %q, want empty", out)
	}
}
