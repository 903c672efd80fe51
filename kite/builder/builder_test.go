package builder

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/parser"
)

func buildUnit(t *testing.T, src string) *ast.CompilationUnit {
	t.Helper()
	p := parser.ParseCompilationUnit(strings.NewReader(src), parser.WithFile("Test.kite"))
	root, err := p.Finish()
	require.NoError(t, err)
	require.Empty(t, p.Errors(), "unexpected syntax errors")
	unit, err := Build(root)
	require.NoError(t, err)
	return unit
}

func buildExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	p := parser.ParseExpression(strings.NewReader(src))
	root, err := p.Finish()
	require.NoError(t, err)
	require.Empty(t, p.Errors(), "unexpected syntax errors")
	expr, err := BuildExpression(root)
	require.NoError(t, err)
	return expr
}

// shape renders an expression as nested constructor calls.
func shape(n ast.Node) string {
	join := func(parts ...string) string { return strings.Join(parts, ",") }
	switch n := n.(type) {
	case *ast.NameExpr:
		return n.Name
	case *ast.IntegerLiteralExpr:
		return n.Value
	case *ast.LongLiteralExpr:
		return n.Value
	case *ast.StringLiteralExpr:
		return `"` + n.Value + `"`
	case *ast.FieldAccessExpr:
		return "FieldAccess(" + join(shape(n.Scope), n.Name) + ")"
	case *ast.ArrayAccessExpr:
		return "ArrayAccess(" + join(shape(n.X), shape(n.Index)) + ")"
	case *ast.MethodInvocationExpr:
		parts := []string{shape(n.Target)}
		for _, a := range n.Args {
			parts = append(parts, shape(a))
		}
		return "Invocation(" + join(parts...) + ")"
	case *ast.MethodReferenceExpr:
		return "MethodRef(" + join(shape(n.Scope), n.Name) + ")"
	case *ast.BinaryExpr:
		return "Binary(" + join(n.Op, shape(n.Left), shape(n.Right)) + ")"
	case *ast.AssignExpr:
		return "Assign(" + join(n.Op, shape(n.Target), shape(n.Value)) + ")"
	case *ast.ConditionalExpr:
		return "Cond(" + join(shape(n.Cond), shape(n.Then), shape(n.Else)) + ")"
	case *ast.UnaryExpr:
		if n.Postfix {
			return "Postfix(" + join(n.Op, shape(n.X)) + ")"
		}
		return "Unary(" + join(n.Op, shape(n.X)) + ")"
	case *ast.CastExpr:
		var parts []string
		for _, t := range n.Types {
			parts = append(parts, ast.TypeString(t))
		}
		return "Cast(" + join(append(parts, shape(n.X))...) + ")"
	case *ast.InstanceOfExpr:
		return "InstanceOf(" + join(shape(n.X), ast.TypeString(n.Type)) + ")"
	case *ast.EnclosedExpr:
		return "(" + shape(n.X) + ")"
	case *ast.ThisExpr:
		if n.Qualifier != nil {
			return n.Qualifier.String() + ".this"
		}
		return "this"
	case *ast.SuperExpr:
		if n.Qualifier != nil {
			return n.Qualifier.String() + ".super"
		}
		return "super"
	case *ast.TypeLiteralExpr:
		return "Class(" + ast.TypeString(n.Type) + ")"
	case *ast.TypeExpr:
		return "Type(" + ast.TypeString(n.Type) + ")"
	case *ast.ObjectCreationExpr:
		parts := []string{ast.TypeString(n.Type)}
		if n.Scope != nil {
			parts = append([]string{shape(n.Scope)}, parts...)
		}
		return "New(" + join(parts...) + ")"
	case *ast.LambdaExpr:
		var params []string
		for _, p := range n.Params {
			params = append(params, p.Name)
		}
		return "Lambda([" + join(params...) + "]," + shape(n.Body) + ")"
	case *ast.BlockStmt:
		return fmt.Sprintf("Block%d", len(n.Stmts))
	}
	return n.Kind().String()
}

func TestSuffixFoldIsLeftAssociated(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a.b()[0]::d", "MethodRef(ArrayAccess(Invocation(FieldAccess(a,b)),0),d)"},
		{"a.b().c[0]::d", "MethodRef(ArrayAccess(FieldAccess(Invocation(FieldAccess(a,b)),c),0),d)"},
		{"a.b.c", "FieldAccess(FieldAccess(a,b),c)"},
		{"m(1, 2)", "Invocation(m,1,2)"},
		{"a[i][j]", "ArrayAccess(ArrayAccess(a,i),j)"},
		{"x++", "Postfix(++,x)"},
		{"a.b++", "Postfix(++,FieldAccess(a,b))"},
		{"outer.new Inner()", "New(outer,Inner)"},
		{"Outer.this.x", "FieldAccess(Outer.this,x)"},
		{"super.run()", "Invocation(FieldAccess(super,run))"},
		{"Outer.super.run()", "Invocation(FieldAccess(Outer.super,run))"},
		{"String.class", "Class(String)"},
		{"java.lang.String[].class", "Class(java.lang.String[])"},
		{"int[].class", "Class(int[])"},
		{"void.class", "Class(void)"},
		{"String[]::new", "MethodRef(Type(String[]),new)"},
		{"int[]::new", "MethodRef(Type(int[]),new)"},
		{"List<String>::size", "MethodRef(Type(List<String>),size)"},
		{"System.out::println", "MethodRef(FieldAccess(System,out),println)"},
		{"this::run", "MethodRef(this,run)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shape(buildExpr(t, tt.input)))
		})
	}
}

func TestPrecedenceFollowsTreeShape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a + b * c", "Binary(+,a,Binary(*,b,c))"},
		{"a - b - c", "Binary(-,Binary(-,a,b),c)"},
		{"a * b + c", "Binary(+,Binary(*,a,b),c)"},
		{"a || b && c", "Binary(||,a,Binary(&&,b,c))"},
		{"a == b < c", "Binary(==,a,Binary(<,b,c))"},
		{"a << 1 + 2", "Binary(<<,a,Binary(+,1,2))"},
		{"(a + b) * c", "Binary(*,(Binary(+,a,b)),c)"},
		{"a = b = c", "Assign(=,a,Assign(=,b,c))"},
		{"a += b - 1", "Assign(+=,a,Binary(-,b,1))"},
		{"a ? b : c ? d : e", "Cond(a,b,Cond(c,d,e))"},
		{"-a * b", "Binary(*,Unary(-,a),b)"},
		{"!a && b", "Binary(&&,Unary(!,a),b)"},
		{"x instanceof String && y", "Binary(&&,InstanceOf(x,String),y)"},
		{"(int) x + 1", "Binary(+,Cast(int,x),1)"},
		{"(Runnable & Serializable) r", "Cast(Runnable,Serializable,r)"},
		{"x -> x + 1", "Lambda([x],Binary(+,x,1))"},
		{"(a, b) -> { }", "Lambda([a,b],Block0)"},
		{"10L + 1", "Binary(+,10L,1)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shape(buildExpr(t, tt.input)))
		})
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Expr
	}{
		{"42", &ast.IntegerLiteralExpr{Value: "42"}},
		{"0xFFL", &ast.LongLiteralExpr{Value: "0xFFL"}},
		{"1.5f", &ast.DoubleLiteralExpr{Value: "1.5f"}},
		{"'\\n'", &ast.CharLiteralExpr{Value: "\\n"}},
		{`"hi\t"`, &ast.StringLiteralExpr{Value: `hi\t`}},
		{"true", &ast.BooleanLiteralExpr{Value: true}},
		{"false", &ast.BooleanLiteralExpr{Value: false}},
		{"null", &ast.NullLiteralExpr{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := buildExpr(t, tt.input)
			assert.Equal(t, ast.Position{Line: 1, Column: 0}, got.Pos())
			assert.IsType(t, tt.want, got)
			switch want := tt.want.(type) {
			case *ast.IntegerLiteralExpr:
				assert.Equal(t, want.Value, got.(*ast.IntegerLiteralExpr).Value)
			case *ast.LongLiteralExpr:
				assert.Equal(t, want.Value, got.(*ast.LongLiteralExpr).Value)
			case *ast.DoubleLiteralExpr:
				assert.Equal(t, want.Value, got.(*ast.DoubleLiteralExpr).Value)
			case *ast.CharLiteralExpr:
				assert.Equal(t, want.Value, got.(*ast.CharLiteralExpr).Value)
			case *ast.StringLiteralExpr:
				assert.Equal(t, want.Value, got.(*ast.StringLiteralExpr).Value)
			case *ast.BooleanLiteralExpr:
				assert.Equal(t, want.Value, got.(*ast.BooleanLiteralExpr).Value)
			}
		})
	}
}

func TestArrayCreationLevelsInSourceOrder(t *testing.T) {
	e := buildExpr(t, "new int[2][n][][]")
	arr, ok := e.(*ast.ArrayCreationExpr)
	require.True(t, ok)
	assert.Equal(t, "int", ast.TypeString(arr.ElementType))
	require.Len(t, arr.Levels, 4)
	assert.Equal(t, "2", shape(arr.Levels[0].Dimension))
	assert.Equal(t, "n", shape(arr.Levels[1].Dimension))
	assert.Nil(t, arr.Levels[2].Dimension)
	assert.Nil(t, arr.Levels[3].Dimension)
	assert.Nil(t, arr.Init)

	e = buildExpr(t, "new String[][] {{\"a\"}, {}}")
	arr, ok = e.(*ast.ArrayCreationExpr)
	require.True(t, ok)
	require.Len(t, arr.Levels, 2)
	require.NotNil(t, arr.Init)
	require.Len(t, arr.Init.Values, 2)
	assert.IsType(t, &ast.ArrayInitializerExpr{}, arr.Init.Values[0])
	assert.Equal(t, []ast.Node{arr.ElementType, arr.Levels[0], arr.Levels[1], arr.Init}, arr.Children())
}

func TestObjectCreation(t *testing.T) {
	e := buildExpr(t, "new <T> java.util.ArrayList<>(10) { void run() {} }")
	obj, ok := e.(*ast.ObjectCreationExpr)
	require.True(t, ok)
	assert.Len(t, obj.TypeArgs, 1)
	assert.Equal(t, "java.util.ArrayList<>", ast.TypeString(obj.Type))
	assert.True(t, obj.Type.Diamond)
	assert.Len(t, obj.Args, 1)
	assert.True(t, obj.Anonymous)
	require.Len(t, obj.Body, 1)
	assert.IsType(t, &ast.MethodDecl{}, obj.Body[0])

	e = buildExpr(t, "new Foo()")
	obj = e.(*ast.ObjectCreationExpr)
	assert.False(t, obj.Anonymous)
	assert.Nil(t, obj.Body)
}

func TestGenericMethodCall(t *testing.T) {
	e := buildExpr(t, "Collections.<String>emptyList()")
	call, ok := e.(*ast.MethodInvocationExpr)
	require.True(t, ok)
	target, ok := call.Target.(*ast.FieldAccessExpr)
	require.True(t, ok)
	assert.Equal(t, "emptyList", target.Name)
	require.Len(t, target.TypeArgs, 1)
	assert.Equal(t, "String", ast.TypeString(target.TypeArgs[0]))
	assert.Equal(t, "emptyList", call.MethodName())
}

func TestLambdaParameters(t *testing.T) {
	e := buildExpr(t, "(int a, mutable String b) -> a")
	lambda, ok := e.(*ast.LambdaExpr)
	require.True(t, ok)
	assert.True(t, lambda.Parenthesized)
	require.Len(t, lambda.Params, 2)
	assert.True(t, ast.HasModifier(lambda.Params[0].Modifiers, "final"))
	assert.False(t, ast.HasModifier(lambda.Params[1].Modifiers, "final"))

	e = buildExpr(t, "x -> x")
	lambda = e.(*ast.LambdaExpr)
	assert.False(t, lambda.Parenthesized)
	require.Len(t, lambda.Params, 1)
	assert.Nil(t, lambda.Params[0].Type)
	assert.Empty(t, lambda.Params[0].Modifiers)
}

const counterSource = `package demo;

import java.util.List;
import static java.lang.Math.*;

public class Counter extends Base of Runnable, Comparable<Counter> {
    private int count;
    int @B [] @C [] grid;

    static {
        count = 0;
    }

    {
        count = 1;
    }

    public Counter(int start, mutable int step) throws IOException {
        super(start);
        count = start;
    }

    public <T> List<@A T> items(@A String @B [] names, final int... rest) {
        int local = 1;
        mutable int other = 2;
        for (String s : names) { other += local; }
        try (Reader r = open()) {
            return null;
        } catch (IOException | RuntimeException e) {
            throw e;
        }
    }

    public void run() {
        int[][] cells = new int[2][3][][];
        switch (count) {
            case 1:
            case 2:
                break;
            default:
                count = 0;
        }
    }
}
`

func TestBuildCompilationUnit(t *testing.T) {
	unit := buildUnit(t, counterSource)

	require.NotNil(t, unit.Package)
	assert.Equal(t, "demo", unit.Package.Name.String())
	require.Len(t, unit.Imports, 2)
	assert.False(t, unit.Imports[0].Static)
	assert.True(t, unit.Imports[1].Static)
	assert.True(t, unit.Imports[1].OnDemand)
	assert.Equal(t, "java.lang.Math", unit.Imports[1].Name.String())

	class, ok := unit.Type.(*ast.ClassDecl)
	require.True(t, ok)
	assert.Equal(t, "Counter", class.Name)
	assert.Equal(t, ast.Position{Line: 6, Column: 13}, class.NamePos)
	assert.Equal(t, ast.Position{Line: 6, Column: 0}, class.Pos())
	require.Len(t, class.Modifiers, 1)
	assert.Equal(t, "public", class.Modifiers[0].Keyword)
	require.NotNil(t, class.Extends)
	assert.Equal(t, "Base", class.Extends.Name)
	require.Len(t, class.Of, 2)
	assert.Equal(t, "Runnable", ast.TypeString(class.Of[0]))
	assert.Equal(t, "Comparable<Counter>", ast.TypeString(class.Of[1]))

	require.Len(t, class.Members, 7)
	assert.IsType(t, &ast.FieldDecl{}, class.Members[0])
	assert.IsType(t, &ast.FieldDecl{}, class.Members[1])
	assert.True(t, class.Members[2].(*ast.InitializerDecl).Static)
	assert.False(t, class.Members[3].(*ast.InitializerDecl).Static)
	assert.IsType(t, &ast.ConstructorDecl{}, class.Members[4])
	assert.IsType(t, &ast.MethodDecl{}, class.Members[5])
	assert.IsType(t, &ast.MethodDecl{}, class.Members[6])
}

func TestFieldsAreNotImplicitlyFinal(t *testing.T) {
	unit := buildUnit(t, counterSource)
	field := unit.Type.(*ast.ClassDecl).Members[0].(*ast.FieldDecl)
	require.Len(t, field.Modifiers, 1)
	assert.Equal(t, "private", field.Modifiers[0].Keyword)
}

func TestAnnotatedArrayDimensions(t *testing.T) {
	unit := buildUnit(t, counterSource)
	grid := unit.Type.(*ast.ClassDecl).Members[1].(*ast.FieldDecl)

	outer, ok := grid.Type.(*ast.ArrayType)
	require.True(t, ok)
	require.Len(t, outer.Annotations, 1)
	assert.Equal(t, "B", outer.Annotations[0].AnnotationName().String())

	inner, ok := outer.Component.(*ast.ArrayType)
	require.True(t, ok)
	require.Len(t, inner.Annotations, 1)
	assert.Equal(t, "C", inner.Annotations[0].AnnotationName().String())
	assert.Equal(t, "int", ast.TypeString(inner.Component))
	assert.Equal(t, "int[][]", ast.TypeString(grid.Type))
}

func TestTypeAnnotationsReachTheNamedSegment(t *testing.T) {
	unit := buildUnit(t, `class A { List<@A java.util.@B Map<String, int @C []>> m; }`)
	field := unit.Type.(*ast.ClassDecl).Members[0].(*ast.FieldDecl)
	list, ok := field.Type.(*ast.ClassType)
	require.True(t, ok)
	require.Len(t, list.TypeArgs, 1)

	m, ok := list.TypeArgs[0].(*ast.ClassType)
	require.True(t, ok)
	assert.Equal(t, "Map", m.Name)
	var names []string
	for _, ann := range m.Annotations {
		names = append(names, ann.AnnotationName().String())
	}
	assert.Equal(t, []string{"A", "B"}, names)

	segs := m.Segments()
	require.Len(t, segs, 3)
	assert.Empty(t, segs[0].Annotations)
	assert.Empty(t, segs[1].Annotations)

	value, ok := m.TypeArgs[1].(*ast.ArrayType)
	require.True(t, ok)
	require.Len(t, value.Annotations, 1)
	assert.Equal(t, "C", value.Annotations[0].AnnotationName().String())
	assert.Empty(t, value.Component.(*ast.PrimitiveType).Annotations)
}

func TestConstructorInvocationIsSeparate(t *testing.T) {
	unit := buildUnit(t, counterSource)
	ctor := unit.Type.(*ast.ClassDecl).Members[4].(*ast.ConstructorDecl)

	assert.Equal(t, "Counter", ctor.Name)
	require.NotNil(t, ctor.Invocation)
	assert.False(t, ctor.Invocation.This)
	assert.Len(t, ctor.Invocation.Args, 1)
	require.Len(t, ctor.Body.Stmts, 1)
	assert.IsType(t, &ast.ExprStmt{}, ctor.Body.Stmts[0])
	require.Len(t, ctor.Throws, 1)
	assert.Equal(t, "IOException", ast.TypeString(ctor.Throws[0]))
}

func TestImplicitFinal(t *testing.T) {
	unit := buildUnit(t, counterSource)
	class := unit.Type.(*ast.ClassDecl)
	ctor := class.Members[4].(*ast.ConstructorDecl)

	start := ctor.Params[0]
	require.Len(t, start.Modifiers, 1)
	assert.Equal(t, "final", start.Modifiers[0].Keyword)
	assert.True(t, start.Modifiers[0].Implicit())
	assert.Equal(t, ast.NoPos, start.Modifiers[0].Pos())

	step := ctor.Params[1]
	require.Len(t, step.Modifiers, 1)
	assert.Equal(t, "mutable", step.Modifiers[0].Keyword)

	items := class.Members[5].(*ast.MethodDecl)
	rest := items.Params[1]
	assert.True(t, rest.Varargs)
	require.Len(t, rest.Modifiers, 1)
	assert.False(t, rest.Modifiers[0].Implicit(), "explicit final keeps its position")

	stmts := items.Body.Stmts
	require.Len(t, stmts, 4)
	local := stmts[0].(*ast.LocalVarDeclStmt)
	assert.True(t, ast.HasModifier(local.Modifiers, "final"))
	other := stmts[1].(*ast.LocalVarDeclStmt)
	assert.False(t, ast.HasModifier(other.Modifiers, "final"))

	loop := stmts[2].(*ast.ForEachStmt)
	assert.True(t, ast.HasModifier(loop.Variable.Modifiers, "final"))

	try := stmts[3].(*ast.TryStmt)
	require.Len(t, try.Resources, 1)
	assert.True(t, ast.HasModifier(try.Resources[0].Modifiers, "final"))
	require.Len(t, try.Catches, 1)
	param := try.Catches[0].Param
	assert.True(t, ast.HasModifier(param.Modifiers, "final"))
	assert.Len(t, param.Types, 2)
	assert.Equal(t, "e", param.Name)
}

func TestMethodTypes(t *testing.T) {
	unit := buildUnit(t, counterSource)
	items := unit.Type.(*ast.ClassDecl).Members[5].(*ast.MethodDecl)

	require.Len(t, items.TypeParams, 1)
	assert.Equal(t, "T", items.TypeParams[0].Name)

	result, ok := items.Result.(*ast.ClassType)
	require.True(t, ok)
	require.Len(t, result.TypeArgs, 1)
	arg := result.TypeArgs[0].(*ast.ClassType)
	assert.Len(t, arg.Annotations, 1)

	names := items.Params[0]
	assert.Len(t, names.Annotations, 1, "leading annotation is a declaration annotation")
	arr, ok := names.Type.(*ast.ArrayType)
	require.True(t, ok)
	assert.Len(t, arr.Annotations, 1)

	run := unit.Type.(*ast.ClassDecl).Members[6].(*ast.MethodDecl)
	assert.IsType(t, &ast.VoidType{}, run.Result)
	sw := run.Body.Stmts[1].(*ast.SwitchStmt)
	require.Len(t, sw.Groups, 2)
	assert.Len(t, sw.Groups[0].Labels, 2)
	assert.Len(t, sw.Groups[0].Stmts, 1)
	assert.True(t, sw.Groups[1].Labels[0].IsDefault())
}

func TestBuildInterface(t *testing.T) {
	unit := buildUnit(t, `interface Shape<T> extends Comparable<T>, Serializable {
    double PI = 3.14;
    double area();
    default String name() { return "shape"; }
}`)
	iface, ok := unit.Type.(*ast.InterfaceDecl)
	require.True(t, ok)
	assert.True(t, unit.Package.Unnamed())
	require.Len(t, iface.Extends, 2)
	require.Len(t, iface.Members, 3)
	assert.IsType(t, &ast.ConstantDecl{}, iface.Members[0])
	area := iface.Members[1].(*ast.InterfaceMethodDecl)
	assert.Nil(t, area.Body)
	name := iface.Members[2].(*ast.InterfaceMethodDecl)
	assert.NotNil(t, name.Body)
	assert.True(t, ast.HasModifier(name.Modifiers, "default"))
}

func TestBuildAnnotationType(t *testing.T) {
	unit := buildUnit(t, `@Retention(RetentionPolicy.RUNTIME)
public @interface Info {
    String value() default "";
    int[] counts() default {1, 2};
    Class<?> kind();
}`)
	decl, ok := unit.Type.(*ast.AnnotationTypeDecl)
	require.True(t, ok)
	require.Len(t, decl.Annotations, 1)
	assert.IsType(t, &ast.SingleMemberAnnotation{}, decl.Annotations[0])
	require.Len(t, decl.Members, 3)

	value := decl.Members[0].(*ast.AnnotationMemberDecl)
	assert.Equal(t, "value", value.Name)
	assert.IsType(t, &ast.StringLiteralExpr{}, value.Default)
	counts := decl.Members[1].(*ast.AnnotationMemberDecl)
	assert.IsType(t, &ast.ArrayInitializerExpr{}, counts.Default)
	kind := decl.Members[2].(*ast.AnnotationMemberDecl)
	assert.Nil(t, kind.Default)
	assert.Equal(t, "Class<?>", ast.TypeString(kind.Type))
}

func TestAnnotationForms(t *testing.T) {
	unit := buildUnit(t, `@Marker @Single("x") @Normal(a = 1, b = {2, 3}) @Empty() class A {}`)
	anns := unit.Type.(*ast.ClassDecl).Annotations
	require.Len(t, anns, 4)
	assert.IsType(t, &ast.MarkerAnnotation{}, anns[3], "empty parentheses build a marker")
	assert.IsType(t, &ast.MarkerAnnotation{}, anns[0])
	assert.IsType(t, &ast.SingleMemberAnnotation{}, anns[1])
	normal, ok := anns[2].(*ast.NormalAnnotation)
	require.True(t, ok)
	require.Len(t, normal.Pairs, 2)
	assert.Equal(t, "b", normal.Pairs[1].Name)
	assert.IsType(t, &ast.ArrayInitializerExpr{}, normal.Pairs[1].Value)
}

func TestForLoopParts(t *testing.T) {
	unit := buildUnit(t, `class A { void m() {
    for (int i = 0, j = 1; i < j; i++, j--) {}
    for (i = 0; ; ) {}
    for (;;) {}
} }`)
	stmts := unit.Type.(*ast.ClassDecl).Members[0].(*ast.MethodDecl).Body.Stmts
	require.Len(t, stmts, 3)

	first := stmts[0].(*ast.ForStmt)
	require.NotNil(t, first.Decl)
	assert.Len(t, first.Decl.Variables, 2)
	assert.NotNil(t, first.Cond)
	assert.Len(t, first.Update, 2)

	second := stmts[1].(*ast.ForStmt)
	assert.Nil(t, second.Decl)
	assert.Len(t, second.Init, 1)
	assert.Nil(t, second.Cond)

	third := stmts[2].(*ast.ForStmt)
	assert.Nil(t, third.Cond)
	assert.Empty(t, third.Init)
	assert.Empty(t, third.Update)
}

func TestBuildRejectsMalformedTrees(t *testing.T) {
	_, err := Build(&parser.Node{Kind: parser.KindClassDecl})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedTree))

	_, err = Build(&parser.Node{Kind: parser.KindCompilationUnit})
	require.Error(t, err)
	var se *StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, parser.KindCompilationUnit, se.Kind)

	_, err = Build(nil)
	assert.True(t, errors.Is(err, ErrMalformedTree))
}

func TestBuildRejectsSyntaxErrors(t *testing.T) {
	p := parser.ParseCompilationUnit(strings.NewReader("class A { void m() { x = ; } }"))
	root, err := p.Finish()
	require.NoError(t, err)
	require.NotEmpty(t, p.Errors())

	_, err = Build(root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedTree))
}
