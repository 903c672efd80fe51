package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func name(s string) *NameExpr { return &NameExpr{At: At{NoPos}, Name: s} }

func classType(s string) *ClassType { return &ClassType{Name: s} }

func TestChildrenOrder(t *testing.T) {
	a, b, c := name("a"), name("b"), name("c")
	skip := &EmptyStmt{}
	block, other := &BlockStmt{}, &BlockStmt{Stmts: []Stmt{skip}}
	param := &Parameter{Name: "p", Type: classType("P")}
	final := &Modifier{At: At{NoPos}, Keyword: "final"}
	qn := &QualifiedName{Parts: []string{"A"}}
	marker := &MarkerAnnotation{Name: qn}
	tp := &TypeParameter{Name: "T"}
	exc := &ExceptionType{Type: classType("E")}
	exc2 := &ExceptionType{Type: classType("F")}
	dim := &ArrayDim{}
	intType := &PrimitiveType{Name: "int"}
	ct, ct2 := classType("C"), classType("D")
	vd := &VariableDeclarator{Name: "v", Init: a}
	field := &FieldDecl{Type: intType, Variables: []*VariableDeclarator{vd}}
	void := &VoidType{}
	imethod := &InterfaceMethodDecl{Result: void, Name: "m"}
	amember := &AnnotationMemberDecl{Type: intType, Name: "value"}
	inv := &ExplicitConstructorInvocation{Args: []Expr{a}}
	pair := &MemberValuePair{Name: "k", Value: a}
	local := &LocalVarDeclStmt{Modifiers: []*Modifier{final}, Type: intType, Variables: []*VariableDeclarator{vd}}
	res := &Resource{Type: ct, Name: "r", Init: a}
	cp := &CatchParameter{Types: []*ExceptionType{exc}, Name: "e"}
	catch := &CatchClause{Param: cp, Body: block}
	label := &SwitchLabel{Value: a}
	stmt := &ExprStmt{X: b}
	group := &SwitchGroup{Labels: []*SwitchLabel{label}, Stmts: []Stmt{stmt}}
	level := &ArrayCreationLevel{Dimension: a}
	empty := &ArrayCreationLevel{}
	values := &ArrayInitializerExpr{Values: []Expr{a}}
	typeExpr := &TypeExpr{Type: ct}
	pkg, unnamed := &PackageDecl{Name: qn}, &PackageDecl{}
	imp := &ImportDecl{Name: qn}
	decl := &ClassDecl{Name: "Foo"}

	tests := []struct {
		name string
		node Node
		want []Node
	}{
		// declarations
		{"compilation unit", &CompilationUnit{Package: pkg, Imports: []*ImportDecl{imp}, Type: decl}, []Node{pkg, imp, decl}},
		{"unit without type", &CompilationUnit{Package: unnamed}, []Node{unnamed}},
		{"package", &PackageDecl{Annotations: []Annotation{marker}, Name: qn}, []Node{marker, qn}},
		{"unnamed package", unnamed, nil},
		{"import", &ImportDecl{Static: true, Name: qn, OnDemand: true}, []Node{qn}},
		{"qualified name", qn, nil},
		{"modifier", final, nil},
		{
			"class",
			&ClassDecl{
				Annotations: []Annotation{marker},
				Modifiers:   []*Modifier{final},
				TypeParams:  []*TypeParameter{tp},
				Name:        "C",
				Extends:     ct,
				Of:          []*ClassType{ct2},
				Members:     []BodyDecl{field},
			},
			[]Node{marker, final, tp, ct, ct2, field},
		},
		{"typed nil is skipped", &ClassDecl{Name: "C", Extends: nil}, nil},
		{
			"interface",
			&InterfaceDecl{Modifiers: []*Modifier{final}, TypeParams: []*TypeParameter{tp}, Extends: []*ClassType{ct, ct2}, Members: []BodyDecl{imethod}},
			[]Node{final, tp, ct, ct2, imethod},
		},
		{"annotation type", &AnnotationTypeDecl{Annotations: []Annotation{marker}, Modifiers: []*Modifier{final}, Members: []BodyDecl{amember}}, []Node{marker, final, amember}},
		{"field", &FieldDecl{Annotations: []Annotation{marker}, Modifiers: []*Modifier{final}, Type: intType, Variables: []*VariableDeclarator{vd}}, []Node{marker, final, intType, vd}},
		{"constant", &ConstantDecl{Modifiers: []*Modifier{final}, Type: intType, Variables: []*VariableDeclarator{vd}}, []Node{final, intType, vd}},
		{"declarator", &VariableDeclarator{Name: "v", Dims: []*ArrayDim{dim}, Init: a}, []Node{dim, a}},
		{"bare declarator", &VariableDeclarator{Name: "v"}, nil},
		{"annotated dim", &ArrayDim{Annotations: []Annotation{marker}}, []Node{marker}},
		{"dim", dim, nil},
		{
			"method",
			&MethodDecl{
				Annotations: []Annotation{marker},
				Modifiers:   []*Modifier{final},
				TypeParams:  []*TypeParameter{tp},
				Result:      intType,
				Name:        "m",
				Params:      []*Parameter{param},
				Dims:        []*ArrayDim{dim},
				Throws:      []*ExceptionType{exc},
				Body:        block,
			},
			[]Node{marker, final, tp, intType, param, dim, exc, block},
		},
		{"abstract method", imethod, []Node{void}},
		{
			"default method",
			&InterfaceMethodDecl{Modifiers: []*Modifier{final}, Result: intType, Name: "m", Params: []*Parameter{param}, Throws: []*ExceptionType{exc}, Body: block},
			[]Node{final, intType, param, exc, block},
		},
		{
			"annotation member",
			&AnnotationMemberDecl{Annotations: []Annotation{marker}, Modifiers: []*Modifier{final}, Type: intType, Name: "v", Dims: []*ArrayDim{dim}, Default: a},
			[]Node{marker, final, intType, dim, a},
		},
		{"annotation member without default", amember, []Node{intType}},
		{
			"constructor",
			&ConstructorDecl{
				Annotations: []Annotation{marker},
				Modifiers:   []*Modifier{final},
				TypeParams:  []*TypeParameter{tp},
				Name:        "C",
				Params:      []*Parameter{param},
				Throws:      []*ExceptionType{exc},
				Invocation:  inv,
				Body:        block,
			},
			[]Node{marker, final, tp, param, exc, inv, block},
		},
		{"constructor without invocation", &ConstructorDecl{Name: "C", Body: block}, []Node{block}},
		{"initializer", &InitializerDecl{Static: true, Body: block}, []Node{block}},
		{
			"parameter",
			&Parameter{
				Annotations:       []Annotation{marker},
				Modifiers:         []*Modifier{final},
				Type:              intType,
				Dims:              []*ArrayDim{dim},
				Varargs:           true,
				VarargAnnotations: []Annotation{marker},
			},
			[]Node{marker, final, intType, marker, dim},
		},
		{"inferred lambda parameter", &Parameter{Name: "x"}, nil},
		{"marker annotation", marker, []Node{qn}},
		{"single member annotation", &SingleMemberAnnotation{Name: qn, Value: a}, []Node{qn, a}},
		{"normal annotation", &NormalAnnotation{Name: qn, Pairs: []*MemberValuePair{pair}}, []Node{qn, pair}},
		{"normal annotation without pairs", &NormalAnnotation{Name: qn}, []Node{qn}},
		{"member value pair", pair, []Node{a}},

		// statements
		{"block", other, []Node{skip}},
		{"empty block", block, nil},
		{"local variable", local, []Node{final, intType, vd}},
		{"annotated local variable", &LocalVarDeclStmt{Annotations: []Annotation{marker}, Type: intType, Variables: []*VariableDeclarator{vd}}, []Node{marker, intType, vd}},
		{"empty statement", skip, nil},
		{"expression statement", stmt, []Node{b}},
		{"if without else", &IfStmt{Cond: a, Then: block}, []Node{a, block}},
		{"if with else", &IfStmt{Cond: a, Then: block, Else: other}, []Node{a, block, other}},
		{"while", &WhileStmt{Cond: a, Body: block}, []Node{a, block}},
		{"do", &DoStmt{Body: block, Cond: a}, []Node{block, a}},
		{"for with exprs", &ForStmt{Init: []Expr{a}, Cond: b, Update: []Expr{c}, Body: block}, []Node{a, b, c, block}},
		{"for with declaration", &ForStmt{Decl: local, Cond: b, Body: block}, []Node{local, b, block}},
		{"empty for", &ForStmt{Body: block}, []Node{block}},
		{"for each", &ForEachStmt{Variable: param, Iterable: a, Body: block}, []Node{param, a, block}},
		{"try", &TryStmt{Body: block, Finally: other}, []Node{block, other}},
		{"try with resources", &TryStmt{Resources: []*Resource{res}, Body: block, Catches: []*CatchClause{catch}}, []Node{res, block, catch}},
		{"resource declaration", &Resource{Annotations: []Annotation{marker}, Modifiers: []*Modifier{final}, Type: ct, Name: "r", Init: a}, []Node{marker, final, ct, a}},
		{"resource variable", &Resource{Init: a}, []Node{a}},
		{"catch", catch, []Node{cp, block}},
		{"catch parameter", &CatchParameter{Annotations: []Annotation{marker}, Modifiers: []*Modifier{final}, Types: []*ExceptionType{exc, exc2}, Name: "e"}, []Node{marker, final, exc, exc2}},
		{"switch", &SwitchStmt{Selector: a, Groups: []*SwitchGroup{group}}, []Node{a, group}},
		{"switch group", group, []Node{label, stmt}},
		{"switch label", label, []Node{a}},
		{"switch label default", &SwitchLabel{}, nil},
		{"synchronized", &SynchronizedStmt{Lock: a, Body: block}, []Node{a, block}},
		{"labeled", &LabeledStmt{Label: "outer", Body: block}, []Node{block}},
		{"break", &BreakStmt{Label: "outer"}, nil},
		{"continue", &ContinueStmt{}, nil},
		{"return void", &ReturnStmt{}, nil},
		{"return value", &ReturnStmt{Value: a}, []Node{a}},
		{"throw", &ThrowStmt{X: a}, []Node{a}},
		{"assert", &AssertStmt{Cond: a, Message: b}, []Node{a, b}},
		{"assert without message", &AssertStmt{Cond: a}, []Node{a}},
		{"qualified super call", &ExplicitConstructorInvocation{Scope: a, TypeArgs: []Type{ct}, Args: []Expr{b}}, []Node{a, ct, b}},
		{"this call", &ExplicitConstructorInvocation{This: true}, nil},

		// expressions
		{"int literal", &IntegerLiteralExpr{Value: "1"}, nil},
		{"long literal", &LongLiteralExpr{Value: "1L"}, nil},
		{"double literal", &DoubleLiteralExpr{Value: "1.0"}, nil},
		{"char literal", &CharLiteralExpr{Value: "c"}, nil},
		{"string literal", &StringLiteralExpr{Value: "s"}, nil},
		{"boolean literal", &BooleanLiteralExpr{Value: true}, nil},
		{"null literal", &NullLiteralExpr{}, nil},
		{"name", a, nil},
		{"field access", &FieldAccessExpr{Scope: a, Name: "f"}, []Node{a}},
		{"generic method access", &FieldAccessExpr{Scope: a, TypeArgs: []Type{ct}, Name: "m"}, []Node{a, ct}},
		{"array access", &ArrayAccessExpr{X: a, Index: b}, []Node{a, b}},
		{"invocation", &MethodInvocationExpr{Target: a, Args: []Expr{b, c}}, []Node{a, b, c}},
		{"method reference", &MethodReferenceExpr{Scope: typeExpr, TypeArgs: []Type{ct2}, Name: "new"}, []Node{typeExpr, ct2}},
		{
			"object creation",
			&ObjectCreationExpr{Scope: a, TypeArgs: []Type{ct2}, Type: ct, Args: []Expr{b}, Anonymous: true, Body: []BodyDecl{field}},
			[]Node{a, ct2, ct, b, field},
		},
		{"plain object creation", &ObjectCreationExpr{Type: ct}, []Node{ct}},
		{"array creation", &ArrayCreationExpr{ElementType: intType, Levels: []*ArrayCreationLevel{level, empty}}, []Node{intType, level, empty}},
		{"array creation with init", &ArrayCreationExpr{ElementType: intType, Levels: []*ArrayCreationLevel{empty}, Init: values}, []Node{intType, empty, values}},
		{"array creation level", &ArrayCreationLevel{Annotations: []Annotation{marker}, Dimension: a}, []Node{marker, a}},
		{"empty array creation level", empty, nil},
		{"array initializer", &ArrayInitializerExpr{Values: []Expr{a, b}}, []Node{a, b}},
		{"lambda", &LambdaExpr{Params: []*Parameter{param}, Body: a}, []Node{param, a}},
		{"block lambda", &LambdaExpr{Parenthesized: true, Body: block}, []Node{block}},
		{"unqualified this", &ThisExpr{}, nil},
		{"qualified this", &ThisExpr{Qualifier: qn}, []Node{qn}},
		{"super", &SuperExpr{}, nil},
		{"qualified super", &SuperExpr{Qualifier: qn}, []Node{qn}},
		{"class literal", &TypeLiteralExpr{Type: intType}, []Node{intType}},
		{"type expression", typeExpr, []Node{ct}},
		{"binary", &BinaryExpr{Op: "+", Left: a, Right: b}, []Node{a, b}},
		{"unary", &UnaryExpr{Op: "-", X: a}, []Node{a}},
		{"assign", &AssignExpr{Op: "=", Target: a, Value: b}, []Node{a, b}},
		{"conditional", &ConditionalExpr{Cond: a, Then: b, Else: c}, []Node{a, b, c}},
		{"cast", &CastExpr{Types: []Type{intType}, X: a}, []Node{intType, a}},
		{"intersection cast", &CastExpr{Types: []Type{ct, ct2}, X: a}, []Node{ct, ct2, a}},
		{"instanceof", &InstanceOfExpr{X: a, Type: ct}, []Node{a, ct}},
		{"enclosed", &EnclosedExpr{X: a}, []Node{a}},

		// types
		{"primitive", intType, nil},
		{"annotated primitive", &PrimitiveType{Annotations: []Annotation{marker}, Name: "int"}, []Node{marker}},
		{"class type", ct, nil},
		{"scoped class type", &ClassType{Scope: ct, Annotations: []Annotation{marker}, Name: "Inner", TypeArgs: []Type{intType, ct2}}, []Node{ct, marker, intType, ct2}},
		{"array type", &ArrayType{Component: intType, Annotations: []Annotation{marker}}, []Node{intType, marker}},
		{"wildcard", &WildcardType{Super: intType}, []Node{intType}},
		{"annotated wildcard", &WildcardType{Annotations: []Annotation{marker}, Extends: ct}, []Node{marker, ct}},
		{"unbounded wildcard", &WildcardType{}, nil},
		{"void", void, nil},
		{"type parameter", &TypeParameter{Annotations: []Annotation{marker}, Name: "T", Bounds: []*ClassType{ct, ct2}}, []Node{marker, ct, ct2}},
		{"unbounded type parameter", tp, nil},
		{"exception type", exc, []Node{exc.Type}},
	}

	seen := map[Kind]bool{}
	for _, tt := range tests {
		seen[tt.node.Kind()] = true
		t.Run(tt.name, func(t *testing.T) {
			got := tt.node.Children()
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Same(t, tt.want[i], got[i], "child %d", i)
			}
		})
	}
	for k := KindCompilationUnit; k <= KindExceptionType; k++ {
		if k.String() == "Unknown" {
			continue
		}
		assert.True(t, seen[k], "no children case for %s", k)
	}
}

func TestCompilationUnitChildren(t *testing.T) {
	pkg := &PackageDecl{}
	imp := &ImportDecl{Name: &QualifiedName{Parts: []string{"java", "util", "List"}}}
	decl := &ClassDecl{Name: "Foo"}
	unit := &CompilationUnit{Package: pkg, Imports: []*ImportDecl{imp}, Type: decl}

	assert.Equal(t, []Node{pkg, imp, decl}, unit.Children())
	assert.True(t, pkg.Unnamed())
	assert.Equal(t, "java.util.List", imp.Name.String())
	assert.Equal(t, "List", imp.Name.Last())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "MethodInvocationExpr", (&MethodInvocationExpr{}).Kind().String())
	assert.Equal(t, "CompilationUnit", KindCompilationUnit.String())
	assert.Equal(t, "Unknown", Kind(-5).String())
	for k := KindCompilationUnit; k <= KindExceptionType; k++ {
		assert.NotEqual(t, "Unknown", k.String(), "kind %d has no name", k)
	}
}

func TestPosition(t *testing.T) {
	assert.False(t, NoPos.IsValid())
	assert.Equal(t, "-", NoPos.String())
	p := Position{Line: 3, Column: 4}
	assert.Equal(t, "3:4", p.String())
	assert.True(t, p.Before(Position{Line: 3, Column: 5}))
	assert.True(t, p.Before(Position{Line: 4, Column: 0}))
	assert.False(t, p.Before(p))
	assert.True(t, (&Modifier{At: At{NoPos}, Keyword: "final"}).Implicit())
	assert.False(t, (&Modifier{At: At{p}, Keyword: "final"}).Implicit())
}

func TestClassTypeSegments(t *testing.T) {
	outer := &ClassType{Name: "java"}
	mid := &ClassType{Scope: outer, Name: "util"}
	inner := &ClassType{Scope: mid, Name: "List", TypeArgs: []Type{classType("String")}}

	assert.Equal(t, []*ClassType{outer, mid, inner}, inner.Segments())
	assert.Equal(t, "java.util.List<String>", TypeString(inner))
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Node
		want string
	}{
		{&PrimitiveType{Name: "int"}, "int"},
		{&VoidType{}, "void"},
		{&ArrayType{Component: &ArrayType{Component: &PrimitiveType{Name: "byte"}}}, "byte[][]"},
		{&ClassType{Name: "ArrayList", Diamond: true}, "ArrayList<>"},
		{
			&ClassType{
				Name:        "Map",
				Annotations: []Annotation{&MarkerAnnotation{Name: &QualifiedName{Parts: []string{"NonNull"}}}},
				TypeArgs:    []Type{classType("K"), &WildcardType{Extends: classType("V")}},
			},
			"Map<K, ? extends V>",
		},
		{&WildcardType{}, "?"},
		{&ExceptionType{Type: classType("IOException")}, "IOException"},
		{&TypeParameter{Name: "T", Bounds: []*ClassType{classType("A"), classType("B")}}, "T extends A & B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeString(tt.typ))
	}
}

func TestElementType(t *testing.T) {
	elem := &PrimitiveType{Name: "int"}
	assert.Same(t, elem, ElementType(&ArrayType{Component: &ArrayType{Component: elem}}))
	assert.Same(t, elem, ElementType(elem))
}

func TestMethodName(t *testing.T) {
	assert.Equal(t, "f", (&MethodInvocationExpr{Target: name("f")}).MethodName())
	assert.Equal(t, "g", (&MethodInvocationExpr{Target: &FieldAccessExpr{Scope: name("a"), Name: "g"}}).MethodName())
}
