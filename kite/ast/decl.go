package ast

import "strings"

// CompilationUnit is one source file. Package is never nil; an unnamed
// package has a nil Package.Name.
type CompilationUnit struct {
	At
	Package *PackageDecl
	Imports []*ImportDecl
	Type    TypeDecl
}

func (*CompilationUnit) Kind() Kind { return KindCompilationUnit }
func (n *CompilationUnit) Children() []Node {
	return children(one(n.Package), many(n.Imports), one(n.Type))
}

type PackageDecl struct {
	At
	Annotations []Annotation
	Name        *QualifiedName
}

func (*PackageDecl) Kind() Kind { return KindPackageDecl }
func (n *PackageDecl) Children() []Node {
	return children(many(n.Annotations), one(n.Name))
}

// Unnamed reports whether the file declares no package.
func (n *PackageDecl) Unnamed() bool { return n.Name == nil }

type ImportDecl struct {
	At
	Static   bool
	Name     *QualifiedName
	OnDemand bool
}

func (*ImportDecl) Kind() Kind         { return KindImportDecl }
func (n *ImportDecl) Children() []Node { return one(n.Name) }

type QualifiedName struct {
	At
	Parts []string
}

func (*QualifiedName) Kind() Kind       { return KindQualifiedName }
func (*QualifiedName) Children() []Node { return nil }

func (n *QualifiedName) String() string { return strings.Join(n.Parts, ".") }

// Last returns the simple name.
func (n *QualifiedName) Last() string {
	if len(n.Parts) == 0 {
		return ""
	}
	return n.Parts[len(n.Parts)-1]
}

// Modifier is a single modifier keyword. Implicit modifiers added during
// building sit at NoPos.
type Modifier struct {
	At
	Keyword string
}

func (*Modifier) Kind() Kind       { return KindModifier }
func (*Modifier) Children() []Node { return nil }

// Implicit reports whether the modifier was synthesized.
func (n *Modifier) Implicit() bool { return !n.Position.IsValid() }

// HasModifier reports whether mods contains keyword.
func HasModifier(mods []*Modifier, keyword string) bool {
	for _, m := range mods {
		if m.Keyword == keyword {
			return true
		}
	}
	return false
}

type ClassDecl struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	TypeParams  []*TypeParameter
	Name        string
	NamePos     Position
	Extends     *ClassType
	Of          []*ClassType
	Members     []BodyDecl
}

func (*ClassDecl) Kind() Kind { return KindClassDecl }
func (n *ClassDecl) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), many(n.TypeParams),
		one(n.Extends), many(n.Of), many(n.Members))
}

type InterfaceDecl struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	TypeParams  []*TypeParameter
	Name        string
	NamePos     Position
	Extends     []*ClassType
	Members     []BodyDecl
}

func (*InterfaceDecl) Kind() Kind { return KindInterfaceDecl }
func (n *InterfaceDecl) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), many(n.TypeParams),
		many(n.Extends), many(n.Members))
}

type AnnotationTypeDecl struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	Name        string
	NamePos     Position
	Members     []BodyDecl
}

func (*AnnotationTypeDecl) Kind() Kind { return KindAnnotationTypeDecl }
func (n *AnnotationTypeDecl) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), many(n.Members))
}

func (n *ClassDecl) DeclName() string          { return n.Name }
func (n *InterfaceDecl) DeclName() string      { return n.Name }
func (n *AnnotationTypeDecl) DeclName() string { return n.Name }

func (n *ClassDecl) DeclNamePos() Position          { return n.NamePos }
func (n *InterfaceDecl) DeclNamePos() Position      { return n.NamePos }
func (n *AnnotationTypeDecl) DeclNamePos() Position { return n.NamePos }

func (n *ClassDecl) DeclModifiers() []*Modifier          { return n.Modifiers }
func (n *InterfaceDecl) DeclModifiers() []*Modifier      { return n.Modifiers }
func (n *AnnotationTypeDecl) DeclModifiers() []*Modifier { return n.Modifiers }

// FieldDecl declares one or more class fields sharing a base type.
type FieldDecl struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	Type        Type
	Variables   []*VariableDeclarator
}

func (*FieldDecl) Kind() Kind { return KindFieldDecl }
func (n *FieldDecl) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), one(n.Type), many(n.Variables))
}

// ConstantDecl is a field declared in an interface body.
type ConstantDecl struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	Type        Type
	Variables   []*VariableDeclarator
}

func (*ConstantDecl) Kind() Kind { return KindConstantDecl }
func (n *ConstantDecl) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), one(n.Type), many(n.Variables))
}

// VariableDeclarator is `name [dims] [= init]`. Dims written after the name
// belong to the declarator, not to the declaration's base type.
type VariableDeclarator struct {
	At
	Name string
	Dims []*ArrayDim
	Init Expr
}

func (*VariableDeclarator) Kind() Kind { return KindVariableDeclarator }
func (n *VariableDeclarator) Children() []Node {
	return children(many(n.Dims), one(n.Init))
}

// ArrayDim is one empty `[]` pair with its annotations.
type ArrayDim struct {
	At
	Annotations []Annotation
}

func (*ArrayDim) Kind() Kind         { return KindArrayDim }
func (n *ArrayDim) Children() []Node { return many(n.Annotations) }

type MethodDecl struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	TypeParams  []*TypeParameter
	Result      Type
	Name        string
	Params      []*Parameter
	Dims        []*ArrayDim
	Throws      []*ExceptionType
	Body        *BlockStmt
}

func (*MethodDecl) Kind() Kind { return KindMethodDecl }
func (n *MethodDecl) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), many(n.TypeParams),
		one(n.Result), many(n.Params), many(n.Dims), many(n.Throws), one(n.Body))
}

// InterfaceMethodDecl is a method declared in an interface body. Body is
// nil for abstract methods.
type InterfaceMethodDecl struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	TypeParams  []*TypeParameter
	Result      Type
	Name        string
	Params      []*Parameter
	Dims        []*ArrayDim
	Throws      []*ExceptionType
	Body        *BlockStmt
}

func (*InterfaceMethodDecl) Kind() Kind { return KindInterfaceMethodDecl }
func (n *InterfaceMethodDecl) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), many(n.TypeParams),
		one(n.Result), many(n.Params), many(n.Dims), many(n.Throws), one(n.Body))
}

type AnnotationMemberDecl struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	Type        Type
	Name        string
	Dims        []*ArrayDim
	Default     Expr
}

func (*AnnotationMemberDecl) Kind() Kind { return KindAnnotationMemberDecl }
func (n *AnnotationMemberDecl) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), one(n.Type), many(n.Dims), one(n.Default))
}

// ConstructorDecl keeps an explicit this(...) or super(...) call apart from
// the remaining body statements.
type ConstructorDecl struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	TypeParams  []*TypeParameter
	Name        string
	Params      []*Parameter
	Throws      []*ExceptionType
	Invocation  *ExplicitConstructorInvocation
	Body        *BlockStmt
}

func (*ConstructorDecl) Kind() Kind { return KindConstructorDecl }
func (n *ConstructorDecl) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), many(n.TypeParams),
		many(n.Params), many(n.Throws), one(n.Invocation), one(n.Body))
}

type InitializerDecl struct {
	At
	Static bool
	Body   *BlockStmt
}

func (*InitializerDecl) Kind() Kind         { return KindInitializerDecl }
func (n *InitializerDecl) Children() []Node { return one(n.Body) }

// Parameter is a formal parameter. Type is nil for the inferred parameters
// of a lambda.
type Parameter struct {
	At
	Annotations       []Annotation
	Modifiers         []*Modifier
	Type              Type
	Name              string
	Dims              []*ArrayDim
	Varargs           bool
	VarargAnnotations []Annotation
}

func (*Parameter) Kind() Kind { return KindParameter }
func (n *Parameter) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), one(n.Type),
		many(n.VarargAnnotations), many(n.Dims))
}

// MarkerAnnotation is @Name or @Name().
type MarkerAnnotation struct {
	At
	Name *QualifiedName
}

func (*MarkerAnnotation) Kind() Kind         { return KindMarkerAnnotation }
func (n *MarkerAnnotation) Children() []Node { return one(n.Name) }

// SingleMemberAnnotation is @Name(value).
type SingleMemberAnnotation struct {
	At
	Name  *QualifiedName
	Value Expr
}

func (*SingleMemberAnnotation) Kind() Kind { return KindSingleMemberAnnotation }
func (n *SingleMemberAnnotation) Children() []Node {
	return children(one(n.Name), one(n.Value))
}

// NormalAnnotation is @Name(a = x, b = y). An empty @Name() is built as a
// MarkerAnnotation.
type NormalAnnotation struct {
	At
	Name  *QualifiedName
	Pairs []*MemberValuePair
}

func (*NormalAnnotation) Kind() Kind { return KindNormalAnnotation }
func (n *NormalAnnotation) Children() []Node {
	return children(one(n.Name), many(n.Pairs))
}

func (n *MarkerAnnotation) AnnotationName() *QualifiedName       { return n.Name }
func (n *SingleMemberAnnotation) AnnotationName() *QualifiedName { return n.Name }
func (n *NormalAnnotation) AnnotationName() *QualifiedName       { return n.Name }

type MemberValuePair struct {
	At
	Name  string
	Value Expr
}

func (*MemberValuePair) Kind() Kind         { return KindMemberValuePair }
func (n *MemberValuePair) Children() []Node { return one(n.Value) }
