package ast

// Literal values keep their source spelling. String and char literals hold
// the text between the quotes with escapes left as written.
type IntegerLiteralExpr struct {
	At
	Value string
}

type LongLiteralExpr struct {
	At
	Value string
}

// DoubleLiteralExpr covers every floating point literal, float suffix
// included.
type DoubleLiteralExpr struct {
	At
	Value string
}

type CharLiteralExpr struct {
	At
	Value string
}

type StringLiteralExpr struct {
	At
	Value string
}

type BooleanLiteralExpr struct {
	At
	Value bool
}

type NullLiteralExpr struct{ At }

func (*IntegerLiteralExpr) Kind() Kind { return KindIntegerLiteralExpr }
func (*LongLiteralExpr) Kind() Kind    { return KindLongLiteralExpr }
func (*DoubleLiteralExpr) Kind() Kind  { return KindDoubleLiteralExpr }
func (*CharLiteralExpr) Kind() Kind    { return KindCharLiteralExpr }
func (*StringLiteralExpr) Kind() Kind  { return KindStringLiteralExpr }
func (*BooleanLiteralExpr) Kind() Kind { return KindBooleanLiteralExpr }
func (*NullLiteralExpr) Kind() Kind    { return KindNullLiteralExpr }

func (*IntegerLiteralExpr) Children() []Node { return nil }
func (*LongLiteralExpr) Children() []Node    { return nil }
func (*DoubleLiteralExpr) Children() []Node  { return nil }
func (*CharLiteralExpr) Children() []Node    { return nil }
func (*StringLiteralExpr) Children() []Node  { return nil }
func (*BooleanLiteralExpr) Children() []Node { return nil }
func (*NullLiteralExpr) Children() []Node    { return nil }

// NameExpr is a simple name. Qualified names become FieldAccessExpr chains.
type NameExpr struct {
	At
	Name string
}

func (*NameExpr) Kind() Kind       { return KindNameExpr }
func (*NameExpr) Children() []Node { return nil }

// FieldAccessExpr is Scope.Name. TypeArgs are only present when the access
// names the method of a following invocation, as in a.<T>m().
type FieldAccessExpr struct {
	At
	Scope    Expr
	TypeArgs []Type
	Name     string
}

func (*FieldAccessExpr) Kind() Kind { return KindFieldAccessExpr }
func (n *FieldAccessExpr) Children() []Node {
	return children(one(n.Scope), many(n.TypeArgs))
}

type ArrayAccessExpr struct {
	At
	X     Expr
	Index Expr
}

func (*ArrayAccessExpr) Kind() Kind         { return KindArrayAccessExpr }
func (n *ArrayAccessExpr) Children() []Node { return children(one(n.X), one(n.Index)) }

// MethodInvocationExpr calls Target, which is a NameExpr or a
// FieldAccessExpr naming the method.
type MethodInvocationExpr struct {
	At
	Target Expr
	Args   []Expr
}

func (*MethodInvocationExpr) Kind() Kind { return KindMethodInvocationExpr }
func (n *MethodInvocationExpr) Children() []Node {
	return children(one(n.Target), many(n.Args))
}

// MethodName returns the name of the invoked method.
func (n *MethodInvocationExpr) MethodName() string {
	switch t := n.Target.(type) {
	case *NameExpr:
		return t.Name
	case *FieldAccessExpr:
		return t.Name
	}
	return ""
}

// MethodReferenceExpr is Scope::Name; Name is "new" for constructor
// references.
type MethodReferenceExpr struct {
	At
	Scope    Expr
	TypeArgs []Type
	Name     string
}

func (*MethodReferenceExpr) Kind() Kind { return KindMethodReferenceExpr }
func (n *MethodReferenceExpr) Children() []Node {
	return children(one(n.Scope), many(n.TypeArgs))
}

// ObjectCreationExpr is `[Scope.] new <TypeArgs> Type(Args) [{Body}]`.
// Anonymous distinguishes an empty class body from none.
type ObjectCreationExpr struct {
	At
	Scope     Expr
	TypeArgs  []Type
	Type      *ClassType
	Args      []Expr
	Anonymous bool
	Body      []BodyDecl
}

func (*ObjectCreationExpr) Kind() Kind { return KindObjectCreationExpr }
func (n *ObjectCreationExpr) Children() []Node {
	return children(one(n.Scope), many(n.TypeArgs), one(n.Type), many(n.Args), many(n.Body))
}

// ArrayCreationExpr holds one level per dimension in source order. Levels
// with a dimension expression always precede empty ones.
type ArrayCreationExpr struct {
	At
	ElementType Type
	Levels      []*ArrayCreationLevel
	Init        *ArrayInitializerExpr
}

func (*ArrayCreationExpr) Kind() Kind { return KindArrayCreationExpr }
func (n *ArrayCreationExpr) Children() []Node {
	return children(one(n.ElementType), many(n.Levels), one(n.Init))
}

// ArrayCreationLevel is one `[Dimension]`; Dimension is nil for `[]`.
type ArrayCreationLevel struct {
	At
	Annotations []Annotation
	Dimension   Expr
}

func (*ArrayCreationLevel) Kind() Kind { return KindArrayCreationLevel }
func (n *ArrayCreationLevel) Children() []Node {
	return children(many(n.Annotations), one(n.Dimension))
}

type ArrayInitializerExpr struct {
	At
	Values []Expr
}

func (*ArrayInitializerExpr) Kind() Kind         { return KindArrayInitializerExpr }
func (n *ArrayInitializerExpr) Children() []Node { return many(n.Values) }

// LambdaExpr has either a *BlockStmt or an Expr body.
type LambdaExpr struct {
	At
	Params        []*Parameter
	Parenthesized bool
	Body          Node
}

func (*LambdaExpr) Kind() Kind         { return KindLambdaExpr }
func (n *LambdaExpr) Children() []Node { return children(many(n.Params), one(n.Body)) }

// ThisExpr is `this` or `Qualifier.this`.
type ThisExpr struct {
	At
	Qualifier *QualifiedName
}

func (*ThisExpr) Kind() Kind         { return KindThisExpr }
func (n *ThisExpr) Children() []Node { return one(n.Qualifier) }

// SuperExpr is `super` or `Qualifier.super`; it only appears as the scope
// of a field access or method reference.
type SuperExpr struct {
	At
	Qualifier *QualifiedName
}

func (*SuperExpr) Kind() Kind         { return KindSuperExpr }
func (n *SuperExpr) Children() []Node { return one(n.Qualifier) }

// TypeLiteralExpr is a class literal, Type.class.
type TypeLiteralExpr struct {
	At
	Type Type
}

func (*TypeLiteralExpr) Kind() Kind         { return KindTypeLiteralExpr }
func (n *TypeLiteralExpr) Children() []Node { return one(n.Type) }

// TypeExpr is a type used as the scope of a method reference, as in
// List<String>::size or int[]::new.
type TypeExpr struct {
	At
	Type Type
}

func (*TypeExpr) Kind() Kind         { return KindTypeExpr }
func (n *TypeExpr) Children() []Node { return one(n.Type) }

type BinaryExpr struct {
	At
	Op    string
	Left  Expr
	Right Expr
}

func (*BinaryExpr) Kind() Kind         { return KindBinaryExpr }
func (n *BinaryExpr) Children() []Node { return children(one(n.Left), one(n.Right)) }

// UnaryExpr is a prefix operator, or with Postfix set x++ and x--.
type UnaryExpr struct {
	At
	Op      string
	Postfix bool
	X       Expr
}

func (*UnaryExpr) Kind() Kind         { return KindUnaryExpr }
func (n *UnaryExpr) Children() []Node { return one(n.X) }

type AssignExpr struct {
	At
	Op     string
	Target Expr
	Value  Expr
}

func (*AssignExpr) Kind() Kind         { return KindAssignExpr }
func (n *AssignExpr) Children() []Node { return children(one(n.Target), one(n.Value)) }

type ConditionalExpr struct {
	At
	Cond Expr
	Then Expr
	Else Expr
}

func (*ConditionalExpr) Kind() Kind { return KindConditionalExpr }
func (n *ConditionalExpr) Children() []Node {
	return children(one(n.Cond), one(n.Then), one(n.Else))
}

// CastExpr casts X to the intersection of Types; most casts have one.
type CastExpr struct {
	At
	Types []Type
	X     Expr
}

func (*CastExpr) Kind() Kind         { return KindCastExpr }
func (n *CastExpr) Children() []Node { return children(many(n.Types), one(n.X)) }

type InstanceOfExpr struct {
	At
	X    Expr
	Type Type
}

func (*InstanceOfExpr) Kind() Kind         { return KindInstanceOfExpr }
func (n *InstanceOfExpr) Children() []Node { return children(one(n.X), one(n.Type)) }

// EnclosedExpr is a parenthesized expression.
type EnclosedExpr struct {
	At
	X Expr
}

func (*EnclosedExpr) Kind() Kind         { return KindEnclosedExpr }
func (n *EnclosedExpr) Children() []Node { return one(n.X) }
