package jast

type Expr interface {
	Node
	expr()
}

// Literal is printed exactly as Text, which includes quotes and suffixes.
type Literal struct {
	Text string
}

type Name struct {
	Name string
}

type FieldAccess struct {
	Scope Expr
	Name  string
}

type ArrayAccess struct {
	X     Expr
	Index Expr
}

// MethodCall is [Scope.][<TypeArgs>]Name(Args).
type MethodCall struct {
	Scope    Expr
	TypeArgs []Type
	Name     string
	Args     []Expr
}

type MethodRef struct {
	Scope    Expr
	TypeArgs []Type
	Name     string
}

// TypeExpr is a type used as the scope of a method reference.
type TypeExpr struct {
	Type Type
}

// New is [Scope.]new [<TypeArgs>] Type(Args) [Body].
type New struct {
	Scope    Expr
	TypeArgs []Type
	Type     *ClassType
	Args     []Expr
	Body     *ClassBody
}

// NewArray lists its dimensions in source order; dimensions without a size
// follow the sized ones.
type NewArray struct {
	ElementType Type
	Dims        []*ArrayDim
	Init        *ArrayInit
}

type ArrayDim struct {
	Annotations []*Annotation
	Size        Expr
}

type ArrayInit struct {
	Values []Expr
}

// Lambda has an Expr or a *Block as Body.
type Lambda struct {
	Params        []*Parameter
	Parenthesized bool
	Body          Node
}

type This struct {
	Qualifier string
}

type Super struct {
	Qualifier string
}

type ClassLiteral struct {
	Type Type
}

type Binary struct {
	Op    string
	Left  Expr
	Right Expr
}

type Unary struct {
	Op      string
	Postfix bool
	X       Expr
}

type Assign struct {
	Op     string
	Target Expr
	Value  Expr
}

type Conditional struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Cast has an *IntersectionType as Type for (A & B) x.
type Cast struct {
	Type Type
	X    Expr
}

type InstanceOf struct {
	X    Expr
	Type Type
}

type Paren struct {
	X Expr
}

func (*Literal) jastNode()      {}
func (*Name) jastNode()         {}
func (*FieldAccess) jastNode()  {}
func (*ArrayAccess) jastNode()  {}
func (*MethodCall) jastNode()   {}
func (*MethodRef) jastNode()    {}
func (*TypeExpr) jastNode()     {}
func (*New) jastNode()          {}
func (*NewArray) jastNode()     {}
func (*ArrayDim) jastNode()     {}
func (*ArrayInit) jastNode()    {}
func (*Lambda) jastNode()       {}
func (*This) jastNode()         {}
func (*Super) jastNode()        {}
func (*ClassLiteral) jastNode() {}
func (*Binary) jastNode()       {}
func (*Unary) jastNode()        {}
func (*Assign) jastNode()       {}
func (*Conditional) jastNode()  {}
func (*Cast) jastNode()         {}
func (*InstanceOf) jastNode()   {}
func (*Paren) jastNode()        {}

func (*Annotation) expr()   {}
func (*Literal) expr()      {}
func (*Name) expr()         {}
func (*FieldAccess) expr()  {}
func (*ArrayAccess) expr()  {}
func (*MethodCall) expr()   {}
func (*MethodRef) expr()    {}
func (*TypeExpr) expr()     {}
func (*New) expr()          {}
func (*NewArray) expr()     {}
func (*ArrayInit) expr()    {}
func (*Lambda) expr()       {}
func (*This) expr()         {}
func (*Super) expr()        {}
func (*ClassLiteral) expr() {}
func (*Binary) expr()       {}
func (*Unary) expr()        {}
func (*Assign) expr()       {}
func (*Conditional) expr()  {}
func (*Cast) expr()         {}
func (*InstanceOf) expr()   {}
func (*Paren) expr()        {}
