package ast

type BlockStmt struct {
	At
	Stmts []Stmt
}

func (*BlockStmt) Kind() Kind         { return KindBlockStmt }
func (n *BlockStmt) Children() []Node { return many(n.Stmts) }

// LocalVarDeclStmt declares local variables. Variables are immutable
// unless declared mutable, so Modifiers always holds final or mutable.
type LocalVarDeclStmt struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	Type        Type
	Variables   []*VariableDeclarator
}

func (*LocalVarDeclStmt) Kind() Kind { return KindLocalVarDeclStmt }
func (n *LocalVarDeclStmt) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), one(n.Type), many(n.Variables))
}

type EmptyStmt struct{ At }

func (*EmptyStmt) Kind() Kind       { return KindEmptyStmt }
func (*EmptyStmt) Children() []Node { return nil }

type ExprStmt struct {
	At
	X Expr
}

func (*ExprStmt) Kind() Kind         { return KindExprStmt }
func (n *ExprStmt) Children() []Node { return one(n.X) }

type IfStmt struct {
	At
	Cond Expr
	Then Stmt
	Else Stmt
}

func (*IfStmt) Kind() Kind { return KindIfStmt }
func (n *IfStmt) Children() []Node {
	return children(one(n.Cond), one(n.Then), one(n.Else))
}

type WhileStmt struct {
	At
	Cond Expr
	Body Stmt
}

func (*WhileStmt) Kind() Kind         { return KindWhileStmt }
func (n *WhileStmt) Children() []Node { return children(one(n.Cond), one(n.Body)) }

type DoStmt struct {
	At
	Body Stmt
	Cond Expr
}

func (*DoStmt) Kind() Kind         { return KindDoStmt }
func (n *DoStmt) Children() []Node { return children(one(n.Body), one(n.Cond)) }

// ForStmt is the basic for loop. Its init part is either Decl or the Init
// expressions, never both.
type ForStmt struct {
	At
	Decl   *LocalVarDeclStmt
	Init   []Expr
	Cond   Expr
	Update []Expr
	Body   Stmt
}

func (*ForStmt) Kind() Kind { return KindForStmt }
func (n *ForStmt) Children() []Node {
	return children(one(n.Decl), many(n.Init), one(n.Cond), many(n.Update), one(n.Body))
}

type ForEachStmt struct {
	At
	Variable *Parameter
	Iterable Expr
	Body     Stmt
}

func (*ForEachStmt) Kind() Kind { return KindForEachStmt }
func (n *ForEachStmt) Children() []Node {
	return children(one(n.Variable), one(n.Iterable), one(n.Body))
}

type TryStmt struct {
	At
	Resources []*Resource
	Body      *BlockStmt
	Catches   []*CatchClause
	Finally   *BlockStmt
}

func (*TryStmt) Kind() Kind { return KindTryStmt }
func (n *TryStmt) Children() []Node {
	return children(many(n.Resources), one(n.Body), many(n.Catches), one(n.Finally))
}

// Resource is either a declaration `T name = init` or, when Type is nil, an
// existing variable given by Init.
type Resource struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	Type        Type
	Name        string
	Init        Expr
}

func (*Resource) Kind() Kind { return KindResource }
func (n *Resource) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), one(n.Type), one(n.Init))
}

type CatchClause struct {
	At
	Param *CatchParameter
	Body  *BlockStmt
}

func (*CatchClause) Kind() Kind         { return KindCatchClause }
func (n *CatchClause) Children() []Node { return children(one(n.Param), one(n.Body)) }

// CatchParameter has more than one type for a multi-catch.
type CatchParameter struct {
	At
	Annotations []Annotation
	Modifiers   []*Modifier
	Types       []*ExceptionType
	Name        string
}

func (*CatchParameter) Kind() Kind { return KindCatchParameter }
func (n *CatchParameter) Children() []Node {
	return children(many(n.Annotations), many(n.Modifiers), many(n.Types))
}

type SwitchStmt struct {
	At
	Selector Expr
	Groups   []*SwitchGroup
}

func (*SwitchStmt) Kind() Kind         { return KindSwitchStmt }
func (n *SwitchStmt) Children() []Node { return children(one(n.Selector), many(n.Groups)) }

type SwitchGroup struct {
	At
	Labels []*SwitchLabel
	Stmts  []Stmt
}

func (*SwitchGroup) Kind() Kind         { return KindSwitchGroup }
func (n *SwitchGroup) Children() []Node { return children(many(n.Labels), many(n.Stmts)) }

// SwitchLabel is `case Value:` or, with a nil Value, `default:`.
type SwitchLabel struct {
	At
	Value Expr
}

func (*SwitchLabel) Kind() Kind         { return KindSwitchLabel }
func (n *SwitchLabel) Children() []Node { return one(n.Value) }

func (n *SwitchLabel) IsDefault() bool { return n.Value == nil }

type SynchronizedStmt struct {
	At
	Lock Expr
	Body *BlockStmt
}

func (*SynchronizedStmt) Kind() Kind         { return KindSynchronizedStmt }
func (n *SynchronizedStmt) Children() []Node { return children(one(n.Lock), one(n.Body)) }

type LabeledStmt struct {
	At
	Label string
	Body  Stmt
}

func (*LabeledStmt) Kind() Kind         { return KindLabeledStmt }
func (n *LabeledStmt) Children() []Node { return one(n.Body) }

type BreakStmt struct {
	At
	Label string
}

func (*BreakStmt) Kind() Kind       { return KindBreakStmt }
func (*BreakStmt) Children() []Node { return nil }

type ContinueStmt struct {
	At
	Label string
}

func (*ContinueStmt) Kind() Kind       { return KindContinueStmt }
func (*ContinueStmt) Children() []Node { return nil }

type ReturnStmt struct {
	At
	Value Expr
}

func (*ReturnStmt) Kind() Kind         { return KindReturnStmt }
func (n *ReturnStmt) Children() []Node { return one(n.Value) }

type ThrowStmt struct {
	At
	X Expr
}

func (*ThrowStmt) Kind() Kind         { return KindThrowStmt }
func (n *ThrowStmt) Children() []Node { return one(n.X) }

type AssertStmt struct {
	At
	Cond    Expr
	Message Expr
}

func (*AssertStmt) Kind() Kind         { return KindAssertStmt }
func (n *AssertStmt) Children() []Node { return children(one(n.Cond), one(n.Message)) }

// ExplicitConstructorInvocation is this(...) or super(...) as the first
// statement of a constructor. Scope is set for outer.super(...).
type ExplicitConstructorInvocation struct {
	At
	This     bool
	Scope    Expr
	TypeArgs []Type
	Args     []Expr
}

func (*ExplicitConstructorInvocation) Kind() Kind { return KindExplicitConstructorInvocation }
func (n *ExplicitConstructorInvocation) Children() []Node {
	return children(one(n.Scope), many(n.TypeArgs), many(n.Args))
}
