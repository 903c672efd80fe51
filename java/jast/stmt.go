package jast

type Stmt interface {
	Node
	stmt()
}

type Block struct {
	Stmts []Stmt
}

func (b *Block) Add(s Stmt) {
	b.Stmts = append(b.Stmts, s)
}

type LocalVarDecl struct {
	Annotations []*Annotation
	Modifiers   []string
	Type        Type
	Variables   []*VariableDeclarator
}

type EmptyStmt struct{}

type ExprStmt struct {
	X Expr
}

type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

type WhileStmt struct {
	Cond Expr
	Body Stmt
}

type DoStmt struct {
	Body Stmt
	Cond Expr
}

// ForStmt has either Decl or Init as its initialization part.
type ForStmt struct {
	Decl   *LocalVarDecl
	Init   []Expr
	Cond   Expr
	Update []Expr
	Body   Stmt
}

type ForEachStmt struct {
	Variable *Parameter
	Iterable Expr
	Body     Stmt
}

type TryStmt struct {
	Resources []*Resource
	Body      *Block
	Catches   []*CatchClause
	Finally   *Block
}

// Resource declares a variable when Type is set and refers to an existing
// one otherwise.
type Resource struct {
	Annotations []*Annotation
	Modifiers   []string
	Type        Type
	Name        string
	Init        Expr
}

type CatchClause struct {
	Annotations []*Annotation
	Modifiers   []string
	Types       []*ClassType
	Name        string
	Body        *Block
}

type SwitchStmt struct {
	Selector Expr
	Groups   []*SwitchGroup
}

type SwitchGroup struct {
	Labels []*SwitchLabel
	Stmts  []Stmt
}

// SwitchLabel is `case Value:`, or `default:` when Value is nil.
type SwitchLabel struct {
	Value Expr
}

type SynchronizedStmt struct {
	Lock Expr
	Body *Block
}

type LabeledStmt struct {
	Label string
	Body  Stmt
}

type BreakStmt struct {
	Label string
}

type ContinueStmt struct {
	Label string
}

type ReturnStmt struct {
	Value Expr
}

type ThrowStmt struct {
	X Expr
}

type AssertStmt struct {
	Cond    Expr
	Message Expr
}

// ConstructorCall is this(...) or [Scope.]super(...) as the first
// statement of a constructor.
type ConstructorCall struct {
	This     bool
	Scope    Expr
	TypeArgs []Type
	Args     []Expr
}

func (*Block) jastNode()            {}
func (*LocalVarDecl) jastNode()     {}
func (*EmptyStmt) jastNode()        {}
func (*ExprStmt) jastNode()         {}
func (*IfStmt) jastNode()           {}
func (*WhileStmt) jastNode()        {}
func (*DoStmt) jastNode()           {}
func (*ForStmt) jastNode()          {}
func (*ForEachStmt) jastNode()      {}
func (*TryStmt) jastNode()          {}
func (*Resource) jastNode()         {}
func (*CatchClause) jastNode()      {}
func (*SwitchStmt) jastNode()       {}
func (*SwitchGroup) jastNode()      {}
func (*SwitchLabel) jastNode()      {}
func (*SynchronizedStmt) jastNode() {}
func (*LabeledStmt) jastNode()      {}
func (*BreakStmt) jastNode()        {}
func (*ContinueStmt) jastNode()     {}
func (*ReturnStmt) jastNode()       {}
func (*ThrowStmt) jastNode()        {}
func (*AssertStmt) jastNode()       {}
func (*ConstructorCall) jastNode()  {}

func (*Block) stmt()            {}
func (*LocalVarDecl) stmt()     {}
func (*EmptyStmt) stmt()        {}
func (*ExprStmt) stmt()         {}
func (*IfStmt) stmt()           {}
func (*WhileStmt) stmt()        {}
func (*DoStmt) stmt()           {}
func (*ForStmt) stmt()          {}
func (*ForEachStmt) stmt()      {}
func (*TryStmt) stmt()          {}
func (*SwitchStmt) stmt()       {}
func (*SynchronizedStmt) stmt() {}
func (*LabeledStmt) stmt()      {}
func (*BreakStmt) stmt()        {}
func (*ContinueStmt) stmt()     {}
func (*ReturnStmt) stmt()       {}
func (*ThrowStmt) stmt()        {}
func (*AssertStmt) stmt()       {}
func (*ConstructorCall) stmt()  {}
