package jast

type ClassDecl struct {
	Annotations []*Annotation
	Modifiers   []string
	Name        string
	TypeParams  []*TypeParameter
	Extends     *ClassType
	Implements  []*ClassType
	Body        *ClassBody
}

// NewClass returns a class declaration with an empty body.
func NewClass(name string) *ClassDecl {
	return &ClassDecl{Name: name, Body: &ClassBody{}}
}

func (d *ClassDecl) TypeName() string { return d.Name }

func (d *ClassDecl) AddImplements(t *ClassType) {
	d.Implements = append(d.Implements, t)
}

type InterfaceDecl struct {
	Annotations []*Annotation
	Modifiers   []string
	Name        string
	TypeParams  []*TypeParameter
	Extends     []*ClassType
	Body        *ClassBody
}

func NewInterface(name string) *InterfaceDecl {
	return &InterfaceDecl{Name: name, Body: &ClassBody{}}
}

func (d *InterfaceDecl) TypeName() string { return d.Name }

func (d *InterfaceDecl) AddExtends(t *ClassType) {
	d.Extends = append(d.Extends, t)
}

type AnnotationDecl struct {
	Annotations []*Annotation
	Modifiers   []string
	Name        string
	Body        *ClassBody
}

func NewAnnotationDecl(name string) *AnnotationDecl {
	return &AnnotationDecl{Name: name, Body: &ClassBody{}}
}

func (d *AnnotationDecl) TypeName() string { return d.Name }

// ClassBody holds members in declaration order.
type ClassBody struct {
	Members []Member
}

func (b *ClassBody) AddMember(m Member) {
	b.Members = append(b.Members, m)
}

func (b *ClassBody) AddType(decl TypeDecl) {
	b.AddMember(decl)
}

// FieldDecl declares one or more fields of the same type.
type FieldDecl struct {
	Annotations []*Annotation
	Modifiers   []string
	Type        Type
	Variables   []*VariableDeclarator
}

type VariableDeclarator struct {
	Name string
	Init Expr
}

type MethodDecl struct {
	Annotations []*Annotation
	Modifiers   []string
	TypeParams  []*TypeParameter
	Result      Type
	Name        string
	Params      []*Parameter
	Throws      []*ClassType
	// Body is nil for a method without body.
	Body *Block
}

func (d *MethodDecl) AddParam(p *Parameter) {
	d.Params = append(d.Params, p)
}

type ConstructorDecl struct {
	Annotations []*Annotation
	Modifiers   []string
	TypeParams  []*TypeParameter
	Name        string
	Params      []*Parameter
	Throws      []*ClassType
	Body        *Block
}

func (d *ConstructorDecl) AddParam(p *Parameter) {
	d.Params = append(d.Params, p)
}

// Initializer is an instance initializer, or a static one when Static is
// set.
type Initializer struct {
	Static bool
	Body   *Block
}

// AnnotationMember is an element of an annotation type.
type AnnotationMember struct {
	Annotations []*Annotation
	Modifiers   []string
	Type        Type
	Name        string
	Default     Expr
}

type Parameter struct {
	Annotations []*Annotation
	Modifiers   []string
	// Type is nil for an inferred lambda parameter.
	Type              Type
	Varargs           bool
	VarargAnnotations []*Annotation
	Name              string
}

func (*ClassDecl) jastNode()          {}
func (*InterfaceDecl) jastNode()      {}
func (*AnnotationDecl) jastNode()     {}
func (*ClassBody) jastNode()          {}
func (*FieldDecl) jastNode()          {}
func (*VariableDeclarator) jastNode() {}
func (*MethodDecl) jastNode()         {}
func (*ConstructorDecl) jastNode()    {}
func (*Initializer) jastNode()        {}
func (*AnnotationMember) jastNode()   {}
func (*Parameter) jastNode()          {}

func (*ClassDecl) member()        {}
func (*InterfaceDecl) member()    {}
func (*AnnotationDecl) member()   {}
func (*FieldDecl) member()        {}
func (*MethodDecl) member()       {}
func (*ConstructorDecl) member()  {}
func (*Initializer) member()      {}
func (*AnnotationMember) member() {}

func (*ClassDecl) typeDecl()      {}
func (*InterfaceDecl) typeDecl()  {}
func (*AnnotationDecl) typeDecl() {}
