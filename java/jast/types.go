package jast

type Type interface {
	Node
	jtype()
}

type PrimitiveType struct {
	Annotations []*Annotation
	Name        string
}

// ClassType is one segment of a possibly qualified class type; Scope is the
// segment before it. Diamond marks an empty <> type argument list.
type ClassType struct {
	Scope       *ClassType
	Annotations []*Annotation
	Name        string
	TypeArgs    []Type
	Diamond     bool
}

// NewClassType builds a class type from a dotted name.
func NewClassType(parts ...string) *ClassType {
	var t *ClassType
	for _, part := range parts {
		t = &ClassType{Scope: t, Name: part}
	}
	return t
}

// ArrayType is Component[]; Annotations belong to this dimension.
type ArrayType struct {
	Component   Type
	Annotations []*Annotation
}

// ArrayOf wraps t in dims array dimensions without annotations.
func ArrayOf(t Type, dims int) Type {
	for i := 0; i < dims; i++ {
		t = &ArrayType{Component: t}
	}
	return t
}

type WildcardType struct {
	Annotations []*Annotation
	Extends     Type
	Super       Type
}

type VoidType struct{}

// IntersectionType is A & B, used only as the type of a cast.
type IntersectionType struct {
	Types []Type
}

type TypeParameter struct {
	Annotations []*Annotation
	Name        string
	Bounds      []*ClassType
}

func (*PrimitiveType) jastNode()    {}
func (*ClassType) jastNode()        {}
func (*ArrayType) jastNode()        {}
func (*WildcardType) jastNode()     {}
func (*VoidType) jastNode()         {}
func (*IntersectionType) jastNode() {}
func (*TypeParameter) jastNode()    {}

func (*PrimitiveType) jtype()    {}
func (*ClassType) jtype()        {}
func (*ArrayType) jtype()        {}
func (*WildcardType) jtype()     {}
func (*VoidType) jtype()         {}
func (*IntersectionType) jtype() {}
