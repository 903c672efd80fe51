package ast

type PrimitiveType struct {
	At
	Annotations []Annotation
	Name        string
}

func (*PrimitiveType) Kind() Kind         { return KindPrimitiveType }
func (n *PrimitiveType) Children() []Node { return many(n.Annotations) }

// ClassType is one segment of a class or interface type. Scope is the
// segment to its left, so a.b.C<T> is C<T> scoped by b scoped by a.
// Diamond marks an empty argument list as in `new ArrayList<>()`.
type ClassType struct {
	At
	Scope       *ClassType
	Annotations []Annotation
	Name        string
	TypeArgs    []Type
	Diamond     bool
}

func (*ClassType) Kind() Kind { return KindClassType }
func (n *ClassType) Children() []Node {
	return children(one(n.Scope), many(n.Annotations), many(n.TypeArgs))
}

// Segments returns the chain from the outermost scope to n.
func (n *ClassType) Segments() []*ClassType {
	var out []*ClassType
	for t := n; t != nil; t = t.Scope {
		out = append(out, t)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ArrayType is Component[]. Annotations belong to this dimension. For
// `int @A [] @B []` the outer ArrayType carries @A.
type ArrayType struct {
	At
	Component   Type
	Annotations []Annotation
}

func (*ArrayType) Kind() Kind { return KindArrayType }
func (n *ArrayType) Children() []Node {
	return children(one(n.Component), many(n.Annotations))
}

// ElementType strips every array level.
func ElementType(t Type) Type {
	for {
		a, ok := t.(*ArrayType)
		if !ok {
			return t
		}
		t = a.Component
	}
}

// WildcardType is ?, ? extends T or ? super T.
type WildcardType struct {
	At
	Annotations []Annotation
	Extends     Type
	Super       Type
}

func (*WildcardType) Kind() Kind { return KindWildcardType }
func (n *WildcardType) Children() []Node {
	return children(many(n.Annotations), one(n.Extends), one(n.Super))
}

type VoidType struct{ At }

func (*VoidType) Kind() Kind       { return KindVoidType }
func (*VoidType) Children() []Node { return nil }

// TypeParameter declares Name with optional bounds T & U & ...
type TypeParameter struct {
	At
	Annotations []Annotation
	Name        string
	Bounds      []*ClassType
}

func (*TypeParameter) Kind() Kind { return KindTypeParameter }
func (n *TypeParameter) Children() []Node {
	return children(many(n.Annotations), many(n.Bounds))
}

// ExceptionType is a type in a throws clause or catch parameter.
type ExceptionType struct {
	At
	Type *ClassType
}

func (*ExceptionType) Kind() Kind         { return KindExceptionType }
func (n *ExceptionType) Children() []Node { return one(n.Type) }
