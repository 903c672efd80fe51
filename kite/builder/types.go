package builder

import (
	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/parser"
)

// typ converts Type{Annotation..., PrimitiveType|ClassType, [Dims]}.
// Leading annotations are passed down to the element type; for a qualified
// class type they land on the last segment. Dimension annotations stay with
// their dimension.
func (b *builder) typ(n *parser.Node) ast.Type {
	if n.Kind != parser.KindType {
		b.fail(n, "expected Type")
	}
	c := b.cursor(n)
	anns := b.annotations(c.many(parser.KindAnnotation))

	var elem ast.Type
	base := c.expect(parser.KindPrimitiveType, parser.KindClassType)
	if base.Kind == parser.KindPrimitiveType {
		elem = &ast.PrimitiveType{At: at(n), Annotations: anns, Name: base.TokenLiteral()}
	} else {
		elem = b.classType(base, anns)
	}

	var dims []*ast.ArrayDim
	if d := c.optional(parser.KindDims); d != nil {
		dims = b.dims(d)
	}
	c.done()
	return withDims(elem, dims)
}

// withDims wraps t in one ArrayType per dimension. The first dimension
// written becomes the outermost array type.
func withDims(t ast.Type, dims []*ast.ArrayDim) ast.Type {
	for i := len(dims) - 1; i >= 0; i-- {
		t = &ast.ArrayType{At: dims[i].At, Component: t, Annotations: dims[i].Annotations}
	}
	return t
}

func (b *builder) dims(n *parser.Node) []*ast.ArrayDim {
	var out []*ast.ArrayDim
	for _, dim := range b.cursor(n).rest() {
		if dim.Kind != parser.KindDim {
			b.unexpected(dim, "dimensions")
		}
		out = append(out, &ast.ArrayDim{At: at(dim), Annotations: b.annotations(b.cursor(dim).rest())})
	}
	return out
}

// classType converts ClassType{ClassTypeElement...} into a chain of
// ast.ClassType linked through Scope. outer annotations go to the last
// segment, which is the one the whole type denotes.
func (b *builder) classType(n *parser.Node, outer []ast.Annotation) *ast.ClassType {
	if n.Kind != parser.KindClassType {
		b.fail(n, "expected ClassType")
	}
	elems := b.cursor(n).rest()
	if len(elems) == 0 {
		b.fail(n, "empty class type")
	}

	var t *ast.ClassType
	for i, elem := range elems {
		if elem.Kind != parser.KindClassTypeElement {
			b.unexpected(elem, "class type")
		}
		c := b.cursor(elem)
		seg := &ast.ClassType{At: at(elem), Scope: t}
		seg.Annotations = b.annotations(c.many(parser.KindAnnotation))
		seg.Name = b.identifier(c.expect(parser.KindIdentifier))
		if targs := c.optional(parser.KindTypeArguments); targs != nil {
			seg.TypeArgs = b.typeArguments(targs)
			seg.Diamond = len(seg.TypeArgs) == 0
		}
		c.done()

		if i == len(elems)-1 {
			seg.At = at(n)
			seg.Annotations = append(append([]ast.Annotation(nil), outer...), seg.Annotations...)
		}
		t = seg
	}
	return t
}

// typeArguments returns nil for the diamond.
func (b *builder) typeArguments(n *parser.Node) []ast.Type {
	var out []ast.Type
	for _, arg := range b.cursor(n).rest() {
		switch arg.Kind {
		case parser.KindType:
			out = append(out, b.typ(arg))
		case parser.KindWildcard:
			out = append(out, b.wildcard(arg))
		default:
			b.unexpected(arg, "type arguments")
		}
	}
	return out
}

func (b *builder) wildcard(n *parser.Node) *ast.WildcardType {
	c := b.cursor(n)
	w := &ast.WildcardType{At: at(n)}
	w.Annotations = b.annotations(c.many(parser.KindAnnotation))
	if op := c.optional(parser.KindOperator); op != nil {
		bound := b.typ(c.expect(parser.KindType))
		switch op.TokenLiteral() {
		case "extends":
			w.Extends = bound
		case "super":
			w.Super = bound
		default:
			b.fail(op, "wildcard bound %q", op.TokenLiteral())
		}
	}
	c.done()
	return w
}

func (b *builder) typeParameters(n *parser.Node) []*ast.TypeParameter {
	var out []*ast.TypeParameter
	for _, child := range b.cursor(n).rest() {
		if child.Kind != parser.KindTypeParameter {
			b.unexpected(child, "type parameters")
		}
		c := b.cursor(child)
		tp := &ast.TypeParameter{At: at(child)}
		tp.Annotations = b.annotations(c.many(parser.KindAnnotation))
		tp.Name = b.identifier(c.expect(parser.KindIdentifier))
		if bound := c.optional(parser.KindTypeBound); bound != nil {
			tp.Bounds = b.classTypeList(bound)
		}
		c.done()
		out = append(out, tp)
	}
	return out
}
