package emit

import (
	"github.com/dhamidi/kitejava/java/jast"
	"github.com/dhamidi/kitejava/kite/ast"
)

func types(ts []ast.Type) []jast.Type {
	var out []jast.Type
	for _, t := range ts {
		out = append(out, Type(t))
	}
	return out
}

// Type converts a type reference.
func Type(t ast.Type) jast.Type {
	switch t := t.(type) {
	case *ast.PrimitiveType:
		return &jast.PrimitiveType{Annotations: annotations(t.Annotations), Name: t.Name}
	case *ast.ClassType:
		return classType(t)
	case *ast.ArrayType:
		return &jast.ArrayType{Component: Type(t.Component), Annotations: annotations(t.Annotations)}
	case *ast.WildcardType:
		out := &jast.WildcardType{Annotations: annotations(t.Annotations)}
		if t.Extends != nil {
			out.Extends = Type(t.Extends)
		}
		if t.Super != nil {
			out.Super = Type(t.Super)
		}
		return out
	case *ast.VoidType:
		return &jast.VoidType{}
	}
	unhandled(t)
	return nil
}

func classType(t *ast.ClassType) *jast.ClassType {
	out := &jast.ClassType{
		Annotations: annotations(t.Annotations),
		Name:        t.Name,
		TypeArgs:    types(t.TypeArgs),
		Diamond:     t.Diamond,
	}
	if t.Scope != nil {
		out.Scope = classType(t.Scope)
	}
	return out
}

// withDims wraps t in the array dimensions written after a declarator
// name. They are outside the dimensions of the declared type, and the
// first one written is the outermost.
func withDims(t jast.Type, dims []*ast.ArrayDim) jast.Type {
	for i := len(dims) - 1; i >= 0; i-- {
		t = &jast.ArrayType{Component: t, Annotations: annotations(dims[i].Annotations)}
	}
	return t
}

func typeParams(tps []*ast.TypeParameter) []*jast.TypeParameter {
	var out []*jast.TypeParameter
	for _, tp := range tps {
		p := &jast.TypeParameter{Annotations: annotations(tp.Annotations), Name: tp.Name}
		for _, b := range tp.Bounds {
			p.Bounds = append(p.Bounds, classType(b))
		}
		out = append(out, p)
	}
	return out
}

func exceptionTypes(ets []*ast.ExceptionType) []*jast.ClassType {
	var out []*jast.ClassType
	for _, et := range ets {
		out = append(out, classType(et.Type))
	}
	return out
}
