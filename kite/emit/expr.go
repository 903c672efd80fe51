package emit

import (
	"github.com/dhamidi/kitejava/java/jast"
	"github.com/dhamidi/kitejava/kite/ast"
)

func exprs(es []ast.Expr) []jast.Expr {
	var out []jast.Expr
	for _, e := range es {
		out = append(out, Expr(e))
	}
	return out
}

// Expr converts one expression. Parentheses appear only where the source
// has them.
func Expr(e ast.Expr) jast.Expr {
	switch e := e.(type) {
	case *ast.IntegerLiteralExpr:
		return &jast.Literal{Text: e.Value}
	case *ast.LongLiteralExpr:
		return &jast.Literal{Text: e.Value}
	case *ast.DoubleLiteralExpr:
		return &jast.Literal{Text: e.Value}
	case *ast.CharLiteralExpr:
		return &jast.Literal{Text: "'" + e.Value + "'"}
	case *ast.StringLiteralExpr:
		return &jast.Literal{Text: `"` + e.Value + `"`}
	case *ast.BooleanLiteralExpr:
		if e.Value {
			return &jast.Literal{Text: "true"}
		}
		return &jast.Literal{Text: "false"}
	case *ast.NullLiteralExpr:
		return &jast.Literal{Text: "null"}

	case *ast.NameExpr:
		return &jast.Name{Name: e.Name}

	case *ast.FieldAccessExpr:
		return &jast.FieldAccess{Scope: Expr(e.Scope), Name: e.Name}

	case *ast.ArrayAccessExpr:
		return &jast.ArrayAccess{X: Expr(e.X), Index: Expr(e.Index)}

	case *ast.MethodInvocationExpr:
		return methodCall(e)

	case *ast.MethodReferenceExpr:
		return &jast.MethodRef{Scope: Expr(e.Scope), TypeArgs: types(e.TypeArgs), Name: e.Name}

	case *ast.TypeExpr:
		return &jast.TypeExpr{Type: Type(e.Type)}

	case *ast.ObjectCreationExpr:
		out := &jast.New{TypeArgs: types(e.TypeArgs), Type: classType(e.Type), Args: exprs(e.Args)}
		if e.Scope != nil {
			out.Scope = Expr(e.Scope)
		}
		if e.Anonymous {
			out.Body = &jast.ClassBody{}
			attachMembers(out.Body, e.Body)
		}
		return out

	case *ast.ArrayCreationExpr:
		out := &jast.NewArray{ElementType: Type(e.ElementType)}
		for _, l := range e.Levels {
			dim := &jast.ArrayDim{Annotations: annotations(l.Annotations)}
			if l.Dimension != nil {
				dim.Size = Expr(l.Dimension)
			}
			out.Dims = append(out.Dims, dim)
		}
		if e.Init != nil {
			out.Init = arrayInit(e.Init)
		}
		return out

	case *ast.ArrayInitializerExpr:
		return arrayInit(e)

	case *ast.LambdaExpr:
		out := &jast.Lambda{Parenthesized: e.Parenthesized}
		for _, p := range e.Params {
			out.Params = append(out.Params, parameter(p))
		}
		switch body := e.Body.(type) {
		case *ast.BlockStmt:
			out.Body = block(body)
		case ast.Expr:
			out.Body = Expr(body)
		default:
			unhandled(e)
		}
		return out

	case *ast.ThisExpr:
		out := &jast.This{}
		if e.Qualifier != nil {
			out.Qualifier = e.Qualifier.String()
		}
		return out

	case *ast.SuperExpr:
		out := &jast.Super{}
		if e.Qualifier != nil {
			out.Qualifier = e.Qualifier.String()
		}
		return out

	case *ast.TypeLiteralExpr:
		return &jast.ClassLiteral{Type: Type(e.Type)}

	case *ast.BinaryExpr:
		return &jast.Binary{Op: e.Op, Left: Expr(e.Left), Right: Expr(e.Right)}

	case *ast.UnaryExpr:
		return &jast.Unary{Op: e.Op, Postfix: e.Postfix, X: Expr(e.X)}

	case *ast.AssignExpr:
		return &jast.Assign{Op: e.Op, Target: Expr(e.Target), Value: Expr(e.Value)}

	case *ast.ConditionalExpr:
		return &jast.Conditional{Cond: Expr(e.Cond), Then: Expr(e.Then), Else: Expr(e.Else)}

	case *ast.CastExpr:
		return cast(e)

	case *ast.InstanceOfExpr:
		return &jast.InstanceOf{X: Expr(e.X), Type: Type(e.Type)}

	case *ast.EnclosedExpr:
		return &jast.Paren{X: Expr(e.X)}

	case ast.Annotation:
		return annotation(e)
	}
	unhandled(e)
	return nil
}

// methodCall splits the invocation target into scope and method name.
func methodCall(e *ast.MethodInvocationExpr) *jast.MethodCall {
	out := &jast.MethodCall{Args: exprs(e.Args)}
	switch target := e.Target.(type) {
	case *ast.NameExpr:
		out.Name = target.Name
	case *ast.FieldAccessExpr:
		out.Scope = Expr(target.Scope)
		out.TypeArgs = types(target.TypeArgs)
		out.Name = target.Name
	default:
		unhandled(e)
	}
	return out
}

// cast emits a cast to a single type as a plain cast and a cast to several
// types as an intersection cast.
func cast(e *ast.CastExpr) *jast.Cast {
	if len(e.Types) == 1 {
		return &jast.Cast{Type: Type(e.Types[0]), X: Expr(e.X)}
	}
	return &jast.Cast{Type: &jast.IntersectionType{Types: types(e.Types)}, X: Expr(e.X)}
}

func arrayInit(e *ast.ArrayInitializerExpr) *jast.ArrayInit {
	return &jast.ArrayInit{Values: exprs(e.Values)}
}
