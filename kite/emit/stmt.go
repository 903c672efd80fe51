package emit

import (
	"github.com/dhamidi/kitejava/java/jast"
	"github.com/dhamidi/kitejava/kite/ast"
)

func block(b *ast.BlockStmt) *jast.Block {
	out := &jast.Block{}
	attachStmts(out, b)
	return out
}

func attachStmts(out *jast.Block, b *ast.BlockStmt) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		AttachStmt(out, s)
	}
}

// AttachStmt converts s and adds the result to b. A local variable
// declaration whose declarators need different Java types is added as one
// declaration per type.
func AttachStmt(b *jast.Block, s ast.Stmt) {
	if decl, ok := s.(*ast.LocalVarDeclStmt); ok {
		for _, d := range localVarDecls(decl) {
			b.Add(d)
		}
		return
	}
	b.Add(Stmt(s))
}

func localVarDecls(s *ast.LocalVarDeclStmt) []*jast.LocalVarDecl {
	var out []*jast.LocalVarDecl
	for _, g := range declarators(s.Type, s.Variables) {
		out = append(out, &jast.LocalVarDecl{
			Annotations: annotations(s.Annotations),
			Modifiers:   modifiers(s.Modifiers),
			Type:        g.typ,
			Variables:   g.vars,
		})
	}
	return out
}

// Stmt converts one statement. A local variable declaration that needs
// more than one Java declaration becomes a block holding them. Statements
// of a block go through AttachStmt instead.
func Stmt(s ast.Stmt) jast.Stmt {
	switch s := s.(type) {
	case *ast.BlockStmt:
		return block(s)

	case *ast.LocalVarDeclStmt:
		decls := localVarDecls(s)
		if len(decls) == 1 {
			return decls[0]
		}
		out := &jast.Block{}
		for _, d := range decls {
			out.Add(d)
		}
		return out

	case *ast.EmptyStmt:
		return &jast.EmptyStmt{}

	case *ast.ExprStmt:
		return &jast.ExprStmt{X: Expr(s.X)}

	case *ast.IfStmt:
		out := &jast.IfStmt{Cond: Expr(s.Cond), Then: Stmt(s.Then)}
		if s.Else != nil {
			out.Else = Stmt(s.Else)
		}
		return out

	case *ast.WhileStmt:
		return &jast.WhileStmt{Cond: Expr(s.Cond), Body: Stmt(s.Body)}

	case *ast.DoStmt:
		return &jast.DoStmt{Body: Stmt(s.Body), Cond: Expr(s.Cond)}

	case *ast.ForStmt:
		return forStmt(s)

	case *ast.ForEachStmt:
		return &jast.ForEachStmt{Variable: parameter(s.Variable), Iterable: Expr(s.Iterable), Body: Stmt(s.Body)}

	case *ast.TryStmt:
		out := &jast.TryStmt{Body: block(s.Body)}
		for _, r := range s.Resources {
			out.Resources = append(out.Resources, resource(r))
		}
		for _, c := range s.Catches {
			out.Catches = append(out.Catches, catchClause(c))
		}
		if s.Finally != nil {
			out.Finally = block(s.Finally)
		}
		return out

	case *ast.SwitchStmt:
		out := &jast.SwitchStmt{Selector: Expr(s.Selector)}
		for _, g := range s.Groups {
			group := &jast.SwitchGroup{}
			for _, l := range g.Labels {
				label := &jast.SwitchLabel{}
				if !l.IsDefault() {
					label.Value = Expr(l.Value)
				}
				group.Labels = append(group.Labels, label)
			}
			stmts := &jast.Block{}
			for _, st := range g.Stmts {
				AttachStmt(stmts, st)
			}
			group.Stmts = stmts.Stmts
			out.Groups = append(out.Groups, group)
		}
		return out

	case *ast.SynchronizedStmt:
		return &jast.SynchronizedStmt{Lock: Expr(s.Lock), Body: block(s.Body)}

	case *ast.LabeledStmt:
		return &jast.LabeledStmt{Label: s.Label, Body: Stmt(s.Body)}

	case *ast.BreakStmt:
		return &jast.BreakStmt{Label: s.Label}

	case *ast.ContinueStmt:
		return &jast.ContinueStmt{Label: s.Label}

	case *ast.ReturnStmt:
		out := &jast.ReturnStmt{}
		if s.Value != nil {
			out.Value = Expr(s.Value)
		}
		return out

	case *ast.ThrowStmt:
		return &jast.ThrowStmt{X: Expr(s.X)}

	case *ast.AssertStmt:
		out := &jast.AssertStmt{Cond: Expr(s.Cond)}
		if s.Message != nil {
			out.Message = Expr(s.Message)
		}
		return out

	case *ast.ExplicitConstructorInvocation:
		out := &jast.ConstructorCall{This: s.This, TypeArgs: types(s.TypeArgs), Args: exprs(s.Args)}
		if s.Scope != nil {
			out.Scope = Expr(s.Scope)
		}
		return out
	}
	unhandled(s)
	return nil
}

// forStmt converts a for loop. When the declaration in the init part needs
// more than one Java declaration, the declarations move in front of the
// loop and both are wrapped in a block to keep their scope.
func forStmt(s *ast.ForStmt) jast.Stmt {
	out := &jast.ForStmt{Update: exprs(s.Update), Body: Stmt(s.Body)}
	if s.Cond != nil {
		out.Cond = Expr(s.Cond)
	}
	if s.Decl == nil {
		out.Init = exprs(s.Init)
		return out
	}

	decls := localVarDecls(s.Decl)
	if len(decls) == 1 {
		out.Decl = decls[0]
		return out
	}
	wrapper := &jast.Block{}
	for _, d := range decls {
		wrapper.Add(d)
	}
	wrapper.Add(out)
	return wrapper
}

func resource(r *ast.Resource) *jast.Resource {
	out := &jast.Resource{Init: Expr(r.Init)}
	if r.Type != nil {
		out.Annotations = annotations(r.Annotations)
		out.Modifiers = modifiers(r.Modifiers)
		out.Type = Type(r.Type)
		out.Name = r.Name
	}
	return out
}

func catchClause(c *ast.CatchClause) *jast.CatchClause {
	out := &jast.CatchClause{
		Annotations: annotations(c.Param.Annotations),
		Modifiers:   modifiers(c.Param.Modifiers),
		Name:        c.Param.Name,
		Body:        block(c.Body),
	}
	out.Types = exceptionTypes(c.Param.Types)
	return out
}
