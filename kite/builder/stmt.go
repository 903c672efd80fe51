package builder

import (
	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/parser"
)

func (b *builder) block(n *parser.Node) *ast.BlockStmt {
	if n.Kind != parser.KindBlock {
		b.fail(n, "expected Block")
	}
	return &ast.BlockStmt{At: at(n), Stmts: b.statements(b.cursor(n).rest())}
}

func (b *builder) statements(nodes []*parser.Node) []ast.Stmt {
	var out []ast.Stmt
	for _, n := range nodes {
		out = append(out, b.statement(n))
	}
	return out
}

func (b *builder) statement(n *parser.Node) ast.Stmt {
	switch n.Kind {
	case parser.KindBlock:
		return b.block(n)
	case parser.KindLocalVarDecl:
		return b.localVarDecl(n)
	case parser.KindEmptyStmt:
		return &ast.EmptyStmt{At: at(n)}
	case parser.KindExprStmt:
		c := b.cursor(n)
		s := &ast.ExprStmt{At: at(n), X: b.expression(c.next())}
		c.done()
		return s
	case parser.KindIfStmt:
		c := b.cursor(n)
		s := &ast.IfStmt{At: at(n), Cond: b.expression(c.next()), Then: b.statement(c.next())}
		if c.peek() != nil {
			s.Else = b.statement(c.next())
		}
		c.done()
		return s
	case parser.KindWhileStmt:
		c := b.cursor(n)
		s := &ast.WhileStmt{At: at(n), Cond: b.expression(c.next()), Body: b.statement(c.next())}
		c.done()
		return s
	case parser.KindDoStmt:
		c := b.cursor(n)
		s := &ast.DoStmt{At: at(n), Body: b.statement(c.next()), Cond: b.expression(c.next())}
		c.done()
		return s
	case parser.KindForStmt:
		return b.forStmt(n)
	case parser.KindForEachStmt:
		c := b.cursor(n)
		s := &ast.ForEachStmt{At: at(n)}
		s.Variable = b.formalParameter(c.expect(parser.KindFormalParameter))
		s.Iterable = b.expression(c.next())
		s.Body = b.statement(c.next())
		c.done()
		return s
	case parser.KindTryStmt:
		return b.tryStmt(n)
	case parser.KindSwitchStmt:
		return b.switchStmt(n)
	case parser.KindSynchronizedStmt:
		c := b.cursor(n)
		s := &ast.SynchronizedStmt{At: at(n), Lock: b.expression(c.next()), Body: b.block(c.expect(parser.KindBlock))}
		c.done()
		return s
	case parser.KindLabeledStmt:
		c := b.cursor(n)
		s := &ast.LabeledStmt{At: at(n), Label: b.identifier(c.expect(parser.KindIdentifier)), Body: b.statement(c.next())}
		c.done()
		return s
	case parser.KindBreakStmt:
		return &ast.BreakStmt{At: at(n), Label: b.label(n)}
	case parser.KindContinueStmt:
		return &ast.ContinueStmt{At: at(n), Label: b.label(n)}
	case parser.KindReturnStmt:
		c := b.cursor(n)
		s := &ast.ReturnStmt{At: at(n)}
		if c.peek() != nil {
			s.Value = b.expression(c.next())
		}
		c.done()
		return s
	case parser.KindThrowStmt:
		c := b.cursor(n)
		s := &ast.ThrowStmt{At: at(n), X: b.expression(c.next())}
		c.done()
		return s
	case parser.KindAssertStmt:
		c := b.cursor(n)
		s := &ast.AssertStmt{At: at(n), Cond: b.expression(c.next())}
		if c.peek() != nil {
			s.Message = b.expression(c.next())
		}
		c.done()
		return s
	}
	b.unexpected(n, "block")
	return nil
}

func (b *builder) label(n *parser.Node) string {
	c := b.cursor(n)
	id := c.optional(parser.KindIdentifier)
	c.done()
	if id == nil {
		return ""
	}
	return id.TokenLiteral()
}

// localVarDecl converts LocalVarDecl{Modifiers, Type, VariableDeclarator...}.
// Locals are immutable unless declared mutable.
func (b *builder) localVarDecl(n *parser.Node) *ast.LocalVarDeclStmt {
	if n.Kind != parser.KindLocalVarDecl {
		b.fail(n, "expected LocalVarDecl")
	}
	c := b.cursor(n)
	s := &ast.LocalVarDeclStmt{At: at(n)}
	anns, mods := b.modifiers(c.expect(parser.KindModifiers))
	s.Annotations = anns
	s.Modifiers = immutableByDefault(mods)
	s.Type = b.typ(c.expect(parser.KindType))
	s.Variables = b.variableDeclarators(c)
	return s
}

// forStmt converts ForStmt{ForInit, [cond], ForUpdate, body}.
func (b *builder) forStmt(n *parser.Node) *ast.ForStmt {
	c := b.cursor(n)
	s := &ast.ForStmt{At: at(n)}

	init := b.cursor(c.expect(parser.KindForInit))
	if decl := init.optional(parser.KindLocalVarDecl); decl != nil {
		s.Decl = b.localVarDecl(decl)
		init.done()
	} else {
		s.Init = b.expressions(init.rest())
	}

	if next := c.peek(); next != nil && next.Kind != parser.KindForUpdate {
		s.Cond = b.expression(c.next())
	}
	s.Update = b.expressions(b.cursor(c.expect(parser.KindForUpdate)).rest())

	s.Body = b.statement(c.next())
	c.done()
	return s
}

func (b *builder) tryStmt(n *parser.Node) *ast.TryStmt {
	c := b.cursor(n)
	s := &ast.TryStmt{At: at(n)}
	if spec := c.optional(parser.KindResourceSpec); spec != nil {
		for _, res := range b.cursor(spec).rest() {
			s.Resources = append(s.Resources, b.resource(res))
		}
	}
	s.Body = b.block(c.expect(parser.KindBlock))
	for _, cc := range c.many(parser.KindCatchClause) {
		s.Catches = append(s.Catches, b.catchClause(cc))
	}
	if fin := c.optional(parser.KindFinallyClause); fin != nil {
		fc := b.cursor(fin)
		s.Finally = b.block(fc.expect(parser.KindBlock))
		fc.done()
	}
	c.done()
	return s
}

// resource converts Resource{Modifiers, Type, Identifier, init} and
// Resource{expr}. Declared resources are immutable unless declared mutable.
func (b *builder) resource(n *parser.Node) *ast.Resource {
	if n.Kind != parser.KindResource {
		b.fail(n, "expected Resource")
	}
	c := b.cursor(n)
	r := &ast.Resource{At: at(n)}
	if mods := c.optional(parser.KindModifiers); mods != nil {
		anns, keywords := b.modifiers(mods)
		r.Annotations = anns
		r.Modifiers = immutableByDefault(keywords)
		r.Type = b.typ(c.expect(parser.KindType))
		r.Name = b.identifier(c.expect(parser.KindIdentifier))
	}
	r.Init = b.expression(c.next())
	c.done()
	return r
}

func (b *builder) catchClause(n *parser.Node) *ast.CatchClause {
	c := b.cursor(n)
	mods := c.expect(parser.KindModifiers)
	param := &ast.CatchParameter{At: at(mods)}
	anns, keywords := b.modifiers(mods)
	param.Annotations = anns
	param.Modifiers = immutableByDefault(keywords)
	param.Types = b.exceptionTypes(c.expect(parser.KindCatchType))
	param.Name = b.identifier(c.expect(parser.KindIdentifier))

	clause := &ast.CatchClause{At: at(n), Param: param, Body: b.block(c.expect(parser.KindBlock))}
	c.done()
	return clause
}

func (b *builder) switchStmt(n *parser.Node) *ast.SwitchStmt {
	c := b.cursor(n)
	s := &ast.SwitchStmt{At: at(n), Selector: b.expression(c.next())}
	for _, g := range c.rest() {
		if g.Kind != parser.KindSwitchGroup {
			b.unexpected(g, "switch")
		}
		gc := b.cursor(g)
		group := &ast.SwitchGroup{At: at(g)}
		for _, l := range gc.many(parser.KindSwitchLabel) {
			label := &ast.SwitchLabel{At: at(l)}
			lc := b.cursor(l)
			if l.TokenKind() == parser.TokenCase {
				label.Value = b.expression(lc.next())
			}
			lc.done()
			group.Labels = append(group.Labels, label)
		}
		if len(group.Labels) == 0 {
			b.fail(g, "switch group without labels")
		}
		group.Stmts = b.statements(gc.rest())
		s.Groups = append(s.Groups, group)
	}
	return s
}
