package format

import (
	"github.com/dhamidi/kitejava/java/jast"
)

// printBlock writes a braced block and leaves the cursor after the
// closing brace.
func (p *JavaPrettyPrinter) printBlock(b *jast.Block) {
	p.write("{")
	p.newline()
	p.indent++
	for _, s := range b.Stmts {
		p.printStatement(s)
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

// printBody writes the body of a compound statement. A block stays on the
// header line, anything else goes on the next line one level deeper.
func (p *JavaPrettyPrinter) printBody(s jast.Stmt) {
	if b, ok := s.(*jast.Block); ok {
		p.write(" ")
		p.printBlock(b)
		p.newline()
		return
	}
	p.newline()
	p.indent++
	p.printStatement(s)
	p.indent--
}

func (p *JavaPrettyPrinter) printStatement(s jast.Stmt) {
	p.writeIndent()
	switch s := s.(type) {
	case *jast.Block:
		p.printBlock(s)
		p.newline()
	case *jast.LocalVarDecl:
		p.printLocalVarDecl(s)
		p.write(";")
		p.newline()
	case *jast.EmptyStmt:
		p.write(";")
		p.newline()
	case *jast.ExprStmt:
		p.printExpr(s.X)
		p.write(";")
		p.newline()
	case *jast.IfStmt:
		p.printIfStmt(s)
	case *jast.WhileStmt:
		p.write("while (")
		p.printExpr(s.Cond)
		p.write(")")
		p.printBody(s.Body)
	case *jast.DoStmt:
		p.printDoStmt(s)
	case *jast.ForStmt:
		p.printForStmt(s)
	case *jast.ForEachStmt:
		p.write("for (")
		p.printParameter(s.Variable)
		p.write(" : ")
		p.printExpr(s.Iterable)
		p.write(")")
		p.printBody(s.Body)
	case *jast.TryStmt:
		p.printTryStmt(s)
	case *jast.SwitchStmt:
		p.printSwitchStmt(s)
	case *jast.SynchronizedStmt:
		p.write("synchronized (")
		p.printExpr(s.Lock)
		p.write(")")
		p.printBody(s.Body)
	case *jast.LabeledStmt:
		p.write(s.Label + ": ")
		p.printStatement(s.Body)
	case *jast.BreakStmt:
		p.printJump("break", s.Label)
	case *jast.ContinueStmt:
		p.printJump("continue", s.Label)
	case *jast.ReturnStmt:
		p.write("return")
		if s.Value != nil {
			p.write(" ")
			p.printExpr(s.Value)
		}
		p.write(";")
		p.newline()
	case *jast.ThrowStmt:
		p.write("throw ")
		p.printExpr(s.X)
		p.write(";")
		p.newline()
	case *jast.AssertStmt:
		p.write("assert ")
		p.printExpr(s.Cond)
		if s.Message != nil {
			p.write(" : ")
			p.printExpr(s.Message)
		}
		p.write(";")
		p.newline()
	case *jast.ConstructorCall:
		p.printConstructorCall(s)
	}
}

func (p *JavaPrettyPrinter) printJump(keyword, label string) {
	p.write(keyword)
	if label != "" {
		p.write(" " + label)
	}
	p.write(";")
	p.newline()
}

func (p *JavaPrettyPrinter) printLocalVarDecl(d *jast.LocalVarDecl) {
	p.printModifiersInline(d.Annotations, d.Modifiers)
	p.printType(d.Type)
	p.write(" ")
	p.printDeclarators(d.Variables)
}

func (p *JavaPrettyPrinter) printIfStmt(s *jast.IfStmt) {
	p.write("if (")
	p.printExpr(s.Cond)
	p.write(")")
	if s.Else == nil {
		p.printBody(s.Then)
		return
	}

	if b, ok := s.Then.(*jast.Block); ok {
		p.write(" ")
		p.printBlock(b)
		p.write(" else")
	} else {
		p.printBody(s.Then)
		p.writeIndent()
		p.write("else")
	}
	switch e := s.Else.(type) {
	case *jast.IfStmt:
		p.write(" ")
		p.printIfStmt(e)
	default:
		p.printBody(e)
	}
}

func (p *JavaPrettyPrinter) printDoStmt(s *jast.DoStmt) {
	p.write("do")
	if b, ok := s.Body.(*jast.Block); ok {
		p.write(" ")
		p.printBlock(b)
		p.write(" ")
	} else {
		p.printBody(s.Body)
		p.writeIndent()
	}
	p.write("while (")
	p.printExpr(s.Cond)
	p.write(");")
	p.newline()
}

func (p *JavaPrettyPrinter) printForStmt(s *jast.ForStmt) {
	p.write("for (")
	if s.Decl != nil {
		p.printLocalVarDecl(s.Decl)
	} else {
		p.printExprList(s.Init)
	}
	p.write(";")
	if s.Cond != nil {
		p.write(" ")
		p.printExpr(s.Cond)
	}
	p.write(";")
	if len(s.Update) > 0 {
		p.write(" ")
		p.printExprList(s.Update)
	}
	p.write(")")
	p.printBody(s.Body)
}

func (p *JavaPrettyPrinter) printExprList(es []jast.Expr) {
	for i, e := range es {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(e)
	}
}

func (p *JavaPrettyPrinter) printTryStmt(s *jast.TryStmt) {
	p.write("try ")
	if len(s.Resources) > 0 {
		p.write("(")
		for i, r := range s.Resources {
			if i > 0 {
				p.write("; ")
			}
			p.printResource(r)
		}
		p.write(") ")
	}
	p.printBlock(s.Body)
	for _, c := range s.Catches {
		p.write(" catch (")
		p.printModifiersInline(c.Annotations, c.Modifiers)
		for i, t := range c.Types {
			if i > 0 {
				p.write(" | ")
			}
			p.printType(t)
		}
		p.write(" " + c.Name + ") ")
		p.printBlock(c.Body)
	}
	if s.Finally != nil {
		p.write(" finally ")
		p.printBlock(s.Finally)
	}
	p.newline()
}

func (p *JavaPrettyPrinter) printResource(r *jast.Resource) {
	if r.Type == nil {
		p.printExpr(r.Init)
		return
	}
	p.printModifiersInline(r.Annotations, r.Modifiers)
	p.printType(r.Type)
	p.write(" " + r.Name + " = ")
	p.printExpr(r.Init)
}

func (p *JavaPrettyPrinter) printSwitchStmt(s *jast.SwitchStmt) {
	p.write("switch (")
	p.printExpr(s.Selector)
	p.write(") {")
	p.newline()
	p.indent++
	for _, g := range s.Groups {
		for _, l := range g.Labels {
			p.writeIndent()
			if l.Value == nil {
				p.write("default:")
			} else {
				p.write("case ")
				p.printExpr(l.Value)
				p.write(":")
			}
			p.newline()
		}
		p.indent++
		for _, st := range g.Stmts {
			p.printStatement(st)
		}
		p.indent--
	}
	p.indent--
	p.writeIndent()
	p.write("}")
	p.newline()
}

func (p *JavaPrettyPrinter) printConstructorCall(s *jast.ConstructorCall) {
	if s.Scope != nil {
		p.printExpr(s.Scope)
		p.write(".")
	}
	if len(s.TypeArgs) > 0 {
		p.printTypeArguments(s.TypeArgs)
	}
	if s.This {
		p.write("this")
	} else {
		p.write("super")
	}
	p.write("(")
	p.printArguments(s.Args)
	p.write(");")
	p.newline()
}
