package format

import (
	"github.com/dhamidi/kitejava/java/jast"
)

func (p *JavaPrettyPrinter) printExpr(e jast.Expr) {
	switch e := e.(type) {
	case *jast.Literal:
		p.write(e.Text)
	case *jast.Name:
		p.write(e.Name)
	case *jast.FieldAccess:
		p.printExpr(e.Scope)
		p.write("." + e.Name)
	case *jast.ArrayAccess:
		p.printExpr(e.X)
		p.write("[")
		p.printExpr(e.Index)
		p.write("]")
	case *jast.MethodCall:
		p.printCallExpr(e)
	case *jast.MethodRef:
		p.printExpr(e.Scope)
		p.write("::")
		if len(e.TypeArgs) > 0 {
			p.printTypeArguments(e.TypeArgs)
		}
		p.write(e.Name)
	case *jast.TypeExpr:
		p.printType(e.Type)
	case *jast.New:
		p.printNewExpr(e)
	case *jast.NewArray:
		p.printNewArrayExpr(e)
	case *jast.ArrayInit:
		p.printArrayInit(e)
	case *jast.Lambda:
		p.printLambdaExpr(e)
	case *jast.This:
		p.printQualified(e.Qualifier, "this")
	case *jast.Super:
		p.printQualified(e.Qualifier, "super")
	case *jast.ClassLiteral:
		p.printType(e.Type)
		p.write(".class")
	case *jast.Binary:
		p.printExpr(e.Left)
		p.write(" " + e.Op + " ")
		p.printExpr(e.Right)
	case *jast.Unary:
		if e.Postfix {
			p.printExpr(e.X)
			p.write(e.Op)
		} else {
			p.write(e.Op)
			p.printExpr(e.X)
		}
	case *jast.Assign:
		p.printExpr(e.Target)
		p.write(" " + e.Op + " ")
		p.printExpr(e.Value)
	case *jast.Conditional:
		p.printExpr(e.Cond)
		p.write(" ? ")
		p.printExpr(e.Then)
		p.write(" : ")
		p.printExpr(e.Else)
	case *jast.Cast:
		p.write("(")
		p.printType(e.Type)
		p.write(") ")
		p.printExpr(e.X)
	case *jast.InstanceOf:
		p.printExpr(e.X)
		p.write(" instanceof ")
		p.printType(e.Type)
	case *jast.Paren:
		p.write("(")
		p.printExpr(e.X)
		p.write(")")
	case *jast.Annotation:
		p.printAnnotation(e)
	}
}

func (p *JavaPrettyPrinter) printQualified(qualifier, keyword string) {
	if qualifier != "" {
		p.write(qualifier + ".")
	}
	p.write(keyword)
}

func (p *JavaPrettyPrinter) printCallExpr(e *jast.MethodCall) {
	if e.Scope != nil {
		p.printExpr(e.Scope)
		p.write(".")
	}
	if len(e.TypeArgs) > 0 {
		p.printTypeArguments(e.TypeArgs)
	}
	p.write(e.Name + "(")
	p.printArguments(e.Args)
	p.write(")")
}

// printArguments puts every argument on its own line when the list would
// run past the maximum column.
func (p *JavaPrettyPrinter) printArguments(args []jast.Expr) {
	if len(args) == 0 {
		return
	}

	var totalLen int
	for i, arg := range args {
		if i > 0 {
			totalLen += 2 // ", "
		}
		totalLen += p.measureExpr(arg)
	}

	if !p.wouldExceed(totalLen) || len(args) == 1 {
		p.printExprList(args)
		return
	}

	p.newline()
	p.indent++
	for i, arg := range args {
		p.writeIndent()
		p.printExpr(arg)
		if i < len(args)-1 {
			p.write(",")
		}
		p.newline()
	}
	p.indent--
	p.writeIndent()
}

func (p *JavaPrettyPrinter) printNewExpr(e *jast.New) {
	if e.Scope != nil {
		p.printExpr(e.Scope)
		p.write(".")
	}
	p.write("new ")
	if len(e.TypeArgs) > 0 {
		p.printTypeArguments(e.TypeArgs)
		p.write(" ")
	}
	p.printType(e.Type)
	p.write("(")
	p.printArguments(e.Args)
	p.write(")")
	if e.Body != nil {
		p.write(" ")
		p.printClassBody(e.Body)
	}
}

func (p *JavaPrettyPrinter) printNewArrayExpr(e *jast.NewArray) {
	p.write("new ")
	p.printType(e.ElementType)
	for _, dim := range e.Dims {
		if len(dim.Annotations) > 0 {
			p.write(" ")
			p.printTypeAnnotations(dim.Annotations)
		}
		p.write("[")
		if dim.Size != nil {
			p.printExpr(dim.Size)
		}
		p.write("]")
	}
	if e.Init != nil {
		p.write(" ")
		p.printArrayInit(e.Init)
	}
}

func (p *JavaPrettyPrinter) printArrayInit(e *jast.ArrayInit) {
	p.write("{")
	p.printExprList(e.Values)
	p.write("}")
}

func (p *JavaPrettyPrinter) printLambdaExpr(e *jast.Lambda) {
	if e.Parenthesized || len(e.Params) != 1 {
		p.write("(")
		for i, param := range e.Params {
			if i > 0 {
				p.write(", ")
			}
			p.printParameter(param)
		}
		p.write(")")
	} else {
		p.write(e.Params[0].Name)
	}
	p.write(" -> ")
	switch body := e.Body.(type) {
	case *jast.Block:
		p.printBlock(body)
	case jast.Expr:
		p.printExpr(body)
	}
}
