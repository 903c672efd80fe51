package builder

import (
	"strings"

	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/parser"
)

func (b *builder) expressions(nodes []*parser.Node) []ast.Expr {
	var out []ast.Expr
	for _, n := range nodes {
		out = append(out, b.expression(n))
	}
	return out
}

func (b *builder) arguments(n *parser.Node) []ast.Expr {
	if n.Kind != parser.KindArguments {
		b.fail(n, "expected Arguments")
	}
	return b.expressions(b.cursor(n).rest())
}

// expression converts one expression production. Precedence and
// associativity come from the shape of the syntax tree: every Binary node
// already has its left operand built at the same level and its right
// operand one level down, so the conversion mirrors the tree and never
// reorders operands.
func (b *builder) expression(n *parser.Node) ast.Expr {
	switch n.Kind {
	case parser.KindAssignment:
		c := b.cursor(n)
		e := &ast.AssignExpr{At: at(n)}
		e.Target = b.expression(c.next())
		e.Op = c.expect(parser.KindOperator).TokenLiteral()
		e.Value = b.expression(c.next())
		c.done()
		return e

	case parser.KindConditional:
		c := b.cursor(n)
		e := &ast.ConditionalExpr{At: at(n)}
		e.Cond = b.expression(c.next())
		e.Then = b.expression(c.next())
		e.Else = b.expression(c.next())
		c.done()
		return e

	case parser.KindBinary:
		c := b.cursor(n)
		e := &ast.BinaryExpr{At: at(n)}
		e.Left = b.expression(c.next())
		e.Op = c.expect(parser.KindOperator).TokenLiteral()
		e.Right = b.expression(c.next())
		c.done()
		return e

	case parser.KindInstanceof:
		c := b.cursor(n)
		e := &ast.InstanceOfExpr{At: at(n)}
		e.X = b.expression(c.next())
		e.Type = b.typ(c.expect(parser.KindType))
		c.done()
		return e

	case parser.KindUnary:
		c := b.cursor(n)
		e := &ast.UnaryExpr{At: at(n)}
		e.Op = c.expect(parser.KindOperator).TokenLiteral()
		e.X = b.expression(c.next())
		c.done()
		return e

	case parser.KindCast:
		return b.cast(n)

	case parser.KindPostfix:
		return b.postfix(n)

	case parser.KindLiteral:
		return b.literal(n)

	case parser.KindName:
		return &ast.NameExpr{At: at(n), Name: n.TokenLiteral()}

	case parser.KindThis:
		return &ast.ThisExpr{At: at(n)}

	case parser.KindSuper:
		return &ast.SuperExpr{At: at(n)}

	case parser.KindParens:
		c := b.cursor(n)
		e := &ast.EnclosedExpr{At: at(n), X: b.expression(c.next())}
		c.done()
		return e

	case parser.KindObjectCreation:
		return b.objectCreation(n, nil)

	case parser.KindArrayCreation:
		return b.arrayCreation(n)

	case parser.KindArrayInitializer:
		return b.arrayInitializer(n)

	case parser.KindLambda:
		return b.lambda(n)

	case parser.KindTypeLiteral:
		c := b.cursor(n)
		base := c.expect(parser.KindPrimitiveType, parser.KindVoidType)
		var t ast.Type
		if base.Kind == parser.KindVoidType {
			t = &ast.VoidType{At: at(base)}
		} else {
			t = &ast.PrimitiveType{At: at(base), Name: base.TokenLiteral()}
		}
		if dims := c.optional(parser.KindDims); dims != nil {
			t = withDims(t, b.dims(dims))
		}
		c.done()
		return &ast.TypeLiteralExpr{At: at(n), Type: t}

	case parser.KindTypeReference:
		c := b.cursor(n)
		e := &ast.TypeExpr{At: at(n), Type: b.typ(c.expect(parser.KindType))}
		c.done()
		return e
	}

	b.unexpected(n, "expression")
	return nil
}

func (b *builder) cast(n *parser.Node) *ast.CastExpr {
	children := b.cursor(n).rest()
	if len(children) < 2 {
		b.fail(n, "cast without type or operand")
	}
	e := &ast.CastExpr{At: at(n)}
	for _, t := range children[:len(children)-1] {
		e.Types = append(e.Types, b.typ(t))
	}
	e.X = b.expression(children[len(children)-1])
	return e
}

// literal keeps the source spelling. Quotes are removed from string and
// char literals; escapes stay as written.
func (b *builder) literal(n *parser.Node) ast.Expr {
	text := n.TokenLiteral()
	switch n.TokenKind() {
	case parser.TokenIntLiteral:
		if strings.HasSuffix(text, "l") || strings.HasSuffix(text, "L") {
			return &ast.LongLiteralExpr{At: at(n), Value: text}
		}
		return &ast.IntegerLiteralExpr{At: at(n), Value: text}
	case parser.TokenFloatLiteral:
		return &ast.DoubleLiteralExpr{At: at(n), Value: text}
	case parser.TokenCharLiteral:
		return &ast.CharLiteralExpr{At: at(n), Value: b.unquote(n, text)}
	case parser.TokenStringLiteral:
		return &ast.StringLiteralExpr{At: at(n), Value: b.unquote(n, text)}
	case parser.TokenTrue:
		return &ast.BooleanLiteralExpr{At: at(n), Value: true}
	case parser.TokenFalse:
		return &ast.BooleanLiteralExpr{At: at(n), Value: false}
	case parser.TokenNull:
		return &ast.NullLiteralExpr{At: at(n)}
	}
	b.fail(n, "literal token %s", n.TokenKind())
	return nil
}

func (b *builder) unquote(n *parser.Node, text string) string {
	if len(text) < 2 {
		b.fail(n, "unterminated literal %s", text)
	}
	return text[1 : len(text)-1]
}

// postfix folds Postfix{primary, suffix...} from left to right. The
// primary is the first scope; each suffix wraps the expression built so
// far, so a.b().c[0]::d becomes
//
//	MethodRef(ArrayAccess(FieldAccess(Invocation(FieldAccess(a, b)), c), 0), d)
func (b *builder) postfix(n *parser.Node) ast.Expr {
	c := b.cursor(n)
	cur := b.expression(c.next())
	for _, s := range c.rest() {
		cur = b.suffix(cur, s)
	}
	return cur
}

func (b *builder) suffix(scope ast.Expr, n *parser.Node) ast.Expr {
	if n.Kind == parser.KindNewSuffix {
		return b.objectCreation(n, scope)
	}

	start := ast.At{Position: scope.Pos()}
	c := b.cursor(n)
	defer c.done()

	switch n.Kind {
	case parser.KindFieldSuffix:
		var targs []ast.Type
		if ta := c.optional(parser.KindTypeArguments); ta != nil {
			targs = b.typeArguments(ta)
		}
		last := c.expect(parser.KindIdentifier, parser.KindThis, parser.KindSuper)
		switch last.Kind {
		case parser.KindThis:
			return &ast.ThisExpr{At: start, Qualifier: b.nameOf(n, scope)}
		case parser.KindSuper:
			return &ast.SuperExpr{At: start, Qualifier: b.nameOf(n, scope)}
		}
		return &ast.FieldAccessExpr{At: start, Scope: scope, TypeArgs: targs, Name: last.TokenLiteral()}

	case parser.KindIndexSuffix:
		return &ast.ArrayAccessExpr{At: start, X: scope, Index: b.expression(c.next())}

	case parser.KindCallSuffix:
		switch scope.(type) {
		case *ast.NameExpr, *ast.FieldAccessExpr:
		default:
			b.fail(n, "call of %s", scope.Kind())
		}
		return &ast.MethodInvocationExpr{At: start, Target: scope, Args: b.arguments(c.expect(parser.KindArguments))}

	case parser.KindMethodRefSuffix:
		ref := &ast.MethodReferenceExpr{At: start, Scope: scope}
		if dims := c.optional(parser.KindDims); dims != nil {
			ref.Scope = &ast.TypeExpr{At: start, Type: withDims(b.classTypeOf(n, scope), b.dims(dims))}
		}
		if ta := c.optional(parser.KindTypeArguments); ta != nil {
			ref.TypeArgs = b.typeArguments(ta)
		}
		name := c.expect(parser.KindIdentifier, parser.KindOperator)
		ref.Name = name.TokenLiteral()
		return ref

	case parser.KindClassLiteralSuffix:
		var t ast.Type = b.classTypeOf(n, scope)
		if dims := c.optional(parser.KindDims); dims != nil {
			t = withDims(t, b.dims(dims))
		}
		return &ast.TypeLiteralExpr{At: start, Type: t}

	case parser.KindPostIncDecSuffix:
		return &ast.UnaryExpr{At: start, Op: c.expect(parser.KindOperator).TokenLiteral(), Postfix: true, X: scope}
	}

	b.unexpected(n, "suffix chain")
	return nil
}

// nameParts returns the parts of a dotted name expression.
func nameParts(e ast.Expr) ([]string, bool) {
	switch e := e.(type) {
	case *ast.NameExpr:
		return []string{e.Name}, true
	case *ast.FieldAccessExpr:
		if len(e.TypeArgs) > 0 {
			return nil, false
		}
		parts, ok := nameParts(e.Scope)
		if !ok {
			return nil, false
		}
		return append(parts, e.Name), true
	}
	return nil, false
}

// nameOf reinterprets a dotted name expression as the qualifier of
// Name.this or Name.super.
func (b *builder) nameOf(n *parser.Node, e ast.Expr) *ast.QualifiedName {
	parts, ok := nameParts(e)
	if !ok {
		b.fail(n, "qualifier is a %s, not a name", e.Kind())
	}
	return &ast.QualifiedName{At: ast.At{Position: e.Pos()}, Parts: parts}
}

// classTypeOf reinterprets a dotted name expression as a class type, as in
// Name.class and Name[]::new.
func (b *builder) classTypeOf(n *parser.Node, e ast.Expr) *ast.ClassType {
	parts, ok := nameParts(e)
	if !ok {
		b.fail(n, "type is a %s, not a name", e.Kind())
	}
	var t *ast.ClassType
	for _, part := range parts {
		t = &ast.ClassType{At: ast.At{Position: e.Pos()}, Scope: t, Name: part}
	}
	return t
}

// objectCreation converts ObjectCreation{[TypeArguments], Type, Arguments,
// [ClassBody]} and NewSuffix with the same children, whose scope is the
// expression before `.new`.
func (b *builder) objectCreation(n *parser.Node, scope ast.Expr) *ast.ObjectCreationExpr {
	c := b.cursor(n)
	e := &ast.ObjectCreationExpr{At: at(n), Scope: scope}
	if scope != nil {
		e.At = ast.At{Position: scope.Pos()}
	}
	if ta := c.optional(parser.KindTypeArguments); ta != nil {
		e.TypeArgs = b.typeArguments(ta)
	}

	created := c.expect(parser.KindType)
	ct, ok := b.typ(created).(*ast.ClassType)
	if !ok {
		b.fail(created, "object creation of a non-class type")
	}
	e.Type = ct
	e.Args = b.arguments(c.expect(parser.KindArguments))

	if body := c.optional(parser.KindClassBody); body != nil {
		e.Anonymous = true
		e.Body = b.body(body)
	}
	c.done()
	return e
}

// arrayCreation converts ArrayCreation{Type, DimExpr..., [Dims],
// [ArrayInitializer]}. Dimension expressions and empty dimensions are
// merged into one level list in source order.
func (b *builder) arrayCreation(n *parser.Node) *ast.ArrayCreationExpr {
	c := b.cursor(n)
	e := &ast.ArrayCreationExpr{At: at(n)}
	e.ElementType = b.typ(c.expect(parser.KindType))

	for _, de := range c.many(parser.KindDimExpr) {
		dc := b.cursor(de)
		level := &ast.ArrayCreationLevel{At: at(de)}
		level.Annotations = b.annotations(dc.many(parser.KindAnnotation))
		level.Dimension = b.expression(dc.next())
		dc.done()
		e.Levels = append(e.Levels, level)
	}
	if dims := c.optional(parser.KindDims); dims != nil {
		for _, d := range b.dims(dims) {
			e.Levels = append(e.Levels, &ast.ArrayCreationLevel{At: d.At, Annotations: d.Annotations})
		}
	}
	if init := c.optional(parser.KindArrayInitializer); init != nil {
		e.Init = b.arrayInitializer(init)
	}
	c.done()

	if len(e.Levels) == 0 {
		b.fail(n, "array creation without dimensions")
	}
	return e
}

func (b *builder) arrayInitializer(n *parser.Node) *ast.ArrayInitializerExpr {
	init := &ast.ArrayInitializerExpr{At: at(n)}
	for _, child := range b.cursor(n).rest() {
		init.Values = append(init.Values, b.variableInitializer(child))
	}
	return init
}

// lambda converts Lambda{Identifier|LambdaParameters, Block|expr}.
// Inferred parameters get no type and no implicit final.
func (b *builder) lambda(n *parser.Node) *ast.LambdaExpr {
	c := b.cursor(n)
	e := &ast.LambdaExpr{At: at(n)}

	params := c.expect(parser.KindIdentifier, parser.KindLambdaParameters)
	if params.Kind == parser.KindIdentifier {
		e.Params = []*ast.Parameter{{At: at(params), Name: params.TokenLiteral()}}
	} else {
		e.Parenthesized = true
		for _, p := range b.cursor(params).rest() {
			switch p.Kind {
			case parser.KindIdentifier:
				e.Params = append(e.Params, &ast.Parameter{At: at(p), Name: p.TokenLiteral()})
			case parser.KindFormalParameter:
				e.Params = append(e.Params, b.formalParameter(p))
			default:
				b.unexpected(p, "lambda parameters")
			}
		}
	}

	body := c.next()
	if body.Kind == parser.KindBlock {
		e.Body = b.block(body)
	} else {
		e.Body = b.expression(body)
	}
	c.done()
	return e
}
