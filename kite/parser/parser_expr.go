package parser

var expressionRecovery = []TokenKind{TokenSemicolon, TokenComma, TokenRParen, TokenRBrace, TokenRBracket}

func (p *Parser) parseExpression() *Node {
	return p.parseAssignmentExpr()
}

// parseAssignmentExpr produces Assignment{target, Operator, value}. The
// value is parsed at the same level, which makes assignment right
// associative.
func (p *Parser) parseAssignmentExpr() *Node {
	if p.isLambda() {
		return p.parseLambdaExpr()
	}

	left := p.parseConditionalExpr()

	if p.isAssignOp() {
		node := p.startNodeAt(KindAssignment, left)
		node.AddChild(p.leaf(KindOperator))
		node.AddChild(p.parseAssignmentExpr())
		return p.finishNode(node)
	}

	return left
}

func (p *Parser) isAssignOp() bool {
	switch p.peek().Kind {
	case TokenAssign, TokenPlusAssign, TokenMinusAssign,
		TokenStarAssign, TokenSlashAssign, TokenPercentAssign,
		TokenAndAssign, TokenOrAssign, TokenXorAssign,
		TokenShlAssign, TokenShrAssign, TokenUShrAssign:
		return true
	}
	return false
}

func (p *Parser) isLambda() bool {
	if p.isIdentifierLike() && p.checkN(1, TokenArrow) {
		return true
	}

	if !p.check(TokenLParen) {
		return false
	}

	save := p.pos
	defer func() { p.pos = save }()
	p.skipBalanced(TokenLParen, TokenRParen)
	return p.check(TokenArrow)
}

// parseLambdaExpr produces Lambda{Identifier, body} for the bare form and
// Lambda{LambdaParameters, body} for the parenthesized form. The body is a
// Block or an expression.
func (p *Parser) parseLambdaExpr() *Node {
	node := p.startNode(KindLambda)

	if p.isIdentifierLike() {
		node.AddChild(p.parseIdentifier())
	} else {
		node.AddChild(p.parseLambdaParameters())
	}

	p.expect(TokenArrow)

	if p.check(TokenLBrace) {
		node.AddChild(p.parseBlock())
	} else {
		node.AddChild(p.parseExpression())
	}

	return p.finishNode(node)
}

// parseLambdaParameters produces LambdaParameters holding either bare
// Identifiers or FormalParameters.
func (p *Parser) parseLambdaParameters() *Node {
	node := p.startNode(KindLambdaParameters)
	p.expect(TokenLParen)

	if !p.check(TokenRParen) {
		for {
			progress := p.mustProgress()
			if p.isLambdaTypedParam() {
				node.AddChild(p.parseFormalParameter())
			} else {
				node.AddChild(p.parseIdentifier())
			}
			if !p.check(TokenComma) {
				break
			}
			p.advance()
			if !progress() {
				break
			}
		}
	}

	p.expect(TokenRParen)
	return p.finishNode(node)
}

func (p *Parser) isLambdaTypedParam() bool {
	tok := p.peek()
	switch {
	case tok.Kind == TokenFinal, tok.Kind == TokenMutable, tok.Kind == TokenAt:
		return true
	case tok.Kind.IsPrimitive():
		return true
	case isIdentifierKind(tok.Kind):
		next := p.peekN(1).Kind
		return isIdentifierKind(next) || next == TokenLT || next == TokenDot ||
			next == TokenLBracket || next == TokenEllipsis
	}
	return false
}

// parseConditionalExpr produces Conditional{cond, then, else}. The else
// branch recurses into the conditional level, so a ? b : c ? d : e nests
// to the right.
func (p *Parser) parseConditionalExpr() *Node {
	cond := p.parseBinaryExpr(0)

	if p.check(TokenQuestion) {
		node := p.startNodeAt(KindConditional, cond)
		p.advance()
		node.AddChild(p.parseExpression())
		p.expect(TokenColon)
		if p.isLambda() {
			node.AddChild(p.parseLambdaExpr())
		} else {
			node.AddChild(p.parseConditionalExpr())
		}
		return p.finishNode(node)
	}

	return cond
}

// binaryLevels lists binary operators from lowest to highest precedence.
var binaryLevels = [][]TokenKind{
	{TokenOr},
	{TokenAnd},
	{TokenBitOr},
	{TokenBitXor},
	{TokenBitAnd},
	{TokenEQ, TokenNE},
	{TokenLT, TokenGT, TokenLE, TokenGE, TokenInstanceof},
	{TokenShl, TokenShr, TokenUShr},
	{TokenPlus, TokenMinus},
	{TokenStar, TokenSlash, TokenPercent},
}

// parseBinaryExpr parses one precedence level. Each operator occurrence
// becomes Binary{left, Operator, right}: the left operand is what has been
// built at this level so far and the right operand comes from the next
// level down, so operators of one level associate to the left.
// instanceof sits on the relational level and yields Instanceof{expr, Type}.
func (p *Parser) parseBinaryExpr(level int) *Node {
	if level == len(binaryLevels) {
		return p.parseUnaryExpr()
	}

	left := p.parseBinaryExpr(level + 1)
	for p.match(binaryLevels[level]...) {
		progress := p.mustProgress()
		if p.check(TokenInstanceof) {
			node := p.startNodeAt(KindInstanceof, left)
			p.advance()
			node.AddChild(p.parseType())
			left = p.finishNode(node)
		} else {
			node := p.startNodeAt(KindBinary, left)
			node.AddChild(p.leaf(KindOperator))
			node.AddChild(p.parseBinaryExpr(level + 1))
			left = p.finishNode(node)
		}
		if !progress() {
			break
		}
	}
	return left
}

// parseUnaryExpr produces Unary{Operator, operand} for prefix operators and
// Cast{Type..., operand} for casts.
func (p *Parser) parseUnaryExpr() *Node {
	switch p.peek().Kind {
	case TokenIncrement, TokenDecrement, TokenPlus, TokenMinus, TokenNot, TokenBitNot:
		node := p.startNode(KindUnary)
		node.AddChild(p.leaf(KindOperator))
		node.AddChild(p.parseUnaryExpr())
		return p.finishNode(node)
	case TokenLParen:
		if p.isCast() {
			return p.parseCastExpr()
		}
	}

	return p.parsePostfixExpr()
}

func (p *Parser) isCast() bool {
	save := p.pos
	defer func() { p.pos = save }()
	p.advance()

	primitive := p.peek().Kind.IsPrimitive()
	if !p.skipType() {
		return false
	}
	for p.check(TokenBitAnd) {
		p.advance()
		if !p.skipType() {
			return false
		}
	}
	if !p.check(TokenRParen) {
		return false
	}
	p.advance()

	tok := p.peek()
	switch tok.Kind {
	case TokenPlus, TokenMinus, TokenIncrement, TokenDecrement:
		// (a) - b is a subtraction unless a is primitive
		return primitive
	case TokenIdent, TokenOf, TokenThis, TokenSuper, TokenNew,
		TokenLParen, TokenNot, TokenBitNot,
		TokenIntLiteral, TokenFloatLiteral,
		TokenCharLiteral, TokenStringLiteral,
		TokenTrue, TokenFalse, TokenNull, TokenVoid:
		return true
	}
	return tok.Kind.IsPrimitive()
}

func (p *Parser) parseCastExpr() *Node {
	node := p.startNode(KindCast)
	p.expect(TokenLParen)

	node.AddChild(p.parseType())
	for p.check(TokenBitAnd) {
		p.advance()
		node.AddChild(p.parseType())
	}

	p.expect(TokenRParen)
	if p.isLambda() {
		node.AddChild(p.parseLambdaExpr())
	} else {
		node.AddChild(p.parseUnaryExpr())
	}
	return p.finishNode(node)
}

// parsePostfixExpr produces the primary alone, or Postfix{primary,
// suffix...} when suffixes follow. Suffixes are kept flat in source order.
func (p *Parser) parsePostfixExpr() *Node {
	primary := p.parsePrimaryExpr()
	if primary.Kind == KindError {
		return primary
	}

	var node *Node
	// nameChain: everything so far is a dotted name, as required before
	// .this, .super, .class and Name[]. callable: the last part names a
	// method.
	nameChain := primary.Kind == KindName
	callable := nameChain
	for {
		progress := p.mustProgress()
		suffix := p.parseSuffix()
		if suffix == nil {
			break
		}
		if node == nil {
			node = p.startNodeAt(KindPostfix, primary)
		}
		node.AddChild(suffix)

		switch suffix.Kind {
		case KindCallSuffix:
			if !callable {
				p.addError(suffix.Span.Start, "method call needs a method name", nil)
			}
			nameChain, callable = false, false
		case KindFieldSuffix:
			last := suffix.Children[len(suffix.Children)-1]
			if last.Kind == KindThis || last.Kind == KindSuper {
				if !nameChain {
					p.addError(suffix.Span.Start, "qualified '"+last.TokenLiteral()+"' needs a type name", nil)
				}
				nameChain, callable = false, false
			} else {
				nameChain = nameChain && !suffix.Has(KindTypeArguments)
				callable = true
			}
		case KindClassLiteralSuffix:
			if !nameChain {
				p.addError(suffix.Span.Start, "class literal needs a type name", nil)
			}
			nameChain, callable = false, false
		case KindMethodRefSuffix:
			if suffix.Has(KindDims) && !nameChain {
				p.addError(suffix.Span.Start, "array constructor reference needs a type name", nil)
			}
			nameChain, callable = false, false
		default:
			nameChain, callable = false, false
		}

		if !progress() {
			break
		}
	}

	if node == nil {
		return primary
	}
	return p.finishNode(node)
}

// parseSuffix returns the next suffix or nil when the postfix expression
// ends here.
func (p *Parser) parseSuffix() *Node {
	switch p.peek().Kind {
	case TokenDot:
		return p.parseDotSuffix()

	case TokenLBracket:
		if p.checkN(1, TokenRBracket) {
			return p.parseArrayTypeSuffix()
		}
		node := p.startNode(KindIndexSuffix)
		p.advance()
		node.AddChild(p.parseExpression())
		p.expect(TokenRBracket)
		return p.finishNode(node)

	case TokenLParen:
		node := p.startNode(KindCallSuffix)
		node.AddChild(p.parseArguments())
		return p.finishNode(node)

	case TokenColonColon:
		return p.parseMethodRefSuffix(nil)

	case TokenIncrement, TokenDecrement:
		node := p.startNode(KindPostIncDecSuffix)
		node.AddChild(p.leaf(KindOperator))
		return p.finishNode(node)
	}
	return nil
}

// parseDotSuffix handles everything that can follow a dot:
//
//	.name  .<T>name  .this  .super  .class  .new Inner()
func (p *Parser) parseDotSuffix() *Node {
	start := p.peek()

	switch next := p.peekN(1).Kind; {
	case next == TokenNew:
		return p.parseNewSuffix()

	case next == TokenClass:
		node := p.startNode(KindClassLiteralSuffix)
		p.advance()
		p.advance()
		return p.finishNode(node)

	case next == TokenThis || next == TokenSuper:
		node := p.startNode(KindFieldSuffix)
		p.advance()
		if next == TokenThis {
			node.AddChild(p.leaf(KindThis))
		} else {
			node.AddChild(p.leaf(KindSuper))
		}
		return p.finishNode(node)

	case next == TokenLT:
		node := p.startNode(KindFieldSuffix)
		p.advance()
		node.AddChild(p.parseTypeArguments())
		node.AddChild(p.parseIdentifier())
		if !p.check(TokenLParen) {
			p.addError(p.peek().Span.Start, "expected method arguments after explicit type arguments", &start, TokenLParen)
		}
		return p.finishNode(node)

	case isIdentifierKind(next):
		node := p.startNode(KindFieldSuffix)
		p.advance()
		node.AddChild(p.parseIdentifier())
		return p.finishNode(node)
	}

	p.advance()
	return p.errorNode("expected identifier after '.'", expressionRecovery, TokenIdent)
}

// parseNewSuffix parses .new [<T>] Inner(args) [body] into
// NewSuffix{[TypeArguments], Type, Arguments, [ClassBody]}.
func (p *Parser) parseNewSuffix() *Node {
	node := p.startNode(KindNewSuffix)
	p.expect(TokenDot)
	p.expect(TokenNew)
	if p.check(TokenLT) {
		node.AddChild(p.parseTypeArguments())
	}
	node.AddChild(p.parseCreatedType())
	node.AddChild(p.parseArguments())
	if p.check(TokenLBrace) {
		node.AddChild(p.parseClassBody())
	}
	return p.finishNode(node)
}

// parseArrayTypeSuffix parses the dims in Name[].class and Name[]::new.
func (p *Parser) parseArrayTypeSuffix() *Node {
	dims := p.parseDims()
	if p.check(TokenColonColon) {
		return p.parseMethodRefSuffix(dims)
	}
	node := p.startNode(KindClassLiteralSuffix)
	node.Span.Start = dims.Span.Start
	node.AddChild(dims)
	p.expect(TokenDot)
	p.expect(TokenClass)
	return p.finishNode(node)
}

// parseMethodRefSuffix produces MethodRefSuffix{[Dims], [TypeArguments],
// Identifier|Operator(new)}.
func (p *Parser) parseMethodRefSuffix(dims *Node) *Node {
	node := p.startNode(KindMethodRefSuffix)
	if dims != nil {
		node.Span.Start = dims.Span.Start
		node.AddChild(dims)
	}
	p.expect(TokenColonColon)

	if p.check(TokenLT) {
		node.AddChild(p.parseTypeArguments())
	}

	if p.check(TokenNew) {
		node.AddChild(p.leaf(KindOperator))
	} else {
		node.AddChild(p.parseIdentifier())
	}

	return p.finishNode(node)
}

func (p *Parser) parseArguments() *Node {
	node := p.startNode(KindArguments)
	p.expect(TokenLParen)

	if !p.check(TokenRParen) {
		p.parseExpressionList(node)
	}

	p.expect(TokenRParen)
	return p.finishNode(node)
}

func (p *Parser) parsePrimaryExpr() *Node {
	tok := p.peek()
	switch {
	case tok.Kind == TokenIntLiteral, tok.Kind == TokenFloatLiteral, tok.Kind == TokenCharLiteral,
		tok.Kind == TokenStringLiteral, tok.Kind == TokenTrue, tok.Kind == TokenFalse, tok.Kind == TokenNull:
		return p.leaf(KindLiteral)

	case tok.Kind == TokenThis:
		return p.leaf(KindThis)

	case tok.Kind == TokenSuper:
		if !p.checkN(1, TokenDot) && !p.checkN(1, TokenColonColon) {
			return p.errorNode("expected '.' or '::' after 'super'", expressionRecovery, TokenDot)
		}
		return p.leaf(KindSuper)

	case tok.Kind == TokenNew:
		return p.parseCreation()

	case tok.Kind == TokenLParen:
		node := p.startNode(KindParens)
		p.parseParExpression(node)
		return p.finishNode(node)

	case tok.Kind.IsPrimitive() || tok.Kind == TokenVoid:
		return p.parsePrimitiveTypeExpr()

	case isIdentifierKind(tok.Kind):
		if p.isGenericTypeReference() {
			node := p.startNode(KindTypeReference)
			node.AddChild(p.parseType())
			return p.finishNode(node)
		}
		return p.leaf(KindName)
	}

	return p.errorNode("expected expression", expressionRecovery)
}

// parsePrimitiveTypeExpr parses int.class, int[].class and int[]::new.
// Class literals become TypeLiteral{PrimitiveType|VoidType, [Dims]};
// constructor references become TypeReference{Type} and leave the :: for
// the suffix loop.
func (p *Parser) parsePrimitiveTypeExpr() *Node {
	if p.check(TokenVoid) {
		node := p.startNode(KindTypeLiteral)
		node.AddChild(p.leaf(KindVoidType))
		p.expect(TokenDot)
		p.expect(TokenClass)
		return p.finishNode(node)
	}

	save := p.pos
	p.advance()
	dims := p.parseDims()
	if p.check(TokenColonColon) {
		p.pos = save
		node := p.startNode(KindTypeReference)
		node.AddChild(p.parseType())
		return p.finishNode(node)
	}
	p.pos = save

	node := p.startNode(KindTypeLiteral)
	node.AddChild(p.leaf(KindPrimitiveType))
	if dims != nil {
		node.AddChild(p.parseDims())
	}
	p.expect(TokenDot)
	p.expect(TokenClass)
	return p.finishNode(node)
}

// isGenericTypeReference looks for a parameterized type followed by ::, as
// in List<String>::size.
func (p *Parser) isGenericTypeReference() bool {
	save := p.pos
	defer func() { p.pos = save }()

	for p.isIdentifierLike() {
		p.advance()
		if p.check(TokenLT) {
			if !p.skipTypeArguments() {
				return false
			}
			for p.check(TokenLBracket) && p.checkN(1, TokenRBracket) {
				p.advance()
				p.advance()
			}
			if p.check(TokenColonColon) {
				return true
			}
		}
		if !p.check(TokenDot) {
			return false
		}
		p.advance()
	}
	return false
}

// parseCreation parses instance and array creation:
//
//	new [<T>] Type(args) [body]   ObjectCreation{[TypeArguments], Type, Arguments, [ClassBody]}
//	new Type[e]...[]... [init]    ArrayCreation{Type, DimExpr..., [Dims], [ArrayInitializer]}
func (p *Parser) parseCreation() *Node {
	start := p.startNode(KindObjectCreation)
	p.expect(TokenNew)

	var typeArgs *Node
	if p.check(TokenLT) {
		typeArgs = p.parseTypeArguments()
	}

	typ := p.parseCreatedType()

	if p.check(TokenLBracket) || (p.check(TokenAt) && p.annotationsPrecede(TokenLBracket)) {
		node := start
		node.Kind = KindArrayCreation
		node.AddChild(typ)
		for p.startsDimExpr() {
			dim := p.startNode(KindDimExpr)
			for p.check(TokenAt) {
				dim.AddChild(p.parseAnnotation())
			}
			p.expect(TokenLBracket)
			dim.AddChild(p.parseExpression())
			p.expect(TokenRBracket)
			node.AddChild(p.finishNode(dim))
		}
		hasDimExprs := node.Has(KindDimExpr)
		if dims := p.parseDims(); dims != nil {
			node.AddChild(dims)
		}
		if p.check(TokenLBrace) {
			init := p.parseArrayInitializer()
			if hasDimExprs {
				p.addError(init.Span.Start, "array creation with both dimension expressions and initializer", nil)
			}
			node.AddChild(init)
		} else if !hasDimExprs {
			p.addError(p.peek().Span.Start, "array creation needs a dimension expression or an initializer", nil, TokenLBrace)
		}
		return p.finishNode(node)
	}

	node := start
	node.AddChild(typeArgs)
	node.AddChild(typ)
	node.AddChild(p.parseArguments())
	if p.check(TokenLBrace) {
		node.AddChild(p.parseClassBody())
	}
	return p.finishNode(node)
}

func (p *Parser) startsDimExpr() bool {
	save := p.pos
	defer func() { p.pos = save }()
	for p.check(TokenAt) {
		p.skipAnnotation()
	}
	return p.check(TokenLBracket) && !p.checkN(1, TokenRBracket)
}

// parseCreatedType parses the type after new. Dimensions are left to the
// caller, so the result is Type{Annotation..., PrimitiveType|ClassType}.
func (p *Parser) parseCreatedType() *Node {
	node := p.startNode(KindType)
	for p.check(TokenAt) {
		node.AddChild(p.parseAnnotation())
	}
	switch {
	case p.peek().Kind.IsPrimitive():
		node.AddChild(p.leaf(KindPrimitiveType))
	case p.isIdentifierLike():
		node.AddChild(p.parseClassType())
	default:
		return p.errorNode("expected type after 'new'", expressionRecovery, TokenIdent)
	}
	return p.finishNode(node)
}
