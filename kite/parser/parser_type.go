package parser

func (p *Parser) startsType() bool {
	tok := p.peek()
	return tok.Kind.IsPrimitive() || isIdentifierKind(tok.Kind) || tok.Kind == TokenAt
}

// parseType parses
//
//	[annotations] (primitive | ClassType) [dims]
//
// into Type{Annotation..., PrimitiveType|ClassType, [Dims]}.
func (p *Parser) parseType() *Node {
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
		return p.errorNode("expected type", []TokenKind{TokenSemicolon, TokenRParen, TokenComma, TokenRBrace}, TokenIdent)
	}

	if p.check(TokenLBracket) || p.check(TokenAt) {
		node.AddChild(p.parseDims())
	}

	return p.finishNode(node)
}

// parseClassType parses a possibly qualified, possibly parameterized class
// type such as java.util.@A Map<K, V>.Entry into
// ClassType{ClassTypeElement...}, one element per name segment.
func (p *Parser) parseClassType() *Node {
	node := p.startNode(KindClassType)

	for {
		progress := p.mustProgress()
		elem := p.startNode(KindClassTypeElement)
		for p.check(TokenAt) {
			elem.AddChild(p.parseAnnotation())
		}
		elem.AddChild(p.parseIdentifier())
		if p.check(TokenLT) {
			elem.AddChild(p.parseTypeArguments())
		}
		node.AddChild(p.finishNode(elem))

		if !p.check(TokenDot) || !(isIdentifierKind(p.peekN(1).Kind) || p.checkN(1, TokenAt)) {
			break
		}
		p.advance()
		if !progress() {
			break
		}
	}

	return p.finishNode(node)
}

// parseDims parses one or more [annotations] [] pairs into Dims{Dim...}.
// Annotations are only consumed when a bracket follows them; nil is returned
// when no dimension starts here.
func (p *Parser) parseDims() *Node {
	node := p.startNode(KindDims)

	for {
		if p.check(TokenAt) && !p.annotationsPrecede(TokenLBracket) {
			break
		}
		if !p.check(TokenAt) && !p.check(TokenLBracket) {
			break
		}
		if p.check(TokenLBracket) && !p.checkN(1, TokenRBracket) {
			break
		}
		dim := p.startNode(KindDim)
		for p.check(TokenAt) {
			dim.AddChild(p.parseAnnotation())
		}
		p.expect(TokenLBracket)
		p.expect(TokenRBracket)
		node.AddChild(p.finishNode(dim))
	}

	if len(node.Children) == 0 {
		return nil
	}
	return p.finishNode(node)
}

// parseTypeArguments parses <A, ? extends B>. An empty list is the diamond.
func (p *Parser) parseTypeArguments() *Node {
	node := p.startNode(KindTypeArguments)
	p.expect(TokenLT)

	if p.expectGT() {
		return p.finishNode(node)
	}

	for {
		progress := p.mustProgress()
		node.AddChild(p.parseTypeArgument())
		if !p.check(TokenComma) {
			break
		}
		p.advance()
		if !progress() {
			break
		}
	}

	if !p.expectGT() {
		tok := p.peek()
		p.addError(tok.Span.Start, "expected '>', found "+describe(tok), &tok, TokenGT)
	}
	return p.finishNode(node)
}

func (p *Parser) parseTypeArgument() *Node {
	if p.check(TokenQuestion) || (p.check(TokenAt) && p.annotationsPrecede(TokenQuestion)) {
		return p.parseWildcard()
	}
	return p.parseType()
}

func (p *Parser) parseWildcard() *Node {
	node := p.startNode(KindWildcard)
	for p.check(TokenAt) {
		node.AddChild(p.parseAnnotation())
	}
	p.expect(TokenQuestion)

	if p.check(TokenExtends) || p.check(TokenSuper) {
		node.AddChild(p.leaf(KindOperator))
		node.AddChild(p.parseType())
	}

	return p.finishNode(node)
}

// expectGT consumes a closing angle bracket, splitting shift and compare
// tokens the lexer produced for nested type arguments.
func (p *Parser) expectGT() bool {
	switch p.peek().Kind {
	case TokenGT:
		p.advance()
		return true
	case TokenShr:
		p.splitToken(TokenGT)
		return true
	case TokenUShr:
		p.splitToken(TokenShr)
		return true
	case TokenGE:
		p.splitToken(TokenAssign)
		return true
	case TokenShrAssign:
		p.splitToken(TokenGE)
		return true
	case TokenUShrAssign:
		p.splitToken(TokenShrAssign)
		return true
	}
	return false
}

// splitToken consumes the first character of the current token and leaves
// the rest in place as a token of kind remainder.
func (p *Parser) splitToken(remainder TokenKind) {
	tok := p.tokens[p.pos]
	p.tokens[p.pos] = Token{
		Kind:    remainder,
		Literal: tok.Literal[1:],
		Span: Span{
			Start: Position{
				File:   tok.Span.Start.File,
				Offset: tok.Span.Start.Offset + 1,
				Line:   tok.Span.Start.Line,
				Column: tok.Span.Start.Column + 1,
			},
			End: tok.Span.End,
		},
	}
}

// skipTypeArguments moves past a type argument list without building nodes
// and reports whether the list was closed. It is only used for lookahead;
// the caller restores the position.
func (p *Parser) skipTypeArguments() bool {
	if !p.check(TokenLT) {
		return false
	}
	p.advance()
	depth := 1
	for depth > 0 && !p.check(TokenEOF) {
		switch p.peek().Kind {
		case TokenLT:
			depth++
		case TokenGT:
			depth--
		case TokenShr:
			depth -= 2
		case TokenUShr:
			depth -= 3
		case TokenSemicolon, TokenLBrace, TokenRBrace, TokenLParen, TokenRParen, TokenAnd, TokenOr:
			return false
		}
		p.advance()
	}
	return depth <= 0
}

// skipType moves past a type during lookahead and reports whether one was
// there.
func (p *Parser) skipType() bool {
	for p.check(TokenAt) {
		p.skipAnnotation()
	}
	switch {
	case p.peek().Kind.IsPrimitive():
		p.advance()
	case p.isIdentifierLike():
		for {
			for p.check(TokenAt) {
				p.skipAnnotation()
			}
			if !p.isIdentifierLike() {
				return false
			}
			p.advance()
			if p.check(TokenLT) && !p.skipTypeArguments() {
				return false
			}
			if !p.check(TokenDot) {
				break
			}
			p.advance()
		}
	default:
		return false
	}
	for {
		save := p.pos
		for p.check(TokenAt) {
			p.skipAnnotation()
		}
		if p.check(TokenLBracket) && p.checkN(1, TokenRBracket) {
			p.advance()
			p.advance()
			continue
		}
		p.pos = save
		return true
	}
}
