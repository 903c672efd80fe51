package parser

var statementRecovery = []TokenKind{TokenSemicolon, TokenRBrace}

func (p *Parser) parseBlock() *Node {
	node := p.startNode(KindBlock)
	p.expect(TokenLBrace)

	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		node.AddChild(p.parseBlockStatement())
		if !progress() {
			break
		}
	}

	p.expect(TokenRBrace)
	return p.finishNode(node)
}

// parseBlockStatement parses a statement that may also be a local variable
// declaration.
func (p *Parser) parseBlockStatement() *Node {
	if p.isLocalVarDecl() {
		node := p.parseLocalVarDeclNoSemi()
		p.expect(TokenSemicolon)
		return p.finishNode(node)
	}
	return p.parseStatement()
}

func (p *Parser) parseStatement() *Node {
	switch p.peek().Kind {
	case TokenLBrace:
		return p.parseBlock()
	case TokenSemicolon:
		node := p.startNode(KindEmptyStmt)
		p.advance()
		return p.finishNode(node)
	case TokenIf:
		return p.parseIfStmt()
	case TokenWhile:
		return p.parseWhileStmt()
	case TokenDo:
		return p.parseDoStmt()
	case TokenFor:
		return p.parseForStmt()
	case TokenTry:
		return p.parseTryStmt()
	case TokenSwitch:
		return p.parseSwitchStmt()
	case TokenSynchronized:
		return p.parseSynchronizedStmt()
	case TokenReturn:
		return p.parseJumpStmt(KindReturnStmt, false)
	case TokenBreak:
		return p.parseJumpStmt(KindBreakStmt, true)
	case TokenContinue:
		return p.parseJumpStmt(KindContinueStmt, true)
	case TokenThrow:
		node := p.startNode(KindThrowStmt)
		p.advance()
		node.AddChild(p.parseExpression())
		p.expect(TokenSemicolon)
		return p.finishNode(node)
	case TokenAssert:
		return p.parseAssertStmt()
	case TokenClass, TokenInterface, TokenElse, TokenCatch, TokenFinally, TokenCase, TokenDefault:
		return p.errorNode("expected statement", statementRecovery)
	}

	if p.isIdentifierLike() && p.checkN(1, TokenColon) {
		node := p.startNode(KindLabeledStmt)
		node.AddChild(p.parseIdentifier())
		p.expect(TokenColon)
		node.AddChild(p.parseStatement())
		return p.finishNode(node)
	}

	node := p.startNode(KindExprStmt)
	node.AddChild(p.parseExpression())
	p.expect(TokenSemicolon)
	return p.finishNode(node)
}

// isLocalVarDecl looks ahead for modifiers or "Type name".
func (p *Parser) isLocalVarDecl() bool {
	switch p.peek().Kind {
	case TokenFinal, TokenMutable:
		return true
	case TokenAt:
		return true
	}

	save := p.pos
	defer func() { p.pos = save }()

	if !p.skipType() {
		return false
	}
	return p.isIdentifierLike()
}

// parseLocalVarDeclNoSemi produces LocalVarDecl{Modifiers, Type,
// VariableDeclarator...}; the caller consumes any terminator.
func (p *Parser) parseLocalVarDeclNoSemi() *Node {
	node := p.startNode(KindLocalVarDecl)
	node.AddChild(p.parseModifiers())
	node.AddChild(p.parseType())
	p.parseVariableDeclarators(node)
	return p.finishNode(node)
}

func (p *Parser) parseParExpression(parent *Node) {
	p.expect(TokenLParen)
	parent.AddChild(p.parseExpression())
	p.expect(TokenRParen)
}

// parseIfStmt produces IfStmt{cond, then, [else]}.
func (p *Parser) parseIfStmt() *Node {
	node := p.startNode(KindIfStmt)
	p.expect(TokenIf)
	p.parseParExpression(node)
	node.AddChild(p.parseStatement())

	if p.check(TokenElse) {
		p.advance()
		node.AddChild(p.parseStatement())
	}

	return p.finishNode(node)
}

func (p *Parser) parseWhileStmt() *Node {
	node := p.startNode(KindWhileStmt)
	p.expect(TokenWhile)
	p.parseParExpression(node)
	node.AddChild(p.parseStatement())
	return p.finishNode(node)
}

// parseDoStmt produces DoStmt{body, cond}.
func (p *Parser) parseDoStmt() *Node {
	node := p.startNode(KindDoStmt)
	p.expect(TokenDo)
	node.AddChild(p.parseStatement())
	p.expect(TokenWhile)
	p.parseParExpression(node)
	p.expect(TokenSemicolon)
	return p.finishNode(node)
}

// parseForStmt handles both loop forms. The basic form is
// ForStmt{ForInit, [cond], ForUpdate, body} where ForInit and ForUpdate are
// always present and possibly empty. The enhanced form is
// ForEachStmt{FormalParameter, iterable, body}.
func (p *Parser) parseForStmt() *Node {
	node := p.startNode(KindForStmt)
	p.expect(TokenFor)
	p.expect(TokenLParen)

	if p.isEnhancedFor() {
		node.Kind = KindForEachStmt
		param := p.startNode(KindFormalParameter)
		param.AddChild(p.parseModifiers())
		param.AddChild(p.parseType())
		param.AddChild(p.parseIdentifier())
		node.AddChild(p.finishNode(param))
		p.expect(TokenColon)
		node.AddChild(p.parseExpression())
		p.expect(TokenRParen)
		node.AddChild(p.parseStatement())
		return p.finishNode(node)
	}

	init := p.startNode(KindForInit)
	if !p.check(TokenSemicolon) {
		if p.isLocalVarDecl() {
			init.AddChild(p.parseLocalVarDeclNoSemi())
		} else {
			p.parseExpressionList(init)
		}
	}
	node.AddChild(p.finishNode(init))
	p.expect(TokenSemicolon)

	if !p.check(TokenSemicolon) {
		node.AddChild(p.parseExpression())
	}
	p.expect(TokenSemicolon)

	update := p.startNode(KindForUpdate)
	if !p.check(TokenRParen) {
		p.parseExpressionList(update)
	}
	node.AddChild(p.finishNode(update))
	p.expect(TokenRParen)

	node.AddChild(p.parseStatement())
	return p.finishNode(node)
}

func (p *Parser) parseExpressionList(parent *Node) {
	for {
		progress := p.mustProgress()
		parent.AddChild(p.parseExpression())
		if !p.check(TokenComma) {
			break
		}
		p.advance()
		if !progress() {
			break
		}
	}
}

// isEnhancedFor looks for "[modifiers] Type name :" after "for (".
func (p *Parser) isEnhancedFor() bool {
	save := p.pos
	defer func() { p.pos = save }()

	for {
		if p.check(TokenAt) {
			p.skipAnnotation()
			continue
		}
		if p.match(TokenFinal, TokenMutable) {
			p.advance()
			continue
		}
		break
	}
	if !p.skipType() || !p.isIdentifierLike() {
		return false
	}
	p.advance()
	return p.check(TokenColon)
}

// parseTryStmt produces
// TryStmt{[ResourceSpec], Block, CatchClause..., [FinallyClause]}.
func (p *Parser) parseTryStmt() *Node {
	node := p.startNode(KindTryStmt)
	p.expect(TokenTry)

	if p.check(TokenLParen) {
		spec := p.startNode(KindResourceSpec)
		p.advance()
		for !p.check(TokenRParen) && !p.check(TokenEOF) {
			progress := p.mustProgress()
			spec.AddChild(p.parseResource())
			if !p.check(TokenSemicolon) {
				break
			}
			p.advance()
			if !progress() {
				break
			}
		}
		p.expect(TokenRParen)
		node.AddChild(p.finishNode(spec))
	}

	node.AddChild(p.parseBlock())

	for p.check(TokenCatch) {
		node.AddChild(p.parseCatchClause())
	}

	if p.check(TokenFinally) {
		fin := p.startNode(KindFinallyClause)
		p.advance()
		fin.AddChild(p.parseBlock())
		node.AddChild(p.finishNode(fin))
	}

	if !node.Has(KindResourceSpec) && !node.Has(KindCatchClause) && !node.Has(KindFinallyClause) {
		p.addError(node.Span.Start, "try without catch, finally or resources", nil)
	}

	return p.finishNode(node)
}

// parseResource produces Resource{Modifiers, Type, Identifier, init} for a
// declared resource and Resource{expr} for an existing variable.
func (p *Parser) parseResource() *Node {
	node := p.startNode(KindResource)
	if p.isLocalVarDecl() {
		node.AddChild(p.parseModifiers())
		node.AddChild(p.parseType())
		node.AddChild(p.parseIdentifier())
		p.expect(TokenAssign)
		node.AddChild(p.parseExpression())
		return p.finishNode(node)
	}
	node.AddChild(p.parseExpression())
	return p.finishNode(node)
}

// parseCatchClause produces CatchClause{Modifiers, CatchType, Identifier, Block}.
func (p *Parser) parseCatchClause() *Node {
	node := p.startNode(KindCatchClause)
	p.expect(TokenCatch)
	p.expect(TokenLParen)
	node.AddChild(p.parseModifiers())

	types := p.startNode(KindCatchType)
	for {
		progress := p.mustProgress()
		types.AddChild(p.parseClassType())
		if !p.check(TokenBitOr) {
			break
		}
		p.advance()
		if !progress() {
			break
		}
	}
	node.AddChild(p.finishNode(types))

	node.AddChild(p.parseIdentifier())
	p.expect(TokenRParen)
	node.AddChild(p.parseBlock())
	return p.finishNode(node)
}

// parseSwitchStmt produces SwitchStmt{selector, SwitchGroup...}. Each group
// is SwitchGroup{SwitchLabel..., statements...}.
func (p *Parser) parseSwitchStmt() *Node {
	node := p.startNode(KindSwitchStmt)
	p.expect(TokenSwitch)
	p.parseParExpression(node)
	p.expect(TokenLBrace)

	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		if !p.match(TokenCase, TokenDefault) {
			node.AddChild(p.errorNode("expected 'case' or 'default'", []TokenKind{TokenCase, TokenDefault, TokenRBrace}))
			progress()
			continue
		}
		group := p.startNode(KindSwitchGroup)
		for p.match(TokenCase, TokenDefault) {
			group.AddChild(p.parseSwitchLabel())
		}
		for !p.match(TokenCase, TokenDefault, TokenRBrace, TokenEOF) {
			stmtProgress := p.mustProgress()
			group.AddChild(p.parseBlockStatement())
			if !stmtProgress() {
				break
			}
		}
		node.AddChild(p.finishNode(group))
		if !progress() {
			break
		}
	}

	p.expect(TokenRBrace)
	return p.finishNode(node)
}

// parseSwitchLabel produces SwitchLabel{[expr]} carrying the case or default
// token.
func (p *Parser) parseSwitchLabel() *Node {
	node := p.startNode(KindSwitchLabel)
	tok := p.advance()
	node.Token = &tok
	if tok.Kind == TokenCase {
		node.AddChild(p.parseConditionalExpr())
	}
	p.expect(TokenColon)
	return p.finishNode(node)
}

func (p *Parser) parseSynchronizedStmt() *Node {
	node := p.startNode(KindSynchronizedStmt)
	p.expect(TokenSynchronized)
	p.parseParExpression(node)
	node.AddChild(p.parseBlock())
	return p.finishNode(node)
}

// parseJumpStmt parses return, break and continue. Break and continue take
// an optional label, return an optional value.
func (p *Parser) parseJumpStmt(kind NodeKind, labeled bool) *Node {
	node := p.startNode(kind)
	p.advance()
	if !p.check(TokenSemicolon) {
		if labeled {
			node.AddChild(p.parseIdentifier())
		} else {
			node.AddChild(p.parseExpression())
		}
	}
	p.expect(TokenSemicolon)
	return p.finishNode(node)
}

// parseAssertStmt produces AssertStmt{check, [message]}.
func (p *Parser) parseAssertStmt() *Node {
	node := p.startNode(KindAssertStmt)
	p.expect(TokenAssert)
	node.AddChild(p.parseExpression())
	if p.check(TokenColon) {
		p.advance()
		node.AddChild(p.parseExpression())
	}
	p.expect(TokenSemicolon)
	return p.finishNode(node)
}
