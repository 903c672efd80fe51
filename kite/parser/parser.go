package parser

import (
	"io"
	"slices"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

func WithComments() Option {
	return func(p *Parser) {
		p.includeComments = true
	}
}

type parseFunc func(*Parser) *Node

type Parser struct {
	file            string
	includeComments bool
	reader          io.Reader
	input           []byte
	lexer           *Lexer
	tokens          []Token
	comments        []Token
	errors          []*Error
	pos             int
	entry           parseFunc
}

func (p *Parser) Comments() []Token {
	return p.comments
}

// Errors returns every syntax error found by the last call to Finish, in
// source order.
func (p *Parser) Errors() []*Error {
	return p.errors
}

func ParseCompilationUnit(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		reader: r,
		entry:  (*Parser).parseCompilationUnit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func ParseExpression(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		reader: r,
		entry:  (*Parser).parseStandaloneExpression,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return err
	}
	p.input = data
	return nil
}

// Finish reads the whole input and parses it. The returned tree is never
// nil: malformed regions become KindError nodes and are also reported by
// Errors.
func (p *Parser) Finish() (*Node, error) {
	if err := p.readAll(); err != nil {
		return nil, err
	}
	p.lexer = NewLexer(p.input, p.file)
	p.tokens = nil
	p.comments = nil
	p.errors = nil
	p.pos = 0
	p.tokenize()
	root := p.entry(p)
	slices.SortStableFunc(p.errors, func(a, b *Error) int {
		return a.Pos.Offset - b.Pos.Offset
	})
	return root, nil
}

func (p *Parser) tokenize() {
	for {
		tok := p.lexer.NextToken()
		if tok.Kind == TokenWhitespace {
			continue
		}
		if tok.Kind == TokenComment || tok.Kind == TokenLineComment {
			if p.includeComments {
				p.comments = append(p.comments, tok)
			}
			continue
		}
		if tok.Kind == TokenError {
			p.addError(tok.Span.Start, "invalid token "+quote(tok.Literal), &tok)
			continue
		}
		p.tokens = append(p.tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
}

func quote(s string) string {
	if len(s) > 20 {
		s = s[:20] + "..."
	}
	return "'" + s + "'"
}

func (p *Parser) addError(pos Position, msg string, got *Token, expected ...TokenKind) *Error {
	err := &Error{Message: msg, Pos: pos, Expected: expected, Got: got}
	// one error per position keeps a single missing token from cascading
	if n := len(p.errors); n > 0 && p.errors[n-1].Pos.Offset == pos.Offset {
		return err
	}
	p.errors = append(p.errors, err)
	return err
}

func describe(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of file"
	case TokenIdent, TokenIntLiteral, TokenFloatLiteral, TokenCharLiteral, TokenStringLiteral:
		return quote(tok.Literal)
	}
	return "'" + tok.Kind.String() + "'"
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		if len(p.tokens) > 0 {
			return p.tokens[len(p.tokens)-1]
		}
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekN(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.peek()
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) && tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

// expect consumes a token of the given kind. A missing token is recorded as
// a syntax error and nothing is consumed.
func (p *Parser) expect(kind TokenKind) *Token {
	tok := p.peek()
	if tok.Kind == kind {
		p.advance()
		return &tok
	}
	p.addError(tok.Span.Start, "expected '"+kind.String()+"', found "+describe(tok), &tok, kind)
	return nil
}

func (p *Parser) check(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) checkN(n int, kind TokenKind) bool {
	return p.peekN(n).Kind == kind
}

// mustProgress returns a function that checks if the parser has advanced.
// Call it at the start of a loop iteration, then call the returned function
// at the end to break if no progress was made.
func (p *Parser) mustProgress() func() bool {
	saved := p.pos
	return func() bool {
		if p.pos == saved {
			if !p.check(TokenEOF) {
				tok := p.advance()
				p.addError(tok.Span.Start, "unexpected "+describe(tok), &tok)
			}
			return false
		}
		return true
	}
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// isIdentifierLike reports whether the current token can be used as a
// name. The contextual keyword "of" is only reserved inside class headers.
func (p *Parser) isIdentifierLike() bool {
	return isIdentifierKind(p.peek().Kind)
}

func isIdentifierKind(kind TokenKind) bool {
	return kind == TokenIdent || kind == TokenOf
}

func (p *Parser) leaf(kind NodeKind) *Node {
	tok := p.advance()
	return &Node{Kind: kind, Token: &tok, Span: tok.Span}
}

func (p *Parser) parseIdentifier() *Node {
	if p.isIdentifierLike() {
		return p.leaf(KindIdentifier)
	}
	tok := p.peek()
	err := p.addError(tok.Span.Start, "expected identifier, found "+describe(tok), &tok, TokenIdent)
	return &Node{Kind: KindError, Span: tok.Span, Error: err}
}

func (p *Parser) startNode(kind NodeKind) *Node {
	return &Node{
		Kind: kind,
		Span: Span{Start: p.peek().Span.Start},
	}
}

// startNodeAt starts a node whose span begins at an already parsed child.
func (p *Parser) startNodeAt(kind NodeKind, first *Node) *Node {
	node := &Node{Kind: kind, Span: Span{Start: first.Span.Start}}
	node.AddChild(first)
	return node
}

func (p *Parser) finishNode(n *Node) *Node {
	if p.pos > 0 && p.pos <= len(p.tokens) {
		n.Span.End = p.tokens[p.pos-1].Span.End
	} else if len(p.tokens) > 0 {
		n.Span.End = p.tokens[len(p.tokens)-1].Span.End
	}
	if n.Span.End.Offset < n.Span.Start.Offset {
		n.Span.End = n.Span.Start
	}
	return n
}

func (p *Parser) errorNode(msg string, recoverTo []TokenKind, expected ...TokenKind) *Node {
	tok := p.peek()
	err := p.addError(tok.Span.Start, msg+", found "+describe(tok), &tok, expected...)
	node := &Node{
		Kind:  KindError,
		Span:  Span{Start: tok.Span.Start, End: tok.Span.End},
		Error: err,
	}
	p.recoverTo(recoverTo)
	return node
}

// recoverTo skips tokens until one of kinds (or EOF) is current. A caller
// looping over errorNode must guard the loop with mustProgress.
func (p *Parser) recoverTo(kinds []TokenKind) {
	for !p.check(TokenEOF) && !p.match(kinds...) {
		p.advance()
	}
}

func (p *Parser) parseCompilationUnit() *Node {
	node := p.startNode(KindCompilationUnit)

	if p.check(TokenPackage) || p.isAnnotatedPackage() {
		node.AddChild(p.parsePackageDecl())
	}

	for p.check(TokenImport) {
		node.AddChild(p.parseImportDecl())
	}

	types := 0
	for !p.check(TokenEOF) {
		progress := p.mustProgress()
		if p.check(TokenSemicolon) {
			p.advance()
			continue
		}
		start := p.peek()
		decl := p.parseTypeDecl()
		if decl.Kind != KindError {
			types++
			if types == 2 {
				p.addError(start.Span.Start, "a file may declare only one top-level type", &start)
			}
		}
		node.AddChild(decl)
		if !progress() {
			break
		}
	}
	if types == 0 {
		tok := p.peek()
		p.addError(tok.Span.Start, "expected class, interface or @interface declaration", &tok,
			TokenClass, TokenInterface, TokenAt)
	}

	return p.finishNode(node)
}

func (p *Parser) isAnnotatedPackage() bool {
	save := p.pos
	defer func() { p.pos = save }()
	for p.check(TokenAt) && !p.checkN(1, TokenInterface) {
		p.skipAnnotation()
	}
	return p.check(TokenPackage)
}

func (p *Parser) parsePackageDecl() *Node {
	node := p.startNode(KindPackageDecl)
	for p.check(TokenAt) {
		node.AddChild(p.parseAnnotation())
	}
	p.expect(TokenPackage)
	node.AddChild(p.parseQualifiedName())
	p.expect(TokenSemicolon)
	return p.finishNode(node)
}

// parseImportDecl parses
//
//	import [static] a.b.C [.*] ;
//
// into ImportDecl{[Modifier static], QualifiedName, [Operator *]}.
func (p *Parser) parseImportDecl() *Node {
	node := p.startNode(KindImportDecl)
	p.expect(TokenImport)

	if p.check(TokenStatic) {
		node.AddChild(p.leaf(KindModifier))
	}

	name := p.startNode(KindQualifiedName)
	name.AddChild(p.parseIdentifier())
	for p.check(TokenDot) {
		p.advance()
		if p.check(TokenStar) {
			node.AddChild(p.finishNode(name))
			node.AddChild(p.leaf(KindOperator))
			p.expect(TokenSemicolon)
			return p.finishNode(node)
		}
		name.AddChild(p.parseIdentifier())
	}
	node.AddChild(p.finishNode(name))

	p.expect(TokenSemicolon)
	return p.finishNode(node)
}

func (p *Parser) parseQualifiedName() *Node {
	node := p.startNode(KindQualifiedName)
	node.AddChild(p.parseIdentifier())
	for p.check(TokenDot) && isIdentifierKind(p.peekN(1).Kind) {
		p.advance()
		node.AddChild(p.parseIdentifier())
	}
	return p.finishNode(node)
}

func (p *Parser) parseTypeDecl() *Node {
	modifiers := p.parseModifiers()

	switch {
	case p.check(TokenClass):
		return p.parseClassDecl(modifiers)
	case p.check(TokenInterface):
		return p.parseInterfaceDecl(modifiers)
	case p.check(TokenAt) && p.checkN(1, TokenInterface):
		return p.parseAnnotationTypeDecl(modifiers)
	}

	return p.errorNode("expected class, interface or @interface declaration",
		[]TokenKind{TokenClass, TokenInterface, TokenAt, TokenPublic, TokenAbstract, TokenFinal},
		TokenClass, TokenInterface)
}

// parseModifiers collects modifier keywords and annotations in source
// order. The result is always a Modifiers node, possibly empty.
func (p *Parser) parseModifiers() *Node {
	node := p.startNode(KindModifiers)

	for {
		tok := p.peek()
		switch {
		case tok.Kind == TokenAt && !p.checkN(1, TokenInterface):
			node.AddChild(p.parseAnnotation())
			continue
		case tok.Kind.IsModifier():
			// "default" only modifies when it is not a switch label
			if tok.Kind == TokenDefault && p.checkN(1, TokenColon) {
				return p.finishNode(node)
			}
			// "synchronized (" starts a statement
			if tok.Kind == TokenSynchronized && p.checkN(1, TokenLParen) {
				return p.finishNode(node)
			}
			node.AddChild(p.leaf(KindModifier))
			continue
		}
		break
	}

	if len(node.Children) == 0 {
		node.Span.End = node.Span.Start
		return node
	}
	return p.finishNode(node)
}

// parseAnnotation parses the three annotation forms:
//
//	@Marker            Annotation{QualifiedName}
//	@Single(value)     Annotation{QualifiedName, value}
//	@Normal(a = 1)     Annotation{QualifiedName, ElementValuePair...}
func (p *Parser) parseAnnotation() *Node {
	node := p.startNode(KindAnnotation)
	p.expect(TokenAt)
	node.AddChild(p.parseQualifiedName())

	if p.check(TokenLParen) {
		p.advance()
		if p.isIdentifierLike() && p.checkN(1, TokenAssign) {
			for {
				progress := p.mustProgress()
				node.AddChild(p.parseElementValuePair())
				if !p.check(TokenComma) {
					break
				}
				p.advance()
				if !progress() {
					break
				}
			}
		} else if !p.check(TokenRParen) {
			node.AddChild(p.parseElementValue())
		}
		p.expect(TokenRParen)
	}

	return p.finishNode(node)
}

func (p *Parser) skipAnnotation() {
	p.advance()
	p.parseQualifiedName()
	if p.check(TokenLParen) {
		p.skipBalanced(TokenLParen, TokenRParen)
	}
}

// skipBalanced skips a bracketed token run starting at the current open
// token.
func (p *Parser) skipBalanced(open, close TokenKind) {
	depth := 0
	for !p.check(TokenEOF) {
		switch p.peek().Kind {
		case open:
			depth++
		case close:
			depth--
		}
		p.advance()
		if depth == 0 {
			return
		}
	}
}

func (p *Parser) parseElementValuePair() *Node {
	node := p.startNode(KindElementValuePair)
	node.AddChild(p.parseIdentifier())
	p.expect(TokenAssign)
	node.AddChild(p.parseElementValue())
	return p.finishNode(node)
}

func (p *Parser) parseElementValue() *Node {
	switch {
	case p.check(TokenAt):
		return p.parseAnnotation()
	case p.check(TokenLBrace):
		node := p.startNode(KindArrayInitializer)
		p.advance()
		for !p.check(TokenRBrace) && !p.check(TokenEOF) {
			progress := p.mustProgress()
			node.AddChild(p.parseElementValue())
			if !p.check(TokenComma) {
				break
			}
			p.advance()
			if !progress() {
				break
			}
		}
		p.expect(TokenRBrace)
		return p.finishNode(node)
	}
	return p.parseConditionalExpr()
}

func (p *Parser) declNode(kind NodeKind, modifiers *Node) *Node {
	node := p.startNode(kind)
	if len(modifiers.Children) > 0 {
		node.Span.Start = modifiers.Span.Start
	}
	node.AddChild(modifiers)
	return node
}

// parseClassDecl parses
//
//	class Name [<T>] [extends Type] [of Type, ...] { ... }
func (p *Parser) parseClassDecl(modifiers *Node) *Node {
	node := p.declNode(KindClassDecl, modifiers)
	p.expect(TokenClass)
	node.AddChild(p.parseIdentifier())

	if p.check(TokenLT) {
		node.AddChild(p.parseTypeParameters())
	}

	if p.check(TokenExtends) {
		ext := p.startNode(KindExtendsClause)
		p.advance()
		ext.AddChild(p.parseClassType())
		node.AddChild(p.finishNode(ext))
	}

	if p.check(TokenOf) {
		of := p.startNode(KindOfClause)
		p.advance()
		p.parseTypeList(of)
		node.AddChild(p.finishNode(of))
	}

	node.AddChild(p.parseClassBody())
	return p.finishNode(node)
}

// parseTypeList parses a comma-separated list of class types into parent.
func (p *Parser) parseTypeList(parent *Node) {
	for {
		progress := p.mustProgress()
		parent.AddChild(p.parseClassType())
		if !p.check(TokenComma) {
			break
		}
		p.advance()
		if !progress() {
			break
		}
	}
}

func (p *Parser) parseInterfaceDecl(modifiers *Node) *Node {
	node := p.declNode(KindInterfaceDecl, modifiers)
	p.expect(TokenInterface)
	node.AddChild(p.parseIdentifier())

	if p.check(TokenLT) {
		node.AddChild(p.parseTypeParameters())
	}

	if p.check(TokenExtends) {
		ext := p.startNode(KindExtendsClause)
		p.advance()
		p.parseTypeList(ext)
		node.AddChild(p.finishNode(ext))
	}

	node.AddChild(p.parseInterfaceBody())
	return p.finishNode(node)
}

func (p *Parser) parseAnnotationTypeDecl(modifiers *Node) *Node {
	node := p.declNode(KindAnnotationTypeDecl, modifiers)
	p.expect(TokenAt)
	p.expect(TokenInterface)
	node.AddChild(p.parseIdentifier())
	node.AddChild(p.parseAnnotationTypeBody())
	return p.finishNode(node)
}

func (p *Parser) parseTypeParameters() *Node {
	node := p.startNode(KindTypeParameters)
	p.expect(TokenLT)

	for {
		progress := p.mustProgress()
		node.AddChild(p.parseTypeParameter())
		if !p.check(TokenComma) {
			break
		}
		p.advance()
		if !progress() {
			break
		}
	}

	p.expectGT()
	return p.finishNode(node)
}

// parseTypeParameter parses [annotations] T [extends A & B].
func (p *Parser) parseTypeParameter() *Node {
	node := p.startNode(KindTypeParameter)

	for p.check(TokenAt) {
		node.AddChild(p.parseAnnotation())
	}
	node.AddChild(p.parseIdentifier())

	if p.check(TokenExtends) {
		bound := p.startNode(KindTypeBound)
		p.advance()
		for {
			progress := p.mustProgress()
			bound.AddChild(p.parseClassType())
			if !p.check(TokenBitAnd) {
				break
			}
			p.advance()
			if !progress() {
				break
			}
		}
		node.AddChild(p.finishNode(bound))
	}

	return p.finishNode(node)
}

var memberRecovery = []TokenKind{TokenSemicolon, TokenRBrace, TokenPublic, TokenPrivate, TokenProtected, TokenStatic}

func (p *Parser) parseBody(kind NodeKind, member func() *Node) *Node {
	node := p.startNode(kind)
	p.expect(TokenLBrace)

	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		if p.check(TokenSemicolon) {
			p.advance()
			continue
		}
		node.AddChild(member())
		if !progress() {
			break
		}
	}

	p.expect(TokenRBrace)
	return p.finishNode(node)
}

func (p *Parser) parseClassBody() *Node {
	return p.parseBody(KindClassBody, p.parseClassMember)
}

func (p *Parser) parseInterfaceBody() *Node {
	return p.parseBody(KindInterfaceBody, p.parseInterfaceMember)
}

func (p *Parser) parseAnnotationTypeBody() *Node {
	return p.parseBody(KindAnnotationTypeBody, p.parseAnnotationTypeMember)
}

// parseNestedTypeDecl returns a nested type declaration when one starts at
// the current token, or nil.
func (p *Parser) parseNestedTypeDecl(modifiers *Node) *Node {
	switch {
	case p.check(TokenClass):
		return p.parseClassDecl(modifiers)
	case p.check(TokenInterface):
		return p.parseInterfaceDecl(modifiers)
	case p.check(TokenAt) && p.checkN(1, TokenInterface):
		return p.parseAnnotationTypeDecl(modifiers)
	}
	return nil
}

func (p *Parser) parseClassMember() *Node {
	if p.check(TokenLBrace) {
		node := p.startNode(KindInitializer)
		node.AddChild(p.parseBlock())
		return p.finishNode(node)
	}
	if p.check(TokenStatic) && p.checkN(1, TokenLBrace) {
		node := p.startNode(KindInitializer)
		node.AddChild(p.leaf(KindModifier))
		node.AddChild(p.parseBlock())
		return p.finishNode(node)
	}

	modifiers := p.parseModifiers()
	if nested := p.parseNestedTypeDecl(modifiers); nested != nil {
		return nested
	}

	var typeParams *Node
	if p.check(TokenLT) {
		typeParams = p.parseTypeParameters()
	}

	if p.isIdentifierLike() && p.checkN(1, TokenLParen) {
		return p.parseConstructor(modifiers, typeParams)
	}

	if !p.check(TokenVoid) && !p.startsType() {
		return p.errorNode("expected member declaration", memberRecovery)
	}

	returnType := p.parseReturnType()
	if typeParams != nil || p.checkN(1, TokenLParen) || returnType.Kind == KindVoidType {
		return p.parseMethod(KindMethodDecl, modifiers, typeParams, returnType)
	}
	return p.parseField(KindFieldDecl, modifiers, returnType)
}

func (p *Parser) parseInterfaceMember() *Node {
	modifiers := p.parseModifiers()
	if nested := p.parseNestedTypeDecl(modifiers); nested != nil {
		return nested
	}

	var typeParams *Node
	if p.check(TokenLT) {
		typeParams = p.parseTypeParameters()
	}

	if !p.check(TokenVoid) && !p.startsType() {
		return p.errorNode("expected interface member declaration", memberRecovery)
	}

	returnType := p.parseReturnType()
	if typeParams != nil || p.checkN(1, TokenLParen) || returnType.Kind == KindVoidType {
		return p.parseMethod(KindInterfaceMethodDecl, modifiers, typeParams, returnType)
	}
	return p.parseField(KindConstantDecl, modifiers, returnType)
}

// parseAnnotationTypeMember parses either an element declaration
//
//	Type name() [default value];
//
// or a constant.
func (p *Parser) parseAnnotationTypeMember() *Node {
	modifiers := p.parseModifiers()
	if nested := p.parseNestedTypeDecl(modifiers); nested != nil {
		return nested
	}
	if !p.startsType() {
		return p.errorNode("expected annotation member declaration", memberRecovery)
	}

	typ := p.parseType()
	if !(p.isIdentifierLike() && p.checkN(1, TokenLParen)) {
		return p.parseField(KindConstantDecl, modifiers, typ)
	}

	node := p.declNode(KindAnnotationMemberDecl, modifiers)
	node.AddChild(typ)
	node.AddChild(p.parseIdentifier())
	p.expect(TokenLParen)
	p.expect(TokenRParen)
	if p.check(TokenLBracket) || p.check(TokenAt) {
		if dims := p.parseDims(); dims != nil {
			node.AddChild(dims)
		}
	}
	if p.check(TokenDefault) {
		def := p.startNode(KindDefaultValue)
		p.advance()
		def.AddChild(p.parseElementValue())
		node.AddChild(p.finishNode(def))
	}
	p.expect(TokenSemicolon)
	return p.finishNode(node)
}

func (p *Parser) parseReturnType() *Node {
	if p.check(TokenVoid) {
		return p.leaf(KindVoidType)
	}
	return p.parseType()
}

// parseConstructor parses
//
//	[<T>] Name(params) [throws E] { [this(...); | super(...);] stmts }
func (p *Parser) parseConstructor(modifiers, typeParams *Node) *Node {
	node := p.declNode(KindConstructorDecl, modifiers)
	node.AddChild(typeParams)
	node.AddChild(p.parseIdentifier())
	node.AddChild(p.parseFormalParameters())

	if p.check(TokenThrows) {
		node.AddChild(p.parseThrowsClause())
	}

	node.AddChild(p.parseConstructorBody())
	return p.finishNode(node)
}

func (p *Parser) parseConstructorBody() *Node {
	node := p.startNode(KindConstructorBody)
	p.expect(TokenLBrace)

	if p.isExplicitConstructorInvocation() {
		node.AddChild(p.parseExplicitConstructorInvocation())
	}

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

// isExplicitConstructorInvocation recognises
//
//	[<T>] this(   [<T>] super(   a.b.[<T>] super(
func (p *Parser) isExplicitConstructorInvocation() bool {
	save := p.pos
	defer func() { p.pos = save }()

	if p.check(TokenLT) {
		p.skipTypeArguments()
	}
	if p.match(TokenThis, TokenSuper) {
		return p.checkN(1, TokenLParen)
	}
	if !p.isIdentifierLike() {
		return false
	}
	p.advance()
	for p.check(TokenDot) {
		p.advance()
		if p.check(TokenLT) {
			p.skipTypeArguments()
		}
		if p.check(TokenSuper) {
			return p.checkN(1, TokenLParen)
		}
		if !p.isIdentifierLike() {
			return false
		}
		p.advance()
	}
	return false
}

// parseExplicitConstructorInvocation produces
// ExplicitConstructorInvocation{[scope], [TypeArguments], This|Super, Arguments}.
func (p *Parser) parseExplicitConstructorInvocation() *Node {
	node := p.startNode(KindExplicitConstructorInvocation)

	if p.isIdentifierLike() {
		scope := p.leaf(KindName)
		var post *Node
		for p.check(TokenDot) && isIdentifierKind(p.peekN(1).Kind) {
			if post == nil {
				post = p.startNodeAt(KindPostfix, scope)
			}
			suffix := p.startNode(KindFieldSuffix)
			p.advance()
			suffix.AddChild(p.parseIdentifier())
			post.AddChild(p.finishNode(suffix))
		}
		if post != nil {
			scope = p.finishNode(post)
		}
		node.AddChild(scope)
		p.expect(TokenDot)
	}

	if p.check(TokenLT) {
		node.AddChild(p.parseTypeArguments())
	}

	switch {
	case p.check(TokenThis):
		node.AddChild(p.leaf(KindThis))
	case p.check(TokenSuper):
		node.AddChild(p.leaf(KindSuper))
	default:
		node.AddChild(p.errorNode("expected 'this' or 'super'", []TokenKind{TokenLParen}))
	}

	node.AddChild(p.parseArguments())
	p.expect(TokenSemicolon)
	return p.finishNode(node)
}

// parseMethod parses the remainder of a method after its return type:
//
//	name(params) [dims] [throws E] ( block | ; )
func (p *Parser) parseMethod(kind NodeKind, modifiers, typeParams, returnType *Node) *Node {
	node := p.declNode(kind, modifiers)
	node.AddChild(typeParams)
	node.AddChild(returnType)
	node.AddChild(p.parseIdentifier())
	node.AddChild(p.parseFormalParameters())

	if p.check(TokenLBracket) || p.check(TokenAt) {
		node.AddChild(p.parseDims())
	}

	if p.check(TokenThrows) {
		node.AddChild(p.parseThrowsClause())
	}

	if p.check(TokenLBrace) {
		node.AddChild(p.parseBlock())
	} else {
		p.expect(TokenSemicolon)
	}

	return p.finishNode(node)
}

func (p *Parser) parseField(kind NodeKind, modifiers, typ *Node) *Node {
	node := p.declNode(kind, modifiers)
	node.AddChild(typ)
	p.parseVariableDeclarators(node)
	p.expect(TokenSemicolon)
	return p.finishNode(node)
}

func (p *Parser) parseVariableDeclarators(parent *Node) {
	for {
		progress := p.mustProgress()
		parent.AddChild(p.parseVariableDeclarator())
		if !p.check(TokenComma) {
			break
		}
		p.advance()
		if !progress() {
			break
		}
	}
}

// parseVariableDeclarator parses name [dims] [= init] into
// VariableDeclarator{Identifier, [Dims], [initializer]}.
func (p *Parser) parseVariableDeclarator() *Node {
	node := p.startNode(KindVariableDeclarator)
	node.AddChild(p.parseIdentifier())

	if p.check(TokenLBracket) || p.check(TokenAt) {
		node.AddChild(p.parseDims())
	}

	if p.check(TokenAssign) {
		p.advance()
		node.AddChild(p.parseVarInitializer())
	}

	return p.finishNode(node)
}

func (p *Parser) parseVarInitializer() *Node {
	if p.check(TokenLBrace) {
		return p.parseArrayInitializer()
	}
	return p.parseExpression()
}

func (p *Parser) parseArrayInitializer() *Node {
	node := p.startNode(KindArrayInitializer)
	p.expect(TokenLBrace)

	for !p.check(TokenRBrace) && !p.check(TokenEOF) {
		progress := p.mustProgress()
		node.AddChild(p.parseVarInitializer())
		if !p.check(TokenComma) {
			break
		}
		p.advance()
		if !progress() {
			break
		}
	}

	p.expect(TokenRBrace)
	return p.finishNode(node)
}

func (p *Parser) parseFormalParameters() *Node {
	node := p.startNode(KindFormalParameters)
	p.expect(TokenLParen)

	if !p.check(TokenRParen) {
		for {
			progress := p.mustProgress()
			node.AddChild(p.parseFormalParameter())
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

// parseFormalParameter parses
//
//	modifiers Type [annotations ...] name [dims]
//
// into FormalParameter{Modifiers, Type, [Varargs], Identifier, [Dims]}.
func (p *Parser) parseFormalParameter() *Node {
	node := p.startNode(KindFormalParameter)
	node.AddChild(p.parseModifiers())
	node.AddChild(p.parseType())

	if p.check(TokenEllipsis) || (p.check(TokenAt) && p.annotationsPrecede(TokenEllipsis)) {
		varargs := p.startNode(KindVarargs)
		for p.check(TokenAt) {
			varargs.AddChild(p.parseAnnotation())
		}
		p.expect(TokenEllipsis)
		node.AddChild(p.finishNode(varargs))
	}

	node.AddChild(p.parseIdentifier())
	if p.check(TokenLBracket) {
		node.AddChild(p.parseDims())
	}

	return p.finishNode(node)
}

// annotationsPrecede reports whether the annotations starting at the current
// token are followed by kind.
func (p *Parser) annotationsPrecede(kind TokenKind) bool {
	save := p.pos
	defer func() { p.pos = save }()
	for p.check(TokenAt) {
		p.skipAnnotation()
	}
	return p.check(kind)
}

func (p *Parser) parseThrowsClause() *Node {
	node := p.startNode(KindThrowsClause)
	p.expect(TokenThrows)
	p.parseTypeList(node)
	return p.finishNode(node)
}

func (p *Parser) parseStandaloneExpression() *Node {
	expr := p.parseExpression()
	if !p.check(TokenEOF) {
		tok := p.peek()
		p.addError(tok.Span.Start, "unexpected "+describe(tok)+" after expression", &tok)
	}
	return expr
}
