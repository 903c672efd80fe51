package builder

import (
	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/parser"
)

func (b *builder) compilationUnit(n *parser.Node) *ast.CompilationUnit {
	if n.Kind != parser.KindCompilationUnit {
		b.fail(n, "expected CompilationUnit")
	}
	c := b.cursor(n)
	unit := &ast.CompilationUnit{At: at(n)}

	if pkg := c.optional(parser.KindPackageDecl); pkg != nil {
		unit.Package = b.packageDecl(pkg)
	} else {
		unit.Package = &ast.PackageDecl{At: ast.At{Position: ast.NoPos}}
	}

	for _, imp := range c.many(parser.KindImportDecl) {
		unit.Imports = append(unit.Imports, b.importDecl(imp))
	}

	unit.Type = b.typeDecl(c.expect(parser.KindClassDecl, parser.KindInterfaceDecl, parser.KindAnnotationTypeDecl))
	c.done()
	return unit
}

func (b *builder) packageDecl(n *parser.Node) *ast.PackageDecl {
	c := b.cursor(n)
	decl := &ast.PackageDecl{At: at(n)}
	for _, ann := range c.many(parser.KindAnnotation) {
		decl.Annotations = append(decl.Annotations, b.annotation(ann))
	}
	decl.Name = b.qualifiedName(c.expect(parser.KindQualifiedName))
	c.done()
	return decl
}

func (b *builder) importDecl(n *parser.Node) *ast.ImportDecl {
	c := b.cursor(n)
	decl := &ast.ImportDecl{At: at(n)}
	decl.Static = c.optional(parser.KindModifier) != nil
	decl.Name = b.qualifiedName(c.expect(parser.KindQualifiedName))
	decl.OnDemand = c.optional(parser.KindOperator) != nil
	c.done()
	return decl
}

func (b *builder) typeDecl(n *parser.Node) ast.TypeDecl {
	switch n.Kind {
	case parser.KindClassDecl:
		return b.classDecl(n)
	case parser.KindInterfaceDecl:
		return b.interfaceDecl(n)
	case parser.KindAnnotationTypeDecl:
		return b.annotationTypeDecl(n)
	}
	b.unexpected(n, "type declaration")
	return nil
}

// modifiers splits a Modifiers node into annotations and keywords, both in
// source order.
func (b *builder) modifiers(n *parser.Node) ([]ast.Annotation, []*ast.Modifier) {
	if n.Kind != parser.KindModifiers {
		b.fail(n, "expected Modifiers")
	}
	var anns []ast.Annotation
	var mods []*ast.Modifier
	for _, child := range b.cursor(n).rest() {
		switch child.Kind {
		case parser.KindAnnotation:
			anns = append(anns, b.annotation(child))
		case parser.KindModifier:
			mods = append(mods, &ast.Modifier{At: at(child), Keyword: child.TokenLiteral()})
		default:
			b.unexpected(child, "modifiers")
		}
	}
	return anns, mods
}

// immutableByDefault adds an implicit final unless the variable is declared
// final or mutable.
func immutableByDefault(mods []*ast.Modifier) []*ast.Modifier {
	if ast.HasModifier(mods, "final") || ast.HasModifier(mods, "mutable") {
		return mods
	}
	return append(mods, &ast.Modifier{At: ast.At{Position: ast.NoPos}, Keyword: "final"})
}

func (b *builder) classDecl(n *parser.Node) *ast.ClassDecl {
	c := b.cursor(n)
	decl := &ast.ClassDecl{At: at(n)}
	decl.Annotations, decl.Modifiers = b.modifiers(c.expect(parser.KindModifiers))

	name := c.expect(parser.KindIdentifier)
	decl.Name, decl.NamePos = b.identifier(name), pos(name)

	if tp := c.optional(parser.KindTypeParameters); tp != nil {
		decl.TypeParams = b.typeParameters(tp)
	}
	if ext := c.optional(parser.KindExtendsClause); ext != nil {
		types := b.classTypeList(ext)
		if len(types) != 1 {
			b.fail(ext, "class extends %d types", len(types))
		}
		decl.Extends = types[0]
	}
	if of := c.optional(parser.KindOfClause); of != nil {
		decl.Of = b.classTypeList(of)
	}
	decl.Members = b.body(c.expect(parser.KindClassBody))
	c.done()
	return decl
}

func (b *builder) interfaceDecl(n *parser.Node) *ast.InterfaceDecl {
	c := b.cursor(n)
	decl := &ast.InterfaceDecl{At: at(n)}
	decl.Annotations, decl.Modifiers = b.modifiers(c.expect(parser.KindModifiers))

	name := c.expect(parser.KindIdentifier)
	decl.Name, decl.NamePos = b.identifier(name), pos(name)

	if tp := c.optional(parser.KindTypeParameters); tp != nil {
		decl.TypeParams = b.typeParameters(tp)
	}
	if ext := c.optional(parser.KindExtendsClause); ext != nil {
		decl.Extends = b.classTypeList(ext)
	}
	decl.Members = b.body(c.expect(parser.KindInterfaceBody))
	c.done()
	return decl
}

func (b *builder) annotationTypeDecl(n *parser.Node) *ast.AnnotationTypeDecl {
	c := b.cursor(n)
	decl := &ast.AnnotationTypeDecl{At: at(n)}
	decl.Annotations, decl.Modifiers = b.modifiers(c.expect(parser.KindModifiers))

	name := c.expect(parser.KindIdentifier)
	decl.Name, decl.NamePos = b.identifier(name), pos(name)

	decl.Members = b.body(c.expect(parser.KindAnnotationTypeBody))
	c.done()
	return decl
}

func (b *builder) classTypeList(n *parser.Node) []*ast.ClassType {
	var out []*ast.ClassType
	for _, child := range b.cursor(n).rest() {
		if child.Kind != parser.KindClassType {
			b.unexpected(child, n.Kind.String())
		}
		out = append(out, b.classType(child, nil))
	}
	return out
}

// body converts the members of a class, interface or annotation type body.
func (b *builder) body(n *parser.Node) []ast.BodyDecl {
	var members []ast.BodyDecl
	for _, child := range b.cursor(n).rest() {
		members = append(members, b.member(child))
	}
	return members
}

func (b *builder) member(n *parser.Node) ast.BodyDecl {
	switch n.Kind {
	case parser.KindClassDecl, parser.KindInterfaceDecl, parser.KindAnnotationTypeDecl:
		return b.typeDecl(n)
	case parser.KindFieldDecl:
		anns, mods, typ, vars := b.fieldParts(n)
		return &ast.FieldDecl{At: at(n), Annotations: anns, Modifiers: mods, Type: typ, Variables: vars}
	case parser.KindConstantDecl:
		anns, mods, typ, vars := b.fieldParts(n)
		return &ast.ConstantDecl{At: at(n), Annotations: anns, Modifiers: mods, Type: typ, Variables: vars}
	case parser.KindMethodDecl:
		m := b.methodParts(n)
		return &ast.MethodDecl{
			At: at(n), Annotations: m.annotations, Modifiers: m.modifiers, TypeParams: m.typeParams,
			Result: m.result, Name: m.name, Params: m.params, Dims: m.dims, Throws: m.throws, Body: m.body,
		}
	case parser.KindInterfaceMethodDecl:
		m := b.methodParts(n)
		return &ast.InterfaceMethodDecl{
			At: at(n), Annotations: m.annotations, Modifiers: m.modifiers, TypeParams: m.typeParams,
			Result: m.result, Name: m.name, Params: m.params, Dims: m.dims, Throws: m.throws, Body: m.body,
		}
	case parser.KindAnnotationMemberDecl:
		return b.annotationMemberDecl(n)
	case parser.KindConstructorDecl:
		return b.constructorDecl(n)
	case parser.KindInitializer:
		return b.initializer(n)
	}
	b.unexpected(n, "type body")
	return nil
}

func (b *builder) fieldParts(n *parser.Node) ([]ast.Annotation, []*ast.Modifier, ast.Type, []*ast.VariableDeclarator) {
	c := b.cursor(n)
	anns, mods := b.modifiers(c.expect(parser.KindModifiers))
	typ := b.typ(c.expect(parser.KindType))
	vars := b.variableDeclarators(c)
	return anns, mods, typ, vars
}

// variableDeclarators consumes the remaining children of c, which must all
// be declarators.
func (b *builder) variableDeclarators(c *cursor) []*ast.VariableDeclarator {
	var vars []*ast.VariableDeclarator
	for _, child := range c.rest() {
		if child.Kind != parser.KindVariableDeclarator {
			b.unexpected(child, "declaration")
		}
		vars = append(vars, b.variableDeclarator(child))
	}
	if len(vars) == 0 {
		b.fail(c.node, "declaration without variables")
	}
	return vars
}

func (b *builder) variableDeclarator(n *parser.Node) *ast.VariableDeclarator {
	c := b.cursor(n)
	v := &ast.VariableDeclarator{At: at(n)}
	v.Name = b.identifier(c.expect(parser.KindIdentifier))
	if dims := c.optional(parser.KindDims); dims != nil {
		v.Dims = b.dims(dims)
	}
	if init := c.peek(); init != nil {
		v.Init = b.variableInitializer(c.next())
	}
	c.done()
	return v
}

func (b *builder) variableInitializer(n *parser.Node) ast.Expr {
	if n.Kind == parser.KindArrayInitializer {
		return b.arrayInitializer(n)
	}
	return b.expression(n)
}

type methodParts struct {
	annotations []ast.Annotation
	modifiers   []*ast.Modifier
	typeParams  []*ast.TypeParameter
	result      ast.Type
	name        string
	params      []*ast.Parameter
	dims        []*ast.ArrayDim
	throws      []*ast.ExceptionType
	body        *ast.BlockStmt
}

func (b *builder) methodParts(n *parser.Node) methodParts {
	c := b.cursor(n)
	var m methodParts
	m.annotations, m.modifiers = b.modifiers(c.expect(parser.KindModifiers))
	if tp := c.optional(parser.KindTypeParameters); tp != nil {
		m.typeParams = b.typeParameters(tp)
	}
	m.result = b.resultType(c.expect(parser.KindType, parser.KindVoidType))
	m.name = b.identifier(c.expect(parser.KindIdentifier))
	m.params = b.formalParameters(c.expect(parser.KindFormalParameters))
	if dims := c.optional(parser.KindDims); dims != nil {
		m.dims = b.dims(dims)
	}
	if throws := c.optional(parser.KindThrowsClause); throws != nil {
		m.throws = b.exceptionTypes(throws)
	}
	if body := c.optional(parser.KindBlock); body != nil {
		m.body = b.block(body)
	}
	c.done()
	return m
}

func (b *builder) resultType(n *parser.Node) ast.Type {
	if n.Kind == parser.KindVoidType {
		return &ast.VoidType{At: at(n)}
	}
	return b.typ(n)
}

func (b *builder) exceptionTypes(n *parser.Node) []*ast.ExceptionType {
	var out []*ast.ExceptionType
	for _, t := range b.classTypeList(n) {
		out = append(out, &ast.ExceptionType{At: t.At, Type: t})
	}
	return out
}

func (b *builder) annotationMemberDecl(n *parser.Node) *ast.AnnotationMemberDecl {
	c := b.cursor(n)
	decl := &ast.AnnotationMemberDecl{At: at(n)}
	decl.Annotations, decl.Modifiers = b.modifiers(c.expect(parser.KindModifiers))
	decl.Type = b.typ(c.expect(parser.KindType))
	decl.Name = b.identifier(c.expect(parser.KindIdentifier))
	if dims := c.optional(parser.KindDims); dims != nil {
		decl.Dims = b.dims(dims)
	}
	if def := c.optional(parser.KindDefaultValue); def != nil {
		dc := b.cursor(def)
		decl.Default = b.elementValue(dc.next())
		dc.done()
	}
	c.done()
	return decl
}

func (b *builder) constructorDecl(n *parser.Node) *ast.ConstructorDecl {
	c := b.cursor(n)
	decl := &ast.ConstructorDecl{At: at(n)}
	decl.Annotations, decl.Modifiers = b.modifiers(c.expect(parser.KindModifiers))
	if tp := c.optional(parser.KindTypeParameters); tp != nil {
		decl.TypeParams = b.typeParameters(tp)
	}
	decl.Name = b.identifier(c.expect(parser.KindIdentifier))
	decl.Params = b.formalParameters(c.expect(parser.KindFormalParameters))
	if throws := c.optional(parser.KindThrowsClause); throws != nil {
		decl.Throws = b.exceptionTypes(throws)
	}

	body := c.expect(parser.KindConstructorBody)
	bc := b.cursor(body)
	if inv := bc.optional(parser.KindExplicitConstructorInvocation); inv != nil {
		decl.Invocation = b.explicitConstructorInvocation(inv)
	}
	decl.Body = &ast.BlockStmt{At: at(body), Stmts: b.statements(bc.rest())}
	c.done()
	return decl
}

func (b *builder) explicitConstructorInvocation(n *parser.Node) *ast.ExplicitConstructorInvocation {
	c := b.cursor(n)
	inv := &ast.ExplicitConstructorInvocation{At: at(n)}
	if scope := c.optional(parser.KindName, parser.KindPostfix); scope != nil {
		inv.Scope = b.expression(scope)
	}
	if targs := c.optional(parser.KindTypeArguments); targs != nil {
		inv.TypeArgs = b.typeArguments(targs)
	}
	inv.This = c.expect(parser.KindThis, parser.KindSuper).Kind == parser.KindThis
	if inv.This && inv.Scope != nil {
		b.fail(n, "qualified this(...) call")
	}
	inv.Args = b.arguments(c.expect(parser.KindArguments))
	c.done()
	return inv
}

func (b *builder) initializer(n *parser.Node) *ast.InitializerDecl {
	c := b.cursor(n)
	init := &ast.InitializerDecl{At: at(n)}
	if mod := c.optional(parser.KindModifier); mod != nil {
		if mod.TokenLiteral() != "static" {
			b.fail(mod, "initializer modifier %q", mod.TokenLiteral())
		}
		init.Static = true
	}
	init.Body = b.block(c.expect(parser.KindBlock))
	c.done()
	return init
}

func (b *builder) formalParameters(n *parser.Node) []*ast.Parameter {
	var params []*ast.Parameter
	for _, child := range b.cursor(n).rest() {
		if child.Kind != parser.KindFormalParameter {
			b.unexpected(child, "parameter list")
		}
		params = append(params, b.formalParameter(child))
	}
	return params
}

// formalParameter converts method, constructor, typed lambda and for-each
// parameters. Parameters are immutable unless declared mutable.
func (b *builder) formalParameter(n *parser.Node) *ast.Parameter {
	c := b.cursor(n)
	param := &ast.Parameter{At: at(n)}
	anns, mods := b.modifiers(c.expect(parser.KindModifiers))
	param.Annotations = anns
	param.Modifiers = immutableByDefault(mods)
	param.Type = b.typ(c.expect(parser.KindType))

	if va := c.optional(parser.KindVarargs); va != nil {
		param.Varargs = true
		for _, ann := range b.cursor(va).rest() {
			param.VarargAnnotations = append(param.VarargAnnotations, b.annotation(ann))
		}
	}

	param.Name = b.identifier(c.expect(parser.KindIdentifier))
	if dims := c.optional(parser.KindDims); dims != nil {
		param.Dims = b.dims(dims)
	}
	c.done()
	return param
}

// annotation picks the annotation form from the children: none is a marker,
// name = value pairs are a normal annotation, a single value is a single
// member annotation.
func (b *builder) annotation(n *parser.Node) ast.Annotation {
	if n.Kind != parser.KindAnnotation {
		b.fail(n, "expected Annotation")
	}
	c := b.cursor(n)
	name := b.qualifiedName(c.expect(parser.KindQualifiedName))

	rest := c.rest()
	switch {
	case len(rest) == 0:
		return &ast.MarkerAnnotation{At: at(n), Name: name}
	case rest[0].Kind == parser.KindElementValuePair:
		ann := &ast.NormalAnnotation{At: at(n), Name: name}
		for _, pair := range rest {
			if pair.Kind != parser.KindElementValuePair {
				b.unexpected(pair, "annotation")
			}
			pc := b.cursor(pair)
			ann.Pairs = append(ann.Pairs, &ast.MemberValuePair{
				At:    at(pair),
				Name:  b.identifier(pc.expect(parser.KindIdentifier)),
				Value: b.elementValue(pc.next()),
			})
			pc.done()
		}
		return ann
	case len(rest) == 1:
		return &ast.SingleMemberAnnotation{At: at(n), Name: name, Value: b.elementValue(rest[0])}
	}
	b.fail(n, "annotation with %d values", len(rest))
	return nil
}

func (b *builder) annotations(nodes []*parser.Node) []ast.Annotation {
	var out []ast.Annotation
	for _, n := range nodes {
		out = append(out, b.annotation(n))
	}
	return out
}

func (b *builder) elementValue(n *parser.Node) ast.Expr {
	switch n.Kind {
	case parser.KindAnnotation:
		return b.annotation(n)
	case parser.KindArrayInitializer:
		init := &ast.ArrayInitializerExpr{At: at(n)}
		for _, child := range b.cursor(n).rest() {
			init.Values = append(init.Values, b.elementValue(child))
		}
		return init
	}
	return b.expression(n)
}
