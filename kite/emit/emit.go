// Package emit converts a validated Kite AST into a Java syntax tree.
//
// Each node kind has one conversion. Declarations attach themselves to a
// jast container, statements attach to a block or convert to a single
// statement, expressions and types convert to their jast counterpart. The
// conversions read nothing but the node they are given and the results of
// converting its children.
//
// Kite-only syntax is lowered on the way: the of clause becomes implements,
// implicitly final variables get an explicit final and mutable is dropped.
package emit

import (
	"github.com/dhamidi/kitejava/java/jast"
	"github.com/dhamidi/kitejava/kite/ast"
)

// Unit converts a compilation unit.
func Unit(u *ast.CompilationUnit) *jast.CompilationUnit {
	out := jast.NewCompilationUnit()
	if u.Package != nil && !u.Package.Unnamed() {
		out.SetPackage(u.Package.Name.String(), annotations(u.Package.Annotations)...)
	}
	for _, imp := range u.Imports {
		out.AddImport(imp.Name.String(), imp.Static, imp.OnDemand)
	}
	if u.Type != nil {
		AttachType(out, u.Type)
	}
	return out
}

// AttachType converts d and adds it to c.
func AttachType(c jast.TypeContainer, d ast.TypeDecl) {
	switch d := d.(type) {
	case *ast.ClassDecl:
		class := jast.NewClass(d.Name)
		class.Annotations = annotations(d.Annotations)
		class.Modifiers = modifiers(d.Modifiers)
		class.TypeParams = typeParams(d.TypeParams)
		if d.Extends != nil {
			class.Extends = classType(d.Extends)
		}
		for _, t := range d.Of {
			class.AddImplements(classType(t))
		}
		attachMembers(class.Body, d.Members)
		c.AddType(class)

	case *ast.InterfaceDecl:
		iface := jast.NewInterface(d.Name)
		iface.Annotations = annotations(d.Annotations)
		iface.Modifiers = modifiers(d.Modifiers)
		iface.TypeParams = typeParams(d.TypeParams)
		for _, t := range d.Extends {
			iface.AddExtends(classType(t))
		}
		attachMembers(iface.Body, d.Members)
		c.AddType(iface)

	case *ast.AnnotationTypeDecl:
		decl := jast.NewAnnotationDecl(d.Name)
		decl.Annotations = annotations(d.Annotations)
		decl.Modifiers = modifiers(d.Modifiers)
		attachMembers(decl.Body, d.Members)
		c.AddType(decl)

	default:
		unhandled(d)
	}
}

func attachMembers(body *jast.ClassBody, members []ast.BodyDecl) {
	for _, m := range members {
		AttachMember(body, m)
	}
}

// AttachMember converts d and adds it to body. A field whose declarators
// have different array dimensions becomes one field declaration per
// declarator.
func AttachMember(body *jast.ClassBody, d ast.BodyDecl) {
	switch d := d.(type) {
	case ast.TypeDecl:
		AttachType(body, d)

	case *ast.FieldDecl:
		for _, g := range declarators(d.Type, d.Variables) {
			body.AddMember(&jast.FieldDecl{
				Annotations: annotations(d.Annotations),
				Modifiers:   modifiers(d.Modifiers),
				Type:        g.typ,
				Variables:   g.vars,
			})
		}

	case *ast.ConstantDecl:
		for _, g := range declarators(d.Type, d.Variables) {
			body.AddMember(&jast.FieldDecl{
				Annotations: annotations(d.Annotations),
				Modifiers:   modifiers(d.Modifiers),
				Type:        g.typ,
				Variables:   g.vars,
			})
		}

	case *ast.MethodDecl:
		body.AddMember(method(d.Annotations, d.Modifiers, d.TypeParams, d.Result, d.Name, d.Params, d.Dims, d.Throws, d.Body))

	case *ast.InterfaceMethodDecl:
		body.AddMember(method(d.Annotations, d.Modifiers, d.TypeParams, d.Result, d.Name, d.Params, d.Dims, d.Throws, d.Body))

	case *ast.AnnotationMemberDecl:
		m := &jast.AnnotationMember{
			Annotations: annotations(d.Annotations),
			Modifiers:   modifiers(d.Modifiers),
			Type:        withDims(Type(d.Type), d.Dims),
			Name:        d.Name,
		}
		if d.Default != nil {
			m.Default = Expr(d.Default)
		}
		body.AddMember(m)

	case *ast.ConstructorDecl:
		ctor := &jast.ConstructorDecl{
			Annotations: annotations(d.Annotations),
			Modifiers:   modifiers(d.Modifiers),
			TypeParams:  typeParams(d.TypeParams),
			Name:        d.Name,
			Throws:      exceptionTypes(d.Throws),
			Body:        &jast.Block{},
		}
		for _, p := range d.Params {
			ctor.AddParam(parameter(p))
		}
		if d.Invocation != nil {
			ctor.Body.Add(Stmt(d.Invocation))
		}
		attachStmts(ctor.Body, d.Body)
		body.AddMember(ctor)

	case *ast.InitializerDecl:
		body.AddMember(&jast.Initializer{Static: d.Static, Body: block(d.Body)})

	default:
		unhandled(d)
	}
}

func method(anns []ast.Annotation, mods []*ast.Modifier, tps []*ast.TypeParameter, result ast.Type,
	name string, params []*ast.Parameter, dims []*ast.ArrayDim, throws []*ast.ExceptionType, body *ast.BlockStmt,
) *jast.MethodDecl {
	m := &jast.MethodDecl{
		Annotations: annotations(anns),
		Modifiers:   modifiers(mods),
		TypeParams:  typeParams(tps),
		Result:      withDims(Type(result), dims),
		Name:        name,
		Throws:      exceptionTypes(throws),
	}
	for _, p := range params {
		m.AddParam(parameter(p))
	}
	if body != nil {
		m.Body = block(body)
	}
	return m
}

// declaratorGroup is a run of declarators sharing one Java type.
type declaratorGroup struct {
	typ  jast.Type
	vars []*jast.VariableDeclarator
}

// declarators merges the dimensions of each declarator into the declared
// type. Declarators without own dimensions share one group; every
// declarator with dimensions gets a group of its own.
func declarators(base ast.Type, vars []*ast.VariableDeclarator) []declaratorGroup {
	var groups []declaratorGroup
	shared := -1
	for _, v := range vars {
		jv := &jast.VariableDeclarator{Name: v.Name}
		if v.Init != nil {
			jv.Init = Expr(v.Init)
		}
		if len(v.Dims) > 0 {
			groups = append(groups, declaratorGroup{typ: withDims(Type(base), v.Dims), vars: []*jast.VariableDeclarator{jv}})
			continue
		}
		if shared < 0 || shared != len(groups)-1 {
			groups = append(groups, declaratorGroup{typ: Type(base)})
			shared = len(groups) - 1
		}
		groups[shared].vars = append(groups[shared].vars, jv)
	}
	return groups
}

// parameter converts method, constructor, lambda, for-each and catch style
// parameters. Dimensions after the name are merged into the type.
func parameter(p *ast.Parameter) *jast.Parameter {
	out := &jast.Parameter{
		Annotations:       annotations(p.Annotations),
		Modifiers:         modifiers(p.Modifiers),
		Varargs:           p.Varargs,
		VarargAnnotations: annotations(p.VarargAnnotations),
		Name:              p.Name,
	}
	if p.Type != nil {
		out.Type = withDims(Type(p.Type), p.Dims)
	}
	return out
}

// modifiers returns the Java keywords of mods. mutable has no Java
// counterpart and is dropped; implicit modifiers are kept.
func modifiers(mods []*ast.Modifier) []string {
	var out []string
	for _, m := range mods {
		if m.Keyword == "mutable" {
			continue
		}
		out = append(out, m.Keyword)
	}
	return out
}

func annotations(anns []ast.Annotation) []*jast.Annotation {
	var out []*jast.Annotation
	for _, a := range anns {
		out = append(out, annotation(a))
	}
	return out
}

func annotation(a ast.Annotation) *jast.Annotation {
	switch a := a.(type) {
	case *ast.MarkerAnnotation:
		return &jast.Annotation{Name: a.Name.String()}
	case *ast.SingleMemberAnnotation:
		return &jast.Annotation{Name: a.Name.String(), Value: Expr(a.Value)}
	case *ast.NormalAnnotation:
		out := &jast.Annotation{Name: a.Name.String()}
		for _, p := range a.Pairs {
			out.Pairs = append(out.Pairs, &jast.MemberValue{Name: p.Name, Value: Expr(p.Value)})
		}
		return out
	}
	unhandled(a)
	return nil
}

// UnhandledNodeError is the panic value for a node kind the emitter does
// not know. It means the AST and the emitter are out of step.
type UnhandledNodeError struct {
	Node ast.Node
}

func (e *UnhandledNodeError) Error() string {
	return "emit: unhandled " + e.Node.Kind().String() + " at " + e.Node.Pos().String()
}

func unhandled(n ast.Node) {
	panic(&UnhandledNodeError{Node: n})
}
