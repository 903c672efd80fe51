package format

import (
	"github.com/dhamidi/kitejava/java/jast"
)

func (p *JavaPrettyPrinter) printPackageDecl(pkg *jast.PackageDecl) {
	for _, ann := range pkg.Annotations {
		p.writeIndent()
		p.printAnnotation(ann)
		p.newline()
	}
	p.writeIndent()
	p.write("package " + pkg.Name + ";")
	p.newline()
}

func (p *JavaPrettyPrinter) printImport(imp *jast.Import) {
	p.writeIndent()
	p.write("import ")
	if imp.Static {
		p.write("static ")
	}
	p.write(imp.Name)
	if imp.OnDemand {
		p.write(".*")
	}
	p.write(";")
	p.newline()
}

func (p *JavaPrettyPrinter) printTypeDecl(decl jast.TypeDecl) {
	switch d := decl.(type) {
	case *jast.ClassDecl:
		p.printClassDecl(d)
	case *jast.InterfaceDecl:
		p.printInterfaceDecl(d)
	case *jast.AnnotationDecl:
		p.printAnnotationDecl(d)
	}
}

func (p *JavaPrettyPrinter) printClassDecl(d *jast.ClassDecl) {
	p.printDeclHeader(d.Annotations, d.Modifiers)
	p.write("class " + d.Name)
	p.printTypeParameters(d.TypeParams)
	if d.Extends != nil {
		p.write(" extends ")
		p.printType(d.Extends)
	}
	p.printTypeList(" implements ", d.Implements)
	p.write(" ")
	p.printClassBody(d.Body)
	p.newline()
}

func (p *JavaPrettyPrinter) printInterfaceDecl(d *jast.InterfaceDecl) {
	p.printDeclHeader(d.Annotations, d.Modifiers)
	p.write("interface " + d.Name)
	p.printTypeParameters(d.TypeParams)
	p.printTypeList(" extends ", d.Extends)
	p.write(" ")
	p.printClassBody(d.Body)
	p.newline()
}

func (p *JavaPrettyPrinter) printAnnotationDecl(d *jast.AnnotationDecl) {
	p.printDeclHeader(d.Annotations, d.Modifiers)
	p.write("@interface " + d.Name + " ")
	p.printClassBody(d.Body)
	p.newline()
}

func (p *JavaPrettyPrinter) printTypeList(keyword string, types []*jast.ClassType) {
	if len(types) == 0 {
		return
	}
	p.write(keyword)
	for i, t := range types {
		if i > 0 {
			p.write(", ")
		}
		p.printType(t)
	}
}

// printDeclHeader puts each annotation of a declaration on its own line
// followed by the modifiers.
func (p *JavaPrettyPrinter) printDeclHeader(anns []*jast.Annotation, mods []string) {
	for _, ann := range anns {
		p.writeIndent()
		p.printAnnotation(ann)
		p.newline()
	}
	p.writeIndent()
	p.printModifiers(mods)
}

func (p *JavaPrettyPrinter) printModifiers(mods []string) {
	for _, m := range mods {
		p.write(m + " ")
	}
}

// printModifiersInline is used where annotations share the line with the
// declaration, as for parameters and local variables.
func (p *JavaPrettyPrinter) printModifiersInline(anns []*jast.Annotation, mods []string) {
	for _, ann := range anns {
		p.printAnnotation(ann)
		p.write(" ")
	}
	p.printModifiers(mods)
}

func (p *JavaPrettyPrinter) printAnnotation(a *jast.Annotation) {
	p.write("@" + a.Name)
	switch {
	case a.Value != nil:
		p.write("(")
		p.printExpr(a.Value)
		p.write(")")
	case len(a.Pairs) > 0:
		p.write("(")
		for i, pair := range a.Pairs {
			if i > 0 {
				p.write(", ")
			}
			p.write(pair.Name + " = ")
			p.printExpr(pair.Value)
		}
		p.write(")")
	}
}

func (p *JavaPrettyPrinter) printTypeAnnotations(anns []*jast.Annotation) {
	for _, ann := range anns {
		p.printAnnotation(ann)
		p.write(" ")
	}
}

func (p *JavaPrettyPrinter) printTypeParameters(tps []*jast.TypeParameter) {
	if len(tps) == 0 {
		return
	}
	p.write("<")
	for i, tp := range tps {
		if i > 0 {
			p.write(", ")
		}
		p.printTypeParameter(tp)
	}
	p.write(">")
}

func (p *JavaPrettyPrinter) printTypeParameter(tp *jast.TypeParameter) {
	p.printTypeAnnotations(tp.Annotations)
	p.write(tp.Name)
	for i, b := range tp.Bounds {
		if i == 0 {
			p.write(" extends ")
		} else {
			p.write(" & ")
		}
		p.printType(b)
	}
}

func (p *JavaPrettyPrinter) printType(t jast.Type) {
	switch t := t.(type) {
	case *jast.PrimitiveType:
		p.printTypeAnnotations(t.Annotations)
		p.write(t.Name)
	case *jast.ClassType:
		p.printClassType(t)
	case *jast.ArrayType:
		p.printArrayType(t)
	case *jast.WildcardType:
		p.printWildcard(t)
	case *jast.VoidType:
		p.write("void")
	case *jast.IntersectionType:
		for i, part := range t.Types {
			if i > 0 {
				p.write(" & ")
			}
			p.printType(part)
		}
	}
}

func (p *JavaPrettyPrinter) printClassType(t *jast.ClassType) {
	if t.Scope != nil {
		p.printClassType(t.Scope)
		p.write(".")
	}
	p.printTypeAnnotations(t.Annotations)
	p.write(t.Name)
	switch {
	case t.Diamond:
		p.write("<>")
	case len(t.TypeArgs) > 0:
		p.printTypeArguments(t.TypeArgs)
	}
}

func (p *JavaPrettyPrinter) printTypeArguments(args []jast.Type) {
	p.write("<")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.printType(arg)
	}
	p.write(">")
}

func (p *JavaPrettyPrinter) printWildcard(t *jast.WildcardType) {
	p.printTypeAnnotations(t.Annotations)
	p.write("?")
	if t.Extends != nil {
		p.write(" extends ")
		p.printType(t.Extends)
	}
	if t.Super != nil {
		p.write(" super ")
		p.printType(t.Super)
	}
}

// printArrayType writes the element type followed by the dimensions from
// the outermost array inward.
func (p *JavaPrettyPrinter) printArrayType(t *jast.ArrayType) {
	var dims [][]*jast.Annotation
	var elem jast.Type = t
	for {
		arr, ok := elem.(*jast.ArrayType)
		if !ok {
			break
		}
		dims = append(dims, arr.Annotations)
		elem = arr.Component
	}
	p.printType(elem)
	for _, anns := range dims {
		p.printDim(anns)
	}
}

func (p *JavaPrettyPrinter) printDim(anns []*jast.Annotation) {
	if len(anns) > 0 {
		p.write(" ")
		p.printTypeAnnotations(anns)
	}
	p.write("[]")
}

func (p *JavaPrettyPrinter) printClassBody(body *jast.ClassBody) {
	p.write("{")
	p.newline()
	p.indent++
	var prev jast.Member
	for _, m := range body.Members {
		if prev != nil && !(isField(prev) && isField(m)) {
			p.newline()
		}
		p.printClassBodyMember(m)
		prev = m
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func isField(m jast.Member) bool {
	_, ok := m.(*jast.FieldDecl)
	return ok
}

func (p *JavaPrettyPrinter) printClassBodyMember(m jast.Member) {
	switch m := m.(type) {
	case jast.TypeDecl:
		p.printTypeDecl(m)
	case *jast.FieldDecl:
		p.printFieldDecl(m)
	case *jast.MethodDecl:
		p.printMethodDecl(m)
	case *jast.ConstructorDecl:
		p.printConstructorDecl(m)
	case *jast.Initializer:
		p.writeIndent()
		if m.Static {
			p.write("static ")
		}
		p.printBlock(m.Body)
		p.newline()
	case *jast.AnnotationMember:
		p.printDeclHeader(m.Annotations, m.Modifiers)
		p.printType(m.Type)
		p.write(" " + m.Name + "()")
		if m.Default != nil {
			p.write(" default ")
			p.printExpr(m.Default)
		}
		p.write(";")
		p.newline()
	}
}

func (p *JavaPrettyPrinter) printFieldDecl(d *jast.FieldDecl) {
	p.printDeclHeader(d.Annotations, d.Modifiers)
	p.printType(d.Type)
	p.write(" ")
	p.printDeclarators(d.Variables)
	p.write(";")
	p.newline()
}

func (p *JavaPrettyPrinter) printDeclarators(vars []*jast.VariableDeclarator) {
	for i, v := range vars {
		if i > 0 {
			p.write(", ")
		}
		p.write(v.Name)
		if v.Init != nil {
			p.write(" = ")
			p.printExpr(v.Init)
		}
	}
}

func (p *JavaPrettyPrinter) printMethodDecl(d *jast.MethodDecl) {
	p.printDeclHeader(d.Annotations, d.Modifiers)
	if len(d.TypeParams) > 0 {
		p.printTypeParameters(d.TypeParams)
		p.write(" ")
	}
	p.printType(d.Result)
	p.write(" " + d.Name)
	p.printParameters(d.Params)
	p.printThrowsList(d.Throws)
	if d.Body == nil {
		p.write(";")
	} else {
		p.write(" ")
		p.printBlock(d.Body)
	}
	p.newline()
}

func (p *JavaPrettyPrinter) printConstructorDecl(d *jast.ConstructorDecl) {
	p.printDeclHeader(d.Annotations, d.Modifiers)
	if len(d.TypeParams) > 0 {
		p.printTypeParameters(d.TypeParams)
		p.write(" ")
	}
	p.write(d.Name)
	p.printParameters(d.Params)
	p.printThrowsList(d.Throws)
	p.write(" ")
	p.printBlock(d.Body)
	p.newline()
}

// printParameters wraps the parameter list one per line when it does not
// fit in the remaining width.
func (p *JavaPrettyPrinter) printParameters(params []*jast.Parameter) {
	if len(params) < 2 || !p.wouldExceed(p.measureParameters(params)) {
		p.write("(")
		for i, param := range params {
			if i > 0 {
				p.write(", ")
			}
			p.printParameter(param)
		}
		p.write(")")
		return
	}

	p.write("(")
	p.newline()
	p.indent += 2
	for i, param := range params {
		p.writeIndent()
		p.printParameter(param)
		if i < len(params)-1 {
			p.write(",")
		}
		p.newline()
	}
	p.indent -= 2
	p.writeIndent()
	p.write(")")
}

func (p *JavaPrettyPrinter) printParameter(param *jast.Parameter) {
	p.printModifiersInline(param.Annotations, param.Modifiers)
	if param.Type != nil {
		p.printType(param.Type)
		if param.Varargs {
			if len(param.VarargAnnotations) > 0 {
				p.write(" ")
				p.printTypeAnnotations(param.VarargAnnotations)
			}
			p.write("...")
		}
		p.write(" ")
	}
	p.write(param.Name)
}

func (p *JavaPrettyPrinter) printThrowsList(throws []*jast.ClassType) {
	p.printTypeList(" throws ", throws)
}
