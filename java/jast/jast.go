// Package jast is a mutable Java syntax tree used as the output of the Kite
// emitter.
//
// Trees are assembled top-down: containers such as CompilationUnit,
// ClassBody and Block are created first and declarations or statements are
// added to them. Nothing here validates Java semantics; the printer in
// package format renders whatever it is given.
package jast

// Node is implemented by every tree element.
type Node interface {
	jastNode()
}

// TypeDecl is a class, interface or annotation type declaration.
type TypeDecl interface {
	Member
	TypeName() string
	typeDecl()
}

// Member is an element of a class body.
type Member interface {
	Node
	member()
}

// TypeContainer receives type declarations.
type TypeContainer interface {
	AddType(decl TypeDecl)
}

type CompilationUnit struct {
	Package *PackageDecl
	Imports []*Import
	Types   []TypeDecl
}

func NewCompilationUnit() *CompilationUnit {
	return &CompilationUnit{}
}

// SetPackage declares the package of the unit. An empty name leaves the
// unit in the unnamed package.
func (u *CompilationUnit) SetPackage(name string, annotations ...*Annotation) *PackageDecl {
	if name == "" {
		u.Package = nil
		return nil
	}
	u.Package = &PackageDecl{Annotations: annotations, Name: name}
	return u.Package
}

func (u *CompilationUnit) AddImport(name string, static, onDemand bool) *Import {
	imp := &Import{Name: name, Static: static, OnDemand: onDemand}
	u.Imports = append(u.Imports, imp)
	return imp
}

func (u *CompilationUnit) AddType(decl TypeDecl) {
	u.Types = append(u.Types, decl)
}

// PrimaryType returns the first type declared in the unit, or nil.
func (u *CompilationUnit) PrimaryType() TypeDecl {
	if len(u.Types) == 0 {
		return nil
	}
	return u.Types[0]
}

type PackageDecl struct {
	Annotations []*Annotation
	Name        string
}

type Import struct {
	Name     string
	Static   bool
	OnDemand bool
}

// Annotation is @Name, @Name(value) or @Name(a = x, ...). An annotation
// with neither Value nor Pairs is a marker annotation.
type Annotation struct {
	Name  string
	Value Expr
	Pairs []*MemberValue
}

type MemberValue struct {
	Name  string
	Value Expr
}

func (*CompilationUnit) jastNode() {}
func (*PackageDecl) jastNode()     {}
func (*Import) jastNode()          {}
func (*Annotation) jastNode()      {}
func (*MemberValue) jastNode()     {}
