// Package check validates a Kite AST.
//
// Validation never modifies the tree. Every rule is a function from one
// node to the diagnostics local to that node; Validate folds the rules over
// the whole tree and concatenates their results. For rules that look for
// duplicates in a list, the first occurrence is accepted and every later
// one is reported at its own position.
package check

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dhamidi/kitejava/diag"
	"github.com/dhamidi/kitejava/kite/ast"
)

// Rule reports the problems local to one node.
type Rule func(n ast.Node) []diag.Diagnostic

// Rules returns the rules Validate applies for a source file named fileName.
func Rules(fileName string) []Rule {
	return []Rule{
		TypeNameMatchesFile(fileName),
		TopLevelModifiers,
		DuplicateModifiers,
		DuplicateTypeParameters,
		DuplicateInterfaces,
		DuplicateSuperInterfaces,
		DuplicateExceptions,
		DuplicateParameters,
		RedundantInterfaceAbstract,
	}
}

// Validate checks unit, which was read from fileName. The diagnostics are
// in document order.
func Validate(unit *ast.CompilationUnit, fileName string) []diag.Diagnostic {
	return Apply(unit, Rules(fileName)...)
}

// Apply folds rules over the tree rooted at root.
func Apply(root ast.Node, rules ...Rule) []diag.Diagnostic {
	folder := ast.ListFolder[diag.Diagnostic](func(n ast.Node) []diag.Diagnostic {
		var out []diag.Diagnostic
		for _, rule := range rules {
			out = append(out, rule(n)...)
		}
		return out
	})
	diags := ast.Fold[[]diag.Diagnostic](folder, root)
	slices.SortStableFunc(diags, func(a, b diag.Diagnostic) int {
		return cmp.Or(cmp.Compare(a.Pos.Line, b.Pos.Line), cmp.Compare(a.Pos.Column, b.Pos.Column))
	})
	return diags
}

// duplicates reports every item whose key was seen before in items.
func duplicates[T any](items []T, key func(T) string, pos func(T) ast.Position, format string) []diag.Diagnostic {
	var out []diag.Diagnostic
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		k := key(item)
		if seen[k] {
			out = append(out, diag.Errorf(pos(item), format, k))
			continue
		}
		seen[k] = true
	}
	return out
}

func nodePos[T ast.Node](n T) ast.Position { return n.Pos() }

// TypeNameMatchesFile requires the top-level type to be named after the
// file it is declared in.
func TypeNameMatchesFile(fileName string) Rule {
	base := filepath.Base(fileName)
	want := strings.TrimSuffix(base, filepath.Ext(base))
	return func(n ast.Node) []diag.Diagnostic {
		unit, ok := n.(*ast.CompilationUnit)
		if !ok || unit.Type == nil || fileName == "" {
			return nil
		}
		if name := unit.Type.DeclName(); name != want {
			return []diag.Diagnostic{
				diag.Errorf(unit.Type.DeclNamePos(), "type %s must be declared in a file named %s.kite, not %s", name, name, base),
			}
		}
		return nil
	}
}

var topLevelModifiers = map[string]bool{
	"public":   true,
	"abstract": true,
	"final":    true,
	"strictfp": true,
}

// TopLevelModifiers allows only public, abstract, final and strictfp on a
// top-level type. Annotations are always allowed.
func TopLevelModifiers(n ast.Node) []diag.Diagnostic {
	unit, ok := n.(*ast.CompilationUnit)
	if !ok || unit.Type == nil {
		return nil
	}
	var out []diag.Diagnostic
	for _, m := range unit.Type.DeclModifiers() {
		if !topLevelModifiers[m.Keyword] {
			out = append(out, diag.Errorf(m.Pos(), "modifier %s not allowed on a top-level type", m.Keyword))
		}
	}
	return out
}

// DuplicateModifiers reports a keyword repeated in one modifier list.
func DuplicateModifiers(n ast.Node) []diag.Diagnostic {
	mods := modifiers(n)
	return duplicates(mods, func(m *ast.Modifier) string { return m.Keyword }, nodePos, "duplicate modifier %s")
}

func modifiers(n ast.Node) []*ast.Modifier {
	switch n := n.(type) {
	case ast.TypeDecl:
		return n.DeclModifiers()
	case *ast.FieldDecl:
		return n.Modifiers
	case *ast.ConstantDecl:
		return n.Modifiers
	case *ast.MethodDecl:
		return n.Modifiers
	case *ast.InterfaceMethodDecl:
		return n.Modifiers
	case *ast.AnnotationMemberDecl:
		return n.Modifiers
	case *ast.ConstructorDecl:
		return n.Modifiers
	case *ast.Parameter:
		return n.Modifiers
	case *ast.LocalVarDeclStmt:
		return n.Modifiers
	case *ast.Resource:
		return n.Modifiers
	case *ast.CatchParameter:
		return n.Modifiers
	}
	return nil
}

// DuplicateTypeParameters reports a type parameter name declared twice by
// one class, interface, method or constructor.
func DuplicateTypeParameters(n ast.Node) []diag.Diagnostic {
	var params []*ast.TypeParameter
	switch n := n.(type) {
	case *ast.ClassDecl:
		params = n.TypeParams
	case *ast.InterfaceDecl:
		params = n.TypeParams
	case *ast.MethodDecl:
		params = n.TypeParams
	case *ast.InterfaceMethodDecl:
		params = n.TypeParams
	case *ast.ConstructorDecl:
		params = n.TypeParams
	}
	return duplicates(params, func(p *ast.TypeParameter) string { return p.Name }, nodePos, "duplicate type parameter %s")
}

func typeKey(t *ast.ClassType) string { return ast.TypeString(t) }

// DuplicateInterfaces reports an interface listed twice in the of clause
// of a class.
func DuplicateInterfaces(n ast.Node) []diag.Diagnostic {
	class, ok := n.(*ast.ClassDecl)
	if !ok {
		return nil
	}
	return duplicates(class.Of, typeKey, nodePos, "duplicate interface %s in of clause")
}

// DuplicateSuperInterfaces reports an interface listed twice in the
// extends clause of an interface.
func DuplicateSuperInterfaces(n ast.Node) []diag.Diagnostic {
	iface, ok := n.(*ast.InterfaceDecl)
	if !ok {
		return nil
	}
	return duplicates(iface.Extends, typeKey, nodePos, "duplicate interface %s in extends clause")
}

// DuplicateExceptions reports an exception type listed twice in a throws
// clause.
func DuplicateExceptions(n ast.Node) []diag.Diagnostic {
	var throws []*ast.ExceptionType
	switch n := n.(type) {
	case *ast.MethodDecl:
		throws = n.Throws
	case *ast.InterfaceMethodDecl:
		throws = n.Throws
	case *ast.ConstructorDecl:
		throws = n.Throws
	}
	return duplicates(throws, func(e *ast.ExceptionType) string { return ast.TypeString(e) }, nodePos, "duplicate exception type %s in throws clause")
}

// DuplicateParameters reports a parameter name declared twice in one
// parameter list.
func DuplicateParameters(n ast.Node) []diag.Diagnostic {
	var params []*ast.Parameter
	switch n := n.(type) {
	case *ast.MethodDecl:
		params = n.Params
	case *ast.InterfaceMethodDecl:
		params = n.Params
	case *ast.ConstructorDecl:
		params = n.Params
	case *ast.LambdaExpr:
		params = n.Params
	}
	return duplicates(params, func(p *ast.Parameter) string { return p.Name }, nodePos, "duplicate parameter %s")
}

// RedundantInterfaceAbstract warns about an explicit abstract on an
// interface, which is abstract anyway.
func RedundantInterfaceAbstract(n ast.Node) []diag.Diagnostic {
	iface, ok := n.(*ast.InterfaceDecl)
	if !ok {
		return nil
	}
	var out []diag.Diagnostic
	for _, m := range iface.Modifiers {
		if m.Keyword == "abstract" {
			out = append(out, diag.Warningf(m.Pos(), "redundant modifier abstract on interface %s", iface.Name))
		}
	}
	return out
}
