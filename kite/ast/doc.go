// Package ast defines the abstract syntax tree of a Kite compilation unit.
//
// The tree is built once by package builder and never modified afterwards.
// Every node is a pointer to one of the concrete structs in this package;
// the set is closed, so consumers switch over the concrete types and treat
// an unexpected type as a programming error.
//
// Node families are marked by the interfaces TypeDecl, BodyDecl, Stmt, Expr,
// Annotation and Type. Children returns the direct sub-nodes of a node in
// field order, skipping absent optional fields, and drives the generic
// traversals Fold, Inspect and Parents.
//
// Positions are 1-based lines and 0-based columns. Nodes synthesized during
// building, such as the implicit final modifier of an immutable parameter,
// are at NoPos.
package ast
