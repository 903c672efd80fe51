// Package parser turns Kite source text into a concrete syntax tree.
//
// The lexer and the recursive-descent parser are hand written. The tree is
// grammar shaped: one Node per production, terminals carry their Token, and
// an optional production that is absent from the source is simply not among
// a node's Children. Columns are 0-based byte offsets, lines are 1-based.
//
// # Error handling
//
// Parsing never stops at the first problem. A missing token is recorded and
// parsing continues as if it had been present; an unparseable region becomes
// a KindError node and the parser resynchronizes on a nearby delimiter.
// Every error is available from Parser.Errors in source order, so a caller
// can report all syntax errors of a file at once and refuse to go further.
//
// # Tree shape
//
// Binary operators are layered by precedence: every operator occurrence is
// a Binary{left, Operator, right} node whose right operand was parsed one
// precedence level down. Postfix expressions are flat: a primary followed by
// its suffixes in source order,
//
//	a.b().c[0]::d
//
//	Postfix
//	  Name a
//	  FieldSuffix    Identifier b
//	  CallSuffix     Arguments
//	  FieldSuffix    Identifier c
//	  IndexSuffix    Literal 0
//	  MethodRefSuffix Identifier d
//
// and it is up to the consumer to fold the suffixes onto the primary.
//
// # Kite specifics
//
// The class header uses "of" where Java uses "implements". "of" is only a
// keyword in that position; elsewhere, as in List.of(1), it is an ordinary
// identifier. "mutable" is a modifier keyword.
package parser
