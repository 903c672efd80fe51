// Package format renders trees as text: the Java syntax tree as source
// code, and the Kite concrete and abstract syntax trees as JSON or an
// indented outline for debugging.
package format

import (
	"encoding"

	"github.com/dhamidi/kitejava/java/jast"
)

// Encoder writes a Java compilation unit in one textual form.
type Encoder interface {
	encoding.TextMarshaler
	Encode(unit *jast.CompilationUnit) error
}
