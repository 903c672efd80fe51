package format

import (
	"bytes"
	"io"

	"github.com/dhamidi/kitejava/java/jast"
)

// JavaEncoder writes compilation units as Java source.
type JavaEncoder struct {
	w    io.Writer
	unit *jast.CompilationUnit
}

var _ Encoder = (*JavaEncoder)(nil)

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(unit *jast.CompilationUnit) error {
	e.unit = unit
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	return PrettyPrintJava(e.unit)
}

// PrintJava writes unit to w as Java source.
func PrintJava(w io.Writer, unit *jast.CompilationUnit) error {
	return NewJavaEncoder(w).Encode(unit)
}

// TypeString renders a single Java type.
func TypeString(t jast.Type) string {
	var buf bytes.Buffer
	p := NewJavaPrettyPrinter(&buf)
	p.atLineStart = false
	p.printType(t)
	return buf.String()
}

// ExprString renders a single Java expression on one line.
func ExprString(e jast.Expr) string {
	var buf bytes.Buffer
	NewJavaPrettyPrinter(&buf).measurer(&buf).printExpr(e)
	return buf.String()
}
