package format

import (
	"bytes"
	"io"
	"strings"

	"github.com/dhamidi/kitejava/java/jast"
)

// JavaPrettyPrinter writes a jast tree as Java source text.
type JavaPrettyPrinter struct {
	w           io.Writer
	err         error
	indent      int
	indentStr   string
	atLineStart bool
	column      int // Current column position (0-indexed)
	maxColumn   int // Maximum line length (default 80)
}

func NewJavaPrettyPrinter(w io.Writer) *JavaPrettyPrinter {
	return &JavaPrettyPrinter{
		w:           w,
		indentStr:   "    ",
		atLineStart: true,
		column:      0,
		maxColumn:   80,
	}
}

// Print writes unit and returns the first write error.
func (p *JavaPrettyPrinter) Print(unit *jast.CompilationUnit) error {
	p.printCompilationUnit(unit)
	return p.err
}

func (p *JavaPrettyPrinter) printCompilationUnit(unit *jast.CompilationUnit) {
	section := false
	if unit.Package != nil {
		p.printPackageDecl(unit.Package)
		section = true
	}
	if len(unit.Imports) > 0 {
		if section {
			p.newline()
		}
		for _, imp := range unit.Imports {
			p.printImport(imp)
		}
		section = true
	}
	for _, t := range unit.Types {
		if section {
			p.newline()
		}
		p.printTypeDecl(t)
		section = true
	}
}

func (p *JavaPrettyPrinter) writeIndent() {
	if !p.atLineStart {
		return
	}
	for i := 0; i < p.indent; i++ {
		p.write(p.indentStr)
	}
	p.atLineStart = false
}

func (p *JavaPrettyPrinter) write(s string) {
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
	if idx := strings.LastIndex(s, "\n"); idx >= 0 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *JavaPrettyPrinter) newline() {
	p.write("\n")
	p.atLineStart = true
	p.column = 0
}

func (p *JavaPrettyPrinter) wouldExceed(additionalChars int) bool {
	return p.column+additionalChars > p.maxColumn
}

func (p *JavaPrettyPrinter) measurer(buf *bytes.Buffer) *JavaPrettyPrinter {
	return &JavaPrettyPrinter{
		w:           buf,
		indentStr:   p.indentStr,
		atLineStart: false,
		column:      0,
		maxColumn:   1000000, // Very high to prevent wrapping during measurement
	}
}

func (p *JavaPrettyPrinter) measureExpr(e jast.Expr) int {
	var buf bytes.Buffer
	p.measurer(&buf).printExpr(e)
	return buf.Len()
}

func (p *JavaPrettyPrinter) measureParameters(params []*jast.Parameter) int {
	var buf bytes.Buffer
	mp := p.measurer(&buf)
	mp.write("(")
	for i, param := range params {
		if i > 0 {
			mp.write(", ")
		}
		mp.printParameter(param)
	}
	mp.write(")")
	return buf.Len()
}

// PrettyPrintJava renders unit as Java source.
func PrettyPrintJava(unit *jast.CompilationUnit) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewJavaPrettyPrinter(&buf).Print(unit); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
