// Package diag holds the diagnostics reported while compiling Kite sources
// and renders them for terminals.
package diag

import (
	"fmt"
	"strings"

	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/parser"
)

type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Diagnostic is a positioned, severity-tagged message. Pos uses the
// 1-based line and 0-based column of package ast.
type Diagnostic struct {
	Severity Severity
	Message  string
	Pos      ast.Position
}

func Errorf(pos ast.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Error, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func Warningf(pos ast.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// String formats d as line:column: severity: message with a 1-based column.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", displayPos(d.Pos), d.Severity, d.Message)
}

// Format prefixes d with file.
func (d Diagnostic) Format(file string) string {
	if file == "" {
		return d.String()
	}
	return file + ":" + d.String()
}

func displayPos(p ast.Position) string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column+1)
}

// HasErrors reports whether any diagnostic has severity Error.
func HasErrors(diags []Diagnostic) bool {
	return Count(diags, Error) > 0
}

// Count returns the number of diagnostics with severity s.
func Count(diags []Diagnostic, s Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == s {
			n++
		}
	}
	return n
}

// PromoteWarnings returns diags with every warning turned into an error.
func PromoteWarnings(diags []Diagnostic) []Diagnostic {
	out := make([]Diagnostic, len(diags))
	for i, d := range diags {
		d.Severity = Error
		out[i] = d
	}
	return out
}

// FromSyntaxErrors converts the errors collected by the parser.
func FromSyntaxErrors(errs []*parser.Error) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, err := range errs {
		out = append(out, Diagnostic{
			Severity: Error,
			Message:  err.Message,
			Pos:      ast.Position{Line: err.Pos.Line, Column: err.Pos.Column},
		})
	}
	return out
}

// TranspilationFailure is the single error reported for a source file that
// could not be compiled. It carries every diagnostic collected for the file.
type TranspilationFailure struct {
	SourceFile  string
	Diagnostics []Diagnostic
}

func (f *TranspilationFailure) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s", f.SourceFile, summary(f.Diagnostics))
	for _, d := range f.Diagnostics {
		sb.WriteString("\n")
		sb.WriteString(d.Format(f.SourceFile))
	}
	return sb.String()
}

func summary(diags []Diagnostic) string {
	errors, warnings := Count(diags, Error), Count(diags, Warning)
	var parts []string
	if errors > 0 {
		parts = append(parts, pluralize(errors, "error"))
	}
	if warnings > 0 {
		parts = append(parts, pluralize(warnings, "warning"))
	}
	if len(parts) == 0 {
		return "failed"
	}
	return strings.Join(parts, " and ")
}

func pluralize(n int, what string) string {
	if n == 1 {
		return "1 " + what
	}
	return fmt.Sprintf("%d %ss", n, what)
}
