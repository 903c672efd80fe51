package diag

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"
)

// TabstopWidth is the width tabs are expanded to in source excerpts.
const TabstopWidth = 4

// Renderer writes diagnostics in the form
//
//	Counter.kite:3:8: error: duplicate modifier "public"
//	   3 | public public class Counter {
//	     |        ^
//
// Severities and the caret are coloured unless colour is disabled.
type Renderer struct {
	w io.Writer

	errorColor   *color.Color
	warningColor *color.Color
	accentColor  *color.Color
}

// NewRenderer returns a renderer that colours its output when the process
// writes to a terminal.
func NewRenderer(w io.Writer) *Renderer {
	r := &Renderer{
		w:            w,
		errorColor:   color.New(color.FgRed, color.Bold),
		warningColor: color.New(color.FgYellow, color.Bold),
		accentColor:  color.New(color.FgBlue),
	}
	r.SetColor(!color.NoColor)
	return r
}

func (r *Renderer) SetColor(enabled bool) {
	for _, c := range []*color.Color{r.errorColor, r.warningColor, r.accentColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Render writes every diagnostic of one file. source may be nil, in which
// case no excerpts are shown.
func (r *Renderer) Render(file string, source []byte, diags []Diagnostic) error {
	lines := splitLines(source)
	var out bytes.Buffer
	for _, d := range diags {
		r.renderOne(&out, file, lines, d)
	}
	_, err := r.w.Write(out.Bytes())
	return err
}

// Summary writes a one-line count of errors and warnings, or nothing when
// diags is empty.
func (r *Renderer) Summary(diags []Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	c := r.warningColor
	if HasErrors(diags) {
		c = r.errorColor
	}
	_, err := fmt.Fprintln(r.w, c.Sprint("encountered ", summary(diags)))
	return err
}

func (r *Renderer) severityColor(s Severity) *color.Color {
	if s == Warning {
		return r.warningColor
	}
	return r.errorColor
}

func (r *Renderer) renderOne(out *bytes.Buffer, file string, lines []string, d Diagnostic) {
	prefix := displayPos(d.Pos)
	if file != "" {
		prefix = file + ":" + prefix
	}
	sc := r.severityColor(d.Severity)
	fmt.Fprintf(out, "%s: %s %s\n", prefix, sc.Sprint(d.Severity.String()+":"), d.Message)

	if !d.Pos.IsValid() || d.Pos.Line > len(lines) {
		return
	}
	line := lines[d.Pos.Line-1]
	gutter := len(fmt.Sprint(d.Pos.Line))
	fmt.Fprintf(out, "%s %s\n", r.accentColor.Sprintf(" %*d |", gutter, d.Pos.Line), expandTabs(line))
	caret := strings.Repeat(" ", columnWidth(line, d.Pos.Column))
	fmt.Fprintf(out, "%s %s%s\n", r.accentColor.Sprintf(" %*s |", gutter, ""), caret, sc.Sprint("^"))
}

func splitLines(source []byte) []string {
	if len(source) == 0 {
		return nil
	}
	text := strings.ReplaceAll(string(source), "\r\n", "\n")
	return strings.Split(text, "\n")
}

// columnWidth returns the display width of line up to the byte offset col.
func columnWidth(line string, col int) int {
	if col > len(line) {
		col = len(line)
	}
	if col < 0 {
		col = 0
	}
	return uniseg.StringWidth(expandTabs(line[:col]))
}

func expandTabs(line string) string {
	var sb strings.Builder
	column := 0
	for {
		next := strings.IndexByte(line, '\t')
		if next == -1 {
			sb.WriteString(line)
			return sb.String()
		}
		column += uniseg.StringWidth(line[:next])
		sb.WriteString(line[:next])
		tab := TabstopWidth - (column % TabstopWidth)
		column += tab
		sb.WriteString(strings.Repeat(" ", tab))
		line = line[next+1:]
	}
}
