// Package compile runs Kite sources through the whole pipeline: parse,
// build, validate, emit and print. Output is written fail-closed: a file
// with any error produces no Java file at all.
package compile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/kitejava/diag"
	"github.com/dhamidi/kitejava/format"
	"github.com/dhamidi/kitejava/java/jast"
	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/builder"
	"github.com/dhamidi/kitejava/kite/check"
	"github.com/dhamidi/kitejava/kite/emit"
	"github.com/dhamidi/kitejava/kite/parser"
	"github.com/dhamidi/kitejava/resolve"
)

var log = commonlog.GetLogger("kite.compile")

// ErrFailed is returned by the driver when at least one file failed.
var ErrFailed = errors.New("compilation failed")

type Options struct {
	// OutputDir is the root of the generated tree. Files land in the
	// subdirectory matching their package.
	OutputDir string

	// WarningsAsErrors turns every warning into an error before deciding
	// whether a file may be emitted.
	WarningsAsErrors bool

	// SearchPath, when set, is used to report imports that name nothing.
	SearchPath *resolve.SearchPath
}

// Result is the outcome for one source file.
type Result struct {
	Source      string
	Input       []byte
	Diagnostics []diag.Diagnostic

	// Unit and Java are set when the file was emitted.
	Unit *jast.CompilationUnit
	Java []byte

	// Output is the path written, empty when nothing was written.
	Output string

	// Err is a *diag.TranspilationFailure for user errors and a plain
	// error for everything else.
	Err error
}

func (r *Result) Failed() bool { return r.Err != nil }

// Analyze parses, builds and validates src. The returned unit is nil when
// the source has syntax errors.
func Analyze(file string, src []byte, opts Options) (*ast.CompilationUnit, []diag.Diagnostic, error) {
	p := parser.ParseCompilationUnit(bytes.NewReader(src), parser.WithFile(file))
	root, err := p.Finish()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	if errs := p.Errors(); len(errs) > 0 {
		return nil, diag.FromSyntaxErrors(errs), nil
	}

	unit, err := builder.Build(root)
	if err != nil {
		return nil, nil, fmt.Errorf("building %s: %w", file, err)
	}

	diags := check.Validate(unit, file)
	if opts.SearchPath != nil {
		diags = append(diags, checkImports(unit, opts.SearchPath)...)
	}
	if opts.WarningsAsErrors {
		diags = diag.PromoteWarnings(diags)
	}
	return unit, diags, nil
}

// checkImports warns about single-type and on-demand imports that the
// search path cannot account for, and about imports of compiled classes
// that are not public. Static imports are checked by their declaring type.
func checkImports(unit *ast.CompilationUnit, sp *resolve.SearchPath) []diag.Diagnostic {
	var out []diag.Diagnostic
	ctx := resolve.NewContext()
	for _, imp := range unit.Imports {
		name := imp.Name.String()
		if imp.Static && !imp.OnDemand {
			name = name[:max(strings.LastIndex(name, "."), 0)]
		}
		if !ctx.Visit(name) {
			continue
		}
		if imp.OnDemand && !imp.Static {
			if len(sp.Package(name)) == 0 {
				out = append(out, diag.Warningf(imp.Pos(), "package %s not found on the search path", name))
			}
			continue
		}
		loc, ok := sp.Resolve(name)
		if !ok {
			out = append(out, diag.Warningf(imp.Pos(), "type %s not found on the search path", name))
			continue
		}
		if loc.Kind != resolve.ClassFile {
			continue
		}
		header, err := sp.Describe(loc)
		if err != nil {
			log.Warningf("%s", err)
			continue
		}
		if !header.Access.IsPublic() {
			out = append(out, diag.Warningf(imp.Pos(), "type %s is not public", name))
		}
	}
	return out
}

// Source runs the pipeline over src without touching the file system.
func Source(file string, src []byte, opts Options) *Result {
	r := &Result{Source: file, Input: src}
	unit, diags, err := Analyze(file, src, opts)
	r.Diagnostics = diags
	if err != nil {
		r.Err = err
		return r
	}
	if unit == nil || diag.HasErrors(diags) {
		r.Err = &diag.TranspilationFailure{SourceFile: file, Diagnostics: diags}
		return r
	}

	out, err := emitUnit(unit)
	if err != nil {
		r.Err = fmt.Errorf("emitting %s: %w", file, err)
		return r
	}
	var buf bytes.Buffer
	if err := format.PrintJava(&buf, out); err != nil {
		r.Err = fmt.Errorf("printing %s: %w", file, err)
		return r
	}
	r.Unit = out
	r.Java = buf.Bytes()
	return r
}

func emitUnit(unit *ast.CompilationUnit) (out *jast.CompilationUnit, err error) {
	defer func() {
		if r := recover(); r != nil {
			var unhandled *emit.UnhandledNodeError
			if e, ok := r.(error); ok && errors.As(e, &unhandled) {
				err = unhandled
				return
			}
			panic(r)
		}
	}()
	return emit.Unit(unit), nil
}

// File compiles the file at path and, when it succeeds and an output
// directory is set, writes the Java file.
func File(path string, opts Options) *Result {
	src, err := os.ReadFile(path)
	if err != nil {
		return &Result{Source: path, Err: fmt.Errorf("reading source: %w", err)}
	}
	r := Source(path, src, opts)
	if r.Failed() {
		log.Debugf("%s: not emitted: %s", path, firstLine(r.Err.Error()))
		return r
	}
	if opts.OutputDir == "" {
		return r
	}

	target := OutputPath(opts.OutputDir, path, r.Unit)
	if err := writeAtomic(target, r.Java); err != nil {
		r.Err = fmt.Errorf("writing %s: %w", target, err)
		return r
	}
	r.Output = target
	log.Infof("%s -> %s", path, target)
	return r
}

// OutputPath is where the Java file for source goes: the package path
// under dir followed by the source's base name with a .java extension.
func OutputPath(dir, source string, unit *jast.CompilationUnit) string {
	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".java"
	if unit != nil && unit.Package != nil {
		return filepath.Join(dir, filepath.FromSlash(strings.ReplaceAll(unit.Package.Name, ".", "/")), name)
	}
	return filepath.Join(dir, name)
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place, so readers never observe a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
