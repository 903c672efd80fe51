package compile

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/kitejava/diag"
	"github.com/dhamidi/kitejava/resolve"
)

const greeter = `package demo.hello;

public class Greeter {
    String greet(String name) {
        return "hello " + name;
    }
}
`

const greeterJava = `package demo.hello;

public class Greeter {
    String greet(final String name) {
        return "hello " + name;
    }
}
`

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func failure(t *testing.T, r *Result) *diag.TranspilationFailure {
	t.Helper()
	var f *diag.TranspilationFailure
	require.True(t, errors.As(r.Err, &f), "got %v", r.Err)
	return f
}

func TestSource(t *testing.T) {
	r := Source("Greeter.kite", []byte(greeter), Options{})
	require.NoError(t, r.Err)
	assert.Empty(t, r.Diagnostics)
	assert.Equal(t, greeterJava, string(r.Java))
	assert.Empty(t, r.Output)
}

func TestFloatLiteralSpellings(t *testing.T) {
	src := `class L {
    double scale() {
        double f = 0x1p3;
        float g = 0x1.8p-2f;
        double h = 3.;
        double k = 3.e2;
        return f + g + h + k;
    }
}
`
	r := Source("L.kite", []byte(src), Options{})
	require.NoError(t, r.Err)
	assert.Empty(t, r.Diagnostics)
	for _, lit := range []string{"0x1p3;", "0x1.8p-2f;", "3.;", "3.e2;"} {
		assert.Contains(t, string(r.Java), lit)
	}
}

func TestFileWritesUnderPackageDirectory(t *testing.T) {
	src := writeSource(t, t.TempDir(), "Greeter.kite", greeter)
	out := t.TempDir()

	r := File(src, Options{OutputDir: out})
	require.NoError(t, r.Err)
	want := filepath.Join(out, "demo", "hello", "Greeter.java")
	assert.Equal(t, want, r.Output)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, greeterJava, string(data))

	entries, err := os.ReadDir(filepath.Dir(want))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestOutputPathWithoutPackage(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "A.java"), OutputPath("out", filepath.Join("src", "A.kite"), nil))
}

func TestSyntaxErrorsWriteNothing(t *testing.T) {
	src := writeSource(t, t.TempDir(), "A.kite", "class A { void m() { x = ; } }")
	out := t.TempDir()

	r := File(src, Options{OutputDir: out})
	f := failure(t, r)
	assert.NotEmpty(t, f.Diagnostics)
	assert.True(t, diag.HasErrors(r.Diagnostics))
	assert.Nil(t, r.Java)
	assert.Empty(t, r.Output)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSemanticErrorsWriteNothing(t *testing.T) {
	src := writeSource(t, t.TempDir(), "Wrong.kite", "class Right {}")
	out := t.TempDir()

	r := File(src, Options{OutputDir: out})
	f := failure(t, r)
	require.Len(t, f.Diagnostics, 1)
	assert.Contains(t, f.Diagnostics[0].Message, "Wrong.kite")

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWarningsDoNotAbort(t *testing.T) {
	src := []byte("abstract interface A {}")

	r := Source("A.kite", src, Options{})
	require.NoError(t, r.Err)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, diag.Warning, r.Diagnostics[0].Severity)
	assert.NotEmpty(t, r.Java)

	r = Source("A.kite", src, Options{WarningsAsErrors: true})
	f := failure(t, r)
	require.Len(t, f.Diagnostics, 1)
	assert.Equal(t, diag.Error, f.Diagnostics[0].Severity)
	assert.Nil(t, r.Java)
}

func TestMissingSource(t *testing.T) {
	r := File(filepath.Join(t.TempDir(), "Nope.kite"), Options{})
	require.Error(t, r.Err)
	var f *diag.TranspilationFailure
	assert.False(t, errors.As(r.Err, &f))
}

func TestImportsAgainstSearchPath(t *testing.T) {
	lib := t.TempDir()
	writeSource(t, lib, "demo/util/Helper.java", "")
	writeSource(t, lib, "demo/util/Other.class", "")
	sp, err := resolve.New(lib)
	require.NoError(t, err)

	src := `import demo.util.Helper;
import demo.util.Missing;
import demo.util.*;
import demo.nothing.*;
import static demo.util.Helper.help;
import static demo.util.Gone.*;
import demo.util.Missing;

class A {}
`
	r := Source("A.kite", []byte(src), Options{SearchPath: sp})
	require.NoError(t, r.Err)

	var got []string
	for _, d := range r.Diagnostics {
		assert.Equal(t, diag.Warning, d.Severity)
		got = append(got, d.Message)
	}
	assert.Equal(t, []string{
		"type demo.util.Missing not found on the search path",
		"package demo.nothing not found on the search path",
		"type demo.util.Gone not found on the search path",
	}, got)
}

func TestDriver(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeSource(t, dir, "Greeter.kite", greeter),
		writeSource(t, dir, "Bad.kite", "class Good {}"),
		writeSource(t, dir, "B.kite", "class B {}"),
	}
	out := t.TempDir()

	d := &Driver{Options: Options{OutputDir: out}, Jobs: 2}
	results, err := d.Run(context.Background(), files)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFailed))
	assert.Contains(t, err.Error(), "1 of 3 files")

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, files[i], r.Source)
	}
	assert.False(t, results[0].Failed())
	assert.True(t, results[1].Failed())
	assert.False(t, results[2].Failed())
	assert.FileExists(t, filepath.Join(out, "demo", "hello", "Greeter.java"))
	assert.FileExists(t, filepath.Join(out, "B.java"))
	assert.NoFileExists(t, filepath.Join(out, "Bad.java"))
	assert.NoFileExists(t, filepath.Join(out, "Good.java"))
}

func TestDriverSucceeds(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeSource(t, dir, "B.kite", "class B {}")}
	results, err := (&Driver{}).Run(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "class B {\n}\n", string(results[0].Java))
}

func TestDriverCancelled(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeSource(t, dir, "B.kite", "class B {}")}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Driver{}).Run(ctx, files)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

// classFile returns a minimal class file declaring name with the given
// access flags.
func classFile(access uint16, name string) []byte {
	var b bytes.Buffer
	u2 := func(v int) { binary.Write(&b, binary.BigEndian, uint16(v)) }
	binary.Write(&b, binary.BigEndian, uint32(0xCAFEBABE))
	u2(0)
	u2(61)
	u2(3)
	b.WriteByte(1)
	u2(len(name))
	b.WriteString(name)
	b.WriteByte(7)
	u2(1)
	u2(int(access))
	u2(2)
	u2(0)
	u2(0)
	return b.Bytes()
}

func TestImportsOfCompiledClasses(t *testing.T) {
	lib := t.TempDir()
	writeSource(t, lib, "demo/Open.class", string(classFile(0x0001, "demo/Open")))
	writeSource(t, lib, "demo/Hidden.class", string(classFile(0x0000, "demo/Hidden")))
	writeSource(t, lib, "demo/Broken.class", "not a class")
	sp, err := resolve.New(lib)
	require.NoError(t, err)

	src := `import demo.Open;
import demo.Hidden;
import demo.Broken;

class A {}
`
	r := Source("A.kite", []byte(src), Options{SearchPath: sp})
	require.NoError(t, r.Err)
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, "type demo.Hidden is not public", r.Diagnostics[0].Message)
	assert.Equal(t, 2, r.Diagnostics[0].Pos.Line)
}
