// Package corpora runs table-driven tests whose table lives in the file
// system: every input file under a root is a test case and its expected
// outputs sit next to it under extra extensions.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes one directory of test cases.
type Corpus struct {
	// Root is the test data directory, relative to the test file calling
	// Run.
	Root string

	// Refresh names an environment variable holding a glob. Test cases
	// matching it have their expected outputs rewritten instead of
	// compared.
	Refresh string

	// Extension of input files, without the dot.
	Extension string

	// Outputs lists the results a test case produces. A missing output
	// file means the output is expected to be empty.
	Outputs []Output

	// Test runs one case and returns one string per entry of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output is one expected result of a test case, stored in a file named
// after the input plus "." plus Extension.
type Output struct {
	Extension string
	// Compare reports a mismatch as a message. nil compares bytes and
	// reports a unified diff.
	Compare Compare
}

// Compare returns "" when got matches want.
type Compare func(got, want string) string

func (c Corpus) Run(t *testing.T) {
	t.Helper()
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(p), ".") == c.Extension {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: walk %s: %v", root, err)
	}
	if len(tests) == 0 {
		t.Fatalf("corpora: no .%s files under %s", c.Extension, root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing outputs matching %s=%s", c.Refresh, refresh)
	}

	for _, path := range tests {
		name, _ := filepath.Rel(root, path)
		t.Run(filepath.ToSlash(name), func(t *testing.T) {
			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: read %s: %v", path, err)
			}
			results := c.Test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d results for %d outputs", len(results), len(c.Outputs))
			}

			update := false
			if refresh != "" {
				update, _ = doublestar.Match(refresh, filepath.ToSlash(name))
			}
			for i, output := range c.Outputs {
				want := fmt.Sprint(path, ".", output.Extension)
				if update {
					writeOutput(t, want, results[i])
					continue
				}
				expected, err := os.ReadFile(want)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: read %s: %v", want, err)
					continue
				}
				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if msg := compare(results[i], string(expected)); msg != "" {
					t.Errorf("output mismatch for %s:\n%s", filepath.Base(want), msg)
				}
			}
		})
	}
}

func writeOutput(t *testing.T, path, content string) {
	t.Helper()
	if content == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: remove %s: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Errorf("corpora: write %s: %v", path, err)
	}
}

// Diff compares byte for byte and describes a mismatch as a unified diff.
func Diff(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine the calling test file")
	}
	return filepath.Dir(file)
}
