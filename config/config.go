// Package config reads kite.yaml project files.
//
//	sources:
//	  - src/**/*.kite
//	searchPath:
//	  - lib
//	  - deps/annotations.jar
//	output: build/java
//	jobs: 4
//	warningsAsErrors: true
//
// Relative paths are taken relative to the directory holding the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// FileName is the name Find looks for.
const FileName = "kite.yaml"

type Config struct {
	Sources          []string `yaml:"sources"`
	SearchPath       []string `yaml:"searchPath"`
	Output           string   `yaml:"output"`
	Jobs             int      `yaml:"jobs"`
	WarningsAsErrors bool     `yaml:"warningsAsErrors"`

	// Dir is the directory relative paths are resolved against.
	Dir string `yaml:"-"`
}

// Default is the configuration used when there is no kite.yaml.
func Default(dir string) *Config {
	return &Config{
		Sources: []string{"**/*.kite"},
		Output:  "out",
		Dir:     dir,
	}
}

// Parse decodes data. Unknown keys are an error so typos do not pass
// silently.
func Parse(data []byte, dir string) (*Config, error) {
	cfg := Default(dir)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find looks for kite.yaml in dir and its parents and loads the first one
// found. Without one it returns Default(dir).
func Find(dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	for d := abs; ; d = filepath.Dir(d) {
		path := filepath.Join(d, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
		if parent := filepath.Dir(d); parent == d {
			break
		}
	}
	return Default(dir), nil
}

func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	for _, pattern := range c.Sources {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return fmt.Errorf("invalid source pattern %q", pattern)
		}
	}
	return nil
}

// Path resolves p against the configuration directory.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}

// OutputDir is the resolved output directory.
func (c *Config) OutputDir() string {
	return c.Path(c.Output)
}

// SearchPathEntries returns the search path with every entry resolved.
func (c *Config) SearchPathEntries() []string {
	out := make([]string, len(c.SearchPath))
	for i, e := range c.SearchPath {
		out[i] = c.Path(e)
	}
	return out
}

// SourceFiles expands the source patterns into a sorted list of files.
// Files under the output directory are never sources.
func (c *Config) SourceFiles() ([]string, error) {
	dir := c.Dir
	if dir == "" {
		dir = "."
	}
	fsys := os.DirFS(dir)
	out := c.OutputDir()
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range c.Sources {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, m := range matches {
			path := filepath.Join(dir, filepath.FromSlash(m))
			if seen[path] || within(path, out) {
				continue
			}
			seen[path] = true
			files = append(files, path)
		}
	}
	slices.Sort(files)
	return files, nil
}

func within(path, dir string) bool {
	if dir == "" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
