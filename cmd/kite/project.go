package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/dhamidi/kitejava/compile"
	"github.com/dhamidi/kitejava/config"
	"github.com/dhamidi/kitejava/diag"
	"github.com/dhamidi/kitejava/resolve"
)

// projectFlags are the flags shared by commands that work on a project.
// Flags given on the command line override kite.yaml.
type projectFlags struct {
	output     string
	jobs       int
	werror     bool
	searchPath []string
	noColor    bool
}

func (f *projectFlags) register(cmd *cobra.Command, withOutput bool) {
	if withOutput {
		cmd.Flags().StringVarP(&f.output, "output", "o", "", "Directory for generated Java files")
		cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "Number of files compiled in parallel (default: one per CPU)")
	}
	cmd.Flags().BoolVar(&f.werror, "werror", false, "Treat warnings as errors")
	cmd.Flags().StringSliceVar(&f.searchPath, "search-path", nil, "Directories and archives used to check imports")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable coloured diagnostics")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Find(wd)
}

// apply merges the flags into cfg.
func (f *projectFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("output") {
		cfg.Output = f.output
		if !filepath.IsAbs(cfg.Output) {
			cfg.Output, _ = filepath.Abs(cfg.Output)
		}
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = f.jobs
	}
	if cmd.Flags().Changed("werror") {
		cfg.WarningsAsErrors = f.werror
	}
	if cmd.Flags().Changed("search-path") {
		cfg.SearchPath = nil
		for _, e := range f.searchPath {
			abs, err := filepath.Abs(e)
			if err != nil {
				abs = e
			}
			cfg.SearchPath = append(cfg.SearchPath, abs)
		}
	}
}

func (f *projectFlags) options(cfg *config.Config, withOutput bool) (compile.Options, error) {
	opts := compile.Options{WarningsAsErrors: cfg.WarningsAsErrors}
	if withOutput {
		opts.OutputDir = cfg.OutputDir()
	}
	if entries := cfg.SearchPathEntries(); len(entries) > 0 {
		sp, err := resolve.New(entries...)
		if err != nil {
			return opts, fmt.Errorf("search path: %w", err)
		}
		opts.SearchPath = sp
	}
	return opts, nil
}

// sourceFiles expands the arguments into .kite files. Directories are
// searched recursively. Without arguments the configured sources are used.
func sourceFiles(cfg *config.Config, args []string) ([]string, error) {
	if len(args) == 0 {
		return cfg.SourceFiles()
	}
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(arg), "**/*.kite", doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("searching %s: %w", arg, err)
		}
		for _, m := range matches {
			files = append(files, filepath.Join(arg, filepath.FromSlash(m)))
		}
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// report renders the diagnostics of every result and returns the number of
// failed files.
func report(r *diag.Renderer, results []*compile.Result) int {
	var all []diag.Diagnostic
	failed := 0
	for _, res := range results {
		if res == nil {
			continue
		}
		if err := r.Render(res.Source, res.Input, res.Diagnostics); err != nil {
			log.Errorf("rendering diagnostics: %s", err)
		}
		all = append(all, res.Diagnostics...)
		if res.Failed() {
			failed++
			var tf *diag.TranspilationFailure
			if !errors.As(res.Err, &tf) {
				fmt.Fprintf(os.Stderr, "%s: %s\n", res.Source, res.Err)
			}
		}
	}
	if err := r.Summary(all); err != nil {
		log.Errorf("rendering summary: %s", err)
	}
	return failed
}

func newRenderer(noColor bool) *diag.Renderer {
	r := diag.NewRenderer(os.Stderr)
	if noColor {
		r.SetColor(false)
	}
	return r
}
