package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/kitejava/diag"
	"github.com/dhamidi/kitejava/format"
	"github.com/dhamidi/kitejava/kite/ast"
	"github.com/dhamidi/kitejava/kite/builder"
	"github.com/dhamidi/kitejava/kite/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includeComments bool
	var buildAST bool
	var expression bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .kite file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read kite file: %w", err)
			}

			opts := []parser.Option{parser.WithFile(filename)}
			if includeComments {
				opts = append(opts, parser.WithComments())
			}
			var p *parser.Parser
			if expression {
				p = parser.ParseExpression(bytes.NewReader(data), opts...)
			} else {
				p = parser.ParseCompilationUnit(bytes.NewReader(data), opts...)
			}
			root, err := p.Finish()
			if err != nil {
				return fmt.Errorf("parse kite file: %w", err)
			}

			if !buildAST {
				switch outputFormat {
				case "json":
					return format.NewCSTJSONEncoder(os.Stdout).Encode(root, p.Comments())
				case "tree":
					return format.NewLineEncoder(os.Stdout).EncodeCST(root, p.Comments())
				default:
					return fmt.Errorf("unknown format: %s", outputFormat)
				}
			}

			if errs := p.Errors(); len(errs) > 0 {
				diags := diag.FromSyntaxErrors(errs)
				if err := newRenderer(false).Render(filename, data, diags); err != nil {
					return err
				}
				return &diag.TranspilationFailure{SourceFile: filename, Diagnostics: diags}
			}

			var node ast.Node
			if expression {
				node, err = builder.BuildExpression(root)
			} else {
				node, err = builder.Build(root)
			}
			if err != nil {
				return fmt.Errorf("build ast: %w", err)
			}
			return encodeAST(node, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "Output format (tree, json)")
	cmd.Flags().BoolVar(&includeComments, "comments", false, "List comments after the parse tree")
	cmd.Flags().BoolVar(&buildAST, "ast", false, "Dump the abstract syntax tree instead of the parse tree")
	cmd.Flags().BoolVarP(&expression, "expression", "e", false, "Parse the file as a single expression")

	return cmd
}

func encodeAST(node ast.Node, outputFormat string) error {
	switch outputFormat {
	case "json":
		return format.NewASTJSONEncoder(os.Stdout).Encode(node)
	case "tree":
		return format.NewLineEncoder(os.Stdout).EncodeAST(node)
	}
	return fmt.Errorf("unknown format: %s", outputFormat)
}
