package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dhamidi/kitejava/resolve"
)

func newResolveCmd(configPath *string) *cobra.Command {
	var entries []string
	var pkg bool
	var describe bool

	cmd := &cobra.Command{
		Use:   "resolve <name>...",
		Short: "Show where type names are defined on the search path",
		Long: `Show where type names are defined on the search path.

The search path is taken from --search-path or from kite.yaml. With
--package every argument names a package and its types are listed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(entries) == 0 {
				cfg, err := loadConfig(*configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				entries = cfg.SearchPathEntries()
			}
			sp, err := resolve.New(entries...)
			if err != nil {
				return fmt.Errorf("search path: %w", err)
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			missing := 0
			for _, name := range args {
				var locs []resolve.Location
				if pkg {
					locs = sp.Package(name)
				} else if loc, ok := sp.Resolve(name); ok {
					locs = append(locs, loc)
				}
				if len(locs) == 0 {
					fmt.Fprintf(os.Stderr, "%s: not found\n", name)
					missing++
					continue
				}
				for _, loc := range locs {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", loc.Name, loc.Kind, loc)
					if describe && loc.Kind == resolve.ClassFile {
						h, err := sp.Describe(loc)
						if err != nil {
							return err
						}
						fmt.Fprintf(tw, "\t%s\t%s\n", h.KindName(), supertypes(h))
					}
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d names not found", missing, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&entries, "search-path", nil, "Directories and archives to search")
	cmd.Flags().BoolVarP(&pkg, "package", "p", false, "List the types of packages instead")
	cmd.Flags().BoolVarP(&describe, "describe", "d", false, "Show the kind and supertypes of compiled classes")
	return cmd
}

func supertypes(h *resolve.ClassHeader) string {
	var parts []string
	if h.Super != "" {
		parts = append(parts, "extends "+h.Super)
	}
	if len(h.Interfaces) > 0 {
		parts = append(parts, "implements "+strings.Join(h.Interfaces, ", "))
	}
	return strings.Join(parts, " ")
}
