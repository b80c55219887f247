package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nfogen/pkg/output"
	"github.com/matzehuels/nfogen/pkg/style"
)

// newStylesCmd creates the styles command group.
func newStylesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Inspect the style catalog",
	}
	cmd.AddCommand(newStylesListCmd())
	cmd.AddCommand(newStylesExportCmd())
	return cmd
}

// newStylesListCmd lists the available styles.
func newStylesListCmd() *cobra.Command {
	var catalogDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogDir)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Styles"))
			for _, name := range catalog.Styles() {
				s, err := catalog.Style(name)
				if err != nil {
					return err
				}
				detail := strconv.Itoa(s.PageWidth) + " cols"
				if s.HeaderKey != "" {
					detail += ", header " + s.HeaderKey
				}
				printListItem(name, detail)
			}
			printNextStep("Preview a header", "nfogen headers show <name>")
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogDir, "catalog", "", "directory of user styles and headers")
	return cmd
}

// newStylesExportCmd writes an editable copy of a built-in style.
func newStylesExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <name>",
		Short: "Write an editable copy of a built-in style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			data, err := style.BuiltinStyleSource(name)
			if err != nil {
				return err
			}

			path := outPath
			if path == "" {
				path = name + ".toml"
			}
			if err := output.Write(path, string(data)); err != nil {
				return err
			}

			printSuccess("Exported style %s", name)
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: <name>.toml)")
	return cmd
}

// loadCatalog builds the catalog the commands operate on: the embedded
// entries plus an optional user directory layered over them.
func loadCatalog(dir string) (*style.Catalog, error) {
	catalog, err := style.Builtin()
	if err != nil {
		return nil, err
	}
	if dir != "" {
		if err := catalog.LoadDir(dir); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}
