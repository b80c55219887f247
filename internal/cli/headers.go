package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nfogen/pkg/style"
)

// newHeadersCmd creates the headers command group.
func newHeadersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "headers",
		Short: "Inspect the header art catalog",
	}
	cmd.AddCommand(newHeadersListCmd())
	cmd.AddCommand(newHeadersShowCmd())
	cmd.AddCommand(newHeadersBrowseCmd())
	return cmd
}

// newHeadersListCmd lists the available headers.
func newHeadersListCmd() *cobra.Command {
	var catalogDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available headers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogDir)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Headers"))
			for _, name := range catalog.Headers() {
				h, err := catalog.Header(name)
				if err != nil {
					return err
				}
				lines := strconv.Itoa(len(strings.Split(h.Text, "\n"))) + " lines"
				printListItem(name, lines)
			}
			printNextStep("Preview one", "nfogen headers show <name>")
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogDir, "catalog", "", "directory of user styles and headers")
	return cmd
}

// newHeadersShowCmd prints one header's art.
func newHeadersShowCmd() *cobra.Command {
	var catalogDir string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a header's art",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogDir)
			if err != nil {
				return err
			}
			h, err := catalog.Header(args[0])
			if err != nil {
				return err
			}

			fmt.Println(h.Text)
			if h.Glyphs != "" {
				fmt.Println()
				fmt.Println(h.Glyphs)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogDir, "catalog", "", "directory of user styles and headers")
	return cmd
}

// newHeadersBrowseCmd opens the interactive header browser.
func newHeadersBrowseCmd() *cobra.Command {
	var catalogDir string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse header art interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogDir)
			if err != nil {
				return err
			}

			names := catalog.Headers()
			headers := make([]style.Header, len(names))
			for i, name := range names {
				headers[i], err = catalog.Header(name)
				if err != nil {
					return err
				}
			}

			model := NewHeaderListModel(names, headers)
			final, err := tea.NewProgram(model).Run()
			if err != nil {
				return err
			}

			if m, ok := final.(HeaderListModel); ok && m.Selected != "" {
				printInfo("Use it with:")
				printNextStep("Render", "nfogen render template.yaml -H "+m.Selected)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogDir, "catalog", "", "directory of user styles and headers")
	return cmd
}
