package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nfogen/pkg/output"
	"github.com/matzehuels/nfogen/pkg/pipeline"
)

// stdoutPath is the output flag value that sends the document to stdout
// instead of a file.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output          string // output file path, or "-" for stdout
	style           string // style name, overriding the template
	header          string // header name, overriding the style
	headerAlignment string // header alignment override
	catalogDir      string // directory of user styles and headers
}

// newRenderCmd creates the render command.
//
// The output path defaults to the template path with a .txt extension.
// Style, header, and header alignment flags override the template's
// metadata, which in turn overrides the style's own defaults.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <template.yaml>",
		Short: "Render a template into a text document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file ('-' for stdout, default: template name with .txt)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "style name (overrides the template)")
	cmd.Flags().StringVarP(&opts.header, "header", "H", "", "header name (overrides the style)")
	cmd.Flags().StringVar(&opts.headerAlignment, "header-alignment", "", "header alignment: left, center, right")
	cmd.Flags().StringVar(&opts.catalogDir, "catalog", "", "directory of user styles and headers")

	return cmd
}

// runRender executes the pipeline for one template and writes the document.
func runRender(ctx context.Context, templatePath string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner := pipeline.NewRunner(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		TemplatePath:    templatePath,
		Style:           opts.style,
		Header:          opts.header,
		HeaderAlignment: opts.headerAlignment,
		CatalogDir:      opts.catalogDir,
	})
	if err != nil {
		return err
	}

	if opts.output == stdoutPath {
		fmt.Print(result.Text)
		return nil
	}

	path := opts.output
	if path == "" {
		path = output.DefaultPath(templatePath)
	}
	if err := output.Write(path, result.Text); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Rendered %s", path))
	printSuccess("Rendered %s", templatePath)
	printKeyValue("style", result.Style)
	printKeyValue("sections", strconv.Itoa(result.Stats.SectionCount))
	printKeyValue("lines", strconv.Itoa(result.Stats.LineCount))
	printFile(path)
	return nil
}
