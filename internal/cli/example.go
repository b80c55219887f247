package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/nfogen/pkg/output"
)

// exampleTemplate is a small template exercising every block type, written
// by the example command as a starting point.
const exampleTemplate = `style: classic
header_alignment: center

!section About~center: >
  nfogen turns structured YAML templates like this one into fixed-width
  text documents with decorated headers and aligned sections.

  Blank lines inside a folded scalar start a new paragraph.

!section Install~left~single:
  - download the latest release
  - put the binary somewhere on your PATH

!section Specs~left:
  Version: 1.0
  Platform: any
  !subsection Mirrors~center:
    - https://example.com/a
    - https://example.com/b

!section Notes~left: |
  literal blocks keep
  their own line breaks

!section Greetz~center~single:
  !credits Respect:
    primary:
      - the ascii scene
    secondary:
      - alice
      - bob
      - carol
`

// newExampleCmd creates the example command, which writes a starter
// template to the current directory.
func newExampleCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example template to get started",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := outPath
			if path == "" {
				path = "example.yaml"
			}
			if err := output.Write(path, exampleTemplate); err != nil {
				return err
			}

			printSuccess("Wrote example template")
			printFile(path)
			printNextStep("Render it", "nfogen render "+path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (default: example.yaml)")
	return cmd
}
