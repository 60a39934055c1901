package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/console"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show a path's directory, basename, extension, and stem",
	Long: `Decompose a path into its components.

The split is purely textual: the directory is everything before the
last "/", the extension is everything after the last "." of the
basename, and missing components come back empty rather than failing.
Nothing on the filesystem is touched.

Examples:
  # Labeled text output
  pathkit info /a/b/c.tar.gz

  # Structured output for scripts
  pathkit info /a/b/c.tar.gz --output json
  pathkit info build/app.tar.gz --output yaml`,
	Args: RequirePath,
	RunE: runInfo,
}

var infoFlags struct {
	output string
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVarP(&infoFlags.output, "output", "o", formatText, "Output format: text, json, or yaml")
	_ = infoCmd.RegisterFlagCompletionFunc("output", completeOutputFormats)
}

// runInfo prints the decomposition of the path argument.
func runInfo(cmd *cobra.Command, args []string) error {
	if err := validateOutputFormat(infoFlags.output); err != nil {
		return err
	}

	info := pathkit.ParsePath(args[0])

	if infoFlags.output == formatText {
		printPathInfoText(info)
		return nil
	}

	rendered, err := marshalOutput(infoFlags.output, info)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}

// printPathInfoText renders the decomposition as aligned labeled lines.
func printPathInfoText(info pathkit.PathInfo) {
	rows := []struct {
		label string
		value string
	}{
		{"Directory", info.Directory},
		{"Basename", info.Basename},
		{"Extension", info.Extension},
		{"Stem", info.Stem},
	}

	for _, row := range rows {
		label := console.Render(console.LabelStyle, fmt.Sprintf("%-10s", row.label+":"))
		fmt.Printf("%s %s\n", label, row.value)
	}
}
