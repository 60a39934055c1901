package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/console"
	"github.com/vvka-141/pathkit/internal/logging"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var availableCmd = &cobra.Command{
	Use:   "available <directory>",
	Short: "Pick a collision-free file name inside a directory",
	Long: `Pick a name inside <directory> that no existing regular file uses.

The reference name seeds the candidates: "report.pdf" probes
report.pdf, report_1.pdf, report_2.pdf and so on up to suffix 99, and
the first free candidate wins. A blank reference name falls back to the
stem "file". Only regular files block a candidate; a directory with the
same name does not.

There is no reservation: another process can claim the returned name
before you create the file. Create with O_EXCL semantics when that
matters.

Exits with code 10 when <directory> does not exist.

Examples:
  # First free name derived from an upload's original name
  pathkit available ./uploads --name report.pdf

  # Force the extension regardless of the reference name
  pathkit available ./uploads --name report.pdf --ext txt

  # Default stem when no reference name exists
  pathkit available ./uploads`,
	Args:              RequireDirectory,
	ValidArgsFunction: completeDirectories,
	RunE:              runAvailable,
}

var availableFlags struct {
	name string
	ext  string
}

func init() {
	rootCmd.AddCommand(availableCmd)
	availableCmd.Flags().StringVarP(&availableFlags.name, "name", "n", "", "Reference file name seeding the candidates")
	availableCmd.Flags().StringVarP(&availableFlags.ext, "ext", "e", "", "Extension override (leading dots ignored)")
}

// runAvailable prints the first free candidate path.
func runAvailable(cmd *cobra.Command, args []string) error {
	directory := args[0]
	logger := logging.New(getVerboseFlag(cmd))

	logger.Debug().
		Str("directory", directory).
		Str("name", availableFlags.name).
		Str("ext", availableFlags.ext).
		Msg("probing for a free name")

	name, err := pathkit.AvailableName(directory, availableFlags.name, availableFlags.ext)
	if err != nil {
		return fmt.Errorf("picking a name in %s: %w", directory, err)
	}

	logger.Debug().Str("candidate", name).Msg("free name found")
	if console.IsInteractive() {
		fmt.Fprintf(os.Stderr, "%s %s\n", console.Render(console.SuccessStyle, "✓"), "name is free")
	}

	fmt.Println(name)
	return nil
}
