package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/logging"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var joinCmd = &cobra.Command{
	Use:   "join [fragment]...",
	Short: "Join path fragments into a normalized path",
	Long: `Join path fragments with single "/" separators.

Runs of separators collapse to one and a single trailing separator is
trimmed (the root "/" stays). Fragments pass through textually: no
cleaning of "." or ".." and no filesystem access. No fragments print an
empty line.

Examples:
  # Join fragments into one path
  pathkit join dir1 /dir2 test.txt

  # Doubled separators collapse
  pathkit join a///b //c/

  # Feed a script variable safely
  cp "$f" "$(pathkit join "$dest" "$(basename "$f")")"`,
	Args: cobra.ArbitraryArgs,
	RunE: runJoin,
}

func init() {
	rootCmd.AddCommand(joinCmd)
}

// runJoin prints the normalized join of all fragment arguments.
func runJoin(cmd *cobra.Command, args []string) error {
	logger := logging.New(getVerboseFlag(cmd))
	logger.Debug().Strs("fragments", args).Msg("joining fragments")

	fmt.Println(pathkit.JoinPaths(args...))
	return nil
}
