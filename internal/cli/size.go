package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pathkit/internal/logging"
	"github.com/vvka-141/pathkit/pkg/pathkit"
)

var sizeCmd = &cobra.Command{
	Use:   "size <bytes>...",
	Short: "Format byte counts as human-readable sizes",
	Long: `Format byte counts using binary (1024-based) prefixes.

A count within one step of a unit boundary promotes into the next unit,
so 1024 formats as "1K". Trailing zero decimals are trimmed. One size
prints per input, in argument order.

Examples:
  # Default precision (1 decimal digit)
  pathkit size 98543246875

  # Two decimal digits
  pathkit size 4562154 --precision 2

  # Machine-readable report for several counts
  pathkit size 13 1024 4562154 --output json`,
	Args: RequireByteCounts,
	RunE: runSize,
}

var sizeFlags struct {
	precision int
	output    string
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	sizeCmd.Flags().IntVarP(&sizeFlags.precision, "precision", "p", pathkit.DefaultSizePrecision, "Decimal digits in the formatted size")
	sizeCmd.Flags().StringVarP(&sizeFlags.output, "output", "o", formatText, "Output format: text, json, or yaml")
	_ = sizeCmd.RegisterFlagCompletionFunc("output", completeOutputFormats)
}

// sizeEntry pairs an input byte count with its formatted form.
type sizeEntry struct {
	Bytes int64  `json:"bytes" yaml:"bytes"`
	Human string `json:"human" yaml:"human"`
}

// runSize formats every byte count argument.
func runSize(cmd *cobra.Command, args []string) error {
	if err := validateOutputFormat(sizeFlags.output); err != nil {
		return err
	}

	logger := logging.New(getVerboseFlag(cmd))

	entries := make([]sizeEntry, 0, len(args))
	for _, arg := range args {
		count, err := parseByteCount(arg)
		if err != nil {
			return err
		}
		entries = append(entries, sizeEntry{
			Bytes: count,
			Human: pathkit.HumanSizeWithPrecision(count, sizeFlags.precision),
		})
	}
	logger.Debug().Int("counts", len(entries)).Int("precision", sizeFlags.precision).Msg("formatted byte counts")

	if sizeFlags.output == formatText {
		for _, entry := range entries {
			fmt.Println(entry.Human)
		}
		return nil
	}

	rendered, err := marshalOutput(sizeFlags.output, entries)
	if err != nil {
		return err
	}
	fmt.Println(rendered)
	return nil
}

// parseByteCount parses a byte count argument. The library clamps
// negative inputs for programmatic callers; at the CLI boundary a
// negative count is a usage mistake and rejected outright.
func parseByteCount(arg string) (int64, error) {
	count, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q: byte count must be an integer", arg)
	}
	if count < 0 {
		return 0, fmt.Errorf("invalid argument %q: byte count must be non-negative", arg)
	}
	return count, nil
}
