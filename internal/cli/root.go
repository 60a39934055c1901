package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `┌─┐┌─┐┌┬┐┬ ┬┬┌─┬┌┬┐
├─┘├─┤ │ ├─┤├┴┐│ │
┴  ┴ ┴ ┴ ┴ ┴┴ ┴┴ ┴`

var rootCmd = &cobra.Command{
	Use:   "pathkit",
	Short: "Path and size utilities for scripts and pipelines",
	Long: asciiLogo + `

pathkit joins path fragments into normalized paths, formats byte counts
with binary prefixes, decomposes paths into their components, and
reserves collision-free file names inside a directory.

Results go to stdout; summaries and diagnostics stay on stderr, so
output pipes cleanly into other tools.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Directory not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for pathkit")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
