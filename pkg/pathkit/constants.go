package pathkit

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess           = 0  // Operation completed successfully
	ExitGeneralError      = 1  // Unknown or unclassified error
	ExitUsageError        = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic             = 3  // Internal panic (unexpected crash)
	ExitDirectoryNotFound = 10 // Target directory does not exist
)

const (
	// MaxNameAttempts bounds the AvailableName candidate probe. Attempt
	// 0 is the reference name itself; attempts 1 through
	// MaxNameAttempts-1 append a numeric suffix to the stem.
	MaxNameAttempts = 100

	// DefaultStem is the stem used when AvailableName receives a blank
	// reference name.
	DefaultStem = "file"
)
