package pathkit

import (
	"errors"
	"fmt"
	"strings"
)

// DirectoryNotFoundError reports that the directory handed to
// AvailableName does not exist or is not a directory. It is the only
// error kind the library produces; callers detect it with errors.As:
//
//	name, err := pathkit.AvailableName(dir, "report.pdf", "")
//	var dirErr *pathkit.DirectoryNotFoundError
//	if errors.As(err, &dirErr) {
//	    // dirErr.Path holds the missing directory
//	}
type DirectoryNotFoundError struct {
	// Path is the directory that failed the existence probe.
	Path string
}

// Error implements the error interface.
func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("directory not found: %s", e.Path)
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known
// errors, and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var dirNotFound *DirectoryNotFoundError
	if errors.As(err, &dirNotFound) {
		return ExitDirectoryNotFound
	}

	// Cobra argument and flag errors have no sentinel type; classify
	// them by their stable message patterns.
	errStr := err.Error()
	if strings.Contains(errStr, "missing required argument") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "invalid argument") ||
		(strings.Contains(errStr, "accepts") && strings.Contains(errStr, "arg(s)")) {
		return ExitUsageError
	}

	return ExitGeneralError
}
