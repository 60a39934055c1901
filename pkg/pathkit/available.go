package pathkit

import (
	"fmt"
	"strings"
)

// Namer selects collision-free file names inside a directory.
// Namer is safe for concurrent use by multiple goroutines as long as the
// provided FileSystem is also thread-safe, but see AvailableName for the
// reservation caveat.
type Namer struct {
	fs FileSystem
}

// NewNamer creates a Namer probing the OS filesystem.
func NewNamer() *Namer {
	return &Namer{fs: NewOSFileSystem()}
}

// NewNamerWithFS creates a Namer probing a custom filesystem.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fs is nil.
func NewNamerWithFS(fs FileSystem) *Namer {
	if fs == nil {
		panic("fs cannot be nil")
	}
	return &Namer{fs: fs}
}

// AvailableName returns a path inside directory that no existing regular
// file occupies, derived from a reference name and an optional extension
// override.
//
// The stem and extension come from splitting refName at its last dot; a
// non-blank refExt replaces the extracted extension, and leading dots
// are trimmed from the result. A blank refName (after trimming
// whitespace) falls back to the stem "file". Attempt 0 probes
// "stem.ext" (bare "stem" when the extension is blank); attempts 1
// through 99 probe "stem_1.ext", "stem_2.ext", and so on. The first
// candidate that is not an existing regular file is returned; a
// same-named directory does not block a candidate. If all 100 attempts
// collide, the attempt-99 candidate is returned as-is rather than an
// error, so in that exhausted case the result may still collide.
//
// Returns *DirectoryNotFoundError when directory does not exist or is
// not a directory.
//
// There is no reservation step: between the probe and the caller's
// create, another process or goroutine can claim the same name. Callers
// needing exclusivity must create the file with O_EXCL semantics and
// retry on failure.
func (n *Namer) AvailableName(directory, refName, refExt string) (string, error) {
	if !n.fs.DirectoryExists(directory) {
		return "", &DirectoryNotFoundError{Path: directory}
	}

	stem, extension := splitReference(refName, refExt)

	candidate := ""
	for attempt := 0; attempt < MaxNameAttempts; attempt++ {
		candidate = JoinPaths(directory, candidateBasename(stem, extension, attempt))
		if !n.fs.IsRegularFile(candidate) {
			return candidate, nil
		}
	}

	// Bounded probe exhausted: hand back the last candidate unchecked.
	return candidate, nil
}

// defaultNamer backs the package-level AvailableName.
var defaultNamer = NewNamer()

// AvailableName probes the OS filesystem for a collision-free name. See
// Namer.AvailableName for the full contract.
func AvailableName(directory, refName, refExt string) (string, error) {
	return defaultNamer.AvailableName(directory, refName, refExt)
}

// splitReference derives the candidate stem and extension from the
// reference name, applying the default stem and the extension override.
func splitReference(refName, refExt string) (stem, extension string) {
	name := strings.TrimSpace(refName)
	if name == "" {
		stem = DefaultStem
	} else {
		stem = name
		if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
			stem = name[:idx]
			extension = name[idx+1:]
		}
	}

	if override := strings.TrimSpace(refExt); override != "" {
		extension = override
	}
	extension = strings.TrimLeft(extension, ".")

	return stem, extension
}

// candidateBasename renders the basename probed at the given attempt:
// the reference name itself for attempt 0, stem_N variants afterwards.
func candidateBasename(stem, extension string, attempt int) string {
	name := stem
	if attempt > 0 {
		name = fmt.Sprintf("%s_%d", stem, attempt)
	}
	if extension == "" {
		return name
	}
	return name + "." + extension
}
