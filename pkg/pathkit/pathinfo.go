package pathkit

import "strings"

// PathInfo is the decomposition of a path string. Components that are
// absent from the path are empty strings, never an error.
type PathInfo struct {
	// Directory is everything before the last separator. A
	// root-anchored single segment ("/etc") keeps "/" as its
	// directory; a bare filename has "".
	Directory string `json:"directory" yaml:"directory"`

	// Basename is the final path segment including any extension.
	Basename string `json:"basename" yaml:"basename"`

	// Extension is the part of the basename after its last dot,
	// without the dot.
	Extension string `json:"extension" yaml:"extension"`

	// Stem is the basename without the extension and its dot.
	Stem string `json:"stem" yaml:"stem"`
}

// ParsePath splits a path into directory, basename, extension, and stem.
// The split is purely textual: no cleaning, no symlink resolution, no
// filesystem access. Splitting happens at the last "/" for the directory
// and at the last "." of the basename for the extension, so
// "/a/b/c.tar.gz" yields directory "/a/b", basename "c.tar.gz",
// extension "gz", stem "c.tar".
func ParsePath(path string) PathInfo {
	directory := ""
	basename := path
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		directory = path[:idx]
		basename = path[idx+1:]
		if directory == "" {
			directory = "/"
		}
	}

	stem := basename
	extension := ""
	if idx := strings.LastIndexByte(basename, '.'); idx >= 0 {
		stem = basename[:idx]
		extension = basename[idx+1:]
	}

	return PathInfo{
		Directory: directory,
		Basename:  basename,
		Extension: extension,
		Stem:      stem,
	}
}

// Extension returns the extension component of path, without the dot.
// Equivalent to ParsePath(path).Extension.
func Extension(path string) string {
	return ParsePath(path).Extension
}
