package pathkit

import "os"

// FileSystem provides the two probes pathkit needs from its environment.
// The library never reads file contents and never writes.
type FileSystem interface {
	// DirectoryExists reports whether path names an existing directory.
	DirectoryExists(path string) bool

	// IsRegularFile reports whether path names an existing regular
	// file. Directories and special files report false.
	IsRegularFile(path string) bool
}

// OSFileSystem implements FileSystem over the host filesystem.
type OSFileSystem struct{}

// NewOSFileSystem creates a FileSystem backed by the OS.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// DirectoryExists reports whether path stats as a directory.
func (fs *OSFileSystem) DirectoryExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsRegularFile reports whether path stats as a regular file.
func (fs *OSFileSystem) IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

var _ FileSystem = (*OSFileSystem)(nil)
