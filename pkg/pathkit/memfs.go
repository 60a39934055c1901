package pathkit

import (
	"path"
	"path/filepath"
	"sync"
)

// MemFileSystem is an in-memory FileSystem for testing. Register entries
// with AddFile and AddDirectory, then probe them without touching the
// host filesystem. Paths are lexically cleaned (and OS separators
// normalized) before registration and lookup, so "/data//a.txt" and
// "/data/a.txt" are the same entry.
//
// MemFileSystem is safe for concurrent use by multiple goroutines.
type MemFileSystem struct {
	mu    sync.Mutex
	files map[string]struct{}
	dirs  map[string]struct{}
}

// NewMemFileSystem creates an empty in-memory filesystem.
func NewMemFileSystem() *MemFileSystem {
	return &MemFileSystem{
		files: make(map[string]struct{}),
		dirs:  make(map[string]struct{}),
	}
}

// AddFile registers a regular file. Parent directories are registered
// implicitly, so probing the containing directory succeeds afterwards.
func (m *MemFileSystem) AddFile(filePath string) {
	normalized := normalizeMemPath(filePath)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[normalized] = struct{}{}
	m.addParentsLocked(normalized)
}

// AddDirectory registers a directory, along with its parents.
func (m *MemFileSystem) AddDirectory(dirPath string) {
	normalized := normalizeMemPath(dirPath)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[normalized] = struct{}{}
	m.addParentsLocked(normalized)
}

// DirectoryExists reports whether dirPath was registered as a directory
// or is an implicit parent of a registered entry.
func (m *MemFileSystem) DirectoryExists(dirPath string) bool {
	normalized := normalizeMemPath(dirPath)

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.dirs[normalized]
	return ok
}

// IsRegularFile reports whether filePath was registered as a file.
func (m *MemFileSystem) IsRegularFile(filePath string) bool {
	normalized := normalizeMemPath(filePath)

	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[normalized]
	return ok
}

// addParentsLocked registers every ancestor directory of normalized.
// Callers must hold m.mu.
func (m *MemFileSystem) addParentsLocked(normalized string) {
	for {
		parent := path.Dir(normalized)
		if parent == normalized {
			return
		}
		m.dirs[parent] = struct{}{}
		normalized = parent
	}
}

// normalizeMemPath converts separators and lexically cleans the path so
// registration and probing agree on a single spelling.
func normalizeMemPath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

var _ FileSystem = (*MemFileSystem)(nil)
