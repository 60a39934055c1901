// Package pathkit provides file-path and file-size utilities: normalized
// path concatenation, human-readable size formatting, collision-free
// filename selection, and path component extraction.
//
// Operations:
//   - ConcatPaths / JoinPaths: join fragments into a normalized path
//   - HumanSize / HumanSizeWithPrecision: format byte counts with binary prefixes
//   - AvailableName: pick a name inside a directory that no existing regular file uses
//   - ParsePath / Extension: decompose a path into directory, basename, extension, stem
//
// Every operation is a stateless transformation over strings. The only
// filesystem access is the read-only existence probing in AvailableName,
// which goes through the FileSystem interface so tests can substitute
// MemFileSystem for the host filesystem.
//
// # Example Usage
//
//	target := pathkit.JoinPaths("uploads", "2026", "report.pdf")
//	label := pathkit.HumanSize(98543246875) // "91.8G"
//
//	name, err := pathkit.AvailableName("/var/uploads", "report.pdf", "")
//	if err != nil {
//	    // *pathkit.DirectoryNotFoundError: /var/uploads does not exist
//	}
//
// # Thread Safety
//
// The pure functions are safe for concurrent use. AvailableName is safe
// to call concurrently but provides no reservation: two concurrent
// callers can be handed the same name. See AvailableName for details.
package pathkit
