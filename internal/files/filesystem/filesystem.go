package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// SkipDir, when returned from a Walk callback for a directory entry, causes
// Walk to skip that directory's contents entirely. The traversal never
// descends into a skipped directory.
var SkipDir = fs.SkipDir

// File represents a directory entry with its metadata and content accessor.
// Directories themselves are passed through Walk as Files whose
// Info().IsDir() is true.
type File interface {
	// Path returns the absolute path to the entry
	Path() string

	// RelativePath returns the path relative to the walk root
	RelativePath() string

	// Info returns entry metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files.
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree, calling fn for each entry.
	// Entries that could not be inspected are reported as a nil File with
	// a non-nil error; fn decides whether that aborts the walk.
	// Returning SkipDir from fn for a directory prunes its subtree.
	// Any other non-nil return from fn stops the walk and is propagated.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is a factory for creating Directory instances.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)
}
