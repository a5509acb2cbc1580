// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines interfaces for directory traversal and file reading,
// enabling testability through an in-memory implementation while maintaining
// compatibility with the OS filesystem.
//
// Key interfaces:
//   - FileSystemProvider: Factory for creating directory instances
//   - Directory: Represents a directory that can be traversed
//   - File: Represents a directory entry with metadata and content
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Walk callbacks can prune whole subtrees by returning SkipDir for a
// directory entry; both implementations honor this identically.
package filesystem
