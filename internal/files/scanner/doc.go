// Package scanner provides discovery and pattern matching over Rust source
// trees.
//
// The scanner is responsible for:
//   - Recursively discovering .rs files, pruning build-output and
//     dependency directories during traversal
//   - Exempting files under the allowed logging module
//   - Matching the forbidden log:: pattern and mapping each match to a
//     line/column violation record
//
// The scanner is filesystem-agnostic through the
// filesystem.FileSystemProvider interface, enabling production use with the
// OS filesystem and testing with in-memory filesystems.
package scanner
