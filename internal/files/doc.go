// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations
//     (OS and in-memory)
//   - scanner: Source file discovery and forbidden-pattern matching
//
// # Usage
//
//	import (
//	    "github.com/clash-verge-rev/clash-verge-logging-check/internal/files/scanner"
//	    "github.com/clash-verge-rev/clash-verge-logging-check/internal/logging"
//	)
//
//	s := scanner.NewScanner(logging.NewNullLogger())
//	result, err := s.ScanDirectory(".")
package files
