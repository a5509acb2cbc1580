package scanner

import (
	"fmt"
	"regexp"
	"time"

	"github.com/clash-verge-rev/clash-verge-logging-check/internal/files/filesystem"
	"github.com/clash-verge-rev/clash-verge-logging-check/internal/sourcemap"
	"github.com/clash-verge-rev/clash-verge-logging-check/pkg/logcheck"
)

// forbiddenRe is compiled once at package load. The pattern is a fixed
// constant, so a compilation failure is a programming error and surfaces
// before any scanning begins.
var forbiddenRe = regexp.MustCompile(logcheck.ForbiddenPattern)

// Scanner walks a directory tree and collects every forbidden logging call
// found outside the allowed module. A Scanner holds no per-run state; all
// results are returned through ScanResult.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	log        logcheck.Logger
}

// NewScanner creates a scanner backed by the OS filesystem.
// Panics if log is nil.
func NewScanner(log logcheck.Logger) *Scanner {
	return NewScannerWithFS(log, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if log or fsProvider is nil.
func NewScannerWithFS(log logcheck.Logger, fsProvider filesystem.FileSystemProvider) *Scanner {
	if log == nil {
		panic("log cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
		log:        log,
	}
}

// ScanDirectory recursively scans the tree rooted at root and returns every
// violation in traversal order (file discovery order, then in-file match
// order), along with the candidate-file count and the elapsed wall time.
//
// Excluded directories (target, .git, node_modules) are pruned, never
// descended into. Unreadable directory entries are skipped so a handful of
// transient failures cannot abort an otherwise useful scan. A failed read
// of a candidate file, however, aborts the whole run: the audit must never
// report a tree clean when part of it went unchecked.
func (s *Scanner) ScanDirectory(root string) (logcheck.ScanResult, error) {
	start := time.Now()

	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return logcheck.ScanResult{}, fmt.Errorf("%w: failed to open scan root %s: %v", logcheck.ErrScanFailed, root, err)
	}

	var result logcheck.ScanResult

	err = dir.Walk(func(file filesystem.File, walkErr error) error {
		if walkErr != nil {
			s.log.Verbose("skipping unreadable entry: %v", walkErr)
			return nil
		}

		if file.Info().IsDir() {
			if logcheck.IsExcludedDir(file.Info().Name()) {
				s.log.Verbose("pruning %s", file.Path())
				return filesystem.SkipDir
			}
			return nil
		}

		if !logcheck.IsScanCandidate(file.Path()) {
			return nil
		}

		// Exempt files still count as scanned.
		result.FilesScanned++

		if logcheck.IsAllowedLocation(file.Path()) {
			s.log.Verbose("exempt from policy: %s", file.Path())
			return nil
		}

		content, readErr := file.ReadContent()
		if readErr != nil {
			return fmt.Errorf("%w: failed to read file %s: %v", logcheck.ErrScanFailed, file.Path(), readErr)
		}

		result.Violations = append(result.Violations, matchFile(file.Path(), string(content))...)
		return nil
	})
	if err != nil {
		return logcheck.ScanResult{}, err
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// matchFile runs the forbidden pattern over a file's full text and maps
// each non-overlapping match to a Violation, preserving in-file order.
func matchFile(path, text string) []logcheck.Violation {
	var violations []logcheck.Violation
	for _, m := range forbiddenRe.FindAllStringIndex(text, -1) {
		pos := sourcemap.Locate(text, m[0], m[1])
		violations = append(violations, logcheck.Violation{
			File:        path,
			LineNumber:  pos.Line,
			ColumnStart: pos.ColumnStart,
			ColumnEnd:   pos.ColumnEnd,
			LineText:    pos.LineText,
		})
	}
	return violations
}

// Verify Scanner implements the interface at compile time
var _ logcheck.FileScanner = (*Scanner)(nil)
