package logcheck

import (
	"path/filepath"
	"strings"
)

// IsScanCandidate reports whether path names a source file subject to the
// policy, based on its extension alone.
func IsScanCandidate(path string) bool {
	return filepath.Ext(path) == SourceFileExtension
}

// IsAllowedLocation reports whether path lies inside the allowed logging
// module. The check is plain string containment on the slash-normalized
// path, with no canonicalization, so it matches both relative and absolute
// path forms.
func IsAllowedLocation(path string) bool {
	s := filepath.ToSlash(path)
	return strings.Contains(s, AllowedModulePath) || strings.HasSuffix(s, AllowedModuleFile)
}

// IsExcludedDir reports whether name is a directory pruned entirely during
// traversal. Pruned directories are never descended into.
func IsExcludedDir(name string) bool {
	switch name {
	case "target", ".git", "node_modules":
		return true
	default:
		return false
	}
}
