package logcheck

// FileScanner produces the complete set of Violations for a directory tree.
type FileScanner interface {
	// ScanDirectory recursively scans the tree rooted at root and returns
	// every violation in deterministic traversal order. A failed read of a
	// candidate file aborts the whole scan.
	ScanDirectory(root string) (ScanResult, error)
}
