package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File for the in-memory filesystem
type memoryFile struct {
	absPath    string
	relPath    string
	content    []byte
	unreadable bool
	info       fs.FileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	if f.unreadable {
		return nil, fmt.Errorf("read %s: %w", f.absPath, fs.ErrPermission)
	}
	return f.content, nil
}

// memoryDirectory implements Directory for the in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

// Walk visits entries in sorted path order for deterministic traversal,
// honoring SkipDir pruning the same way the OS implementation does.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	var skipPrefix string
	for _, entry := range entries {
		if skipPrefix != "" && strings.HasPrefix(entry.absPath, skipPrefix) {
			continue
		}

		err := fn(entry, nil)
		if err == nil {
			continue
		}
		if errors.Is(err, SkipDir) {
			if entry.info.IsDir() {
				skipPrefix = entry.absPath + "/"
			}
			continue
		}
		return err
	}
	return nil
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Parent directories are created implicitly when files are added.
type MemoryFileSystem struct {
	root  string
	files map[string]*memoryFile // absolute path -> entry
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
// Paths use forward slashes regardless of host platform.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	mfs := &MemoryFileSystem{
		root:  root,
		files: make(map[string]*memoryFile),
	}
	mfs.addDir(root)
	return mfs
}

// AddFile adds a file with the given content, creating parent directories
// as needed. Relative paths are resolved against the filesystem root.
func (mfs *MemoryFileSystem) AddFile(filePath, content string) {
	mfs.add(filePath, []byte(content), false)
}

// AddUnreadableFile adds a file whose ReadContent always fails with a
// permission error. Used to exercise read-failure handling in tests.
func (mfs *MemoryFileSystem) AddUnreadableFile(filePath string) {
	mfs.add(filePath, nil, true)
}

// AddDir adds an empty directory, creating parents as needed.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.addDir(mfs.abs(dirPath))
}

func (mfs *MemoryFileSystem) Open(p string) (Directory, error) {
	absPath := mfs.abs(p)
	entry, ok := mfs.files[absPath]
	if !ok {
		return nil, fmt.Errorf("failed to access path: %s: %w", p, fs.ErrNotExist)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", p)
	}
	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) rel(absPath string) string {
	if absPath == mfs.root {
		return "."
	}
	return strings.TrimPrefix(absPath, mfs.root+"/")
}

func (mfs *MemoryFileSystem) addDir(absPath string) {
	if _, ok := mfs.files[absPath]; ok {
		return
	}
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.rel(absPath),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0o755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
	if absPath == mfs.root {
		return
	}
	if parent := path.Dir(absPath); parent != absPath {
		mfs.addDir(parent)
	}
}

func (mfs *MemoryFileSystem) add(filePath string, content []byte, unreadable bool) {
	absPath := mfs.abs(filePath)
	mfs.addDir(path.Dir(absPath))
	mfs.files[absPath] = &memoryFile{
		absPath:    absPath,
		relPath:    mfs.rel(absPath),
		content:    content,
		unreadable: unreadable,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0o644,
			modTime: time.Now(),
			isDir:   false,
		},
	}
}

// entriesUnder returns every entry strictly below dir.
func (mfs *MemoryFileSystem) entriesUnder(dir string) []*memoryFile {
	prefix := dir
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	var entries []*memoryFile
	for absPath, entry := range mfs.files {
		if strings.HasPrefix(absPath, prefix) {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Verify implementations at compile time
var _ FileSystemProvider = (*MemoryFileSystem)(nil)
