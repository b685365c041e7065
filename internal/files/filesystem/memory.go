package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
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

type memoryFile struct {
	content []byte
	modTime time.Time
}

// MemoryFileSystem implements FileSystem for in-memory testing.
// Directories exist implicitly as prefixes of stored files.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryFile
	now   func() time.Time
}

// NewMemoryFileSystem creates a new empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files: make(map[string]*memoryFile),
		now:   time.Now,
	}
}

// clean normalizes p to forward slashes (virtual filesystem convention).
func clean(p string) string {
	return path.Clean(filepath.ToSlash(p))
}

// AddFileWithTime adds a file with a specific modification time.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content []byte, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.files[clean(filePath)] = &memoryFile{
		content: append([]byte(nil), content...),
		modTime: modTime,
	}
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	file, exists := mfs.files[clean(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), file.content...), nil
}

func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	p := clean(filePath)
	if mfs.isDir(p) {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	mfs.AddFileWithTime(p, data, mfs.now())
	return nil
}

func (mfs *MemoryFileSystem) Remove(filePath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	p := clean(filePath)
	if _, exists := mfs.files[p]; !exists {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	delete(mfs.files, p)
	return nil
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	p := clean(statPath)

	mfs.mu.RLock()
	file, exists := mfs.files[p]
	mfs.mu.RUnlock()

	if exists {
		return &memoryFileInfo{
			name:    path.Base(p),
			size:    int64(len(file.content)),
			mode:    0o644,
			modTime: file.modTime,
		}, nil
	}
	if mfs.isDir(p) {
		return &memoryFileInfo{
			name:  path.Base(p),
			mode:  0o755 | fs.ModeDir,
			isDir: true,
		}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
}

func (mfs *MemoryFileSystem) Walk(root string, fn WalkFunc) error {
	root = clean(root)
	if _, err := mfs.Stat(root); err != nil {
		return err
	}

	mfs.mu.RLock()
	var paths []string
	for p := range mfs.files {
		if p == root || strings.HasPrefix(p, root+"/") || root == "/" {
			paths = append(paths, p)
		}
	}
	mfs.mu.RUnlock()

	// Sort by path for deterministic order
	sort.Strings(paths)

	for _, p := range paths {
		info, err := mfs.Stat(p)
		if err != nil {
			// removed by an earlier callback
			continue
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", p, r)
				}
			}()
			callbackErr = fn(p, info)
		}()

		if callbackErr != nil {
			return callbackErr
		}
	}
	return nil
}

func (mfs *MemoryFileSystem) isDir(p string) bool {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	for filePath := range mfs.files {
		if strings.HasPrefix(filePath, p+"/") || (p == "/" && strings.HasPrefix(filePath, "/")) {
			return true
		}
	}
	return false
}
