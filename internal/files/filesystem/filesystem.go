package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// WalkFunc is called for every regular file found by Walk.
// Returning an error stops the walk and is returned from Walk.
type WalkFunc func(path string, info FileInfo) error

// FileSystem is the set of operations the pickle store needs.
// Missing paths report errors matching fs.ErrNotExist.
type FileSystem interface {
	// ReadFile reads a whole file.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at path, creating parent directories.
	WriteFile(path string, data []byte) error

	// Remove deletes a single file.
	Remove(path string) error

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// Walk visits every regular file below root in lexical order.
	Walk(root string, fn WalkFunc) error
}
