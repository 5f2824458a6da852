package types

import (
	"io/fs"
)

// FS is the filesystem interface required for rename operations
type FS interface {
	Stat(name string) (fs.FileInfo, error)

	// ReadDir lists a directory sorted by filename
	ReadDir(name string) ([]fs.DirEntry, error)

	// Rename moves oldpath to newpath. Collision handling is left to the
	// implementation; the OS filesystem replaces an existing target on POSIX.
	Rename(oldpath, newpath string) error
}
