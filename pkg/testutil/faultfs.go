package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/renamer/pkg/types"
)

// FaultFS wraps a types.FS and fails chosen operations on chosen paths.
// It also counts the calls it forwards.
type FaultFS struct {
	types.FS

	mu          sync.Mutex
	renameErrs  map[string]error
	readDirErrs map[string]error

	renames  int
	readDirs int
}

// NewFaultFS wraps fsys
func NewFaultFS(fsys types.FS) *FaultFS {
	return &FaultFS{
		FS:          fsys,
		renameErrs:  make(map[string]error),
		readDirErrs: make(map[string]error),
	}
}

// WithRenameError makes renaming the file at path return err
func (f *FaultFS) WithRenameError(path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.renameErrs[filepath.Clean(path)] = err
	return f
}

// WithReadDirError makes listing the directory at path return err
func (f *FaultFS) WithReadDirError(path string, err error) *FaultFS {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.readDirErrs[filepath.Clean(path)] = err
	return f
}

// Rename fails for configured source paths and forwards otherwise
func (f *FaultFS) Rename(oldpath, newpath string) error {
	f.mu.Lock()
	f.renames++
	err, ok := f.renameErrs[filepath.Clean(oldpath)]
	f.mu.Unlock()

	if ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: err}
	}
	return f.FS.Rename(oldpath, newpath)
}

// ReadDir fails for configured directories and forwards otherwise
func (f *FaultFS) ReadDir(name string) ([]fs.DirEntry, error) {
	f.mu.Lock()
	f.readDirs++
	err, ok := f.readDirErrs[filepath.Clean(name)]
	f.mu.Unlock()

	if ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	return f.FS.ReadDir(name)
}

// Stats returns how many renames and directory listings were attempted
func (f *FaultFS) Stats() (renames, readDirs int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.renames, f.readDirs
}
