package testutil

import (
	"io/fs"
	"path"
	"testing"

	"github.com/arthur-debert/renamer/pkg/filesystem"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/spf13/afero"
)

// NewTestFS creates an in-memory filesystem for testing. The afero.Fs is
// used to seed and inspect files, the types.FS is what code under test gets.
func NewTestFS() (afero.Fs, types.FS) {
	mem := afero.NewMemMapFs()
	return mem, filesystem.NewAferoFS(mem)
}

// FSCreateFiles writes files into mem below root. Keys are slash separated
// relative paths.
func FSCreateFiles(t *testing.T, mem afero.Fs, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		full := path.Join(root, name)
		if err := mem.MkdirAll(path.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", full, err)
		}
		if err := afero.WriteFile(mem, full, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", full, err)
		}
	}
}

// FSSnapshot returns every file under root in mem, keyed by relative
// slash separated path.
func FSSnapshot(t *testing.T, mem afero.Fs, root string) map[string]string {
	t.Helper()

	files := make(map[string]string)
	var walk func(dir, rel string)
	walk = func(dir, rel string) {
		entries, err := afero.ReadDir(mem, dir)
		if err != nil {
			t.Fatalf("Failed to read %s: %v", dir, err)
		}
		for _, entry := range entries {
			full := path.Join(dir, entry.Name())
			name := path.Join(rel, entry.Name())
			if entry.IsDir() {
				walk(full, name)
				continue
			}
			if entry.Mode()&fs.ModeSymlink != 0 {
				continue
			}
			content, err := afero.ReadFile(mem, full)
			if err != nil {
				t.Fatalf("Failed to read %s: %v", full, err)
			}
			files[name] = string(content)
		}
	}
	walk(root, "")
	return files
}
