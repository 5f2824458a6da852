package renamer

import (
	"os"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/types"
)

// ValidateDirectory checks that directory exists and is a directory
func ValidateDirectory(fsys types.FS, directory string) error {
	info, err := fsys.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(err, errors.ErrInvalidDirectory, "directory %s does not exist", directory).
				WithDetail("dir", directory)
		}
		return errors.Wrapf(err, errors.ErrInvalidDirectory, "cannot access directory %s", directory).
			WithDetail("dir", directory)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidDirectory, "%s is not a directory", directory).
			WithDetail("dir", directory)
	}
	return nil
}
