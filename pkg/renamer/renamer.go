package renamer

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/filesystem"
	"github.com/arthur-debert/renamer/pkg/logging"
	"github.com/arthur-debert/renamer/pkg/pattern"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures a Renamer
type Options struct {
	// FS defaults to the OS filesystem
	FS types.FS
	// CaptureMode defaults to pattern.DefaultCaptureMode
	CaptureMode pattern.CaptureMode
}

// Renamer performs pattern based renames over a types.FS
type Renamer struct {
	fs     types.FS
	mode   pattern.CaptureMode
	logger zerolog.Logger
}

// New creates a Renamer
func New(opts Options) *Renamer {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	mode := opts.CaptureMode
	if mode == "" {
		mode = pattern.DefaultCaptureMode
	}
	return &Renamer{
		fs:     fsys,
		mode:   mode,
		logger: logging.GetLogger("renamer"),
	}
}

// Rename renames every file under directory matching pattern1 using the OS
// filesystem and the default capture mode.
func Rename(directory, pattern1, pattern2 string) iter.Seq2[types.RenameResult, error] {
	return New(Options{}).Rename(directory, pattern1, pattern2)
}

// Rename returns a sequence that, as it is consumed, walks directory and
// renames each file matching pattern1 to pattern2 with its wildcards expanded.
// Each successful rename is yielded as soon as it completes. An error is
// yielded at most once and ends the sequence; renames already done stay done.
func (r *Renamer) Rename(directory, pattern1, pattern2 string) iter.Seq2[types.RenameResult, error] {
	return func(yield func(types.RenameResult, error) bool) {
		rule, err := pattern.NewRule(pattern1, pattern2, r.mode)
		if err != nil {
			yield(types.RenameResult{}, err)
			return
		}

		if err := ValidateDirectory(r.fs, directory); err != nil {
			yield(types.RenameResult{}, err)
			return
		}

		r.logger.Debug().
			Str("directory", directory).
			Str("pattern1", rule.Search().String()).
			Str("pattern2", rule.Replacement()).
			Str("expression", rule.Search().Expression()).
			Int("wildcards", rule.Search().Wildcards()).
			Str("captureMode", string(rule.Mode())).
			Msg("Compiled rename rule")

		done := logging.LogOperationStart(r.logger, "rename")
		defer done()

		r.walk(directory, rule, yield)
	}
}

// RenameAll consumes the whole sequence and returns the completed renames.
// On failure the renames performed before the error are returned with it.
func (r *Renamer) RenameAll(directory, pattern1, pattern2 string) ([]types.RenameResult, error) {
	var results []types.RenameResult
	for result, err := range r.Rename(directory, pattern1, pattern2) {
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// walk processes one directory level and then recurses into its
// subdirectories. It returns false once iteration must stop.
func (r *Renamer) walk(dir string, rule *pattern.Rule, yield func(types.RenameResult, error) bool) bool {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		yield(types.RenameResult{}, errors.Wrapf(err, errors.ErrWalkFailure, "failed to read directory %s", dir).
			WithDetail("dir", dir))
		return false
	}

	r.logger.Trace().Str("dir", dir).Int("entries", len(entries)).Msg("Visiting directory")

	var subdirs []string
	for _, entry := range entries {
		switch r.classify(dir, entry) {
		case entryDir:
			subdirs = append(subdirs, entry.Name())
			continue
		case entrySkip:
			continue
		}

		plan, matched := planFor(dir, entry.Name(), rule)
		if !matched {
			continue
		}

		result, err := r.apply(plan)
		if err != nil {
			yield(types.RenameResult{}, err)
			return false
		}
		if !yield(result, nil) {
			return false
		}
	}

	for _, name := range subdirs {
		if !r.walk(filepath.Join(dir, name), rule, yield) {
			return false
		}
	}
	return true
}

type entryKind int

const (
	entryFile entryKind = iota
	entryDir
	entrySkip
)

// classify decides how the walk treats an entry. Links are never followed:
// a link to a directory is skipped, anything else is a file.
func (r *Renamer) classify(dir string, entry fs.DirEntry) entryKind {
	if entry.IsDir() {
		return entryDir
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return entryFile
	}

	info, err := r.fs.Stat(filepath.Join(dir, entry.Name()))
	if err == nil && info.IsDir() {
		r.logger.Trace().
			Str("dir", dir).
			Str("name", entry.Name()).
			Msg("Skipping symlink to directory")
		return entrySkip
	}
	return entryFile
}

// planFor computes the rename for one file, if it matches
func planFor(dir, name string, rule *pattern.Rule) (types.RenamePlan, bool) {
	newName, ok := rule.Apply(name)
	if !ok {
		return types.RenamePlan{}, false
	}
	return types.RenamePlan{Dir: dir, OldName: name, NewName: newName}, true
}

// apply executes a plan on the filesystem
func (r *Renamer) apply(plan types.RenamePlan) (types.RenameResult, error) {
	if err := validateName(plan.NewName); err != nil {
		return types.RenameResult{}, errors.Wrapf(err, errors.ErrRenameFailure,
			"cannot rename %s to %q", plan.OldName, plan.NewName).
			WithDetail("dir", plan.Dir).
			WithDetail("old", plan.OldName).
			WithDetail("new", plan.NewName)
	}

	if plan.Unchanged() {
		r.logger.Debug().Str("dir", plan.Dir).Str("name", plan.OldName).Msg("Name already matches target")
		return types.ResultFromPlan(plan), nil
	}

	if err := r.fs.Rename(plan.OldPath(), plan.NewPath()); err != nil {
		return types.RenameResult{}, errors.Wrapf(err, errors.ErrRenameFailure,
			"failed to rename %s to %s", plan.OldName, plan.NewName).
			WithDetail("dir", plan.Dir).
			WithDetail("old", plan.OldName).
			WithDetail("new", plan.NewName)
	}

	r.logger.Info().
		Str("dir", plan.Dir).
		Str("old", plan.OldName).
		Str("new", plan.NewName).
		Msg("Renamed file")

	return types.ResultFromPlan(plan), nil
}

// validateName rejects targets that would leave the directory or cannot
// name a file at all.
func validateName(name string) error {
	switch {
	case name == "":
		return errors.New(errors.ErrInvalidName, "target name is empty")
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidName, "target name %q is reserved", name)
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator):
		return errors.Newf(errors.ErrInvalidName, "target name %q contains a path separator", name)
	}
	return nil
}
