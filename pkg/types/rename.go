package types

import "path/filepath"

// RenamePlan is the computed rename for a single matched file.
// It lives only for the duration of that file's processing.
type RenamePlan struct {
	Dir     string
	OldName string
	NewName string
}

// OldPath returns the full path of the file before the rename
func (p RenamePlan) OldPath() string {
	return filepath.Join(p.Dir, p.OldName)
}

// NewPath returns the full path of the file after the rename
func (p RenamePlan) NewPath() string {
	return filepath.Join(p.Dir, p.NewName)
}

// Unchanged reports whether the plan would leave the name as is
func (p RenamePlan) Unchanged() bool {
	return p.OldName == p.NewName
}

// RenameResult records a completed rename.
type RenameResult struct {
	Dir     string `json:"dir"`
	OldName string `json:"old"`
	NewName string `json:"new"`
}

// ResultFromPlan converts an executed plan into its result record
func ResultFromPlan(p RenamePlan) RenameResult {
	return RenameResult(p)
}

// OldPath returns the full path the file had before the rename
func (r RenameResult) OldPath() string {
	return filepath.Join(r.Dir, r.OldName)
}

// NewPath returns the full path of the renamed file
func (r RenameResult) NewPath() string {
	return filepath.Join(r.Dir, r.NewName)
}
