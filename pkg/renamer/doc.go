// Package renamer walks a directory tree and renames every file whose name
// matches a wildcard pattern.
//
// The walk is pre-order: the files of a directory are processed before its
// subdirectories are entered, and each directory is listed exactly once, so
// files created by a rename are never revisited. Symbolic links are not
// followed. Renames happen in place and are reported lazily through an
// iterator; the first failure stops the walk and nothing is rolled back.
package renamer
