// Package filesystem provides filesystem implementations for renamer.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem used by the CLI and an afero-backed one used by
// tests that should not touch the disk.
package filesystem
