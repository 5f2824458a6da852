// Package testutil provides utilities for testing renamer components.
//
// Helpers come in two flavours: the OS-backed ones (CreateFile, CreateDir,
// Snapshot, ...) work on real temporary directories, while NewTestFS and
// the FS* helpers work on an in-memory filesystem for fast, isolated tests
// of code that takes a types.FS.
package testutil
