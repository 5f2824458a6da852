// Package types holds the small set of shared types used across renamer:
// the filesystem abstraction and the per-file rename records.
package types
