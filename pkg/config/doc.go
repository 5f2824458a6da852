// Package config handles configuration management for renamer.
// It layers embedded defaults, the user's config file, RENAMER_ environment
// variables and command-line overrides, in that order.
package config
