package config

import (
	"github.com/arthur-debert/renamer/pkg/pattern"
	"github.com/arthur-debert/renamer/pkg/ui"
)

// Config is the effective renamer configuration
type Config struct {
	Output  Output  `koanf:"output" toml:"output"`
	Pattern Pattern `koanf:"pattern" toml:"pattern"`
	Log     Log     `koanf:"log" toml:"log"`
}

// Output controls how results are printed
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Pattern controls wildcard expansion
type Pattern struct {
	Captures pattern.CaptureMode `koanf:"captures" toml:"captures"`
}

// Log controls the log file
type Log struct {
	File bool `koanf:"file" toml:"file"`
}

// Format returns the parsed output format. Load has already validated it.
func (c *Config) Format() ui.Format {
	f, err := ui.ParseFormat(c.Output.Format)
	if err != nil {
		return ui.FormatAuto
	}
	return f
}

// Validate checks values that the decoder cannot
func (c *Config) Validate() error {
	if _, err := ui.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if _, err := pattern.ParseCaptureMode(string(c.Pattern.Captures)); err != nil {
		return err
	}
	return nil
}
