package config

import (
	"fmt"
)

const (
	MinWidth = 1
	MaxWidth = 32
)

const (
	FormatTable = "table"
	FormatPlain = "plain"
)

const (
	DefaultWidth  = 8
	DefaultFormat = FormatTable
)

type Config struct {
	// Input is a file, or a directory of numbered part files. Empty means stdin.
	Input string `mapstructure:"input"`

	// Width is the number of bits per value.
	Width int `mapstructure:"width"`
	// Count is the number of values to read, 0 reads until the end of the stream.
	Count int `mapstructure:"count"`
	// Skip is the number of whole bytes skipped before reading.
	Skip int64 `mapstructure:"skip"`

	Format string `mapstructure:"format"`
	// Rewind re-reads the values once more after a reset to the position
	// following Skip. Requires an input with mark/reset support.
	Rewind bool `mapstructure:"rewind"`
}

func (cfg *Config) Validate() error {
	if cfg.Width < MinWidth || cfg.Width > MaxWidth {
		return fmt.Errorf("invalid `Width`; expected: [%d, %d], given: %d", MinWidth, MaxWidth, cfg.Width)
	}

	if cfg.Count < 0 {
		return fmt.Errorf("invalid `Count`; expected: >= 0, given: %d", cfg.Count)
	}

	if cfg.Skip < 0 {
		return fmt.Errorf("invalid `Skip`; expected: >= 0, given: %d", cfg.Skip)
	}

	if cfg.Format != FormatTable && cfg.Format != FormatPlain {
		return fmt.Errorf("invalid `Format`; expected: %q or %q, given: %q", FormatTable, FormatPlain, cfg.Format)
	}

	return nil
}

func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Format: DefaultFormat,
	}
}
