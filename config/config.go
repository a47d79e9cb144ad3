// Package config holds the editing options, read from a TOML file over the defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/ge-editor/tecore/pkg_error"
)

type Config struct {
	// TabSize is the number of spaces the Tab key inserts and the tab stop
	// width used when measuring tab characters.
	TabSize int `toml:"tab_size"`
	// Padding is the horizontal margin in pixels kept around the caret.
	Padding int `toml:"padding"`
	// BufferZone is the number of lines kept above the caret when scrolling up.
	BufferZone int `toml:"buffer_zone"`
	// CellWidth and LineHeight are the pixel size of a character cell.
	CellWidth  int `toml:"cell_width"`
	LineHeight int `toml:"line_height"`
	// AmbiguousWide measures East Asian ambiguous characters as two cells.
	AmbiguousWide bool `toml:"ambiguous_wide"`
	// WheelLines is the number of lines scrolled per wheel notch.
	WheelLines int `toml:"wheel_lines"`
	// HistoryLimit bounds the number of undo entries, 0 for no bound.
	HistoryLimit int `toml:"history_limit"`
	// Linefeed is written by new documents: "LF", "CRLF" or "CR".
	Linefeed string `toml:"linefeed"`
	// Backup copies the file to path.~N~ before overwriting it.
	Backup bool `toml:"backup"`

	Search Search `toml:"search"`
}

type Search struct {
	CaseSensitive bool `toml:"case_sensitive"`
	Regexp        bool `toml:"regexp"`
}

func Default() Config {
	return Config{
		TabSize:    4,
		Padding:    5,
		BufferZone: 2,
		CellWidth:  1,
		LineHeight: 1,
		WheelLines: 3,
		Linefeed:   "LF",
		Search: Search{
			CaseSensitive: true,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("%w: %w", pkg_error.ErrConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Default(), fmt.Errorf("%w: unknown key %q", pkg_error.ErrConfig, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate reports every out of range option.
func (c Config) Validate() (errs error) {
	positive := []struct {
		name  string
		value int
	}{
		{"tab_size", c.TabSize},
		{"cell_width", c.CellWidth},
		{"line_height", c.LineHeight},
		{"wheel_lines", c.WheelLines},
	}
	for _, p := range positive {
		if p.value < 1 {
			errs = errors.Join(errs, fmt.Errorf("%w: %s must be at least 1, got %d", pkg_error.ErrConfig, p.name, p.value))
		}
	}
	if c.Padding < 0 || c.BufferZone < 0 || c.HistoryLimit < 0 {
		errs = errors.Join(errs, fmt.Errorf("%w: padding, buffer_zone and history_limit must not be negative", pkg_error.ErrConfig))
	}
	switch c.Linefeed {
	case "LF", "CRLF", "CR":
	default:
		errs = errors.Join(errs, fmt.Errorf("%w: linefeed must be LF, CRLF or CR, got %q", pkg_error.ErrConfig, c.Linefeed))
	}
	return errs
}
