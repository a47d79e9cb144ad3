package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ge-editor/tecore/pkg_error"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "te.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tab_size = 8
cell_width = 9
line_height = 18

[search]
case_sensitive = false
regexp = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TabSize != 8 || cfg.CellWidth != 9 || cfg.LineHeight != 18 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Search.CaseSensitive || !cfg.Search.Regexp {
		t.Errorf("search = %+v", cfg.Search)
	}
	if cfg.Padding != 5 || cfg.BufferZone != 2 || cfg.WheelLines != 3 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "tab_size = "},
		{"unknown key", "tabsize = 4"},
		{"invalid value", "tab_size = 0"},
		{"invalid linefeed", `linefeed = "NL"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, pkg_error.ErrConfig) {
				t.Fatalf("err = %v, want ErrConfig", err)
			}
			if cfg != Default() {
				t.Errorf("cfg = %+v, want defaults", cfg)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, pkg_error.ErrConfig) {
		t.Errorf("missing file err = %v", err)
	}
}
