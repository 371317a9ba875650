package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Input.Path != "chats.json" {
		t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, "chats.json")
	}
	if cfg.Output.Dir != "" {
		t.Errorf("Output.Dir = %q, want empty", cfg.Output.Dir)
	}
	if cfg.Output.Name != "output" {
		t.Errorf("Output.Name = %q, want %q", cfg.Output.Name, "output")
	}
	if cfg.Images.Dir != "images" {
		t.Errorf("Images.Dir = %q, want %q", cfg.Images.Dir, "images")
	}
	if cfg.Page.Size != "letter" || cfg.Page.Orientation != "portrait" {
		t.Errorf("Page = %+v, want letter portrait", cfg.Page)
	}
	if cfg.Logging.Level != LogNormal {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, LogNormal)
	}
	if cfg.Layout != (LayoutConfig{}) {
		t.Errorf("Layout = %+v, want zero overrides", cfg.Layout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{name: "empty value is valid", value: "", maxLength: 10},
		{name: "value at limit is valid", value: "abcdefghij", maxLength: 10},
		{name: "value over limit", value: "abcdefghijk", maxLength: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "empty config is valid", mutate: func(c *Config) { *c = Config{} }},
		{name: "a4 landscape", mutate: func(c *Config) { c.Page = PageConfig{Size: "A4", Orientation: "Landscape"} }},
		{name: "debug logging", mutate: func(c *Config) { c.Logging.Level = LogDebug }},
		{name: "layout overrides", mutate: func(c *Config) { c.Layout = LayoutConfig{LeftMargin: 36, WrapWidth: 60, MaxPagesPerDocument: 10} }},
		{name: "auto name", mutate: func(c *Config) { c.Output.Name = "auto" }},
		{
			name:    "input path too long",
			mutate:  func(c *Config) { c.Input.Path = strings.Repeat("a", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "output name too long",
			mutate:  func(c *Config) { c.Output.Name = strings.Repeat("a", MaxNameLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "output name with separator",
			mutate:  func(c *Config) { c.Output.Name = "sub/output" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "jpeg quality above range",
			mutate:  func(c *Config) { c.Images.JPEGQuality = 101 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown page size",
			mutate:  func(c *Config) { c.Page.Size = "tabloid" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "page size too long",
			mutate:  func(c *Config) { c.Page.Size = "extra-large-size" },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "unknown orientation",
			mutate:  func(c *Config) { c.Page.Orientation = "upright" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative margin",
			mutate:  func(c *Config) { c.Layout.TopMargin = -5 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative wrap width",
			mutate:  func(c *Config) { c.Layout.WrapWidth = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative page limit",
			mutate:  func(c *Config) { c.Layout.MaxPagesPerDocument = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "unknown logging level",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	writeConfig := func(t *testing.T, dir, name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}
		return path
	}

	t.Run("empty name returns ErrEmptyConfigName", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file path loads config", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "test.yaml", `input:
  path: "export/room.json"
output:
  dir: "pdf"
  name: "room"
page:
  size: "a4"
layout:
  wrapWidth: 60
  maxPagesPerDocument: 20
logging:
  level: "debug"
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Path != "export/room.json" {
			t.Errorf("Input.Path = %q", cfg.Input.Path)
		}
		if cfg.Output.Dir != "pdf" || cfg.Output.Name != "room" {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Page.Size != "a4" {
			t.Errorf("Page.Size = %q, want a4", cfg.Page.Size)
		}
		if cfg.Layout.WrapWidth != 60 || cfg.Layout.MaxPagesPerDocument != 20 {
			t.Errorf("Layout = %+v", cfg.Layout)
		}
		if cfg.Logging.Level != LogDebug {
			t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
		}
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "partial.yaml", "page:\n  orientation: landscape\n")

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Page.Orientation != "landscape" {
			t.Errorf("Page.Orientation = %q, want landscape", cfg.Page.Orientation)
		}
		if cfg.Page.Size != "letter" || cfg.Images.Dir != "images" || cfg.Output.Name != "output" {
			t.Errorf("defaults lost: %+v", cfg)
		}
	})

	t.Run("nonexistent file path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "invalid.yaml", "page: [unclosed")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field returns ErrConfigParse in strict mode", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "unknown.yaml", "page:\n  colour: red\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty file returns ErrConfigParse", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "empty.yaml", "")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value is rejected after parsing", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yaml", "logging:\n  level: loud\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("name is searched in the working directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "work.yml", "output:\n  name: work\n")
		chdir(t, dir)

		cfg, err := LoadConfig("work")
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Name != "work" {
			t.Errorf("Output.Name = %q, want work", cfg.Output.Name)
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		chdir(t, t.TempDir())

		_, err := LoadConfig("nothing-here")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nothing-here.yaml") {
			t.Errorf("error = %q, want tried paths listed", err)
		}
	})
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup, like testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
