package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/hints"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxNameLength        = 255  // NAME_MAX on most file systems
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
)

// Logging levels.
const (
	LogNone   = "none"
	LogNormal = "normal"
	LogDebug  = "debug"
)

// appDirName is the directory under the user config dir searched for configs.
const appDirName = "go-chat2pdf"

// Config holds all configuration for a render run.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Images  ImagesConfig  `yaml:"images"`
	Page    PageConfig    `yaml:"page"`
	Layout  LayoutConfig  `yaml:"layout"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig defines the chat export to read.
type InputConfig struct {
	Path string `yaml:"path"` // JSON chat export (default: chats.json)
}

// OutputConfig defines where documents are written.
type OutputConfig struct {
	Dir  string `yaml:"dir"`  // Empty = working directory
	Name string `yaml:"name"` // File stem (default: output), "auto" = from input file name
}

// ImagesConfig defines where image references are resolved.
type ImagesConfig struct {
	Dir         string `yaml:"dir"`         // default: images
	JPEGQuality int    `yaml:"jpegQuality"` // 1-100, 0 = default
}

// PageConfig defines the page format.
type PageConfig struct {
	Size        string `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
}

// LayoutConfig overrides layout constants. Zero values keep the defaults.
type LayoutConfig struct {
	LeftMargin          float64 `yaml:"leftMargin"`
	TopMargin           float64 `yaml:"topMargin"`
	BottomMargin        float64 `yaml:"bottomMargin"`
	TextLeading         float64 `yaml:"textLeading"`
	ImagePadding        float64 `yaml:"imagePadding"`
	MaxImageWidth       float64 `yaml:"maxImageWidth"`
	MaxImageHeight      float64 `yaml:"maxImageHeight"`
	WrapWidth           int     `yaml:"wrapWidth"`
	MaxPagesPerDocument int     `yaml:"maxPagesPerDocument"`
}

// LoggingConfig defines console logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // "none", "normal", "debug" (default: "normal")
}

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for callers who build
// a Config by hand.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.path", c.Input.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.name", c.Output.Name, MaxNameLength); err != nil {
		return err
	}
	if c.Output.Name != "" {
		if err := fileutil.ValidateBaseName(c.Output.Name); err != nil {
			return fmt.Errorf("%w: output.name: %v", ErrInvalidValue, err)
		}
	}
	if err := validateFieldLength("images.dir", c.Images.Dir, MaxPathLength); err != nil {
		return err
	}
	if c.Images.JPEGQuality < 0 || c.Images.JPEGQuality > 100 {
		return fmt.Errorf("%w: images.jpegQuality: must be between 0 and 100, got %d", ErrInvalidValue, c.Images.JPEGQuality)
	}

	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if c.Page.Size != "" {
		switch strings.ToLower(c.Page.Size) {
		case "letter", "a4", "legal":
			// valid
		default:
			return fmt.Errorf("%w: page.size %q (must be letter, a4, or legal)", ErrInvalidValue, c.Page.Size)
		}
	}
	if c.Page.Orientation != "" {
		switch strings.ToLower(c.Page.Orientation) {
		case "portrait", "landscape":
			// valid
		default:
			return fmt.Errorf("%w: page.orientation %q (must be portrait or landscape)", ErrInvalidValue, c.Page.Orientation)
		}
	}

	l := c.Layout
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"layout.leftMargin", l.LeftMargin},
		{"layout.topMargin", l.TopMargin},
		{"layout.bottomMargin", l.BottomMargin},
		{"layout.textLeading", l.TextLeading},
		{"layout.imagePadding", l.ImagePadding},
		{"layout.maxImageWidth", l.MaxImageWidth},
		{"layout.maxImageHeight", l.MaxImageHeight},
	} {
		if f.value < 0 {
			return fmt.Errorf("%w: %s: must not be negative, got %.2f", ErrInvalidValue, f.name, f.value)
		}
	}
	if l.WrapWidth < 0 {
		return fmt.Errorf("%w: layout.wrapWidth: must not be negative, got %d", ErrInvalidValue, l.WrapWidth)
	}
	if l.MaxPagesPerDocument < 0 {
		return fmt.Errorf("%w: layout.maxPagesPerDocument: must not be negative, got %d", ErrInvalidValue, l.MaxPagesPerDocument)
	}

	switch c.Logging.Level {
	case "", LogNone, LogNormal, LogDebug:
		// valid
	default:
		return fmt.Errorf("%w: logging.level %q (must be none, normal, or debug)", ErrInvalidValue, c.Logging.Level)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration of a plain run: chats.json in,
// output.pdf out, images from ./images.
func DefaultConfig() *Config {
	return &Config{
		Input:   InputConfig{Path: "chats.json"},
		Output:  OutputConfig{Dir: "", Name: "output"},
		Images:  ImagesConfig{Dir: "images"},
		Page:    PageConfig{Size: "letter", Orientation: "portrait"},
		Logging: LoggingConfig{Level: LogNormal},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values missing from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := unmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-chat2pdf/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s%s", ErrConfigNotFound, strings.Join(triedPaths, ", "), hints.ForConfigNotFound(triedPaths))
}
