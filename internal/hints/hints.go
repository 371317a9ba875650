// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// userConfigMarker identifies the per-user config location among searched paths.
var userConfigMarker = filepath.Join(".config", "go-chat2pdf")

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in ~/.config/go-chat2pdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, userConfigMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns a hint for a missing chat export.
func ForInputNotFound() string {
	return format("pass the export as an argument or set input.path in the config")
}

// ForInvalidInput returns a hint showing the expected export shape.
func ForInvalidInput() string {
	return format(`expected a JSON list: [{"author": "...", "timestamp": "...", "content": {"Message": "..."}}]`)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForImageDirectory returns a hint for an image directory that cannot be listed.
func ForImageDirectory() string {
	return format("image references resolve against --images (default: images)")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
