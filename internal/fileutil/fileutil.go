// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrBaseNameEmpty         = errors.New("base name cannot be empty")
	ErrBaseNamePathTraversal = errors.New("base name contains path separator or null byte")
)

// DirPermissions is used for output directories created on demand.
const DirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// DocumentExt is the extension of every output document.
const DocumentExt = ".pdf"

// ValidateBaseName checks that base can be used as an output file name
// stem without escaping the output directory.
func ValidateBaseName(base string) error {
	if base == "" || base == "." || base == ".." {
		return ErrBaseNameEmpty
	}
	if strings.ContainsAny(base, "/\\\x00") {
		return ErrBaseNamePathTraversal
	}
	return nil
}

// OutputPath returns the path of the index-th output document (1-based).
// The first document is "<base>.pdf", the following ones "<base>_<index>.pdf".
func OutputPath(dir, base string, index int) string {
	name := base
	if index > 1 {
		name += "_" + strconv.Itoa(index)
	}
	name += DocumentExt
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// EnsureDir creates dir and its parents when missing. Empty dir means the
// working directory and is a no-op.
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "chat2pdf" -> false (name)
//   - "./export.yaml" -> true (relative path)
//   - "/etc/chat2pdf/export.yaml" -> true (absolute)
//   - "C:\config\export.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// TrimExt returns the file name of path without directory and extension.
func TrimExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
