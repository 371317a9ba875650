package main

import (
	"errors"
	"os"

	chat2pdf "github.com/alnah/go-chat2pdf"
	"github.com/alnah/go-chat2pdf/internal/config"
)

// Exit codes for the chat2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or layout
	ExitIO      = 3 // Input unreadable or invalid, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, chat2pdf.ErrInvalidLayout) ||
		errors.Is(err, chat2pdf.ErrInvalidPageSize) ||
		errors.Is(err, chat2pdf.ErrInvalidOrientation) ||
		errors.Is(err, chat2pdf.ErrInvalidOutputName) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, chat2pdf.ErrReadInput) ||
		errors.Is(err, chat2pdf.ErrInvalidInput) ||
		errors.Is(err, chat2pdf.ErrOpenDocument) ||
		errors.Is(err, chat2pdf.ErrWriteDocument) {
		return ExitIO
	}

	return ExitGeneral
}
