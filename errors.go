package chat2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Input loading errors. Both abort a run before any document exists.
	ErrReadInput    = errors.New("failed to read chat input")
	ErrInvalidInput = errors.New("invalid chat input")

	// Configuration errors.
	ErrInvalidLayout      = errors.New("invalid layout")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidOutputName  = errors.New("invalid output name")

	// Image errors. These never abort a run; they become placeholder lines.
	ErrImageDecode = errors.New("failed to decode image")

	// Output document errors.
	ErrOpenDocument  = errors.New("failed to open output document")
	ErrWriteDocument = errors.New("failed to write output document")
	ErrSurfaceClosed = errors.New("surface already finalized")
)
