package chat2pdf

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Page dimensions in points, portrait.
var pageSizes = map[string][2]float64{
	PageSizeLetter: {612, 792},
	PageSizeA4:     {595.28, 841.89},
	PageSizeLegal:  {612, 1008},
}

// Layout is the fixed geometry of a run. All lengths are in points.
// A Layout is a value: copies never share state.
type Layout struct {
	PageWidth  float64
	PageHeight float64

	LeftMargin   float64
	TopMargin    float64
	BottomMargin float64

	HeaderHeight  float64 // cursor step after a header or placeholder line
	HeaderReserve float64 // minimum space left before a header is drawn
	TextLeading   float64
	TextGap       float64 // extra space after a text body
	ImagePadding  float64 // extra space after an image

	MaxImageWidth  float64
	MaxImageHeight float64

	WrapWidth int // text wrap column, in characters

	MaxPagesPerDocument int

	FontFamily  string
	HeaderSize  float64
	BodySize    float64
	FooterSize  float64
	FooterInset float64 // distance from the right page edge to the footer's right end
}

// DefaultLayout returns a letter portrait layout.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:           612,
		PageHeight:          792,
		LeftMargin:          50,
		TopMargin:           50,
		BottomMargin:        50,
		HeaderHeight:        15,
		HeaderReserve:       40,
		TextLeading:         12,
		TextGap:             10,
		ImagePadding:        15,
		MaxImageWidth:       300,
		MaxImageHeight:      300,
		WrapWidth:           80,
		MaxPagesPerDocument: 100,
		FontFamily:          "Helvetica",
		HeaderSize:          10,
		BodySize:            10,
		FooterSize:          8,
		FooterInset:         50,
	}
}

// PageDimensions returns width and height in points for a named size and
// orientation. Empty values select letter and portrait.
func PageDimensions(size, orientation string) (width, height float64, err error) {
	if size == "" {
		size = PageSizeLetter
	}
	dims, ok := pageSizes[strings.ToLower(size)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPageSize, size)
	}
	switch strings.ToLower(orientation) {
	case "", OrientationPortrait:
		return dims[0], dims[1], nil
	case OrientationLandscape:
		return dims[1], dims[0], nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, orientation)
}

// TopY is the cursor position at the top of a fresh page.
func (l Layout) TopY() float64 {
	return l.PageHeight - l.TopMargin
}

// Validate checks that the geometry leaves room for content.
func (l Layout) Validate() error {
	if l.PageWidth <= 0 || l.PageHeight <= 0 {
		return fmt.Errorf("%w: page %.2fx%.2f must be positive", ErrInvalidLayout, l.PageWidth, l.PageHeight)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"leftMargin", l.LeftMargin},
		{"topMargin", l.TopMargin},
		{"bottomMargin", l.BottomMargin},
		{"textLeading", l.TextLeading},
		{"textGap", l.TextGap},
		{"imagePadding", l.ImagePadding},
	} {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %.2f", ErrInvalidLayout, f.name, f.value)
		}
	}
	if l.HeaderHeight <= 0 {
		return fmt.Errorf("%w: headerHeight must be positive, got %.2f", ErrInvalidLayout, l.HeaderHeight)
	}
	// A record must always leave room for an image after its header.
	if l.HeaderReserve <= l.HeaderHeight {
		return fmt.Errorf("%w: headerReserve %.2f must exceed headerHeight %.2f", ErrInvalidLayout, l.HeaderReserve, l.HeaderHeight)
	}
	if l.TopY()-l.BottomMargin < l.HeaderReserve {
		return fmt.Errorf("%w: margins leave %.2f points, need at least %.2f", ErrInvalidLayout, l.TopY()-l.BottomMargin, l.HeaderReserve)
	}
	if l.LeftMargin >= l.PageWidth {
		return fmt.Errorf("%w: leftMargin %.2f exceeds page width", ErrInvalidLayout, l.LeftMargin)
	}
	if l.MaxImageWidth <= 0 || l.MaxImageHeight <= 0 {
		return fmt.Errorf("%w: max image box %.2fx%.2f must be positive", ErrInvalidLayout, l.MaxImageWidth, l.MaxImageHeight)
	}
	if l.WrapWidth < 1 {
		return fmt.Errorf("%w: wrapWidth must be at least 1, got %d", ErrInvalidLayout, l.WrapWidth)
	}
	if l.MaxPagesPerDocument < 1 {
		return fmt.Errorf("%w: maxPagesPerDocument must be at least 1, got %d", ErrInvalidLayout, l.MaxPagesPerDocument)
	}
	if l.FontFamily == "" || l.HeaderSize <= 0 || l.BodySize <= 0 || l.FooterSize <= 0 {
		return fmt.Errorf("%w: font family and sizes are required", ErrInvalidLayout)
	}
	return nil
}
