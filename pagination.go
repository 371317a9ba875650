package chat2pdf

// Transition is the kind of break the paginator asks for.
type Transition int

const (
	// NewPage starts another page in the current document.
	NewPage Transition = iota
	// NewDocument finalizes the current document and opens the next one.
	NewDocument
)

func (t Transition) String() string {
	if t == NewDocument {
		return "new-document"
	}
	return "new-page"
}

// Paginator decides page and document breaks from the cursor position.
// It holds no state of its own and never draws.
type Paginator struct {
	layout Layout
}

// NewPaginator returns a paginator for layout.
func NewPaginator(layout Layout) Paginator {
	return Paginator{layout: layout}
}

// Available is the vertical space between the cursor and the bottom margin.
func (p Paginator) Available(y float64) float64 {
	return y - p.layout.BottomMargin
}

// NeedsHeaderBreak reports whether a record starting at y must move to a
// new page before its header is drawn.
func (p Paginator) NeedsHeaderBreak(y float64) bool {
	return p.Available(y) < p.layout.HeaderReserve
}

// Fits reports whether an element of the given height can be placed at y
// without crossing the bottom margin.
func (p Paginator) Fits(y, height float64) bool {
	return height <= p.Available(y)
}

// Next returns the break to apply when leaving the given page of the
// current document (1-based).
func (p Paginator) Next(page int) Transition {
	if page >= p.layout.MaxPagesPerDocument {
		return NewDocument
	}
	return NewPage
}
