package chat2pdf

import "strconv"

// PageSurface draws onto the current page of one output document.
//
// Coordinates use a bottom-left origin: y grows upwards, and a point at
// y = PageHeight is the top edge of the page. Drawing calls never fail
// individually; a surface collects its first error and reports it from
// Finalize, after which every call is a no-op.
type PageSurface interface {
	// DrawHeader draws one line in the bold header font with its baseline at y.
	DrawHeader(text string, x, y float64)
	// DrawText draws one line in the body font with its baseline at y.
	DrawText(text string, x, y float64)
	// DrawTextLines draws lines top to bottom, the first at y, each next one
	// leading lower. It returns y minus len(lines)*leading.
	DrawTextLines(lines []string, x, y, leading float64) float64
	// DrawImage draws pic scaled to width x height with its bottom-left
	// corner at (x, y).
	DrawImage(pic *Picture, x, y, width, height float64)
	// DrawPageFooter draws a right-aligned "Page N" label near the bottom edge.
	DrawPageFooter(page int, pageWidth float64)
	// AdvancePage starts a new blank page in the same document.
	AdvancePage()
	// Finalize writes and closes the document. It is not repeatable.
	Finalize() error
}

// SurfaceOpener creates the surface for a new output document, positioned
// on its first blank page.
type SurfaceOpener interface {
	Open(path string, layout Layout) (PageSurface, error)
}

// FooterLabel is the text drawn by DrawPageFooter.
func FooterLabel(page int) string {
	return "Page " + strconv.Itoa(page)
}
