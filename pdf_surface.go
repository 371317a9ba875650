package chat2pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Font styles understood by gofpdf.
const (
	styleRegular = ""
	styleBold    = "B"
)

// PDFOpener opens gofpdf-backed surfaces that write to the given path.
//
// Text is drawn with the Helvetica core font and translated to cp1252.
// Characters outside that code page, such as emoji or CJK, are replaced and
// do not appear in the output.
type PDFOpener struct {
	// Creator is stored in the document metadata. Empty means "go-chat2pdf".
	Creator string
}

var (
	_ SurfaceOpener = PDFOpener{}
	_ PageSurface   = (*pdfSurface)(nil)
)

// Open implements SurfaceOpener.
func (o PDFOpener) Open(path string, layout Layout) (PageSurface, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	creator := o.Creator
	if creator == "" {
		creator = "go-chat2pdf"
	}
	pdf.SetCreator(creator, true)
	pdf.AddPage()
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenDocument, path, err)
	}
	return &pdfSurface{
		pdf:    pdf,
		path:   path,
		layout: layout,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}, nil
}

// pdfSurface draws onto a gofpdf document. gofpdf uses a top-left origin,
// so every y coordinate is flipped against the page height.
type pdfSurface struct {
	pdf    *gofpdf.Fpdf
	path   string
	layout Layout
	tr     func(string) string // UTF-8 to cp1252 for the core fonts
	closed bool
}

func (s *pdfSurface) flip(y float64) float64 {
	return s.layout.PageHeight - y
}

func (s *pdfSurface) DrawHeader(text string, x, y float64) {
	if s.closed {
		return
	}
	s.pdf.SetFont(s.layout.FontFamily, styleBold, s.layout.HeaderSize)
	s.pdf.Text(x, s.flip(y), s.tr(text))
}

func (s *pdfSurface) DrawText(text string, x, y float64) {
	if s.closed {
		return
	}
	s.pdf.SetFont(s.layout.FontFamily, styleRegular, s.layout.BodySize)
	s.pdf.Text(x, s.flip(y), s.tr(text))
}

func (s *pdfSurface) DrawTextLines(lines []string, x, y, leading float64) float64 {
	for _, line := range lines {
		s.DrawText(line, x, y)
		y -= leading
	}
	return y
}

func (s *pdfSurface) DrawImage(pic *Picture, x, y, width, height float64) {
	if s.closed || pic == nil {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: pic.Type}
	// gofpdf keeps registered images by name, so a repeated key reuses
	// the already embedded object.
	s.pdf.RegisterImageOptionsReader(pic.Key, opts, bytes.NewReader(pic.Data))
	s.pdf.ImageOptions(pic.Key, x, s.flip(y+height), width, height, false, opts, 0, "")
}

func (s *pdfSurface) DrawPageFooter(page int, pageWidth float64) {
	if s.closed {
		return
	}
	label := FooterLabel(page)
	s.pdf.SetFont(s.layout.FontFamily, styleRegular, s.layout.FooterSize)
	w := s.pdf.GetStringWidth(label)
	s.pdf.Text(pageWidth-s.layout.FooterInset-w, s.flip(s.layout.BottomMargin/2), label)
}

func (s *pdfSurface) AdvancePage() {
	if s.closed {
		return
	}
	s.pdf.AddPage()
}

func (s *pdfSurface) Finalize() error {
	if s.closed {
		return fmt.Errorf("%w: %s", ErrSurfaceClosed, s.path)
	}
	s.closed = true
	if err := s.pdf.OutputFileAndClose(s.path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteDocument, s.path, err)
	}
	return nil
}
