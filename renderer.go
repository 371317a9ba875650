package chat2pdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/textwrap"
)

// Defaults used by NewRenderer.
const (
	DefaultBaseName = "output"
	DefaultImageDir = "images"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLayout sets the page geometry.
func WithLayout(l Layout) Option {
	return func(r *Renderer) { r.layout = l }
}

// WithResolver sets how image references are mapped to files.
func WithResolver(res ImageResolver) Option {
	return func(r *Renderer) { r.resolver = res }
}

// WithImageDir resolves image references against files in dir.
func WithImageDir(dir string) Option {
	return func(r *Renderer) { r.resolver = NewDirResolver(dir) }
}

// WithImageLoader sets how resolved image files are decoded.
func WithImageLoader(l ImageLoader) Option {
	return func(r *Renderer) { r.loader = l }
}

// WithSurfaceOpener sets how output documents are created.
func WithSurfaceOpener(o SurfaceOpener) Option {
	return func(r *Renderer) { r.opener = o }
}

// WithLogger sets the progress logger. Nil disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(r *Renderer) { r.log = log }
}

// WithOutputDir sets the directory output documents are written to.
// It is created on Render when missing.
func WithOutputDir(dir string) Option {
	return func(r *Renderer) { r.outputDir = dir }
}

// WithBaseName sets the output file stem: "<base>.pdf", "<base>_2.pdf", ...
func WithBaseName(base string) Option {
	return func(r *Renderer) { r.baseName = base }
}

// Renderer lays out chat records onto paginated PDF documents.
// A Renderer holds only configuration; every Render call starts from a
// fresh first document.
type Renderer struct {
	layout    Layout
	pager     Paginator
	resolver  ImageResolver
	loader    ImageLoader
	opener    SurfaceOpener
	log       *zap.Logger
	outputDir string
	baseName  string
}

// NewRenderer creates a Renderer writing "output.pdf" in the working
// directory with images looked up in "images".
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		layout:   DefaultLayout(),
		resolver: NewDirResolver(DefaultImageDir),
		loader:   NewFileImageLoader(),
		opener:   PDFOpener{},
		baseName: DefaultBaseName,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	if r.resolver == nil || r.loader == nil || r.opener == nil {
		return nil, errors.New("renderer: resolver, image loader and surface opener are required")
	}
	if err := r.layout.Validate(); err != nil {
		return nil, err
	}
	if err := fileutil.ValidateBaseName(r.baseName); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidOutputName, r.baseName, err)
	}
	r.pager = NewPaginator(r.layout)
	return r, nil
}

// Layout returns the geometry the renderer was built with.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// NotFoundPlaceholder is drawn when an image reference has no file.
func NotFoundPlaceholder(ref string) string {
	return "[Image not found for reference: " + ref + "]"
}

// ErrorPlaceholder is drawn when an image file exists but cannot be used.
func ErrorPlaceholder(err error) string {
	return "[Error loading image: " + err.Error() + "]"
}

// renderState is the mutable state of one Render call.
type renderState struct {
	surface  PageSurface
	docIndex int     // 1-based output document index
	page     int     // 1-based page number inside the current document
	y        float64 // cursor, bottom-left origin
	result   *Result
}

// Render lays out records in order and writes the output documents.
//
// Per-record problems (missing or undecodable images) are drawn as
// bracketed placeholder lines and never stop the run. Render fails only
// when a document cannot be opened or written, or when ctx is canceled;
// the document open at that point is still finalized and the partial
// Result is returned with the error.
func (r *Renderer) Render(ctx context.Context, records []ChatRecord) (res *Result, err error) {
	if err := fileutil.EnsureDir(r.outputDir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenDocument, err)
	}

	st := &renderState{result: &Result{}}
	if err := r.openDocument(st, 1); err != nil {
		return nil, err
	}
	r.log.Info("Rendering chat messages", zap.Int("records", len(records)))

	defer func() {
		if st.surface != nil {
			st.surface.DrawPageFooter(st.page, r.layout.PageWidth)
			err = multierr.Append(err, r.finalizeDocument(st))
		}
		res = st.result
		if err == nil {
			r.log.Info("Rendering complete",
				zap.Int("documents", len(res.Documents)),
				zap.Int("pages", res.Pages()),
				zap.Int("placeholders", len(res.Placeholders)))
		}
	}()

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := r.renderRecord(st, i, len(records), rec); err != nil {
			return nil, err
		}
	}
	return st.result, nil
}

func (r *Renderer) renderRecord(st *renderState, i, total int, rec ChatRecord) error {
	r.log.Debug("Processing chat",
		zap.Int("index", i+1),
		zap.Int("total", total),
		zap.Stringer("kind", rec.Body.Kind))

	if r.pager.NeedsHeaderBreak(st.y) {
		if err := r.breakPage(st); err != nil {
			return err
		}
	}

	st.surface.DrawHeader(rec.Header(), r.layout.LeftMargin, st.y)
	st.y -= r.layout.HeaderHeight
	st.result.Headers++
	st.result.Records++

	if rec.Body.Kind == BodyImage {
		return r.renderImage(st, i, rec.Body.Value)
	}
	r.renderText(st, rec.Body.Value)
	return nil
}

func (r *Renderer) renderText(st *renderState, text string) {
	lines := textwrap.Wrap(text, r.layout.WrapWidth)
	st.y = st.surface.DrawTextLines(lines, r.layout.LeftMargin, st.y, r.layout.TextLeading)
	st.y -= r.layout.TextGap
}

func (r *Renderer) renderImage(st *renderState, i int, ref string) error {
	path, ok := r.resolver.Resolve(ref)
	if !ok {
		r.log.Warn("Image not found", zap.Int("chat", i+1), zap.String("ref", ref))
		r.placeholder(st, NotFoundPlaceholder(ref))
		return nil
	}

	pic, err := r.loader.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Warn("Image not found", zap.Int("chat", i+1), zap.String("ref", ref), zap.String("path", path))
			r.placeholder(st, NotFoundPlaceholder(ref))
			return nil
		}
		r.log.Warn("Unable to load image", zap.Int("chat", i+1), zap.String("path", path), zap.Error(err))
		r.placeholder(st, ErrorPlaceholder(err))
		return nil
	}

	w, h := ScaleImage(pic.Width, pic.Height,
		r.layout.MaxImageWidth, r.layout.MaxImageHeight, r.pager.Available(st.y))
	if !r.pager.Fits(st.y, h) {
		r.log.Debug("Not enough space for image, breaking page", zap.Int("chat", i+1), zap.Float64("height", h))
		if err := r.breakPage(st); err != nil {
			return err
		}
	}

	st.surface.DrawImage(pic, r.layout.LeftMargin, st.y-h, w, h)
	r.log.Debug("Image added",
		zap.Int("chat", i+1),
		zap.String("path", path),
		zap.Float64("width", w),
		zap.Float64("height", h))
	st.y -= h + r.layout.ImagePadding
	st.result.Images++
	return nil
}

func (r *Renderer) placeholder(st *renderState, text string) {
	st.surface.DrawText(text, r.layout.LeftMargin, st.y)
	st.y -= r.layout.HeaderHeight
	st.result.Placeholders = append(st.result.Placeholders, text)
}

// breakPage closes the current page and moves the cursor to the top of the
// next one, rotating to a new document when the page limit is reached.
func (r *Renderer) breakPage(st *renderState) error {
	st.surface.DrawPageFooter(st.page, r.layout.PageWidth)

	if r.pager.Next(st.page) == NewDocument {
		r.log.Info("Document reached page limit, starting a new one",
			zap.Int("document", st.docIndex),
			zap.Int("pages", st.page))
		if err := r.finalizeDocument(st); err != nil {
			return err
		}
		return r.openDocument(st, st.docIndex+1)
	}

	st.surface.AdvancePage()
	st.page++
	st.y = r.layout.TopY()
	r.log.Debug("Added new page", zap.Int("page", st.page), zap.Int("document", st.docIndex))
	return nil
}

func (r *Renderer) openDocument(st *renderState, index int) error {
	path := fileutil.OutputPath(r.outputDir, r.baseName, index)
	surface, err := r.opener.Open(path, r.layout)
	if err != nil {
		return err
	}
	r.log.Info("Creating new PDF file", zap.String("path", path))
	st.surface = surface
	st.docIndex = index
	st.page = 1
	st.y = r.layout.TopY()
	return nil
}

func (r *Renderer) finalizeDocument(st *renderState) error {
	surface := st.surface
	st.surface = nil
	if err := surface.Finalize(); err != nil {
		return err
	}
	path := fileutil.OutputPath(r.outputDir, r.baseName, st.docIndex)
	st.result.Documents = append(st.result.Documents, Document{Path: path, Pages: st.page})
	r.log.Info("Saved PDF file", zap.String("path", path), zap.Int("pages", st.page))
	return nil
}
