package chat2pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"math"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Embedding formats understood by the PDF surface.
const (
	PictureJPEG = "JPG"
	PicturePNG  = "PNG"
)

// DefaultJPEGQuality is used when re-encoding JPEG sources.
const DefaultJPEGQuality = 90

// Picture is a decoded raster image ready to be embedded.
type Picture struct {
	Key    string // stable name, usually the source path
	Width  int    // natural width in pixels
	Height int    // natural height in pixels
	Type   string // PictureJPEG or PicturePNG
	Data   []byte
}

// ImageLoader reads an image file into a Picture.
// A missing file must be reported with an error wrapping fs.ErrNotExist.
type ImageLoader interface {
	Load(path string) (*Picture, error)
}

var _ ImageLoader = (*FileImageLoader)(nil)

// FileImageLoader decodes any format registered with the image package
// (JPEG, PNG, GIF, BMP, TIFF, WebP) and re-encodes it to JPEG or PNG.
type FileImageLoader struct {
	JPEGQuality int
}

// NewFileImageLoader returns a loader with default JPEG quality.
func NewFileImageLoader() *FileImageLoader {
	return &FileImageLoader{JPEGQuality: DefaultJPEGQuality}
}

// Load implements ImageLoader.
func (l *FileImageLoader) Load(path string) (*Picture, error) {
	kind, err := filetype.MatchFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrImageDecode, path, err)
	}
	if kind == filetype.Unknown || kind.MIME.Type != "image" {
		return nil, fmt.Errorf("%w: %s: unsupported file type", ErrImageDecode, path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %s: empty image", ErrImageDecode, path)
	}

	pic := &Picture{Key: path, Width: b.Dx(), Height: b.Dy()}
	var buf bytes.Buffer
	if kind.Extension == "jpg" {
		quality := l.JPEGQuality
		if quality <= 0 {
			quality = DefaultJPEGQuality
		}
		pic.Type = PictureJPEG
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	} else {
		// The PDF writer accepts only 8-bit PNGs.
		img = imaging.Clone(img)
		pic.Type = PicturePNG
		err = imaging.Encode(&buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: re-encoding: %v", ErrImageDecode, path, err)
	}
	pic.Data = buf.Bytes()
	return pic, nil
}

// ScaleImage fits a natural size into the max box and the available height.
// The scale factor is the smallest of the three bounds, so the aspect ratio
// is preserved and the height never exceeds available.
func ScaleImage(naturalWidth, naturalHeight int, maxWidth, maxHeight, available float64) (width, height float64) {
	if naturalWidth <= 0 || naturalHeight <= 0 {
		return 0, 0
	}
	w, h := float64(naturalWidth), float64(naturalHeight)
	scale := math.Min(maxWidth/w, math.Min(maxHeight/h, available/h))
	if scale < 0 {
		scale = 0
	}
	return w * scale, h * scale
}
