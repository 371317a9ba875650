package chat2pdf

import "strings"

// ImageScheme prefixes a message body that refers to an image instead of text.
const ImageScheme = "mxc://"

// Defaults substituted by the loader for absent record fields.
const (
	DefaultAuthor    = "Unknown"
	DefaultTimestamp = ""
)

// BodyKind tells how a record body is laid out.
type BodyKind int

const (
	BodyText BodyKind = iota
	BodyImage
)

// String returns a lowercase name for logging.
func (k BodyKind) String() string {
	switch k {
	case BodyText:
		return "text"
	case BodyImage:
		return "image"
	}
	return "unknown"
}

// Body is the content of a chat record: plain text or an image reference.
type Body struct {
	Kind  BodyKind
	Value string // message text, or the full image reference for BodyImage
}

// NewBody classifies a raw message string.
func NewBody(message string) Body {
	if strings.HasPrefix(message, ImageScheme) {
		return Body{Kind: BodyImage, Value: message}
	}
	return Body{Kind: BodyText, Value: message}
}

// ChatRecord is one message of the chat export.
// Defaults are already applied: Author is never empty unless the export
// explicitly contains an empty string.
type ChatRecord struct {
	Author    string
	Timestamp string
	Body      Body
}

// Header returns the bold line drawn above every record.
func (r ChatRecord) Header() string {
	return r.Timestamp + " - " + r.Author + ":"
}

// Document describes one finalized output file.
type Document struct {
	Path  string
	Pages int
}

// Result summarizes a completed run.
type Result struct {
	Documents    []Document
	Records      int      // records laid out
	Headers      int      // header lines drawn
	Images       int      // images placed on a page
	Placeholders []string // bracketed lines drawn instead of images, in order
}

// Pages returns the total page count over all documents.
func (r *Result) Pages() int {
	n := 0
	for _, d := range r.Documents {
		n += d.Pages
	}
	return n
}
