package chat2pdf

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// JSON paths of the record fields inside one array element.
const (
	authorPath    = "author"
	timestampPath = "timestamp"
	messagePath   = "content.Message"
)

// LoadRecords reads and parses a chat export file.
func LoadRecords(path string) ([]ChatRecord, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	records, err := ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// ParseRecords parses a JSON array of chat objects.
// Absent or null fields get their defaults here, once, so the renderer
// never sees a partially populated record.
func ParseRecords(data []byte) ([]ChatRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidInput)
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top level must be a list of chat objects, got %s", ErrInvalidInput, root.Type)
	}

	elems := root.Array()
	records := make([]ChatRecord, 0, len(elems))
	for i, elem := range elems {
		if !elem.IsObject() {
			return nil, fmt.Errorf("%w: element %d is %s, want an object", ErrInvalidInput, i, elem.Type)
		}
		content := elem.Get("content")
		if content.Exists() && content.Type != gjson.Null && !content.IsObject() {
			return nil, fmt.Errorf("%w: element %d: content is %s, want an object", ErrInvalidInput, i, content.Type)
		}
		records = append(records, ChatRecord{
			Author:    stringOr(elem.Get(authorPath), DefaultAuthor),
			Timestamp: stringOr(elem.Get(timestampPath), DefaultTimestamp),
			Body:      NewBody(stringOr(elem.Get(messagePath), "")),
		})
	}
	return records, nil
}

// stringOr returns the field as text, or def when it is absent or null.
// Numbers and booleans keep their JSON spelling; objects and arrays keep
// their raw JSON.
func stringOr(r gjson.Result, def string) string {
	switch r.Type {
	case gjson.Null:
		return def
	case gjson.String:
		return r.Str
	default:
		return r.Raw
	}
}
