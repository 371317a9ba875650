package chat2pdf

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/maruel/natural"
)

// ImageResolver maps an image reference to a file path.
type ImageResolver interface {
	Resolve(ref string) (path string, ok bool)
}

// Compile-time interface implementation checks.
var (
	_ ImageResolver = (*DirResolver)(nil)
	_ ImageResolver = MapResolver(nil)
)

// ImageID extracts the identifier of a reference: its last path segment.
// "mxc://server/abc123" yields "abc123".
func ImageID(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// DirResolver finds images in a directory by file name: a reference
// resolves to the first file matching "<id>.*", so "abc.png" and
// "abc.thumb.png" both answer for "abc".
//
// The directory is listed once, on first use. Files are ordered by natural
// sort so that with several candidates for one id the choice is stable.
// Hidden files and directories never match.
type DirResolver struct {
	dir string

	once  sync.Once
	index map[string]string
	err   error
}

// NewDirResolver returns a resolver over dir. The directory is not read
// until the first Resolve call.
func NewDirResolver(dir string) *DirResolver {
	return &DirResolver{dir: dir}
}

// Dir returns the directory the resolver searches.
func (r *DirResolver) Dir() string {
	return r.dir
}

// Err reports the listing error, if the directory could not be read.
// A resolver with a listing error resolves nothing.
func (r *DirResolver) Err() error {
	r.once.Do(r.scan)
	return r.err
}

// Resolve implements ImageResolver.
func (r *DirResolver) Resolve(ref string) (string, bool) {
	r.once.Do(r.scan)
	id := ImageID(ref)
	if id == "" {
		return "", false
	}
	path, ok := r.index[id]
	return path, ok
}

func (r *DirResolver) scan() {
	r.index = make(map[string]string)

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		r.err = err
		return
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	for _, name := range names {
		// Every prefix ending before a dot is an id the file answers for.
		for i := 1; i < len(name); i++ {
			if name[i] != '.' {
				continue
			}
			if _, seen := r.index[name[:i]]; !seen {
				r.index[name[:i]] = filepath.Join(r.dir, name)
			}
		}
	}
}

// MapResolver resolves identifiers from a fixed map of id to path.
type MapResolver map[string]string

// Resolve implements ImageResolver.
func (m MapResolver) Resolve(ref string) (string, bool) {
	path, ok := m[ImageID(ref)]
	return path, ok
}
