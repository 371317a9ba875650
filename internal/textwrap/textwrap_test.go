package textwrap

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// TestWrap - Line breaking
// ---------------------------------------------------------------------------

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "empty", text: "", width: 80, want: nil},
		{name: "whitespace only", text: " \n\t ", width: 80, want: nil},
		{name: "single word", text: "Hello", width: 80, want: []string{"Hello"}},
		{name: "exact width", text: "aaa bbb", width: 7, want: []string{"aaa bbb"}},
		{name: "breaks between words", text: "aaa bbb ccc", width: 7, want: []string{"aaa bbb", "ccc"}},
		{name: "newlines collapse", text: "first\n\nsecond\tthird", width: 80, want: []string{"first second third"}},
		{name: "surrounding space dropped", text: "  padded  ", width: 80, want: []string{"padded"}},
		{name: "long word is cut", text: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "long word fills the current line", text: "ab cdefghij", width: 5, want: []string{"ab cd", "efghi", "j"}},
		{name: "no room left for a long word", text: "abcd efghijk", width: 5, want: []string{"abcd", "efghi", "jk"}},
		{name: "hyphen is not a break point", text: "a bc-de", width: 4, want: []string{"a bc", "-de"}},
		{name: "width counts runes", text: "ééé ééé", width: 3, want: []string{"ééé", "ééé"}},
		{name: "width below one", text: "ab", width: 0, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Wrap(tt.text, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWrap_Properties - Width bound and word round trip
// ---------------------------------------------------------------------------

func TestWrap_Properties(t *testing.T) {
	t.Parallel()

	texts := []string{
		"The quick brown fox jumps over the lazy dog.",
		strings.Repeat("lorem ipsum dolor sit amet, consectetur adipiscing elit ", 12),
		"short\nlines\nwith\nbreaks and a tab\there",
		"Grüße aus Köln, à bientôt, 日本語のテキスト も あります",
		strings.Repeat("x", 80) + " " + strings.Repeat("y", 79) + " z",
	}

	for _, width := range []int{10, 40, 80} {
		for _, text := range texts {
			lines := Wrap(text, width)
			fits := true
			for _, line := range lines {
				if n := utf8.RuneCountInString(line); n > width || n == 0 {
					t.Errorf("Wrap(width %d) produced a %d rune line %q", width, n, line)
				}
				if strings.TrimSpace(line) != line {
					t.Errorf("line %q has surrounding space", line)
				}
			}
			for _, w := range strings.Fields(text) {
				if utf8.RuneCountInString(w) > width {
					fits = false
				}
			}
			if !fits {
				continue
			}
			got := strings.Join(lines, " ")
			want := strings.Join(strings.Fields(text), " ")
			if got != want {
				t.Errorf("Wrap(width %d) round trip = %q, want %q", width, got, want)
			}
		}
	}
}
