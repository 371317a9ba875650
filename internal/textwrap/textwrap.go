// Package textwrap breaks message text into fixed-width lines.
package textwrap

import (
	"strings"
	"unicode/utf8"
)

// Wrap splits text into lines of at most width characters.
//
// Runs of whitespace, including newlines, collapse to a single space and
// leading or trailing whitespace is dropped. Words are packed greedily.
// A word longer than width is cut into width-sized pieces. Blank text
// yields no lines. Width counts runes, not bytes. Lines break only at
// whitespace, never after hyphens.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines []string
		line  strings.Builder
		n     int // runes in line
	)
	flush := func() {
		if n > 0 {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
	}

	for _, word := range words {
		wn := utf8.RuneCountInString(word)

		// Fill the current line with the head of an oversized word first,
		// so a long word never leaves a short line behind it.
		for wn > width {
			room := width - n
			if n > 0 {
				room-- // separating space
			}
			if room <= 0 {
				flush()
				continue
			}
			head, tail := splitRunes(word, room)
			if n > 0 {
				line.WriteByte(' ')
				n++
			}
			line.WriteString(head)
			n += room
			flush()
			word, wn = tail, wn-room
		}

		switch {
		case n == 0:
			line.WriteString(word)
			n = wn
		case n+1+wn <= width:
			line.WriteByte(' ')
			line.WriteString(word)
			n += 1 + wn
		default:
			flush()
			line.WriteString(word)
			n = wn
		}
	}
	flush()
	return lines
}

// splitRunes splits s after its first n runes.
func splitRunes(s string, n int) (head, tail string) {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos], s[pos:]
		}
		i++
	}
	return s, ""
}
