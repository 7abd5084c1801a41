// Package sentence splits free text into punctuation-delimited sentences.
package sentence

import (
	"regexp"
	"strings"
)

// A run of non-terminators optionally closed by one terminator. The final
// run of a text without trailing punctuation still matches.
var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]?`)

// Split returns the trimmed, non-empty sentences of text in document order.
// Abbreviations and decimal numbers are not special-cased and split like any
// other terminator.
func Split(text string) []string {
	matches := sentenceRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := matches[:0]
	for _, m := range matches {
		s := strings.TrimSpace(m)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Join reassembles sentences separated by a single space. Every sentence not
// already ending in '.' gets one appended.
func Join(sentences []string) string {
	var b strings.Builder
	for i, s := range sentences {
		s = strings.TrimSpace(s)
		b.WriteString(s)
		if !strings.HasSuffix(s, ".") {
			b.WriteByte('.')
		}
		if i < len(sentences)-1 {
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}
