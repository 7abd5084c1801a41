// Package token extracts word tokens from sentences.
package token

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var wordRe = regexp.MustCompile(`[\p{L}\p{N}']+`)

// Tokenize returns the maximal runs of letters, digits and apostrophes in s.
// Case is preserved.
func Tokenize(s string) []string {
	return wordRe.FindAllString(s, -1)
}

// Len is the length of a token in characters.
func Len(tok string) int { return utf8.RuneCountInString(tok) }

// Normalizer lower-cases tokens. It is not safe for concurrent use; create
// one per goroutine.
type Normalizer struct {
	caser cases.Caser
}

// NewNormalizer creates a language-neutral lower-casing normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{caser: cases.Lower(language.Und)}
}

// Normalize returns the lower-cased form of tok.
func (n *Normalizer) Normalize(tok string) string {
	return n.caser.String(tok)
}

// Words tokenizes s and normalizes every token.
func (n *Normalizer) Words(s string) []string {
	raw := Tokenize(s)
	for i, t := range raw {
		raw[i] = n.Normalize(t)
	}
	return raw
}
