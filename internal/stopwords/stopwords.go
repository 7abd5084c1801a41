// Package stopwords holds the function words excluded from frequency scoring.
package stopwords

import "strings"

var defaultWords = []string{
	"a", "an", "the", "and", "or", "but", "if", "while", "with", "for", "to", "of", "in", "on",
	"at", "by", "from", "up", "down", "is", "are", "was", "were", "be", "been", "has", "have",
	"had", "do", "does", "did", "this", "that", "these", "those", "as", "it", "its", "so",
	"they", "them", "he", "she", "his", "her", "you", "your", "i", "we", "our", "us",
	"me", "my", "him", "their", "there", "then", "than", "not", "no", "most",
}

var defaultSet = newSet(defaultWords)

// Set is an immutable set of lower-case stopwords.
type Set struct {
	words map[string]struct{}
}

func newSet(words []string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// Default returns the built-in stopword set.
func Default() Set { return defaultSet }

// Contains reports whether the lower-cased word w is a stopword.
func (s Set) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s.words) }

// With returns a new set holding s plus extra. s is left unchanged.
func (s Set) With(extra ...string) Set {
	if len(extra) == 0 {
		return s
	}
	words := make([]string, 0, len(s.words)+len(extra))
	for w := range s.words {
		words = append(words, w)
	}
	return newSet(append(words, extra...))
}
