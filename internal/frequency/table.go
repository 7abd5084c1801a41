// Package frequency builds document-wide content word counts.
package frequency

import (
	"sort"

	"textsum/internal/stopwords"
	"textsum/internal/token"
)

// DefaultMinTokenLength is the shortest token, in characters, that is counted.
const DefaultMinTokenLength = 2

// Options controls which tokens qualify for counting.
type Options struct {
	Stopwords      stopwords.Set
	MinTokenLength int
}

// DefaultOptions uses the built-in stopwords and minimum token length.
func DefaultOptions() Options {
	return Options{Stopwords: stopwords.Default(), MinTokenLength: DefaultMinTokenLength}
}

// Table maps a lower-cased content word to its occurrences across a document.
type Table map[string]int

// Term is a word and its count.
type Term struct {
	Word  string
	Count int
}

// Build counts the qualifying tokens of all sentences into one flat table.
func Build(sentences []string, opts Options) Table {
	if opts.MinTokenLength <= 0 {
		opts.MinTokenLength = DefaultMinTokenLength
	}
	norm := token.NewNormalizer()
	t := Table{}
	for _, s := range sentences {
		for _, w := range norm.Words(s) {
			if !opts.qualifies(w) {
				continue
			}
			t[w]++
		}
	}
	return t
}

func (o Options) qualifies(w string) bool {
	if token.Len(w) < o.MinTokenLength {
		return false
	}
	return !o.Stopwords.Contains(w)
}

// Empty reports whether no content word was counted. Callers then fall back
// to positional selection.
func (t Table) Empty() bool { return len(t) == 0 }

// Weight returns the count of w, or 0 when w was excluded or never seen.
func (t Table) Weight(w string) int { return t[w] }

// Top returns up to n terms by descending count, ties in alphabetical order.
func (t Table) Top(n int) []Term {
	terms := make([]Term, 0, len(t))
	for w, c := range t {
		terms = append(terms, Term{Word: w, Count: c})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Word < terms[j].Word
	})
	if n >= 0 && n < len(terms) {
		terms = terms[:n]
	}
	return terms
}
