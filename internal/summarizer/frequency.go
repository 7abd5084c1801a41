package summarizer

import (
	"math"
	"sort"

	"textsum/internal/domain"
	"textsum/internal/frequency"
	"textsum/internal/sentence"
	"textsum/internal/stopwords"
	"textsum/internal/token"
)

// DefaultAutoRatio is the share of sentences kept when no count is requested.
const DefaultAutoRatio = 0.30

// FrequencySummarizer ranks sentences by mean content word frequency
// (stopwords and short tokens filtered). It holds no per-call state and may be
// used from multiple goroutines.
type FrequencySummarizer struct {
	stopwords      stopwords.Set
	minTokenLength int
	autoRatio      float64
}

// Option configures a FrequencySummarizer.
type Option func(*FrequencySummarizer)

// WithStopwords replaces the stopword set.
func WithStopwords(s stopwords.Set) Option {
	return func(f *FrequencySummarizer) { f.stopwords = s }
}

// WithMinTokenLength sets the shortest counted token. Values below 1 are ignored.
func WithMinTokenLength(n int) Option {
	return func(f *FrequencySummarizer) {
		if n >= 1 {
			f.minTokenLength = n
		}
	}
}

// WithAutoRatio sets the share of sentences picked in auto mode. Values
// outside (0, 1] are ignored.
func WithAutoRatio(r float64) Option {
	return func(f *FrequencySummarizer) {
		if r > 0 && r <= 1 {
			f.autoRatio = r
		}
	}
}

// NewFrequencySummarizer creates a frequency-based sentence ranker summarizer.
func NewFrequencySummarizer(opts ...Option) *FrequencySummarizer {
	f := &FrequencySummarizer{
		stopwords:      stopwords.Default(),
		minTokenLength: frequency.DefaultMinTokenLength,
		autoRatio:      DefaultAutoRatio,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Summarize returns the selected sentences of text in document order.
func (s *FrequencySummarizer) Summarize(text string, requestedSentences int) string {
	return s.Rank(text, requestedSentences).Summary
}

// Rank scores every sentence of text and selects the summary sentences.
func (s *FrequencySummarizer) Rank(text string, requestedSentences int) domain.Ranking {
	sentences := sentence.Split(text)
	if len(sentences) == 0 {
		return domain.Ranking{}
	}

	freq := frequency.Build(sentences, frequency.Options{
		Stopwords:      s.stopwords,
		MinTokenLength: s.minTokenLength,
	})
	scored := make([]domain.ScoredSentence, len(sentences))
	for i, sent := range sentences {
		scored[i] = domain.ScoredSentence{Index: i, Text: sent}
	}

	if freq.Empty() {
		take := 1
		if requestedSentences > 0 {
			take = requestedSentences
		}
		take = max(1, min(len(sentences), take))
		chosen := make([]int, take)
		for i := range chosen {
			chosen[i] = i
		}
		return s.assemble(scored, chosen, freq, true)
	}

	norm := token.NewNormalizer()
	for i, sent := range sentences {
		words := norm.Words(sent)
		sum := 0
		for _, w := range words {
			sum += freq.Weight(w)
		}
		// Mean weight so long sentences are not favoured.
		scored[i].Score = float64(sum) / float64(max(len(words), 1))
	}

	pick := s.pickCount(len(sentences), requestedSentences)

	idx := make([]int, len(sentences))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scored[idx[a]].Score > scored[idx[b]].Score })

	chosen := append([]int(nil), idx[:pick]...)
	sort.Ints(chosen)
	return s.assemble(scored, chosen, freq, false)
}

func (s *FrequencySummarizer) pickCount(total, requested int) int {
	if requested > 0 {
		return min(requested, total)
	}
	// math.Floor(x+0.5) rounds halves up.
	auto := int(math.Floor(float64(total)*s.autoRatio + 0.5))
	return min(max(1, auto), total)
}

func (s *FrequencySummarizer) assemble(scored []domain.ScoredSentence, chosen []int, freq frequency.Table, fallback bool) domain.Ranking {
	out := make([]string, len(chosen))
	for i, idx := range chosen {
		scored[idx].Selected = true
		out[i] = scored[idx].Text
	}
	return domain.Ranking{
		Sentences:   scored,
		Chosen:      chosen,
		Fallback:    fallback,
		Frequencies: freq,
		Summary:     sentence.Join(out),
	}
}
