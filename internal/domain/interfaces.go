package domain

// Document represents a single text file loaded into the system.
type Document struct {
	Path    string
	Content string
}

// ScoredSentence is a sentence with its position and salience score.
type ScoredSentence struct {
	Index    int
	Text     string
	Score    float64
	Selected bool
}

// Ranking is the full outcome of one summarization call.
type Ranking struct {
	Sentences []ScoredSentence
	// Chosen holds the selected sentence indices in ascending order.
	Chosen []int
	// Fallback is set when no content word was found and the leading
	// sentences were taken instead of the best-scored ones.
	Fallback bool
	// Frequencies is the content word table the scores were computed from.
	Frequencies map[string]int
	Summary     string
}

// Summarizer produces an extractive summary of the provided text.
// A requestedSentences value of zero or less selects the count automatically.
type Summarizer interface {
	Summarize(text string, requestedSentences int) string
}

// Ranker exposes the scores and selection behind a summary.
type Ranker interface {
	Summarizer
	Rank(text string, requestedSentences int) Ranking
}
