package service

import (
	"log/slog"
	"strings"

	"textsum/internal/domain"
	"textsum/internal/ingest"
)

// SummaryService wires input sources to a ranker and resolves the configured
// default sentence count for callers that were given none.
type SummaryService struct {
	ranker           domain.Ranker
	logger           *slog.Logger
	defaultSentences int
}

// NewSummaryService creates a service. defaultSentences is used when no count
// was supplied; it may itself be 0 (auto).
func NewSummaryService(ranker domain.Ranker, logger *slog.Logger, defaultSentences int) *SummaryService {
	return &SummaryService{ranker: ranker, logger: logger, defaultSentences: defaultSentences}
}

// Summarize implements domain.Summarizer.
func (s *SummaryService) Summarize(text string, requestedSentences int) string {
	return s.Rank(text, requestedSentences).Summary
}

// Rank summarizes text and returns the scores behind the result.
func (s *SummaryService) Rank(text string, requestedSentences int) domain.Ranking {
	r := s.ranker.Rank(text, requestedSentences)
	s.logger.Debug("summarized text",
		slog.Int("requested", requestedSentences),
		slog.Int("sentences", len(r.Sentences)),
		slog.Int("selected", len(r.Chosen)),
		slog.Bool("fallback", r.Fallback))
	return r
}

// RankFiles loads .txt files matching paths and ranks their combined text.
func (s *SummaryService) RankFiles(paths []string, requestedSentences int) (domain.Ranking, error) {
	docs, err := ingest.ReadFiles(paths)
	if err != nil {
		return domain.Ranking{}, err
	}
	for _, d := range docs {
		s.logger.Debug("loaded document", slog.String("path", d.Path), slog.Int("bytes", len(d.Content)))
	}
	return s.Rank(ingest.Combine(docs), requestedSentences), nil
}

// SummarizeFiles is RankFiles returning only the summary.
func (s *SummaryService) SummarizeFiles(paths []string, requestedSentences int) (string, error) {
	r, err := s.RankFiles(paths, requestedSentences)
	if err != nil {
		return "", err
	}
	return r.Summary, nil
}

// DefaultSentences is the configured count used when none was supplied.
func (s *SummaryService) DefaultSentences() int { return s.defaultSentences }

// Count resolves a typed sentence count answer. An empty answer means no
// count was supplied and yields the default; anything else is parsed, with
// 0 and unparsable answers meaning auto.
func (s *SummaryService) Count(answer string) int {
	if strings.TrimSpace(answer) == "" {
		return s.defaultSentences
	}
	return ingest.ParseCount(answer)
}
