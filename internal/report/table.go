// Package report renders score tables for a summarization run.
package report

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"textsum/internal/domain"
	"textsum/internal/frequency"
)

const maxSentenceWidth = 60

// Scores renders one row per sentence with its score and selection marker.
func Scores(r domain.Ranking) string {
	if len(r.Sentences) == 0 {
		return ""
	}
	tw := newWriter()
	tw.AppendHeader(table.Row{"#", "Score", "Selected", "Sentence"})
	for _, s := range r.Sentences {
		mark := ""
		if s.Selected {
			mark = "*"
		}
		tw.AppendRow(table.Row{
			s.Index,
			strconv.FormatFloat(s.Score, 'f', 3, 64),
			mark,
			text.Trim(s.Text, maxSentenceWidth),
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignCenter, AlignHeader: text.AlignLeft},
	})
	if r.Fallback {
		tw.SetCaption("no content words found; leading sentences used")
	}
	return tw.Render()
}

// Terms renders the n most frequent content words of t.
func Terms(t frequency.Table, n int) string {
	terms := t.Top(n)
	if len(terms) == 0 {
		return ""
	}
	tw := newWriter()
	tw.AppendHeader(table.Row{"Term", "Count"})
	for _, term := range terms {
		tw.AppendRow(table.Row{term.Word, term.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func newWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}
