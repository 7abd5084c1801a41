package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/domain"
	"textsum/internal/logging"
	"textsum/internal/service"
	"textsum/internal/summarizer"
)

const petsText = "Cats are great pets. Dogs are loyal animals. Cats sleep most of the day. Loyal dogs protect the house."

func newTestModel(t *testing.T, text string, n int) Model {
	t.Helper()
	svc := service.NewSummaryService(summarizer.NewFrequencySummarizer(), logging.NewDiscard(), 0)
	m := New(svc, text, n)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: k})
	model, ok := updated.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestViewBeforeResize(t *testing.T) {
	m := New(nil, "", 0)
	assert.Equal(t, "Loading...", m.View())
}

func TestSummarizeOnCtrlS(t *testing.T) {
	m := newTestModel(t, petsText, 2)
	m, _ = press(t, m, tea.KeyCtrlS)

	assert.Equal(t, "Dogs are loyal animals. Loyal dogs protect the house.", m.ranking.Summary)
	assert.Equal(t, []int{1, 3}, m.ranking.Chosen)
	assert.Contains(t, m.status, "Selected 2 of 4")
	assert.Contains(t, m.View(), "textsum")
}

func TestEmptyCountUsesConfiguredDefault(t *testing.T) {
	svc := service.NewSummaryService(summarizer.NewFrequencySummarizer(), logging.NewDiscard(), 2)
	updated, _ := New(svc, petsText, 0).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updated.(Model)

	m, _ = press(t, m, tea.KeyCtrlS)
	assert.Equal(t, []int{1, 3}, m.ranking.Chosen)

	m.count.SetValue("0")
	m, _ = press(t, m, tea.KeyCtrlS)
	assert.Equal(t, []int{1}, m.ranking.Chosen)
}

func TestSummarizeEmptyEditor(t *testing.T) {
	m := newTestModel(t, "   ", 0)
	m, _ = press(t, m, tea.KeyCtrlS)

	assert.Empty(t, m.ranking.Sentences)
	assert.Equal(t, "Nothing to summarize.", m.status)
	assert.Equal(t, "No summary yet.", m.renderResult())
}

func TestSummarizeFallbackStatus(t *testing.T) {
	m := newTestModel(t, "to a of in", 0)
	m, _ = press(t, m, tea.KeyCtrlS)

	assert.True(t, m.ranking.Fallback)
	assert.Contains(t, m.status, "leading sentences used")
}

func TestTabSwitchesFocus(t *testing.T) {
	m := newTestModel(t, petsText, 0)
	require.Equal(t, focusEditor, m.focus)

	m, _ = press(t, m, tea.KeyTab)
	assert.Equal(t, focusCount, m.focus)
	assert.True(t, m.count.Focused())
	assert.False(t, m.editor.Focused())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")})
	m = updated.(Model)
	assert.Equal(t, "3", m.count.Value())

	m, _ = press(t, m, tea.KeyCtrlS)
	assert.Len(t, m.ranking.Chosen, 3)

	m, _ = press(t, m, tea.KeyTab)
	assert.Equal(t, focusEditor, m.focus)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := newTestModel(t, petsText, 0)
		_, cmd := press(t, m, k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestHighlightSelected(t *testing.T) {
	out := highlightSelected([]domain.ScoredSentence{
		{Text: "One."},
		{Text: "Two.", Selected: true},
	})
	assert.Contains(t, out, "One.")
	assert.Contains(t, out, "Two.")
}
