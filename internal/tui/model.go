package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textsum/internal/domain"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	Rank(text string, requestedSentences int) domain.Ranking
	Count(answer string) int
}

type focusArea int

const (
	focusEditor focusArea = iota
	focusCount
)

const editorHeight = 8

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  SummaryPort
	editor   textarea.Model
	count    textinput.Model
	viewport viewport.Model
	focus    focusArea
	ranking  domain.Ranking
	status   string
	ready    bool
}

// New creates a new TUI model instance seeded with text and a sentence count.
func New(service SummaryPort, text string, sentences int) Model {
	ed := textarea.New()
	ed.Placeholder = "Paste or type the text to summarize"
	ed.ShowLineNumbers = false
	ed.CharLimit = 0
	ed.SetValue(text)
	ed.Focus()

	ti := textinput.New()
	ti.Prompt = "Sentences (0 = auto): "
	ti.Placeholder = "0"
	ti.CharLimit = 6
	if sentences > 0 {
		ti.SetValue(strconv.Itoa(sentences))
	}

	vp := viewport.New(0, 0)
	return Model{
		service:  service,
		editor:   ed,
		count:    ti,
		viewport: vp,
		status:   "ctrl+s summarize · tab switch field · esc quit",
	}
}

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, eh := editorBoxStyle.GetFrameSize()
		_, rh := resultBoxStyle.GetFrameSize()
		width := max(20, msg.Width)
		m.editor.SetWidth(width - 4)
		m.editor.SetHeight(editorHeight)
		m.count.Width = 8
		// header + count + status + spacer
		reserved := 4 + editorHeight + eh + rh
		m.viewport.Width = width
		m.viewport.Height = max(3, msg.Height-reserved)
		m.viewport.SetContent(m.renderResult())
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			m.summarize()
			return m, nil
		case tea.KeyTab:
			cmd := m.toggleFocus()
			return m, cmd
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	if m.focus == focusEditor {
		m.editor, cmd = m.editor.Update(msg)
	} else {
		m.count, cmd = m.count.Update(msg)
	}
	return m, cmd
}

// View renders the TUI layout and current result.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("textsum")
	editor := editorBoxStyle.Render(m.editor.View())
	count := m.count.View()
	results := resultBoxStyle.Render(m.viewport.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + editor + "\n" + count + "\n" + results + "\n" + status
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusEditor {
		m.focus = focusCount
		m.editor.Blur()
		return m.count.Focus()
	}
	m.focus = focusEditor
	m.count.Blur()
	return m.editor.Focus()
}

func (m *Model) summarize() {
	text := strings.TrimSpace(m.editor.Value())
	if text == "" {
		m.ranking = domain.Ranking{}
		m.status = "Nothing to summarize."
		m.viewport.SetContent(m.renderResult())
		return
	}
	n := m.service.Count(m.count.Value())
	m.ranking = m.service.Rank(text, n)
	m.status = fmt.Sprintf("Selected %d of %d sentences", len(m.ranking.Chosen), len(m.ranking.Sentences))
	if m.ranking.Fallback {
		m.status += " (no content words, leading sentences used)"
	}
	m.viewport.SetContent(m.renderResult())
	m.viewport.GotoTop()
}

func (m Model) renderResult() string {
	if len(m.ranking.Sentences) == 0 {
		return "No summary yet."
	}
	title := summaryTitleStyle.Render("Summary")
	return title + "\n" + m.ranking.Summary + "\n\n" + summaryTitleStyle.Render("Document") + "\n" +
		highlightSelected(m.ranking.Sentences)
}

var (
	editorBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	resultBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	summaryTitleStyle = lipgloss.NewStyle().Underline(true)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func highlightSelected(sentences []domain.ScoredSentence) string {
	parts := make([]string, len(sentences))
	for i, s := range sentences {
		if s.Selected {
			parts[i] = highlightStyle.Render(s.Text)
		} else {
			parts[i] = s.Text
		}
	}
	return strings.Join(parts, " ")
}
