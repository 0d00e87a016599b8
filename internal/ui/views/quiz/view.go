package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assessdto "studyhall/internal/modules/assess/dto"
	"studyhall/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type QuizPort interface {
	GenerateQuiz(ctx context.Context, noteID string, count int) (assessdto.SessionOutput, error)
	Select(choice int) (assessdto.SessionOutput, error)
	Advance() (assessdto.SessionOutput, error)
	Retreat() (assessdto.SessionOutput, error)
	Submit(ctx context.Context) (assessdto.ResultOutput, error)
	Discard()
}

// ─── messages ────────────────────────────────────────────────────────────────

type SessionMsg struct {
	Out assessdto.SessionOutput
	Err error
}

type ResultMsg struct {
	Out assessdto.ResultOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       QuizPort
	session    assessdto.SessionOutput
	result     assessdto.ResultOutput
	hasQuiz    bool
	completed  bool
	submitting bool
	noteTitle  string
	toast      string
	spinner    spinner.Model
	loading    bool
	width      int
	height     int
}

func New(port QuizPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp}
}

func (m Model) Init() tea.Cmd { return m.spinner.Tick }

// Generate requests a fresh quiz for the note, replacing any current one.
func (m *Model) Generate(noteID, noteTitle string, count int) tea.Cmd {
	m.loading = true
	m.noteTitle = noteTitle
	m.completed = false
	m.toast = ""
	return func() tea.Msg {
		out, err := m.port.GenerateQuiz(context.Background(), noteID, count)
		return SessionMsg{Out: out, Err: err}
	}
}

// Submit sends the finished attempt. The view stays on the questions until
// the graded result comes back; while one attempt is in flight, further
// submits are dropped here rather than bounced back as an error toast.
func (m *Model) Submit() tea.Cmd {
	if !m.hasQuiz || m.completed || m.submitting {
		return nil
	}
	m.submitting = true
	m.toast = "submitting…"
	return func() tea.Msg {
		out, err := m.port.Submit(context.Background())
		return ResultMsg{Out: out, Err: err}
	}
}

// Discard drops the current quiz and returns to the empty state.
func (m *Model) Discard() {
	m.port.Discard()
	m.hasQuiz = false
	m.completed = false
	m.toast = ""
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SessionMsg:
		m.loading = false
		if msg.Err != nil {
			m.toast = msg.Err.Error()
			return m, nil
		}
		m.session = msg.Out
		m.hasQuiz = msg.Out.Total > 0
		if m.hasQuiz && msg.Out.Status == "in_progress" {
			m.completed = false
		}

	case ResultMsg:
		m.submitting = false
		if msg.Err != nil {
			m.toast = msg.Err.Error()
			return m, nil
		}
		m.result = msg.Out
		m.completed = true
		m.toast = ""

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.hasQuiz || m.loading || m.submitting || m.completed {
			return m, nil
		}
		switch key := msg.String(); key {
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			choice := int(key[0] - '1')
			return m, m.localCmd(func() (assessdto.SessionOutput, error) {
				return m.port.Select(choice)
			})
		case "right", "l":
			return m, m.localCmd(m.port.Advance)
		case "left", "h":
			return m, m.localCmd(m.port.Retreat)
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch {
	case m.loading:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Generating quiz…")
	case !m.hasQuiz:
		hint := "Pick a note on the Notes tab and press g,\nor run quiz:generate from the palette."
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render(hint))
	case m.completed:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, m.renderResults())
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderQuestion())
}

// ─── rendering ───────────────────────────────────────────────────────────────

func (m Model) renderQuestion() string {
	question := m.session.Question
	var sb strings.Builder
	header := fmt.Sprintf("%s  ·  question %d/%d  ·  %ds",
		m.noteTitle, m.session.Cursor+1, m.session.Total, m.session.Elapsed)
	sb.WriteString(theme.Title.Render(header) + "\n\n")

	boxW := min(m.width-8, 76)
	var body strings.Builder
	body.WriteString(question.Prompt + "\n\n")
	for index, choice := range question.Choices {
		marker := "  "
		line := fmt.Sprintf("%d. %s", index+1, choice)
		if index == question.Selected {
			marker = theme.Hot.Render("▸ ")
			line = theme.Hot.Render(line)
		}
		body.WriteString(marker + line + "\n")
	}
	sb.WriteString(theme.PaneActive.Width(boxW).Render(body.String()) + "\n\n")

	answered := 0
	for _, ok := range m.session.Answered {
		if ok {
			answered++
		}
	}
	sb.WriteString(fmt.Sprintf("%s %d/%d answered\n",
		theme.Muted.Render("progress:"), answered, m.session.Total))
	sb.WriteString("\n" + theme.Muted.Render("1-9: answer  ←/→: move  s: submit"))
	if m.toast != "" {
		sb.WriteString("\n\n" + theme.Hot.Render(m.toast))
	}
	return sb.String()
}

func (m Model) renderResults() string {
	r := m.result
	var sb strings.Builder
	verdict := theme.Bad
	if r.Score >= 80 {
		verdict = theme.Good
	} else if r.Score >= 60 {
		verdict = theme.Hot
	}
	sb.WriteString(theme.Title.Render("Quiz Results") + "\n\n")
	sb.WriteString(verdict.Render(fmt.Sprintf("%.0f%%", r.Score)) +
		fmt.Sprintf("  %d of %d correct  ·  %d:%02d\n\n",
			r.CorrectCount, r.TotalQuestions, r.ElapsedSeconds/60, r.ElapsedSeconds%60))

	boxW := min(m.width-8, 76)
	for index, question := range r.Questions {
		mark := theme.Bad.Render("✗")
		if question.Correct {
			mark = theme.Good.Render("✓")
		}
		var body strings.Builder
		body.WriteString(fmt.Sprintf("%s %d. %s\n", mark, index+1, question.Prompt))
		for choiceIdx, choice := range question.Choices {
			switch {
			case choiceIdx == question.CorrectChoice:
				body.WriteString(theme.Good.Render("   "+choice) + "\n")
			case choiceIdx == question.Selected && !question.Correct:
				body.WriteString(theme.Bad.Render("   "+choice) + "\n")
			default:
				body.WriteString("   " + choice + "\n")
			}
		}
		if question.Explanation != "" {
			body.WriteString(theme.Muted.Render("   "+question.Explanation) + "\n")
		}
		sb.WriteString(lipgloss.NewStyle().Width(boxW).Render(body.String()) + "\n")
	}
	sb.WriteString(theme.Muted.Render("quiz:generate for another round  ·  quiz:discard to clear"))
	return sb.String()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) localCmd(op func() (assessdto.SessionOutput, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := op()
		return SessionMsg{Out: out, Err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
