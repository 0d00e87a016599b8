package flashcards

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

type CardsPort interface {
	LoadFlashcards(ctx context.Context, noteID string) (assessdto.SessionOutput, error)
	GenerateFlashcards(ctx context.Context, noteID string, count int) (assessdto.SessionOutput, error)
	Flip() (assessdto.SessionOutput, error)
	Advance() (assessdto.SessionOutput, error)
	Retreat() (assessdto.SessionOutput, error)
	RecordReview(ctx context.Context, correct bool) (assessdto.ReviewOutput, error)
	Restart() (assessdto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SessionMsg struct {
	Out assessdto.SessionOutput
	Err error
}

type ReviewMsg struct {
	Out assessdto.ReviewOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      CardsPort
	session   assessdto.SessionOutput
	hasCards  bool
	noteTitle string
	toast     string
	spinner   spinner.Model
	loading   bool
	width     int
	height    int
}

func New(port CardsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp}
}

func (m Model) Init() tea.Cmd { return m.spinner.Tick }

// Load fetches the flashcard set for a note and starts a fresh session.
func (m *Model) Load(noteID, noteTitle string) tea.Cmd {
	m.loading = true
	m.noteTitle = noteTitle
	m.toast = ""
	return func() tea.Msg {
		out, err := m.port.LoadFlashcards(context.Background(), noteID)
		return SessionMsg{Out: out, Err: err}
	}
}

// Generate asks the server to create new cards for the note.
func (m *Model) Generate(noteID, noteTitle string, count int) tea.Cmd {
	m.loading = true
	m.noteTitle = noteTitle
	m.toast = ""
	return func() tea.Msg {
		out, err := m.port.GenerateFlashcards(context.Background(), noteID, count)
		return SessionMsg{Out: out, Err: err}
	}
}

// Restart rewinds the current session to the first card.
func (m Model) Restart() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Restart()
		return SessionMsg{Out: out, Err: err}
	}
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
		m.hasCards = msg.Out.Total > 0

	case ReviewMsg:
		if msg.Err != nil {
			m.toast = msg.Err.Error()
			return m, nil
		}
		m.session = msg.Out.Session
		if msg.Out.Finished {
			m.toast = "all cards reviewed"
		} else {
			m.toast = ""
		}
		if msg.Out.SyncErr != "" {
			m.toast = msg.Out.SyncErr
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.hasCards || m.loading {
			return m, nil
		}
		switch msg.String() {
		case " ", "enter":
			return m, m.localCmd(m.port.Flip)
		case "right", "l":
			return m, m.localCmd(m.port.Advance)
		case "left", "h":
			return m, m.localCmd(m.port.Retreat)
		case "y":
			return m, m.reviewCmd(true)
		case "n":
			return m, m.reviewCmd(false)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading flashcards…")
	}
	if !m.hasCards {
		hint := "Pick a note on the Notes tab and press f,\nor run cards:generate from the palette."
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render(hint))
	}

	card := m.session.Card
	var sb strings.Builder
	header := fmt.Sprintf("%s  ·  card %d/%d  ·  %.0f%%",
		m.noteTitle, m.session.Cursor+1, m.session.Total, m.session.Progress)
	sb.WriteString(theme.Title.Render(header) + "\n\n")

	face := card.Prompt
	label := theme.Muted.Render("question")
	if card.Revealed {
		face = card.Reveal
		label = theme.Hot.Render("answer")
	}
	cardW := min(m.width-8, 76)
	cardBox := theme.PaneActive.Width(cardW).Render(label + "\n\n" + face)
	sb.WriteString(cardBox + "\n\n")

	if card.Attempts > 0 {
		sb.WriteString(fmt.Sprintf("%s %d reviews, %d correct (%d%%)\n",
			theme.Muted.Render("this session:"), card.Attempts, card.Correct, card.Accuracy))
	}
	if card.TotalReviews > 0 {
		sb.WriteString(fmt.Sprintf("%s %d reviews, %d correct\n",
			theme.Muted.Render("all time:"), card.TotalReviews, card.TotalCorrect))
	}
	if card.Difficulty != "" {
		sb.WriteString(theme.Muted.Render("difficulty: "+card.Difficulty) + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("space: flip  ←/→: move  y: knew it  n: missed it"))
	if m.toast != "" {
		sb.WriteString("\n\n" + theme.Hot.Render(m.toast))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) localCmd(op func() (assessdto.SessionOutput, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := op()
		return SessionMsg{Out: out, Err: err}
	}
}

func (m Model) reviewCmd(correct bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.RecordReview(context.Background(), correct)
		return ReviewMsg{Out: out, Err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
