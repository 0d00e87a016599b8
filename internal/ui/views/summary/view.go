package summary

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	summarydto "studyhall/internal/modules/summary/dto"
	"studyhall/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type SummaryPort interface {
	Get(ctx context.Context, noteID string) (summarydto.SummaryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Out summarydto.SummaryOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    SummaryPort
	summary summarydto.SummaryOutput
	body    viewport.Model
	spinner spinner.Model
	loading bool
	loaded  bool
	toast   string
	width   int
	height  int
}

func New(port SummaryPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, body: vp, spinner: sp}
}

func (m Model) Init() tea.Cmd { return m.spinner.Tick }

// Load fetches (generating server-side on first request) the note's summary.
func (m *Model) Load(noteID string) tea.Cmd {
	m.loading = true
	m.toast = ""
	return func() tea.Msg {
		out, err := m.port.Get(context.Background(), noteID)
		return LoadedMsg{Out: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 3

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.toast = msg.Err.Error()
			return m, nil
		}
		m.summary = msg.Out
		m.loaded = true
		m.body.SetContent(m.render())
		m.body.GotoTop()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Summarizing…")
	}
	if !m.loaded {
		hint := "Pick a note on the Notes tab and press y to view its summary."
		if m.toast != "" {
			hint = m.toast
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render(hint))
	}
	header := theme.Title.Render("Summary · " + m.summary.Title)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.body.View())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) render() string {
	var sb strings.Builder
	sb.WriteString(m.summary.Body + "\n")
	if len(m.summary.KeyPoints) > 0 {
		sb.WriteString("\n" + theme.Hot.Render("Key Points") + "\n")
		for _, point := range m.summary.KeyPoints {
			sb.WriteString("  • " + point + "\n")
		}
	}
	if !m.summary.CreatedAt.IsZero() {
		sb.WriteString("\n" + theme.Muted.Render("generated "+m.summary.CreatedAt.Format("2006-01-02")))
	}
	return sb.String()
}
