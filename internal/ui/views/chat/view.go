package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	chatdto "studyhall/internal/modules/chat/dto"
	"studyhall/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ChatPort interface {
	Ask(ctx context.Context, noteID, question string) (chatdto.TranscriptOutput, error)
	Transcript() chatdto.TranscriptOutput
	Reset()
}

// ─── messages ────────────────────────────────────────────────────────────────

type AnswerMsg struct {
	Out chatdto.TranscriptOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       ChatPort
	transcript chatdto.TranscriptOutput
	noteID     string
	noteTitle  string
	input      textinput.Model
	history    viewport.Model
	spinner    spinner.Model
	waiting    bool
	toast      string
	width      int
	height     int
}

func New(port ChatPort) Model {
	ti := textinput.New()
	ti.Placeholder = "ask about this note…"
	ti.CharLimit = 512

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, input: ti, history: vp, spinner: sp}
}

func (m Model) Init() tea.Cmd { return m.spinner.Tick }

// SetNote grounds the conversation in a note. Switching notes clears the
// transcript.
func (m *Model) SetNote(noteID, noteTitle string) {
	if m.noteID != noteID {
		m.port.Reset()
		m.transcript = chatdto.TranscriptOutput{}
	}
	m.noteID = noteID
	m.noteTitle = noteTitle
	m.refresh()
}

// Ask submits a question from the palette.
func (m *Model) Ask(question string) tea.Cmd {
	return m.askCmd(question)
}

// Reset clears the conversation.
func (m *Model) Reset() {
	m.port.Reset()
	m.transcript = chatdto.TranscriptOutput{}
	m.refresh()
}

// Typing reports whether the input has focus; the app model yields global
// keys while the user is composing.
func (m Model) Typing() bool { return m.input.Focused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.Width = m.width - 4
		m.history.Height = m.height - 5
		m.input.Width = m.width - 8

	case AnswerMsg:
		m.waiting = false
		if msg.Err != nil {
			m.toast = msg.Err.Error()
		} else {
			m.toast = ""
		}
		m.transcript = msg.Out
		m.refresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "i", "enter":
			if !m.input.Focused() {
				cmds = append(cmds, m.input.Focus())
				return m, tea.Batch(cmds...)
			}
			if msg.String() == "enter" {
				question := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.input.Blur()
				if question != "" && !m.waiting {
					return m, m.askCmd(question)
				}
				return m, nil
			}
		case "esc":
			if m.input.Focused() {
				m.input.Blur()
				return m, nil
			}
		}
	}

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	title := "Chat"
	if m.noteTitle != "" {
		title = "Chat · " + m.noteTitle
	}
	header := theme.Title.Render(title)

	prompt := "> " + m.input.View()
	if m.waiting {
		prompt = m.spinner.View() + " thinking…"
	}
	footer := prompt
	if m.toast != "" {
		footer += "  " + theme.Bad.Render(m.toast)
	}
	if m.noteID == "" {
		footer = theme.Muted.Render("Pick a note on the Notes tab and press c to start chatting")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.history.View(), footer)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) askCmd(question string) tea.Cmd {
	if m.noteID == "" {
		m.toast = "no note selected"
		return nil
	}
	m.waiting = true
	noteID := m.noteID
	port := m.port
	return func() tea.Msg {
		out, err := port.Ask(context.Background(), noteID, question)
		return AnswerMsg{Out: out, Err: err}
	}
}

func (m *Model) refresh() {
	var sb strings.Builder
	if len(m.transcript.Messages) == 0 {
		sb.WriteString(theme.Muted.Render("No messages yet. Press i or enter to type."))
	}
	for _, message := range m.transcript.Messages {
		if message.Role == "user" {
			sb.WriteString(theme.Hot.Render("you: ") + message.Content + "\n\n")
		} else {
			sb.WriteString(theme.Title.Render("ai:  ") + message.Content + "\n\n")
		}
	}
	m.history.SetContent(sb.String())
	m.history.GotoBottom()
}
