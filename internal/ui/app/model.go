package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assessdto "studyhall/internal/modules/assess/dto"
	authdto "studyhall/internal/modules/auth/dto"
	chatdto "studyhall/internal/modules/chat/dto"
	dashdto "studyhall/internal/modules/dashboard/dto"
	notesdto "studyhall/internal/modules/notes/dto"
	summarydto "studyhall/internal/modules/summary/dto"
	"studyhall/internal/ui/components"
	"studyhall/internal/ui/theme"
	chatview "studyhall/internal/ui/views/chat"
	dashboardview "studyhall/internal/ui/views/dashboard"
	flashcardsview "studyhall/internal/ui/views/flashcards"
	notesview "studyhall/internal/ui/views/notes"
	quizview "studyhall/internal/ui/views/quiz"
	summaryview "studyhall/internal/ui/views/summary"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type assessPort interface {
	LoadFlashcards(ctx context.Context, noteID string) (assessdto.SessionOutput, error)
	GenerateFlashcards(ctx context.Context, noteID string, count int) (assessdto.SessionOutput, error)
	GenerateQuiz(ctx context.Context, noteID string, count int) (assessdto.SessionOutput, error)
	Flip() (assessdto.SessionOutput, error)
	Advance() (assessdto.SessionOutput, error)
	Retreat() (assessdto.SessionOutput, error)
	Select(choice int) (assessdto.SessionOutput, error)
	RecordReview(ctx context.Context, correct bool) (assessdto.ReviewOutput, error)
	Submit(ctx context.Context) (assessdto.ResultOutput, error)
	Restart() (assessdto.SessionOutput, error)
	Discard()
}

type notesPort interface {
	List(ctx context.Context) ([]notesdto.NoteSummary, error)
	Get(ctx context.Context, id string) (notesdto.NoteOutput, error)
	Delete(ctx context.Context, id string) error
}

type chatPort interface {
	Ask(ctx context.Context, noteID, question string) (chatdto.TranscriptOutput, error)
	Transcript() chatdto.TranscriptOutput
	Reset()
}

type summaryPort interface {
	Get(ctx context.Context, noteID string) (summarydto.SummaryOutput, error)
}

type dashboardPort interface {
	Overview(ctx context.Context) (dashdto.Overview, error)
}

type authPort interface {
	Status() (authdto.SessionStatus, error)
	Whoami(ctx context.Context) (authdto.UserOutput, error)
	Logout() error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabNotes tabID = iota
	tabFlashcards
	tabQuiz
	tabChat
	tabSummary
	tabDashboard
	tabCount
)

var tabLabels = [tabCount]string{
	"Notes", "Flashcards", "Quiz", "Chat", "Summary", "Dashboard",
}

// ─── async messages ───────────────────────────────────────────────────────────

type whoamiMsg struct {
	user authdto.UserOutput
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Cards   key.Binding
	Quiz    key.Binding
	Chat    key.Binding
	Summary key.Binding
	Submit  key.Binding
	Delete  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Cards:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flashcards")),
		Quiz:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "quiz")),
		Chat:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
		Summary: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "summary")),
		Submit:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit quiz")),
		Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete note")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cards, k.Quiz, k.Chat, k.Summary},
		{k.Submit, k.Delete},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay, and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	// ports used at this orchestration level only
	assess assessPort
	auth   authPort

	// sub-views (one per tab)
	notesView   notesview.Model
	cardsView   flashcardsview.Model
	quizView    quizview.Model
	chatView    chatview.Model
	summaryView summaryview.Model
	dashView    dashboardview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	account   authdto.SessionStatus
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	notes notesPort,
	assess assessPort,
	chat chatPort,
	summary summaryPort,
	dashboard dashboardPort,
	auth authPort,
) Model {
	m := Model{
		assess:      assess,
		auth:        auth,
		notesView:   notesview.New(notes),
		cardsView:   flashcardsview.New(assessCardsBridge{p: assess}),
		quizView:    quizview.New(assessQuizBridge{p: assess}),
		chatView:    chatview.New(chat),
		summaryView: summaryview.New(summary),
		dashView:    dashboardview.New(dashboard),
		activeTab:   tabNotes,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
	if status, err := auth.Status(); err == nil {
		m.account = status
		if status.Expired {
			m.status = "stored login expired — run studyhall login"
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.notesView.Init(),
		m.cardsView.Init(),
		m.quizView.Init(),
		m.chatView.Init(),
		m.summaryView.Init(),
		m.dashView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case whoamiMsg:
		if msg.err != nil {
			m.status = "whoami: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("logged in as %s <%s>", msg.user.Name, msg.user.Email)
			m.account.LoggedIn = true
			m.account.User = msg.user
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	// Session messages route to their owning view directly, so a load that
	// finishes after the user switched tabs still lands.
	case flashcardsview.SessionMsg:
		var cmd tea.Cmd
		m.cardsView, cmd = m.cardsView.Update(msg)
		return m, cmd

	case quizview.SessionMsg:
		var cmd tea.Cmd
		m.quizView, cmd = m.quizView.Update(msg)
		return m, cmd

	case flashcardsview.ReviewMsg:
		if msg.Err == nil && msg.Out.SyncErr != "" {
			m.status = msg.Out.SyncErr
		}
		var cmd tea.Cmd
		m.cardsView, cmd = m.cardsView.Update(msg)
		return m, cmd

	case quizview.ResultMsg:
		if msg.Err != nil {
			m.status = "submit: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("quiz completed: %.0f%%", msg.Out.Score)
		}
		var cmd tea.Cmd
		m.quizView, cmd = m.quizView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view while a filter or a text input is active.
		if m.subViewTyping() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "f":
			if m.activeTab == tabNotes {
				if id, ok := m.notesView.SelectedNoteID(); ok {
					m.activeTab = tabFlashcards
					cmds = append(cmds, m.cardsView.Load(id, m.notesView.SelectedNoteTitle()))
				}
			}
		case "g":
			if m.activeTab == tabNotes {
				if id, ok := m.notesView.SelectedNoteID(); ok {
					m.activeTab = tabQuiz
					cmds = append(cmds, m.quizView.Generate(id, m.notesView.SelectedNoteTitle(), defaultQuizCount))
				}
			}
		case "c":
			if m.activeTab == tabNotes {
				if id, ok := m.notesView.SelectedNoteID(); ok {
					m.chatView.SetNote(id, m.notesView.SelectedNoteTitle())
					m.activeTab = tabChat
				}
			}
		case "y":
			if m.activeTab == tabNotes {
				if id, ok := m.notesView.SelectedNoteID(); ok {
					m.activeTab = tabSummary
					cmds = append(cmds, m.summaryView.Load(id))
				}
			}
		case "s":
			if m.activeTab == tabQuiz {
				cmds = append(cmds, m.quizView.Submit())
			}
		case "x":
			if m.activeTab == tabNotes {
				cmds = append(cmds, m.notesView.DeleteSelected())
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabNotes:
		m.notesView, tabCmd = m.notesView.Update(msg)
	case tabFlashcards:
		m.cardsView, tabCmd = m.cardsView.Update(msg)
	case tabQuiz:
		m.quizView, tabCmd = m.quizView.Update(msg)
	case tabChat:
		m.chatView, tabCmd = m.chatView.Update(msg)
	case tabSummary:
		m.summaryView, tabCmd = m.summaryView.Update(msg)
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// defaultQuizCount and defaultCardCount mirror the web client's generation
// defaults.
const (
	defaultQuizCount = 5
	defaultCardCount = 10
)

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabNotes:
		return m.notesView.View()
	case tabFlashcards:
		return m.cardsView.View()
	case tabQuiz:
		return m.quizView.View()
	case tabChat:
		return m.chatView.View()
	case tabSummary:
		return m.summaryView.View()
	case tabDashboard:
		return m.dashView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studyhall  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.account.LoggedIn {
		left = theme.Hot.Render("● "+m.account.User.Email) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	selected, _ := m.notesView.SelectedNoteID()
	selectedTitle := m.notesView.SelectedNoteTitle()

	switch parts[0] {
	case "cards:load":
		if selected == "" {
			m.status = "no note selected"
			return m, nil
		}
		m.activeTab = tabFlashcards
		return m, m.cardsView.Load(selected, selectedTitle)

	case "cards:generate":
		if selected == "" {
			m.status = "no note selected"
			return m, nil
		}
		count := defaultCardCount
		if len(parts) >= 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
				count = n
			}
		}
		m.activeTab = tabFlashcards
		return m, m.cardsView.Generate(selected, selectedTitle, count)

	case "cards:restart":
		m.activeTab = tabFlashcards
		return m, m.cardsView.Restart()

	case "quiz:generate":
		if selected == "" {
			m.status = "no note selected"
			return m, nil
		}
		count := defaultQuizCount
		if len(parts) >= 2 {
			if n, err := strconv.Atoi(parts[1]); err == nil && n > 0 {
				count = n
			}
		}
		m.activeTab = tabQuiz
		return m, m.quizView.Generate(selected, selectedTitle, count)

	case "quiz:submit":
		m.activeTab = tabQuiz
		return m, m.quizView.Submit()

	case "quiz:discard":
		m.quizView.Discard()
		m.status = "quiz discarded"
		return m, nil

	case "note:delete":
		if selected == "" {
			m.status = "no note selected"
			return m, nil
		}
		return m, m.notesView.DeleteSelected()

	case "note:summary":
		if selected == "" {
			m.status = "no note selected"
			return m, nil
		}
		m.activeTab = tabSummary
		return m, m.summaryView.Load(selected)

	case "chat:ask":
		if selected == "" {
			m.status = "no note selected"
			return m, nil
		}
		question := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))
		if question == "" {
			m.status = "usage: chat:ask <question>"
			return m, nil
		}
		m.chatView.SetNote(selected, selectedTitle)
		m.activeTab = tabChat
		return m, m.chatView.Ask(question)

	case "chat:reset":
		m.chatView.Reset()
		m.status = "chat cleared"
		return m, nil

	case "auth:whoami":
		return m, m.whoamiCmd()

	case "auth:logout":
		if err := m.auth.Logout(); err != nil {
			m.status = "logout: " + err.Error()
		} else {
			m.account = authdto.SessionStatus{}
			m.status = "logged out"
		}
		return m, nil

	case "dashboard:refresh":
		m.activeTab = tabDashboard
		return m, m.dashView.Reload()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewTyping reports whether the active tab is capturing free-form typing
// (a list filter or the chat input), in which case global keys must yield.
func (m Model) subViewTyping() bool {
	switch m.activeTab {
	case tabNotes:
		return m.notesView.Filtering()
	case tabChat:
		return m.chatView.Typing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.notesView, _ = m.notesView.Update(sz)
	m.cardsView, _ = m.cardsView.Update(sz)
	m.quizView, _ = m.quizView.Update(sz)
	m.chatView, _ = m.chatView.Update(sz)
	m.summaryView, _ = m.summaryView.Update(sz)
	m.dashView, _ = m.dashView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) whoamiCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := m.auth.Whoami(context.Background())
		return whoamiMsg{user: user, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows the broad assess port to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type assessCardsBridge struct{ p assessPort }

func (b assessCardsBridge) LoadFlashcards(ctx context.Context, noteID string) (assessdto.SessionOutput, error) {
	return b.p.LoadFlashcards(ctx, noteID)
}
func (b assessCardsBridge) GenerateFlashcards(ctx context.Context, noteID string, count int) (assessdto.SessionOutput, error) {
	return b.p.GenerateFlashcards(ctx, noteID, count)
}
func (b assessCardsBridge) Flip() (assessdto.SessionOutput, error)    { return b.p.Flip() }
func (b assessCardsBridge) Advance() (assessdto.SessionOutput, error) { return b.p.Advance() }
func (b assessCardsBridge) Retreat() (assessdto.SessionOutput, error) { return b.p.Retreat() }
func (b assessCardsBridge) RecordReview(ctx context.Context, correct bool) (assessdto.ReviewOutput, error) {
	return b.p.RecordReview(ctx, correct)
}
func (b assessCardsBridge) Restart() (assessdto.SessionOutput, error) { return b.p.Restart() }

type assessQuizBridge struct{ p assessPort }

func (b assessQuizBridge) GenerateQuiz(ctx context.Context, noteID string, count int) (assessdto.SessionOutput, error) {
	return b.p.GenerateQuiz(ctx, noteID, count)
}
func (b assessQuizBridge) Select(choice int) (assessdto.SessionOutput, error) {
	return b.p.Select(choice)
}
func (b assessQuizBridge) Advance() (assessdto.SessionOutput, error) { return b.p.Advance() }
func (b assessQuizBridge) Retreat() (assessdto.SessionOutput, error) { return b.p.Retreat() }
func (b assessQuizBridge) Submit(ctx context.Context) (assessdto.ResultOutput, error) {
	return b.p.Submit(ctx)
}
func (b assessQuizBridge) Discard() { b.p.Discard() }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
