package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	notesdto "studyhall/internal/modules/notes/dto"
	"studyhall/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type NotesPort interface {
	List(ctx context.Context) ([]notesdto.NoteSummary, error)
	Get(ctx context.Context, id string) (notesdto.NoteOutput, error)
	Delete(ctx context.Context, id string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type NotesLoadedMsg struct {
	Notes []notesdto.NoteSummary
	Err   error
}

type DetailLoadedMsg struct {
	Detail notesdto.NoteOutput
	Err    error
}

type DeletedMsg struct {
	ID  string
	Err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type noteItem struct {
	note notesdto.NoteSummary
}

func (i noteItem) Title() string { return i.note.Title }
func (i noteItem) Description() string {
	desc := i.note.CreatedAt.Format("2006-01-02")
	if i.note.Subject != "" {
		desc = i.note.Subject + "  " + desc
	}
	return desc
}
func (i noteItem) FilterValue() string { return i.note.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    NotesPort
	list    list.Model
	detail  notesdto.NoteOutput
	preview viewport.Model
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port NotesPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Notes"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadNotesCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case NotesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Notes — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Notes))
		for i, note := range msg.Notes {
			items[i] = noteItem{note: note}
		}
		cmds = append(cmds, m.list.SetItems(items))
		if len(msg.Notes) > 0 {
			cmds = append(cmds, m.loadDetailCmd(msg.Notes[0].ID))
		}

	case DetailLoadedMsg:
		if msg.Err == nil {
			m.detail = msg.Detail
			m.preview.SetContent(m.renderDetail())
		}

	case DeletedMsg:
		if msg.Err == nil {
			m.loading = true
			m.detail = notesdto.NoteOutput{}
			cmds = append(cmds, m.loadNotesCmd())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				cmds = append(cmds, m.loadDetailCmd(item.note.ID))
			}
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading notes…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedNoteID returns the current selection's note ID, if any.
func (m Model) SelectedNoteID() (string, bool) {
	if item, ok := m.list.SelectedItem().(noteItem); ok {
		return item.note.ID, true
	}
	return "", false
}

// SelectedNoteTitle returns the current selection's title.
func (m Model) SelectedNoteTitle() string {
	if item, ok := m.list.SelectedItem().(noteItem); ok {
		return item.note.Title
	}
	return ""
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Reload refetches the note list.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return m.loadNotesCmd()
}

// DeleteSelected removes the current selection on the server.
func (m Model) DeleteSelected() tea.Cmd {
	item, ok := m.list.SelectedItem().(noteItem)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		err := m.port.Delete(context.Background(), item.note.ID)
		return DeletedMsg{ID: item.note.ID, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("Select a note to see details")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Title) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:      ") + d.ID + "\n")
	if d.Subject != "" {
		sb.WriteString(theme.Muted.Render("subject: ") + d.Subject + "\n")
	}
	if len(d.Tags) > 0 {
		sb.WriteString(theme.Muted.Render("tags:    ") + strings.Join(d.Tags, ", ") + "\n")
	}
	sb.WriteString(theme.Muted.Render("added:   ") + d.CreatedAt.Format("2006-01-02 15:04") + "\n")
	if d.WordCount > 0 {
		sb.WriteString(fmt.Sprintf("%s%d words", theme.Muted.Render("size:    "), d.WordCount))
		if d.PageCount > 0 {
			sb.WriteString(fmt.Sprintf(", %d pages", d.PageCount))
		}
		sb.WriteString("\n")
	}
	if d.Content != "" {
		sb.WriteString("\n" + d.Content + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("f: flashcards  g: quiz  c: chat  y: summary"))
	return sb.String()
}

func (m Model) loadNotesCmd() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.port.List(context.Background())
		return NotesLoadedMsg{Notes: notes, Err: err}
	}
}

func (m Model) loadDetailCmd(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.Get(context.Background(), id)
		return DetailLoadedMsg{Detail: detail, Err: err}
	}
}
