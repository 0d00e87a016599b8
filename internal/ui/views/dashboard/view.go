package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	dashdto "studyhall/internal/modules/dashboard/dto"
	"studyhall/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type DashboardPort interface {
	Overview(ctx context.Context) (dashdto.Overview, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Out dashdto.Overview
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     DashboardPort
	overview dashdto.Overview
	spinner  spinner.Model
	loading  bool
	loaded   bool
	toast    string
	width    int
	height   int
}

func New(port DashboardPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Reload refetches stats and analytics.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.toast = msg.Err.Error()
			return m, nil
		}
		m.overview = msg.Out
		m.loaded = true
		m.toast = ""

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading dashboard…")
	}
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render(m.toast))
	}

	stats := m.overview.Stats
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Notes", fmt.Sprintf("%d", stats.NotesUploaded)),
		statCard("Mastered", fmt.Sprintf("%d/%d", stats.FlashcardsMastered, stats.FlashcardsTotal)),
		statCard("Quizzes", fmt.Sprintf("%d", stats.QuizzesTaken)),
		statCard("Week", fmt.Sprintf("%d min", stats.WeekStudyMinutes)),
	)

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Dashboard") + "\n\n")
	sb.WriteString(cards + "\n\n")
	sb.WriteString(m.renderStudyChart() + "\n")
	sb.WriteString(m.renderTrend() + "\n")
	sb.WriteString(m.renderActivity())
	return lipgloss.NewStyle().Padding(0, 2).Render(sb.String())
}

// ─── rendering ───────────────────────────────────────────────────────────────

func statCard(label, value string) string {
	return theme.Pane.Width(16).Render(
		theme.Muted.Render(label) + "\n" + theme.Hot.Render(value))
}

// renderStudyChart draws the daily minutes as a horizontal bar chart, the
// terminal stand-in for the line chart the web dashboard shows.
func (m Model) renderStudyChart() string {
	daily := m.overview.Analytics.DailyStudy
	if len(daily) == 0 {
		return ""
	}
	peak := 1
	for _, day := range daily {
		if day.Minutes > peak {
			peak = day.Minutes
		}
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Daily Study (min)") + "\n")
	for _, day := range daily {
		bar := strings.Repeat("█", day.Minutes*30/peak)
		sb.WriteString(fmt.Sprintf("%s %s %d\n",
			theme.Muted.Render(day.Day), theme.Hot.Render(bar), day.Minutes))
	}
	return sb.String()
}

func (m Model) renderTrend() string {
	trend := m.overview.Analytics.PerformanceTrend
	if len(trend) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Accuracy Trend") + "\n")
	for _, day := range trend {
		style := theme.Bad
		if day.Accuracy >= 80 {
			style = theme.Good
		} else if day.Accuracy >= 60 {
			style = theme.Hot
		}
		sb.WriteString(fmt.Sprintf("%s %s\n",
			theme.Muted.Render(day.Day), style.Render(fmt.Sprintf("%.0f%%", day.Accuracy))))
	}
	return sb.String()
}

func (m Model) renderActivity() string {
	recent := m.overview.Stats.RecentActivity
	if len(recent) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Recent Activity") + "\n")
	limit := len(recent)
	if limit > 5 {
		limit = 5
	}
	for _, activity := range recent[:limit] {
		line := activity.Kind
		if activity.Subject != "" {
			line += " · " + activity.Subject
		}
		sb.WriteString("  " + line + "  " + theme.Muted.Render(activity.When) + "\n")
	}
	return sb.String()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Overview(context.Background())
		return LoadedMsg{Out: out, Err: err}
	}
}
