package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "studybud/internal/modules/session/dto"
	"studybud/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AnalyticsPort interface {
	Insights(ctx context.Context) (sessiondto.InsightsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type InsightsLoadedMsg struct {
	Insights sessiondto.InsightsOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     AnalyticsPort
	insights sessiondto.InsightsOutput
	spinner  spinner.Model
	loading  bool
	errText  string
	width    int
	height   int
}

func New(port AnalyticsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadInsightsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case InsightsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.insights = msg.Insights

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
			m.spinner.View()+" Crunching insights…")
	}
	if m.errText != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render(m.errText))
	}

	in := m.insights
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Study Insights") + "\n\n")
	sb.WriteString(theme.Muted.Render("optimal times:     ") + strings.Join(in.OptimalStudyTimes, ", ") + "\n")
	sb.WriteString(fmt.Sprintf("%s%.1f / 10\n", theme.Muted.Render("average focus:     "), in.AverageFocusScore))
	sb.WriteString(fmt.Sprintf("%s%d min\n", theme.Muted.Render("recommended break: "), in.RecommendedBreakMin))
	sb.WriteString(theme.Muted.Render("trend:             ") + renderTrend(in.ProductivityTrend) + "\n")
	if !in.LastUpdated.IsZero() {
		sb.WriteString(theme.Muted.Render("updated:           ") + in.LastUpdated.Format("2006-01-02 15:04") + "\n")
	}

	if len(in.SubjectDifficulty) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Subject Difficulty") + "\n")
		subjects := make([]string, 0, len(in.SubjectDifficulty))
		for subject := range in.SubjectDifficulty {
			subjects = append(subjects, subject)
		}
		sort.Strings(subjects)
		for _, subject := range subjects {
			difficulty := in.SubjectDifficulty[subject]
			sb.WriteString(fmt.Sprintf("%-16s %s %.1f\n", subject, difficultyBar(difficulty), difficulty))
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("r: refresh"))

	panel := theme.Pane.Width(min(m.width-4, 72)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

// Reload refetches insights.
func (m Model) Reload() tea.Cmd { return m.loadInsightsCmd() }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) loadInsightsCmd() tea.Cmd {
	return func() tea.Msg {
		insights, err := m.port.Insights(context.Background())
		return InsightsLoadedMsg{Insights: insights, Err: err}
	}
}

func renderTrend(trend string) string {
	switch trend {
	case "increasing":
		return theme.Good.Render("▲ " + trend)
	case "decreasing":
		return theme.Bad.Render("▼ " + trend)
	default:
		return theme.Hot.Render("► " + trend)
	}
}

// difficultyBar draws a ten-cell bar for a 0..10 difficulty.
func difficultyBar(value float64) string {
	filled := int(value + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return theme.Hot.Render(strings.Repeat("█", filled)) + theme.Muted.Render(strings.Repeat("░", 10-filled))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
