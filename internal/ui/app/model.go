package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	sessiondto "studybud/internal/modules/session/dto"
	apperrors "studybud/internal/platform/errors"
	"studybud/internal/ui/components"
	"studybud/internal/ui/theme"
	analyticsview "studybud/internal/ui/views/analytics"
	sessionsview "studybud/internal/ui/views/sessions"
	timerview "studybud/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type sessionPort interface {
	List(ctx context.Context) ([]sessiondto.SessionOutput, error)
	Start(ctx context.Context, sessionID string) (sessiondto.SessionOutput, error)
	Complete(ctx context.Context, input sessiondto.CompleteInput) (sessiondto.SessionOutput, error)
	Cancel(ctx context.Context, sessionID string) (sessiondto.SessionOutput, error)
	Distract(ctx context.Context, sessionID string) (sessiondto.SessionOutput, error)
	GetActive(ctx context.Context) (sessiondto.SessionOutput, error)
	Insights(ctx context.Context) (sessiondto.InsightsOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabSessions
	tabAnalytics
	tabCount
)

var tabLabels = [tabCount]string{"Timer", "Sessions", "Analytics"}

// ─── async messages ───────────────────────────────────────────────────────────

type activeLoadedMsg struct {
	active sessiondto.SessionOutput
	err    error
}

type sessionActedMsg struct {
	verb string
	out  sessiondto.SessionOutput
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Start    key.Binding
	Complete key.Binding
	Cancel   key.Binding
	Distract key.Binding
	Toggle   key.Binding
	Reset    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete session")),
		Cancel:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancel session")),
		Distract: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "log distraction")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume timer")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset timer / refresh")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Complete, k.Cancel, k.Distract},
		{k.Toggle, k.Reset},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the active session
// banner, the global help overlay, and the command palette. All business logic
// is delegated to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	dataPath string

	session sessionPort

	timerView     timerview.Model
	sessionsView  sessionsview.Model
	analyticsView analyticsview.Model

	activeTab     tabID
	keys          keyMap
	help          help.Model
	showHelp      bool
	palette       components.Palette
	activeSession sessiondto.SessionOutput
	hasActive     bool
	status        string
	width         int
	height        int
}

func NewModel(dataPath string, session sessionPort, timer timerview.TimerPort) Model {
	return Model{
		dataPath:      dataPath,
		session:       session,
		timerView:     timerview.New(timer),
		sessionsView:  sessionsview.New(sessionPortBridge{p: session}),
		analyticsView: analyticsview.New(analyticsPortBridge{p: session}),
		activeTab:     tabTimer,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.sessionsView.Init(),
		m.analyticsView.Init(),
		m.loadActiveCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open, but timer messages still
	// have to reach the timer view so the countdown keeps moving.
	if m.palette.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case activeLoadedMsg:
		if msg.err != nil {
			if msg.err != apperrors.ErrNoActiveSession {
				m.status = "active session check: " + msg.err.Error()
			}
			m.hasActive = false
			m.activeSession = sessiondto.SessionOutput{}
			m.timerView.SetSessionLabel("")
		} else {
			m.hasActive = true
			m.activeSession = msg.active
			m.timerView.SetSessionLabel(msg.active.Subject + " / " + msg.active.Topic)
		}

	case sessionActedMsg:
		if msg.err != nil {
			m.status = msg.verb + " failed: " + msg.err.Error()
			return m, nil
		}
		switch msg.verb {
		case "start":
			m.status = "session started: " + msg.out.Subject + " / " + msg.out.Topic
			m.activeTab = tabTimer
		case "complete":
			m.status = fmt.Sprintf("session completed: %s (score %.1f)", msg.out.Topic, msg.out.FocusScore)
		case "cancel":
			m.status = "session cancelled: " + msg.out.Topic
		case "distract":
			m.status = fmt.Sprintf("distraction logged (%d total)", msg.out.Distractions)
		}
		cmds = append(cmds,
			m.loadActiveCmd(),
			m.sessionsView.Reload(),
			m.analyticsView.Reload(),
			m.timerView.Reload(),
		)
		return m, tea.Batch(cmds...)

	case timerview.FocusCompletedMsg:
		m.status = "focus period complete"
		if msg.SessionID != "" {
			cmds = append(cmds, m.completeSessionCmd(msg.SessionID, m.activeSession.PlannedDurationMin*60, true))
		}

	case timerview.BreakCompletedMsg:
		m.status = "break over — ready for the next round"

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the session list when its search filter is active.
		if m.activeTab == tabSessions && m.sessionsView.Filtering() {
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
		case "s":
			if m.activeTab == tabSessions {
				if id, ok := m.sessionsView.SelectedSessionID(); ok {
					cmds = append(cmds, m.startSessionCmd(id))
				}
			}
		case "c":
			if m.activeTab == tabSessions || m.activeTab == tabTimer {
				cmds = append(cmds, m.completeSessionCmd("", m.manualElapsedSec(), false))
			}
		case "x":
			if m.activeTab == tabSessions || m.activeTab == tabTimer {
				cmds = append(cmds, m.cancelSessionCmd())
			}
		case "d":
			if m.activeTab == tabSessions || m.activeTab == tabTimer {
				cmds = append(cmds, m.distractCmd())
			}
		case " ":
			if m.activeTab == tabTimer {
				cmds = append(cmds, m.timerView.Toggle())
			}
		case "r":
			switch m.activeTab {
			case tabTimer:
				cmds = append(cmds, m.timerView.Reset())
			case tabAnalytics:
				cmds = append(cmds, m.analyticsView.Reload())
			}
		}
	}

	// The timer view always receives messages so its 1 Hz driver survives
	// tab switches; the other views only see messages while focused.
	var timerCmd tea.Cmd
	m.timerView, timerCmd = m.timerView.Update(msg)
	cmds = append(cmds, timerCmd)

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabSessions:
		m.sessionsView, tabCmd = m.sessionsView.Update(msg)
	case tabAnalytics:
		m.analyticsView, tabCmd = m.analyticsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

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
	case tabTimer:
		return m.timerView.View()
	case tabSessions:
		return m.sessionsView.View()
	case tabAnalytics:
		return m.analyticsView.View()
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
	bar := "studybud  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasActive {
		left = theme.Hot.Render("● "+m.activeSession.Subject+" / "+m.activeSession.Topic) + "  " + left
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

	switch parts[0] {
	case "session:start":
		id, ok := m.sessionsView.SelectedSessionID()
		if !ok {
			m.status = "no session selected"
			return m, nil
		}
		return m, m.startSessionCmd(id)

	case "session:complete":
		return m, m.completeSessionCmd("", m.manualElapsedSec(), false)

	case "session:cancel":
		return m, m.cancelSessionCmd()

	case "session:distract":
		return m, m.distractCmd()

	case "timer:pause", "timer:resume":
		m.activeTab = tabTimer
		return m, m.timerView.Toggle()

	case "timer:reset":
		m.activeTab = tabTimer
		return m, m.timerView.Reset()

	case "analytics:refresh":
		m.activeTab = tabAnalytics
		return m, m.analyticsView.Reload()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// manualElapsedSec derives elapsed focus seconds from the persisted timer
// when the bound session is completed by hand mid-period.
func (m Model) manualElapsedSec() int {
	snap := m.timerView.Snapshot()
	if !m.hasActive || snap.SessionID != m.activeSession.SessionID {
		return 0
	}
	total := m.activeSession.PlannedDurationMin * 60
	if snap.Mode != "FOCUS" || snap.TimeLeftSec > total {
		return 0
	}
	return total - snap.TimeLeftSec
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.sessionsView, _ = m.sessionsView.Update(sz)
	m.analyticsView, _ = m.analyticsView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.session.GetActive(context.Background())
		return activeLoadedMsg{active: active, err: err}
	}
}

func (m Model) startSessionCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Start(context.Background(), sessionID)
		return sessionActedMsg{verb: "start", out: out, err: err}
	}
}

func (m Model) completeSessionCmd(sessionID string, elapsedSec int, fromTimer bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Complete(context.Background(), sessiondto.CompleteInput{
			SessionID:      sessionID,
			ElapsedSeconds: elapsedSec,
			FromTimer:      fromTimer,
		})
		return sessionActedMsg{verb: "complete", out: out, err: err}
	}
}

func (m Model) cancelSessionCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Cancel(context.Background(), "")
		return sessionActedMsg{verb: "cancel", out: out, err: err}
	}
}

func (m Model) distractCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.session.Distract(context.Background(), "")
		return sessionActedMsg{verb: "distract", out: out, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows the broad session port to the minimal interface needed
// by a specific sub-view.

type sessionPortBridge struct{ p sessionPort }

func (b sessionPortBridge) List(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return b.p.List(ctx)
}

type analyticsPortBridge struct{ p sessionPort }

func (b analyticsPortBridge) Insights(ctx context.Context) (sessiondto.InsightsOutput, error) {
	return b.p.Insights(ctx)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
