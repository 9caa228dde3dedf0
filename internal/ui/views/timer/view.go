package timer

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	timerdto "studybud/internal/modules/timer/dto"
	"studybud/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TimerPort interface {
	Status(ctx context.Context) (timerdto.TimerOutput, error)
	Tick(ctx context.Context) (timerdto.TickOutput, error)
	Pause(ctx context.Context) (timerdto.TimerOutput, error)
	Resume(ctx context.Context) (timerdto.TimerOutput, error)
	Reset(ctx context.Context) (timerdto.TimerOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StateLoadedMsg struct {
	State timerdto.TimerOutput
	Err   error
}

type TickedMsg struct {
	Out timerdto.TickOutput
	Err error
}

// FocusCompletedMsg bubbles up to the app model when a focus period runs out,
// so the driver can complete the bound session.
type FocusCompletedMsg struct {
	SessionID string
}

// BreakCompletedMsg bubbles up when a break runs out and the timer stops.
type BreakCompletedMsg struct {
	Mode string
}

type tickScheduledMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders the countdown and owns the 1 Hz driver. A tick is only
// scheduled while the persisted timer reports running, so an idle timer
// costs nothing.
type Model struct {
	port         TimerPort
	state        timerdto.TimerOutput
	sessionLabel string
	status       string
	width        int
	height       int
	ticking      bool
}

func New(port TimerPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.loadStateCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StateLoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.state = msg.State
		m.status = ""
		if m.state.Running && !m.ticking {
			m.ticking = true
			return m, m.scheduleTick()
		}

	case tickScheduledMsg:
		if !m.state.Running {
			m.ticking = false
			return m, nil
		}
		return m, m.tickCmd()

	case TickedMsg:
		if msg.Err != nil {
			m.ticking = false
			m.status = msg.Err.Error()
			return m, nil
		}
		m.state = msg.Out.Timer
		var cmds []tea.Cmd
		if msg.Out.PeriodComplete {
			if msg.Out.CompletedMode == "FOCUS" {
				sessionID := msg.Out.SessionID
				cmds = append(cmds, func() tea.Msg { return FocusCompletedMsg{SessionID: sessionID} })
			} else {
				mode := msg.Out.CompletedMode
				cmds = append(cmds, func() tea.Msg { return BreakCompletedMsg{Mode: mode} })
			}
		}
		if m.state.Running {
			cmds = append(cmds, m.scheduleTick())
		} else {
			m.ticking = false
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m Model) View() string {
	clock := fmt.Sprintf("%02d:%02d", m.state.TimeLeftSec/60, m.state.TimeLeftSec%60)

	modeStyle := theme.Good
	if m.state.Mode != "FOCUS" {
		modeStyle = theme.Hot
	}
	runState := theme.Muted.Render("paused")
	if m.state.Running {
		runState = theme.Good.Render("running")
	}

	var body string
	body += modeStyle.Render(m.state.Mode) + "  " + runState + "\n\n"
	body += lipgloss.NewStyle().Foreground(theme.Lavender).Bold(true).Render(bigClock(clock)) + "\n"
	body += theme.Muted.Render(fmt.Sprintf("round %d of %d", m.state.Round, m.state.TotalRounds)) + "\n\n"
	if m.sessionLabel != "" {
		body += theme.Title.Render(m.sessionLabel) + "\n\n"
	} else {
		body += theme.Muted.Render("no session bound — start one from the Sessions tab") + "\n\n"
	}
	body += theme.Muted.Render("space: pause/resume  r: reset")
	if m.status != "" {
		body += "\n\n" + theme.Bad.Render(m.status)
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Snapshot returns the last known timer state.
func (m Model) Snapshot() timerdto.TimerOutput { return m.state }

// SetSessionLabel sets the line shown under the countdown.
func (m *Model) SetSessionLabel(label string) { m.sessionLabel = label }

// Toggle pauses a running timer or resumes a paused one.
func (m Model) Toggle() tea.Cmd {
	if m.state.Running {
		return m.pauseCmd()
	}
	return m.resumeCmd()
}

// Reset puts the timer back to the idle default.
func (m Model) Reset() tea.Cmd { return m.resetCmd() }

// Reload re-reads the persisted timer state.
func (m Model) Reload() tea.Cmd { return m.loadStateCmd() }

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadStateCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.Status(context.Background())
		return StateLoadedMsg{State: state, Err: err}
	}
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickScheduledMsg{}
	})
}

func (m Model) tickCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Tick(context.Background())
		return TickedMsg{Out: out, Err: err}
	}
}

func (m Model) pauseCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.Pause(context.Background())
		return StateLoadedMsg{State: state, Err: err}
	}
}

func (m Model) resumeCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.Resume(context.Background())
		return StateLoadedMsg{State: state, Err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.Reset(context.Background())
		return StateLoadedMsg{State: state, Err: err}
	}
}

// bigClock renders the mm:ss string in a 3-row block font.
func bigClock(clock string) string {
	rows := [3]string{}
	for _, r := range clock {
		glyph, ok := digitGlyphs[r]
		if !ok {
			glyph = digitGlyphs[' ']
		}
		for i := 0; i < 3; i++ {
			rows[i] += glyph[i] + " "
		}
	}
	return rows[0] + "\n" + rows[1] + "\n" + rows[2]
}

var digitGlyphs = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {" █ ", " █ ", " ▀ "},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", " ▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {" ▀ ", " ▀ ", "   "},
	' ': {"   ", "   ", "   "},
}
