package domain

type Mode string

const (
	ModeFocus      Mode = "FOCUS"
	ModeShortBreak Mode = "SHORT_BREAK"
	ModeLongBreak  Mode = "LONG_BREAK"
)

const (
	// TotalRounds only gates the long-break decision; the round counter
	// itself increments monotonically and never wraps.
	TotalRounds = 4

	DefaultFocusMin = 25
	ShortBreakMin   = 5
	LongBreakMin    = 15
)

// Timer is the singleton countdown state. All durations are whole seconds;
// minute inputs are multiplied out at the boundary. Mutation happens only
// through the transition methods below.
type Timer struct {
	Mode        Mode   `json:"mode"`
	TimeLeftSec int    `json:"time_left_seconds"`
	Running     bool   `json:"running"`
	Round       int    `json:"round"`
	SessionID   string `json:"session_id"`
}

// Idle is the reset state: focus mode, default duration, stopped, round one,
// no session bound.
func Idle() Timer {
	return Timer{
		Mode:        ModeFocus,
		TimeLeftSec: DefaultFocusMin * 60,
		Round:       1,
	}
}

// Begin starts a focus countdown for the given session.
func (t Timer) Begin(durationMin int, sessionID string) Timer {
	return Timer{
		Mode:        ModeFocus,
		TimeLeftSec: durationMin * 60,
		Running:     true,
		Round:       1,
		SessionID:   sessionID,
	}
}

// TickEvent reports what a tick did. CompletedMode and SessionID describe the
// leg that just finished, before the self-transition.
type TickEvent struct {
	PeriodComplete bool
	CompletedMode  Mode
	SessionID      string
}

// Tick decrements the countdown by one second. This is the only mutation
// path for TimeLeftSec: exactly one decrement per external tick. When the
// countdown reaches zero the period-complete event fires and the machine
// self-transitions: a finished focus leg flows into a short break, or a long
// one every TotalRounds-th round, both auto-running; a finished break arms
// the next focus leg stopped, waiting for an explicit start.
func (t Timer) Tick() (Timer, TickEvent) {
	if !t.Running || t.TimeLeftSec <= 0 {
		return t, TickEvent{}
	}
	t.TimeLeftSec--
	if t.TimeLeftSec > 0 {
		return t, TickEvent{}
	}

	event := TickEvent{PeriodComplete: true, CompletedMode: t.Mode, SessionID: t.SessionID}
	switch t.Mode {
	case ModeFocus:
		if t.Round%TotalRounds == 0 {
			t.Mode = ModeLongBreak
			t.TimeLeftSec = LongBreakMin * 60
		} else {
			t.Mode = ModeShortBreak
			t.TimeLeftSec = ShortBreakMin * 60
		}
	default:
		t.Mode = ModeFocus
		t.TimeLeftSec = DefaultFocusMin * 60
		t.Round++
		t.Running = false
		t.SessionID = ""
	}
	return t, event
}

func (t Timer) Pause() Timer {
	t.Running = false
	return t
}

func (t Timer) Resume() Timer {
	t.Running = true
	return t
}
