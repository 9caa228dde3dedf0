package domain_test

import (
	"testing"

	"studybud/internal/modules/timer/domain"
)

func TestIdleDefaults(t *testing.T) {
	t.Parallel()
	timer := domain.Idle()
	if timer.Mode != domain.ModeFocus || timer.Running || timer.Round != 1 {
		t.Fatalf("idle state wrong: %+v", timer)
	}
	if timer.TimeLeftSec != domain.DefaultFocusMin*60 {
		t.Fatalf("idle should hold the default focus duration")
	}
	if timer.SessionID != "" {
		t.Fatalf("idle must not bind a session")
	}
}

func TestBeginStartsFocusCountdown(t *testing.T) {
	t.Parallel()
	timer := domain.Idle().Begin(1, "s-1")
	if timer.Mode != domain.ModeFocus || !timer.Running || timer.Round != 1 {
		t.Fatalf("begin state wrong: %+v", timer)
	}
	if timer.TimeLeftSec != 60 {
		t.Fatalf("one minute is sixty seconds, got %d", timer.TimeLeftSec)
	}
	if timer.SessionID != "s-1" {
		t.Fatalf("begin must bind the session")
	}
}

func TestTickDecrementsOncePerCall(t *testing.T) {
	t.Parallel()
	timer := domain.Idle().Begin(1, "s-1")
	timer, event := timer.Tick()
	if event.PeriodComplete {
		t.Fatalf("first tick must not complete the period")
	}
	if timer.TimeLeftSec != 59 {
		t.Fatalf("tick decrements exactly one second, got %d", timer.TimeLeftSec)
	}
}

func TestTickIgnoredWhileStopped(t *testing.T) {
	t.Parallel()
	timer := domain.Idle()
	ticked, event := timer.Tick()
	if ticked != timer || event.PeriodComplete {
		t.Fatalf("a stopped timer must not move")
	}
}

func TestFocusCompletionEntersShortBreak(t *testing.T) {
	t.Parallel()
	timer := domain.Idle().Begin(1, "s-1")

	var events int
	for i := 0; i < 60; i++ {
		var event domain.TickEvent
		timer, event = timer.Tick()
		if event.PeriodComplete {
			events++
			if event.CompletedMode != domain.ModeFocus {
				t.Fatalf("completed mode should be FOCUS, got %s", event.CompletedMode)
			}
			if event.SessionID != "s-1" {
				t.Fatalf("event should carry the bound session")
			}
		}
	}
	if events != 1 {
		t.Fatalf("sixty ticks of a one-minute focus fire exactly one event, got %d", events)
	}
	if timer.Mode != domain.ModeShortBreak {
		t.Fatalf("round 1 focus flows into a short break, got %s", timer.Mode)
	}
	if timer.TimeLeftSec != domain.ShortBreakMin*60 {
		t.Fatalf("short break is five minutes, got %d", timer.TimeLeftSec)
	}
	if !timer.Running {
		t.Fatalf("breaks auto-run")
	}
	if timer.SessionID != "s-1" {
		t.Fatalf("the session stays bound through the break")
	}
}

func TestFourthRoundFocusEntersLongBreak(t *testing.T) {
	t.Parallel()
	timer := domain.Timer{
		Mode:        domain.ModeFocus,
		TimeLeftSec: 1,
		Running:     true,
		Round:       domain.TotalRounds,
		SessionID:   "s-1",
	}
	timer, event := timer.Tick()
	if !event.PeriodComplete {
		t.Fatalf("reaching zero must complete the period")
	}
	if timer.Mode != domain.ModeLongBreak {
		t.Fatalf("every fourth round earns a long break, got %s", timer.Mode)
	}
	if timer.TimeLeftSec != domain.LongBreakMin*60 {
		t.Fatalf("long break is fifteen minutes, got %d", timer.TimeLeftSec)
	}
	if !timer.Running {
		t.Fatalf("breaks auto-run")
	}
}

func TestBreakCompletionArmsNextFocusStopped(t *testing.T) {
	t.Parallel()
	timer := domain.Timer{
		Mode:        domain.ModeShortBreak,
		TimeLeftSec: 1,
		Running:     true,
		Round:       1,
		SessionID:   "s-1",
	}
	timer, event := timer.Tick()
	if !event.PeriodComplete || event.CompletedMode != domain.ModeShortBreak {
		t.Fatalf("break completion event wrong: %+v", event)
	}
	if timer.Mode != domain.ModeFocus {
		t.Fatalf("a finished break arms the next focus leg")
	}
	if timer.TimeLeftSec != domain.DefaultFocusMin*60 {
		t.Fatalf("next focus leg holds the default duration, got %d", timer.TimeLeftSec)
	}
	if timer.Round != 2 {
		t.Fatalf("round advances after the break, got %d", timer.Round)
	}
	if timer.Running {
		t.Fatalf("the next focus leg waits for an explicit start")
	}
	if timer.SessionID != "" {
		t.Fatalf("the session unbinds when the break ends")
	}
}

func TestFullPomodoroCycle(t *testing.T) {
	t.Parallel()
	timer := domain.Idle().Begin(25, "s-1")
	var events int
	for i := 0; i < 25*60; i++ {
		var event domain.TickEvent
		timer, event = timer.Tick()
		if event.PeriodComplete {
			events++
		}
	}
	if events != 1 {
		t.Fatalf("a full focus leg fires one event, got %d", events)
	}
	if timer.Mode != domain.ModeShortBreak || !timer.Running {
		t.Fatalf("after 1500 ticks the timer is in an auto-running short break: %+v", timer)
	}
}

func TestPauseAndResume(t *testing.T) {
	t.Parallel()
	timer := domain.Idle().Begin(25, "s-1").Pause()
	if timer.Running {
		t.Fatalf("pause stops the countdown")
	}
	paused, event := timer.Tick()
	if paused.TimeLeftSec != timer.TimeLeftSec || event.PeriodComplete {
		t.Fatalf("a paused timer must not move")
	}
	resumed := timer.Resume()
	if !resumed.Running {
		t.Fatalf("resume restarts the countdown")
	}
}
