package service

import (
	"context"

	"studybud/internal/modules/timer/domain"
	timerout "studybud/internal/modules/timer/port/out"
	apperrors "studybud/internal/platform/errors"
)

// TimerService owns the countdown state exclusively: every mutation loads,
// applies one transition, and saves.
type TimerService struct {
	store timerout.TimerStore
}

func NewTimerService(store timerout.TimerStore) *TimerService {
	return &TimerService{store: store}
}

func (s *TimerService) Status(ctx context.Context) (domain.Timer, error) {
	return s.store.Load(ctx)
}

func (s *TimerService) Begin(ctx context.Context, durationMin int, sessionID string) (domain.Timer, error) {
	if durationMin <= 0 || sessionID == "" {
		return domain.Timer{}, apperrors.ErrInvalidInput
	}
	timer, err := s.store.Load(ctx)
	if err != nil {
		return domain.Timer{}, err
	}
	timer = timer.Begin(durationMin, sessionID)
	return timer, s.store.Save(ctx, timer)
}

func (s *TimerService) Tick(ctx context.Context) (domain.Timer, domain.TickEvent, error) {
	timer, err := s.store.Load(ctx)
	if err != nil {
		return domain.Timer{}, domain.TickEvent{}, err
	}
	timer, event := timer.Tick()
	return timer, event, s.store.Save(ctx, timer)
}

func (s *TimerService) Pause(ctx context.Context) (domain.Timer, error) {
	timer, err := s.store.Load(ctx)
	if err != nil {
		return domain.Timer{}, err
	}
	timer = timer.Pause()
	return timer, s.store.Save(ctx, timer)
}

// Resume restarts a paused countdown. It is rejected when no session is
// bound: an unbound timer has nothing to count toward.
func (s *TimerService) Resume(ctx context.Context) (domain.Timer, error) {
	timer, err := s.store.Load(ctx)
	if err != nil {
		return domain.Timer{}, err
	}
	if timer.SessionID == "" {
		return domain.Timer{}, apperrors.ErrNoActiveSession
	}
	timer = timer.Resume()
	return timer, s.store.Save(ctx, timer)
}

func (s *TimerService) Reset(ctx context.Context) (domain.Timer, error) {
	timer := domain.Idle()
	return timer, s.store.Save(ctx, timer)
}
