package usecase

import (
	"context"

	"studybud/internal/modules/timer/domain"
	"studybud/internal/modules/timer/dto"
	timerin "studybud/internal/modules/timer/port/in"
	"studybud/internal/modules/timer/service"
)

type Interactor struct {
	svc *service.TimerService
}

func NewInteractor(svc *service.TimerService) timerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Status(ctx context.Context) (dto.TimerOutput, error) {
	timer, err := i.svc.Status(ctx)
	if err != nil {
		return dto.TimerOutput{}, err
	}
	return toOutput(timer), nil
}

func (i *Interactor) Begin(ctx context.Context, input dto.BeginInput) (dto.TimerOutput, error) {
	timer, err := i.svc.Begin(ctx, input.DurationMin, input.SessionID)
	if err != nil {
		return dto.TimerOutput{}, err
	}
	return toOutput(timer), nil
}

func (i *Interactor) Tick(ctx context.Context) (dto.TickOutput, error) {
	timer, event, err := i.svc.Tick(ctx)
	if err != nil {
		return dto.TickOutput{}, err
	}
	return dto.TickOutput{
		Timer:          toOutput(timer),
		PeriodComplete: event.PeriodComplete,
		CompletedMode:  string(event.CompletedMode),
		SessionID:      event.SessionID,
	}, nil
}

func (i *Interactor) Pause(ctx context.Context) (dto.TimerOutput, error) {
	timer, err := i.svc.Pause(ctx)
	if err != nil {
		return dto.TimerOutput{}, err
	}
	return toOutput(timer), nil
}

func (i *Interactor) Resume(ctx context.Context) (dto.TimerOutput, error) {
	timer, err := i.svc.Resume(ctx)
	if err != nil {
		return dto.TimerOutput{}, err
	}
	return toOutput(timer), nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.TimerOutput, error) {
	timer, err := i.svc.Reset(ctx)
	if err != nil {
		return dto.TimerOutput{}, err
	}
	return toOutput(timer), nil
}

func toOutput(timer domain.Timer) dto.TimerOutput {
	return dto.TimerOutput{
		Mode:        string(timer.Mode),
		TimeLeftSec: timer.TimeLeftSec,
		Running:     timer.Running,
		Round:       timer.Round,
		TotalRounds: domain.TotalRounds,
		SessionID:   timer.SessionID,
	}
}
