package in

import (
	"context"

	"studybud/internal/modules/timer/dto"
)

type Usecase interface {
	Status(ctx context.Context) (dto.TimerOutput, error)
	Begin(ctx context.Context, input dto.BeginInput) (dto.TimerOutput, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	Pause(ctx context.Context) (dto.TimerOutput, error)
	Resume(ctx context.Context) (dto.TimerOutput, error)
	Reset(ctx context.Context) (dto.TimerOutput, error)
}
