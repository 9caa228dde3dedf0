package in

import (
	"context"

	timerdto "studybud/internal/modules/timer/dto"
	timerin "studybud/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (timerdto.TimerOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Begin(ctx context.Context, durationMin int, sessionID string) (timerdto.TimerOutput, error) {
	return h.usecase.Begin(ctx, timerdto.BeginInput{DurationMin: durationMin, SessionID: sessionID})
}

func (h CLIHandler) Tick(ctx context.Context) (timerdto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (timerdto.TimerOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (timerdto.TimerOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (timerdto.TimerOutput, error) {
	return h.usecase.Reset(ctx)
}
