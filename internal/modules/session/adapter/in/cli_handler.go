package in

import (
	"context"

	"studybud/internal/modules/session/dto"
	sessionin "studybud/internal/modules/session/port/in"
)

// CLIHandler adapts the session usecase for command handlers. It stays thin
// so cobra commands never touch domain types directly.
type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddInput) (dto.SessionOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateInput) (dto.SessionOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, sessionID string) error {
	return h.usecase.Delete(ctx, sessionID)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Get(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	return h.usecase.Get(ctx, sessionID)
}

func (h CLIHandler) Start(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	return h.usecase.Start(ctx, sessionID)
}

func (h CLIHandler) Complete(ctx context.Context, input dto.CompleteInput) (dto.SessionOutput, error) {
	return h.usecase.Complete(ctx, input)
}

func (h CLIHandler) Cancel(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	return h.usecase.Cancel(ctx, sessionID)
}

func (h CLIHandler) Distract(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	return h.usecase.Distract(ctx, sessionID)
}

func (h CLIHandler) GetActive(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.GetActive(ctx)
}

func (h CLIHandler) AddFocusRecord(ctx context.Context, input dto.FocusRecordInput) (dto.FocusRecordOutput, error) {
	return h.usecase.AddFocusRecord(ctx, input)
}

func (h CLIHandler) ListFocusRecords(ctx context.Context, sessionID string) ([]dto.FocusRecordOutput, error) {
	return h.usecase.ListFocusRecords(ctx, sessionID)
}

func (h CLIHandler) GetSettings(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.GetSettings(ctx)
}

func (h CLIHandler) UpdateSettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, error) {
	return h.usecase.UpdateSettings(ctx, input)
}

func (h CLIHandler) Insights(ctx context.Context) (dto.InsightsOutput, error) {
	return h.usecase.Insights(ctx)
}

func (h CLIHandler) History(ctx context.Context, subject string) ([]dto.HistoryItem, error) {
	return h.usecase.History(ctx, subject)
}

func (h CLIHandler) SubjectStats(ctx context.Context) ([]dto.SubjectStatOutput, error) {
	return h.usecase.SubjectStats(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
