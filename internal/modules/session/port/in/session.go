package in

import (
	"context"

	"studybud/internal/modules/session/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.SessionOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.SessionOutput, error)
	Delete(ctx context.Context, sessionID string) error
	List(ctx context.Context) ([]dto.SessionOutput, error)
	Get(ctx context.Context, sessionID string) (dto.SessionOutput, error)

	Start(ctx context.Context, sessionID string) (dto.SessionOutput, error)
	Complete(ctx context.Context, input dto.CompleteInput) (dto.SessionOutput, error)
	Cancel(ctx context.Context, sessionID string) (dto.SessionOutput, error)
	Distract(ctx context.Context, sessionID string) (dto.SessionOutput, error)
	GetActive(ctx context.Context) (dto.SessionOutput, error)

	AddFocusRecord(ctx context.Context, input dto.FocusRecordInput) (dto.FocusRecordOutput, error)
	ListFocusRecords(ctx context.Context, sessionID string) ([]dto.FocusRecordOutput, error)

	GetSettings(ctx context.Context) (dto.SettingsOutput, error)
	UpdateSettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, error)

	Insights(ctx context.Context) (dto.InsightsOutput, error)
	History(ctx context.Context, subject string) ([]dto.HistoryItem, error)
	SubjectStats(ctx context.Context) ([]dto.SubjectStatOutput, error)
	Reindex(ctx context.Context) error
}
