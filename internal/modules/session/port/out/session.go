package out

import (
	"context"

	"studybud/internal/modules/session/domain"
)

// StateStore persists the whole state blob. Load must substitute the built-in
// default dataset when the stored blob is missing or unreadable; corruption is
// never surfaced to the command layer.
type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
}

// HistoryProjector maintains a queryable index of completed sessions.
// The state blob stays the source of truth; the index is rebuilt on demand.
type HistoryProjector interface {
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, session domain.Session) error
	ListCompleted(ctx context.Context, subject string) ([]domain.Session, error)
	SubjectStats(ctx context.Context) ([]domain.SubjectStat, error)
}

// NoteStore exports a completed session as a note and returns its path.
type NoteStore interface {
	Export(ctx context.Context, session domain.Session) (string, error)
}
