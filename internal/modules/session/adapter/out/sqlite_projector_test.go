package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	adapter "studybud/internal/modules/session/adapter/out"
	"studybud/internal/modules/session/domain"
)

func completedSession(id, subject string, startedAt time.Time, minutes int, score float64) domain.Session {
	endedAt := startedAt.Add(time.Duration(minutes) * time.Minute)
	return domain.Session{
		ID:                 id,
		Subject:            subject,
		Topic:              "Review",
		PlannedDurationMin: minutes,
		ActualDurationMin:  minutes,
		FocusScore:         score,
		CompletedPomodoros: 1,
		Status:             domain.StatusCompleted,
		StartTime:          &startedAt,
		EndTime:            &endedAt,
	}
}

func TestProjectorListCompleted(t *testing.T) {
	t.Parallel()
	projector, err := adapter.NewSQLiteHistoryProjector(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	for _, session := range []domain.Session{
		completedSession("s-1", "Math", base, 25, 8),
		completedSession("s-2", "Bio", base.Add(2*time.Hour), 50, 6),
		{ID: "s-3", Subject: "Math", Topic: "Drill", PlannedDurationMin: 25, Status: domain.StatusCancelled},
	} {
		if err := projector.Upsert(ctx, session); err != nil {
			t.Fatalf("upsert %s: %v", session.ID, err)
		}
	}

	all, err := projector.ListCompleted(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("only completed sessions are listed, got %d", len(all))
	}
	if all[0].ID != "s-2" {
		t.Fatalf("newest first, got %s", all[0].ID)
	}
	if all[0].StartTime == nil || !all[0].StartTime.Equal(base.Add(2*time.Hour)) {
		t.Fatalf("start time should round-trip, got %v", all[0].StartTime)
	}

	math, err := projector.ListCompleted(ctx, "Math")
	if err != nil {
		t.Fatalf("list by subject: %v", err)
	}
	if len(math) != 1 || math[0].ID != "s-1" {
		t.Fatalf("subject filter wrong: %+v", math)
	}
}

func TestProjectorUpsertReplaces(t *testing.T) {
	t.Parallel()
	projector, err := adapter.NewSQLiteHistoryProjector(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	if err := projector.Upsert(ctx, completedSession("s-1", "Math", base, 25, 8)); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := projector.Upsert(ctx, completedSession("s-1", "Math", base, 30, 9)); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	sessions, err := projector.ListCompleted(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("upsert must not duplicate rows, got %d", len(sessions))
	}
	if sessions[0].ActualDurationMin != 30 || sessions[0].FocusScore != 9 {
		t.Fatalf("upsert should replace the row: %+v", sessions[0])
	}
}

func TestProjectorSubjectStats(t *testing.T) {
	t.Parallel()
	projector, err := adapter.NewSQLiteHistoryProjector(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	for _, session := range []domain.Session{
		completedSession("s-1", "Math", base, 25, 8),
		completedSession("s-2", "Math", base.Add(time.Hour), 25, 6),
		completedSession("s-3", "Bio", base.Add(2*time.Hour), 50, 9),
	} {
		if err := projector.Upsert(ctx, session); err != nil {
			t.Fatalf("upsert %s: %v", session.ID, err)
		}
	}

	stats, err := projector.SubjectStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected two subjects, got %d", len(stats))
	}
	if stats[0].Subject != "Math" || stats[0].Sessions != 2 || stats[0].TotalMinutes != 50 {
		t.Fatalf("math stats wrong: %+v", stats[0])
	}
	if stats[0].AverageScore != 7 {
		t.Fatalf("average score should be 7, got %v", stats[0].AverageScore)
	}
	if stats[1].Subject != "Bio" || stats[1].Sessions != 1 {
		t.Fatalf("bio stats wrong: %+v", stats[1])
	}
}

func TestProjectorReset(t *testing.T) {
	t.Parallel()
	projector, err := adapter.NewSQLiteHistoryProjector(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("new projector: %v", err)
	}
	ctx := context.Background()
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	if err := projector.Upsert(ctx, completedSession("s-1", "Math", base, 25, 8)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := projector.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	sessions, err := projector.ListCompleted(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("reset should empty the projection, got %d rows", len(sessions))
	}
}
