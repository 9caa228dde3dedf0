package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"studybud/internal/modules/session/domain"
	sessionout "studybud/internal/modules/session/port/out"
	"studybud/internal/platform/markdown"
	"studybud/internal/platform/slug"
)

// NoteSessionStore writes one markdown note per completed session, laid out
// by date so the notes directory reads as a study journal.
type NoteSessionStore struct {
	notesPath string
}

func NewNoteSessionStore(notesPath string) sessionout.NoteStore {
	return &NoteSessionStore{notesPath: notesPath}
}

func (s *NoteSessionStore) Export(_ context.Context, session domain.Session) (string, error) {
	date := session.CreatedAt
	if session.StartTime != nil {
		date = *session.StartTime
	}
	dir := filepath.Join(s.notesPath, "sessions", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session note dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(session.Topic))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version":  domain.SchemaVersion,
		"id":              session.ID,
		"subject":         session.Subject,
		"topic":           session.Topic,
		"status":          string(session.Status),
		"planned_minutes": session.PlannedDurationMin,
		"actual_minutes":  session.ActualDurationMin,
		"focus_score":     session.FocusScore,
		"pomodoros":       session.CompletedPomodoros,
		"distractions":    session.Distractions,
		"scheduled_for":   session.ScheduledFor.Format("2006-01-02T15:04:05Z07:00"),
	}
	if session.StartTime != nil {
		meta["started_at"] = session.StartTime.Format("2006-01-02T15:04:05Z07:00")
	}
	if session.EndTime != nil {
		meta["ended_at"] = session.EndTime.Format("2006-01-02T15:04:05Z07:00")
	}
	body := fmt.Sprintf("# %s\n\n- Subject: %s\n- Duration: %d of %d minutes\n- Focus score: %.1f\n\n## Notes\n\n%s\n",
		session.Topic, session.Subject, session.ActualDurationMin, session.PlannedDurationMin, session.FocusScore, session.Notes)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}
