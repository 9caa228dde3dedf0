package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studybud/internal/modules/session/domain"
	sessionout "studybud/internal/modules/session/port/out"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (sessionout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  subject TEXT NOT NULL,
  topic TEXT NOT NULL,
  status TEXT NOT NULL,
  planned_minutes INTEGER NOT NULL,
  actual_minutes INTEGER NOT NULL,
  focus_score REAL NOT NULL,
  pomodoros INTEGER NOT NULL,
  distractions INTEGER NOT NULL,
  started_at TEXT,
  ended_at TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) Upsert(ctx context.Context, session domain.Session) error {
	const stmt = `
INSERT INTO sessions (id, subject, topic, status, planned_minutes, actual_minutes, focus_score, pomodoros, distractions, started_at, ended_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  subject=excluded.subject,
  topic=excluded.topic,
  status=excluded.status,
  planned_minutes=excluded.planned_minutes,
  actual_minutes=excluded.actual_minutes,
  focus_score=excluded.focus_score,
  pomodoros=excluded.pomodoros,
  distractions=excluded.distractions,
  started_at=excluded.started_at,
  ended_at=excluded.ended_at;
`
	_, err := s.db.ExecContext(ctx, stmt,
		session.ID,
		session.Subject,
		session.Topic,
		string(session.Status),
		session.PlannedDurationMin,
		session.ActualDurationMin,
		session.FocusScore,
		session.CompletedPomodoros,
		session.Distractions,
		formatTime(session.StartTime),
		formatTime(session.EndTime),
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryProjector) ListCompleted(ctx context.Context, subject string) ([]domain.Session, error) {
	query := `SELECT id, subject, topic, status, planned_minutes, actual_minutes, focus_score, pomodoros, distractions, started_at, ended_at
FROM sessions WHERE status = ?`
	args := []any{string(domain.StatusCompleted)}
	if subject != "" {
		query += ` AND subject = ?`
		args = append(args, subject)
	}
	query += ` ORDER BY started_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list completed sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var session domain.Session
		var status, startedAt, endedAt sql.NullString
		if err := rows.Scan(
			&session.ID,
			&session.Subject,
			&session.Topic,
			&status,
			&session.PlannedDurationMin,
			&session.ActualDurationMin,
			&session.FocusScore,
			&session.CompletedPomodoros,
			&session.Distractions,
			&startedAt,
			&endedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		session.Status = domain.Status(status.String)
		session.StartTime = parseTime(startedAt)
		session.EndTime = parseTime(endedAt)
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (s *SQLiteHistoryProjector) SubjectStats(ctx context.Context) ([]domain.SubjectStat, error) {
	const query = `
SELECT subject, COUNT(*), COALESCE(SUM(actual_minutes), 0), COALESCE(AVG(focus_score), 0), COALESCE(AVG(distractions), 0)
FROM sessions WHERE status = ?
GROUP BY subject ORDER BY COUNT(*) DESC, subject ASC`

	rows, err := s.db.QueryContext(ctx, query, string(domain.StatusCompleted))
	if err != nil {
		return nil, fmt.Errorf("query subject stats: %w", err)
	}
	defer rows.Close()

	var stats []domain.SubjectStat
	for rows.Next() {
		var stat domain.SubjectStat
		if err := rows.Scan(&stat.Subject, &stat.Sessions, &stat.TotalMinutes, &stat.AverageScore, &stat.AverageDistract); err != nil {
			return nil, fmt.Errorf("scan subject stat: %w", err)
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timeLayout)
}

func parseTime(v sql.NullString) *time.Time {
	if !v.Valid || v.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, v.String)
	if err != nil {
		return nil
	}
	return &t
}
