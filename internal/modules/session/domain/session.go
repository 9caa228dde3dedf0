package domain

import (
	"fmt"
	"strings"
	"time"
)

const SchemaVersion = 1

type Status string

const (
	StatusPlanned   Status = "PLANNED"
	StatusActive    Status = "ACTIVE"
	StatusPaused    Status = "PAUSED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) Validate() error {
	switch s {
	case StatusPlanned, StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return nil
	}
	return fmt.Errorf("unknown session status %q", string(s))
}

// Terminal reports whether no further transition may leave this status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Break struct {
	StartTime   time.Time `json:"start_time"`
	DurationMin int       `json:"duration_minutes"`
}

// Session is one planned or executed study block. FocusScore is derived and
// never set by callers; see Score.
type Session struct {
	ID                 string     `json:"id"`
	Subject            string     `json:"subject"`
	Topic              string     `json:"topic"`
	PlannedDurationMin int        `json:"planned_duration_minutes"`
	ActualDurationMin  int        `json:"actual_duration_minutes"`
	FocusScore         float64    `json:"focus_score"`
	CompletedPomodoros int        `json:"completed_pomodoros"`
	Breaks             []Break    `json:"breaks"`
	Distractions       int        `json:"distractions"`
	Notes              string     `json:"notes"`
	Status             Status     `json:"status"`
	StartTime          *time.Time `json:"start_time"`
	EndTime            *time.Time `json:"end_time"`
	CreatedAt          time.Time  `json:"created_at"`
	ScheduledFor       time.Time  `json:"scheduled_for"`
}

func (s Session) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(s.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(s.Topic) == "" {
		return fmt.Errorf("topic is required")
	}
	if s.PlannedDurationMin <= 0 {
		return fmt.Errorf("planned duration must be positive")
	}
	if s.ActualDurationMin < 0 || s.Distractions < 0 || s.CompletedPomodoros < 0 {
		return fmt.Errorf("counters must be non-negative")
	}
	if err := s.Status.Validate(); err != nil {
		return err
	}
	if s.Status.Terminal() != (s.EndTime != nil) {
		return fmt.Errorf("end time must be set exactly for completed or cancelled sessions")
	}
	return nil
}

// FocusRecord is a point-in-time focus sample bound to a session.
// Records are append-only; the store never mutates or deletes them.
type FocusRecord struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Timestamp  time.Time `json:"timestamp"`
	FocusLevel int       `json:"focus_level"`
	Activity   string    `json:"activity"`
}

func (r FocusRecord) Validate() error {
	if r.SessionID == "" {
		return fmt.Errorf("focus record session id is required")
	}
	if r.FocusLevel < 0 || r.FocusLevel > 10 {
		return fmt.Errorf("focus level must be within 0..10")
	}
	return nil
}

type Settings struct {
	DefaultFocusMin      int  `json:"default_focus_minutes"`
	DefaultShortBreakMin int  `json:"default_short_break_minutes"`
	DefaultLongBreakMin  int  `json:"default_long_break_minutes"`
	SoundEnabled         bool `json:"sound_enabled"`
	NotificationsEnabled bool `json:"notifications_enabled"`
	AutoStartBreaks      bool `json:"auto_start_breaks"`
	SuggestionsEnabled   bool `json:"suggestions_enabled"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultFocusMin:      25,
		DefaultShortBreakMin: 5,
		DefaultLongBreakMin:  15,
		SoundEnabled:         true,
		NotificationsEnabled: true,
		AutoStartBreaks:      false,
		SuggestionsEnabled:   true,
	}
}

// Insights is the persisted snapshot of derived analytics. It is recomputed
// from the session list on every mutation and on load; the stored copy is a
// cache for display, never an input.
type Insights struct {
	OptimalStudyTimes   []string           `json:"optimal_study_times"`
	SubjectDifficulty   map[string]float64 `json:"subject_difficulty"`
	AverageFocusScore   float64            `json:"average_focus_score"`
	RecommendedBreakMin int                `json:"recommended_break_minutes"`
	ProductivityTrend   string             `json:"productivity_trend"`
	LastUpdated         time.Time          `json:"last_updated"`
}

// State is the whole persisted blob: the session collection, the single
// active-session pointer, focus records, derived insights, and settings.
type State struct {
	SchemaVersion   int           `json:"schema_version"`
	Sessions        []Session     `json:"sessions"`
	ActiveSessionID string        `json:"active_session_id"`
	FocusRecords    []FocusRecord `json:"focus_records"`
	Insights        Insights      `json:"insights"`
	Settings        Settings      `json:"settings"`
}

// Find returns the index of the session with the given id, or -1.
func (st *State) Find(id string) int {
	for i := range st.Sessions {
		if st.Sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// Active returns the session the active pointer refers to, if any.
func (st *State) Active() (*Session, bool) {
	if st.ActiveSessionID == "" {
		return nil, false
	}
	idx := st.Find(st.ActiveSessionID)
	if idx < 0 {
		return nil, false
	}
	return &st.Sessions[idx], true
}

// DefaultState is the built-in dataset substituted when the stored blob is
// missing or unreadable. Seeded rather than empty so first launch (and
// recovery from corruption) lands on a usable screen.
func DefaultState(now time.Time) State {
	yesterday := now.Add(-24 * time.Hour)
	start := time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 10, 0, 0, 0, now.Location())
	end := start.Add(90 * time.Minute)
	return State{
		SchemaVersion: SchemaVersion,
		Sessions: []Session{
			{
				ID:                 "seed-planned",
				Subject:            "Mathematics",
				Topic:              "Calculus 1: Limits",
				PlannedDurationMin: 25,
				Breaks:             []Break{},
				Status:             StatusPlanned,
				CreatedAt:          now,
				ScheduledFor:       now,
			},
			{
				ID:                 "seed-completed",
				Subject:            "English",
				Topic:              "IELTS Reading Practice",
				PlannedDurationMin: 50,
				ActualDurationMin:  45,
				FocusScore:         8.5,
				CompletedPomodoros: 2,
				Breaks: []Break{
					{StartTime: start.Add(25 * time.Minute), DurationMin: 5},
					{StartTime: start.Add(75 * time.Minute), DurationMin: 10},
				},
				Distractions: 2,
				Notes:        "Improved reading speed significantly",
				Status:       StatusCompleted,
				StartTime:    &start,
				EndTime:      &end,
				CreatedAt:    yesterday,
				ScheduledFor: yesterday,
			},
		},
		FocusRecords: []FocusRecord{
			{
				ID:         "seed-record",
				SessionID:  "seed-completed",
				Timestamp:  start.Add(15 * time.Minute),
				FocusLevel: 9,
				Activity:   "reading",
			},
		},
		Settings: DefaultSettings(),
	}
}
