package dto

import "time"

type AddInput struct {
	Subject            string
	Topic              string
	PlannedDurationMin int
	Notes              string
	ScheduledFor       time.Time
}

type UpdateInput struct {
	SessionID          string
	Subject            *string
	Topic              *string
	PlannedDurationMin *int
	ActualDurationMin  *int
	CompletedPomodoros *int
	Distractions       *int
	Notes              *string
	ScheduledFor       *time.Time
}

type CompleteInput struct {
	SessionID      string
	ElapsedSeconds int
	FromTimer      bool
}

type BreakOutput struct {
	StartTime   time.Time
	DurationMin int
}

type SessionOutput struct {
	SessionID          string
	Subject            string
	Topic              string
	PlannedDurationMin int
	ActualDurationMin  int
	FocusScore         float64
	CompletedPomodoros int
	Breaks             []BreakOutput
	Distractions       int
	Notes              string
	Status             string
	StartTime          *time.Time
	EndTime            *time.Time
	CreatedAt          time.Time
	ScheduledFor       time.Time
	NotePath           string
}

type FocusRecordInput struct {
	SessionID  string
	FocusLevel int
	Activity   string
}

type FocusRecordOutput struct {
	RecordID   string
	SessionID  string
	Timestamp  time.Time
	FocusLevel int
	Activity   string
}

type SettingsInput struct {
	DefaultFocusMin      *int
	DefaultShortBreakMin *int
	DefaultLongBreakMin  *int
	SoundEnabled         *bool
	NotificationsEnabled *bool
	AutoStartBreaks      *bool
	SuggestionsEnabled   *bool
}

type SettingsOutput struct {
	DefaultFocusMin      int
	DefaultShortBreakMin int
	DefaultLongBreakMin  int
	SoundEnabled         bool
	NotificationsEnabled bool
	AutoStartBreaks      bool
	SuggestionsEnabled   bool
}

type InsightsOutput struct {
	OptimalStudyTimes   []string
	SubjectDifficulty   map[string]float64
	AverageFocusScore   float64
	RecommendedBreakMin int
	ProductivityTrend   string
	LastUpdated         time.Time
}

type HistoryItem struct {
	SessionID         string
	Subject           string
	Topic             string
	ActualDurationMin int
	FocusScore        float64
	StartedAt         *time.Time
	EndedAt           *time.Time
}

type SubjectStatOutput struct {
	Subject         string
	Sessions        int
	TotalMinutes    int
	AverageScore    float64
	AverageDistract float64
}
