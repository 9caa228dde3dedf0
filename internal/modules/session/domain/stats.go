package domain

import "time"

// SubjectStat is a per-subject aggregate over completed sessions, produced by
// the history projection.
type SubjectStat struct {
	Subject         string
	Sessions        int
	TotalMinutes    int
	AverageScore    float64
	AverageDistract float64
}

// SessionPatch is a partial update merged into an existing session. Nil
// fields are left untouched. Status and focus score are never patched
// directly: status moves through lifecycle operations, the score is derived.
type SessionPatch struct {
	Subject            *string
	Topic              *string
	PlannedDurationMin *int
	ActualDurationMin  *int
	CompletedPomodoros *int
	Distractions       *int
	Notes              *string
	ScheduledFor       *time.Time
}

func (p SessionPatch) Apply(s Session) Session {
	if p.Subject != nil {
		s.Subject = *p.Subject
	}
	if p.Topic != nil {
		s.Topic = *p.Topic
	}
	if p.PlannedDurationMin != nil {
		s.PlannedDurationMin = *p.PlannedDurationMin
	}
	if p.ActualDurationMin != nil {
		s.ActualDurationMin = *p.ActualDurationMin
	}
	if p.CompletedPomodoros != nil {
		s.CompletedPomodoros = *p.CompletedPomodoros
	}
	if p.Distractions != nil {
		s.Distractions = *p.Distractions
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.ScheduledFor != nil {
		s.ScheduledFor = *p.ScheduledFor
	}
	s.FocusScore = Score(s)
	return s
}
