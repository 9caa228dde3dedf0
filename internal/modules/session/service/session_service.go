package service

import (
	"strings"
	"time"

	"studybud/internal/modules/session/domain"
	"studybud/internal/platform/clock"
	apperrors "studybud/internal/platform/errors"
	"studybud/internal/platform/id"
)

// SessionService applies commands to the in-memory state. Each method
// validates first and mutates only on success, so a failed command leaves
// the state untouched. Persistence and analytics recompute sit one layer up.
type SessionService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewSessionService(clock clock.Clock, idGen id.Generator) *SessionService {
	return &SessionService{clock: clock, idGen: idGen}
}

func (s *SessionService) Add(st *domain.State, subject, topic string, plannedMin int, notes string, scheduledFor time.Time) (domain.Session, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(topic) == "" || plannedMin <= 0 {
		return domain.Session{}, apperrors.ErrInvalidInput
	}
	now := s.clock.Now()
	if scheduledFor.IsZero() {
		scheduledFor = now
	}
	session := domain.Session{
		ID:                 s.idGen.New(),
		Subject:            subject,
		Topic:              topic,
		PlannedDurationMin: plannedMin,
		Breaks:             []domain.Break{},
		Notes:              notes,
		Status:             domain.StatusPlanned,
		CreatedAt:          now,
		ScheduledFor:       scheduledFor,
	}
	if err := session.Validate(); err != nil {
		return domain.Session{}, apperrors.ErrInvalidInput
	}
	st.Sessions = append(st.Sessions, session)
	return session, nil
}

func (s *SessionService) Update(st *domain.State, sessionID string, patch domain.SessionPatch) (domain.Session, error) {
	idx := st.Find(sessionID)
	if idx < 0 {
		return domain.Session{}, apperrors.ErrNotFound
	}
	merged := patch.Apply(st.Sessions[idx])
	if merged.Status == domain.StatusActive && merged.ActualDurationMin < st.Sessions[idx].ActualDurationMin {
		// actual duration never decreases while a session runs
		merged.ActualDurationMin = st.Sessions[idx].ActualDurationMin
		merged.FocusScore = domain.Score(merged)
	}
	if err := merged.Validate(); err != nil {
		return domain.Session{}, apperrors.ErrInvalidInput
	}
	st.Sessions[idx] = merged
	return merged, nil
}

// Delete removes the session. A missing id is reported as ErrNotFound rather
// than treated as a no-op; see the public contract.
func (s *SessionService) Delete(st *domain.State, sessionID string) error {
	idx := st.Find(sessionID)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	if st.ActiveSessionID == sessionID {
		st.ActiveSessionID = ""
	}
	st.Sessions = append(st.Sessions[:idx], st.Sessions[idx+1:]...)
	return nil
}

func (s *SessionService) Start(st *domain.State, sessionID string) (domain.Session, error) {
	idx := st.Find(sessionID)
	if idx < 0 {
		return domain.Session{}, apperrors.ErrNotFound
	}
	if st.ActiveSessionID != "" {
		return domain.Session{}, apperrors.ErrActiveSessionExists
	}
	if st.Sessions[idx].Status.Terminal() {
		return domain.Session{}, apperrors.ErrInvalidInput
	}
	now := s.clock.Now()
	st.Sessions[idx].Status = domain.StatusActive
	st.Sessions[idx].StartTime = &now
	st.ActiveSessionID = sessionID
	return st.Sessions[idx], nil
}

// Complete finishes the active session. elapsedSeconds carries the countdown
// progress when the timer drove the completion; zero means derive the actual
// duration from wall-clock time. fromTimer credits one finished pomodoro.
func (s *SessionService) Complete(st *domain.State, sessionID string, elapsedSeconds int, fromTimer bool) (domain.Session, error) {
	idx, err := s.requireActive(st, sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	now := s.clock.Now()
	session := st.Sessions[idx]
	session.Status = domain.StatusCompleted
	session.EndTime = &now
	session.ActualDurationMin = s.actualMinutes(session, elapsedSeconds, now)
	if fromTimer {
		session.CompletedPomodoros++
	}
	session.FocusScore = domain.Score(session)
	st.Sessions[idx] = session
	st.ActiveSessionID = ""
	return session, nil
}

func (s *SessionService) Cancel(st *domain.State, sessionID string) (domain.Session, error) {
	idx, err := s.requireActive(st, sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	now := s.clock.Now()
	session := st.Sessions[idx]
	session.Status = domain.StatusCancelled
	session.EndTime = &now
	session.FocusScore = domain.Score(session)
	st.Sessions[idx] = session
	st.ActiveSessionID = ""
	return session, nil
}

func (s *SessionService) Distract(st *domain.State, sessionID string) (domain.Session, error) {
	idx := st.Find(sessionID)
	if idx < 0 {
		return domain.Session{}, apperrors.ErrNotFound
	}
	st.Sessions[idx].Distractions++
	st.Sessions[idx].FocusScore = domain.Score(st.Sessions[idx])
	return st.Sessions[idx], nil
}

func (s *SessionService) AddFocusRecord(st *domain.State, sessionID string, level int, activity string) (domain.FocusRecord, error) {
	if st.Find(sessionID) < 0 {
		return domain.FocusRecord{}, apperrors.ErrNotFound
	}
	record := domain.FocusRecord{
		ID:         s.idGen.New(),
		SessionID:  sessionID,
		Timestamp:  s.clock.Now(),
		FocusLevel: level,
		Activity:   activity,
	}
	if err := record.Validate(); err != nil {
		return domain.FocusRecord{}, apperrors.ErrInvalidInput
	}
	st.FocusRecords = append(st.FocusRecords, record)
	return record, nil
}

func (s *SessionService) UpdateSettings(st *domain.State, apply func(*domain.Settings)) (domain.Settings, error) {
	updated := st.Settings
	apply(&updated)
	if updated.DefaultFocusMin <= 0 || updated.DefaultShortBreakMin <= 0 || updated.DefaultLongBreakMin <= 0 {
		return domain.Settings{}, apperrors.ErrInvalidInput
	}
	st.Settings = updated
	return updated, nil
}

func (s *SessionService) requireActive(st *domain.State, sessionID string) (int, error) {
	if st.ActiveSessionID == "" {
		return -1, apperrors.ErrNoActiveSession
	}
	if sessionID != "" && sessionID != st.ActiveSessionID {
		return -1, apperrors.ErrInvalidInput
	}
	idx := st.Find(st.ActiveSessionID)
	if idx < 0 {
		return -1, apperrors.ErrNotFound
	}
	return idx, nil
}

func (s *SessionService) actualMinutes(session domain.Session, elapsedSeconds int, now time.Time) int {
	minutes := session.ActualDurationMin
	switch {
	case elapsedSeconds > 0:
		minutes = (elapsedSeconds + 59) / 60
	case session.StartTime != nil:
		minutes = int(now.Sub(*session.StartTime).Minutes())
	}
	if minutes < session.ActualDurationMin {
		// actual duration never decreases while a session runs
		minutes = session.ActualDurationMin
	}
	if minutes < 0 {
		minutes = 0
	}
	return minutes
}
