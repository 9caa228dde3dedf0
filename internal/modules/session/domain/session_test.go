package domain_test

import (
	"testing"
	"time"

	"studybud/internal/modules/session/domain"
)

func TestStatusValidate(t *testing.T) {
	t.Parallel()
	for _, status := range []domain.Status{
		domain.StatusPlanned, domain.StatusActive, domain.StatusPaused,
		domain.StatusCompleted, domain.StatusCancelled,
	} {
		if err := status.Validate(); err != nil {
			t.Fatalf("%s should be valid: %v", status, err)
		}
	}
	if err := domain.Status("SLEEPING").Validate(); err == nil {
		t.Fatalf("unknown status should fail")
	}
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()
	if !domain.StatusCompleted.Terminal() || !domain.StatusCancelled.Terminal() {
		t.Fatalf("completed and cancelled are terminal")
	}
	if domain.StatusPlanned.Terminal() || domain.StatusActive.Terminal() || domain.StatusPaused.Terminal() {
		t.Fatalf("non-terminal status reported terminal")
	}
}

func TestSessionValidate(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	base := domain.Session{
		ID:                 "id-1",
		Subject:            "Mathematics",
		Topic:              "Limits",
		PlannedDurationMin: 25,
		Status:             domain.StatusPlanned,
		CreatedAt:          now,
		ScheduledFor:       now,
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("session should be valid: %v", err)
	}
	missingSubject := base
	missingSubject.Subject = "  "
	if err := missingSubject.Validate(); err == nil {
		t.Fatalf("blank subject should fail")
	}
	zeroDuration := base
	zeroDuration.PlannedDurationMin = 0
	if err := zeroDuration.Validate(); err == nil {
		t.Fatalf("non-positive planned duration should fail")
	}
	negativeCounter := base
	negativeCounter.Distractions = -1
	if err := negativeCounter.Validate(); err == nil {
		t.Fatalf("negative counter should fail")
	}
	terminalWithoutEnd := base
	terminalWithoutEnd.Status = domain.StatusCompleted
	if err := terminalWithoutEnd.Validate(); err == nil {
		t.Fatalf("completed session without end time should fail")
	}
	activeWithEnd := base
	activeWithEnd.Status = domain.StatusActive
	activeWithEnd.StartTime = &now
	activeWithEnd.EndTime = &now
	if err := activeWithEnd.Validate(); err == nil {
		t.Fatalf("active session with end time should fail")
	}
}

func TestFocusRecordValidate(t *testing.T) {
	t.Parallel()
	record := domain.FocusRecord{SessionID: "s-1", FocusLevel: 10}
	if err := record.Validate(); err != nil {
		t.Fatalf("record should be valid: %v", err)
	}
	record.FocusLevel = 11
	if err := record.Validate(); err == nil {
		t.Fatalf("focus level above 10 should fail")
	}
	record.FocusLevel = -1
	if err := record.Validate(); err == nil {
		t.Fatalf("negative focus level should fail")
	}
}

func TestStateFindAndActive(t *testing.T) {
	t.Parallel()
	st := domain.State{
		Sessions: []domain.Session{{ID: "a"}, {ID: "b"}},
	}
	if st.Find("b") != 1 {
		t.Fatalf("find should locate session b")
	}
	if st.Find("zzz") != -1 {
		t.Fatalf("find should report -1 for a missing id")
	}
	if _, ok := st.Active(); ok {
		t.Fatalf("no active pointer means no active session")
	}
	st.ActiveSessionID = "a"
	active, ok := st.Active()
	if !ok || active.ID != "a" {
		t.Fatalf("active should resolve the pointer")
	}
	st.ActiveSessionID = "gone"
	if _, ok := st.Active(); ok {
		t.Fatalf("dangling pointer must not resolve")
	}
}

func TestDefaultStateIsUsable(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	st := domain.DefaultState(now)
	if st.SchemaVersion != domain.SchemaVersion {
		t.Fatalf("default state must carry the schema version")
	}
	if len(st.Sessions) != 2 {
		t.Fatalf("expected two seeded sessions, got %d", len(st.Sessions))
	}
	for _, session := range st.Sessions {
		if err := session.Validate(); err != nil {
			t.Fatalf("seeded session %s should validate: %v", session.ID, err)
		}
	}
	if st.ActiveSessionID != "" {
		t.Fatalf("default state must not have an active session")
	}
	if len(st.FocusRecords) != 1 {
		t.Fatalf("expected one seeded focus record")
	}
	if st.Settings != domain.DefaultSettings() {
		t.Fatalf("default state must carry default settings")
	}
}

func TestSessionPatchApplyRecomputesScore(t *testing.T) {
	t.Parallel()
	session := domain.Session{
		ID:                 "id-1",
		Subject:            "Physics",
		Topic:              "Optics",
		PlannedDurationMin: 50,
		Status:             domain.StatusPlanned,
	}
	actual := 50
	pomodoros := 1
	topic := "Waves"
	patched := domain.SessionPatch{
		Topic:              &topic,
		ActualDurationMin:  &actual,
		CompletedPomodoros: &pomodoros,
	}.Apply(session)

	if patched.Topic != "Waves" {
		t.Fatalf("topic should be patched")
	}
	if patched.Subject != "Physics" {
		t.Fatalf("nil fields must stay untouched")
	}
	if patched.FocusScore != 10 {
		t.Fatalf("score should be recomputed, got %v", patched.FocusScore)
	}
	if session.Topic != "Optics" {
		t.Fatalf("apply must not mutate its input")
	}
}
