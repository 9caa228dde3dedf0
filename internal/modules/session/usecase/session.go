package usecase

import (
	"context"

	analyticsdto "studybud/internal/modules/analytics/dto"
	analyticsin "studybud/internal/modules/analytics/port/in"
	"studybud/internal/modules/session/domain"
	"studybud/internal/modules/session/dto"
	sessionin "studybud/internal/modules/session/port/in"
	sessionout "studybud/internal/modules/session/port/out"
	"studybud/internal/modules/session/service"
	timerdto "studybud/internal/modules/timer/dto"
	timerin "studybud/internal/modules/timer/port/in"
	apperrors "studybud/internal/platform/errors"
	"studybud/internal/platform/tx"
)

// Interactor routes every command through the same shape: load the blob,
// apply the reducer, recompute insights over the post-mutation collection,
// persist. Failures before the commit leave the stored state untouched.
type Interactor struct {
	svc       *service.SessionService
	states    sessionout.StateStore
	projector sessionout.HistoryProjector
	notes     sessionout.NoteStore
	analytics analyticsin.Usecase
	timer     timerin.Usecase
	txm       tx.Manager
}

func NewInteractor(
	svc *service.SessionService,
	states sessionout.StateStore,
	projector sessionout.HistoryProjector,
	notes sessionout.NoteStore,
	analytics analyticsin.Usecase,
	timer timerin.Usecase,
	txm tx.Manager,
) sessionin.Usecase {
	return &Interactor{
		svc:       svc,
		states:    states,
		projector: projector,
		notes:     notes,
		analytics: analytics,
		timer:     timer,
		txm:       txm,
	}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.SessionOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.Add(&st, input.Subject, input.Topic, input.PlannedDurationMin, input.Notes, input.ScheduledFor)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.commit(ctx, &st, nil); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session, ""), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.SessionOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.Update(&st, input.SessionID, domain.SessionPatch{
		Subject:            input.Subject,
		Topic:              input.Topic,
		PlannedDurationMin: input.PlannedDurationMin,
		ActualDurationMin:  input.ActualDurationMin,
		CompletedPomodoros: input.CompletedPomodoros,
		Distractions:       input.Distractions,
		Notes:              input.Notes,
		ScheduledFor:       input.ScheduledFor,
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.commit(ctx, &st, nil); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session, ""), nil
}

func (i *Interactor) Delete(ctx context.Context, sessionID string) error {
	st, err := i.states.Load(ctx)
	if err != nil {
		return err
	}
	if err := i.svc.Delete(&st, sessionID); err != nil {
		return err
	}
	return i.commit(ctx, &st, nil)
}

func (i *Interactor) List(ctx context.Context) ([]dto.SessionOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.SessionOutput, len(st.Sessions))
	for idx, session := range st.Sessions {
		outputs[idx] = toOutput(session, "")
	}
	return outputs, nil
}

func (i *Interactor) Get(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	idx := st.Find(sessionID)
	if idx < 0 {
		return dto.SessionOutput{}, apperrors.ErrNotFound
	}
	return toOutput(st.Sessions[idx], ""), nil
}

// Start marks the session active and signals the timer to begin a focus
// countdown of the planned duration.
func (i *Interactor) Start(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.Start(&st, sessionID)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.commit(ctx, &st, nil); err != nil {
		return dto.SessionOutput{}, err
	}
	if _, err := i.timer.Begin(ctx, timerdto.BeginInput{DurationMin: session.PlannedDurationMin, SessionID: session.ID}); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session, ""), nil
}

func (i *Interactor) Complete(ctx context.Context, input dto.CompleteInput) (dto.SessionOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.Complete(&st, input.SessionID, input.ElapsedSeconds, input.FromTimer)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	notePath := ""
	if err := i.commit(ctx, &st, func(ctx context.Context) error {
		path, exportErr := i.notes.Export(ctx, session)
		if exportErr != nil {
			return exportErr
		}
		notePath = path
		return i.projector.Upsert(ctx, session)
	}); err != nil {
		return dto.SessionOutput{}, err
	}
	// A timer-driven completion has already rolled the countdown into its
	// auto-running break; only a manual completion resets the timer.
	if !input.FromTimer {
		if _, err := i.timer.Reset(ctx); err != nil {
			return dto.SessionOutput{}, err
		}
	}
	return toOutput(session, notePath), nil
}

func (i *Interactor) Cancel(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.Cancel(&st, sessionID)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.commit(ctx, &st, nil); err != nil {
		return dto.SessionOutput{}, err
	}
	if _, err := i.timer.Reset(ctx); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session, ""), nil
}

// Distract increments the interruption count; an empty id targets the active
// session.
func (i *Interactor) Distract(ctx context.Context, sessionID string) (dto.SessionOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if sessionID == "" {
		if st.ActiveSessionID == "" {
			return dto.SessionOutput{}, apperrors.ErrNoActiveSession
		}
		sessionID = st.ActiveSessionID
	}
	session, err := i.svc.Distract(&st, sessionID)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	if err := i.commit(ctx, &st, nil); err != nil {
		return dto.SessionOutput{}, err
	}
	return toOutput(session, ""), nil
}

func (i *Interactor) GetActive(ctx context.Context) (dto.SessionOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	active, ok := st.Active()
	if !ok {
		return dto.SessionOutput{}, apperrors.ErrNoActiveSession
	}
	return toOutput(*active, ""), nil
}

func (i *Interactor) AddFocusRecord(ctx context.Context, input dto.FocusRecordInput) (dto.FocusRecordOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.FocusRecordOutput{}, err
	}
	record, err := i.svc.AddFocusRecord(&st, input.SessionID, input.FocusLevel, input.Activity)
	if err != nil {
		return dto.FocusRecordOutput{}, err
	}
	if err := i.commit(ctx, &st, nil); err != nil {
		return dto.FocusRecordOutput{}, err
	}
	return dto.FocusRecordOutput{
		RecordID:   record.ID,
		SessionID:  record.SessionID,
		Timestamp:  record.Timestamp,
		FocusLevel: record.FocusLevel,
		Activity:   record.Activity,
	}, nil
}

func (i *Interactor) ListFocusRecords(ctx context.Context, sessionID string) ([]dto.FocusRecordOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return nil, err
	}
	var outputs []dto.FocusRecordOutput
	for _, record := range st.FocusRecords {
		if sessionID != "" && record.SessionID != sessionID {
			continue
		}
		outputs = append(outputs, dto.FocusRecordOutput{
			RecordID:   record.ID,
			SessionID:  record.SessionID,
			Timestamp:  record.Timestamp,
			FocusLevel: record.FocusLevel,
			Activity:   record.Activity,
		})
	}
	return outputs, nil
}

func (i *Interactor) GetSettings(ctx context.Context) (dto.SettingsOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toSettingsOutput(st.Settings), nil
}

func (i *Interactor) UpdateSettings(ctx context.Context, input dto.SettingsInput) (dto.SettingsOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	settings, err := i.svc.UpdateSettings(&st, func(s *domain.Settings) {
		if input.DefaultFocusMin != nil {
			s.DefaultFocusMin = *input.DefaultFocusMin
		}
		if input.DefaultShortBreakMin != nil {
			s.DefaultShortBreakMin = *input.DefaultShortBreakMin
		}
		if input.DefaultLongBreakMin != nil {
			s.DefaultLongBreakMin = *input.DefaultLongBreakMin
		}
		if input.SoundEnabled != nil {
			s.SoundEnabled = *input.SoundEnabled
		}
		if input.NotificationsEnabled != nil {
			s.NotificationsEnabled = *input.NotificationsEnabled
		}
		if input.AutoStartBreaks != nil {
			s.AutoStartBreaks = *input.AutoStartBreaks
		}
		if input.SuggestionsEnabled != nil {
			s.SuggestionsEnabled = *input.SuggestionsEnabled
		}
	})
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	if err := i.commit(ctx, &st, nil); err != nil {
		return dto.SettingsOutput{}, err
	}
	return toSettingsOutput(settings), nil
}

// Insights recomputes over the current collection; the stored snapshot is
// never returned as-is.
func (i *Interactor) Insights(ctx context.Context) (dto.InsightsOutput, error) {
	st, err := i.states.Load(ctx)
	if err != nil {
		return dto.InsightsOutput{}, err
	}
	out, err := i.analytics.Recompute(ctx, analyticsdto.RecomputeInput{Samples: toSamples(&st)})
	if err != nil {
		return dto.InsightsOutput{}, err
	}
	return dto.InsightsOutput{
		OptimalStudyTimes:   out.OptimalStudyTimes,
		SubjectDifficulty:   out.SubjectDifficulty,
		AverageFocusScore:   out.AverageFocusScore,
		RecommendedBreakMin: out.RecommendedBreakMin,
		ProductivityTrend:   out.ProductivityTrend,
		LastUpdated:         out.LastUpdated,
	}, nil
}

func (i *Interactor) History(ctx context.Context, subject string) ([]dto.HistoryItem, error) {
	sessions, err := i.projector.ListCompleted(ctx, subject)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryItem, len(sessions))
	for idx, session := range sessions {
		items[idx] = dto.HistoryItem{
			SessionID:         session.ID,
			Subject:           session.Subject,
			Topic:             session.Topic,
			ActualDurationMin: session.ActualDurationMin,
			FocusScore:        session.FocusScore,
			StartedAt:         session.StartTime,
			EndedAt:           session.EndTime,
		}
	}
	return items, nil
}

func (i *Interactor) SubjectStats(ctx context.Context) ([]dto.SubjectStatOutput, error) {
	stats, err := i.projector.SubjectStats(ctx)
	if err != nil {
		return nil, err
	}
	outputs := make([]dto.SubjectStatOutput, len(stats))
	for idx, stat := range stats {
		outputs[idx] = dto.SubjectStatOutput{
			Subject:         stat.Subject,
			Sessions:        stat.Sessions,
			TotalMinutes:    stat.TotalMinutes,
			AverageScore:    stat.AverageScore,
			AverageDistract: stat.AverageDistract,
		}
	}
	return outputs, nil
}

// Reindex rebuilds the history projection from the state blob.
func (i *Interactor) Reindex(ctx context.Context) error {
	st, err := i.states.Load(ctx)
	if err != nil {
		return err
	}
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	for _, session := range st.Sessions {
		if session.Status != domain.StatusCompleted {
			continue
		}
		if err := i.projector.Upsert(ctx, session); err != nil {
			return err
		}
	}
	return nil
}

// commit recomputes insights over the post-mutation collection, then runs
// the save plus any extra side effects as one group.
func (i *Interactor) commit(ctx context.Context, st *domain.State, extra func(context.Context) error) error {
	out, err := i.analytics.Recompute(ctx, analyticsdto.RecomputeInput{Samples: toSamples(st)})
	if err != nil {
		return err
	}
	st.Insights = domain.Insights{
		OptimalStudyTimes:   out.OptimalStudyTimes,
		SubjectDifficulty:   out.SubjectDifficulty,
		AverageFocusScore:   out.AverageFocusScore,
		RecommendedBreakMin: out.RecommendedBreakMin,
		ProductivityTrend:   out.ProductivityTrend,
		LastUpdated:         out.LastUpdated,
	}
	return i.txm.Within(ctx, func(ctx context.Context) error {
		if err := i.states.Save(ctx, *st); err != nil {
			return err
		}
		if extra != nil {
			return extra(ctx)
		}
		return nil
	})
}

func toSamples(st *domain.State) []analyticsdto.SessionSample {
	samples := make([]analyticsdto.SessionSample, len(st.Sessions))
	for idx, session := range st.Sessions {
		samples[idx] = analyticsdto.SessionSample{
			Subject:    session.Subject,
			FocusScore: session.FocusScore,
			StartTime:  session.StartTime,
			Completed:  session.Status == domain.StatusCompleted,
		}
	}
	return samples
}

func toOutput(session domain.Session, notePath string) dto.SessionOutput {
	breaks := make([]dto.BreakOutput, len(session.Breaks))
	for idx, b := range session.Breaks {
		breaks[idx] = dto.BreakOutput{StartTime: b.StartTime, DurationMin: b.DurationMin}
	}
	return dto.SessionOutput{
		SessionID:          session.ID,
		Subject:            session.Subject,
		Topic:              session.Topic,
		PlannedDurationMin: session.PlannedDurationMin,
		ActualDurationMin:  session.ActualDurationMin,
		FocusScore:         session.FocusScore,
		CompletedPomodoros: session.CompletedPomodoros,
		Breaks:             breaks,
		Distractions:       session.Distractions,
		Notes:              session.Notes,
		Status:             string(session.Status),
		StartTime:          session.StartTime,
		EndTime:            session.EndTime,
		CreatedAt:          session.CreatedAt,
		ScheduledFor:       session.ScheduledFor,
		NotePath:           notePath,
	}
}

func toSettingsOutput(settings domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{
		DefaultFocusMin:      settings.DefaultFocusMin,
		DefaultShortBreakMin: settings.DefaultShortBreakMin,
		DefaultLongBreakMin:  settings.DefaultLongBreakMin,
		SoundEnabled:         settings.SoundEnabled,
		NotificationsEnabled: settings.NotificationsEnabled,
		AutoStartBreaks:      settings.AutoStartBreaks,
		SuggestionsEnabled:   settings.SuggestionsEnabled,
	}
}
