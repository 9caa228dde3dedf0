package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"studybud/internal/bootstrap"
	"studybud/internal/modules/session/dto"
	"studybud/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string

	root := &cobra.Command{
		Use:           "studybud",
		Short:         "Personal study session tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath(), "data directory")

	root.AddCommand(newTUICmd(&dataPath))
	root.AddCommand(newSessionCmd(&dataPath))
	root.AddCommand(newFocusCmd(&dataPath))
	root.AddCommand(newTimerCmd(&dataPath))
	root.AddCommand(newAnalyticsCmd(&dataPath))
	root.AddCommand(newSettingsCmd(&dataPath))
	root.AddCommand(newHistoryCmd(&dataPath))
	root.AddCommand(newStatsCmd(&dataPath))
	root.AddCommand(newReindexCmd(&dataPath))
	return root
}

func defaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".studybud"
	}
	return filepath.Join(home, ".studybud")
}

func loadApp(dataPath string) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run studybud terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(*dataPath, app)
		},
	}
}

func newSessionCmd(dataPath *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Study session lifecycle"}

	var subject, topic, notes, scheduled string
	var planned int
	add := &cobra.Command{
		Use:   "add --subject <name> --topic <name>",
		Short: "Plan a new study session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(subject) == "" || strings.TrimSpace(topic) == "" {
				return fmt.Errorf("--subject and --topic are required")
			}
			scheduledFor, err := parseWhen(scheduled)
			if err != nil {
				return err
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Add(context.Background(), dto.AddInput{
				Subject:            subject,
				Topic:              topic,
				PlannedDurationMin: planned,
				Notes:              notes,
				ScheduledFor:       scheduledFor,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session added: %s %s/%s planned=%dmin\n", out.SessionID, out.Subject, out.Topic, out.PlannedDurationMin)
			return nil
		},
	}
	add.Flags().StringVar(&subject, "subject", "", "subject name")
	add.Flags().StringVar(&topic, "topic", "", "topic name")
	add.Flags().IntVar(&planned, "duration", 25, "planned duration in minutes")
	add.Flags().StringVar(&notes, "notes", "", "free-form notes")
	add.Flags().StringVar(&scheduled, "scheduled", "", "scheduled time (RFC3339 or YYYY-MM-DD, defaults to now)")
	session.AddCommand(add)

	session.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			sessions, err := app.SessionCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s/%s\t%dmin\tscore=%.1f\n", s.SessionID, s.Status, s.Subject, s.Topic, s.PlannedDurationMin, s.FocusScore)
			}
			return nil
		},
	})

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show session details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			s, err := app.SessionCLI.Get(context.Background(), showID)
			if err != nil {
				return err
			}
			printSession(cmd, s)
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "session id")
	session.AddCommand(show)

	var updateID, updSubject, updTopic, updNotes, updScheduled string
	var updPlanned, updActual, updPomodoros, updDistractions int
	update := &cobra.Command{
		Use:   "update --id <id>",
		Short: "Update session fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(updateID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			input := dto.UpdateInput{SessionID: updateID}
			flags := cmd.Flags()
			if flags.Changed("subject") {
				input.Subject = &updSubject
			}
			if flags.Changed("topic") {
				input.Topic = &updTopic
			}
			if flags.Changed("duration") {
				input.PlannedDurationMin = &updPlanned
			}
			if flags.Changed("actual") {
				input.ActualDurationMin = &updActual
			}
			if flags.Changed("pomodoros") {
				input.CompletedPomodoros = &updPomodoros
			}
			if flags.Changed("distractions") {
				input.Distractions = &updDistractions
			}
			if flags.Changed("notes") {
				input.Notes = &updNotes
			}
			if flags.Changed("scheduled") {
				when, err := parseWhen(updScheduled)
				if err != nil {
					return err
				}
				input.ScheduledFor = &when
			}
			out, err := app.SessionCLI.Update(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session updated: %s score=%.1f\n", out.SessionID, out.FocusScore)
			return nil
		},
	}
	update.Flags().StringVar(&updateID, "id", "", "session id")
	update.Flags().StringVar(&updSubject, "subject", "", "subject name")
	update.Flags().StringVar(&updTopic, "topic", "", "topic name")
	update.Flags().IntVar(&updPlanned, "duration", 0, "planned duration in minutes")
	update.Flags().IntVar(&updActual, "actual", 0, "actual duration in minutes")
	update.Flags().IntVar(&updPomodoros, "pomodoros", 0, "completed pomodoros")
	update.Flags().IntVar(&updDistractions, "distractions", 0, "distraction count")
	update.Flags().StringVar(&updNotes, "notes", "", "free-form notes")
	update.Flags().StringVar(&updScheduled, "scheduled", "", "scheduled time (RFC3339 or YYYY-MM-DD)")
	session.AddCommand(update)

	var deleteID string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Delete(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session deleted: %s\n", deleteID)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "session id")
	session.AddCommand(deleteCmd)

	var startID string
	start := &cobra.Command{
		Use:   "start --id <id>",
		Short: "Start a planned session and begin the focus timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(startID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Start(context.Background(), startID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session started: %s %s/%s at=%s\n", out.SessionID, out.Subject, out.Topic, out.StartTime.Format(time.RFC3339))
			return nil
		},
	}
	start.Flags().StringVar(&startID, "id", "", "session id")
	session.AddCommand(start)

	var completeID string
	complete := &cobra.Command{
		Use:   "complete",
		Short: "Complete the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Complete(context.Background(), dto.CompleteInput{SessionID: completeID})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session completed: %s duration=%dmin score=%.1f note=%s\n", out.SessionID, out.ActualDurationMin, out.FocusScore, out.NotePath)
			return nil
		},
	}
	complete.Flags().StringVar(&completeID, "id", "", "optional session id (defaults to active session)")
	session.AddCommand(complete)

	var cancelID string
	cancel := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Cancel(context.Background(), cancelID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session cancelled: %s\n", out.SessionID)
			return nil
		},
	}
	cancel.Flags().StringVar(&cancelID, "id", "", "optional session id (defaults to active session)")
	session.AddCommand(cancel)

	var distractID string
	distract := &cobra.Command{
		Use:   "distract",
		Short: "Record a distraction on the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Distract(context.Background(), distractID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "distraction recorded: %s count=%d score=%.1f\n", out.SessionID, out.Distractions, out.FocusScore)
			return nil
		},
	}
	distract.Flags().StringVar(&distractID, "id", "", "optional session id (defaults to active session)")
	session.AddCommand(distract)

	return session
}

func newFocusCmd(dataPath *string) *cobra.Command {
	focus := &cobra.Command{Use: "focus", Short: "Self-reported focus records"}

	var sessionID, activity string
	var level int
	add := &cobra.Command{
		Use:   "add --session-id <id> --level <0..10>",
		Short: "Record a focus check-in",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(sessionID) == "" {
				return fmt.Errorf("--session-id is required")
			}
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.AddFocusRecord(context.Background(), dto.FocusRecordInput{
				SessionID:  sessionID,
				FocusLevel: level,
				Activity:   activity,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus recorded: %s session=%s level=%d\n", out.RecordID, out.SessionID, out.FocusLevel)
			return nil
		},
	}
	add.Flags().StringVar(&sessionID, "session-id", "", "session id")
	add.Flags().IntVar(&level, "level", 5, "focus level 0..10")
	add.Flags().StringVar(&activity, "activity", "", "what you were doing")
	focus.AddCommand(add)

	var listSessionID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List focus records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			records, err := app.SessionCLI.ListFocusRecords(context.Background(), listSessionID)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no focus records")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tlevel=%d\t%s\t%s\n", r.RecordID, r.SessionID, r.FocusLevel, r.Timestamp.Format(time.RFC3339), r.Activity)
			}
			return nil
		},
	}
	list.Flags().StringVar(&listSessionID, "session-id", "", "filter by session id")
	focus.AddCommand(list)

	return focus
}

func newTimerCmd(dataPath *string) *cobra.Command {
	timer := &cobra.Command{Use: "timer", Short: "Pomodoro timer state"}

	timer.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show timer state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mode=%s left=%s running=%t round=%d/%d session=%s\n", out.Mode, formatClock(out.TimeLeftSec), out.Running, out.Round, out.TotalRounds, out.SessionID)
			return nil
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "pause",
		Short: "Pause the timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Pause(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timer paused: %s left=%s\n", out.Mode, formatClock(out.TimeLeftSec))
			return nil
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "resume",
		Short: "Resume the timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Resume(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timer running: %s left=%s\n", out.Mode, formatClock(out.TimeLeftSec))
			return nil
		},
	})

	timer.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Reset the timer to idle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.Reset(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timer reset: %s left=%s\n", out.Mode, formatClock(out.TimeLeftSec))
			return nil
		},
	})

	return timer
}

func newAnalyticsCmd(dataPath *string) *cobra.Command {
	analytics := &cobra.Command{Use: "analytics", Short: "Study insights"}

	analytics.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show insights over completed sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Insights(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "optimal times: %s\n", strings.Join(out.OptimalStudyTimes, ", "))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "average focus: %.1f\n", out.AverageFocusScore)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recommended break: %dmin\n", out.RecommendedBreakMin)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "trend: %s\n", out.ProductivityTrend)
			for subject, difficulty := range out.SubjectDifficulty {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "difficulty %s: %.1f\n", subject, difficulty)
			}
			return nil
		},
	})

	return analytics
}

func newSettingsCmd(dataPath *string) *cobra.Command {
	settings := &cobra.Command{Use: "settings", Short: "Tracker settings"}

	settings.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.GetSettings(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "focus=%dmin short_break=%dmin long_break=%dmin\n", out.DefaultFocusMin, out.DefaultShortBreakMin, out.DefaultLongBreakMin)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sound=%t notifications=%t auto_start_breaks=%t suggestions=%t\n", out.SoundEnabled, out.NotificationsEnabled, out.AutoStartBreaks, out.SuggestionsEnabled)
			return nil
		},
	})

	var focusMin, shortMin, longMin int
	var sound, notifications, autoStart, suggestions bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			input := dto.SettingsInput{}
			flags := cmd.Flags()
			if flags.Changed("focus") {
				input.DefaultFocusMin = &focusMin
			}
			if flags.Changed("short-break") {
				input.DefaultShortBreakMin = &shortMin
			}
			if flags.Changed("long-break") {
				input.DefaultLongBreakMin = &longMin
			}
			if flags.Changed("sound") {
				input.SoundEnabled = &sound
			}
			if flags.Changed("notifications") {
				input.NotificationsEnabled = &notifications
			}
			if flags.Changed("auto-start-breaks") {
				input.AutoStartBreaks = &autoStart
			}
			if flags.Changed("suggestions") {
				input.SuggestionsEnabled = &suggestions
			}
			out, err := app.SessionCLI.UpdateSettings(context.Background(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "settings updated: focus=%dmin short_break=%dmin long_break=%dmin\n", out.DefaultFocusMin, out.DefaultShortBreakMin, out.DefaultLongBreakMin)
			return nil
		},
	}
	set.Flags().IntVar(&focusMin, "focus", 25, "default focus minutes")
	set.Flags().IntVar(&shortMin, "short-break", 5, "default short break minutes")
	set.Flags().IntVar(&longMin, "long-break", 15, "default long break minutes")
	set.Flags().BoolVar(&sound, "sound", true, "sound enabled")
	set.Flags().BoolVar(&notifications, "notifications", true, "notifications enabled")
	set.Flags().BoolVar(&autoStart, "auto-start-breaks", false, "auto start breaks")
	set.Flags().BoolVar(&suggestions, "suggestions", true, "study suggestions enabled")
	settings.AddCommand(set)

	return settings
}

func newHistoryCmd(dataPath *string) *cobra.Command {
	var subject string
	history := &cobra.Command{
		Use:   "history",
		Short: "List completed sessions from the history index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			items, err := app.SessionCLI.History(context.Background(), subject)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no completed sessions")
				return nil
			}
			for _, item := range items {
				startedAt := ""
				if item.StartedAt != nil {
					startedAt = item.StartedAt.Format(time.RFC3339)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s/%s\t%dmin\tscore=%.1f\t%s\n", item.SessionID, item.Subject, item.Topic, item.ActualDurationMin, item.FocusScore, startedAt)
			}
			return nil
		},
	}
	history.Flags().StringVar(&subject, "subject", "", "filter by subject")
	return history
}

func newStatsCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Per-subject aggregates from the history index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			stats, err := app.SessionCLI.SubjectStats(context.Background())
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no completed sessions")
				return nil
			}
			for _, s := range stats {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tsessions=%d\ttotal=%dmin\tavg_score=%.1f\tavg_distractions=%.1f\n", s.Subject, s.Sessions, s.TotalMinutes, s.AverageScore, s.AverageDistract)
			}
			return nil
		},
	}
}

func newReindexCmd(dataPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite history index from the state blob",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath)
			if err != nil {
				return err
			}
			if err := app.SessionCLI.Reindex(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "reindex completed")
			return nil
		},
	}
}

func printSession(cmd *cobra.Command, s dto.SessionOutput) {
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "id: %s\nsubject: %s\ntopic: %s\nstatus: %s\n", s.SessionID, s.Subject, s.Topic, s.Status)
	_, _ = fmt.Fprintf(out, "planned: %dmin\nactual: %dmin\nscore: %.1f\npomodoros: %d\ndistractions: %d\n", s.PlannedDurationMin, s.ActualDurationMin, s.FocusScore, s.CompletedPomodoros, s.Distractions)
	_, _ = fmt.Fprintf(out, "scheduled: %s\n", s.ScheduledFor.Format(time.RFC3339))
	if s.StartTime != nil {
		_, _ = fmt.Fprintf(out, "started: %s\n", s.StartTime.Format(time.RFC3339))
	}
	if s.EndTime != nil {
		_, _ = fmt.Fprintf(out, "ended: %s\n", s.EndTime.Format(time.RFC3339))
	}
	if s.Notes != "" {
		_, _ = fmt.Fprintf(out, "notes: %s\n", s.Notes)
	}
}

func parseWhen(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Now(), nil
	}
	if when, err := time.Parse(time.RFC3339, value); err == nil {
		return when, nil
	}
	when, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: use RFC3339 or YYYY-MM-DD", value)
	}
	return when, nil
}

func formatClock(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	return fmt.Sprintf("%02d:%02d", totalSec/60, totalSec%60)
}
