package dto

import "time"

type SessionSample struct {
	Subject    string
	FocusScore float64
	StartTime  *time.Time
	Completed  bool
}

type RecomputeInput struct {
	Samples []SessionSample
}

type InsightsOutput struct {
	OptimalStudyTimes   []string
	SubjectDifficulty   map[string]float64
	AverageFocusScore   float64
	RecommendedBreakMin int
	ProductivityTrend   string
	LastUpdated         time.Time
}
