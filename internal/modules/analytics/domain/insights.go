package domain

import "time"

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendStable     Trend = "stable"
	TrendDecreasing Trend = "decreasing"
)

// Sample is the slice of a session the aggregator needs. Sessions that never
// completed contribute nothing; samples without a start time are skipped for
// the optimal-times step only.
type Sample struct {
	Subject    string
	FocusScore float64
	StartTime  *time.Time
	Completed  bool
}

type Insights struct {
	OptimalStudyTimes   []string
	SubjectDifficulty   map[string]float64
	AverageFocusScore   float64
	RecommendedBreakMin int
	ProductivityTrend   Trend
	LastUpdated         time.Time
}

// Default is the fixed literal returned while no session has completed yet.
// Deliberately not a zero value: the canonical slots and the optimistic trend
// give a fresh install something to show.
func Default(now time.Time) Insights {
	return Insights{
		OptimalStudyTimes:   []string{"09:00", "14:00", "20:00"},
		SubjectDifficulty:   map[string]float64{},
		AverageFocusScore:   7.5,
		RecommendedBreakMin: 10,
		ProductivityTrend:   TrendIncreasing,
		LastUpdated:         now,
	}
}
