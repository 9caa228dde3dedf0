package domain_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"studybud/internal/modules/analytics/domain"
)

func at(hour int) *time.Time {
	t := time.Date(2026, 9, 1, hour, 30, 0, 0, time.UTC)
	return &t
}

func TestAggregateDefaultWhenNothingCompleted(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	samples := []domain.Sample{
		{Subject: "Math", FocusScore: 9, StartTime: at(9), Completed: false},
	}
	got := domain.Aggregate(samples, now)

	if !reflect.DeepEqual(got.OptimalStudyTimes, []string{"09:00", "14:00", "20:00"}) {
		t.Fatalf("default optimal times wrong: %v", got.OptimalStudyTimes)
	}
	if got.AverageFocusScore != 7.5 {
		t.Fatalf("default average should be 7.5, got %v", got.AverageFocusScore)
	}
	if got.RecommendedBreakMin != 10 {
		t.Fatalf("default break should be 10, got %v", got.RecommendedBreakMin)
	}
	if got.ProductivityTrend != domain.TrendIncreasing {
		t.Fatalf("default trend should be increasing, got %v", got.ProductivityTrend)
	}
	if len(got.SubjectDifficulty) != 0 {
		t.Fatalf("default difficulty map should be empty")
	}
	if !got.LastUpdated.Equal(now) {
		t.Fatalf("last updated should be now")
	}
}

func TestAggregateOptimalTimesTopThree(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	samples := []domain.Sample{
		{Subject: "A", FocusScore: 9, StartTime: at(9), Completed: true},
		{Subject: "A", FocusScore: 5, StartTime: at(14), Completed: true},
		{Subject: "A", FocusScore: 7, StartTime: at(20), Completed: true},
		{Subject: "A", FocusScore: 6, StartTime: at(8), Completed: true},
	}
	got := domain.Aggregate(samples, now)
	if !reflect.DeepEqual(got.OptimalStudyTimes, []string{"09:00", "20:00", "08:00"}) {
		t.Fatalf("expected top three buckets by mean, got %v", got.OptimalStudyTimes)
	}
}

func TestAggregateOptimalTimesStableTieBreak(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	samples := []domain.Sample{
		{Subject: "A", FocusScore: 7, StartTime: at(14), Completed: true},
		{Subject: "A", FocusScore: 7, StartTime: at(9), Completed: true},
	}
	got := domain.Aggregate(samples, now)
	// Equal means: the first-encountered bucket wins.
	if !reflect.DeepEqual(got.OptimalStudyTimes, []string{"14:00", "09:00"}) {
		t.Fatalf("tie must preserve encounter order, got %v", got.OptimalStudyTimes)
	}
}

func TestAggregateOrderIndependentAverages(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	forward := []domain.Sample{
		{Subject: "Math", FocusScore: 9, StartTime: at(9), Completed: true},
		{Subject: "Math", FocusScore: 3, StartTime: at(9), Completed: true},
		{Subject: "Bio", FocusScore: 6, StartTime: at(14), Completed: true},
	}
	reversed := []domain.Sample{forward[2], forward[1], forward[0]}

	a := domain.Aggregate(forward, now)
	b := domain.Aggregate(reversed, now)
	if a.AverageFocusScore != b.AverageFocusScore {
		t.Fatalf("average must be permutation independent")
	}
	if !reflect.DeepEqual(a.SubjectDifficulty, b.SubjectDifficulty) {
		t.Fatalf("difficulty must be permutation independent")
	}
	if math.Abs(a.SubjectDifficulty["Math"]-4) > 1e-9 {
		t.Fatalf("math difficulty should be 10-6=4, got %v", a.SubjectDifficulty["Math"])
	}
	if math.Abs(a.AverageFocusScore-6) > 1e-9 {
		t.Fatalf("average should be 6, got %v", a.AverageFocusScore)
	}
	if a.ProductivityTrend != domain.TrendStable {
		t.Fatalf("average 6 means stable trend, got %v", a.ProductivityTrend)
	}
}

func TestAggregateTrendBoundaries(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	cases := []struct {
		score float64
		want  domain.Trend
	}{
		{7.1, domain.TrendIncreasing},
		{7.0, domain.TrendStable},
		{5.1, domain.TrendStable},
		{5.0, domain.TrendDecreasing},
		{2.0, domain.TrendDecreasing},
	}
	for _, tc := range cases {
		got := domain.Aggregate([]domain.Sample{
			{Subject: "A", FocusScore: tc.score, StartTime: at(9), Completed: true},
		}, now)
		if got.ProductivityTrend != tc.want {
			t.Fatalf("score %v: expected %v, got %v", tc.score, tc.want, got.ProductivityTrend)
		}
	}
}

func TestAggregateRecommendedBreakClamped(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	low := domain.Aggregate([]domain.Sample{
		{Subject: "A", FocusScore: 2, StartTime: at(9), Completed: true},
	}, now)
	if low.RecommendedBreakMin != 5 {
		t.Fatalf("break should clamp up to 5, got %d", low.RecommendedBreakMin)
	}
	mid := domain.Aggregate([]domain.Sample{
		{Subject: "A", FocusScore: 8.4, StartTime: at(9), Completed: true},
	}, now)
	if mid.RecommendedBreakMin != 8 {
		t.Fatalf("break should round, got %d", mid.RecommendedBreakMin)
	}
}

func TestAggregateNoStartTimesFallsBackToCanonicalSlots(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()
	got := domain.Aggregate([]domain.Sample{
		{Subject: "A", FocusScore: 9, Completed: true},
	}, now)
	if !reflect.DeepEqual(got.OptimalStudyTimes, []string{"09:00", "14:00", "20:00"}) {
		t.Fatalf("no start times should fall back to canonical slots, got %v", got.OptimalStudyTimes)
	}
	if got.AverageFocusScore != 9 {
		t.Fatalf("average still computed, got %v", got.AverageFocusScore)
	}
}
