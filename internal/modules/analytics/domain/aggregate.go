package domain

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Aggregate recomputes insights from scratch over the full sample list.
// No incremental update: recomputing wholesale keeps the result consistent
// with the session collection after every mutation, and keeps tie-break and
// rounding behavior stable.
func Aggregate(samples []Sample, now time.Time) Insights {
	completed := make([]Sample, 0, len(samples))
	for _, sample := range samples {
		if sample.Completed {
			completed = append(completed, sample)
		}
	}
	if len(completed) == 0 {
		return Default(now)
	}

	return Insights{
		OptimalStudyTimes:   optimalTimes(completed),
		SubjectDifficulty:   subjectDifficulty(completed),
		AverageFocusScore:   averageScore(completed),
		RecommendedBreakMin: recommendedBreak(averageScore(completed)),
		ProductivityTrend:   trend(averageScore(completed)),
		LastUpdated:         now,
	}
}

// optimalTimes buckets completed samples by hour of day and returns the top
// three buckets by mean focus score, formatted "HH:00". Equal means keep
// first-encountered order (stable sort).
func optimalTimes(completed []Sample) []string {
	type bucket struct {
		label string
		sum   float64
		count int
	}
	var order []string
	byHour := map[string]*bucket{}
	for _, sample := range completed {
		if sample.StartTime == nil {
			continue
		}
		label := fmt.Sprintf("%02d:00", sample.StartTime.Hour())
		b, ok := byHour[label]
		if !ok {
			b = &bucket{label: label}
			byHour[label] = b
			order = append(order, label)
		}
		b.sum += sample.FocusScore
		b.count++
	}
	if len(order) == 0 {
		return Default(time.Time{}).OptimalStudyTimes
	}

	buckets := make([]*bucket, len(order))
	for i, label := range order {
		buckets[i] = byHour[label]
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].sum/float64(buckets[i].count) > buckets[j].sum/float64(buckets[j].count)
	})
	if len(buckets) > 3 {
		buckets = buckets[:3]
	}
	times := make([]string, len(buckets))
	for i, b := range buckets {
		times[i] = b.label
	}
	return times
}

// subjectDifficulty maps each subject to 10 minus its mean focus score, so a
// subject the user focuses well on reads as easy. Scores are 0..10 by
// construction, which bounds the result without clamping.
func subjectDifficulty(completed []Sample) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, sample := range completed {
		sums[sample.Subject] += sample.FocusScore
		counts[sample.Subject]++
	}
	difficulty := make(map[string]float64, len(sums))
	for subject, sum := range sums {
		difficulty[subject] = 10 - sum/float64(counts[subject])
	}
	return difficulty
}

func averageScore(completed []Sample) float64 {
	sum := 0.0
	for _, sample := range completed {
		sum += sample.FocusScore
	}
	return sum / float64(len(completed))
}

func recommendedBreak(avg float64) int {
	minutes := int(math.Round(avg))
	if minutes < 5 {
		return 5
	}
	if minutes > 15 {
		return 15
	}
	return minutes
}

func trend(avg float64) Trend {
	switch {
	case avg > 7:
		return TrendIncreasing
	case avg > 5:
		return TrendStable
	default:
		return TrendDecreasing
	}
}
