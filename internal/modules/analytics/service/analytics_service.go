package service

import (
	"studybud/internal/modules/analytics/domain"
	"studybud/internal/platform/clock"
)

// AnalyticsService wraps the pure aggregation with a clock for the
// last-updated stamp. It keeps no state beyond that.
type AnalyticsService struct {
	clock clock.Clock
}

func NewAnalyticsService(clock clock.Clock) *AnalyticsService {
	return &AnalyticsService{clock: clock}
}

func (s *AnalyticsService) Aggregate(samples []domain.Sample) domain.Insights {
	return domain.Aggregate(samples, s.clock.Now())
}
