package usecase

import (
	"context"

	"studybud/internal/modules/analytics/domain"
	"studybud/internal/modules/analytics/dto"
	analyticsin "studybud/internal/modules/analytics/port/in"
	"studybud/internal/modules/analytics/service"
)

type Interactor struct {
	svc *service.AnalyticsService
}

func NewInteractor(svc *service.AnalyticsService) analyticsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Recompute(_ context.Context, input dto.RecomputeInput) (dto.InsightsOutput, error) {
	samples := make([]domain.Sample, len(input.Samples))
	for idx, sample := range input.Samples {
		samples[idx] = domain.Sample{
			Subject:    sample.Subject,
			FocusScore: sample.FocusScore,
			StartTime:  sample.StartTime,
			Completed:  sample.Completed,
		}
	}
	insights := i.svc.Aggregate(samples)
	return dto.InsightsOutput{
		OptimalStudyTimes:   insights.OptimalStudyTimes,
		SubjectDifficulty:   insights.SubjectDifficulty,
		AverageFocusScore:   insights.AverageFocusScore,
		RecommendedBreakMin: insights.RecommendedBreakMin,
		ProductivityTrend:   string(insights.ProductivityTrend),
		LastUpdated:         insights.LastUpdated,
	}, nil
}
