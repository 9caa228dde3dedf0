package in

import (
	"context"

	"studybud/internal/modules/analytics/dto"
)

type Usecase interface {
	Recompute(ctx context.Context, input dto.RecomputeInput) (dto.InsightsOutput, error)
}
