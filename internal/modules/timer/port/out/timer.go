package out

import (
	"context"

	"studybud/internal/modules/timer/domain"
)

// TimerStore persists the countdown between processes so a CLI invocation
// sees the state the TUI left behind. Load returns the idle default when
// nothing is stored.
type TimerStore interface {
	Load(ctx context.Context) (domain.Timer, error)
	Save(ctx context.Context, timer domain.Timer) error
}
