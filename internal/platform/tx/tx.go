package tx

import "context"

// Manager wraps the side-effect group of a mutating command (state save,
// projection upsert, note export) so the whole group can later move under a
// real transactional boundary without touching usecases.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
