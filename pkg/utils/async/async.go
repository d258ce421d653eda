package async

import (
	"context"

	"github.com/reef-world/finsync/pkg/utils/logging"
)

// Dispatch runs fn on a new goroutine with a detached context so the
// work survives the caller's request lifetime. Panics are recovered and
// logged instead of taking the process down.
func Dispatch(ctx context.Context, fn func(ctx context.Context) error) {
	newCtx := logging.With(context.WithoutCancel(ctx), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(newCtx).Error("panic in background task", "recover", r)
			}
		}()

		if err := fn(newCtx); err != nil {
			logging.From(newCtx).Error("background task failed", "error", err)
		}
	}()
}
