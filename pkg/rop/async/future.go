package async

import (
	"context"
	"errors"

	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop"
)

// ErrNoOutcome is returned when a channel closes before delivering an outcome.
var ErrNoOutcome = errors.New("async: channel closed without an outcome")

// Future is a suspended computation that eventually yields an outcome.
// The error reports a failure to obtain the outcome (the context ended,
// the source went away); domain failures are carried by the outcome itself.
// A Future runs each time it is awaited.
type Future[S, F any] func(ctx context.Context) (rop.Outcome[S, F], error)

func (f Future[S, F]) Await(ctx context.Context) (rop.Outcome[S, F], error) {
	return f(ctx)
}

// Resolved wraps an outcome that is already available.
func Resolved[S, F any](o rop.Outcome[S, F]) Future[S, F] {
	return func(context.Context) (rop.Outcome[S, F], error) {
		return o, nil
	}
}

// FromChan awaits the next outcome sent on ch. Awaiting gives up with the
// context's error once ctx is done.
func FromChan[S, F any](ch <-chan rop.Outcome[S, F]) Future[S, F] {
	return func(ctx context.Context) (rop.Outcome[S, F], error) {
		select {
		case o, ok := <-ch:
			if !ok {
				return rop.Outcome[S, F]{}, ErrNoOutcome
			}
			return o, nil
		case <-ctx.Done():
			return rop.Outcome[S, F]{}, ctx.Err()
		}
	}
}
