package async

import (
	"context"

	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop"
	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop/solo"
)

func ToFailureSequence[S, F any](input Future[S, []F]) Future[S, []F] {
	return func(ctx context.Context) (rop.Outcome[S, []F], error) {
		o, err := input.Await(ctx)
		if err != nil {
			return rop.Outcome[S, []F]{}, err
		}
		return solo.ToFailureSequence(o), nil
	}
}

// Merge awaits acc, then next, and merges them with solo.Merge.
func Merge[S, F any](acc Future[[]S, []F], next Future[S, []F]) Future[[]S, []F] {
	return func(ctx context.Context) (rop.Outcome[[]S, []F], error) {
		a, err := acc.Await(ctx)
		if err != nil {
			return rop.Outcome[[]S, []F]{}, err
		}
		n, err := next.Await(ctx)
		if err != nil {
			return rop.Outcome[[]S, []F]{}, err
		}
		return solo.Merge(a, n), nil
	}
}

// Aggregate awaits items one at a time in order and folds them with
// solo.Merge. It stops at the first item that cannot be awaited.
func Aggregate[S, F any](items ...Future[S, []F]) Future[[]S, []F] {
	return func(ctx context.Context) (rop.Outcome[[]S, []F], error) {
		acc := rop.Succeeded[[]S, []F]([]S{})
		for _, item := range items {
			o, err := item.Await(ctx)
			if err != nil {
				return rop.Outcome[[]S, []F]{}, err
			}
			acc = solo.Merge(acc, o)
		}
		return acc, nil
	}
}
