package solo

import (
	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop"
)

// ToFailureSequence gives every outcome a failure sequence: a success becomes
// a failure holding no items, a failure is returned as is.
func ToFailureSequence[S, F any](input rop.Outcome[S, []F]) rop.Outcome[S, []F] {
	return Branch(input,
		func(rop.Outcome[S, []F]) rop.Outcome[S, []F] { return rop.Failed[S]([]F{}) },
		func(r rop.Outcome[S, []F]) rop.Outcome[S, []F] { return r },
	)
}

// Merge appends next to a running aggregate. Both successes give a success
// with next's value appended; otherwise the failure sequences are
// concatenated, accumulator first.
func Merge[S, F any](acc rop.Outcome[[]S, []F], next rop.Outcome[S, []F]) rop.Outcome[[]S, []F] {
	if all, ok := acc.Success(); ok {
		if v, ok := next.Success(); ok {
			merged := make([]S, 0, len(all)+1)
			merged = append(merged, all...)
			return rop.Succeeded[[]S, []F](append(merged, v))
		}
	}

	accF, _ := ToFailureSequence(acc).Failure()
	nextF, _ := ToFailureSequence(next).Failure()

	failures := make([]F, 0, len(accF)+len(nextF))
	failures = append(failures, accF...)
	return rop.Failed[[]S](append(failures, nextF...))
}

// Aggregate folds Merge over items from an empty success. It succeeds with
// every value in input order only if every item succeeded.
func Aggregate[S, F any](items ...rop.Outcome[S, []F]) rop.Outcome[[]S, []F] {
	acc := rop.Succeeded[[]S, []F]([]S{})
	for _, item := range items {
		acc = Merge(acc, item)
	}
	return acc
}
