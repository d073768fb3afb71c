package chain

import (
	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop"
	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop/solo"
)

// Chain wraps a rop.Outcome to enable fluent chaining
type Chain[S, F any] struct {
	outcome rop.Outcome[S, F]
}

// Start creates a new chain from a rop.Outcome
func Start[S, F any](outcome rop.Outcome[S, F]) *Chain[S, F] {
	return &Chain[S, F]{outcome: outcome}
}

// FromValue creates a new chain from a successful value
func FromValue[S, F any](value S) *Chain[S, F] {
	return &Chain[S, F]{outcome: rop.Succeeded[S, F](value)}
}

// Result returns the underlying rop.Outcome
func (c *Chain[S, F]) Result() rop.Outcome[S, F] {
	return c.outcome
}

// Then chains a step that keeps the success type
func (c *Chain[S, F]) Then(onOk func(S) rop.Outcome[S, F]) *Chain[S, F] {
	return &Chain[S, F]{outcome: solo.Bind(c.outcome, onOk)}
}

// Ensure performs a side effect without changing the result
func (c *Chain[S, F]) Ensure(onOk func(S)) *Chain[S, F] {
	return &Chain[S, F]{outcome: solo.Tee(c.outcome, onOk)}
}

// Bind chains a step that returns rop.Outcome[U, F]
func Bind[S, U, F any](c *Chain[S, F], onOk func(S) rop.Outcome[U, F]) *Chain[U, F] {
	return &Chain[U, F]{outcome: solo.Bind(c.outcome, onOk)}
}

// Map chains a pure transformation function
func Map[S, U, F any](c *Chain[S, F], onOk func(S) U) *Chain[U, F] {
	return &Chain[U, F]{outcome: solo.Map(c.outcome, onOk)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[S, F, U any](c *Chain[S, F], onOk func(S) U, onErr func(F) U) U {
	return solo.Finally(c.outcome, onOk, onErr)
}
