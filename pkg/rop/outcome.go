package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome is either a success carrying S or a failure carrying F.
// The zero value is an empty failure; build outcomes with Succeeded or Failed.
type Outcome[S, F any] struct {
	id        uuid.UUID
	createdAt time.Time
	success   S
	failure   F
	isOk      bool
}

// Succeeded builds the Ok variant. It panics with an *InvalidPayloadError
// when v is an absent value (nil pointer, map, chan, func or interface).
func Succeeded[S, F any](v S) Outcome[S, F] {
	o, err := TrySucceeded[S, F](v)
	if err != nil {
		panic(err)
	}
	return o
}

// Failed builds the Err variant with the same guard as Succeeded.
func Failed[S, F any](v F) Outcome[S, F] {
	o, err := TryFailed[S, F](v)
	if err != nil {
		panic(err)
	}
	return o
}

func TrySucceeded[S, F any](v S) (Outcome[S, F], error) {
	if IsAbsent(v) {
		return Outcome[S, F]{}, &InvalidPayloadError{Variant: "success", Type: fmt.Sprintf("%T", v)}
	}
	return Outcome[S, F]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		success:   v,
		isOk:      true,
	}, nil
}

func TryFailed[S, F any](v F) (Outcome[S, F], error) {
	if IsAbsent(v) {
		return Outcome[S, F]{}, &InvalidPayloadError{Variant: "failure", Type: fmt.Sprintf("%T", v)}
	}
	return Outcome[S, F]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		failure:   v,
	}, nil
}

// Propagate re-types a failure for a new success type, keeping its payload,
// id and creation time. It panics if o is a success.
func Propagate[Out, S, F any](o Outcome[S, F]) Outcome[Out, F] {
	if o.isOk {
		panic("rop: Propagate called on a success")
	}
	return Outcome[Out, F]{
		id:        o.id,
		createdAt: o.createdAt,
		failure:   o.failure,
	}
}

func (o Outcome[S, F]) IsOk() bool {
	return o.isOk
}

func (o Outcome[S, F]) IsErr() bool {
	return !o.isOk
}

// Success returns the success payload and true, or the zero S and false.
func (o Outcome[S, F]) Success() (S, bool) {
	if !o.isOk {
		var zero S
		return zero, false
	}
	return o.success, true
}

// Failure returns the failure payload and true, or the zero F and false.
func (o Outcome[S, F]) Failure() (F, bool) {
	if o.isOk {
		var zero F
		return zero, false
	}
	return o.failure, true
}

func (o Outcome[S, F]) ID() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[S, F]) CreatedAt() time.Time {
	return o.createdAt
}

// IsEmpty reports whether o is the zero value rather than a constructed outcome.
func (o Outcome[S, F]) IsEmpty() bool {
	return o.id == uuid.Nil
}

func (o Outcome[S, F]) String() string {
	if o.isOk {
		return fmt.Sprintf("Ok(%v)", o.success)
	}
	return fmt.Sprintf("Err(%v)", o.failure)
}
