package solo

import (
	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop"
)

func Succeed[S, F any](v S) rop.Outcome[S, F] {
	return rop.Succeeded[S, F](v)
}

func Fail[S, F any](v F) rop.Outcome[S, F] {
	return rop.Failed[S, F](v)
}

// Try converts a Go (value, error) pair into an outcome whose failure is the error.
func Try[S any](v S, err error) rop.Outcome[S, error] {
	if err != nil {
		return rop.Failed[S](err)
	}
	return rop.Succeeded[S, error](v)
}

// Map applies onOk to a success. A failure passes through untouched.
func Map[In, Out, F any](input rop.Outcome[In, F], onOk func(r In) Out) rop.Outcome[Out, F] {
	if v, ok := input.Success(); ok {
		return rop.Succeeded[Out, F](onOk(v))
	}
	return rop.Propagate[Out](input)
}

// MapBoth runs exactly one of onOk or onErr depending on the variant.
func MapBoth[In, Out, FIn, FOut any](input rop.Outcome[In, FIn],
	onOk func(r In) Out,
	onErr func(f FIn) FOut) rop.Outcome[Out, FOut] {

	if v, ok := input.Success(); ok {
		return rop.Succeeded[Out, FOut](onOk(v))
	}
	f, _ := input.Failure()
	return rop.Failed[Out](onErr(f))
}

// Bind sequences two fallible steps. onOk is not called for a failure.
func Bind[In, Out, F any](input rop.Outcome[In, F], onOk func(r In) rop.Outcome[Out, F]) rop.Outcome[Out, F] {
	if v, ok := input.Success(); ok {
		return onOk(v)
	}
	return rop.Propagate[Out](input)
}

// Tee runs onOk for a success and returns input unchanged.
func Tee[S, F any](input rop.Outcome[S, F], onOk func(r S)) rop.Outcome[S, F] {
	if v, ok := input.Success(); ok {
		onOk(v)
	}
	return input
}

func TeeIf[S, F any](input rop.Outcome[S, F],
	condition func(r S) bool,
	onOkAndCondition func(r S)) rop.Outcome[S, F] {

	if v, ok := input.Success(); ok && condition(v) {
		onOkAndCondition(v)
	}
	return input
}

// DoubleTee observes either variant and returns input unchanged.
func DoubleTee[S, F any](input rop.Outcome[S, F], onOk func(r S), onErr func(f F)) rop.Outcome[S, F] {
	Handle(input, onOk, onErr)
	return input
}

// Handle leaves the railway, calling exactly one of the callbacks.
func Handle[S, F any](input rop.Outcome[S, F], onOk func(r S), onErr func(f F)) {
	if v, ok := input.Success(); ok {
		onOk(v)
		return
	}
	f, _ := input.Failure()
	onErr(f)
}

// Either collapses an outcome whose variants share a type.
func Either[T any](input rop.Outcome[T, T]) T {
	if v, ok := input.Success(); ok {
		return v
	}
	f, _ := input.Failure()
	return f
}

// Finally reduces input to a plain value.
func Finally[S, F, Out any](input rop.Outcome[S, F],
	onOk func(r S) Out,
	onErr func(f F) Out) Out {

	if v, ok := input.Success(); ok {
		return onOk(v)
	}
	f, _ := input.Failure()
	return onErr(f)
}

// Branch hands the whole outcome to onOk or onErr depending on its variant.
func Branch[S, F, SOut, FOut any](input rop.Outcome[S, F],
	onOk func(r rop.Outcome[S, F]) rop.Outcome[SOut, FOut],
	onErr func(r rop.Outcome[S, F]) rop.Outcome[SOut, FOut]) rop.Outcome[SOut, FOut] {

	if input.IsOk() {
		return onOk(input)
	}
	return onErr(input)
}
