package async

import (
	"context"

	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop"
	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop/solo"
)

func Map[In, Out, F any](input Future[In, F], onOk func(r In) Out) Future[Out, F] {
	return func(ctx context.Context) (rop.Outcome[Out, F], error) {
		o, err := input.Await(ctx)
		if err != nil {
			return rop.Outcome[Out, F]{}, err
		}
		return solo.Map(o, onOk), nil
	}
}

// MapAsync is Map with a suspended transform. onOk is not called for a failure.
func MapAsync[In, Out, F any](input Future[In, F],
	onOk func(ctx context.Context, r In) (Out, error)) Future[Out, F] {

	return func(ctx context.Context) (rop.Outcome[Out, F], error) {
		o, err := input.Await(ctx)
		if err != nil {
			return rop.Outcome[Out, F]{}, err
		}
		v, ok := o.Success()
		if !ok {
			return rop.Propagate[Out](o), nil
		}
		out, err := onOk(ctx, v)
		if err != nil {
			return rop.Outcome[Out, F]{}, err
		}
		return rop.Succeeded[Out, F](out), nil
	}
}

func MapBoth[In, Out, FIn, FOut any](input Future[In, FIn],
	onOk func(r In) Out,
	onErr func(f FIn) FOut) Future[Out, FOut] {

	return func(ctx context.Context) (rop.Outcome[Out, FOut], error) {
		o, err := input.Await(ctx)
		if err != nil {
			return rop.Outcome[Out, FOut]{}, err
		}
		return solo.MapBoth(o, onOk, onErr), nil
	}
}

func MapBothAsync[In, Out, FIn, FOut any](input Future[In, FIn],
	onOk func(ctx context.Context, r In) (Out, error),
	onErr func(ctx context.Context, f FIn) (FOut, error)) Future[Out, FOut] {

	return func(ctx context.Context) (rop.Outcome[Out, FOut], error) {
		o, err := input.Await(ctx)
		if err != nil {
			return rop.Outcome[Out, FOut]{}, err
		}
		if v, ok := o.Success(); ok {
			out, err := onOk(ctx, v)
			if err != nil {
				return rop.Outcome[Out, FOut]{}, err
			}
			return rop.Succeeded[Out, FOut](out), nil
		}
		f, _ := o.Failure()
		fOut, err := onErr(ctx, f)
		if err != nil {
			return rop.Outcome[Out, FOut]{}, err
		}
		return rop.Failed[Out](fOut), nil
	}
}

func Bind[In, Out, F any](input Future[In, F], onOk func(r In) rop.Outcome[Out, F]) Future[Out, F] {
	return func(ctx context.Context) (rop.Outcome[Out, F], error) {
		o, err := input.Await(ctx)
		if err != nil {
			return rop.Outcome[Out, F]{}, err
		}
		return solo.Bind(o, onOk), nil
	}
}

// BindAsync sequences a suspended step after input. The step is never
// started when input is a failure.
func BindAsync[In, Out, F any](input Future[In, F],
	onOk func(ctx context.Context, r In) (rop.Outcome[Out, F], error)) Future[Out, F] {

	return func(ctx context.Context) (rop.Outcome[Out, F], error) {
		o, err := input.Await(ctx)
		if err != nil {
			return rop.Outcome[Out, F]{}, err
		}
		v, ok := o.Success()
		if !ok {
			return rop.Propagate[Out](o), nil
		}
		return onOk(ctx, v)
	}
}

func Tee[S, F any](input Future[S, F], onOk func(r S)) Future[S, F] {
	return func(ctx context.Context) (rop.Outcome[S, F], error) {
		o, err := input.Await(ctx)
		if err != nil {
			return rop.Outcome[S, F]{}, err
		}
		return solo.Tee(o, onOk), nil
	}
}

// TeeAsync awaits a side effect on success. The outcome is returned unchanged
// even when the effect reports an error.
func TeeAsync[S, F any](input Future[S, F], onOk func(ctx context.Context, r S) error) Future[S, F] {
	return func(ctx context.Context) (rop.Outcome[S, F], error) {
		o, err := input.Await(ctx)
		if err != nil {
			return rop.Outcome[S, F]{}, err
		}
		if v, ok := o.Success(); ok {
			if err := onOk(ctx, v); err != nil {
				return o, err
			}
		}
		return o, nil
	}
}

// Handle awaits input and calls exactly one of the callbacks. Neither runs
// when awaiting fails.
func Handle[S, F any](ctx context.Context, input Future[S, F], onOk func(r S), onErr func(f F)) error {
	o, err := input.Await(ctx)
	if err != nil {
		return err
	}
	solo.Handle(o, onOk, onErr)
	return nil
}

func Either[T any](ctx context.Context, input Future[T, T]) (T, error) {
	o, err := input.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return solo.Either(o), nil
}

func Finally[S, F, Out any](ctx context.Context, input Future[S, F],
	onOk func(r S) Out,
	onErr func(f F) Out) (Out, error) {

	o, err := input.Await(ctx)
	if err != nil {
		var zero Out
		return zero, err
	}
	return solo.Finally(o, onOk, onErr), nil
}
