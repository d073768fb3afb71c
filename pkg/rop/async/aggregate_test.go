package async

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop"
)

func okItem(v int) Future[int, []string] {
	return Resolved(rop.Succeeded[int, []string](v))
}

func failItem(f ...string) Future[int, []string] {
	return Resolved(rop.Failed[int](f))
}

func TestAsyncToFailureSequence(t *testing.T) {
	t.Parallel()

	o, err := ToFailureSequence(okItem(1)).Await(context.Background())
	require.NoError(t, err)
	f, isErr := o.Failure()
	assert.True(t, isErr)
	assert.Empty(t, f)
}

func TestAsyncMerge(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	acc := Resolved(rop.Succeeded[[]int, []string]([]int{1}))

	o, err := Merge(acc, okItem(2)).Await(ctx)
	require.NoError(t, err)
	v, _ := o.Success()
	assert.Equal(t, []int{1, 2}, v)

	o, err = Merge(acc, failItem("e")).Await(ctx)
	require.NoError(t, err)
	f, _ := o.Failure()
	assert.Equal(t, []string{"e"}, f)
}

func TestAsyncAggregate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	o, err := Aggregate(okItem(1), okItem(2), okItem(3)).Await(ctx)
	require.NoError(t, err)
	v, _ := o.Success()
	assert.Equal(t, []int{1, 2, 3}, v)

	o, err = Aggregate(okItem(1), failItem("e1"), okItem(2), failItem("e2", "e3")).Await(ctx)
	require.NoError(t, err)
	f, _ := o.Failure()
	assert.Equal(t, []string{"e1", "e2", "e3"}, f)

	o, err = Aggregate[int, string]().Await(ctx)
	require.NoError(t, err)
	v, isOk := o.Success()
	assert.True(t, isOk)
	assert.Empty(t, v)
}

func TestAsyncAggregate_AwaitsSequentially(t *testing.T) {
	t.Parallel()

	var order []int
	item := func(n int, delay time.Duration) Future[int, []string] {
		return func(ctx context.Context) (rop.Outcome[int, []string], error) {
			order = append(order, n)
			o, err := produced(rop.Succeeded[int, []string](n), delay).Await(ctx)
			order = append(order, -n)
			return o, err
		}
	}

	o, err := Aggregate(item(1, 20*time.Millisecond), item(2, time.Millisecond), item(3, 0)).
		Await(context.Background())
	require.NoError(t, err)
	v, _ := o.Success()
	assert.Equal(t, []int{1, 2, 3}, v)
	assert.Equal(t, []int{1, -1, 2, -2, 3, -3}, order)
}

func TestAsyncAggregate_StopsAtSuspensionError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	reached := false
	last := func(context.Context) (rop.Outcome[int, []string], error) {
		reached = true
		return rop.Succeeded[int, []string](9), nil
	}

	_, err := Aggregate(okItem(1), FromChan(make(chan rop.Outcome[int, []string])), Future[int, []string](last)).Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, reached)
}
