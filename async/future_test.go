package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signals/async"
)

func TestRun_Await(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	tests := []struct {
		name string
		fn   func(context.Context) error
		want error
	}{
		{
			name: "success",
			fn:   func(ctx context.Context) error { return nil },
			want: nil,
		},
		{
			name: "failure",
			fn:   func(ctx context.Context) error { return errBoom },
			want: errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			future := async.Run(context.Background(), tt.fn)
			assert.Equal(t, tt.want, future.Await())
		})
	}
}

func TestRun_PreCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	future := async.Run(ctx, func(ctx context.Context) error {
		ran = true
		return nil
	})

	require.ErrorIs(t, future.Await(), context.Canceled)
	assert.False(t, ran)
}

func TestFuture_AwaitWithTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	future := async.Run(context.Background(), func(ctx context.Context) error {
		<-release
		return nil
	})

	assert.ErrorIs(t, future.AwaitWithTimeout(10*time.Millisecond), async.ErrTimeout)
	assert.False(t, future.IsComplete())

	close(release)
	require.NoError(t, future.Await())
	assert.True(t, future.IsComplete())
}

func TestAll(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	ok := func(ctx context.Context) error { return nil }
	fail := func(ctx context.Context) error { return errBoom }

	require.NoError(t, async.All(
		async.Run(context.Background(), ok),
		async.Run(context.Background(), ok),
	))

	assert.Equal(t, errBoom, async.All(
		async.Run(context.Background(), ok),
		async.Run(context.Background(), fail),
		async.Run(context.Background(), ok),
	))
}

func TestAny(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	slow := async.Run(context.Background(), func(ctx context.Context) error {
		<-release
		return nil
	})
	fast := async.Run(context.Background(), func(ctx context.Context) error {
		return nil
	})

	index, err := async.Any(slow, fast)
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	close(release)
}

func TestAny_NoFutures(t *testing.T) {
	t.Parallel()

	index, err := async.Any()
	assert.ErrorIs(t, err, async.ErrNoFutures)
	assert.Equal(t, -1, index)
}
