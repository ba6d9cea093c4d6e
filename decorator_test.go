package signals_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signals"
)

func TestChain_OrderOutermostFirst(t *testing.T) {
	t.Parallel()

	var log []string
	tag := func(id string) signals.Decorator {
		return func(next signals.Receiver) signals.Receiver {
			return signals.NewReceiverFunc(func(ctx context.Context, args signals.Args) error {
				log = append(log, id)
				return next.Notify(ctx, args)
			}, next.Params()...)
		}
	}

	r := signals.Chain(logReceiver(&log, "receiver", "name"), tag("outer"), tag("inner"))

	require.NoError(t, r.Notify(context.Background(), signals.Args{"name": "x"}))
	assert.Equal(t, []string{"outer", "inner", "receiver"}, log)
}

func TestChain_PreservesParams(t *testing.T) {
	t.Parallel()

	sig := signals.New([]string{"name", "value"})

	r := signals.Chain(noopReceiver("name", "value"),
		signals.WithRecovery(),
		signals.WithLogging(slog.New(slog.NewTextHandler(io.Discard, nil))),
		signals.WithTimeout(time.Second),
	)

	// Decorated receivers keep the declared parameters, so validation passes.
	require.NoError(t, sig.Append(r))
}

func TestWithRecovery(t *testing.T) {
	t.Parallel()

	r := signals.Chain(signals.NewReceiverFunc(func(ctx context.Context, args signals.Args) error {
		panic("kaboom")
	}, "name"), signals.WithRecovery())

	err := r.Notify(context.Background(), signals.Args{"name": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "receiver panicked")
	assert.Contains(t, err.Error(), "kaboom")
}

func TestWithRecovery_InDispatch(t *testing.T) {
	t.Parallel()

	sig := signals.New([]string{"name"})

	var log []string
	require.NoError(t, sig.Append(signals.Chain(signals.NewReceiverFunc(func(ctx context.Context, args signals.Args) error {
		panic("kaboom")
	}, "name"), signals.WithRecovery())))
	require.NoError(t, sig.Append(logReceiver(&log, "after", "name")))

	// The panic becomes a regular first-failure abort.
	err := sig.Send(context.Background(), signals.Args{"name": "x"})
	require.Error(t, err)
	assert.Empty(t, log)
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	r := signals.Chain(signals.NewReceiverFunc(func(ctx context.Context, args signals.Args) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, "name"), signals.WithTimeout(10*time.Millisecond))

	err := r.Notify(context.Background(), signals.Args{"name": "x"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWithLogging_PassesErrorThrough(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := signals.Chain(signals.NewReceiverFunc(func(ctx context.Context, args signals.Args) error {
		return context.Canceled
	}, "name"), signals.WithLogging(logger))

	assert.ErrorIs(t, r.Notify(context.Background(), signals.Args{"name": "x"}), context.Canceled)
}
