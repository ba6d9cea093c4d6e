package signals_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signals"
)

func TestHub_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	hub := signals.NewHub()
	sig := signals.New([]string{"name"})

	require.NoError(t, hub.Register("on_rename", sig))

	got, ok := hub.Lookup("on_rename")
	require.True(t, ok)
	assert.Same(t, sig, got)

	_, ok = hub.Lookup("unknown")
	assert.False(t, ok)
}

func TestHub_DuplicateName(t *testing.T) {
	t.Parallel()

	hub := signals.NewHub()
	require.NoError(t, hub.Register("on_rename", signals.New([]string{"name"})))

	err := hub.Register("on_rename", signals.New([]string{"name"}))
	assert.ErrorIs(t, err, signals.ErrSignalExists)
}

func TestHub_Names(t *testing.T) {
	t.Parallel()

	hub := signals.NewHub()
	require.NoError(t, hub.Register("b", signals.New(nil)))
	require.NoError(t, hub.Register("a", signals.New(nil)))
	require.NoError(t, hub.Register("c", signals.New(nil)))

	assert.Equal(t, []string{"a", "b", "c"}, hub.Names())
}

func TestHub_Send(t *testing.T) {
	t.Parallel()

	hub := signals.NewHub()
	sig := signals.New([]string{"name"})

	var log []string
	require.NoError(t, sig.Append(logReceiver(&log, "A", "name")))
	require.NoError(t, hub.Register("on_rename", sig))

	require.NoError(t, hub.Send(context.Background(), "on_rename", signals.Args{"name": "x"}))
	assert.Equal(t, []string{"A"}, log)

	err := hub.Send(context.Background(), "unknown", signals.Args{"name": "x"})
	assert.ErrorIs(t, err, signals.ErrSignalNotFound)
}
