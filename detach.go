package signals

import (
	"context"

	"github.com/dmitrymomot/signals/async"
)

// Detach wraps a receiver so Notify schedules the work through async.Run and
// returns immediately, discarding the result. Detached receivers are meant
// for direct invocation by application code that does not care about
// completion; a Signal refuses to register them with ErrInvalidReceiverKind,
// because dispatch sequencing belongs to the signal, not the receiver.
func Detach(r Receiver) Receiver {
	return &detachedReceiver{next: r}
}

type detachedReceiver struct {
	next Receiver
}

func (d *detachedReceiver) Params() []string { return d.next.Params() }

// Deferred reports that this receiver schedules its own execution.
func (d *detachedReceiver) Deferred() bool { return true }

func (d *detachedReceiver) Notify(ctx context.Context, args Args) error {
	async.Run(ctx, func(ctx context.Context) error {
		return d.next.Notify(ctx, args)
	})
	return nil
}
