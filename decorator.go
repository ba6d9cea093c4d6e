package signals

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Decorator wraps a receiver to add cross-cutting behavior. Dispatch policy
// stays in the signal (no retries, no timeouts, first failure aborts), so
// per-receiver behavior like recovery or deadlines is layered onto the
// receiver before registration.
type Decorator func(Receiver) Receiver

// decoratedReceiver wraps a Receiver with additional functionality while
// preserving its declared parameters.
type decoratedReceiver struct {
	next Receiver
	fn   func(ctx context.Context, args Args) error
}

func (r *decoratedReceiver) Params() []string { return r.next.Params() }

func (r *decoratedReceiver) Notify(ctx context.Context, args Args) error {
	return r.fn(ctx, args)
}

// Chain applies decorators in order: the first decorator becomes the
// outermost wrapper and executes first.
//
// Example:
//
//	r := signals.Chain(receiver,
//	    signals.WithLogging(logger),
//	    signals.WithRecovery(),
//	)
func Chain(r Receiver, decorators ...Decorator) Receiver {
	for i := len(decorators) - 1; i >= 0; i-- {
		r = decorators[i](r)
	}
	return r
}

// WithRecovery converts a receiver panic into a regular error, so one
// misbehaving receiver surfaces as a dispatch failure instead of crashing the
// caller of Send.
func WithRecovery() Decorator {
	return func(next Receiver) Receiver {
		return &decoratedReceiver{
			next: next,
			fn: func(ctx context.Context, args Args) (err error) {
				defer func() {
					if rec := recover(); rec != nil {
						err = fmt.Errorf("receiver panicked: %v", rec)
					}
				}()
				return next.Notify(ctx, args)
			},
		}
	}
}

// WithTimeout derives a deadline-bound context for a single receiver
// invocation. The receiver must honor context cancellation for the deadline
// to take effect.
func WithTimeout(timeout time.Duration) Decorator {
	return func(next Receiver) Receiver {
		return &decoratedReceiver{
			next: next,
			fn: func(ctx context.Context, args Args) error {
				ctx, cancel := context.WithTimeout(ctx, timeout)
				defer cancel()
				return next.Notify(ctx, args)
			},
		}
	}
}

// WithLogging logs receiver completion and failure with timing.
func WithLogging(logger *slog.Logger) Decorator {
	return func(next Receiver) Receiver {
		return &decoratedReceiver{
			next: next,
			fn: func(ctx context.Context, args Args) error {
				start := time.Now()

				if err := next.Notify(ctx, args); err != nil {
					logger.ErrorContext(ctx, "receiver failed",
						slog.Duration("duration", time.Since(start)),
						slog.String("error", err.Error()))
					return err
				}

				logger.DebugContext(ctx, "receiver completed",
					slog.Duration("duration", time.Since(start)))
				return nil
			},
		}
	}
}
