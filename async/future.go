package async

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrTimeout is returned when AwaitWithTimeout exceeds its duration.
	ErrTimeout = errors.New("async operation timed out")

	// ErrNoFutures is returned when Any is called with no futures.
	ErrNoFutures = errors.New("no futures provided")
)

// Future represents an in-flight computation that resolves to an error.
type Future struct {
	err  error
	done chan struct{}
}

// Await blocks until the computation completes and returns its error.
func (f *Future) Await() error {
	<-f.done
	return f.err
}

// AwaitWithTimeout blocks until the computation completes or the timeout
// elapses, in which case it returns ErrTimeout. The computation itself keeps
// running; only the wait is abandoned.
func (f *Future) AwaitWithTimeout(timeout time.Duration) error {
	select {
	case <-f.done:
		return f.err
	case <-time.After(timeout):
		return ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run executes fn on its own goroutine and returns a Future resolving to its
// error. A context that is already cancelled short-circuits: fn never runs
// and the future resolves to the context error.
func Run(ctx context.Context, fn func(context.Context) error) *Future {
	f := &Future{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents spawning work when the context is pre-cancelled
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.err = fn(ctx)
	}()

	return f
}

// All awaits every future in order and returns the first error encountered.
func All(futures ...*Future) error {
	for _, future := range futures {
		if err := future.Await(); err != nil {
			return err
		}
	}
	return nil
}

// Any waits for the first future to complete and returns its index and error.
// Spawns one goroutine per future; all of them finish naturally once their
// future resolves.
func Any(futures ...*Future) (int, error) {
	if len(futures) == 0 {
		return -1, ErrNoFutures
	}

	done := make(chan struct {
		index int
		err   error
	}, 1)

	for i, future := range futures {
		go func(index int, f *Future) {
			err := f.Await()
			select {
			case done <- struct {
				index int
				err   error
			}{index, err}:
			default:
				// Another future already won the race
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.err
}
