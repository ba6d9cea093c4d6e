// Package async implements a small future pattern for error-only background
// work, used by signals.SendAsync and the Detach receiver wrapper.
//
// # Usage
//
// Run a function in the background and wait for it:
//
//	future := async.Run(ctx, func(ctx context.Context) error {
//	    return doWork(ctx)
//	})
//
//	// Do other work...
//
//	if err := future.Await(); err != nil {
//	    log.Fatal(err)
//	}
//
// Bound the wait without cancelling the work:
//
//	if err := future.AwaitWithTimeout(time.Second); errors.Is(err, async.ErrTimeout) {
//	    log.Println("still running")
//	}
//
// # Coordination
//
// All awaits every future and returns the first error; Any returns the index
// and error of whichever future completes first.
//
// # Concurrency Safety
//
// A Future has a single writer (the goroutine spawned by Run) and the done
// channel publishes the result, so Await may be called from any number of
// goroutines. Run checks for a pre-cancelled context before invoking the
// function to avoid spawning work that would be discarded.
package async
