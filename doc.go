// Package signals provides an ordered receiver registry for in-process
// extension points. Independent parts of an application register callbacks
// ("receivers") on a Signal and are invoked, strictly in registration order,
// when the owning component dispatches an event with Send.
//
// # Core Components
//
// Signal is an ordered, mutable collection of receivers bound to a fixed set
// of recognized parameter names. It exposes list-style mutation (Append,
// Insert, Set, Delete, Clear), read-only views (Len, Get, Contains,
// Receivers, Backward), and a sequential dispatch operation (Send).
// Deliberately absent: copy/clone and sort. Registration order is the only
// meaningful order; callers needing a snapshot iterate with Receivers.
//
// Receiver is an application-supplied callback declaring the parameter names
// it accepts. Build one from a plain function with NewReceiverFunc, or
// type-safely from a struct-typed function with NewReceiver.
//
// Hub is an optional named registry of signals for applications with many
// extension points.
//
// # Basic Usage
//
//	sig := signals.New([]string{"name", "value"})
//
//	err := sig.Append(signals.NewReceiverFunc(func(ctx context.Context, args signals.Args) error {
//	    log.Printf("changed: %s=%v", args["name"], args["value"])
//	    return nil
//	}, "name", "value"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := sig.Send(ctx, signals.Args{"name": "x", "value": 1}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Dispatch Semantics
//
// Send invokes every currently-registered receiver with the same arguments,
// one after another: a receiver starts only after the previous one completed.
// The first receiver error aborts the dispatch immediately; remaining
// receivers are skipped and the error reaches the caller of Send unchanged.
// There is no partial-failure isolation, no error aggregation, and no
// "run remaining receivers anyway" mode. Effects of receivers that already
// ran are not rolled back. An empty signal returns immediately.
//
// SendAsync wraps the same sequential dispatch in an async.Future for callers
// that do not want to block.
//
// # Registration Validation
//
// At registration time each receiver's declared parameter names are checked
// against the signal's recognized set; a missing or unknown name fails with
// ErrSignatureMismatch. The check is a development-time safety net and can be
// disabled explicitly, never silently: per signal with WithoutValidation or
// Config, or globally by compiling with the signals_novalidate build tag.
//
// Receivers must be ordinary synchronous callables. A receiver that schedules
// its own execution (anything reporting Deferred() == true, such as the
// Detach wrapper) is rejected with ErrInvalidReceiverKind regardless of its
// signature: the signal owns sequencing, receivers do not.
//
// # Thread Safety
//
// All Signal and Hub operations are safe for concurrent use. Mutation is
// serialized by an internal lock, and Send iterates over a snapshot of the
// receiver sequence taken when the dispatch starts, so concurrent mutation
// never affects an in-flight dispatch. Multiple concurrent Send calls against
// the same signal are permitted; the signal holds no call-scoped state.
//
// # Observability
//
// With WithLogger, Send emits debug-level records for dispatch start,
// completion, and abort, correlated by a per-dispatch ID. Receiver-level
// logging, recovery, and deadlines are layered on with the Chain decorators.
// Nothing is logged by default.
package signals
