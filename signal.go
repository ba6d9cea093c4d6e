package signals

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signals/async"
)

// Signal is an ordered, mutable registry of receivers bound to a fixed set of
// recognized parameter names. Receivers are appended, inserted, replaced, and
// removed like a list; Send invokes every registered receiver strictly
// sequentially in registration order.
//
// Signal is safe for concurrent use: mutation is serialized by an internal
// lock, and dispatch iterates over a snapshot of the receiver sequence, so an
// in-flight Send never observes concurrent mutation.
type Signal struct {
	params    map[string]struct{}
	receivers []Receiver
	validate  bool
	logger    *slog.Logger
	mu        sync.RWMutex
}

// New creates a Signal recognizing the given parameter names. Duplicate names
// collapse; order is irrelevant. The parameter set is fixed for the lifetime
// of the signal.
//
// Example:
//
//	sig := signals.New([]string{"name", "value"})
//	sig.Append(receiver)
//	err := sig.Send(ctx, signals.Args{"name": "x", "value": 1})
func New(params []string, opts ...Option) *Signal {
	s := &Signal{
		params:   make(map[string]struct{}, len(params)),
		validate: validationEnabled,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, p := range params {
		s.params[p] = struct{}{}
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Params returns a sorted copy of the recognized parameter set.
func (s *Signal) Params() []string {
	names := make([]string, 0, len(s.params))
	for p := range s.params {
		names = append(names, p)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered receivers.
func (s *Signal) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.receivers)
}

// Get returns the receiver at index i.
func (s *Signal) Get(i int) (Receiver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i < 0 || i >= len(s.receivers) {
		return nil, fmt.Errorf("%w: index %d with %d receivers", ErrIndexOutOfRange, i, len(s.receivers))
	}
	return s.receivers[i], nil
}

// Set replaces the receiver at index i.
func (s *Signal) Set(i int, r Receiver) error {
	if err := s.checkReceiver(r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.receivers) {
		return fmt.Errorf("%w: index %d with %d receivers", ErrIndexOutOfRange, i, len(s.receivers))
	}
	s.receivers[i] = r
	return nil
}

// Insert inserts r before index i, shifting subsequent receivers up by one
// position. The index is clamped to the valid range, so Insert(0, r) on an
// empty signal and Insert(Len(), r) both work.
func (s *Signal) Insert(i int, r Receiver) error {
	if err := s.checkReceiver(r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 {
		i = 0
	}
	if i > len(s.receivers) {
		i = len(s.receivers)
	}
	s.receivers = slices.Insert(s.receivers, i, r)
	return nil
}

// Append registers r after all current receivers.
func (s *Signal) Append(r Receiver) error {
	if err := s.checkReceiver(r); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.receivers = append(s.receivers, r)
	return nil
}

// Delete removes the receiver at index i; following receivers shift down by
// one position.
func (s *Signal) Delete(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.receivers) {
		return fmt.Errorf("%w: index %d with %d receivers", ErrIndexOutOfRange, i, len(s.receivers))
	}
	s.receivers = slices.Delete(s.receivers, i, i+1)
	return nil
}

// Clear removes all receivers.
func (s *Signal) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.receivers)
	s.receivers = s.receivers[:0]
}

// Contains reports whether r is registered. Receivers are compared by
// identity, so it only matches the exact value passed to Append/Insert/Set.
// A receiver of a non-comparable dynamic type can never match by identity
// and is reported as not contained.
func (s *Signal) Contains(r Receiver) bool {
	if r == nil || !reflect.TypeOf(r).Comparable() {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Interface comparison only panics when both dynamic types are identical
	// and non-comparable; r being comparable rules that out.
	for _, registered := range s.receivers {
		if registered == r {
			return true
		}
	}
	return false
}

// Receivers iterates over the registered receivers in registration order.
// The sequence is a snapshot: restartable, and unaffected by mutation after
// the call.
func (s *Signal) Receivers() iter.Seq[Receiver] {
	receivers := s.snapshot()
	return func(yield func(Receiver) bool) {
		for _, r := range receivers {
			if !yield(r) {
				return
			}
		}
	}
}

// Backward iterates over the registered receivers in reverse registration
// order, with the same snapshot semantics as Receivers.
func (s *Signal) Backward() iter.Seq[Receiver] {
	receivers := s.snapshot()
	return func(yield func(Receiver) bool) {
		for i := len(receivers) - 1; i >= 0; i-- {
			if !yield(receivers[i]) {
				return
			}
		}
	}
}

// Send invokes every currently-registered receiver in registration order,
// passing args to each. Receivers run strictly sequentially: each is invoked
// only after the previous one completed. The first receiver error aborts the
// dispatch; remaining receivers are skipped and the error is returned to the
// caller unchanged. Effects of receivers that already ran are not rolled back.
//
// Send does not validate args against the recognized parameter set; that
// check happened per receiver at registration time.
func (s *Signal) Send(ctx context.Context, args Args) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	receivers := s.snapshot()
	if len(receivers) == 0 {
		return nil
	}

	dispatchID := uuid.NewString()
	start := time.Now()
	s.logger.DebugContext(ctx, "dispatch started",
		slog.String("dispatch_id", dispatchID),
		slog.Int("receivers", len(receivers)))

	for i, r := range receivers {
		if err := r.Notify(ctx, args); err != nil {
			s.logger.DebugContext(ctx, "dispatch aborted",
				slog.String("dispatch_id", dispatchID),
				slog.Int("receiver_index", i),
				slog.Duration("duration", time.Since(start)),
				slog.String("error", err.Error()))
			return err
		}
	}

	s.logger.DebugContext(ctx, "dispatch completed",
		slog.String("dispatch_id", dispatchID),
		slog.Duration("duration", time.Since(start)))
	return nil
}

// SendAsync runs Send on its own goroutine and returns a future that resolves
// to Send's error. Dispatch stays sequential; only the caller is freed from
// blocking.
func (s *Signal) SendAsync(ctx context.Context, args Args) *async.Future {
	return async.Run(ctx, func(ctx context.Context) error {
		return s.Send(ctx, args)
	})
}

func (s *Signal) snapshot() []Receiver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.receivers)
}

// checkReceiver enforces the registration contract: the receiver must be an
// ordinary synchronous callable and, when validation is enabled, its declared
// parameters must bind exactly against the recognized set.
func (s *Signal) checkReceiver(r Receiver) error {
	if r == nil {
		return fmt.Errorf("%w: nil receiver", ErrInvalidReceiverKind)
	}
	if d, ok := r.(deferredReceiver); ok && d.Deferred() {
		return fmt.Errorf("%w: deferred receivers cannot be sequenced by a signal", ErrInvalidReceiverKind)
	}

	if !s.validate {
		return nil
	}

	declared := make(map[string]struct{}, len(r.Params()))
	for _, p := range r.Params() {
		if _, ok := s.params[p]; !ok {
			return fmt.Errorf("%w: receiver declares unknown parameter %q", ErrSignatureMismatch, p)
		}
		declared[p] = struct{}{}
	}
	for p := range s.params {
		if _, ok := declared[p]; !ok {
			return fmt.Errorf("%w: receiver does not accept parameter %q", ErrSignatureMismatch, p)
		}
	}
	return nil
}
