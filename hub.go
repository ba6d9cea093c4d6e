package signals

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Hub is a named registry of signals. It lets independent parts of an
// application reach extension points by name without sharing Signal
// references directly. Ownership of each signal (its parameter set, its
// receivers) stays with whoever registered it.
type Hub struct {
	mu      sync.RWMutex
	signals map[string]*Signal
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		signals: make(map[string]*Signal),
	}
}

// Register binds a signal to a name. Returns ErrSignalExists if the name is
// taken.
func (h *Hub) Register(name string, s *Signal) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.signals[name]; exists {
		return fmt.Errorf("%w: %q", ErrSignalExists, name)
	}
	h.signals[name] = s
	return nil
}

// Lookup returns the signal registered under name.
func (h *Hub) Lookup(name string) (*Signal, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.signals[name]
	return s, ok
}

// Names returns the registered signal names, sorted.
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, 0, len(h.signals))
	for name := range h.signals {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Send dispatches args on the signal registered under name. Returns
// ErrSignalNotFound for unknown names; otherwise the result of Signal.Send.
func (h *Hub) Send(ctx context.Context, name string, args Args) error {
	s, ok := h.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrSignalNotFound, name)
	}
	return s.Send(ctx, args)
}
