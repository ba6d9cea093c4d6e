package signals

import "errors"

var (
	// ErrInvalidReceiverKind is returned when a registration operation is given
	// a receiver that is not an ordinary synchronous callable, e.g. a deferred
	// receiver created with Detach. The signal sequences receivers itself;
	// receivers that schedule their own execution cannot be sequenced.
	ErrInvalidReceiverKind = errors.New("receiver is not an ordinary synchronous callable")

	// ErrSignatureMismatch is returned when a receiver's declared parameters
	// cannot be bound against the signal's recognized parameter set. The check
	// runs at registration time and can be disabled, see WithoutValidation.
	ErrSignatureMismatch = errors.New("receiver signature does not match signal parameters")

	// ErrIndexOutOfRange is returned by positional access, replacement, or
	// removal beyond the current receiver sequence bounds.
	ErrIndexOutOfRange = errors.New("receiver index out of range")

	// ErrSignalNotFound is returned when a hub operation references a signal
	// name that was never registered.
	ErrSignalNotFound = errors.New("signal not found")

	// ErrSignalExists is returned when registering a hub signal under a name
	// that is already taken.
	ErrSignalExists = errors.New("signal already registered")
)
