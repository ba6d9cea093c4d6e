package signals

import "log/slog"

// Option configures a Signal.
type Option func(*Signal)

// WithLogger configures structured logging for dispatch operations.
// By default logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Signal) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithoutValidation disables the registration-time signature check for this
// signal, trading early mismatch detection for registration speed. The
// deferred-receiver check is not affected; it is always enforced.
func WithoutValidation() Option {
	return func(s *Signal) {
		s.validate = false
	}
}

// WithConfig applies environment-driven defaults loaded via LoadConfig.
func WithConfig(cfg Config) Option {
	return func(s *Signal) {
		if cfg.DisableValidation {
			s.validate = false
		}
	}
}
