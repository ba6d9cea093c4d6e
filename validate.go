//go:build !signals_novalidate

package signals

// validationEnabled is the compile-time default for the registration-time
// signature check. Building with the signals_novalidate tag compiles the
// check out for every signal, regardless of per-instance options.
const validationEnabled = true
