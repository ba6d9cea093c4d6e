//go:build signals_novalidate

package signals

// validationEnabled is false under the signals_novalidate tag: optimized
// builds skip the registration-time signature check entirely.
const validationEnabled = false
