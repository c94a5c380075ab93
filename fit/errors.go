package fit

import "errors"

var (
	// ErrConfig reports invalid or inconsistent fitting input: an unknown
	// correction mode, a missing or misaligned blank series, or a series
	// too short to fit. It always surfaces to the immediate caller.
	ErrConfig = errors.New("fit: invalid configuration")

	// ErrConvergence reports that the optimizer exhausted its iteration or
	// damping budget without reaching a minimum. Batch callers treat it as
	// a per-sample failure rather than a fatal error.
	ErrConvergence = errors.New("fit: optimizer did not converge")
)
