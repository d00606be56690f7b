package latticenoise

import "errors"

// Sentinel error kinds. Every failure returned by this package wraps one
// of these, so callers can classify failures with errors.Is.
var (
	// ErrConfiguration reports an invalid dimension, grid shape, or
	// corner-scalar count.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrDimensionMismatch reports a query whose coordinate count differs
	// from the field's configured dimension.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrLatticeBounds reports a gradient lookup outside the built
	// lattice. Coordinate wrapping keeps Noise queries inside the
	// lattice, so seeing this from Noise means a caller-side contract
	// violation.
	ErrLatticeBounds = errors.New("coordinate outside lattice")
)
