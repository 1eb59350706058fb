package physics

import "errors"

// Sentinel errors for the core. Construction-time errors (ErrInvalidDimension,
// ErrInvalidParameter) propagate to the caller of NewSession. The rest are
// internal correctness checks that should never fire in a released build,
// except ErrDegenerateField, which is a legitimate runtime outcome of an
// extreme negative measurement and is surfaced to the caller of Measure.
var (
	ErrInvalidDimension = errors.New("physics: dimension must be a power of two >= 2")
	ErrInvalidParameter = errors.New("physics: parameter must be positive and finite")
	ErrInvalidFFTSize   = errors.New("physics: fft plan size must be a power of two >= 2")
	ErrIndexOutOfRange  = errors.New("physics: index out of range")
	ErrShapeMismatch    = errors.New("physics: field shapes do not match")
	ErrDegenerateField  = errors.New("physics: field has zero total probability")
)
