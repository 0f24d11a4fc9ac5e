package ltp

import "errors"

// =============================================================================
// Parameter Types
// =============================================================================

// Params configures a search.
type Params struct {
	Seeds    []uint64 `json:"seeds" yaml:"seeds"`         // Single-digit LTPs the search starts from
	Capacity int      `json:"capacity" yaml:"capacity"`   // Ring buffer slots
	MaxIndex int      `json:"max_index" yaml:"max_index"` // Largest index Find accepts
	MaxOrder int      `json:"max_order" yaml:"max_order"` // Last digit position prepended
}

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrInvalidIndex is returned when an index is outside [1, MaxIndex].
	ErrInvalidIndex = errors.New("invalid index")

	// ErrUnsupportedMagnitude is returned when a candidate is too large for
	// any deterministic witness set.
	ErrUnsupportedMagnitude = errors.New("unsupported magnitude")

	// ErrBufferExhausted is returned when the ring buffer would overwrite a
	// record that has not been consumed.
	ErrBufferExhausted = errors.New("buffer exhausted")

	// ErrSearchExhausted is returned when the order bound is reached before
	// the requested LTP is found.
	ErrSearchExhausted = errors.New("search exhausted")

	// ErrInvalidParams is returned for inconsistent parameter sets.
	ErrInvalidParams = errors.New("invalid params")
)
