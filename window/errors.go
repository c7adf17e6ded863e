package window

import "errors"

// Error handling in window is designed around the constraint that buffer operations
// must never abort, log or allocate; every fallible method reports through its return
// value, and additionally latches one of a small set of common error kinds on the
// buffer so callers can diagnose after the fact.
// The latched error describes the most recent fallible call; a successful call resets
// it to nil, and ClearErr resets it explicitly.
//
// Errors can be checked with
//
//	if !buf.Append(data) {
//		if errors.Is(buf.Err(), window.ErrOverflow) {
//			// oldest bytes were evicted to fit data
//		}
//	}
var (
	// ErrNilData is returned when a required data argument is nil.
	// The operation is a no-op; buffer state is untouched.
	ErrNilData = errors.New("nil data")

	// ErrSizeZero is returned when a required size argument is zero.
	// The operation is a no-op; buffer state is untouched.
	ErrSizeZero = errors.New("zero size")

	// ErrOverflow is returned when a write exceeds free capacity.
	// The write is never refused outright; the oldest bytes are evicted to make room,
	// so ErrOverflow means resident data was lost, not that the new data was.
	ErrOverflow = errors.New("buffer overflow")

	// ErrNotEnoughData is returned when a read or removal asks for more bytes than
	// the buffer holds. Reads clamp to what is available; removals are refused.
	ErrNotEnoughData = errors.New("not enough data")
)
