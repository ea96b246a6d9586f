package rand

import "errors"

var (
	// ErrInvalidRange is returned when a range is constructed or sampled
	// with low >= high. This is a programming error and is never retried.
	ErrInvalidRange = errors.New("rand: invalid range: low must be less than high")

	// ErrAllZeroSeed is returned when an XorShift generator is seeded or
	// reseeded with four zero words. The all-zero state is a fixed point
	// of the xorshift transition and would emit zeros forever.
	ErrAllZeroSeed = errors.New("rand: xorshift seed must not be all zero")

	// ErrEntropy is returned when the operating-system randomness
	// facility fails or returns short. Callers constructing a generator
	// directly may recover; the context-local generator treats it as
	// fatal because no caller can handle it there.
	ErrEntropy = errors.New("rand: entropy source unavailable")

	// ErrShortFill is returned when a byte-backed source cannot fully
	// populate a destination buffer. Partial fills are never silently
	// accepted.
	ErrShortFill = errors.New("rand: short fill from byte source")
)
