package rand

import "fmt"

// DefaultReseedThreshold is the byte budget between automatic reseeds of
// the context-local generator: 32 KiB of output per seed.
const DefaultReseedThreshold = 32768

// A Reseeder replaces the internal state of the generator it is handed.
// It is the single capability a Reseeding wrapper needs from its policy.
type Reseeder[G Source] interface {
	Reseed(g G) error
}

// ReseederFunc adapts a function to the Reseeder interface.
type ReseederFunc[G Source] func(g G) error

// Reseed calls f.
func (f ReseederFunc[G]) Reseed(g G) error { return f(g) }

// StdReseeder rebuilds a Std from fresh operating-system entropy,
// keeping its word-width variant. It is the default policy for the
// context-local generator.
type StdReseeder struct{}

// Reseed replaces s with a freshly OS-seeded generator of the same
// variant. The previous state is kept if the entropy read fails.
func (StdReseeder) Reseed(s *Std) error {
	fresh, err := NewStdVariant(s.variant)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// Reseeding wraps a base generator with a reseed policy and a byte
// budget. Every emitted byte is charged against the budget; a draw that
// needs more bytes than remain invokes the policy first, resets the
// budget to the threshold, and is then satisfied from the fresh state.
//
// A policy failure inside a draw is fatal: the draw panics, because no
// caller is positioned to recover inline from a background reseed
// failure. Callers that need to handle reseed errors must reseed the
// base generator explicitly instead.
//
// Not safe for concurrent use.
type Reseeding[G Source] struct {
	base      G
	reseeder  Reseeder[G]
	threshold int
	remaining int
}

// NewReseeding wraps base with reseeder and a byte budget of threshold.
// threshold must be positive.
func NewReseeding[G Source](base G, threshold int, reseeder Reseeder[G]) *Reseeding[G] {
	if threshold <= 0 {
		panic(fmt.Sprintf("rand: reseed threshold must be positive: %d", threshold))
	}
	return &Reseeding[G]{
		base:      base,
		reseeder:  reseeder,
		threshold: threshold,
		remaining: threshold,
	}
}

// consume charges n bytes against the budget, reseeding first when the
// budget cannot cover them.
func (r *Reseeding[G]) consume(n int) {
	if n > r.remaining {
		if err := r.reseeder.Reseed(r.base); err != nil {
			panic(fmt.Sprintf("rand: automatic reseed failed: %s", err))
		}
		r.remaining = r.threshold
	}
	r.remaining -= n
}

// Uint32 returns the next 32-bit word, reseeding the base generator
// first if the byte budget is exhausted.
func (r *Reseeding[G]) Uint32() uint32 {
	r.consume(4)
	return r.base.Uint32()
}

// Uint64 returns the next 64-bit value.
func (r *Reseeding[G]) Uint64() uint64 {
	r.consume(8)
	return sourceUint64(r.base)
}

// FillBytes populates p, charging its full length against the budget.
func (r *Reseeding[G]) FillBytes(p []byte) error {
	r.consume(len(p))
	if f, ok := any(r.base).(Filler); ok {
		return f.FillBytes(p)
	}
	fillFromWords(r.base, p)
	return nil
}
