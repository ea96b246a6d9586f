// Package rand provides a pseudorandom-number generation core: a small
// generator contract, two deterministic algorithms built on it (ISAAC as
// the strong default and xorshift as the fast alternative), an
// operating-system entropy source, automatic entropy-budgeted reseeding,
// and uniform sampling utilities (ranges, choose, shuffle, reservoir
// sampling).
//
// None of the algorithmic generators, including the strong default, are
// suitable for cryptographic key material: enough output can in principle
// expose internal state. An application that needs secrets must read from
// OS directly.
//
// No generator is safe for concurrent use. Every instance assumes a
// single owner; concurrent generation needs one instance per worker or
// external locking.
//
// Example usage:
//
//	std, err := rand.NewStd()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := rand.New(std)
//	token := r.AsciiString(32)
//	n, _ := r.IntRange(0, 100)
package rand

import (
	"iter"
	"strings"
)

// Source is the minimal generator contract: produce the next 32-bit word.
// Everything else the package offers is derived from it.
type Source interface {
	// Uint32 returns the next pseudorandom 32-bit word.
	Uint32() uint32
}

// Source64 is implemented by sources with a native 64-bit output, such as
// the 64-bit ISAAC variant. Rand uses it when present instead of pairing
// two 32-bit draws.
type Source64 interface {
	Source
	Uint64() uint64
}

// Filler is implemented by sources that can fill a byte buffer more
// efficiently than repeated word draws, or that may legitimately fail to
// (for example a source draining an io.Reader). A Filler must populate
// the destination completely or return an error; it must never short-fill
// silently.
type Filler interface {
	FillBytes(p []byte) error
}

// Rand derives the full generation capability from a Source. It owns no
// state beyond the source and is exactly as deterministic as the source
// underneath it.
type Rand struct {
	src Source
}

// New returns a Rand drawing from src. The Rand does not copy src; it
// shares the caller's instance and its single-owner discipline.
func New(src Source) *Rand {
	return &Rand{src: src}
}

// Uint32 returns the next pseudorandom 32-bit word.
func (r *Rand) Uint32() uint32 {
	return r.src.Uint32()
}

// Uint64 returns the next pseudorandom 64-bit value. When the source has
// no native 64-bit output it combines two 32-bit draws, high half first.
func (r *Rand) Uint64() uint64 {
	return sourceUint64(r.src)
}

// Int63 returns a non-negative pseudorandom 63-bit integer.
func (r *Rand) Int63() int64 {
	return int64(r.Uint64() &^ (1 << 63))
}

// Float64 returns a pseudorandom number in [0.0, 1.0) at full 53-bit
// mantissa resolution.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Float32 returns a pseudorandom number in [0.0, 1.0) at full 24-bit
// mantissa resolution.
func (r *Rand) Float32() float32 {
	return float32(r.Uint32()>>8) / (1 << 24)
}

// FillBytes overwrites every byte of p with pseudorandom data. Sources
// implementing Filler are used directly; otherwise p is filled from
// 64-bit draws drained low-byte-first. The destination is either fully
// populated or an error is returned, never a silent partial fill.
func (r *Rand) FillBytes(p []byte) error {
	if f, ok := r.src.(Filler); ok {
		return f.FillBytes(p)
	}
	fillFromWords(r.src, p)
	return nil
}

// IntRange returns a uniform value in [low, high). It builds a one-shot
// sampler; hot paths drawing from the same range repeatedly should
// construct an Int64Range once instead.
func (r *Rand) IntRange(low, high int) (int, error) {
	v, err := r.Int64Range(int64(low), int64(high))
	return int(v), err
}

// Int64Range returns a uniform value in [low, high).
func (r *Rand) Int64Range(low, high int64) (int64, error) {
	ir, err := NewInt64Range(low, high)
	if err != nil {
		return 0, err
	}
	return ir.Sample(r), nil
}

// Uint64Range returns a uniform value in [low, high).
func (r *Rand) Uint64Range(low, high uint64) (uint64, error) {
	ur, err := NewUint64Range(low, high)
	if err != nil {
		return 0, err
	}
	return ur.Sample(r), nil
}

// Float64Range returns a uniform value in [low, high).
func (r *Rand) Float64Range(low, high float64) (float64, error) {
	fr, err := NewFloat64Range(low, high)
	if err != nil {
		return 0, err
	}
	return fr.Sample(r), nil
}

// WeightedBool returns true with probability 1/n. n == 0 means "never
// false" and always returns true; this quirk is part of the contract, not
// a bug, and callers rely on it.
func (r *Rand) WeightedBool(n uint64) bool {
	return n == 0 || uniformUint64(r.src, n) == 0
}

const asciiAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789"

// AsciiString returns a string of n independent uniform picks from the
// 62-symbol alphabet A-Z, a-z, 0-9.
func (r *Rand) AsciiString(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(asciiAlphabet[uniformUint64(r.src, uint64(len(asciiAlphabet)))])
	}
	return b.String()
}

// Uint64s returns a slice of n pseudorandom 64-bit values.
func (r *Rand) Uint64s(n int) []uint64 {
	vs := make([]uint64, n)
	for i := range vs {
		vs[i] = r.Uint64()
	}
	return vs
}

// Perm returns a pseudorandom permutation of the integers in [0, n).
func (r *Rand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(r, p)
	return p
}

// Choose returns a uniformly chosen element of values. The second return
// is false when values is empty.
func Choose[T any](r *Rand, values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	return values[uniformUint64(r.src, uint64(len(values)))], true
}

// Shuffle permutes values in place using the Fisher-Yates algorithm. Each
// of the len! permutations is equally likely, at the cost of len-1 draws.
// Inputs of length 0 or 1 are left untouched.
func Shuffle[T any](r *Rand, values []T) {
	// Elements with index > i are already locked in place.
	for i := len(values) - 1; i > 0; i-- {
		j := uniformUint64(r.src, uint64(i)+1)
		values[i], values[j] = values[j], values[i]
	}
}

// Sample draws up to n elements from seq by reservoir sampling: a single
// pass, no buffering of the input, unbiased even when the length of seq
// is unknown in advance. The result holds min(n, length) elements; when
// the sequence is no longer than n it is returned whole, in order.
func Sample[T any](r *Rand, seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	reservoir := make([]T, 0, n)
	i := 0
	for v := range seq {
		if i < n {
			reservoir = append(reservoir, v)
		} else {
			k := uniformUint64(r.src, uint64(i)+1)
			if k < uint64(n) {
				reservoir[k] = v
			}
		}
		i++
	}
	return reservoir
}

// sourceUint64 combines two 32-bit draws (high half first) unless the
// source provides a native 64-bit output.
func sourceUint64(src Source) uint64 {
	if s64, ok := src.(Source64); ok {
		return s64.Uint64()
	}
	hi := uint64(src.Uint32())
	lo := uint64(src.Uint32())
	return hi<<32 | lo
}

// fillFromWords drains 64-bit draws into p low-byte-first, topping up on
// exhaustion. Every byte of p is overwritten.
func fillFromWords(src Source, p []byte) {
	var buf uint64
	left := 0
	for i := range p {
		if left == 0 {
			buf = sourceUint64(src)
			left = 8
		}
		p[i] = byte(buf)
		buf >>= 8
		left--
	}
}

// uniformUint64 returns a uniform value in [0, span) by rejection
// sampling, avoiding modulo bias. span must be positive.
func uniformUint64(src Source, span uint64) uint64 {
	if span == 0 {
		panic("rand: uniform span must be positive")
	}
	return sampleSpan(src, span, rejectionZone(span))
}
