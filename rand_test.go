package rand

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// constSource repeats one 64-bit word forever. It deliberately does not
// implement Filler, so Rand's derived byte-filling path is what gets
// exercised.
type constSource struct {
	v uint64
}

func (s *constSource) Uint32() uint32 { return uint32(s.v >> 32) }
func (s *constSource) Uint64() uint64 { return s.v }

func newTestRand(t *testing.T) *Rand {
	t.Helper()
	g, err := NewXorShiftFromSeed([4]uint32{0x193a6754, 0xa8a7d469, 0x97830e05, 0x113ba7bb})
	require.NoError(t, err)
	return New(g)
}

func TestUint64Derivation(t *testing.T) {
	// A source without native 64-bit output pairs two 32-bit draws,
	// high half first.
	g, err := NewXorShiftFromSeed([4]uint32{1, 2, 3, 4})
	require.NoError(t, err)
	h, err := NewXorShiftFromSeed([4]uint32{1, 2, 3, 4})
	require.NoError(t, err)

	hi := uint64(h.Uint32())
	lo := uint64(h.Uint32())
	require.Equal(t, hi<<32|lo, New(g).Uint64())
}

func TestFillBytesBoundaries(t *testing.T) {
	// Every remainder mod 8, in both small and large buffers.
	lengths := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 80, 81, 82, 83, 84, 85, 86, 87}
	for _, n := range lengths {
		r := New(&constSource{v: 0x1122334455667788})
		buf := make([]byte, n)
		require.NoError(t, r.FillBytes(buf))
		for i, b := range buf {
			require.NotZerof(t, b, "byte %d of %d not overwritten", i, n)
		}
	}
}

func TestFillBytesDrainsLowByteFirst(t *testing.T) {
	r := New(&constSource{v: 0x8877665544332211})
	buf := make([]byte, 10)
	require.NoError(t, r.FillBytes(buf))
	require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x11, 0x22}, buf)
}

func TestFloat64Bounds(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestFloat32Bounds(t *testing.T) {
	r := newTestRand(t)
	for i := 0; i < 10000; i++ {
		v := r.Float32()
		require.GreaterOrEqual(t, v, float32(0))
		require.Less(t, v, float32(1))
	}
}

func TestIntRange(t *testing.T) {
	r := newTestRand(t)

	for i := 0; i < 1000; i++ {
		v, err := r.IntRange(-3, 42)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, -3)
		require.Less(t, v, 42)
	}

	t.Run("SingleValue", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			v, err := r.IntRange(0, 1)
			require.NoError(t, err)
			require.Equal(t, 0, v)

			v, err = r.IntRange(-12, -11)
			require.NoError(t, err)
			require.Equal(t, -12, v)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := r.IntRange(5, 5)
		require.ErrorIs(t, err, ErrInvalidRange)
		_, err = r.IntRange(5, -2)
		require.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestWeightedBool(t *testing.T) {
	r := newTestRand(t)

	// n == 0 means "never false", not "never true".
	for i := 0; i < 100; i++ {
		require.True(t, r.WeightedBool(0))
		require.True(t, r.WeightedBool(1))
	}

	// For large n the empirical frequency approaches 1/n.
	const trials = 100000
	hits := 0
	for i := 0; i < trials; i++ {
		if r.WeightedBool(100) {
			hits++
		}
	}
	require.InDelta(t, trials/100, hits, trials/100*0.25)
}

func TestAsciiString(t *testing.T) {
	r := newTestRand(t)

	require.Empty(t, r.AsciiString(0))
	for _, n := range []int{1, 10, 16, 100} {
		s := r.AsciiString(n)
		require.Len(t, s, n)
		for _, c := range []byte(s) {
			require.Contains(t, asciiAlphabet, string(c))
		}
	}
}

func TestChoose(t *testing.T) {
	r := newTestRand(t)

	_, ok := Choose(r, []int(nil))
	require.False(t, ok)

	v, ok := Choose(r, []int{7})
	require.True(t, ok)
	require.Equal(t, 7, v)

	values := []int{1, 2, 4, 8, 16, 32}
	for i := 0; i < 100; i++ {
		v, ok := Choose(r, values)
		require.True(t, ok)
		require.Contains(t, values, v)
	}
}

func TestShuffle(t *testing.T) {
	r := newTestRand(t)

	var empty []int
	Shuffle(r, empty)
	require.Empty(t, empty)

	one := []int{1}
	Shuffle(r, one)
	require.Equal(t, []int{1}, one)

	two := []int{1, 2}
	Shuffle(r, two)
	require.ElementsMatch(t, []int{1, 2}, two)

	many := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	shuffled := slices.Clone(many)
	Shuffle(r, shuffled)
	require.ElementsMatch(t, many, shuffled)
}

func TestShuffleReachesAllPermutations(t *testing.T) {
	r := newTestRand(t)

	// Three elements have six permutations; all of them should show up
	// within a few hundred shuffles of a fresh copy.
	seen := map[[3]int]int{}
	for i := 0; i < 600; i++ {
		v := []int{1, 2, 3}
		Shuffle(r, v)
		seen[[3]int{v[0], v[1], v[2]}]++
	}
	require.Len(t, seen, 6)
}

func TestSample(t *testing.T) {
	r := newTestRand(t)
	input := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	t.Run("ShorterThanReservoir", func(t *testing.T) {
		// The whole sequence comes back, in order.
		got := Sample(r, slices.Values(input), len(input)+5)
		require.Equal(t, input, got)
	})

	t.Run("LongerThanReservoir", func(t *testing.T) {
		got := Sample(r, slices.Values(input), 4)
		require.Len(t, got, 4)
		for _, v := range got {
			require.Contains(t, input, v)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		require.Empty(t, Sample(r, slices.Values([]int{}), 4))
		require.Empty(t, Sample(r, slices.Values(input), 0))
	})

	t.Run("SinglePassOverLazySequence", func(t *testing.T) {
		// The input is generated on the fly; nothing forces it to be
		// materialized.
		pulls := 0
		seq := func(yield func(int) bool) {
			for i := 0; i < 10000; i++ {
				pulls++
				if !yield(i) {
					return
				}
			}
		}
		got := Sample(r, seq, 10)
		require.Len(t, got, 10)
		require.Equal(t, 10000, pulls)
		for _, v := range got {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 10000)
		}
	})
}

func TestPerm(t *testing.T) {
	r := newTestRand(t)

	require.Empty(t, r.Perm(0))
	p := r.Perm(50)
	want := make([]int, 50)
	for i := range want {
		want[i] = i
	}
	require.ElementsMatch(t, want, p)
}

func TestUint64s(t *testing.T) {
	r := newTestRand(t)
	require.Empty(t, r.Uint64s(0))
	require.Len(t, r.Uint64s(10), 10)
}
