package rand

// XorShift is the fast non-cryptographic generator: Marsaglia's
// xorshift128 over four 32-bit words. It is cheap to construct and to
// draw from, at the cost of far weaker output than the strong default.
// Not safe for concurrent use.
//
// Marsaglia, George (July 2003). "Xorshift RNGs". Journal of
// Statistical Software. Vol. 8 (Issue 14).
type XorShift struct {
	x, y, z, w uint32
}

// NewXorShift returns an XorShift seeded from the operating system,
// retrying the entropy read until the seed is not all zero.
func NewXorShift() (*XorShift, error) {
	var buf [16]byte
	for {
		if err := (OS{}).FillBytes(buf[:]); err != nil {
			return nil, err
		}
		zero := true
		for _, b := range buf {
			if b != 0 {
				zero = false
				break
			}
		}
		if !zero {
			break
		}
	}
	seed := [4]uint32{
		leUint32(buf[0:]),
		leUint32(buf[4:]),
		leUint32(buf[8:]),
		leUint32(buf[12:]),
	}
	g := &XorShift{}
	g.seed(seed)
	return g, nil
}

// NewXorShiftFromSeed returns a deterministic XorShift. The all-zero
// seed is rejected with ErrAllZeroSeed: it is a fixed point of the
// transition and would emit zeros forever.
func NewXorShiftFromSeed(seed [4]uint32) (*XorShift, error) {
	if seed == ([4]uint32{}) {
		return nil, ErrAllZeroSeed
	}
	g := &XorShift{}
	g.seed(seed)
	return g, nil
}

// Reseed replaces the state with seed, rejecting the all-zero seed with
// ErrAllZeroSeed. On error the previous state is kept.
func (g *XorShift) Reseed(seed [4]uint32) error {
	if seed == ([4]uint32{}) {
		return ErrAllZeroSeed
	}
	g.seed(seed)
	return nil
}

func (g *XorShift) seed(seed [4]uint32) {
	g.x, g.y, g.z, g.w = seed[0], seed[1], seed[2], seed[3]
}

// Uint32 advances the state and returns the new w word.
func (g *XorShift) Uint32() uint32 {
	t := g.x ^ (g.x << 11)
	g.x, g.y, g.z = g.y, g.z, g.w
	g.w = g.w ^ (g.w >> 19) ^ (t ^ (t >> 8))
	return g.w
}
