package rand

// ISAAC (Bob Jenkins, 1996) is the strong deterministic generator. Its
// state is 256 words mixed a full block at a time; every pass produces
// 256 cached results that draws consume through a cursor. Construction
// is expensive relative to per-draw cost because seeding folds the seed
// through the mixing transform and warms the state up before any output
// is trusted.

const (
	isaacWords  = 256
	isaacGolden = 0x9e3779b9 // golden ratio, the fixed initial fill
)

// Isaac is the 32-bit ISAAC variant. Not safe for concurrent use.
type Isaac struct {
	mem [isaacWords]uint32 // internal state
	rsl [isaacWords]uint32 // results cache
	a   uint32             // accumulator
	b   uint32             // last output
	c   uint32             // pass counter
	pos int                // cursor into rsl, [0, isaacWords]
}

// NewIsaac returns an Isaac seeded with 1024 bytes from the operating
// system. Construction cost is dominated by the seeding passes; callers
// generating few values may prefer the context-local generator.
func NewIsaac() (*Isaac, error) {
	var buf [4 * isaacWords]byte
	if err := (OS{}).FillBytes(buf[:]); err != nil {
		return nil, err
	}
	seed := make([]uint32, isaacWords)
	for i := range seed {
		seed[i] = leUint32(buf[4*i:])
	}
	return NewIsaacFromSeed(seed), nil
}

// NewIsaacFromSeed returns an Isaac deterministically seeded from seed.
// Two instances built from equal seeds produce identical output. Seeds
// longer than 256 words are truncated, shorter ones zero-padded.
func NewIsaacFromSeed(seed []uint32) *Isaac {
	g := &Isaac{}
	g.init(seed)
	return g
}

// Reseed discards the entire state and rebuilds it from seed, exactly as
// construction would. There is no incremental reseed.
func (g *Isaac) Reseed(seed []uint32) {
	*g = Isaac{}
	g.init(seed)
}

// init folds seed into the state: start from the golden-ratio constant
// fill, mix, then run two folding passes (first over the seed words,
// then over the state itself) before generating the first block.
func (g *Isaac) init(seed []uint32) {
	copy(g.rsl[:], seed)

	var a, b, c, d, e, f, h, k uint32
	a, b, c, d = isaacGolden, isaacGolden, isaacGolden, isaacGolden
	e, f, h, k = isaacGolden, isaacGolden, isaacGolden, isaacGolden
	mix := func() {
		a ^= b << 11
		d += a
		b += c
		b ^= c >> 2
		e += b
		c += d
		c ^= d << 8
		f += c
		d += e
		d ^= e >> 16
		h += d
		e += f
		e ^= f << 10
		k += e
		f += h
		f ^= h >> 4
		a += f
		h += k
		h ^= k << 8
		b += h
		k += a
		k ^= a >> 9
		c += k
		a += b
	}
	for i := 0; i < 4; i++ {
		mix()
	}

	for i := 0; i < isaacWords; i += 8 {
		a += g.rsl[i]
		b += g.rsl[i+1]
		c += g.rsl[i+2]
		d += g.rsl[i+3]
		e += g.rsl[i+4]
		f += g.rsl[i+5]
		h += g.rsl[i+6]
		k += g.rsl[i+7]
		mix()
		g.mem[i] = a
		g.mem[i+1] = b
		g.mem[i+2] = c
		g.mem[i+3] = d
		g.mem[i+4] = e
		g.mem[i+5] = f
		g.mem[i+6] = h
		g.mem[i+7] = k
	}
	// Second pass over the state itself, so every seed word influences
	// every state word.
	for i := 0; i < isaacWords; i += 8 {
		a += g.mem[i]
		b += g.mem[i+1]
		c += g.mem[i+2]
		d += g.mem[i+3]
		e += g.mem[i+4]
		f += g.mem[i+5]
		h += g.mem[i+6]
		k += g.mem[i+7]
		mix()
		g.mem[i] = a
		g.mem[i+1] = b
		g.mem[i+2] = c
		g.mem[i+3] = d
		g.mem[i+4] = e
		g.mem[i+5] = f
		g.mem[i+6] = h
		g.mem[i+7] = k
	}

	g.generate()
}

// generate runs one full mixing pass, producing 256 fresh cache entries
// and resetting the cursor.
func (g *Isaac) generate() {
	g.c++
	a := g.a
	b := g.b + g.c

	const mid = isaacWords / 2
	step := func(i, off int, mixed uint32) {
		x := g.mem[i]
		a = mixed + g.mem[off]
		y := g.mem[(x>>2)&(isaacWords-1)] + a + b
		g.mem[i] = y
		b = g.mem[(y>>10)&(isaacWords-1)] + x
		g.rsl[i] = b
	}
	for i := 0; i < mid; i += 4 {
		step(i, i+mid, a^(a<<13))
		step(i+1, i+mid+1, a^(a>>6))
		step(i+2, i+mid+2, a^(a<<2))
		step(i+3, i+mid+3, a^(a>>16))
	}
	for i := mid; i < isaacWords; i += 4 {
		step(i, i-mid, a^(a<<13))
		step(i+1, i-mid+1, a^(a>>6))
		step(i+2, i-mid+2, a^(a<<2))
		step(i+3, i-mid+3, a^(a>>16))
	}

	g.a = a
	g.b = b
	g.pos = 0
}

// Uint32 returns the cache entry at the cursor, refilling the cache
// exactly when it is exhausted.
func (g *Isaac) Uint32() uint32 {
	if g.pos >= isaacWords {
		g.generate()
	}
	v := g.rsl[g.pos]
	g.pos++
	return v
}

// Uint64 combines two 32-bit draws, high half first.
func (g *Isaac) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
