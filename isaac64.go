package rand

const isaac64Golden = 0x9e3779b97f4a7c13

// Isaac64 is the 64-bit ISAAC variant: the same block structure as Isaac
// with 64-bit words and the wider mixing rotations. Not safe for
// concurrent use.
type Isaac64 struct {
	mem [isaacWords]uint64
	rsl [isaacWords]uint64
	a   uint64
	b   uint64
	c   uint64
	pos int
}

// NewIsaac64 returns an Isaac64 seeded with 2048 bytes from the
// operating system.
func NewIsaac64() (*Isaac64, error) {
	var buf [8 * isaacWords]byte
	if err := (OS{}).FillBytes(buf[:]); err != nil {
		return nil, err
	}
	seed := make([]uint64, isaacWords)
	for i := range seed {
		seed[i] = leUint64(buf[8*i:])
	}
	return NewIsaac64FromSeed(seed), nil
}

// NewIsaac64FromSeed returns an Isaac64 deterministically seeded from
// seed. Seeds longer than 256 words are truncated, shorter ones
// zero-padded.
func NewIsaac64FromSeed(seed []uint64) *Isaac64 {
	g := &Isaac64{}
	g.init(seed)
	return g
}

// Reseed discards the entire state and rebuilds it from seed.
func (g *Isaac64) Reseed(seed []uint64) {
	*g = Isaac64{}
	g.init(seed)
}

func (g *Isaac64) init(seed []uint64) {
	copy(g.rsl[:], seed)

	var a, b, c, d, e, f, h, k uint64
	a, b, c, d = isaac64Golden, isaac64Golden, isaac64Golden, isaac64Golden
	e, f, h, k = isaac64Golden, isaac64Golden, isaac64Golden, isaac64Golden
	mix := func() {
		a -= e
		f ^= k >> 9
		k += a
		b -= f
		h ^= a << 9
		a += b
		c -= h
		k ^= b >> 23
		b += c
		d -= k
		a ^= c << 15
		c += d
		e -= a
		b ^= d >> 14
		d += e
		f -= b
		c ^= e << 20
		e += f
		h -= c
		d ^= f >> 17
		f += h
		k -= d
		e ^= h << 14
		h += k
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

func (g *Isaac64) generate() {
	g.c++
	a := g.a
	b := g.b + g.c

	const mid = isaacWords / 2
	step := func(i, off int, mixed uint64) {
		x := g.mem[i]
		a = mixed + g.mem[off]
		y := g.mem[(x>>3)&(isaacWords-1)] + a + b
		g.mem[i] = y
		b = g.mem[(y>>11)&(isaacWords-1)] + x
		g.rsl[i] = b
	}
	for i := 0; i < mid; i += 4 {
		step(i, i+mid, ^(a ^ (a << 21)))
		step(i+1, i+mid+1, a^(a>>5))
		step(i+2, i+mid+2, a^(a<<12))
		step(i+3, i+mid+3, a^(a>>33))
	}
	for i := mid; i < isaacWords; i += 4 {
		step(i, i-mid, ^(a ^ (a << 21)))
		step(i+1, i-mid+1, a^(a>>5))
		step(i+2, i-mid+2, a^(a<<12))
		step(i+3, i-mid+3, a^(a>>33))
	}

	g.a = a
	g.b = b
	g.pos = 0
}

// Uint64 returns the cache entry at the cursor, refilling the cache
// exactly when it is exhausted.
func (g *Isaac64) Uint64() uint64 {
	if g.pos >= isaacWords {
		g.generate()
	}
	v := g.rsl[g.pos]
	g.pos++
	return v
}

// Uint32 truncates the next 64-bit draw.
func (g *Isaac64) Uint32() uint32 {
	return uint32(g.Uint64())
}

func leUint64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
