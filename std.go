package rand

import (
	"fmt"
	"math/bits"

	"golang.org/x/crypto/blake2b"
)

// Variant selects the word width of the strong default generator.
type Variant int

const (
	// VariantNative picks the 64-bit ISAAC variant on 64-bit targets
	// and the 32-bit variant otherwise. The choice affects the output
	// sequence, never correctness; callers needing a stable sequence
	// across platforms should pin Variant32 or Variant64.
	VariantNative Variant = iota

	// Variant32 always uses 32-bit ISAAC.
	Variant32

	// Variant64 always uses 64-bit ISAAC.
	Variant64
)

// String returns the string representation of the variant.
func (v Variant) String() string {
	switch v {
	case VariantNative:
		return "VariantNative"
	case Variant32:
		return "Variant32"
	case Variant64:
		return "Variant64"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// resolve maps VariantNative to the concrete variant for this target.
func (v Variant) resolve() Variant {
	if v != VariantNative {
		return v
	}
	if bits.UintSize == 64 {
		return Variant64
	}
	return Variant32
}

// Config specifies the construction of reseeding strong generators, in
// particular the context-local one.
type Config struct {
	// Variant selects the strong generator's word width.
	// VariantNative follows the target's native word size.
	Variant Variant

	// ReseedThreshold is the byte budget between automatic reseeds.
	// Zero means DefaultReseedThreshold.
	ReseedThreshold int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Variant {
	case VariantNative, Variant32, Variant64:
	default:
		return fmt.Errorf("rand: invalid variant: %v", c.Variant)
	}
	if c.ReseedThreshold < 0 {
		return fmt.Errorf("rand: reseed threshold must not be negative: %d", c.ReseedThreshold)
	}
	return nil
}

func (c *Config) threshold() int {
	if c.ReseedThreshold == 0 {
		return DefaultReseedThreshold
	}
	return c.ReseedThreshold
}

// Std is the strong default generator: ISAAC at the target's native word
// width (or an explicitly pinned width). Both widths are exposed through
// this one type so callers never commit to a variant by accident. Not
// safe for concurrent use.
type Std struct {
	variant Variant
	i32     *Isaac
	i64     *Isaac64
}

// NewStd returns an OS-seeded Std at the native word width. Construction
// is expensive: it reads a full seed block from the operating system and
// runs the seeding passes. Entropy failure is returned, not fatal; only
// the context-local generator escalates it.
func NewStd() (*Std, error) {
	return NewStdVariant(VariantNative)
}

// NewStdVariant returns an OS-seeded Std at an explicit word width.
func NewStdVariant(v Variant) (*Std, error) {
	switch v.resolve() {
	case Variant64:
		g, err := NewIsaac64()
		if err != nil {
			return nil, err
		}
		return &Std{variant: v, i64: g}, nil
	default:
		g, err := NewIsaac()
		if err != nil {
			return nil, err
		}
		return &Std{variant: v, i32: g}, nil
	}
}

// NewStdFromSeed returns a deterministic Std built from native seed
// words. The same seed produces the same sequence on the same variant;
// sequences differ between variants.
func NewStdFromSeed(seed []uint64) *Std {
	return NewStdVariantFromSeed(VariantNative, seed)
}

// NewStdFromKey returns a deterministic Std seeded from an arbitrary
// byte key. The key is expanded into a full seed block through a BLAKE2b
// XOF, so keys of any length exercise the whole state.
func NewStdFromKey(key []byte) *Std {
	return NewStdVariantFromSeed(VariantNative, ExpandSeed(key))
}

// NewStdVariantFromSeed returns a deterministic Std at an explicit word
// width. Pin the variant when the sequence must be stable across
// platforms with different native word sizes.
func NewStdVariantFromSeed(v Variant, seed []uint64) *Std {
	switch v.resolve() {
	case Variant64:
		return &Std{variant: v, i64: NewIsaac64FromSeed(seed)}
	default:
		return &Std{variant: v, i32: NewIsaacFromSeed(seedWords32(seed))}
	}
}

// Reseed discards the generator's state and rebuilds it from seed.
func (s *Std) Reseed(seed []uint64) {
	if s.i64 != nil {
		s.i64.Reseed(seed)
		return
	}
	s.i32.Reseed(seedWords32(seed))
}

// Uint32 returns the next pseudorandom 32-bit word.
func (s *Std) Uint32() uint32 {
	if s.i64 != nil {
		return s.i64.Uint32()
	}
	return s.i32.Uint32()
}

// Uint64 returns the next pseudorandom 64-bit value.
func (s *Std) Uint64() uint64 {
	if s.i64 != nil {
		return s.i64.Uint64()
	}
	return s.i32.Uint64()
}

// ExpandSeed hashes an arbitrary byte key through a BLAKE2b XOF into a
// full block of native seed words for the strong generator.
func ExpandSeed(key []byte) []uint64 {
	xof, err := blake2b.NewXOF(8*isaacWords, nil)
	if err != nil {
		panic("rand: blake2b xof: " + err.Error())
	}
	xof.Write(key)
	var buf [8 * isaacWords]byte
	if _, err := xof.Read(buf[:]); err != nil {
		panic("rand: blake2b xof read: " + err.Error())
	}
	seed := make([]uint64, isaacWords)
	for i := range seed {
		seed[i] = leUint64(buf[8*i:])
	}
	return seed
}

// seedWords32 folds 64-bit seed words into 32-bit lanes, low half first,
// so one seed value feeds both variants deterministically.
func seedWords32(seed []uint64) []uint32 {
	out := make([]uint32, 0, 2*len(seed))
	for _, w := range seed {
		out = append(out, uint32(w), uint32(w>>32))
	}
	return out
}
