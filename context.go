package rand

import (
	"context"
	"fmt"
	"sync"
)

// The context-local generator is a per-execution-context resource keyed
// through context.Context: NewContext attaches an empty holder, the
// first access builds a reseeding strong generator, and the release
// function returned by NewContext tears it down exactly once when the
// context's work ends. The handle handed out by FromContext must stay
// inside the context that produced it; it is not safe to share it across
// goroutines or to use it after release.

type ctxKey struct{}

// holder is the registry slot for one logical execution context. The
// mutex guards lifecycle only (lazy construction and release), not
// draws; draws keep the package's single-owner discipline.
type holder struct {
	mu       sync.Mutex
	cfg      Config
	r        *Rand
	released bool
	release  sync.Once
}

func (h *holder) rand() *Rand {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		panic("rand: context generator used after release")
	}
	if h.r == nil {
		std, err := NewStdVariant(h.cfg.Variant)
		if err != nil {
			// No caller is positioned to recover from entropy
			// failure inside lazy construction.
			panic(fmt.Sprintf("rand: could not initialize context generator: %s", err))
		}
		h.r = New(NewReseeding(std, h.cfg.threshold(), StdReseeder{}))
	}
	return h.r
}

// NewContext attaches a lazily-constructed generator slot to ctx and
// returns the release function that ends its lifetime. The generator
// itself is built on first use, not here, so attaching is cheap.
//
// The release function is idempotent: calling it more than once tears
// the generator down exactly once. Any use of the generator after
// release panics.
func NewContext(ctx context.Context) (context.Context, func()) {
	return NewContextConfig(ctx, Config{})
}

// NewContextConfig is NewContext with an explicit generator
// configuration. It panics if cfg is invalid; the configuration is
// program structure, not runtime input.
func NewContextConfig(ctx context.Context, cfg Config) (context.Context, func()) {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	h := &holder{cfg: cfg}
	release := func() {
		h.release.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.released = true
			h.r = nil
		})
	}
	return context.WithValue(ctx, ctxKey{}, h), release
}

// FromContext returns the context-local generator handle, building the
// underlying generator on first access. It panics if ctx carries no
// generator slot (NewContext was never called) or if entropy is
// unavailable during lazy construction.
//
// The handle is bound to ctx's logical execution context: do not store
// it, copy it, or hand it to another goroutine.
func FromContext(ctx context.Context) *ContextRand {
	h, ok := ctx.Value(ctxKey{}).(*holder)
	if !ok {
		panic("rand: context carries no generator; call rand.NewContext first")
	}
	return &ContextRand{h: h}
}

// ContextRand is the non-transferable handle to a context-local
// generator. The zero value is invalid; obtain one from FromContext.
type ContextRand struct {
	_ noCopy
	h *holder
}

// Uint32 returns the next pseudorandom 32-bit word.
func (c *ContextRand) Uint32() uint32 { return c.h.rand().Uint32() }

// Uint64 returns the next pseudorandom 64-bit value.
func (c *ContextRand) Uint64() uint64 { return c.h.rand().Uint64() }

// Float64 returns a pseudorandom number in [0.0, 1.0).
func (c *ContextRand) Float64() float64 { return c.h.rand().Float64() }

// FillBytes overwrites every byte of p with pseudorandom data.
func (c *ContextRand) FillBytes(p []byte) error { return c.h.rand().FillBytes(p) }

// IntRange returns a uniform value in [low, high).
func (c *ContextRand) IntRange(low, high int) (int, error) {
	return c.h.rand().IntRange(low, high)
}

// WeightedBool returns true with probability 1/n (always true for n==0).
func (c *ContextRand) WeightedBool(n uint64) bool { return c.h.rand().WeightedBool(n) }

// AsciiString returns n uniform picks from the 62-symbol alphabet.
func (c *ContextRand) AsciiString(n int) string { return c.h.rand().AsciiString(n) }

// Make builds one value of type T from the context-local generator. Any
// type that can construct itself from a generator oracle plugs in here;
// the package never defines those constructors, only invokes them.
func Make[T any](ctx context.Context, construct func(*Rand) T) T {
	return construct(FromContext(ctx).h.rand())
}

// noCopy triggers go vet's copylocks check on types that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
