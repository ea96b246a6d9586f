package rand

// Range samplers produce uniform values in [low, high). Construction
// checks the endpoints and, for integers, precomputes the rejection
// boundary; the sampler is immutable afterwards and can be reused across
// draws, amortizing that work. Hot paths drawing from one range
// repeatedly should construct a sampler once instead of calling the
// one-shot Rand range methods.

// Int64Range samples uniformly from a half-open interval of int64.
type Int64Range struct {
	low  int64
	span uint64
	zone uint64
}

// NewInt64Range returns a sampler over [low, high). It fails with
// ErrInvalidRange unless low < high.
func NewInt64Range(low, high int64) (*Int64Range, error) {
	if low >= high {
		return nil, ErrInvalidRange
	}
	// Two's complement subtraction gives the unsigned span even when
	// the endpoints straddle zero.
	span := uint64(high) - uint64(low)
	return &Int64Range{low: low, span: span, zone: rejectionZone(span)}, nil
}

// Sample draws one value in [low, high).
func (ir *Int64Range) Sample(r *Rand) int64 {
	return ir.low + int64(sampleSpan(r.src, ir.span, ir.zone))
}

// Uint64Range samples uniformly from a half-open interval of uint64.
type Uint64Range struct {
	low  uint64
	span uint64
	zone uint64
}

// NewUint64Range returns a sampler over [low, high). It fails with
// ErrInvalidRange unless low < high.
func NewUint64Range(low, high uint64) (*Uint64Range, error) {
	if low >= high {
		return nil, ErrInvalidRange
	}
	span := high - low
	return &Uint64Range{low: low, span: span, zone: rejectionZone(span)}, nil
}

// Sample draws one value in [low, high).
func (ur *Uint64Range) Sample(r *Rand) uint64 {
	return ur.low + sampleSpan(r.src, ur.span, ur.zone)
}

// Float64Range samples uniformly from a half-open interval of float64 by
// affine-mapping a [0,1) draw at full mantissa resolution.
type Float64Range struct {
	low  float64
	span float64
}

// NewFloat64Range returns a sampler over [low, high). It fails with
// ErrInvalidRange unless low < high.
func NewFloat64Range(low, high float64) (*Float64Range, error) {
	if !(low < high) {
		return nil, ErrInvalidRange
	}
	return &Float64Range{low: low, span: high - low}, nil
}

// Sample draws one value in [low, high).
func (fr *Float64Range) Sample(r *Rand) float64 {
	return fr.low + r.Float64()*fr.span
}

// rejectionZone returns the largest draw accepted when reducing a 64-bit
// word into [0, span). Draws above the zone land in the tail that holds
// no whole number of spans; reducing them would bias low residues.
func rejectionZone(span uint64) uint64 {
	const max = ^uint64(0)
	return max - (max-span+1)%span
}

// sampleSpan draws 64-bit words until one falls inside the accept zone,
// then reduces it into [0, span). The tail is smaller than span, so the
// expected number of extra draws is geometrically bounded.
func sampleSpan(src Source, span, zone uint64) uint64 {
	for {
		v := sourceUint64(src)
		if v <= zone {
			return v % span
		}
	}
}
