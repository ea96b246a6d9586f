package rand

import (
	"fmt"
	"io"
)

// ReaderSource is a generator that drains an arbitrary byte stream
// instead of computing output algorithmically. It satisfies the same
// contract as the algorithmic sources, including the full-fill guarantee
// on FillBytes: an exhausted stream surfaces as an error, never as a
// silent short fill.
//
// The quality of the output is exactly the quality of the stream.
// Not safe for concurrent use.
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource returns a source draining r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// Uint32 reads the next four bytes, little-endian. It panics if the
// stream cannot supply them; callers that need to handle exhaustion must
// use FillBytes.
func (s *ReaderSource) Uint32() uint32 {
	var b [4]byte
	if err := s.FillBytes(b[:]); err != nil {
		panic(err)
	}
	return leUint32(b[:])
}

// Uint64 reads the next eight bytes, little-endian. It panics if the
// stream cannot supply them.
func (s *ReaderSource) Uint64() uint64 {
	var b [8]byte
	if err := s.FillBytes(b[:]); err != nil {
		panic(err)
	}
	return leUint64(b[:])
}

// FillBytes populates p entirely from the stream, or fails with an error
// wrapping ErrShortFill.
func (s *ReaderSource) FillBytes(p []byte) error {
	n, err := io.ReadFull(s.r, p)
	if err != nil {
		return fmt.Errorf("%w: read %d of %d bytes: %v", ErrShortFill, n, len(p), err)
	}
	return nil
}
