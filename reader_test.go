package rand

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderSourceWords(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{
		0x01, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}))
	require.Equal(t, uint32(1), src.Uint32())
	require.Equal(t, uint64(2), src.Uint64())
}

func TestReaderSourceFillBytes(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	src := NewReaderSource(bytes.NewReader(data))

	buf := make([]byte, 8)
	require.NoError(t, src.FillBytes(buf))
	require.Equal(t, data, buf)
}

func TestReaderSourceShortFill(t *testing.T) {
	src := NewReaderSource(bytes.NewReader([]byte{1, 2, 3}))

	// Three bytes cannot fill eight; the error must surface instead of
	// a partial fill.
	buf := make([]byte, 8)
	require.ErrorIs(t, src.FillBytes(buf), ErrShortFill)

	// An exhausted stream fails word draws too.
	src = NewReaderSource(bytes.NewReader(nil))
	require.Panics(t, func() { src.Uint32() })
}

func TestReaderSourceSatisfiesCapability(t *testing.T) {
	// A byte stream plugs into the same derived operations as the
	// algorithmic generators.
	stream := make([]byte, 4096)
	for i := range stream {
		stream[i] = byte(i * 37)
	}
	r := New(NewReaderSource(bytes.NewReader(stream)))

	require.Len(t, r.AsciiString(10), 10)
	v, err := r.IntRange(0, 5)
	require.NoError(t, err)
	require.GreaterOrEqual(t, v, 0)
	require.Less(t, v, 5)

	buf := make([]byte, 16)
	require.NoError(t, r.FillBytes(buf))
}

func TestReaderSourceDeterministic(t *testing.T) {
	stream := make([]byte, 1024)
	for i := range stream {
		stream[i] = byte(i)
	}
	a := New(NewReaderSource(bytes.NewReader(stream)))
	b := New(NewReaderSource(bytes.NewReader(stream)))
	require.Equal(t, a.AsciiString(50), b.AsciiString(50))
}
