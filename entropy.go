package rand

// OS reads raw unpredictable bytes from the operating system's
// randomness facility. It has no internal state and no determinism, and
// it is the only source in this package suitable for secrets.
//
// Reads may block under platform-specific low-entropy conditions; there
// is no cancellation or timeout. Each read either fully populates the
// destination or fails with an error wrapping ErrEntropy; partial reads
// are never surfaced.
type OS struct{}

// FillBytes populates p entirely from the OS randomness facility.
func (OS) FillBytes(p []byte) error {
	return readEntropy(p)
}

// Uint32 reads four bytes from the OS. It panics if the read fails,
// since a Source has no error channel; callers that need to handle
// entropy failure must use FillBytes.
func (o OS) Uint32() uint32 {
	var b [4]byte
	if err := o.FillBytes(b[:]); err != nil {
		panic(err)
	}
	return leUint32(b[:])
}

// Uint64 reads eight bytes from the OS. It panics if the read fails.
func (o OS) Uint64() uint64 {
	var b [8]byte
	if err := o.FillBytes(b[:]); err != nil {
		panic(err)
	}
	return leUint64(b[:])
}
