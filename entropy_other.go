//go:build !linux

package rand

import (
	crypto_rand "crypto/rand"
	"fmt"
	"io"
)

// readEntropy fills p from the platform CSPRNG via crypto/rand. A short
// read is reported as an entropy failure, never silently accepted.
func readEntropy(p []byte) error {
	if _, err := io.ReadFull(crypto_rand.Reader, p); err != nil {
		return fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return nil
}
