//go:build linux

package rand

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// readEntropy fills p from getrandom(2), retrying interrupted and
// partial reads. The urandom pool is used; it may block only before the
// kernel pool is initialized, shortly after boot.
func readEntropy(p []byte) error {
	for len(p) > 0 {
		n, err := unix.Getrandom(p, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: getrandom: %v", ErrEntropy, err)
		}
		p = p[n:]
	}
	return nil
}
