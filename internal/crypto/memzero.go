package crypto

import "runtime"

// Wipe zeroes every buffer passed to it. Callers use it on derived keys and
// decrypted JSON once they are no longer needed.
//
//go:noinline
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
	runtime.KeepAlive(bufs)
}
