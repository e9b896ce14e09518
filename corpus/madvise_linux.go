//go:build linux

package corpus

import "golang.org/x/sys/unix"

// adviseSequential hints that the mapping is about to be scanned front to
// back (line indexing at open).
// Best-effort: errors are silently ignored.
func adviseSequential(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}

// adviseRandom hints that later reads jump around the mapping, which is the
// access pattern of a binary search. Disables kernel read-ahead.
func adviseRandom(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_RANDOM)
}
