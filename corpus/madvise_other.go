//go:build !linux

package corpus

// adviseSequential is a no-op on non-Linux platforms.
func adviseSequential(data []byte) {}

// adviseRandom is a no-op on non-Linux platforms.
func adviseRandom(data []byte) {}
