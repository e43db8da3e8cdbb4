//go:build !linux

package ring

// setAffinity is a no-op where the OS offers no per-thread CPU pinning.
func setAffinity(int) {}
