//go:build arm64 && !noasm

package platform

// Fence is a full barrier over the inner shareable domain (DMB ISH).
// Implemented in fence_arm64.s.
//
//go:noescape
//go:nosplit
func Fence()
