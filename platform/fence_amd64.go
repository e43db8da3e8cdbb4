//go:build amd64 && !noasm

package platform

// Fence is a full barrier: no load or store issued by this thread moves
// across it in either direction.  Implemented in fence_amd64.s as MFENCE.
//
//go:noescape
//go:nosplit
func Fence()
