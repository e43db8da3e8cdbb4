//go:build (!amd64 && !arm64) || noasm

// fence_generic.go
//
// Portable Fence for targets without an assembly barrier.  Go's atomic
// read-modify-write operations are sequentially consistent on every port,
// so a locked add on a private word orders everything around it.

package platform

import "sync/atomic"

var fenceWord struct {
	_ CacheLinePad
	v uint32
	_ CacheLinePad
}

// Fence is a full barrier.
//
//go:nosplit
func Fence() {
	atomic.AddUint32(&fenceWord.v, 0)
}
