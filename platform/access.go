package platform

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// Read is a plain load with no ordering beyond the natural atomicity of an
// aligned word.  Values wider than the machine word (8-byte values on
// 32-bit targets) are loaded atomically so they never tear.
func Read[T Word](loc *T) T {
	if unsafe.Sizeof(*loc) > wordSize {
		return load(loc)
	}
	return *loc
}

// ReadAcquire is a load that no later load or store of this thread may
// move ahead of.  It shares the sequentially consistent path: on strong
// targets that is a single atomic load with no fence.
func ReadAcquire[T Word](loc *T) T {
	return ReadSeqCst(loc)
}

// ReadSeqCst is a load that joins the single total order of sequentially
// consistent operations.  On weak targets the value is captured, a Fence
// is issued, and the captured value is returned.
func ReadSeqCst[T Word](loc *T) T {
	v := load(loc)
	if !StrongOrdering {
		Fence()
	}
	return v
}

// Write is a plain store.
func Write[T Word](loc *T, v T) {
	if unsafe.Sizeof(v) > wordSize {
		store(loc, v)
		return
	}
	*loc = v
}

// WriteRelease is a store that no earlier load or store of this thread may
// move behind.  Weak targets fence before the store.
func WriteRelease[T Word](loc *T, v T) {
	if !StrongOrdering {
		Fence()
	}
	store(loc, v)
}

// WriteSeqCst fences, stores, and on weak targets fences again so the
// store's place in the global order does not depend on what follows.
func WriteSeqCst[T Word](loc *T, v T) {
	Fence()
	store(loc, v)
	if !StrongOrdering {
		Fence()
	}
}

// SpinUntil busy-waits with acquire loads until *loc == want, yielding the
// processor every spinYield misses.  NaN never compares equal, so waiting
// for a NaN never returns.
func SpinUntil[T Word](loc *T, want T) {
	for i := 1; ReadAcquire(loc) != want; i++ {
		if i%spinYield == 0 {
			runtime.Gosched()
			continue
		}
		Relax()
	}
}

const spinYield = 64

// load and store view the location through the integer of the same width.
// The Word constraint admits only 4- and 8-byte types.

func load[T Word](loc *T) T {
	switch unsafe.Sizeof(*loc) {
	case 4:
		v := atomic.LoadUint32((*uint32)(unsafe.Pointer(loc)))
		return *(*T)(unsafe.Pointer(&v))
	case 8:
		v := atomic.LoadUint64((*uint64)(unsafe.Pointer(loc)))
		return *(*T)(unsafe.Pointer(&v))
	}
	panic("platform: unsupported width")
}

func store[T Word](loc *T, v T) {
	switch unsafe.Sizeof(v) {
	case 4:
		atomic.StoreUint32((*uint32)(unsafe.Pointer(loc)), *(*uint32)(unsafe.Pointer(&v)))
		return
	case 8:
		atomic.StoreUint64((*uint64)(unsafe.Pointer(loc)), *(*uint64)(unsafe.Pointer(&v)))
		return
	}
	panic("platform: unsupported width")
}
