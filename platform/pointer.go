package platform

import (
	"sync/atomic"
	"unsafe"
)

// Pointer slots get their own family: the ordered paths must go through
// unsafe.Pointer atomics so the collector's write barrier sees the store.

// ReadPointer is a plain load of a pointer slot.
func ReadPointer[E any](loc **E) *E {
	return *loc
}

// ReadPointerAcquire is the pointer form of ReadAcquire.
func ReadPointerAcquire[E any](loc **E) *E {
	return ReadPointerSeqCst(loc)
}

// ReadPointerSeqCst is the pointer form of ReadSeqCst.
func ReadPointerSeqCst[E any](loc **E) *E {
	p := (*E)(atomic.LoadPointer(slot(loc)))
	if !StrongOrdering {
		Fence()
	}
	return p
}

// WritePointer is a plain store of a pointer slot.
func WritePointer[E any](loc **E, v *E) {
	*loc = v
}

// WritePointerRelease is the pointer form of WriteRelease.
func WritePointerRelease[E any](loc **E, v *E) {
	if !StrongOrdering {
		Fence()
	}
	atomic.StorePointer(slot(loc), unsafe.Pointer(v))
}

// WritePointerSeqCst is the pointer form of WriteSeqCst.
func WritePointerSeqCst[E any](loc **E, v *E) {
	Fence()
	atomic.StorePointer(slot(loc), unsafe.Pointer(v))
	if !StrongOrdering {
		Fence()
	}
}

// CompareAndSwapPointer installs new if *loc is still old.
func CompareAndSwapPointer[E any](loc **E, old, new *E) bool {
	return atomic.CompareAndSwapPointer(slot(loc), unsafe.Pointer(old), unsafe.Pointer(new))
}

// SwapPointer installs new and returns the previous pointer.
func SwapPointer[E any](loc **E, new *E) *E {
	return (*E)(atomic.SwapPointer(slot(loc), unsafe.Pointer(new)))
}

func slot[E any](loc **E) *unsafe.Pointer {
	return (*unsafe.Pointer)(unsafe.Pointer(loc))
}
