// platform.go
//
// Ordering-aware access layer shared by the atomic wrapper types.
//
// Every ordering strength has its own primitive (Read, ReadAcquire,
// ReadSeqCst, Write, WriteRelease, WriteSeqCst) so callers pick one at
// construction time and the hot path never compares an ordering value.
// Whether a primitive needs an explicit Fence is a property of the target
// memory model, fixed by build tags in model_*.go; the compiler folds the
// StrongOrdering checks away.
//
// Storage is always borrowed: nothing here allocates, buffers or retains
// the location past the call.

package platform

import (
	"unsafe"

	"golang.org/x/exp/constraints"
	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line size assumed by wrappers that pad
// independent atomic fields apart.
const CacheLineSize = 64

// CacheLinePad separates hot fields.  It is at least CacheLineSize bytes
// and grows on targets whose coherence granule is wider.
type CacheLinePad = cpu.CacheLinePad

// wordSize is the native machine word in bytes.  Values wider than this
// tear under plain access, so Read/Write fall back to real atomics.
const wordSize = unsafe.Sizeof(uintptr(0))

// Integer is the set of integer widths with native atomic read-modify-write.
type Integer interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~int | ~uint | ~uintptr
}

// Word is every fixed-width value the accessor can load and store.
// Widths outside 4 and 8 bytes do not satisfy it, so they fail to compile.
type Word interface {
	Integer | constraints.Float
}

// Model names the memory model compiled into this binary: "strong" for
// total-store-order targets, "weak" otherwise.
func Model() string { return modelName }
