package platform

import (
	"sync/atomic"
	"unsafe"
)

// Read-modify-write operations exist only for integers, which is all the
// hardware offers.  Floating-point storage reaches them through the bit
// patterns produced by package bitcast.  All of them are sequentially
// consistent regardless of the strategy in use.

// CompareAndSwap installs new if *loc still equals old, bit for bit.
func CompareAndSwap[T Integer](loc *T, old, new T) bool {
	switch unsafe.Sizeof(*loc) {
	case 4:
		return atomic.CompareAndSwapUint32((*uint32)(unsafe.Pointer(loc)), uint32(old), uint32(new))
	case 8:
		return atomic.CompareAndSwapUint64((*uint64)(unsafe.Pointer(loc)), uint64(old), uint64(new))
	}
	panic("platform: unsupported width")
}

// Swap installs new and returns the previous value.
func Swap[T Integer](loc *T, new T) T {
	switch unsafe.Sizeof(*loc) {
	case 4:
		return T(atomic.SwapUint32((*uint32)(unsafe.Pointer(loc)), uint32(new)))
	case 8:
		return T(atomic.SwapUint64((*uint64)(unsafe.Pointer(loc)), uint64(new)))
	}
	panic("platform: unsupported width")
}

// Add adds delta with wrap-around and returns the new value.  Signed
// deltas work because the conversions keep two's-complement bits.
func Add[T Integer](loc *T, delta T) T {
	switch unsafe.Sizeof(*loc) {
	case 4:
		return T(atomic.AddUint32((*uint32)(unsafe.Pointer(loc)), uint32(delta)))
	case 8:
		return T(atomic.AddUint64((*uint64)(unsafe.Pointer(loc)), uint64(delta)))
	}
	panic("platform: unsupported width")
}
