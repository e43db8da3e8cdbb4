package atomics

import "atomics/platform"

// access is the load/store pair a wrapper resolved from its order.
type access[T platform.Word] struct {
	load  func(*T) T
	store func(*T, T)
}

// plan maps an already validated order onto platform primitives.
//
//	Relaxed  Read         Write
//	Acquire  ReadAcquire  Write
//	Release  Read         WriteRelease
//	AcqRel   ReadAcquire  WriteRelease
//	SeqCst   ReadSeqCst   WriteSeqCst
func plan[T platform.Word](order MemoryOrder) access[T] {
	switch order {
	case Relaxed:
		return access[T]{platform.Read[T], platform.Write[T]}
	case Acquire:
		return access[T]{platform.ReadAcquire[T], platform.Write[T]}
	case Release:
		return access[T]{platform.Read[T], platform.WriteRelease[T]}
	case AcqRel:
		return access[T]{platform.ReadAcquire[T], platform.WriteRelease[T]}
	}
	return access[T]{platform.ReadSeqCst[T], platform.WriteSeqCst[T]}
}

type pointerAccess[E any] struct {
	load  func(**E) *E
	store func(**E, *E)
}

func planPointer[E any](order MemoryOrder) pointerAccess[E] {
	switch order {
	case Relaxed:
		return pointerAccess[E]{platform.ReadPointer[E], platform.WritePointer[E]}
	case Acquire:
		return pointerAccess[E]{platform.ReadPointerAcquire[E], platform.WritePointer[E]}
	case Release:
		return pointerAccess[E]{platform.ReadPointer[E], platform.WritePointerRelease[E]}
	case AcqRel:
		return pointerAccess[E]{platform.ReadPointerAcquire[E], platform.WritePointerRelease[E]}
	}
	return pointerAccess[E]{platform.ReadPointerSeqCst[E], platform.WritePointerSeqCst[E]}
}

// Padded keeps W on cache lines of its own so unrelated wrappers placed
// next to each other do not false-share.  On 32-bit targets a Padded
// holding a 64-bit wrapper must be allocated on its own, not as an array
// element, to keep the value 8-byte aligned.
type Padded[W any] struct {
	_     platform.CacheLinePad
	Value W
	_     platform.CacheLinePad
}
