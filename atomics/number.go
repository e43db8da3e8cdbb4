package atomics

import (
	"fmt"

	"atomics/platform"
)

// number is the shared body of the integer wrappers.  v must stay the
// first field: 64-bit atomics on 32-bit targets need the 8-byte alignment
// the allocator guarantees for the start of an object.
type number[T platform.Integer] struct {
	v     T
	order MemoryOrder
	acc   access[T]
}

func (n *number[T]) init(v T, order MemoryOrder) error {
	if err := order.Validate(); err != nil {
		return err
	}
	n.v, n.order, n.acc = v, order, plan[T](order)
	return nil
}

// Load returns the current value under the configured order.
func (n *number[T]) Load() T { return n.acc.load(&n.v) }

// Store sets the value under the configured order.
func (n *number[T]) Store(v T) { n.acc.store(&n.v, v) }

// Swap stores v and returns the previous value.
func (n *number[T]) Swap(v T) T { return platform.Swap(&n.v, v) }

// CompareAndSwap stores new if the value is old and reports whether it did.
func (n *number[T]) CompareAndSwap(old, new T) bool {
	return platform.CompareAndSwap(&n.v, old, new)
}

// CompareExchange stores value if the current value equals comparand and
// returns the value observed before the attempt.
func (n *number[T]) CompareExchange(value, comparand T) T {
	for {
		cur := platform.ReadSeqCst(&n.v)
		if cur != comparand {
			return cur
		}
		if platform.CompareAndSwap(&n.v, cur, value) {
			return cur
		}
	}
}

// Add adds delta and returns the new value.
func (n *number[T]) Add(delta T) T { return platform.Add(&n.v, delta) }

// Increment adds one and returns the new value.
func (n *number[T]) Increment() T { return platform.Add(&n.v, 1) }

// Decrement subtracts one and returns the new value.
func (n *number[T]) Decrement() T {
	var one T = 1
	return platform.Add(&n.v, -one)
}

// Order returns the order fixed at construction.
func (n *number[T]) Order() MemoryOrder { return n.order }

func (n *number[T]) String() string { return fmt.Sprint(n.Load()) }

// Int32 is an int32 with ordered loads and stores.
type Int32 struct{ number[int32] }

// NewInt32 returns a sequentially consistent Int32 holding 0.
func NewInt32() *Int32 { return Must(NewInt32Of(0, SeqCst)) }

// NewInt32WithOrder returns an Int32 holding 0 that uses order.
func NewInt32WithOrder(order MemoryOrder) (*Int32, error) { return NewInt32Of(0, order) }

// NewInt32Of returns an Int32 holding v that uses order.
func NewInt32Of(v int32, order MemoryOrder) (*Int32, error) {
	a := new(Int32)
	if err := a.init(v, order); err != nil {
		return nil, err
	}
	return a, nil
}

// Int64 is an int64 with ordered loads and stores.
type Int64 struct{ number[int64] }

// NewInt64 returns a sequentially consistent Int64 holding 0.
func NewInt64() *Int64 { return Must(NewInt64Of(0, SeqCst)) }

// NewInt64WithOrder returns an Int64 holding 0 that uses order.
func NewInt64WithOrder(order MemoryOrder) (*Int64, error) { return NewInt64Of(0, order) }

// NewInt64Of returns an Int64 holding v that uses order.
func NewInt64Of(v int64, order MemoryOrder) (*Int64, error) {
	a := new(Int64)
	if err := a.init(v, order); err != nil {
		return nil, err
	}
	return a, nil
}

// Uint64 is a uint64 with ordered loads and stores.  Decrement wraps.
type Uint64 struct{ number[uint64] }

// NewUint64 returns a sequentially consistent Uint64 holding 0.
func NewUint64() *Uint64 { return Must(NewUint64Of(0, SeqCst)) }

// NewUint64WithOrder returns a Uint64 holding 0 that uses order.
func NewUint64WithOrder(order MemoryOrder) (*Uint64, error) { return NewUint64Of(0, order) }

// NewUint64Of returns a Uint64 holding v that uses order.
func NewUint64Of(v uint64, order MemoryOrder) (*Uint64, error) {
	a := new(Uint64)
	if err := a.init(v, order); err != nil {
		return nil, err
	}
	return a, nil
}
