package atomics

import (
	"strconv"

	"atomics/platform"
)

// Bool is a boolean stored in a uint32 word (0 or 1).
type Bool struct {
	v     uint32
	order MemoryOrder
	acc   access[uint32]
}

// NewBool returns a sequentially consistent Bool holding false.
func NewBool() *Bool { return Must(NewBoolOf(false, SeqCst)) }

// NewBoolWithOrder returns a Bool holding false that uses order.
func NewBoolWithOrder(order MemoryOrder) (*Bool, error) { return NewBoolOf(false, order) }

// NewBoolOf returns a Bool holding v that uses order.
func NewBoolOf(v bool, order MemoryOrder) (*Bool, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return &Bool{v: b32(v), order: order, acc: plan[uint32](order)}, nil
}

func b32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func (b *Bool) Load() bool   { return b.acc.load(&b.v) != 0 }
func (b *Bool) Store(v bool) { b.acc.store(&b.v, b32(v)) }
func (b *Bool) SetTrue()     { b.Store(true) }
func (b *Bool) SetFalse()    { b.Store(false) }

// Swap stores v and returns the previous value.
func (b *Bool) Swap(v bool) bool { return platform.Swap(&b.v, b32(v)) != 0 }

// CompareAndSwap stores new if the value is old.
func (b *Bool) CompareAndSwap(old, new bool) bool {
	return platform.CompareAndSwap(&b.v, b32(old), b32(new))
}

// CompareExchange stores value if the current value equals comparand and
// returns the value observed before the attempt.
func (b *Bool) CompareExchange(value, comparand bool) bool {
	want := b32(comparand)
	for {
		cur := platform.ReadSeqCst(&b.v)
		if cur != want || platform.CompareAndSwap(&b.v, cur, b32(value)) {
			return cur != 0
		}
	}
}

// Toggle flips the value and returns the new one.
func (b *Bool) Toggle() bool {
	for {
		cur := platform.ReadAcquire(&b.v)
		if platform.CompareAndSwap(&b.v, cur, cur^1) {
			return cur == 0
		}
	}
}

func (b *Bool) Order() MemoryOrder { return b.order }

func (b *Bool) String() string { return strconv.FormatBool(b.Load()) }
