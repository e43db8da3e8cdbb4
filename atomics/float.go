package atomics

import (
	"strconv"

	"atomics/bitcast"
	"atomics/platform"
)

// Float64 is a float64 stored as its IEEE-754 bit pattern, so
// CompareAndSwap compares bits: NaN matches itself when the payloads are
// identical and -0 does not match +0.
type Float64 struct {
	bits  uint64
	order MemoryOrder
	acc   access[uint64]
}

// NewFloat64 returns a sequentially consistent Float64 holding 0.
func NewFloat64() *Float64 { return Must(NewFloat64Of(0, SeqCst)) }

// NewFloat64WithOrder returns a Float64 holding 0 that uses order.
func NewFloat64WithOrder(order MemoryOrder) (*Float64, error) { return NewFloat64Of(0, order) }

// NewFloat64Of returns a Float64 holding v that uses order.
func NewFloat64Of(v float64, order MemoryOrder) (*Float64, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return &Float64{bits: bitcast.AsBits64(v), order: order, acc: plan[uint64](order)}, nil
}

func (f *Float64) Load() float64 { return bitcast.FromBits64(f.acc.load(&f.bits)) }

func (f *Float64) Store(v float64) { f.acc.store(&f.bits, bitcast.AsBits64(v)) }

// Swap stores v and returns the previous value.
func (f *Float64) Swap(v float64) float64 {
	return bitcast.FromBits64(platform.Swap(&f.bits, bitcast.AsBits64(v)))
}

// CompareAndSwap stores new if the current bits equal the bits of old.
func (f *Float64) CompareAndSwap(old, new float64) bool {
	return platform.CompareAndSwap(&f.bits, bitcast.AsBits64(old), bitcast.AsBits64(new))
}

// CompareExchange stores value if the current bits equal comparand's and
// returns the value observed before the attempt.
func (f *Float64) CompareExchange(value, comparand float64) float64 {
	want, next := bitcast.AsBits64(comparand), bitcast.AsBits64(value)
	for {
		cur := platform.ReadSeqCst(&f.bits)
		if cur != want || platform.CompareAndSwap(&f.bits, cur, next) {
			return bitcast.FromBits64(cur)
		}
	}
}

// Add adds delta and returns the new value.  Unlike an integer add this
// retries until it wins the compare-and-swap.
func (f *Float64) Add(delta float64) float64 {
	for {
		old := platform.ReadAcquire(&f.bits)
		next := bitcast.FromBits64(old) + delta
		if platform.CompareAndSwap(&f.bits, old, bitcast.AsBits64(next)) {
			return next
		}
		platform.Relax()
	}
}

func (f *Float64) Increment() float64 { return f.Add(1) }
func (f *Float64) Decrement() float64 { return f.Add(-1) }

func (f *Float64) Order() MemoryOrder { return f.order }

func (f *Float64) String() string { return strconv.FormatFloat(f.Load(), 'g', -1, 64) }

// Float32 is the 32-bit counterpart of Float64.
type Float32 struct {
	bits  uint32
	order MemoryOrder
	acc   access[uint32]
}

// NewFloat32 returns a sequentially consistent Float32 holding 0.
func NewFloat32() *Float32 { return Must(NewFloat32Of(0, SeqCst)) }

// NewFloat32WithOrder returns a Float32 holding 0 that uses order.
func NewFloat32WithOrder(order MemoryOrder) (*Float32, error) { return NewFloat32Of(0, order) }

// NewFloat32Of returns a Float32 holding v that uses order.
func NewFloat32Of(v float32, order MemoryOrder) (*Float32, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return &Float32{bits: bitcast.AsBits32(v), order: order, acc: plan[uint32](order)}, nil
}

func (f *Float32) Load() float32 { return bitcast.FromBits32(f.acc.load(&f.bits)) }

func (f *Float32) Store(v float32) { f.acc.store(&f.bits, bitcast.AsBits32(v)) }

func (f *Float32) Swap(v float32) float32 {
	return bitcast.FromBits32(platform.Swap(&f.bits, bitcast.AsBits32(v)))
}

func (f *Float32) CompareAndSwap(old, new float32) bool {
	return platform.CompareAndSwap(&f.bits, bitcast.AsBits32(old), bitcast.AsBits32(new))
}

func (f *Float32) CompareExchange(value, comparand float32) float32 {
	want, next := bitcast.AsBits32(comparand), bitcast.AsBits32(value)
	for {
		cur := platform.ReadSeqCst(&f.bits)
		if cur != want || platform.CompareAndSwap(&f.bits, cur, next) {
			return bitcast.FromBits32(cur)
		}
	}
}

func (f *Float32) Add(delta float32) float32 {
	for {
		old := platform.ReadAcquire(&f.bits)
		next := bitcast.FromBits32(old) + delta
		if platform.CompareAndSwap(&f.bits, old, bitcast.AsBits32(next)) {
			return next
		}
		platform.Relax()
	}
}

func (f *Float32) Increment() float32 { return f.Add(1) }
func (f *Float32) Decrement() float32 { return f.Add(-1) }

func (f *Float32) Order() MemoryOrder { return f.order }

func (f *Float32) String() string { return strconv.FormatFloat(float64(f.Load()), 'g', -1, 32) }
