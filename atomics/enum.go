package atomics

import "fmt"

// Enum holds a value of an int32-backed enumeration.  Arithmetic is not
// exposed; only loads, stores and exchanges.
type Enum[E ~int32] struct {
	n number[E]
}

// NewEnum returns a sequentially consistent Enum holding the zero value.
func NewEnum[E ~int32]() *Enum[E] { return Must(NewEnumOf[E](0, SeqCst)) }

// NewEnumWithOrder returns an Enum holding the zero value that uses order.
func NewEnumWithOrder[E ~int32](order MemoryOrder) (*Enum[E], error) {
	return NewEnumOf[E](0, order)
}

// NewEnumOf returns an Enum holding v that uses order.
func NewEnumOf[E ~int32](v E, order MemoryOrder) (*Enum[E], error) {
	e := new(Enum[E])
	if err := e.n.init(v, order); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Enum[E]) Load() E                              { return e.n.Load() }
func (e *Enum[E]) Store(v E)                            { e.n.Store(v) }
func (e *Enum[E]) Swap(v E) E                           { return e.n.Swap(v) }
func (e *Enum[E]) CompareAndSwap(old, new E) bool       { return e.n.CompareAndSwap(old, new) }
func (e *Enum[E]) CompareExchange(value, comparand E) E { return e.n.CompareExchange(value, comparand) }
func (e *Enum[E]) Order() MemoryOrder                   { return e.n.order }

func (e *Enum[E]) String() string { return fmt.Sprint(e.Load()) }
