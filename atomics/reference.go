package atomics

import (
	"fmt"

	"atomics/platform"
)

// Reference is a *E slot with ordered loads and stores.
type Reference[E any] struct {
	p     *E
	order MemoryOrder
	acc   pointerAccess[E]
}

// NewReference returns a sequentially consistent Reference holding nil.
func NewReference[E any]() *Reference[E] { return Must(NewReferenceOf[E](nil, SeqCst)) }

// NewReferenceWithOrder returns a Reference holding nil that uses order.
func NewReferenceWithOrder[E any](order MemoryOrder) (*Reference[E], error) {
	return NewReferenceOf[E](nil, order)
}

// NewReferenceOf returns a Reference holding p that uses order.
func NewReferenceOf[E any](p *E, order MemoryOrder) (*Reference[E], error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return &Reference[E]{p: p, order: order, acc: planPointer[E](order)}, nil
}

func (r *Reference[E]) Load() *E   { return r.acc.load(&r.p) }
func (r *Reference[E]) Store(p *E) { r.acc.store(&r.p, p) }

// Swap stores p and returns the previous pointer.
func (r *Reference[E]) Swap(p *E) *E { return platform.SwapPointer(&r.p, p) }

// CompareAndSwap stores new if the slot still holds old (pointer identity).
func (r *Reference[E]) CompareAndSwap(old, new *E) bool {
	return platform.CompareAndSwapPointer(&r.p, old, new)
}

// CompareExchange stores value if the slot holds comparand and returns
// the pointer observed before the attempt.
func (r *Reference[E]) CompareExchange(value, comparand *E) *E {
	for {
		cur := platform.ReadPointerSeqCst(&r.p)
		if cur != comparand || platform.CompareAndSwapPointer(&r.p, cur, value) {
			return cur
		}
	}
}

func (r *Reference[E]) Order() MemoryOrder { return r.order }

func (r *Reference[E]) String() string {
	if p := r.Load(); p != nil {
		return fmt.Sprint(*p)
	}
	return "<nil>"
}
