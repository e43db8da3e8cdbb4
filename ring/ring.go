// ring.go
//
// Lock-free single-producer/single-consumer ring buffer.  Producer and
// consumer fields sit on separate cache lines, and each slot carries a
// sequence number published with release/acquire ordering, so Push and Pop
// are wait-free without any read-modify-write instruction.
//
// The slot sequence is the only shared word: the producer's release store
// makes the payload visible to the consumer's acquire load, and the
// consumer's release store hands the slot back.

package ring

import (
	"unsafe"

	"atomics/platform"
)

// slot couples a payload pointer with its sequence stamp.  The trailing pad
// keeps seq 8-byte aligned on 32-bit targets.
type slot[T any] struct {
	seq uint64 // position in the sequence space
	ptr *T     // user payload
	_   [8 - unsafe.Sizeof(uintptr(0))]byte
}

// Ring is a fixed-capacity circular buffer dedicated to one producer and
// one consumer.
type Ring[T any] struct {
	_    platform.CacheLinePad // producer head isolated on its own cache-line
	head uint64
	_    platform.CacheLinePad // keep head & tail on different cache-lines
	tail uint64
	_    platform.CacheLinePad // keep hot fields from colliding with metadata
	mask uint64
	buf  []slot[T]
}

// New allocates a ring whose size must be a power-of-two; otherwise it
// panics so that the bit-masking arithmetic stays valid.
func New[T any](size int) *Ring[T] {
	if size <= 0 || size&(size-1) != 0 {
		panic("ring: size must be >0 and a power of two")
	}
	r := &Ring[T]{
		mask: uint64(size - 1),
		buf:  make([]slot[T], size),
	}
	for i := range r.buf {
		r.buf[i].seq = uint64(i)
	}
	return r
}

// Cap returns the slot count.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Push enqueues p, returning false if the buffer is full.  Only the
// producer goroutine may call it; p must not be nil.
func (r *Ring[T]) Push(p *T) bool {
	t := r.tail
	s := &r.buf[t&r.mask]
	if platform.ReadAcquire(&s.seq) != t {
		return false // consumer has not yet reclaimed the slot
	}
	s.ptr = p
	platform.WriteRelease(&s.seq, t+1)
	r.tail = t + 1
	return true
}

// Pop dequeues one pointer or nil if the buffer is empty.  Only the
// consumer goroutine may call it.
func (r *Ring[T]) Pop() *T {
	h := r.head
	s := &r.buf[h&r.mask]
	if platform.ReadAcquire(&s.seq) != h+1 {
		return nil // producer has not yet published to the slot
	}
	p := s.ptr
	s.ptr = nil
	platform.WriteRelease(&s.seq, h+uint64(len(r.buf)))
	r.head = h + 1
	return p
}

// PopWait busy-spins until an item becomes available.
func (r *Ring[T]) PopWait() *T {
	for {
		if p := r.Pop(); p != nil {
			return p
		}
		platform.Relax()
	}
}
