// Package bitcast reinterprets fixed-width values as other types of the
// same width without converting them.
//
// Compare-and-swap hardware only understands integers, so floating-point
// storage is compared through its IEEE-754 bit pattern.  A value
// conversion would canonicalise NaN payloads and fold -0.0 into +0.0,
// which breaks the exact-match rule a CAS depends on; everything here is
// a plain bit copy instead.
//
// Only 32- and 64-bit widths exist.  Cast32 and Cast64 take disjoint
// type sets, so mixing widths is a compile error.  Reinterpret is the
// generic escape hatch and panics on a mismatch rather than padding or
// truncating.
package bitcast

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"atomics/platform"
)

var (
	// ErrWidthMismatch is the panic value cause when source and target
	// widths differ.
	ErrWidthMismatch = errors.New("bitcast: width mismatch")

	// ErrUnsupportedType is the panic value cause for anything that is not
	// a 4- or 8-byte integer or float.
	ErrUnsupportedType = errors.New("bitcast: unsupported type")
)

// Bits32 is every 32-bit value with an integer codomain.
type Bits32 interface {
	~int32 | ~uint32 | ~float32
}

// Bits64 is every 64-bit value with an integer codomain.
type Bits64 interface {
	~int64 | ~uint64 | ~float64
}

// Cast32 returns the bits of v viewed as To.
func Cast32[To, From Bits32](v From) To {
	return *(*To)(unsafe.Pointer(&v))
}

// Cast64 returns the bits of v viewed as To.
func Cast64[To, From Bits64](v From) To {
	return *(*To)(unsafe.Pointer(&v))
}

// AsBits32 returns the IEEE-754 pattern of f.
func AsBits32(f float32) uint32 { return math.Float32bits(f) }

// FromBits32 is the inverse of AsBits32.
func FromBits32(b uint32) float32 { return math.Float32frombits(b) }

// AsBits64 returns the IEEE-754 pattern of f.
func AsBits64(f float64) uint64 { return math.Float64bits(f) }

// FromBits64 is the inverse of AsBits64.
func FromBits64(b uint64) float64 { return math.Float64frombits(b) }

// Reinterpret copies the bits of v into a To.  Both types must be numeric
// and share a width of 4 or 8 bytes; anything else panics with an error
// wrapping ErrWidthMismatch or ErrUnsupportedType.
func Reinterpret[To, From any](v From) To {
	var out To
	from, to := reflect.TypeOf(&v).Elem(), reflect.TypeOf(&out).Elem()
	if !numeric(from) {
		panic(fmt.Errorf("%w: %v", ErrUnsupportedType, from))
	}
	if !numeric(to) {
		panic(fmt.Errorf("%w: %v", ErrUnsupportedType, to))
	}
	if from.Size() != to.Size() {
		panic(fmt.Errorf("%w: %d-byte %v into %d-byte %v", ErrWidthMismatch, from.Size(), from, to.Size(), to))
	}
	return *(*To)(unsafe.Pointer(&v))
}

func numeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int32, reflect.Uint32, reflect.Float32,
		reflect.Int64, reflect.Uint64, reflect.Float64,
		reflect.Int, reflect.Uint, reflect.Uintptr:
		return t.Size() == 4 || t.Size() == 8
	}
	return false
}

// CompareAndSwap32 installs new at loc if its current bits equal the bits
// of old.  NaN matches itself when the payloads are identical.
func CompareAndSwap32[T Bits32](loc *T, old, new T) bool {
	return platform.CompareAndSwap((*uint32)(unsafe.Pointer(loc)), Cast32[uint32](old), Cast32[uint32](new))
}

// CompareAndSwap64 is the 64-bit form of CompareAndSwap32.
func CompareAndSwap64[T Bits64](loc *T, old, new T) bool {
	return platform.CompareAndSwap((*uint64)(unsafe.Pointer(loc)), Cast64[uint64](old), Cast64[uint64](new))
}
