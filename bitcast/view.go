package bitcast

import "math"

// View32 holds a 32-bit pattern that can be read back as any 32-bit type.
// It lives on the stack for the length of a compare-and-swap.
type View32 uint32

// Of32 captures the bits of v.
func Of32[T Bits32](v T) View32 { return View32(Cast32[uint32](v)) }

func (w View32) Float() float32 { return math.Float32frombits(uint32(w)) }
func (w View32) Int() int32     { return int32(w) }
func (w View32) Uint() uint32   { return uint32(w) }

// View64 is the 64-bit counterpart of View32.
type View64 uint64

// Of64 captures the bits of v.
func Of64[T Bits64](v T) View64 { return View64(Cast64[uint64](v)) }

func (w View64) Float() float64 { return math.Float64frombits(uint64(w)) }
func (w View64) Int() int64     { return int64(w) }
func (w View64) Uint() uint64   { return uint64(w) }
