// Package atomics provides atomic value wrappers whose loads and stores
// follow a memory order chosen once, at construction.
//
// Each wrapper resolves its MemoryOrder into a pair of platform primitives
// when it is built, so Load and Store never branch on the order.
// Read-modify-write operations (Swap, CompareAndSwap, Add, ...) are always
// sequentially consistent.
//
// The zero value of a wrapper is not ready for use; call a constructor.
package atomics

//go:generate go tool stringer -type=MemoryOrder

import (
	"errors"
	"fmt"
	"strings"
)

// MemoryOrder selects the strength of a wrapper's loads and stores.
type MemoryOrder uint8

const (
	Relaxed MemoryOrder = iota
	// Deprecated: Consume has no portable mapping and is rejected by every
	// constructor.  It is kept so ported code keeps its constant set.
	Consume
	Acquire
	Release
	AcqRel
	SeqCst
)

var (
	// ErrInvalidMemoryOrder is returned for Consume and out-of-range orders.
	ErrInvalidMemoryOrder = errors.New("atomics: invalid memory order")

	// ErrUnknownMemoryOrder is returned by ParseMemoryOrder.
	ErrUnknownMemoryOrder = errors.New("atomics: unknown memory order")
)

// Validate reports whether o can configure a wrapper.
func (o MemoryOrder) Validate() error {
	switch o {
	case Relaxed, Acquire, Release, AcqRel, SeqCst:
		return nil
	case Consume:
		return fmt.Errorf("%w: %v is not supported", ErrInvalidMemoryOrder, o)
	}
	return fmt.Errorf("%w: %v", ErrInvalidMemoryOrder, o)
}

// ParseMemoryOrder accepts the constant names case-insensitively, plus
// "acq_rel" and "seq_cst".  Consume parses; Validate rejects it.
func ParseMemoryOrder(s string) (MemoryOrder, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "") {
	case "relaxed":
		return Relaxed, nil
	case "consume":
		return Consume, nil
	case "acquire":
		return Acquire, nil
	case "release":
		return Release, nil
	case "acqrel":
		return AcqRel, nil
	case "seqcst":
		return SeqCst, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMemoryOrder, s)
}

// Must unwraps a constructor result, panicking on error.  Intended for
// package-level variables built from constant orders.
func Must[W any](w W, err error) W {
	if err != nil {
		panic(err)
	}
	return w
}
