package atomics

import (
	"errors"
	"testing"
)

var validOrders = []MemoryOrder{Relaxed, Acquire, Release, AcqRel, SeqCst}

// constructors lists every constructor that takes an order, with and
// without an explicit initial value.
var constructors = []struct {
	name string
	make func(MemoryOrder) error
}{
	{"Bool", func(o MemoryOrder) error { _, err := NewBoolWithOrder(o); return err }},
	{"BoolOf", func(o MemoryOrder) error { _, err := NewBoolOf(true, o); return err }},
	{"Int32", func(o MemoryOrder) error { _, err := NewInt32WithOrder(o); return err }},
	{"Int32Of", func(o MemoryOrder) error { _, err := NewInt32Of(7, o); return err }},
	{"Int64", func(o MemoryOrder) error { _, err := NewInt64WithOrder(o); return err }},
	{"Int64Of", func(o MemoryOrder) error { _, err := NewInt64Of(7, o); return err }},
	{"Uint64", func(o MemoryOrder) error { _, err := NewUint64WithOrder(o); return err }},
	{"Uint64Of", func(o MemoryOrder) error { _, err := NewUint64Of(7, o); return err }},
	{"Float32", func(o MemoryOrder) error { _, err := NewFloat32WithOrder(o); return err }},
	{"Float32Of", func(o MemoryOrder) error { _, err := NewFloat32Of(1.5, o); return err }},
	{"Float64", func(o MemoryOrder) error { _, err := NewFloat64WithOrder(o); return err }},
	{"Float64Of", func(o MemoryOrder) error { _, err := NewFloat64Of(1.5, o); return err }},
	{"Reference", func(o MemoryOrder) error { _, err := NewReferenceWithOrder[struct{}](o); return err }},
	{"ReferenceOf", func(o MemoryOrder) error { _, err := NewReferenceOf(new(struct{}), o); return err }},
	{"Enum", func(o MemoryOrder) error { _, err := NewEnumWithOrder[color](o); return err }},
	{"EnumOf", func(o MemoryOrder) error { _, err := NewEnumOf(blue, o); return err }},
}

type color int32

const (
	red color = iota
	green
	blue
)

// TestConsumeRejected checks that every constructor accepting an order
// refuses Consume with an invalid-argument error.
func TestConsumeRejected(t *testing.T) {
	for _, c := range constructors {
		err := c.make(Consume)
		if !errors.Is(err, ErrInvalidMemoryOrder) {
			t.Fatalf("%s(Consume): got %v, want ErrInvalidMemoryOrder", c.name, err)
		}
	}
}

func TestOutOfRangeRejected(t *testing.T) {
	for _, c := range constructors {
		if err := c.make(MemoryOrder(42)); !errors.Is(err, ErrInvalidMemoryOrder) {
			t.Fatalf("%s(42): got %v", c.name, err)
		}
	}
}

func TestValidOrdersAccepted(t *testing.T) {
	for _, c := range constructors {
		for _, o := range validOrders {
			if err := c.make(o); err != nil {
				t.Fatalf("%s(%v): unexpected error %v", c.name, o, err)
			}
		}
	}
}

// TestDefaultConstructors covers the constructors without an order; they
// use SeqCst.
func TestDefaultConstructors(t *testing.T) {
	orders := []MemoryOrder{
		NewBool().Order(),
		NewInt32().Order(),
		NewInt64().Order(),
		NewUint64().Order(),
		NewFloat32().Order(),
		NewFloat64().Order(),
		NewReference[int]().Order(),
		NewEnum[color]().Order(),
	}
	for i, o := range orders {
		if o != SeqCst {
			t.Fatalf("constructor %d: order %v, want SeqCst", i, o)
		}
	}
}

func TestParseMemoryOrder(t *testing.T) {
	tests := []struct {
		in   string
		want MemoryOrder
	}{
		{"relaxed", Relaxed},
		{"Acquire", Acquire},
		{"RELEASE", Release},
		{"acq_rel", AcqRel},
		{"AcqRel", AcqRel},
		{" seq_cst ", SeqCst},
		{"consume", Consume},
	}
	for _, tc := range tests {
		got, err := ParseMemoryOrder(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseMemoryOrder(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseMemoryOrder("sequential"); !errors.Is(err, ErrUnknownMemoryOrder) {
		t.Fatalf("got %v, want ErrUnknownMemoryOrder", err)
	}
}

func TestMemoryOrderString(t *testing.T) {
	for o, want := range map[MemoryOrder]string{
		Relaxed:         "Relaxed",
		Consume:         "Consume",
		AcqRel:          "AcqRel",
		SeqCst:          "SeqCst",
		MemoryOrder(99): "MemoryOrder(99)",
	} {
		if got := o.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Must should panic on error")
		}
	}()
	_ = Must(NewInt64WithOrder(Consume))
}
