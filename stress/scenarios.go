package stress

import (
	"runtime"
	"sync"

	"atomics/atomics"
	"atomics/constants"
	"atomics/control"
	"atomics/platform"
	"atomics/ring"
)

// scenario is one trial body.  run returns the operations performed and
// the number of invariant violations observed.
type scenario struct {
	run     func(cfg Config) (ops, violations int64)
	accepts func(atomics.MemoryOrder) bool // nil: every valid order
	strict  func(atomics.MemoryOrder) bool // nil: violations always fail
	limit   int                            // max workers*iterations, 0: none
}

var scenarios = map[string]scenario{
	"counter":     {run: runCounter},
	"cas-float64": {run: runFloat64},
	"cas-float32": {run: runFloat32, limit: constants.Float32ExactLimit},
	"handoff":     {run: runHandoff, accepts: bothSides},
	"dekker":      {run: runDekker, accepts: bothSides, strict: seqCstOnly},
	"ring":        {run: runRing},
}

// bothSides accepts orders whose loads and stores are both atomic, so two
// goroutines can touch the same word without a data race.
func bothSides(o atomics.MemoryOrder) bool { return o == atomics.AcqRel || o == atomics.SeqCst }

func seqCstOnly(o atomics.MemoryOrder) bool { return o == atomics.SeqCst }

// fanOut runs body(w) on cfg.Workers goroutines and waits.
func fanOut(workers int, body func(w int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			body(w)
		}(w)
	}
	wg.Wait()
}

// spin waits for cond, relaxing between polls and yielding now and then so
// oversubscribed runs still make progress.
func spin(cond func() bool) {
	for i := 1; !cond(); i++ {
		if i%64 == 0 {
			runtime.Gosched()
			continue
		}
		platform.Relax()
	}
}

func absDiff(got, want int64) int64 {
	if got > want {
		return got - want
	}
	return want - got
}

// ───────────────────────────── Read-modify-write ─────────────────────────────

func runCounter(cfg Config) (int64, int64) {
	c := atomics.Must(atomics.NewInt64WithOrder(cfg.Order))
	fanOut(cfg.Workers, func(int) {
		for i := 0; i < cfg.Iterations; i++ {
			c.Increment()
		}
	})
	want := int64(cfg.Workers) * int64(cfg.Iterations)
	return want, absDiff(c.Load(), want)
}

func runFloat64(cfg Config) (int64, int64) {
	f := atomics.Must(atomics.NewFloat64WithOrder(cfg.Order))
	fanOut(cfg.Workers, func(int) {
		for i := 0; i < cfg.Iterations; i++ {
			f.Add(1)
		}
	})
	want := int64(cfg.Workers) * int64(cfg.Iterations)
	return want, absDiff(int64(f.Load()), want)
}

// runFloat32 stays below 2^24 so every partial sum is exact.
func runFloat32(cfg Config) (int64, int64) {
	f := atomics.Must(atomics.NewFloat32WithOrder(cfg.Order))
	fanOut(cfg.Workers, func(int) {
		for i := 0; i < cfg.Iterations; i++ {
			f.Increment()
		}
	})
	want := int64(cfg.Workers) * int64(cfg.Iterations)
	return want, absDiff(int64(f.Load()), want)
}

// ───────────────────────────── Two-party litmus ──────────────────────────────

// handoffPair is one producer/consumer channel.  payload is plain memory
// published by the seq store.
type handoffPair struct {
	seq     *atomics.Uint64
	ack     *atomics.Uint64
	payload uint64
}

// runHandoff publishes a plain payload before each flag store; the reader
// must always see the payload that matches the flag it observed.
func runHandoff(cfg Config) (int64, int64) {
	violations := atomics.NewInt64()

	fanOut(cfg.Workers, func(int) {
		p := &handoffPair{
			seq: atomics.Must(atomics.NewUint64WithOrder(cfg.Order)),
			ack: atomics.Must(atomics.NewUint64WithOrder(cfg.Order)),
		}
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := uint64(1); i <= uint64(cfg.Iterations); i++ {
				spin(func() bool { return p.seq.Load() == i })
				if p.payload != i*7 {
					violations.Increment()
				}
				p.ack.Store(i)
			}
		}()
		for i := uint64(1); i <= uint64(cfg.Iterations); i++ {
			p.payload = i * 7
			p.seq.Store(i)
			spin(func() bool { return p.ack.Load() == i })
		}
		wg.Wait()
	})
	return int64(cfg.Workers) * int64(cfg.Iterations), violations.Load()
}

// dekkerCell holds one store-buffer instance.  The round counters come
// first so they stay 8-byte aligned on 32-bit targets.
type dekkerCell struct {
	round  uint64
	doneA  uint64
	doneB  uint64
	r1, r2 int64
	x, y   *atomics.Int64
}

// runDekker is the store-buffering litmus: A writes x then reads y, B
// writes y then reads x.  Both reading 0 is forbidden under SeqCst.
func runDekker(cfg Config) (int64, int64) {
	violations := atomics.NewInt64()

	fanOut(cfg.Workers, func(int) {
		c := &dekkerCell{
			x: atomics.Must(atomics.NewInt64WithOrder(cfg.Order)),
			y: atomics.Must(atomics.NewInt64WithOrder(cfg.Order)),
		}

		side := func(mine, theirs *atomics.Int64, out *int64, done *uint64) {
			for r := uint64(1); r <= uint64(cfg.Iterations); r++ {
				platform.SpinUntil(&c.round, r)
				mine.Store(1)
				*out = theirs.Load()
				platform.WriteRelease(done, r)
			}
		}
		var wg sync.WaitGroup
		wg.Add(2)
		go func() { defer wg.Done(); side(c.x, c.y, &c.r1, &c.doneA) }()
		go func() { defer wg.Done(); side(c.y, c.x, &c.r2, &c.doneB) }()

		for r := uint64(1); r <= uint64(cfg.Iterations); r++ {
			c.x.Store(0)
			c.y.Store(0)
			platform.WriteSeqCst(&c.round, r)
			platform.SpinUntil(&c.doneA, r)
			platform.SpinUntil(&c.doneB, r)
			if c.r1 == 0 && c.r2 == 0 {
				violations.Increment()
			}
		}
		wg.Wait()
	})
	return int64(cfg.Workers) * int64(cfg.Iterations), violations.Load()
}

// ─────────────────────────────────── Ring ────────────────────────────────────

// runRing streams sequence numbers through one SPSC ring per worker, drained
// by a pinned consumer.  Out-of-order or missing items are violations.
func runRing(cfg Config) (int64, int64) {
	violations := atomics.NewInt64()
	_, hot := control.Flags()

	fanOut(cfg.Workers, func(w int) {
		r := ring.New[uint64](constants.RingCapacity)
		stop := atomics.Must(atomics.NewBoolWithOrder(atomics.SeqCst))
		received := atomics.Must(atomics.NewInt64WithOrder(atomics.AcqRel))
		done := make(chan struct{})

		next := uint64(0)
		ring.PinnedConsumer(w%runtime.NumCPU(), r, stop, hot, func(p *uint64) {
			if *p != next {
				violations.Increment()
			}
			next = *p + 1
			received.Increment()
		}, done)

		items := make([]uint64, cfg.Iterations)
		for i := range items {
			items[i] = uint64(i)
			spin(func() bool { return r.Push(&items[i]) })
			if i%constants.RingCapacity == 0 {
				control.SignalActivity()
			}
		}
		for received.Load() < int64(cfg.Iterations) {
			control.PollCooldown()
			runtime.Gosched()
		}
		stop.SetTrue()
		<-done
	})
	return int64(cfg.Workers) * int64(cfg.Iterations), violations.Load()
}
