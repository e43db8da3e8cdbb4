// pinned_consumer.go
//
// Low-latency SPSC consumer.
//
//   • Dedicated OS thread pinned to `core`, discarded when the loop exits.
//   • Stays in **hot-spin** (tight loop, no Relax) while
//       – new work has arrived within hotTimeout, OR
//       – the producer keeps the hot flag set.
//   • After the grace window *and* once hot is clear it drops to
//     the **cold-spin** path: platform.Relax every iteration and a
//     scheduler yield after spinBudget misses.
//   • Exits only when stop is set and closes `done` exactly once.
//
// hot flag contract:
//     Producer             Consumer
//     --------             ------------------------------
//     SetTrue  ────────▶  read (wake / stay hot-spin)
//     ...push items…
//     (optionally) SetFalse ◀─ consumer never writes

package ring

import (
	"runtime"
	"time"

	"atomics/atomics"
	"atomics/constants"
	"atomics/platform"
)

var (
	spinBudget = constants.SpinBudget // polls before cold back-off
	hotTimeout = constants.HotTimeout // hot-spin grace
)

// PinnedConsumer drains r on its own goroutine until stop is set, then
// closes done.  Items still queued when stop is observed are drained first.
func PinnedConsumer[T any](
	core int,
	r *Ring[T],
	stop, hot *atomics.Bool,
	fn func(*T),
	done chan<- struct{},
) {
	go func() {
		// ── thread & affinity ─────────────────────────────
		// The thread stays locked on exit so the runtime discards it
		// instead of reusing a thread pinned to one core.
		runtime.LockOSThread()
		setAffinity(core) // no-op off Linux
		defer close(done)

		last := time.Now() // last time Pop delivered
		miss := 0

		// ── main loop ─────────────────────────────────────
		for {
			if p := r.Pop(); p != nil {
				fn(p)
				last, miss = time.Now(), 0
				continue
			}

			if stop.Load() {
				return
			}

			if hot.Load() || time.Since(last) <= hotTimeout {
				continue
			}

			if miss++; miss >= spinBudget {
				miss = 0
				runtime.Gosched()
			}
			platform.Relax()
		}
	}()
}
