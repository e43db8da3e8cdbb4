// control.go - Global hot/stop flags shared by stress workers and ring consumers
// ============================================================================
// RUN COORDINATION
// ============================================================================
//
// Control holds the process-wide signalling state for a stress run:
//   • hot:  set while producers are feeding work; consumers spin tight
//   • stop: set once on shutdown; every worker loop checks it
//
// hot is AcqRel; stop is SeqCst, so a worker that observes stop also
// observes everything the controller wrote before setting it. lastHot is
// AcqRel: producers stamp it concurrently, so both sides must be atomic.

package control

import (
	"time"

	"atomics/atomics"
	"atomics/constants"
)

// ============================================================================
// GLOBAL STATE MANAGEMENT
// ============================================================================

var (
	hot  = atomics.Must(atomics.NewBoolWithOrder(atomics.AcqRel))
	stop = atomics.Must(atomics.NewBoolWithOrder(atomics.SeqCst))

	// Nanosecond timestamp of the last SignalActivity.
	lastHot = atomics.Must(atomics.NewInt64WithOrder(atomics.AcqRel))

	cooldownNs = int64(constants.HotCooldown)
)

// ============================================================================
// ACTIVITY SIGNALLING
// ============================================================================

// SignalActivity marks the system hot and stamps the time. Producers call
// it whenever they hand a batch to a consumer.
func SignalActivity() {
	lastHot.Store(time.Now().UnixNano())
	hot.SetTrue()
}

// PollCooldown clears the hot flag once cooldownNs has passed without
// activity. Cheap enough to call from a spin loop.
func PollCooldown() {
	if hot.Load() && time.Now().UnixNano()-lastHot.Load() > cooldownNs {
		hot.CompareAndSwap(true, false)
	}
}

// ============================================================================
// SHUTDOWN
// ============================================================================

// Shutdown raises the stop flag. Idempotent.
func Shutdown() {
	stop.SetTrue()
}

// Stopping reports whether Shutdown has been called since the last Reset.
func Stopping() bool {
	return stop.Load()
}

// Reset clears both flags so a fresh run can start. Only call it while no
// workers are running.
func Reset() {
	stop.SetFalse()
	hot.SetFalse()
	lastHot.Store(0)
}

// ============================================================================
// FLAG ACCESS
// ============================================================================

// Flags returns the shared (stop, hot) flags for ring.PinnedConsumer.
// The pointers stay valid for the lifetime of the process.
func Flags() (*atomics.Bool, *atomics.Bool) {
	return stop, hot
}
