// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go - stress harness tunables
//
// Purpose:
//   - Defaults for the CLI flags and the sizes shared by stress, ring and
//     control.
//
// ⚠️ No runtime logic here: all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

import "time"

// ───────────────────────────── Scenario defaults ─────────────────────────────

const (
	// DefaultWorkers is the number of contending goroutines (or goroutine
	// pairs for the two-party scenarios).
	DefaultWorkers = 8

	// DefaultIterations is the per-worker operation count.
	DefaultIterations = 100_000

	// DefaultTrials repeats each scenario so the statistics have a spread.
	DefaultTrials = 5

	// Float32ExactLimit bounds float32 counters: past 2^24 adding 1.0 is no
	// longer exact and the final-sum check would report false violations.
	Float32ExactLimit = 1 << 24
)

// ─────────────────────────────── Ring sizing ─────────────────────────────────

const (
	// RingCapacity is the SPSC ring size used by the ring scenario.
	// Power of two, comfortably cache-resident.
	RingCapacity = 1024

	// SpinBudget is the number of empty polls before a cold consumer
	// starts relaxing between polls.
	SpinBudget = 256

	// HotTimeout keeps a consumer in tight spin after its last delivery.
	HotTimeout = 15 * time.Second
)

// ─────────────────────────────── Activity flags ──────────────────────────────

const (
	// HotCooldown clears the global hot flag after this much idle time.
	HotCooldown = 1 * time.Second
)

// ──────────────────────────────── Persistence ────────────────────────────────

const (
	// HistoryDB is the default sqlite file for run history.
	HistoryDB = "atomics_runs.db"

	// HistoryLimit is the default number of rows shown by `history`.
	HistoryLimit = 20
)
