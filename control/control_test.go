// ════════════════════════════════════════════════════════════════════════════════════════════════
// 🧪 TEST SUITE: RUN COORDINATION FLAGS
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Covers hot/stop signalling, cooldown expiry, reset and concurrent access.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package control

import (
	"sync"
	"testing"
	"time"

	"atomics/atomics"
)

// withCooldown shrinks the cooldown for the duration of a test.
func withCooldown(t *testing.T, d time.Duration) {
	t.Helper()
	old := cooldownNs
	cooldownNs = int64(d)
	t.Cleanup(func() {
		cooldownNs = old
		Reset()
	})
}

func TestControl_InitialState(t *testing.T) {
	Reset()
	stopFlag, hotFlag := Flags()
	if stopFlag.Load() || hotFlag.Load() {
		t.Fatal("flags should start cleared")
	}
	if Stopping() {
		t.Fatal("Stopping should be false after Reset")
	}
}

func TestControl_SignalActivity(t *testing.T) {
	Reset()
	before := time.Now().UnixNano()
	SignalActivity()
	_, hotFlag := Flags()
	if !hotFlag.Load() {
		t.Fatal("hot flag not set")
	}
	if lastHot.Load() < before {
		t.Fatalf("lastHot %d earlier than %d", lastHot.Load(), before)
	}
}

func TestControl_PollCooldown(t *testing.T) {
	withCooldown(t, 5*time.Millisecond)
	SignalActivity()

	PollCooldown()
	_, hotFlag := Flags()
	if !hotFlag.Load() {
		t.Fatal("hot cleared before cooldown elapsed")
	}

	time.Sleep(20 * time.Millisecond)
	PollCooldown()
	if hotFlag.Load() {
		t.Fatal("hot not cleared after cooldown")
	}
}

func TestControl_ShutdownAndReset(t *testing.T) {
	Reset()
	Shutdown()
	Shutdown()
	if !Stopping() {
		t.Fatal("Shutdown not observed")
	}
	Reset()
	if Stopping() {
		t.Fatal("Reset did not clear stop")
	}
}

// TestControl_ShutdownPublishes checks that a worker leaving on stop sees
// data written before Shutdown.
func TestControl_ShutdownPublishes(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var result int
	done := make(chan int)
	go func() {
		for !Stopping() {
			time.Sleep(time.Microsecond)
		}
		done <- result
	}()

	result = 99
	Shutdown()
	if got := <-done; got != 99 {
		t.Fatalf("worker saw %d, want 99", got)
	}
}

// TestControl_ConcurrentSignal has several producers stamp activity at
// once while a poller reads the stamp; run with -race.
func TestControl_ConcurrentSignal(t *testing.T) {
	withCooldown(t, time.Hour)
	const producers, ops = 2, 1000

	var wg sync.WaitGroup
	wg.Add(producers + 1)
	for p := 0; p < producers; p++ {
		go func() {
			defer wg.Done()
			for i := 0; i < ops; i++ {
				SignalActivity()
			}
		}()
	}
	go func() {
		defer wg.Done()
		for i := 0; i < ops; i++ {
			PollCooldown()
		}
	}()
	wg.Wait()

	if lastHot.Order() == atomics.Relaxed {
		t.Fatal("lastHot is shared by producers and needs atomic loads and stores")
	}
	if lastHot.Load() == 0 {
		t.Fatal("activity stamp not recorded")
	}
}

func TestControl_ConcurrentAccess(t *testing.T) {
	withCooldown(t, time.Hour)
	const goroutines, ops = 16, 1000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < ops; i++ {
				if g%2 == 0 {
					SignalActivity()
				} else {
					PollCooldown()
					_ = Stopping()
				}
			}
		}(g)
	}
	wg.Wait()

	_, hotFlag := Flags()
	if !hotFlag.Load() {
		t.Fatal("hot should remain set within a one-hour cooldown")
	}
}

func BenchmarkControl_SignalActivity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		SignalActivity()
	}
}

func BenchmarkControl_PollCooldown(b *testing.B) {
	SignalActivity()
	for i := 0; i < b.N; i++ {
		PollCooldown()
	}
}
