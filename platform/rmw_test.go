package platform

import (
	"math"
	"sync"
	"testing"
)

func TestCompareAndSwap(t *testing.T) {
	var u32 uint32 = 5
	if CompareAndSwap(&u32, 4, 9) {
		t.Fatal("CAS with wrong comparand succeeded")
	}
	if !CompareAndSwap(&u32, 5, 9) || u32 != 9 {
		t.Fatalf("CAS failed, value %d", u32)
	}

	var i64 int64 = -1
	if !CompareAndSwap(&i64, -1, math.MinInt64) || i64 != math.MinInt64 {
		t.Fatalf("signed CAS failed, value %d", i64)
	}
}

func TestSwap(t *testing.T) {
	var i32 int32 = -3
	if old := Swap(&i32, 12); old != -3 || i32 != 12 {
		t.Fatalf("swap: old %d new %d", old, i32)
	}
	var u uint = 1
	if old := Swap(&u, 2); old != 1 || u != 2 {
		t.Fatalf("swap: old %d new %d", old, u)
	}
}

// TestAddSignedWraps checks that negative deltas and overflow keep
// two's-complement semantics through the unsigned atomics.
func TestAddSignedWraps(t *testing.T) {
	var i32 int32 = 10
	if got := Add(&i32, -15); got != -5 {
		t.Fatalf("got %d, want -5", got)
	}
	var i64 int64 = math.MaxInt64
	if got := Add(&i64, 1); got != math.MinInt64 {
		t.Fatalf("got %d, want MinInt64", got)
	}
	var u32 uint32
	if got := Add(&u32, ^uint32(0)); got != math.MaxUint32 {
		t.Fatalf("got %d, want MaxUint32", got)
	}
}

// TestAddConcurrent hammers one counter from many goroutines and expects
// no lost updates.
func TestAddConcurrent(t *testing.T) {
	const workers, iters = 16, 5000
	var n int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				Add(&n, 1)
			}
		}()
	}
	wg.Wait()
	if got := ReadSeqCst(&n); got != workers*iters {
		t.Fatalf("GOT: %d; WANT: %d", got, workers*iters)
	}
}

func BenchmarkCompareAndSwap(b *testing.B) {
	var loc uint64
	for i := 0; i < b.N; i++ {
		CompareAndSwap(&loc, uint64(i), uint64(i+1))
	}
}
