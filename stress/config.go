// Package stress runs contention scenarios against the ordered atomics and
// reports per-operation timings and invariant violations.
package stress

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"atomics/atomics"
	"atomics/constants"
	"atomics/platform"
)

var (
	ErrUnknownScenario = errors.New("stress: unknown scenario")
	ErrInvalidConfig   = errors.New("stress: invalid config")
	ErrStopped         = errors.New("stress: stopped")
)

// Config selects a scenario and its sizing.  Zero sizes take the
// constants package defaults.
type Config struct {
	Scenario   string              `json:"scenario"`
	Workers    int                 `json:"workers"`
	Iterations int                 `json:"iterations"`
	Trials     int                 `json:"trials"`
	Order      atomics.MemoryOrder `json:"order"`
}

// WithDefaults fills zero sizes.  Order is left alone: Relaxed is zero and
// a valid choice.
func (c Config) WithDefaults() Config {
	if c.Workers == 0 {
		c.Workers = constants.DefaultWorkers
	}
	if c.Iterations == 0 {
		c.Iterations = constants.DefaultIterations
	}
	if c.Trials == 0 {
		c.Trials = constants.DefaultTrials
	}
	return c
}

// Validate checks sizes, the order, and the scenario's own limits.
func (c Config) Validate() error {
	sc, ok := scenarios[c.Scenario]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScenario, c.Scenario)
	}
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers %d", c.Workers))
	}
	if c.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations %d", c.Iterations))
	}
	if c.Trials < 1 {
		errs = append(errs, fmt.Errorf("trials %d", c.Trials))
	}
	if err := c.Order.Validate(); err != nil {
		errs = append(errs, err)
	} else if sc.accepts != nil && !sc.accepts(c.Order) {
		errs = append(errs, fmt.Errorf("%s needs both sides ordered, got %v", c.Scenario, c.Order))
	}
	if sc.limit > 0 && c.Workers*c.Iterations > sc.limit {
		errs = append(errs, fmt.Errorf("%s: workers*iterations %d exceeds %d", c.Scenario, c.Workers*c.Iterations, sc.limit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Stats summarises per-trial ns/op.
type Stats struct {
	MeanNs   float64 `json:"mean_ns"`
	StdDevNs float64 `json:"stddev_ns"`
	P50Ns    float64 `json:"p50_ns"`
	P99Ns    float64 `json:"p99_ns"`
}

// Result is one completed (or interrupted) run.
type Result struct {
	Config     Config          `json:"config"`
	Model      string          `json:"model"`
	Arch       string          `json:"arch"`
	Started    time.Time       `json:"started"`
	Trials     []time.Duration `json:"trials"`
	Ops        int64           `json:"ops"`
	Violations int64           `json:"violations"`
	Stats      Stats           `json:"stats"`
}

// OK reports whether the run met its scenario's invariant.  Store-buffer
// outcomes are only forbidden under SeqCst.
func (r Result) OK() bool {
	if r.Violations == 0 {
		return true
	}
	sc, ok := scenarios[r.Config.Scenario]
	return ok && sc.strict != nil && !sc.strict(r.Config.Order)
}

func newResult(cfg Config) Result {
	return Result{
		Config:  cfg,
		Model:   platform.Model(),
		Arch:    runtime.GOARCH,
		Started: time.Now().UTC(),
	}
}
