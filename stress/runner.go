package stress

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"atomics/control"
	"atomics/debug"
)

// Names lists the registered scenarios in sorted order.
func Names() []string {
	names := maps.Keys(scenarios)
	slices.Sort(names)
	return names
}

// Run executes cfg.Trials trials of the scenario.  Cancellation and
// control.Shutdown are checked between trials; an interrupted run returns
// the trials completed so far together with the error.
func Run(ctx context.Context, cfg Config) (Result, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	sc := scenarios[cfg.Scenario]
	res := newResult(cfg)

	perOp := make([]float64, 0, cfg.Trials)
	var err error
	for trial := 0; trial < cfg.Trials; trial++ {
		if err = ctx.Err(); err != nil {
			break
		}
		if control.Stopping() {
			err = ErrStopped
			break
		}

		start := time.Now()
		ops, violations := sc.run(cfg)
		elapsed := time.Since(start)

		res.Trials = append(res.Trials, elapsed)
		res.Ops += ops
		res.Violations += violations
		perOp = append(perOp, float64(elapsed.Nanoseconds())/float64(ops))
	}
	res.Stats = summarize(perOp)

	if err != nil {
		debug.DropMessage("STRESS", fmt.Sprintf("%s interrupted after %d/%d trials", cfg.Scenario, len(res.Trials), cfg.Trials))
		return res, err
	}
	if !res.OK() {
		debug.DropMessage("STRESS", fmt.Sprintf("%s: %d violations under %v", cfg.Scenario, res.Violations, cfg.Order))
	}
	return res, nil
}
