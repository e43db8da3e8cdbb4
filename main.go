// ════════════════════════════════════════════════════════════════════════════════════════════════
// Ordered Atomics - Stress Harness Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Commands:
//   - run      execute contention scenarios and record the results
//   - targets  print the memory-model table and the compiled-in model
//   - history  list recorded runs
//
// SIGINT/SIGTERM raise control.Shutdown; the runner stops between trials.
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"atomics/atomics"
	"atomics/constants"
	"atomics/control"
	"atomics/debug"
	"atomics/platform"
	"atomics/report"
	"atomics/store"
	"atomics/stress"
	"atomics/targets"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		debug.DropMessage("SIGNAL", "shutting down after the current trial")
		control.Shutdown()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "atomics",
		Short:        "Stress ordered atomic access on this machine",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newTargetsCmd(), newHistoryCmd())
	return root
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// RUN
// ═══════════════════════════════════════════════════════════════════════════════════════════════

type runFlags struct {
	scenario   string
	workers    int
	iterations int
	trials     int
	order      string
	db         string
	json       bool
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scenario, or all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.scenario, "scenario", "s", "all", fmt.Sprintf("scenario name or \"all\" %v", stress.Names()))
	cmd.Flags().IntVarP(&f.workers, "workers", "w", constants.DefaultWorkers, "contending goroutines")
	cmd.Flags().IntVarP(&f.iterations, "iterations", "n", constants.DefaultIterations, "operations per worker")
	cmd.Flags().IntVarP(&f.trials, "trials", "t", constants.DefaultTrials, "trials per scenario")
	cmd.Flags().StringVarP(&f.order, "order", "o", "seq_cst", "memory order: relaxed, acquire, release, acq_rel, seq_cst")
	cmd.Flags().StringVar(&f.db, "db", constants.HistoryDB, "sqlite history file; empty disables recording")
	cmd.Flags().BoolVar(&f.json, "json", false, "print results as JSON")
	return cmd
}

func runScenarios(cmd *cobra.Command, f runFlags) error {
	order, err := atomics.ParseMemoryOrder(f.order)
	if err != nil {
		return err
	}
	if err := order.Validate(); err != nil {
		return err
	}

	names := []string{f.scenario}
	if f.scenario == "all" {
		names = stress.Names()
	}

	var db *store.Store
	if f.db != "" {
		if db, err = store.Open(cmd.Context(), f.db); err != nil {
			return err
		}
		defer db.Close()
	}

	var results []stress.Result
	failed := 0
	for _, name := range names {
		cfg := stress.Config{Scenario: name, Workers: f.workers, Iterations: f.iterations, Trials: f.trials, Order: order}
		if err := cfg.Validate(); err != nil {
			if f.scenario == "all" {
				debug.DropError("SKIP "+name, err)
				continue
			}
			return err
		}

		res, err := stress.Run(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if !res.OK() {
			failed++
		}
		results = append(results, res)

		if db != nil {
			if _, err := db.Save(cmd.Context(), res); err != nil {
				debug.DropError("STORE", err)
			}
		}
		if !f.json {
			fmt.Fprintln(cmd.OutOrStdout(), report.Line(res))
		}
	}

	if f.json {
		if err := report.Encode(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d scenario(s) violated their invariant", failed)
	}
	return nil
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// TARGETS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "Print the memory model of each supported architecture",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cur, _ := targets.Current()
			for _, t := range targets.All() {
				mark := " "
				if t.Arch == cur.Arch {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s\n", mark, t)
			}
			build := platform.Model()
			if platform.Forced {
				build += " (forced by weakorder tag)"
			}
			fmt.Fprintf(out, "compiled model: %s\n", build)
			return nil
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// HISTORY
// ═══════════════════════════════════════════════════════════════════════════════════════════════

func newHistoryCmd() *cobra.Command {
	var (
		db    string
		limit int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := store.Open(cmd.Context(), db)
			if err != nil {
				return err
			}
			defer s.Close()

			rows, err := s.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range rows {
				fmt.Fprintf(out, "%s  %s  %-12s %-7s %s/%s  w=%d n=%d mean=%.2fns p99=%.2fns violations=%d\n",
					time.Unix(0, r.CreatedAt).UTC().Format(time.RFC3339), r.ID, r.Scenario, r.Order,
					r.Model, r.Arch, r.Workers, r.Iterations, r.MeanNs, r.P99Ns, r.Violations)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&db, "db", constants.HistoryDB, "sqlite history file")
	cmd.Flags().IntVarP(&limit, "limit", "l", constants.HistoryLimit, "rows to show")
	return cmd
}
