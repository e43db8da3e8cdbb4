package main

import (
	"bytes"
	"context"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"atomics/control"
	"atomics/report"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunAndHistory(t *testing.T) {
	control.Reset()
	db := filepath.Join(t.TempDir(), "runs.db")

	out, err := execute(t, "run", "-s", "counter", "-w", "2", "-n", "500", "-t", "2", "--db", db)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	if !strings.HasPrefix(out, "counter") || !strings.Contains(out, " ok") {
		t.Fatalf("unexpected run output %q", out)
	}

	out, err = execute(t, "history", "--db", db)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if strings.Count(out, "\n") != 1 || !strings.Contains(out, "counter") {
		t.Fatalf("unexpected history %q", out)
	}
}

func TestRunAllJSON(t *testing.T) {
	control.Reset()
	out, err := execute(t, "run", "-w", "2", "-n", "200", "-t", "1", "-o", "acq_rel", "--db", "", "--json")
	if err != nil {
		t.Fatalf("run: %v\n%s", err, out)
	}
	results, err := report.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 6 {
		t.Fatalf("got %d results, want 6", len(results))
	}
}

// TestRunAllRelaxedSkips checks that scenarios needing ordered access on
// both sides are skipped rather than failing the whole run.
func TestRunAllRelaxedSkips(t *testing.T) {
	control.Reset()
	out, err := execute(t, "run", "-w", "2", "-n", "200", "-t", "1", "-o", "relaxed", "--db", "", "--json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	results, err := report.Decode(strings.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.Config.Scenario == "handoff" || r.Config.Scenario == "dekker" {
			t.Fatalf("%s should have been skipped", r.Config.Scenario)
		}
	}
}

func TestRunRejectsConsume(t *testing.T) {
	if _, err := execute(t, "run", "-s", "counter", "-o", "consume", "--db", ""); err == nil {
		t.Fatal("consume should be rejected")
	}
	if _, err := execute(t, "run", "-s", "counter", "-o", "bogus", "--db", ""); err == nil {
		t.Fatal("unknown order should be rejected")
	}
}

func TestTargets(t *testing.T) {
	out, err := execute(t, "targets")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "amd64") || !strings.Contains(out, "compiled model:") {
		t.Fatalf("unexpected output %q", out)
	}
}

// TestSourcesGofmtClean keeps every package source in canonical gofmt form.
func TestSourcesGofmtClean(t *testing.T) {
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && strings.HasPrefix(d.Name(), "_") {
			return filepath.SkipDir
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		formatted, err := format.Source(src)
		if err != nil {
			return err
		}
		if !bytes.Equal(src, formatted) {
			t.Errorf("%s is not gofmt-clean", path)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}
