package targets

import (
	"errors"
	"runtime"
	"testing"

	"atomics/platform"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		arch   string
		strong bool
	}{
		{"amd64", "amd64", true},
		{"x86_64", "amd64", true},
		{"AArch64", "arm64", false},
		{"386", "386", true},
		{" riscv64 ", "riscv64", false},
	}
	for _, tc := range tests {
		got, err := Lookup(tc.name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tc.name, err)
		}
		if got.Arch != tc.arch || got.Strong() != tc.strong {
			t.Fatalf("Lookup(%q) = %v", tc.name, got)
		}
	}

	if _, err := Lookup("vax"); !errors.Is(err, ErrUnknownTarget) {
		t.Fatalf("got %v, want ErrUnknownTarget", err)
	}
}

// TestCurrentMatchesBuild checks the build-tag model against the table.
func TestCurrentMatchesBuild(t *testing.T) {
	if platform.Forced {
		t.Skip("weak model forced by build tag")
	}
	cur, err := Current()
	if err != nil {
		t.Skipf("GOARCH %s not in table", runtime.GOARCH)
	}
	if cur.Strong() != platform.StrongOrdering {
		t.Fatalf("table says %s, build says strong=%v", cur.Model, platform.StrongOrdering)
	}
	if cur.Model != platform.Model() {
		t.Fatalf("table model %q, platform.Model() %q", cur.Model, platform.Model())
	}
}

func TestNamesSorted(t *testing.T) {
	names := All().Names()
	if len(names) != len(All()) {
		t.Fatalf("got %d names for %d targets", len(names), len(All()))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

func TestParseRejectsBadEntries(t *testing.T) {
	raw := []byte(`
targets:
  - arch: toy
    model: medium
    cacheLine: 48
  - model: weak
    cacheLine: 64
`)
	_, err := parse(raw)
	if !errors.Is(err, ErrInvalidTarget) {
		t.Fatalf("got %v, want ErrInvalidTarget", err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := parse([]byte("targets: [")); err == nil {
		t.Fatal("expected a YAML error")
	}
}
