// Package targets describes the memory model of every architecture the
// ordered-access core builds for.  The table is embedded YAML and is used
// by the CLI and by tests that cross-check the build-time model.
package targets

import (
	_ "embed"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

var (
	ErrUnknownTarget = errors.New("unknown target architecture")
	ErrInvalidTarget = errors.New("invalid target entry")
)

// All returns the table in file order.
func All() Targets {
	return targets
}

type Targets []Target
type Target struct {
	Arch      string   `yaml:"arch"`
	Aliases   []string `yaml:"aliases"`
	Model     string   `yaml:"model"`
	CacheLine int      `yaml:"cacheLine"`
	Fence     string   `yaml:"fence"`
	Relax     string   `yaml:"relax"`
}

// Strong reports whether plain loads and stores already give
// acquire/release ordering on this target.
func (t Target) Strong() bool {
	return t.Model == "strong"
}

func (t Target) String() string {
	return fmt.Sprintf("%s (%s, %dB line, fence %s)", t.Arch, t.Model, t.CacheLine, t.Fence)
}

func (t Target) validate() error {
	var errs []error
	if t.Arch == "" {
		errs = append(errs, errors.New("missing arch"))
	}
	if t.Model != "strong" && t.Model != "weak" {
		errs = append(errs, fmt.Errorf("model %q", t.Model))
	}
	if t.CacheLine <= 0 || t.CacheLine&(t.CacheLine-1) != 0 {
		errs = append(errs, fmt.Errorf("cache line %d", t.CacheLine))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidTarget, t.Arch, errors.Join(errs...))
	}
	return nil
}

// Lookup finds a target by GOARCH name or alias, case-insensitively.
func (t Targets) Lookup(name string) (Target, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	i := slices.IndexFunc(t, func(target Target) bool {
		return target.Arch == name || slices.Contains(target.Aliases, name)
	})
	if i < 0 {
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	return t[i], nil
}

// Lookup searches the embedded table.
func Lookup(name string) (Target, error) {
	return targets.Lookup(name)
}

// Current returns the entry for the running GOARCH.
func Current() (Target, error) {
	return targets.Lookup(runtime.GOARCH)
}

// Names returns the sorted GOARCH names in the table.
func (t Targets) Names() []string {
	names := make([]string, len(t))
	for i, target := range t {
		names[i] = target.Arch
	}
	slices.Sort(names)
	return names
}

func parse(raw []byte) (Targets, error) {
	var t struct {
		Elements []Target `yaml:"targets"`
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, err
	}
	var errs []error
	for _, target := range t.Elements {
		if err := target.validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t.Elements, nil
}

func init() {
	var err error
	if targets, err = parse(rawTargets); err != nil {
		panic(err)
	}
}
