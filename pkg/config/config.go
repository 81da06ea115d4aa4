// Package config holds the benchmark plan consumed by cmd/bench. A plan
// can be loaded from a YAML file so bench sessions are reproducible
// without re-typing flag soup.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/i5heu/GoRingBuf/internal/testbench"
)

// Config is an alias for testbench.Config. This allows other programs to import
// the scenario configuration without pulling in the entire testbench package.
type Config = testbench.Config

// Plan describes a full bench session: which workloads to drive, at which
// capacities, how often, and for how long each run lasts.
type Plan struct {
	Workloads  []string `yaml:"workloads"`
	Capacities []int    `yaml:"capacities"`
	Iterations int      `yaml:"iterations"`
	Duration   string   `yaml:"duration"`
}

// DefaultPlan returns the plan used when no YAML file is supplied.
func DefaultPlan() *Plan {
	return &Plan{
		Workloads:  testbench.Workloads,
		Capacities: []int{16, 256, 4096, 65536},
		Iterations: 5,
		Duration:   "5s",
	}
}

// Load reads a Plan from a YAML file. Fields left out of the file keep
// their default values.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bench plan %q: %w", path, err)
	}
	plan := DefaultPlan()
	if err := yaml.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("parsing bench plan %q: %w", path, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("bench plan %q: %w", path, err)
	}
	return plan, nil
}

// Validate rejects plans that cannot be run.
func (p *Plan) Validate() error {
	if len(p.Workloads) == 0 {
		return fmt.Errorf("no workloads configured")
	}
	for _, w := range p.Workloads {
		known := false
		for _, k := range testbench.Workloads {
			if w == k {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("unknown workload %q", w)
		}
	}
	if len(p.Capacities) == 0 {
		return fmt.Errorf("no capacities configured")
	}
	for _, c := range p.Capacities {
		if c < 0 {
			return fmt.Errorf("negative capacity %d", c)
		}
	}
	if p.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", p.Iterations)
	}
	if _, err := p.TestDuration(); err != nil {
		return err
	}
	return nil
}

// TestDuration parses the per-run duration.
func (p *Plan) TestDuration() (time.Duration, error) {
	d, err := time.ParseDuration(p.Duration)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", p.Duration, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", p.Duration)
	}
	return d, nil
}
