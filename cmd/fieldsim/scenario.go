package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fieldwave/field"
	"github.com/katalvlaran/fieldwave/harvest"
	"github.com/katalvlaran/fieldwave/vecmath"
)

// SeedSpec describes one wave to seed and harvest.
type SeedSpec struct {
	// Origin labels whatever spawned the wave; empty means "scenario".
	Origin string `yaml:"origin"`
	// A and B are the seeding position.
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// Scenario is a declarative run: an optional attractor redistribution
// followed by a sequence of seed harvests against the evolving field.
type Scenario struct {
	Seeds []SeedSpec `yaml:"seeds"`
	// Attractors, when present, is a full replacement strength mapping.
	// It must conserve the granted budget or the run is rejected.
	Attractors map[string]float64 `yaml:"attractors"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	for i := range sc.Seeds {
		if sc.Seeds[i].Origin == "" {
			sc.Seeds[i].Origin = "scenario"
		}
	}
	return sc, nil
}

// Apply runs the scenario: redistribute strengths if requested, then
// harvest every seed in order against the evolving field. Results come
// back in seed order.
func (s Scenario) Apply(opts *harvest.Options) (field.Field, []harvest.Result, error) {
	f := field.New()

	if len(s.Attractors) > 0 {
		strengths := make(map[field.AttractorName]float64, len(s.Attractors))
		for name, v := range s.Attractors {
			strengths[field.AttractorName(name)] = v
		}
		next, ok := f.Redistribute(strengths)
		if !ok {
			return f, nil, fmt.Errorf("attractor strengths must cover every attractor and sum to the granted budget of %.2f", f.Budget)
		}
		f = next
	}

	results := make([]harvest.Result, 0, len(s.Seeds))
	for _, spec := range s.Seeds {
		w := field.NewSeedAt(spec.Origin, vecmath.Position{A: spec.A, B: spec.B})
		res := harvest.Harvest(w, f, opts)
		f = res.Field
		results = append(results, res)
	}
	return f, results, nil
}
