package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario holds world-shape overrides loadable from a YAML file. Nil pointer
// fields and empty slices mean "not set" — they do not override the defaults.
// Run parameters (delta, budget, seed, workers) stay on the CLI.
type Scenario struct {
	Lanes            *int             `yaml:"lanes"`
	StopDistance     *float64         `yaml:"stop_distance"`
	MaxPhaseDuration *float64         `yaml:"max_phase_duration"`
	// Lights pins per-lane phase durations; its length must match the lane count.
	Lights  []PhaseDurations `yaml:"lights"`
	Start   *Range           `yaml:"start"`
	Speed   *Range           `yaml:"speed"`
	Respawn *Range           `yaml:"respawn"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Apply overlays the scenario on cfg. Bounds are not checked here; the
// combined configuration is validated once by NewSimulator.
func (sc *Scenario) Apply(cfg *Config) {
	if sc.Lanes != nil {
		cfg.Lanes = *sc.Lanes
	}
	if sc.StopDistance != nil {
		cfg.StopDistance = *sc.StopDistance
	}
	if sc.MaxPhaseDuration != nil {
		cfg.Lights.MaxPhaseDuration = *sc.MaxPhaseDuration
	}
	if len(sc.Lights) > 0 {
		cfg.Lights.Fixed = sc.Lights
	}
	if sc.Start != nil {
		cfg.Population.Start = *sc.Start
	}
	if sc.Speed != nil {
		cfg.Population.Speed = *sc.Speed
	}
	if sc.Respawn != nil {
		cfg.Population.Respawn = *sc.Respawn
	}
}
