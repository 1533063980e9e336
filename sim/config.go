package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every construction-time validation failure.
// The simulation has no recoverable error paths past construction: a config
// either validates once or the run is aborted at setup.
var ErrInvalidConfig = errors.New("invalid configuration")

// Mode selects the population termination semantics.
type Mode string

const (
	// ModeFinite: each vehicle crosses at most once, then stops updating.
	// The run ends when every vehicle has crossed (or the step budget runs out).
	ModeFinite Mode = "finite"
	// ModeContinuous: a vehicle that crosses respawns at a random distance and
	// keeps approaching indefinitely. The run ends only by step budget.
	ModeContinuous Mode = "continuous"
)

// ValidModes is the set of recognized population modes.
var ValidModes = map[Mode]bool{ModeFinite: true, ModeContinuous: true}

// Range is a closed-open interval for uniform draws.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) valid() bool { return r.Min > 0 && r.Max >= r.Min }

// PhaseDurations pins the three phase durations of one light, in seconds.
type PhaseDurations struct {
	Green  float64 `yaml:"green"`
	Yellow float64 `yaml:"yellow"`
	Red    float64 `yaml:"red"`
}

// LightConfig groups traffic light timing parameters.
type LightConfig struct {
	// Draw ranges used when Fixed is empty; one draw per phase per lane.
	Green  Range
	Yellow Range
	Red    Range
	// Fixed pins per-lane durations (scenario files); when set its length must
	// equal the lane count and the draw ranges are ignored.
	Fixed []PhaseDurations
	// MaxPhaseDuration caps every duration, pinned or drawn.
	MaxPhaseDuration float64
}

// PopulationConfig groups vehicle population parameters.
type PopulationConfig struct {
	Size    int   // number of vehicles (must be > 0)
	Start   Range // initial distance to the stop line, meters
	Speed   Range // constant speed, m/s
	Respawn Range // re-entry distance after a crossing (continuous mode)
}

// RunConfig groups driver parameters for one run.
type RunConfig struct {
	Delta      float64 // step delta in seconds (must be > 0)
	MaxSteps   int     // step budget; 0 = unbounded (finite mode only)
	Seed       uint64  // random seed; the CLI substitutes a time-derived value for 0
	Mode       Mode
	PrintEvery int // snapshot interval in steps; 0 disables snapshots
	MaxWorkers int // upper bound for the per-step worker count (must be >= 1)
}

// Config is the full simulation configuration.
type Config struct {
	Lanes        int
	StopDistance float64 // halt offset before the line under red, meters
	Lights       LightConfig
	Population   PopulationConfig
	Run          RunConfig
}

// DefaultConfig returns the stock four-lane intersection: start distances
// U(20, 200) m, speeds U(6, 14) m/s, respawns U(60, 200) m, per-light
// durations drawn as green 5-9 s, yellow 2-4 s, red 5-9 s under a 10 s cap.
func DefaultConfig() Config {
	return Config{
		Lanes:        4,
		StopDistance: 2.0,
		Lights: LightConfig{
			Green:            Range{Min: 5, Max: 9},
			Yellow:           Range{Min: 2, Max: 4},
			Red:              Range{Min: 5, Max: 9},
			MaxPhaseDuration: 10,
		},
		Population: PopulationConfig{
			Size:    60,
			Start:   Range{Min: 20, Max: 200},
			Speed:   Range{Min: 6, Max: 14},
			Respawn: Range{Min: 60, Max: 200},
		},
		Run: RunConfig{
			Delta:      1.0,
			Mode:       ModeFinite,
			MaxWorkers: 1,
		},
	}
}

// Validate checks every bound once, before construction. All later simulation
// code assumes validated inputs and has no failure modes.
func (c *Config) Validate() error {
	if c.Lanes <= 0 {
		return fmt.Errorf("lane count must be positive, got %d: %w", c.Lanes, ErrInvalidConfig)
	}
	if c.StopDistance <= 0 {
		return fmt.Errorf("stop distance must be positive, got %g: %w", c.StopDistance, ErrInvalidConfig)
	}
	if err := c.Lights.validate(c.Lanes); err != nil {
		return err
	}
	if err := c.Population.validate(); err != nil {
		return err
	}
	return c.Run.validate()
}

func (lc *LightConfig) validate(lanes int) error {
	if lc.MaxPhaseDuration <= 0 {
		return fmt.Errorf("max phase duration must be positive, got %g: %w", lc.MaxPhaseDuration, ErrInvalidConfig)
	}
	if len(lc.Fixed) > 0 {
		if len(lc.Fixed) != lanes {
			return fmt.Errorf("pinned light timings cover %d lanes, want %d: %w", len(lc.Fixed), lanes, ErrInvalidConfig)
		}
		for i, d := range lc.Fixed {
			for _, dur := range []float64{d.Green, d.Yellow, d.Red} {
				if dur <= 0 || dur > lc.MaxPhaseDuration {
					return fmt.Errorf("lane %d durations %+v outside (0, %g]: %w",
						i, d, lc.MaxPhaseDuration, ErrInvalidConfig)
				}
			}
		}
		return nil
	}
	for _, r := range []Range{lc.Green, lc.Yellow, lc.Red} {
		if !r.valid() || r.Max > lc.MaxPhaseDuration {
			return fmt.Errorf("duration range [%g, %g] outside (0, %g]: %w",
				r.Min, r.Max, lc.MaxPhaseDuration, ErrInvalidConfig)
		}
	}
	return nil
}

func (pc *PopulationConfig) validate() error {
	if pc.Size <= 0 {
		return fmt.Errorf("population size must be positive, got %d: %w", pc.Size, ErrInvalidConfig)
	}
	for _, r := range []Range{pc.Start, pc.Speed, pc.Respawn} {
		if !r.valid() {
			return fmt.Errorf("population range [%g, %g] must be positive and ordered: %w", r.Min, r.Max, ErrInvalidConfig)
		}
	}
	return nil
}

func (rc *RunConfig) validate() error {
	if rc.Delta <= 0 {
		return fmt.Errorf("step delta must be positive, got %g: %w", rc.Delta, ErrInvalidConfig)
	}
	if !ValidModes[rc.Mode] {
		return fmt.Errorf("unknown mode %q: %w", rc.Mode, ErrInvalidConfig)
	}
	if rc.MaxSteps < 0 {
		return fmt.Errorf("step budget must be non-negative, got %d: %w", rc.MaxSteps, ErrInvalidConfig)
	}
	if rc.Mode == ModeContinuous && rc.MaxSteps == 0 {
		return fmt.Errorf("continuous mode requires a step budget: %w", ErrInvalidConfig)
	}
	if rc.PrintEvery < 0 {
		return fmt.Errorf("print interval must be non-negative, got %d: %w", rc.PrintEvery, ErrInvalidConfig)
	}
	if rc.MaxWorkers < 1 {
		return fmt.Errorf("max workers must be at least 1, got %d: %w", rc.MaxWorkers, ErrInvalidConfig)
	}
	return nil
}
