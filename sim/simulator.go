package sim

import "github.com/sirupsen/logrus"

// Reporter consumes read-only simulation state for human-readable output.
// The engine calls it only between steps, never from worker context.
type Reporter interface {
	// ReportConfig is called once, after construction and before the first step.
	ReportConfig(s *Simulator)
	// ReportStep is called after every PrintEvery-th completed step.
	ReportStep(s *Simulator)
}

// Simulator drives the fixed-timestep run: it owns the intersection and the
// vehicle population, advances both once per step, and is the only writer of
// the clock, the step counter and the global crossed count. The parallel
// phase's workers hand their partial crossing counts back to it for reduction.
type Simulator struct {
	cfg          Config
	intersection *Intersection
	vehicles     []Vehicle
	// crossedNow marks the vehicles that crossed during the latest step. Each
	// slot is written by exactly one worker per step (partition-disjoint).
	crossedNow []bool

	policy   WorkerPolicy
	reporter Reporter

	stepCount    int
	simTime      float64
	totalCrossed int
}

// NewSimulator validates cfg and builds the intersection and population.
// All draws happen here, in lane and id order from a single seeded engine, so
// the initial world state is a pure function of the configuration.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	eng := newEngine(cfg.Run.Seed)
	s := &Simulator{
		cfg:          cfg,
		intersection: newIntersection(cfg.Lanes, cfg.StopDistance, cfg.Lights, eng),
		vehicles:     make([]Vehicle, cfg.Population.Size),
		crossedNow:   make([]bool, cfg.Population.Size),
		policy:       FixedWorkers(cfg.Run.MaxWorkers),
	}
	for i := range s.vehicles {
		s.vehicles[i] = newVehicle(i, cfg.Lanes, cfg.Population, cfg.Run.Seed, eng)
	}
	return s, nil
}

// SetWorkerPolicy replaces the default fixed policy. Must be called before Run.
func (s *Simulator) SetWorkerPolicy(p WorkerPolicy) {
	if p != nil {
		s.policy = p
	}
}

// SetReporter installs a snapshot consumer. Must be called before Run.
func (s *Simulator) SetReporter(r Reporter) { s.reporter = r }

// step advances the world by one delta: lights first, sequentially, so every
// vehicle update observes a single coherent signal state; then the vehicle
// population in parallel; then the reduction is folded into the global
// counters. Returns the number of crossings in this step.
func (s *Simulator) step() int {
	dt := s.cfg.Run.Delta
	s.intersection.advance(dt)

	workers := s.clampWorkers(s.policy(len(s.vehicles), s.intersection.greenLanes()))
	crossed := moveVehicles(s.vehicles, s.intersection, dt, s.cfg.Run.Mode, workers, s.crossedNow)

	s.totalCrossed += crossed
	s.stepCount++
	s.simTime += dt
	logrus.Debugf("step %d: workers=%d crossed=%d total=%d", s.stepCount, workers, crossed, s.totalCrossed)
	return crossed
}

func (s *Simulator) clampWorkers(n int) int {
	if n < 1 {
		return 1
	}
	if n > s.cfg.Run.MaxWorkers {
		return s.cfg.Run.MaxWorkers
	}
	return n
}

// done is evaluated once per completed step, never mid-step, so a
// partially-updated population can never satisfy it.
func (s *Simulator) done() bool {
	if s.cfg.Run.Mode == ModeFinite && s.totalCrossed >= len(s.vehicles) {
		return true
	}
	return s.cfg.Run.MaxSteps > 0 && s.stepCount >= s.cfg.Run.MaxSteps
}

// Run executes steps until every vehicle has crossed (finite mode) or the
// step budget is exhausted. Both endings return normally.
func (s *Simulator) Run() {
	logrus.Infof("starting %s run: %d vehicles, %d lanes, dt=%gs",
		s.cfg.Run.Mode, len(s.vehicles), s.intersection.Lanes(), s.cfg.Run.Delta)
	if s.reporter != nil {
		s.reporter.ReportConfig(s)
	}
	for {
		s.step()
		if s.reporter != nil && s.cfg.Run.PrintEvery > 0 && s.stepCount%s.cfg.Run.PrintEvery == 0 {
			s.reporter.ReportStep(s)
		}
		if s.done() {
			break
		}
	}
	logrus.Infof("run complete: %d steps, %d/%d crossed", s.stepCount, s.totalCrossed, len(s.vehicles))
}

// PopulationSize returns the number of vehicles.
func (s *Simulator) PopulationSize() int { return len(s.vehicles) }

// Vehicle returns the vehicle with the given id for read-only access.
func (s *Simulator) Vehicle(id int) *Vehicle { return &s.vehicles[id] }

// CrossedNow reports whether the given vehicle crossed during the latest step.
func (s *Simulator) CrossedNow(id int) bool { return s.crossedNow[id] }

// Intersection returns the intersection for read-only access.
func (s *Simulator) Intersection() *Intersection { return s.intersection }

// StepCount returns the number of completed steps.
func (s *Simulator) StepCount() int { return s.stepCount }

// SimTime returns the simulated time in seconds.
func (s *Simulator) SimTime() float64 { return s.simTime }

// TotalCrossed returns the step-folded global crossing count.
func (s *Simulator) TotalCrossed() int { return s.totalCrossed }
