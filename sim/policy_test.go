package sim

import "testing"

func TestFixedWorkers_IgnoresInputs(t *testing.T) {
	p := FixedWorkers(6)
	if p(10, 0) != 6 || p(100000, 4) != 6 {
		t.Error("fixed policy must always propose the same count")
	}
}

func TestGreenProportionalWorkers_ScalesWithGreenLanes(t *testing.T) {
	p := GreenProportionalWorkers(2)
	if got := p(1000, 1); got != 2 {
		t.Errorf("1 green lane: got %d, want 2", got)
	}
	if got := p(1000, 3); got != 6 {
		t.Errorf("3 green lanes: got %d, want 6", got)
	}
	if got := p(500, 0); got != 1 {
		t.Errorf("no green lanes, small population: got %d, want 1", got)
	}
	if got := p(5000, 0); got != 6 {
		t.Errorf("no green lanes, 5000 vehicles: got %d, want 6", got)
	}
}

func TestSimulator_ClampsWorkerProposals(t *testing.T) {
	cfg := testConfig(10, ModeFinite, 0)
	cfg.Run.MaxWorkers = 8
	s := mustSimulator(t, cfg)
	if got := s.clampWorkers(0); got != 1 {
		t.Errorf("clamp(0): got %d, want 1", got)
	}
	if got := s.clampWorkers(5); got != 5 {
		t.Errorf("clamp(5): got %d, want 5", got)
	}
	if got := s.clampWorkers(100); got != 8 {
		t.Errorf("clamp(100): got %d, want 8", got)
	}
}
