package sim

import "testing"

func TestTrafficLight_CyclesGreenYellowRed(t *testing.T) {
	// GIVEN a light starting GREEN with durations 2/1/3
	l := newTrafficLight(0, PhaseDurations{Green: 2, Yellow: 1, Red: 3})
	if l.Phase() != PhaseGreen {
		t.Fatalf("even lane initial phase: got %v, want GREEN", l.Phase())
	}

	// WHEN it is advanced in 1s increments through a full cycle
	// THEN it passes GREEN -> YELLOW -> RED -> GREEN with the timer reset at
	// each transition
	l.advance(1)
	if l.Phase() != PhaseGreen || l.TimeInPhase() != 1 {
		t.Errorf("after 1s: got %v/%.1f, want GREEN/1.0", l.Phase(), l.TimeInPhase())
	}
	l.advance(1)
	if l.Phase() != PhaseYellow || l.TimeInPhase() != 0 {
		t.Errorf("after 2s: got %v/%.1f, want YELLOW/0.0", l.Phase(), l.TimeInPhase())
	}
	l.advance(1)
	if l.Phase() != PhaseRed || l.TimeInPhase() != 0 {
		t.Errorf("after 3s: got %v/%.1f, want RED/0.0", l.Phase(), l.TimeInPhase())
	}
	l.advance(1)
	l.advance(1)
	l.advance(1)
	if l.Phase() != PhaseGreen || l.TimeInPhase() != 0 {
		t.Errorf("after full red: got %v/%.1f, want GREEN/0.0", l.Phase(), l.TimeInPhase())
	}
}

func TestTrafficLight_OddLaneStartsRed(t *testing.T) {
	l := newTrafficLight(3, PhaseDurations{Green: 2, Yellow: 1, Red: 3})
	if l.Phase() != PhaseRed {
		t.Errorf("odd lane initial phase: got %v, want RED", l.Phase())
	}
}

func TestTrafficLight_AtMostOneTransitionPerUpdate(t *testing.T) {
	// GIVEN a light whose whole cycle is shorter than one delta
	l := newTrafficLight(0, PhaseDurations{Green: 1, Yellow: 1, Red: 1})

	// WHEN advanced by a delta spanning several phases
	l.advance(10)

	// THEN only a single transition happened
	if l.Phase() != PhaseYellow {
		t.Errorf("after one big update: got %v, want YELLOW", l.Phase())
	}
	if l.TimeInPhase() != 0 {
		t.Errorf("timer after transition: got %.1f, want 0.0", l.TimeInPhase())
	}
}

func TestTrafficLight_RemainderIsDiscarded(t *testing.T) {
	// GIVEN a GREEN light 0.5s short of its threshold
	l := newTrafficLight(0, PhaseDurations{Green: 2, Yellow: 1, Red: 3})
	l.advance(1.5)

	// WHEN the next update overshoots the threshold
	l.advance(1.5)

	// THEN the timer restarts at zero rather than carrying the overshoot
	if l.Phase() != PhaseYellow || l.TimeInPhase() != 0 {
		t.Errorf("got %v/%.2f, want YELLOW/0.00", l.Phase(), l.TimeInPhase())
	}
}

func TestPhase_Passable(t *testing.T) {
	if !PhaseGreen.Passable() || !PhaseYellow.Passable() {
		t.Error("GREEN and YELLOW must be passable")
	}
	if PhaseRed.Passable() {
		t.Error("RED must not be passable")
	}
}
