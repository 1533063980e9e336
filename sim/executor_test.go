package sim

import "testing"

func TestMoveVehicles_PartitionMatchesSequential(t *testing.T) {
	// GIVEN two identical populations
	for _, workers := range []int{2, 3, 5, 16} {
		seq := mustSimulator(t, testConfig(37, ModeFinite, 0))
		par := mustSimulator(t, testConfig(37, ModeFinite, 0))
		dt := 1.0

		// WHEN one is stepped sequentially and one with a worker partition
		for step := 0; step < 25; step++ {
			seq.intersection.advance(dt)
			par.intersection.advance(dt)
			wantCount := moveVehicles(seq.vehicles, seq.intersection, dt, ModeFinite, 1, seq.crossedNow)
			gotCount := moveVehicles(par.vehicles, par.intersection, dt, ModeFinite, workers, par.crossedNow)

			// THEN the reduced crossing count and every per-vehicle slot agree
			if gotCount != wantCount {
				t.Fatalf("%d workers, step %d: crossed %d, want %d", workers, step, gotCount, wantCount)
			}
			for i := range par.crossedNow {
				if par.crossedNow[i] != seq.crossedNow[i] {
					t.Fatalf("%d workers, step %d: crossedNow[%d]=%v, want %v",
						workers, step, i, par.crossedNow[i], seq.crossedNow[i])
				}
			}
		}
		got := captureVehicles(par)
		for i, want := range captureVehicles(seq) {
			if got[i] != want {
				t.Fatalf("%d workers: vehicle %d diverged: %+v, want %+v", workers, i, got[i], want)
			}
		}
	}
}

func TestMoveVehicles_CountEqualsMarkedSlots(t *testing.T) {
	// GIVEN a population mid-run
	s := mustSimulator(t, testConfig(64, ModeFinite, 0))
	dt := 1.0

	// THEN on every step the reduced total equals the number of marked slots
	for step := 0; step < 30; step++ {
		s.intersection.advance(dt)
		count := moveVehicles(s.vehicles, s.intersection, dt, ModeFinite, 8, s.crossedNow)
		marked := 0
		for _, c := range s.crossedNow {
			if c {
				marked++
			}
		}
		if count != marked {
			t.Fatalf("step %d: reduced %d, marked %d", step, count, marked)
		}
	}
}

func TestMoveVehicles_MoreWorkersThanVehicles(t *testing.T) {
	// GIVEN a population smaller than the worker count, on its first step
	// (start distances guarantee nobody reaches the line yet)
	s := mustSimulator(t, testConfig(3, ModeFinite, 0))
	s.intersection.advance(1.0)
	before := captureVehicles(s)

	// WHEN dispatched with excess workers
	count := moveVehicles(s.vehicles, s.intersection, 1.0, ModeFinite, 64, s.crossedNow)

	// THEN every vehicle was updated exactly once
	if count != 0 {
		t.Fatalf("crossings on first step: got %d, want 0", count)
	}
	for i := range s.vehicles {
		v := s.Vehicle(i)
		want := before[i].position - v.Speed()
		if v.Position() != want {
			t.Errorf("vehicle %d position %g, want %g (single update)", i, v.Position(), want)
		}
	}
}
