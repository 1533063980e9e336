package sim

import "golang.org/x/exp/rand"

// Vehicle approaches the intersection on a fixed lane in a straight line at
// constant speed. Position is the signed distance to the stop line in meters
// and decreases while the vehicle moves. In finite mode a vehicle crosses at
// most once and then never updates again; in continuous mode it respawns at a
// random distance after each crossing.
type Vehicle struct {
	id    int
	lane  int
	speed float64 // m/s, immutable

	position  float64
	waiting   bool
	finished  bool
	totalWait float64 // seconds spent halted at the stop line
	crossings int

	// respawn draws (continuous mode). Each vehicle owns its stream, seeded
	// from the run seed and the vehicle id, so respawn positions do not depend
	// on how the parallel phase interleaves vehicles across workers.
	rng     *rand.Rand
	respawn Range
}

func newVehicle(id, lanes int, cfg PopulationConfig, seed uint64, eng *rand.Rand) Vehicle {
	return Vehicle{
		id:       id,
		lane:     id % lanes,
		position: uniform(eng, cfg.Start),
		speed:    uniform(eng, cfg.Speed),
		rng:      newEngine(seed + uint64(id) + 1),
		respawn:  cfg.Respawn,
	}
}

// move applies one step of the motion/crossing rule and reports whether the
// vehicle crossed the stop line. The clause order matters: a waiting vehicle
// released by a permissive light moves, and may cross, within the same step.
// It mutates only this vehicle; the light is read-only and step-frozen.
func (v *Vehicle) move(l *TrafficLight, stopDistance, dt float64, mode Mode) bool {
	if v.finished {
		return false
	}

	if v.waiting && l.phase.Passable() {
		v.waiting = false
	}

	if !v.waiting {
		v.position -= v.speed * dt
	}

	crossed := false
	if v.position <= 0 {
		if l.phase.Passable() {
			v.crossings++
			crossed = true
			if mode == ModeContinuous {
				v.position = uniform(v.rng, v.respawn)
			} else {
				v.position = 0
				v.finished = true
			}
		} else {
			// Red: halt a physical offset short of the line.
			v.position = stopDistance
			v.waiting = true
		}
	}

	if v.waiting {
		v.totalWait += dt
	}
	return crossed
}

// ID returns the vehicle's identity.
func (v *Vehicle) ID() int { return v.id }

// Lane returns the lane the vehicle is assigned to.
func (v *Vehicle) Lane() int { return v.lane }

// Position returns the signed distance to the stop line in meters.
func (v *Vehicle) Position() float64 { return v.position }

// Speed returns the constant speed in m/s.
func (v *Vehicle) Speed() float64 { return v.speed }

// Waiting reports whether the vehicle is halted at the stop line.
func (v *Vehicle) Waiting() bool { return v.waiting }

// Finished reports whether the vehicle has crossed and left the simulation.
func (v *Vehicle) Finished() bool { return v.finished }

// TotalWait returns the cumulative seconds spent waiting.
func (v *Vehicle) TotalWait() float64 { return v.totalWait }

// Crossings returns how many times the vehicle has crossed the intersection.
func (v *Vehicle) Crossings() int { return v.crossings }
