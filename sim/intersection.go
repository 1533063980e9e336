package sim

import "golang.org/x/exp/rand"

// Intersection owns the fixed set of per-lane traffic lights and the stop
// offset applied when a vehicle halts for red. Its shape is immutable after
// construction; only the contained lights' phase state changes.
type Intersection struct {
	lights       []TrafficLight
	stopDistance float64
}

// newIntersection builds one light per lane. Durations come from the pinned
// per-lane timings when the scenario set them, otherwise they are drawn from
// the configured ranges in lane order so results depend only on the seed.
func newIntersection(lanes int, stopDistance float64, cfg LightConfig, eng *rand.Rand) *Intersection {
	x := &Intersection{
		lights:       make([]TrafficLight, lanes),
		stopDistance: stopDistance,
	}
	for i := range x.lights {
		var d PhaseDurations
		if len(cfg.Fixed) > 0 {
			d = cfg.Fixed[i]
		} else {
			d = PhaseDurations{
				Green:  uniform(eng, cfg.Green),
				Yellow: uniform(eng, cfg.Yellow),
				Red:    uniform(eng, cfg.Red),
			}
		}
		x.lights[i] = newTrafficLight(i, d)
	}
	return x
}

// advance moves every light's phase machine by dt, sequentially. This runs
// before the parallel vehicle phase of a step and never concurrently with it.
func (x *Intersection) advance(dt float64) {
	for i := range x.lights {
		x.lights[i].advance(dt)
	}
}

// greenLanes counts the lanes currently showing GREEN.
func (x *Intersection) greenLanes() int {
	n := 0
	for i := range x.lights {
		if x.lights[i].phase == PhaseGreen {
			n++
		}
	}
	return n
}

// Lanes returns the number of lanes (one light each).
func (x *Intersection) Lanes() int { return len(x.lights) }

// Light returns the light governing the given lane.
func (x *Intersection) Light(lane int) *TrafficLight { return &x.lights[lane] }

// StopDistance returns the offset in meters at which a vehicle halts for red.
func (x *Intersection) StopDistance() float64 { return x.stopDistance }
