package sim

// Phase is the signal state of a traffic light.
type Phase int

const (
	PhaseRed Phase = iota
	PhaseGreen
	PhaseYellow
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseGreen:
		return "GREEN"
	case PhaseYellow:
		return "YELLOW"
	default:
		return "RED"
	}
}

// Passable reports whether a vehicle may enter the intersection under this phase.
func (p Phase) Passable() bool {
	return p == PhaseGreen || p == PhaseYellow
}

// TrafficLight is the per-lane phase state machine. It cycles
// GREEN -> YELLOW -> RED -> GREEN, spending a fixed duration in each phase.
// Durations are set once at intersection setup and never change during a run.
type TrafficLight struct {
	id          int
	phase       Phase
	timeInPhase float64

	greenDur  float64
	yellowDur float64
	redDur    float64
}

func newTrafficLight(id int, d PhaseDurations) TrafficLight {
	phase := PhaseRed
	if id%2 == 0 {
		phase = PhaseGreen
	}
	return TrafficLight{
		id:        id,
		phase:     phase,
		greenDur:  d.Green,
		yellowDur: d.Yellow,
		redDur:    d.Red,
	}
}

// advance accumulates dt into the current phase timer and switches to the next
// phase in the cycle once the configured duration is reached. The timer resets
// to zero on a switch; any remainder past the threshold is discarded. At most
// one transition happens per call, even when dt spans several durations.
func (l *TrafficLight) advance(dt float64) {
	l.timeInPhase += dt
	switch l.phase {
	case PhaseGreen:
		if l.timeInPhase >= l.greenDur {
			l.phase = PhaseYellow
			l.timeInPhase = 0
		}
	case PhaseYellow:
		if l.timeInPhase >= l.yellowDur {
			l.phase = PhaseRed
			l.timeInPhase = 0
		}
	default:
		if l.timeInPhase >= l.redDur {
			l.phase = PhaseGreen
			l.timeInPhase = 0
		}
	}
}

// ID returns the lane index this light governs.
func (l *TrafficLight) ID() int { return l.id }

// Phase returns the current signal phase.
func (l *TrafficLight) Phase() Phase { return l.phase }

// TimeInPhase returns the seconds accumulated in the current phase.
func (l *TrafficLight) TimeInPhase() float64 { return l.timeInPhase }

// Durations returns the configured green, yellow and red durations in seconds.
func (l *TrafficLight) Durations() (green, yellow, red float64) {
	return l.greenDur, l.yellowDur, l.redDur
}
