package cmd

import (
	"fmt"
	"io"

	"github.com/intersection-sim/intersection-sim/sim"
)

// ConsoleReporter writes human-readable snapshots of the full vehicle and
// light state, in the style of the classic lab printout. It only uses the
// engine's read-only accessors and is only ever called between steps.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter returns a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// ReportConfig prints the initial population and light setup.
func (r *ConsoleReporter) ReportConfig(s *sim.Simulator) {
	fmt.Fprintf(r.w, "\nConfiguration summary:\n")
	for id := 0; id < s.PopulationSize(); id++ {
		v := s.Vehicle(id)
		fmt.Fprintf(r.w, "Vehicle %d - lane %d, speed %.2f m/s, start %.2f m\n",
			v.ID(), v.Lane(), v.Speed(), v.Position())
	}
	x := s.Intersection()
	for lane := 0; lane < x.Lanes(); lane++ {
		l := x.Light(lane)
		g, y, rd := l.Durations()
		fmt.Fprintf(r.w, "Light %d - initial %s, green %.1fs yellow %.1fs red %.1fs\n",
			l.ID(), l.Phase(), g, y, rd)
	}
	fmt.Fprintln(r.w)
}

// ReportStep prints one per-step snapshot.
func (r *ConsoleReporter) ReportStep(s *sim.Simulator) {
	fmt.Fprintf(r.w, "Step %d (t=%.1fs):\n", s.StepCount(), s.SimTime())
	for id := 0; id < s.PopulationSize(); id++ {
		v := s.Vehicle(id)
		switch {
		case s.CrossedNow(id):
			fmt.Fprintf(r.w, "Vehicle %d - lane %d, position 0.00 (CROSSED THIS STEP)\n", v.ID(), v.Lane())
		case v.Finished():
			fmt.Fprintf(r.w, "Vehicle %d - lane %d, position 0.00 (ALREADY CROSSED)\n", v.ID(), v.Lane())
		case v.Waiting():
			fmt.Fprintf(r.w, "Vehicle %d - lane %d, position %.2f (WAITING)\n", v.ID(), v.Lane(), v.Position())
		default:
			fmt.Fprintf(r.w, "Vehicle %d - lane %d, position %.2f\n", v.ID(), v.Lane(), v.Position())
		}
	}
	x := s.Intersection()
	for lane := 0; lane < x.Lanes(); lane++ {
		l := x.Light(lane)
		fmt.Fprintf(r.w, "Light %d - %s, %.1fs in phase\n", l.ID(), l.Phase(), l.TimeInPhase())
	}
	fmt.Fprintln(r.w)
}
