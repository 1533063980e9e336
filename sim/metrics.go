// Aggregates final population state into summary statistics for reporting.

package sim

import (
	"fmt"

	"github.com/samber/lo"
)

// Metrics holds the aggregate statistics of a completed run. All fields are
// derived from driver-owned state after the last step barrier, so they are
// identical for any worker count given the same seed and delta.
type Metrics struct {
	Population int
	Steps      int
	Delta      float64
	SimTime    float64

	TotalCrossed   int // step-folded crossing events
	TotalCrossings int // sum of per-vehicle crossing counters
	Finished       int
	Waiting        int

	TotalWait   float64
	AverageWait float64
	MaxWait     float64
}

// Metrics computes the summary statistics of the run so far.
func (s *Simulator) Metrics() Metrics {
	m := Metrics{
		Population:   len(s.vehicles),
		Steps:        s.stepCount,
		Delta:        s.cfg.Run.Delta,
		SimTime:      s.simTime,
		TotalCrossed: s.totalCrossed,
		TotalCrossings: lo.SumBy(s.vehicles, func(v Vehicle) int {
			return v.crossings
		}),
		Finished: lo.CountBy(s.vehicles, func(v Vehicle) bool {
			return v.finished
		}),
		Waiting: lo.CountBy(s.vehicles, func(v Vehicle) bool {
			return v.waiting
		}),
		TotalWait: lo.SumBy(s.vehicles, func(v Vehicle) float64 {
			return v.totalWait
		}),
	}
	m.AverageWait = m.TotalWait / float64(m.Population)
	m.MaxWait = lo.MaxBy(s.vehicles, func(a, b Vehicle) bool {
		return a.totalWait > b.totalWait
	}).totalWait
	return m
}

// Print displays the aggregated metrics at the end of the simulation.
func (m Metrics) Print() {
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Vehicles             : %d\n", m.Population)
	fmt.Printf("Steps executed       : %d (dt=%.1f s)\n", m.Steps, m.Delta)
	fmt.Printf("Simulated time       : %.1f s\n", m.SimTime)
	fmt.Printf("Crossings (by step)  : %d\n", m.TotalCrossed)
	fmt.Printf("Crossings (by car)   : %d\n", m.TotalCrossings)
	fmt.Printf("Finished vehicles    : %d/%d\n", m.Finished, m.Population)
	fmt.Printf("Still waiting        : %d\n", m.Waiting)
	fmt.Printf("Average wait         : %.3f s\n", m.AverageWait)
	fmt.Printf("Max wait             : %.3f s\n", m.MaxWait)
}
