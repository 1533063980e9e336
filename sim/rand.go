package sim

import "golang.org/x/exp/rand"

// newEngine returns a deterministic random engine for the given seed.
// All randomness in the simulation flows through engines created here;
// global math/rand state is never touched.
func newEngine(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform draws a value in [r.Min, r.Max).
func uniform(eng *rand.Rand, r Range) float64 {
	return r.Min + (r.Max-r.Min)*eng.Float64()
}
