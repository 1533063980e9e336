package sim

// WorkerPolicy proposes a worker count for one step's parallel vehicle phase,
// given the population size and the number of lanes currently showing GREEN.
// The proposal is advisory: the step engine clamps it to [1, MaxWorkers], so
// any policy satisfying this signature is safe to plug in. Worker count never
// affects results, only how the step's work is partitioned.
type WorkerPolicy func(population, greenLanes int) int

// FixedWorkers always proposes n workers.
func FixedWorkers(n int) WorkerPolicy {
	return func(population, greenLanes int) int {
		return n
	}
}

// GreenProportionalWorkers scales the proposal with the number of green lanes:
// more green lanes means more vehicles in motion and more work per step. With
// no green lane only waiting-time accumulation remains, so one worker per
// thousand vehicles is proposed as a floor.
func GreenProportionalWorkers(perGreenLane int) WorkerPolicy {
	return func(population, greenLanes int) int {
		if greenLanes == 0 {
			return 1 + population/1000
		}
		return perGreenLane * greenLanes
	}
}
