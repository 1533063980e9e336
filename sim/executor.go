package sim

import "sync"

// moveVehicles applies the per-vehicle motion rule across workers and returns
// the number of crossings this step. The index range is split into contiguous
// disjoint chunks, so no two goroutines ever touch the same vehicle and each
// crossedNow slot has exactly one writer. Per-chunk counts are reduced after
// the join; the sum is associative, so any partition gives the same total.
// The light array is step-frozen and read-only here.
func moveVehicles(vehicles []Vehicle, x *Intersection, dt float64, mode Mode, workers int, crossedNow []bool) int {
	n := len(vehicles)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return moveChunk(vehicles, x, dt, mode, crossedNow, 0, n)
	}

	partials := make([]int, workers)
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			partials[w] = moveChunk(vehicles, x, dt, mode, crossedNow, start, end)
		}(w, start, end)
	}
	wg.Wait()

	total := 0
	for _, c := range partials {
		total += c
	}
	return total
}

func moveChunk(vehicles []Vehicle, x *Intersection, dt float64, mode Mode, crossedNow []bool, start, end int) int {
	count := 0
	for i := start; i < end; i++ {
		v := &vehicles[i]
		crossed := v.move(x.Light(v.lane), x.stopDistance, dt, mode)
		crossedNow[i] = crossed
		if crossed {
			count++
		}
	}
	return count
}
