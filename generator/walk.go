package generator

import "math/rand"

// Both generators drive an independent mid price through the same bounded
// random walk: a uniform step in [-walkStep, walkStep] clamped to
// [minMid, maxMid].
const (
	startMid = 50000.0
	minMid   = 40000.0
	maxMid   = 60000.0
	walkStep = 10.0
)

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func stepMid(rng *rand.Rand, mid float64) float64 {
	mid += uniform(rng, -walkStep, walkStep)
	if mid < minMid {
		mid = minMid
	}
	if mid > maxMid {
		mid = maxMid
	}
	return mid
}
