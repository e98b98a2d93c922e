package ga

import (
	"math/rand"
)

// Distancer gives the distance between two cities by index
type Distancer interface {
	Dist(a, b int) float64
}

// SwapMutate exchanges two distinct random positions with probability rate.
// It reports whether a swap happened.
func SwapMutate(r Route, rate float64, rng *rand.Rand) bool {
	n := len(r)
	if n < 2 || rng.Float64() >= rate {
		return false
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	r[i], r[j] = r[j], r[i]
	return true
}

// LocalImprove makes one greedy forward pass over positions i = 1..n-2, swapping
// cities i and i+1 in place whenever the swapped order is strictly shorter.
// A swap at i changes what position i+1 sees, and the pass is not repeated, so the
// result is not a local optimum. It reports whether any swap happened.
func LocalImprove(r Route, d Distancer, mode SweepMode) bool {
	n := len(r)
	improved := false
	for i := 1; i < n-1; i++ {
		prev, a, b := r[i-1], r[i], r[i+1]

		var current, swapped float64
		switch mode {
		case SweepLegacy:
			current = d.Dist(prev, a) + d.Dist(a, b)
			swapped = d.Dist(prev, b) + d.Dist(b, a)
		default:
			next := r[(i+2)%n]
			current = d.Dist(prev, a) + d.Dist(b, next)
			swapped = d.Dist(prev, b) + d.Dist(a, next)
		}

		if swapped < current {
			r[i], r[i+1] = b, a
			improved = true
		}
	}
	return improved
}

// Mutate applies swap mutation followed by the local-improvement pass to a fresh child
func Mutate(r Route, rate float64, d Distancer, mode SweepMode, rng *rand.Rand) (mutated, improved bool) {
	mutated = SwapMutate(r, rate, rng)
	improved = LocalImprove(r, d, mode)
	return mutated, improved
}
