package ga

import (
	"math/rand"
)

// Tournament performs tournament selection without replacement inside one tournament.
// Separate calls are independent, so an individual can win several tournaments.
// A Tournament keeps scratch space and must not be shared between goroutines.
type Tournament struct {
	Size int
	idx  []int
}

// NewTournament creates a tournament of k contenders
func NewTournament(k int) *Tournament {
	return &Tournament{Size: k}
}

// Select draws Size distinct indices uniformly and returns the one with maximum fitness.
// Ties go to the contender drawn first.
func (t *Tournament) Select(fitness []float64, rng *rand.Rand) int {
	n := len(fitness)
	if n == 0 {
		return -1
	}
	if len(t.idx) != n {
		t.idx = make([]int, n)
		for i := range t.idx {
			t.idx[i] = i
		}
	}
	k := t.Size
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	// Partial Fisher–Yates: the first k slots become a uniform sample.
	// idx stays a permutation between calls, which keeps the sample uniform.
	best := -1
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
		cand := t.idx[i]
		if best < 0 || fitness[cand] > fitness[best] {
			best = cand
		}
	}
	return best
}

// SelectParents runs two independent tournaments
func (t *Tournament) SelectParents(fitness []float64, rng *rand.Rand) (int, int) {
	p1 := t.Select(fitness, rng)
	p2 := t.Select(fitness, rng)
	return p1, p2
}
