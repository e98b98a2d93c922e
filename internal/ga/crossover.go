package ga

import (
	"math/rand"
)

// OrderCrossover performs order crossover (OX1) and returns a new child.
// Two distinct cut points start < end are drawn from [0,n); p1[start:end] keeps its
// positions and the remaining slots are filled left to right with p2's genes in
// p2's order.
func OrderCrossover(p1, p2 Route, rng *rand.Rand) Route {
	n := len(p1)
	child := make(Route, n)
	start, end := cutPoints(n, rng)
	orderCrossoverInto(p1, p2, child, start, end, make([]bool, n))
	return child
}

// cutPoints draws two distinct indices from [0,n) and returns them ordered
func cutPoints(n int, rng *rand.Rand) (int, int) {
	if n < 2 {
		return 0, 0
	}
	a := rng.Intn(n)
	b := rng.Intn(n - 1)
	if b >= a {
		b++
	}
	if a > b {
		a, b = b, a
	}
	return a, b
}

// orderCrossoverInto writes the OX1 child for segment [start,end) into child.
// used is scratch of length n. start == end copies nothing from p1, so the child
// is p2 itself.
func orderCrossoverInto(p1, p2, child Route, start, end int, used []bool) {
	for i := range used {
		used[i] = false
	}
	for i := start; i < end; i++ {
		child[i] = p1[i]
		used[p1[i]] = true
	}

	pos := 0
	for _, gene := range p2 {
		if used[gene] {
			continue
		}
		if pos == start && end > start {
			pos = end
		}
		child[pos] = gene
		used[gene] = true
		pos++
	}
}
