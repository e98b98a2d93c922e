package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCrossoverKnownChild(t *testing.T) {
	p1 := Route{0, 1, 2, 3, 4, 5, 6, 7}
	p2 := Route{7, 6, 5, 4, 3, 2, 1, 0}
	child := make(Route, len(p1))

	orderCrossoverInto(p1, p2, child, 2, 5, make([]bool, len(p1)))
	assert.Equal(t, Route{7, 6, 2, 3, 4, 5, 1, 0}, child)
}

func TestOrderCrossoverEmptySegmentFollowsSecondParent(t *testing.T) {
	p1 := Route{0, 1, 2, 3, 4}
	p2 := Route{3, 1, 4, 0, 2}
	for cut := 0; cut <= len(p1); cut++ {
		child := make(Route, len(p1))
		orderCrossoverInto(p1, p2, child, cut, cut, make([]bool, len(p1)))
		assert.Equal(t, p2, child, "cut=%d", cut)
	}
}

func TestOrderCrossoverKeepsSegment(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	p1 := RandomRoute(12, rng)
	p2 := RandomRoute(12, rng)
	child := make(Route, 12)

	orderCrossoverInto(p1, p2, child, 3, 9, make([]bool, 12))
	assert.Equal(t, p1[3:9], child[3:9])

	// The genes outside the segment keep p2's relative order.
	inSeg := make(map[int]bool)
	for _, g := range p1[3:9] {
		inSeg[g] = true
	}
	var want, got []int
	for _, g := range p2 {
		if !inSeg[g] {
			want = append(want, g)
		}
	}
	got = append(got, child[:3]...)
	got = append(got, child[9:]...)
	assert.Equal(t, want, got)
}

// Every cut pair over every second parent of a small instance.
func TestOrderCrossoverExhaustivePermutation(t *testing.T) {
	const n = 5
	p1 := Route{2, 4, 0, 3, 1}
	used := make([]bool, n)
	child := make(Route, n)

	count := 0
	forEachPermutation(n, func(p2 Route) {
		for start := 0; start <= n; start++ {
			for end := start; end <= n; end++ {
				orderCrossoverInto(p1, p2, child, start, end, used)
				require.NoError(t, ValidateRoute(child, n), "p2=%v cut=[%d,%d)", p2, start, end)
				count++
			}
		}
	})
	assert.Equal(t, 120*21, count)
}

func TestOrderCrossoverRandomParents(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for _, n := range []int{2, 3, 4, 7, 50, 150} {
		for trial := 0; trial < 200; trial++ {
			p1 := RandomRoute(n, rng)
			p2 := RandomRoute(n, rng)
			child := OrderCrossover(p1, p2, rng)
			require.NoError(t, ValidateRoute(child, n), "n=%d", n)
		}
	}
}

func TestCutPointsDistinctAndOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		a, b := cutPoints(6, rng)
		assert.Less(t, a, b)
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, b, 6)
	}
}

func forEachPermutation(n int, fn func(Route)) {
	r := make(Route, n)
	for i := range r {
		r[i] = i
	}
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			fn(r)
			return
		}
		for i := k; i < n; i++ {
			r[k], r[i] = r[i], r[k]
			rec(k + 1)
			r[k], r[i] = r[i], r[k]
		}
	}
	rec(0)
}
