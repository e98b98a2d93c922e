package ga

import (
	"fmt"
	"math/rand"
)

// Route is a closed tour: a permutation of point indices [0,n)
type Route []int

// RandomRoute returns a uniformly random permutation of [0,n) (Fisher–Yates)
func RandomRoute(n int, rng *rand.Rand) Route {
	r := make(Route, n)
	for i := range r {
		r[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		r[i], r[j] = r[j], r[i]
	}
	return r
}

// Clone returns an independent copy
func (r Route) Clone() Route {
	out := make(Route, len(r))
	copy(out, r)
	return out
}

// ValidateRoute checks that r is a permutation of [0,n)
func ValidateRoute(r Route, n int) error {
	if len(r) != n {
		return fmt.Errorf("%w: length must be %d (got %d)", ErrInvariantViolation, n, len(r))
	}
	seen := make([]bool, n)
	for i, v := range r {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: route[%d]=%d out of range [0,%d)", ErrInvariantViolation, i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: duplicate city %d", ErrInvariantViolation, v)
		}
		seen[v] = true
	}
	return nil
}
