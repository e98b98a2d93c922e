package eval

import (
	"errors"
	"fmt"

	"tspga/internal/geom"
)

// ErrDegenerateTour is returned when a tour has zero length, so its fitness is undefined
var ErrDegenerateTour = errors.New("eval: degenerate tour")

// Evaluator scores routes over a fixed point set.
// Distances are computed once at construction; the evaluator is read-only afterwards
// and safe to share between goroutines.
type Evaluator struct {
	n    int
	dist []float64 // row-major n*n
}

// New builds an evaluator for points.
// Coincident points are rejected with ErrDegenerateTour since their fitness is undefined.
func New(points geom.PointSet) (*Evaluator, error) {
	if err := points.Validate(); err != nil {
		return nil, err
	}
	if i, j, ok := points.Coincident(); ok {
		return nil, fmt.Errorf("%w: points %d and %d coincide at (%v, %v)",
			ErrDegenerateTour, i, j, points[i].X, points[i].Y)
	}

	n := len(points)
	e := &Evaluator{
		n:    n,
		dist: make([]float64, n*n),
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := geom.Distance(points[i], points[j])
			e.dist[i*n+j] = d
			e.dist[j*n+i] = d
		}
	}
	return e, nil
}

// Size returns the number of points
func (e *Evaluator) Size() int {
	return e.n
}

// Dist returns the distance between points a and b
func (e *Evaluator) Dist(a, b int) float64 {
	return e.dist[a*e.n+b]
}

// Cost returns the closed tour length, including the edge back to the first city
func (e *Evaluator) Cost(route []int) (float64, error) {
	if len(route) != e.n {
		return 0, fmt.Errorf("eval: route length must be %d (got %d)", e.n, len(route))
	}
	for i, city := range route {
		if city < 0 || city >= e.n {
			return 0, fmt.Errorf("eval: route[%d]=%d out of range [0,%d)", i, city, e.n)
		}
	}
	var total float64
	prev := route[e.n-1]
	for _, city := range route {
		total += e.dist[prev*e.n+city]
		prev = city
	}
	return total, nil
}

// Fitness returns 1/Cost. A zero-length tour yields ErrDegenerateTour.
func (e *Evaluator) Fitness(route []int) (float64, error) {
	c, err := e.Cost(route)
	if err != nil {
		return 0, err
	}
	return FitnessOf(c)
}

// FitnessOf converts a tour length into fitness
func FitnessOf(cost float64) (float64, error) {
	if cost == 0 {
		return 0, ErrDegenerateTour
	}
	return 1 / cost, nil
}
