package geom

import (
	"fmt"
	"math"
	"math/rand"
)

// Layout names accepted by Generate
const (
	LayoutUniform = "uniform"
	LayoutCircle  = "circle"
)

// Default layout extents
const (
	DefaultLimit  = 15.0
	DefaultRadius = 15.0
)

// Uniform places n points uniformly at random in the square [-limit, limit]²
func Uniform(n int, limit float64, rng *rand.Rand) PointSet {
	ps := make(PointSet, n)
	for i := range ps {
		ps[i] = Point{
			X: -limit + 2*limit*rng.Float64(),
			Y: -limit + 2*limit*rng.Float64(),
		}
	}
	return ps
}

// Circle places n points at equal angular steps on a circle around the origin.
// The point at angle 2π is not repeated.
func Circle(n int, radius float64) PointSet {
	ps := make(PointSet, n)
	step := 2 * math.Pi / float64(n)
	for i := range ps {
		a := step * float64(i)
		ps[i] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return ps
}

// Generate builds a point set for the named layout.
// extent is the square half-side for uniform and the radius for circle.
func Generate(layout string, n int, extent float64, rng *rand.Rand) (PointSet, error) {
	if n < MinPoints {
		return nil, fmt.Errorf("%w: need at least %d (got %d)", ErrTooFewPoints, MinPoints, n)
	}
	switch layout {
	case LayoutUniform, "":
		if extent <= 0 {
			extent = DefaultLimit
		}
		if rng == nil {
			return nil, fmt.Errorf("geom: uniform layout needs a random source")
		}
		return Uniform(n, extent, rng), nil
	case LayoutCircle:
		if extent <= 0 {
			extent = DefaultRadius
		}
		return Circle(n, extent), nil
	default:
		return nil, fmt.Errorf("geom: unknown layout %q", layout)
	}
}
