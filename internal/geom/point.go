package geom

import (
	"errors"
	"fmt"
	"math"
)

// MinPoints is the smallest point set a tour can be built over
const MinPoints = 3

// ErrTooFewPoints is returned when a point set is smaller than MinPoints
var ErrTooFewPoints = errors.New("geom: too few points")

// ErrNonFinite is returned when a coordinate is NaN or infinite
var ErrNonFinite = errors.New("geom: non-finite coordinate")

// Point is a coordinate in the plane
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PointSet is an ordered, read-only sequence of points.
// Routes index into it, so its order must not change during a run.
type PointSet []Point

// Distance returns the Euclidean distance between p and q
func Distance(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Validate checks that the set is large enough and every coordinate is finite
func (ps PointSet) Validate() error {
	if len(ps) < MinPoints {
		return fmt.Errorf("%w: need at least %d (got %d)", ErrTooFewPoints, MinPoints, len(ps))
	}
	for i, p := range ps {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d = (%v, %v)", ErrNonFinite, i, p.X, p.Y)
		}
	}
	return nil
}

// Coincident returns the first pair of indices i < j that share coordinates
func (ps PointSet) Coincident() (int, int, bool) {
	seen := make(map[Point]int, len(ps))
	for j, p := range ps {
		if i, ok := seen[p]; ok {
			return i, j, true
		}
		seen[p] = j
	}
	return -1, -1, false
}

// Bounds returns the lower-left and upper-right corners of the bounding box
func (ps PointSet) Bounds() (Point, Point) {
	if len(ps) == 0 {
		return Point{}, Point{}
	}
	lo, hi := ps[0], ps[0]
	for _, p := range ps[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// Clone returns an independent copy of the set
func (ps PointSet) Clone() PointSet {
	out := make(PointSet, len(ps))
	copy(out, ps)
	return out
}
