package eval

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tspga/internal/geom"
)

func unitSquare() geom.PointSet {
	return geom.PointSet{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestCostUnitSquare(t *testing.T) {
	e, err := New(unitSquare())
	require.NoError(t, err)

	c, err := e.Cost([]int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, c, 1e-12)

	// crossing tour: two sides and two diagonals
	c, err = e.Cost([]int{0, 2, 1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 2+2*math.Sqrt2, c, 1e-12)
}

func TestCostRejectsBadRoutes(t *testing.T) {
	e, err := New(unitSquare())
	require.NoError(t, err)

	_, err = e.Cost([]int{0, 1, 2})
	assert.Error(t, err)

	_, err = e.Cost([]int{0, 1, 2, 4})
	assert.Error(t, err)

	_, err = e.Cost([]int{-1, 1, 2, 3})
	assert.Error(t, err)
}

func TestCostInvariantUnderRotationAndReversal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := geom.Uniform(25, 15, rng)
	e, err := New(points)
	require.NoError(t, err)

	for trial := 0; trial < 20; trial++ {
		route := rng.Perm(len(points))
		base, err := e.Cost(route)
		require.NoError(t, err)

		for shift := 1; shift < len(route); shift++ {
			rotated := append(append([]int{}, route[shift:]...), route[:shift]...)
			c, err := e.Cost(rotated)
			require.NoError(t, err)
			assert.InDelta(t, base, c, 1e-9, "rotation by %d", shift)
		}

		reversed := make([]int, len(route))
		for i, v := range route {
			reversed[len(route)-1-i] = v
		}
		c, err := e.Cost(reversed)
		require.NoError(t, err)
		assert.InDelta(t, base, c, 1e-9, "reversal")
	}
}

func TestFitnessIsReciprocalOfCost(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	points := geom.Uniform(12, 15, rng)
	e, err := New(points)
	require.NoError(t, err)

	for trial := 0; trial < 10; trial++ {
		route := rng.Perm(len(points))
		c, err := e.Cost(route)
		require.NoError(t, err)
		f, err := e.Fitness(route)
		require.NoError(t, err)

		assert.Equal(t, 1/c, f)
		assert.Greater(t, f, 0.0)
	}
}

func TestCoincidentPointsAreDegenerate(t *testing.T) {
	_, err := New(geom.PointSet{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 0, Y: 0}})
	assert.ErrorIs(t, err, ErrDegenerateTour)
}

func TestFitnessOfZeroCost(t *testing.T) {
	_, err := FitnessOf(0)
	assert.ErrorIs(t, err, ErrDegenerateTour)

	f, err := FitnessOf(8)
	require.NoError(t, err)
	assert.Equal(t, 0.125, f)
}

func TestNewRejectsTooFewPoints(t *testing.T) {
	_, err := New(geom.PointSet{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, geom.ErrTooFewPoints)
}

func TestDistSymmetric(t *testing.T) {
	e, err := New(unitSquare())
	require.NoError(t, err)
	for a := 0; a < e.Size(); a++ {
		assert.Equal(t, 0.0, e.Dist(a, a))
		for b := 0; b < e.Size(); b++ {
			assert.Equal(t, e.Dist(a, b), e.Dist(b, a))
		}
	}
	assert.InDelta(t, math.Sqrt2, e.Dist(0, 2), 1e-12)
}
