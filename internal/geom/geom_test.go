package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same point", Point{1, 1}, Point{1, 1}, 0},
		{"3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
		{"horizontal", Point{0, 2}, Point{7, 2}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.p, tt.q), 1e-12)
			assert.InDelta(t, tt.want, Distance(tt.q, tt.p), 1e-12, "distance must be symmetric")
		})
	}
}

func TestPointSetValidate(t *testing.T) {
	require.NoError(t, PointSet{{0, 0}, {1, 0}, {0, 1}}.Validate())

	err := PointSet{{0, 0}, {1, 0}}.Validate()
	assert.ErrorIs(t, err, ErrTooFewPoints)

	err = PointSet{{0, 0}, {math.NaN(), 0}, {0, 1}}.Validate()
	assert.ErrorIs(t, err, ErrNonFinite)

	err = PointSet{{0, 0}, {1, math.Inf(1)}, {0, 1}}.Validate()
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestCoincident(t *testing.T) {
	i, j, ok := PointSet{{0, 0}, {1, 0}, {2, 2}}.Coincident()
	assert.False(t, ok)
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)

	i, j, ok = PointSet{{0, 0}, {1, 0}, {2, 2}, {1, 0}}.Coincident()
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 3, j)
}

func TestUniformStaysInSquare(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ps := Uniform(500, 15, rng)
	require.Len(t, ps, 500)

	lo, hi := ps.Bounds()
	assert.GreaterOrEqual(t, lo.X, -15.0)
	assert.GreaterOrEqual(t, lo.Y, -15.0)
	assert.LessOrEqual(t, hi.X, 15.0)
	assert.LessOrEqual(t, hi.Y, 15.0)
}

func TestCircleEquallySpaced(t *testing.T) {
	ps := Circle(12, 15)
	require.Len(t, ps, 12)

	side := Distance(ps[0], ps[1])
	for i := range ps {
		assert.InDelta(t, 15.0, math.Hypot(ps[i].X, ps[i].Y), 1e-9)
		assert.InDelta(t, side, Distance(ps[i], ps[(i+1)%len(ps)]), 1e-9)
	}
	_, _, dup := ps.Coincident()
	assert.False(t, dup, "endpoint must not be repeated")
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	ps, err := Generate(LayoutUniform, 10, 0, rng)
	require.NoError(t, err)
	assert.Len(t, ps, 10)

	ps, err = Generate(LayoutCircle, 8, 2, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, ps[0].X, 1e-12)

	_, err = Generate("spiral", 8, 1, rng)
	assert.Error(t, err)

	_, err = Generate(LayoutCircle, 2, 1, nil)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestCloneIsIndependent(t *testing.T) {
	ps := PointSet{{0, 0}, {1, 2}, {3, 4}}
	c := ps.Clone()
	require.Equal(t, ps, c)

	c[1].X = 7
	assert.Equal(t, 1.0, ps[1].X)
}
