package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tspga/internal/ga"
	"tspga/internal/geom"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("points:\n  layout: circle\n  count: 40\n"))
	require.NoError(t, err)

	assert.Equal(t, int64(1337), cfg.Seed)
	assert.Equal(t, geom.LayoutCircle, cfg.Points.Layout)
	assert.Equal(t, 40, cfg.Points.Count)
	assert.Equal(t, 100, cfg.GA.Population)
	assert.Equal(t, 3, cfg.GA.TournamentK)
	assert.Equal(t, "single", cfg.GA.Elite)
	assert.Equal(t, "exact", cfg.GA.Sweep)
	assert.Equal(t, 10, cfg.Plot.Every)
	assert.Equal(t, []int{40}, cfg.Sweep.PointCounts)
}

func TestParsePresetThenOverride(t *testing.T) {
	cfg, err := Parse([]byte("preset: top-fraction\nga:\n  generations: 30\n"))
	require.NoError(t, err)

	gc, err := cfg.GAConfig()
	require.NoError(t, err)
	assert.Equal(t, 200, gc.Population)
	assert.Equal(t, 30, gc.Generations)
	assert.Equal(t, 5, gc.TournamentSize)
	assert.Equal(t, ga.TopFraction(0.05), gc.Elite)
	assert.Equal(t, int64(1337), gc.Seed)
}

func TestParseUnknownPreset(t *testing.T) {
	_, err := Parse([]byte("preset: fastest\n"))
	assert.ErrorIs(t, err, ga.ErrInvalidConfig)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("ga: [unclosed"))
	assert.Error(t, err)
}

func TestGAConfigRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.GA.Population = 1
	_, err := cfg.GAConfig()
	assert.ErrorIs(t, err, ga.ErrInvalidConfig)

	cfg = Default()
	cfg.GA.Elite = "most"
	_, err = cfg.GAConfig()
	assert.ErrorIs(t, err, ga.ErrInvalidConfig)

	cfg = Default()
	cfg.GA.Sweep = "2opt"
	_, err = cfg.GAConfig()
	assert.ErrorIs(t, err, ga.ErrInvalidConfig)
}

func TestPointSetIsReproducible(t *testing.T) {
	cfg := Default()
	a, err := cfg.PointSet()
	require.NoError(t, err)
	b, err := cfg.PointSet()
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, cfg.Points.Count)
}

func TestLoadPointsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "square.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- {x: 0, y: 0}\n- {x: 1, y: 0}\n- {x: 1, y: 1}\n- {x: 0, y: 1}\n"), 0o644))

	cfg := Default()
	cfg.Points.Layout = "file"
	cfg.Points.File = path
	ps, err := cfg.PointSet()
	require.NoError(t, err)
	assert.Equal(t, geom.PointSet{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, ps)

	cfg.Points.File = ""
	_, err = cfg.PointSet()
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nga:\n  elite: none\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)

	gc, err := cfg.GAConfig()
	require.NoError(t, err)
	assert.Equal(t, ga.EliteNone, gc.Elite.Kind)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
