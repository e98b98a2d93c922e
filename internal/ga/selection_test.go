package ga

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTournamentFullSizeReturnsBest(t *testing.T) {
	fitness := []float64{0.1, 0.7, 0.3, 0.7, 0.2}
	tour := NewTournament(len(fitness))
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		got := tour.Select(fitness, rng)
		assert.Equal(t, 0.7, fitness[got])
	}
}

func TestTournamentDrawsWithoutReplacement(t *testing.T) {
	// With 2 distinct contenders out of 3, the best is in the tournament 2/3 of the time.
	// Drawing with replacement would give 5/9.
	fitness := []float64{3, 2, 1}
	tour := NewTournament(2)
	rng := rand.New(rand.NewSource(5))

	const trials = 30000
	wins := 0
	for i := 0; i < trials; i++ {
		if tour.Select(fitness, rng) == 0 {
			wins++
		}
	}
	assert.InDelta(t, 2.0/3.0, float64(wins)/trials, 0.02)
}

func TestTournamentSizeOneIsUniform(t *testing.T) {
	fitness := make([]float64, 10)
	for i := range fitness {
		fitness[i] = float64(i)
	}
	tour := NewTournament(1)
	rng := rand.New(rand.NewSource(9))

	counts := make([]int, len(fitness))
	for i := 0; i < 10000; i++ {
		counts[tour.Select(fitness, rng)]++
	}
	for i, c := range counts {
		assert.InDelta(t, 1000, c, 150, "index %d", i)
	}
}

func TestTournamentDoesNotModifyFitness(t *testing.T) {
	fitness := []float64{0.5, 0.1, 0.9, 0.3}
	before := append([]float64(nil), fitness...)
	tour := NewTournament(3)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		tour.SelectParents(fitness, rng)
	}
	assert.Equal(t, before, fitness)
}

func TestTournamentDeterministicForSeed(t *testing.T) {
	fitness := []float64{1, 1, 1, 1, 2, 2, 3, 3}
	run := func() []int {
		tour := NewTournament(3)
		rng := rand.New(rand.NewSource(77))
		out := make([]int, 100)
		for i := range out {
			out[i] = tour.Select(fitness, rng)
		}
		return out
	}
	assert.Equal(t, run(), run())
}
