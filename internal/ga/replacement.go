package ga

import (
	"fmt"
	"math/rand"
)

// BreedStats counts what happened while building one generation
type BreedStats struct {
	Elites   int
	Children int
	Mutated  int
	Improved int
}

// Breeder builds the next population from a scored one.
// It owns scratch buffers and a random source, so it must not be shared between goroutines.
type Breeder struct {
	cfg        Config
	dist       Distancer
	rng        *rand.Rand
	tournament *Tournament
	used       []bool
	fitness    []float64

	// Last holds the counters of the most recent Next call
	Last BreedStats
}

// NewBreeder returns a breeder for cfg
func NewBreeder(cfg Config, d Distancer, rng *rand.Rand) *Breeder {
	return &Breeder{
		cfg:        cfg,
		dist:       d,
		rng:        rng,
		tournament: NewTournament(cfg.TournamentSize),
	}
}

// Next returns a population of the same size as pop: elites first (deep copies,
// fittest first), then children from tournament selection, OX1 crossover and
// mutation plus local improvement. pop must already be scored.
func (b *Breeder) Next(pop *Population) (*Population, error) {
	size := pop.Size()
	next := &Population{Members: make([]*Individual, 0, size)}
	b.Last = BreedStats{}

	// Elites are cloned so later in-place operators can never reach them through an alias.
	elites := b.cfg.Elite.Count(size)
	if elites > 0 {
		ranked := pop.Ranked()
		for _, idx := range ranked[:elites] {
			next.Members = append(next.Members, pop.Members[idx].Clone())
		}
	}
	b.Last.Elites = elites

	if len(next.Members) == size {
		return next, nil
	}

	n := len(pop.Members[0].Route)
	if len(b.used) != n {
		b.used = make([]bool, n)
	}
	b.fitness = pop.FitnessInto(b.fitness)

	for len(next.Members) < size {
		i1, i2 := b.tournament.SelectParents(b.fitness, b.rng)
		p1, p2 := pop.Members[i1].Route, pop.Members[i2].Route

		child := make(Route, n)
		start, end := cutPoints(n, b.rng)
		orderCrossoverInto(p1, p2, child, start, end, b.used)

		mutated, improved := Mutate(child, b.cfg.MutationRate, b.dist, b.cfg.Sweep, b.rng)
		if mutated {
			b.Last.Mutated++
		}
		if improved {
			b.Last.Improved++
		}

		if b.cfg.CheckInvariants {
			if err := ValidateRoute(child, n); err != nil {
				return nil, fmt.Errorf("child %d of parents %d,%d: %w", len(next.Members), i1, i2, err)
			}
		}
		next.Members = append(next.Members, &Individual{Route: child})
		b.Last.Children++
	}
	return next, nil
}

// NextGeneration is a one-shot wrapper around Breeder.Next
func NextGeneration(pop *Population, cfg Config, d Distancer, rng *rand.Rand) (*Population, error) {
	return NewBreeder(cfg, d, rng).Next(pop)
}
