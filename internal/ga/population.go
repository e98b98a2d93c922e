package ga

import (
	"math/rand"
	"sort"
)

// Individual is one candidate tour with its last computed score
type Individual struct {
	Route   Route
	Cost    float64
	Fitness float64
}

// Clone creates a deep copy of an individual
func (ind *Individual) Clone() *Individual {
	return &Individual{
		Route:   ind.Route.Clone(),
		Cost:    ind.Cost,
		Fitness: ind.Fitness,
	}
}

// Population is the ordered set of individuals of one generation
type Population struct {
	Members []*Individual
}

// NewPopulation creates size random routes over n cities
func NewPopulation(size, n int, rng *rand.Rand) *Population {
	p := &Population{Members: make([]*Individual, size)}
	for i := range p.Members {
		p.Members[i] = &Individual{Route: RandomRoute(n, rng)}
	}
	return p
}

// Size returns the population size
func (p *Population) Size() int {
	return len(p.Members)
}

// BestIndex returns the index of the highest fitness; ties go to the lowest index
func (p *Population) BestIndex() int {
	if len(p.Members) == 0 {
		return -1
	}
	best := 0
	for i, m := range p.Members[1:] {
		if m.Fitness > p.Members[best].Fitness {
			best = i + 1
		}
	}
	return best
}

// Best returns the individual with highest fitness
func (p *Population) Best() *Individual {
	i := p.BestIndex()
	if i < 0 {
		return nil
	}
	return p.Members[i]
}

// Ranked returns member indices ordered by fitness descending, stable on index
func (p *Population) Ranked() []int {
	idx := make([]int, len(p.Members))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.Members[idx[a]].Fitness > p.Members[idx[b]].Fitness
	})
	return idx
}

// TopK returns the k fittest individuals without reordering the population
func (p *Population) TopK(k int) []*Individual {
	if k > len(p.Members) {
		k = len(p.Members)
	}
	ranked := p.Ranked()
	out := make([]*Individual, k)
	for i := 0; i < k; i++ {
		out[i] = p.Members[ranked[i]]
	}
	return out
}

// FitnessInto writes every member's fitness into dst, growing it if needed
func (p *Population) FitnessInto(dst []float64) []float64 {
	if cap(dst) < len(p.Members) {
		dst = make([]float64, len(p.Members))
	}
	dst = dst[:len(p.Members)]
	for i, m := range p.Members {
		dst[i] = m.Fitness
	}
	return dst
}
