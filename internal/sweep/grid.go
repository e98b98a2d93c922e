package sweep

import (
	"fmt"
	"strconv"

	"tspga/internal/ga"
)

// Case is one cell of the parameter grid
type Case struct {
	Layout       string
	Points       int
	MutationRate float64
	Population   int
	Elite        ga.ElitePolicy
}

func (c Case) String() string {
	return fmt.Sprintf("%s/n=%d/mut=%s/pop=%d/elite=%s",
		c.Layout, c.Points, strconv.FormatFloat(c.MutationRate, 'g', -1, 64), c.Population, c.Elite)
}

// Grid lists the values swept along each axis
type Grid struct {
	Layouts       []string
	PointCounts   []int
	MutationRates []float64
	Populations   []int
	Elites        []ga.ElitePolicy
}

// Cases expands the grid into its cross product.
// Layout and point count vary slowest so runs over one point set stay adjacent.
func (g Grid) Cases() []Case {
	total := len(g.Layouts) * len(g.PointCounts) * len(g.MutationRates) * len(g.Populations) * len(g.Elites)
	cases := make([]Case, 0, total)
	for _, layout := range g.Layouts {
		for _, n := range g.PointCounts {
			for _, mut := range g.MutationRates {
				for _, pop := range g.Populations {
					for _, elite := range g.Elites {
						cases = append(cases, Case{
							Layout:       layout,
							Points:       n,
							MutationRate: mut,
							Population:   pop,
							Elite:        elite,
						})
					}
				}
			}
		}
	}
	return cases
}
