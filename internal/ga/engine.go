package ga

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"tspga/internal/eval"
	"tspga/internal/geom"
)

// State is the driver's position in its generation loop
type State int

const (
	StateInitializing State = iota
	StateEvaluating
	StateAdvancing
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateEvaluating:
		return "evaluating"
	case StateAdvancing:
		return "advancing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// GenerationStats summarizes one evaluated generation
type GenerationStats struct {
	Generation   int
	BestCost     float64
	MeanCost     float64
	WorstCost    float64
	BestEverCost float64
	Improved     bool // best-ever strictly improved in this generation

	// BestRoute is the generation's best route. It aliases population memory: copy it to keep it.
	BestRoute Route

	Breed BreedStats // counters from building this generation (zero for generation 0)
}

// Observer is called once per generation after evaluation
type Observer func(GenerationStats)

// Result is the outcome of a completed run
type Result struct {
	BestRoute      Route
	BestCost       float64
	BestFitness    float64
	BestGeneration int       // last generation where best-ever fitness strictly improved
	History        []float64 // best tour length per generation
	MeanHistory    []float64 // mean tour length per generation
	Generations    int
	Improvements   int
	Evaluations    int
	Seed           int64
	Duration       time.Duration
}

// Optimize runs the generational search over points. It always runs cfg.Generations
// generations; there is no early stop. Errors are returned unmodified apart from
// added context, and no partial result is produced.
func Optimize(points geom.PointSet, cfg Config, observers ...Observer) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := points.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	rng, seed := cfg.newRand()
	e := &engine{
		cfg:       cfg,
		points:    points,
		rng:       rng,
		observers: observers,
		res: &Result{
			BestGeneration: -1,
			History:        make([]float64, 0, cfg.Generations),
			MeanHistory:    make([]float64, 0, cfg.Generations),
			Generations:    cfg.Generations,
			Seed:           seed,
		},
	}
	return e.run()
}

type engine struct {
	cfg       Config
	points    geom.PointSet
	rng       *rand.Rand
	observers []Observer

	state   State
	gen     int
	pop     *Population
	ev      *eval.Evaluator
	breeder *Breeder
	res     *Result
}

func (e *engine) run() (*Result, error) {
	start := time.Now()
	for {
		switch e.state {
		case StateInitializing:
			e.pop = NewPopulation(e.cfg.Population, len(e.points), e.rng)
			e.state = StateEvaluating

		case StateEvaluating:
			if err := e.evaluate(); err != nil {
				return nil, fmt.Errorf("generation %d: %w", e.gen, err)
			}
			e.state = StateAdvancing

		case StateAdvancing:
			e.gen++
			// The population after the last evaluation would never be scored, so it is not built.
			if e.gen >= e.cfg.Generations {
				e.state = StateTerminated
				continue
			}
			next, err := e.breeder.Next(e.pop)
			if err != nil {
				return nil, fmt.Errorf("generation %d: %w", e.gen, err)
			}
			e.pop = next
			e.state = StateEvaluating

		case StateTerminated:
			e.res.Duration = time.Since(start)
			return e.res, nil
		}
	}
}

func (e *engine) evaluate() error {
	if e.ev == nil {
		ev, err := eval.New(e.points)
		if err != nil {
			return err
		}
		e.ev = ev
		e.breeder = NewBreeder(e.cfg, ev, e.rng)
	}

	var sum float64
	worst := math.Inf(-1)
	for i, m := range e.pop.Members {
		c, err := e.ev.Cost(m.Route)
		if err != nil {
			return fmt.Errorf("%w: individual %d: %v", ErrInvariantViolation, i, err)
		}
		f, err := eval.FitnessOf(c)
		if err != nil {
			return fmt.Errorf("individual %d: %w", i, err)
		}
		m.Cost, m.Fitness = c, f
		sum += c
		if c > worst {
			worst = c
		}
	}
	e.res.Evaluations += e.pop.Size()

	best := e.pop.Best()
	improved := best.Fitness > e.res.BestFitness
	if improved {
		e.res.BestRoute = best.Route.Clone()
		e.res.BestCost = best.Cost
		e.res.BestFitness = best.Fitness
		e.res.BestGeneration = e.gen
		e.res.Improvements++
	}
	mean := sum / float64(e.pop.Size())
	e.res.History = append(e.res.History, best.Cost)
	e.res.MeanHistory = append(e.res.MeanHistory, mean)

	if len(e.observers) > 0 {
		stats := GenerationStats{
			Generation:   e.gen,
			BestCost:     best.Cost,
			MeanCost:     mean,
			WorstCost:    worst,
			BestEverCost: e.res.BestCost,
			Improved:     improved,
			BestRoute:    best.Route,
		}
		if e.gen > 0 {
			stats.Breed = e.breeder.Last
		}
		for _, obs := range e.observers {
			obs(stats)
		}
	}
	return nil
}
