package sweep

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"tspga/internal/ga"
	"tspga/internal/geom"
)

// RunResult is the outcome of one independent optimization
type RunResult struct {
	RunID     string
	CaseIndex int
	Case      Case
	Rep       int
	Seed      int64 // engine seed
	PointSeed int64

	BestCost       float64
	BestGeneration int
	Improvements   int
	Evaluations    int
	Duration       time.Duration
	Err            error
}

// Runner executes every grid case Runs times on a bounded worker pool
type Runner struct {
	Base    ga.Config // generations, tournament size and sweep mode shared by all cases
	Extent  float64   // point layout extent, 0 = layout default
	Seed    int64
	Runs    int
	Workers int // 0 = GOMAXPROCS

	// Progress, if set, is called after each run. Calls are serialized.
	Progress func(RunResult)
}

// PointSeed returns the seed for repetition rep.
// It does not depend on the case, so every case of one repetition sees the same points.
func (r Runner) PointSeed(rep int) int64 {
	return r.Seed + int64(rep)
}

// RunSeed returns the engine seed for the run at flat index idx
func (r Runner) RunSeed(idx int) int64 {
	s := r.Seed + int64(idx) + 1
	if s == 0 {
		// 0 would mean a clock seed
		s = 1
	}
	return s
}

// Run executes all cases. Results are ordered by case, then repetition.
// Failed runs carry their error in RunResult.Err; the returned error is only set
// when ctx is cancelled, in which case unstarted runs report ctx.Err().
func (r Runner) Run(ctx context.Context, cases []Case) ([]RunResult, error) {
	if r.Runs < 1 {
		return nil, fmt.Errorf("%w: sweep runs must be >= 1 (got %d)", ga.ErrInvalidConfig, r.Runs)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("%w: sweep grid is empty", ga.ErrInvalidConfig)
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]RunResult, len(cases)*r.Runs)
	var mu sync.Mutex

	p := pool.New().WithMaxGoroutines(workers)
	for ci, c := range cases {
		for rep := 0; rep < r.Runs; rep++ {
			ci, c, rep := ci, c, rep
			idx := ci*r.Runs + rep
			p.Go(func() {
				res := r.runOne(ctx, ci, c, rep, idx)
				results[idx] = res
				if r.Progress != nil {
					mu.Lock()
					r.Progress(res)
					mu.Unlock()
				}
			})
		}
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (r Runner) runOne(ctx context.Context, ci int, c Case, rep, idx int) RunResult {
	res := RunResult{
		RunID:          uuid.NewString(),
		CaseIndex:      ci,
		Case:           c,
		Rep:            rep,
		Seed:           r.RunSeed(idx),
		PointSeed:      r.PointSeed(rep),
		BestGeneration: -1,
	}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	extent := r.Extent
	if extent == 0 {
		extent = geom.DefaultLimit
	}
	points, err := geom.Generate(c.Layout, c.Points, extent, rand.New(rand.NewSource(res.PointSeed)))
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", c, err)
		return res
	}

	cfg := r.Base
	cfg.Population = c.Population
	cfg.MutationRate = c.MutationRate
	cfg.Elite = c.Elite
	cfg.Seed = res.Seed

	out, err := ga.Optimize(points, cfg)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", c, err)
		return res
	}
	res.BestCost = out.BestCost
	res.BestGeneration = out.BestGeneration
	res.Improvements = out.Improvements
	res.Evaluations = out.Evaluations
	res.Duration = out.Duration
	return res
}

// Failed reports how many results carry an error other than cancellation
func Failed(results []RunResult) int {
	n := 0
	for _, res := range results {
		if res.Err != nil && !errors.Is(res.Err, context.Canceled) && !errors.Is(res.Err, context.DeadlineExceeded) {
			n++
		}
	}
	return n
}
