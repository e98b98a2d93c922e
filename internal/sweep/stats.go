package sweep

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// CellStats aggregates the runs of one grid case
type CellStats struct {
	Case   Case
	Runs   int // successful runs
	Failed int

	BestCost float64
	MeanCost float64
	StdCost  float64 // sample standard deviation, 0 with fewer than two runs

	MeanBestGeneration float64
	MeanDuration       time.Duration
}

// Aggregate groups results by case, in first-seen case order
func Aggregate(results []RunResult) []CellStats {
	order := make([]int, 0)
	byCase := make(map[int][]RunResult)
	for _, res := range results {
		if _, ok := byCase[res.CaseIndex]; !ok {
			order = append(order, res.CaseIndex)
		}
		byCase[res.CaseIndex] = append(byCase[res.CaseIndex], res)
	}

	cells := make([]CellStats, 0, len(order))
	for _, ci := range order {
		cells = append(cells, aggregateCell(byCase[ci]))
	}
	return cells
}

func aggregateCell(runs []RunResult) CellStats {
	cell := CellStats{Case: runs[0].Case}

	costs := make([]float64, 0, len(runs))
	gens := make([]float64, 0, len(runs))
	durs := make([]float64, 0, len(runs))
	for _, res := range runs {
		if res.Err != nil {
			cell.Failed++
			continue
		}
		costs = append(costs, res.BestCost)
		gens = append(gens, float64(res.BestGeneration))
		durs = append(durs, float64(res.Duration))
	}
	cell.Runs = len(costs)
	if cell.Runs == 0 {
		cell.BestCost = math.NaN()
		cell.MeanCost = math.NaN()
		cell.StdCost = math.NaN()
		cell.MeanBestGeneration = math.NaN()
		return cell
	}

	cell.BestCost = costs[0]
	for _, c := range costs[1:] {
		if c < cell.BestCost {
			cell.BestCost = c
		}
	}
	cell.MeanCost = stat.Mean(costs, nil)
	if cell.Runs > 1 {
		cell.StdCost = stat.StdDev(costs, nil)
	}
	cell.MeanBestGeneration = stat.Mean(gens, nil)
	cell.MeanDuration = time.Duration(stat.Mean(durs, nil))
	return cell
}

// RobustnessScore ranks cells by mean + lambda * std of tour length; lower is better
func (c CellStats) RobustnessScore(lambda float64) float64 {
	return c.MeanCost + lambda*c.StdCost
}
