package sweep

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// WriteRunsCSV writes one row per run
func WriteRunsCSV(path string, results []RunResult) error {
	return writeCSV(path, []string{
		"run_id", "case", "layout", "points", "mutation_rate", "population", "elite",
		"rep", "seed", "point_seed", "best_cost", "best_generation", "improvements",
		"evaluations", "duration_ms", "error",
	}, len(results), func(i int) []string {
		r := results[i]
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		return []string{
			r.RunID,
			itoa(r.CaseIndex),
			r.Case.Layout,
			itoa(r.Case.Points),
			ftoa(r.Case.MutationRate),
			itoa(r.Case.Population),
			r.Case.Elite.String(),
			itoa(r.Rep),
			strconv.FormatInt(r.Seed, 10),
			strconv.FormatInt(r.PointSeed, 10),
			ftoa(r.BestCost),
			itoa(r.BestGeneration),
			itoa(r.Improvements),
			itoa(r.Evaluations),
			ftoa(float64(r.Duration.Microseconds()) / 1000.0),
			errText,
		}
	})
}

// WriteCellsCSV writes the aggregated result matrix, one row per grid case
func WriteCellsCSV(path string, cells []CellStats) error {
	return writeCSV(path, []string{
		"layout", "points", "mutation_rate", "population", "elite", "runs", "failed",
		"cost_best", "cost_mean", "cost_std", "best_gen_mean", "time_mean_ms",
	}, len(cells), func(i int) []string {
		c := cells[i]
		return []string{
			c.Case.Layout,
			itoa(c.Case.Points),
			ftoa(c.Case.MutationRate),
			itoa(c.Case.Population),
			c.Case.Elite.String(),
			itoa(c.Runs),
			itoa(c.Failed),
			ftoa(c.BestCost),
			ftoa(c.MeanCost),
			ftoa(c.StdCost),
			ftoa(c.MeanBestGeneration),
			ftoa(float64(c.MeanDuration.Microseconds()) / 1000.0),
		}
	})
}

func writeCSV(path string, header []string, n int, row func(int) []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
