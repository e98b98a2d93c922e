package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"tspga/internal/config"
	"tspga/internal/ga"
	"tspga/internal/sweep"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "configs/sweep.yaml", "path to config file")
	runs := flag.Int("runs", 0, "repetitions per grid cell (0 = config value)")
	workers := flag.Int("workers", 0, "parallel runs (0 = config value, then GOMAXPROCS)")
	generations := flag.Int("generations", 0, "generations per run (0 = config value)")
	outPath := flag.String("out", "", "result matrix CSV (empty = config value)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *runs > 0 {
		cfg.Sweep.Runs = *runs
	}
	if *workers > 0 {
		cfg.Sweep.Workers = *workers
	}
	if *generations > 0 {
		cfg.GA.Generations = *generations
	}
	if *outPath != "" {
		cfg.Sweep.OutputPath = *outPath
	}

	base, err := cfg.GAConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in GA config: %v\n", err)
		os.Exit(1)
	}

	grid := sweep.Grid{
		Layouts:       cfg.Sweep.Layouts,
		PointCounts:   cfg.Sweep.PointCounts,
		MutationRates: cfg.Sweep.MutationRates,
		Populations:   cfg.Sweep.Populations,
	}
	for _, name := range cfg.Sweep.Elites {
		policy, err := ga.ParseElitePolicy(name, cfg.GA.EliteFraction)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in sweep config: %v\n", err)
			os.Exit(1)
		}
		grid.Elites = append(grid.Elites, policy)
	}
	cases := grid.Cases()

	total := len(cases) * cfg.Sweep.Runs
	fmt.Printf("TSP sweep - %d cases x %d runs = %d runs, %d generations each\n",
		len(cases), cfg.Sweep.Runs, total, base.Generations)
	fmt.Println("---")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	done := 0
	runner := sweep.Runner{
		Base:    base,
		Extent:  cfg.Points.Extent,
		Seed:    cfg.Seed,
		Runs:    cfg.Sweep.Runs,
		Workers: cfg.Sweep.Workers,
		Progress: func(r sweep.RunResult) {
			done++
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "Warning: run %s (%s #%d) failed: %v\n", r.RunID, r.Case, r.Rep, r.Err)
				return
			}
			fmt.Printf("[%4d/%d] %-48s rep %d | Best: %10.4f @ gen %d\n",
				done, total, r.Case, r.Rep, r.BestCost, r.BestGeneration+1)
		},
	}

	start := time.Now()
	results, err := runner.Run(ctx, cases)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sweep interrupted: %v\n", err)
	}
	cells := sweep.Aggregate(results)

	if err := sweep.WriteCellsCSV(cfg.Sweep.OutputPath, cells); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	runsPath := strings.TrimSuffix(cfg.Sweep.OutputPath, ".csv") + "_runs.csv"
	if err := sweep.WriteRunsCSV(runsPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write run log: %v\n", err)
	}

	fmt.Println("---")
	fmt.Printf("Sweep complete in %v, %d failed runs\n", time.Since(start), sweep.Failed(results))
	fmt.Printf("Results: %s (runs: %s)\n", cfg.Sweep.OutputPath, runsPath)

	// Rank cells by mean + std of best tour length
	ranked := make([]sweep.CellStats, 0, len(cells))
	for _, c := range cells {
		if c.Runs > 0 {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RobustnessScore(1) < ranked[j].RobustnessScore(1)
	})
	for i := 0; i < len(ranked) && i < 5; i++ {
		c := ranked[i]
		fmt.Printf("%d. %-48s mean %.4f ± %.4f, best %.4f\n", i+1, c.Case, c.MeanCost, c.StdCost, c.BestCost)
	}

	if err != nil {
		os.Exit(1)
	}
}
