package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"tspga/internal/config"
	"tspga/internal/ga"
	"tspga/internal/geom"
	"tspga/internal/logging"
	"tspga/internal/plot"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "configs/uniform.yaml", "path to config file (empty = built-in defaults)")
	generations := flag.Int("generations", 0, "number of generations to run (0 = config value)")
	seed := flag.Int64("seed", 0, "random seed override (0 = config value)")
	check := flag.Bool("check", false, "validate every child route as it is built")
	noPlot := flag.Bool("no-plot", false, "disable route and history plots")
	flag.Parse()

	// Load config
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *generations > 0 {
		cfg.GA.Generations = *generations
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *check {
		cfg.GA.CheckInvariants = true
	}
	if *noPlot {
		cfg.Plot.Enabled = false
	}

	gaCfg, err := cfg.GAConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in GA config: %v\n", err)
		os.Exit(1)
	}
	points, err := cfg.PointSet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building points: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("TSP evolver - Layout: %s, Points: %d\n", cfg.Points.Layout, len(points))
	fmt.Printf("Config: %s\n", *configPath)
	fmt.Printf("Population: %d, Generations: %d, Mutation: %g, Tournament K: %d\n",
		gaCfg.Population, gaCfg.Generations, gaCfg.MutationRate, gaCfg.TournamentSize)
	fmt.Printf("Elite: %s, Sweep: %s\n", gaCfg.Elite, gaCfg.Sweep)
	fmt.Println("---")

	// Create logger
	logger, err := logging.NewLogger(cfg.Logging.CSVPath, cfg.Logging.JSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	observer := func(s ga.GenerationStats) {
		// 1. Log generation summary
		if cfg.Logging.EveryGenSummary || s.Generation%cfg.Logging.SummaryEvery == 0 {
			if err := logger.LogGeneration(s); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to log generation %d: %v\n", s.Generation, err)
			}
		}

		// 2. Save route snapshot
		if cfg.Logging.SnapshotEvery > 0 && s.Generation%cfg.Logging.SnapshotEvery == 0 {
			snap := logging.NewSnapshot(logger.RunID, s.Generation, s.BestCost, points, s.BestRoute)
			if err := snap.Save(logging.SnapshotPath(cfg.Logging.ArtifactsDir, s.Generation)); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to save snapshot: %v\n", err)
			}
		}

		// 3. Plot the generation's best route
		if cfg.Plot.Enabled && s.Generation%cfg.Plot.Every == 0 {
			path := filepath.Join(cfg.Plot.Dir, fmt.Sprintf("route_gen%d.png", s.Generation))
			title := fmt.Sprintf("Generation %d: %.4f", s.Generation+1, s.BestCost)
			if err := plot.Route(points, s.BestRoute, title, path, cfg.Plot.SizeIn); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to plot route: %v\n", err)
			}
		}
	}

	// Plot a random starting route for comparison with the result
	if cfg.Plot.Enabled {
		if _, err := plotInitialRoute(points, cfg.Seed, cfg.Plot.Dir, cfg.Plot.SizeIn); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to plot initial route: %v\n", err)
		}
	}

	// Run
	res, err := ga.Optimize(points, gaCfg, observer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during optimization: %v\n", err)
		os.Exit(1)
	}
	logger.LogResult(res)

	// Save final snapshot
	final := logging.NewSnapshot(logger.RunID, res.BestGeneration, res.BestCost, points, res.BestRoute)
	final.Seed = res.Seed
	if err := final.Save(logging.SnapshotPath(cfg.Logging.ArtifactsDir, -1)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save final snapshot: %v\n", err)
	}

	if cfg.Plot.Enabled {
		title := fmt.Sprintf("Best route: %.4f (generation %d)", res.BestCost, res.BestGeneration+1)
		if err := plot.Route(points, res.BestRoute, title, filepath.Join(cfg.Plot.Dir, "route_final.png"), cfg.Plot.SizeIn); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to plot final route: %v\n", err)
		}
		series := []plot.Series{
			{Name: "best", Values: res.History},
			{Name: "mean", Values: res.MeanHistory},
		}
		if err := plot.History(series, "Tour length per generation", filepath.Join(cfg.Plot.Dir, "history.png")); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to plot history: %v\n", err)
		}
	}
}

// plotInitialRoute draws a random route over points and returns the image path.
// It uses its own rng so the run itself is not perturbed.
func plotInitialRoute(points geom.PointSet, seed int64, dir string, sizeIn float64) (string, error) {
	route := ga.RandomRoute(len(points), rand.New(rand.NewSource(seed)))
	path := filepath.Join(dir, "route_initial.png")
	title := fmt.Sprintf("Random route: %.4f", tourLength(points, route))
	return path, plot.Route(points, route, title, path, sizeIn)
}

func tourLength(points geom.PointSet, route ga.Route) float64 {
	var total float64
	prev := route[len(route)-1]
	for _, city := range route {
		total += geom.Distance(points[prev], points[city])
		prev = city
	}
	return total
}
