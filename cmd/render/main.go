package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"tspga/internal/eval"
	"tspga/internal/logging"
	"tspga/internal/plot"
)

func main() {
	// Parse flags
	snapshotPath := flag.String("snapshot", "artifacts/route_final.json", "path to route snapshot JSON")
	outPath := flag.String("out", "", "output image (default: snapshot path with .png)")
	size := flag.Float64("size", plot.DefaultSizeIn, "image side in inches")
	flag.Parse()

	snap, err := logging.LoadSnapshot(*snapshotPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		os.Exit(1)
	}

	// Recompute the cost so a hand-edited snapshot is drawn with its true length
	cost := snap.Cost
	if e, err := eval.New(snap.Points); err == nil {
		if c, err := e.Cost(snap.Route); err == nil {
			if diff := c - snap.Cost; diff > 1e-9 || diff < -1e-9 {
				fmt.Fprintf(os.Stderr, "Warning: stored cost %.6f differs from recomputed %.6f\n", snap.Cost, c)
			}
			cost = c
		}
	} else {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	out := *outPath
	if out == "" {
		out = strings.TrimSuffix(*snapshotPath, ".json") + ".png"
	}

	fmt.Printf("Loaded snapshot from run %s, generation %d (cost=%.4f, %d points)\n",
		snap.RunID, snap.Generation+1, cost, len(snap.Points))

	title := fmt.Sprintf("Run %s, generation %d: %.4f", shortID(snap.RunID), snap.Generation+1, cost)
	if err := plot.Route(snap.Points, snap.Route, title, out, *size); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering route: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", out)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
