package logging

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"tspga/internal/ga"
)

// Logger handles per-generation output and artifact saving
type Logger struct {
	RunID string

	csvPath     string
	jsonPath    string
	csvFile     *os.File
	csvWriter   *csv.Writer
	jsonFile    *os.File
	console     io.Writer
	initialized bool
}

// NewLogger creates a new logger with a fresh run ID.
// Console output goes to stdout; pass a nil console to SetConsole to silence it.
func NewLogger(csvPath, jsonPath string) (*Logger, error) {
	l := &Logger{
		RunID:    uuid.NewString(),
		csvPath:  csvPath,
		jsonPath: jsonPath,
		console:  os.Stdout,
	}

	// Ensure directories exist
	if err := os.MkdirAll(filepath.Dir(csvPath), 0755); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return nil, err
	}

	return l, nil
}

// SetConsole redirects the human-readable summary line
func (l *Logger) SetConsole(w io.Writer) {
	l.console = w
}

// Init initializes the log files
func (l *Logger) Init() error {
	var err error

	l.csvFile, err = os.Create(l.csvPath)
	if err != nil {
		return err
	}
	l.csvWriter = csv.NewWriter(l.csvFile)

	header := []string{
		"run_id", "generation", "best_cost", "mean_cost", "worst_cost", "best_ever_cost",
		"improved", "elites", "children", "mutated", "swept",
	}
	if err := l.csvWriter.Write(header); err != nil {
		return err
	}

	l.jsonFile, err = os.OpenFile(l.jsonPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	l.initialized = true
	return nil
}

// Close flushes and closes all log files
func (l *Logger) Close() error {
	var firstErr error
	if l.csvWriter != nil {
		l.csvWriter.Flush()
		firstErr = l.csvWriter.Error()
	}
	if l.csvFile != nil {
		if err := l.csvFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if l.jsonFile != nil {
		if err := l.jsonFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.initialized = false
	return firstErr
}

// GenerationSummary holds per-generation statistics
type GenerationSummary struct {
	RunID        string  `json:"run_id"`
	Generation   int     `json:"generation"`
	BestCost     float64 `json:"best_cost"`
	MeanCost     float64 `json:"mean_cost"`
	WorstCost    float64 `json:"worst_cost"`
	BestEverCost float64 `json:"best_ever_cost"`
	Improved     bool    `json:"improved"`
	Elites       int     `json:"elites"`
	Children     int     `json:"children"`
	Mutated      int     `json:"mutated"`
	Swept        int     `json:"swept"` // children changed by the local-improvement pass
}

// Summarize converts engine stats into a log record
func (l *Logger) Summarize(s ga.GenerationStats) GenerationSummary {
	return GenerationSummary{
		RunID:        l.RunID,
		Generation:   s.Generation,
		BestCost:     s.BestCost,
		MeanCost:     s.MeanCost,
		WorstCost:    s.WorstCost,
		BestEverCost: s.BestEverCost,
		Improved:     s.Improved,
		Elites:       s.Breed.Elites,
		Children:     s.Breed.Children,
		Mutated:      s.Breed.Mutated,
		Swept:        s.Breed.Improved,
	}
}

// LogGeneration writes one generation to CSV, JSONL and the console
func (l *Logger) LogGeneration(s ga.GenerationStats) error {
	if !l.initialized {
		return nil
	}
	summary := l.Summarize(s)

	row := []string{
		summary.RunID,
		strconv.Itoa(summary.Generation),
		ftoa(summary.BestCost),
		ftoa(summary.MeanCost),
		ftoa(summary.WorstCost),
		ftoa(summary.BestEverCost),
		strconv.FormatBool(summary.Improved),
		strconv.Itoa(summary.Elites),
		strconv.Itoa(summary.Children),
		strconv.Itoa(summary.Mutated),
		strconv.Itoa(summary.Swept),
	}
	if err := l.csvWriter.Write(row); err != nil {
		return err
	}
	l.csvWriter.Flush()
	if err := l.csvWriter.Error(); err != nil {
		return err
	}

	jsonLine, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	if _, err := l.jsonFile.Write(append(jsonLine, '\n')); err != nil {
		return err
	}

	l.PrintGeneration(summary)
	return nil
}

// PrintGeneration writes the console line for a summary
func (l *Logger) PrintGeneration(s GenerationSummary) {
	if l.console == nil {
		return
	}
	mark := " "
	if s.Improved {
		mark = "*"
	}
	fmt.Fprintf(l.console, "Gen %4d |%s Best: %10.4f | Mean: %10.4f | Worst: %10.4f | Best ever: %10.4f | Mut: %d Swept: %d\n",
		s.Generation+1, mark, s.BestCost, s.MeanCost, s.WorstCost, s.BestEverCost, s.Mutated, s.Swept)
}

// LogResult prints the final run summary
func (l *Logger) LogResult(res *ga.Result) {
	if l.console == nil || res == nil {
		return
	}
	fmt.Fprintln(l.console, "---")
	fmt.Fprintf(l.console, "Run %s complete: %d generations, %d evaluations in %v\n",
		l.RunID, res.Generations, res.Evaluations, res.Duration)
	fmt.Fprintf(l.console, "Best distance: %.6f (fitness %.6g) found in generation %d, %d improvements, seed %d\n",
		res.BestCost, res.BestFitness, res.BestGeneration+1, res.Improvements, res.Seed)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
