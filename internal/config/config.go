package config

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"tspga/internal/ga"
	"tspga/internal/geom"
)

// Config is the root configuration structure
type Config struct {
	Seed    int64        `yaml:"seed"`
	Preset  string       `yaml:"preset"` // classic|interactive|top-fraction, applied before GA overrides
	Points  PointsConfig `yaml:"points"`
	GA      GAConfig     `yaml:"ga"`
	Logging LogConfig    `yaml:"logging"`
	Plot    PlotConfig   `yaml:"plot"`
	Sweep   SweepConfig  `yaml:"sweep"`
}

// PointsConfig defines the point set a run optimizes over
type PointsConfig struct {
	Layout string  `yaml:"layout"` // uniform|circle|file
	Count  int     `yaml:"count"`
	Extent float64 `yaml:"extent"` // half-side for uniform, radius for circle
	Seed   int64   `yaml:"seed"`   // point generation seed, 0 = derive from root seed
	File   string  `yaml:"file"`   // YAML list of {x, y} when layout is file
}

// GAConfig defines genetic algorithm parameters
type GAConfig struct {
	Population      int     `yaml:"population"`
	Generations     int     `yaml:"generations"`
	MutationRate    float64 `yaml:"mutation_rate"`
	TournamentK     int     `yaml:"tournament_k"`
	Elite           string  `yaml:"elite"` // none|single|fraction
	EliteFraction   float64 `yaml:"elite_fraction"`
	Sweep           string  `yaml:"sweep"` // exact|legacy
	CheckInvariants bool    `yaml:"check_invariants"`
}

// LogConfig defines logging parameters
type LogConfig struct {
	EveryGenSummary bool   `yaml:"every_gen_summary"`
	SummaryEvery    int    `yaml:"summary_every"`
	SnapshotEvery   int    `yaml:"snapshot_every"`
	ArtifactsDir    string `yaml:"artifacts_dir"`
	CSVPath         string `yaml:"csv_path"`
	JSONPath        string `yaml:"json_path"`
}

// PlotConfig defines route and history rendering
type PlotConfig struct {
	Enabled bool    `yaml:"enabled"`
	Every   int     `yaml:"every"`
	Dir     string  `yaml:"dir"`
	SizeIn  float64 `yaml:"size_in"` // square image side in inches
}

// SweepConfig defines the parameter grid for cmd/sweep
type SweepConfig struct {
	Layouts       []string  `yaml:"layouts"`
	PointCounts   []int     `yaml:"point_counts"`
	MutationRates []float64 `yaml:"mutation_rates"`
	Populations   []int     `yaml:"populations"`
	Elites        []string  `yaml:"elites"`
	Runs          int       `yaml:"runs"`
	Workers       int       `yaml:"workers"`
	OutputPath    string    `yaml:"output_path"`
}

// Load reads a YAML config file and returns a Config
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML bytes and applies defaults
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	// defaults without a preset cannot fail
	_ = applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) error {
	if cfg.Seed == 0 {
		cfg.Seed = 1337
	}
	if cfg.Points.Layout == "" {
		cfg.Points.Layout = geom.LayoutUniform
	}
	if cfg.Points.Count == 0 {
		cfg.Points.Count = 25
	}
	if cfg.Points.Extent == 0 {
		cfg.Points.Extent = geom.DefaultLimit
	}

	base := ga.DefaultConfig()
	if cfg.Preset != "" {
		p, err := ga.Preset(cfg.Preset)
		if err != nil {
			return err
		}
		base = p
	}
	if cfg.GA.Population == 0 {
		cfg.GA.Population = base.Population
	}
	if cfg.GA.Generations == 0 {
		cfg.GA.Generations = base.Generations
	}
	if cfg.GA.MutationRate == 0 {
		cfg.GA.MutationRate = base.MutationRate
	}
	if cfg.GA.TournamentK == 0 {
		cfg.GA.TournamentK = base.TournamentSize
	}
	if cfg.GA.Elite == "" {
		cfg.GA.Elite = base.Elite.Kind.String()
	}
	if cfg.GA.EliteFraction == 0 {
		cfg.GA.EliteFraction = base.Elite.Fraction
		if cfg.GA.EliteFraction == 0 {
			cfg.GA.EliteFraction = 0.05
		}
	}
	if cfg.GA.Sweep == "" {
		cfg.GA.Sweep = base.Sweep.String()
	}

	if cfg.Logging.SummaryEvery == 0 {
		cfg.Logging.SummaryEvery = 1
	}
	if cfg.Logging.ArtifactsDir == "" {
		cfg.Logging.ArtifactsDir = "artifacts"
	}
	if cfg.Logging.CSVPath == "" {
		cfg.Logging.CSVPath = "runs/run.csv"
	}
	if cfg.Logging.JSONPath == "" {
		cfg.Logging.JSONPath = "runs/run.jsonl"
	}

	if cfg.Plot.Every == 0 {
		cfg.Plot.Every = 10
	}
	if cfg.Plot.Dir == "" {
		cfg.Plot.Dir = "plots"
	}
	if cfg.Plot.SizeIn == 0 {
		cfg.Plot.SizeIn = 9
	}

	if len(cfg.Sweep.Layouts) == 0 {
		cfg.Sweep.Layouts = []string{geom.LayoutUniform, geom.LayoutCircle}
	}
	if len(cfg.Sweep.PointCounts) == 0 {
		cfg.Sweep.PointCounts = []int{cfg.Points.Count}
	}
	if len(cfg.Sweep.MutationRates) == 0 {
		cfg.Sweep.MutationRates = []float64{cfg.GA.MutationRate}
	}
	if len(cfg.Sweep.Populations) == 0 {
		cfg.Sweep.Populations = []int{cfg.GA.Population}
	}
	if len(cfg.Sweep.Elites) == 0 {
		cfg.Sweep.Elites = []string{cfg.GA.Elite}
	}
	if cfg.Sweep.Runs == 0 {
		cfg.Sweep.Runs = 5
	}
	if cfg.Sweep.OutputPath == "" {
		cfg.Sweep.OutputPath = "runs/sweep.csv"
	}
	return nil
}

// GAConfig converts the GA section into an engine configuration
func (c *Config) GAConfig() (ga.Config, error) {
	elite, err := ga.ParseElitePolicy(c.GA.Elite, c.GA.EliteFraction)
	if err != nil {
		return ga.Config{}, err
	}
	sweep, err := ga.ParseSweepMode(c.GA.Sweep)
	if err != nil {
		return ga.Config{}, err
	}
	out := ga.Config{
		Population:      c.GA.Population,
		Generations:     c.GA.Generations,
		MutationRate:    c.GA.MutationRate,
		TournamentSize:  c.GA.TournamentK,
		Elite:           elite,
		Sweep:           sweep,
		Seed:            c.Seed,
		CheckInvariants: c.GA.CheckInvariants,
	}
	return out, out.Validate()
}

// PointSet builds the configured point set
func (c *Config) PointSet() (geom.PointSet, error) {
	if c.Points.Layout == "file" {
		return LoadPoints(c.Points.File)
	}
	seed := c.Points.Seed
	if seed == 0 {
		seed = c.Seed
	}
	rng := rand.New(rand.NewSource(seed))
	return geom.Generate(c.Points.Layout, c.Points.Count, c.Points.Extent, rng)
}

// LoadPoints reads a YAML (or JSON) list of {x, y} coordinates
func LoadPoints(path string) (geom.PointSet, error) {
	if path == "" {
		return nil, fmt.Errorf("config: points.file is required for the file layout")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	ps := make(geom.PointSet, len(raw))
	for i, p := range raw {
		ps[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return ps, ps.Validate()
}
