package ga

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"
)

// EliteKind selects how many individuals survive unchanged into the next generation
type EliteKind int

const (
	EliteNone        EliteKind = iota // no carry-over
	EliteSingleBest                   // the single fittest individual
	EliteTopFraction                  // the top ceil(f*P) individuals
)

func (k EliteKind) String() string {
	switch k {
	case EliteNone:
		return "none"
	case EliteSingleBest:
		return "single"
	case EliteTopFraction:
		return "fraction"
	default:
		return "unknown"
	}
}

// ElitePolicy is the replacement policy. Fraction is only read for EliteTopFraction.
type ElitePolicy struct {
	Kind     EliteKind
	Fraction float64
}

// NoElite disables elitism
func NoElite() ElitePolicy { return ElitePolicy{Kind: EliteNone} }

// SingleBest carries the fittest individual forward
func SingleBest() ElitePolicy { return ElitePolicy{Kind: EliteSingleBest} }

// TopFraction carries the top fraction f of the population forward (at least one)
func TopFraction(f float64) ElitePolicy { return ElitePolicy{Kind: EliteTopFraction, Fraction: f} }

// Count returns the number of elites for a population of size p
func (e ElitePolicy) Count(p int) int {
	switch e.Kind {
	case EliteSingleBest:
		return 1
	case EliteTopFraction:
		n := int(math.Ceil(e.Fraction * float64(p)))
		if n < 1 {
			n = 1
		}
		if n > p {
			n = p
		}
		return n
	default:
		return 0
	}
}

func (e ElitePolicy) String() string {
	if e.Kind == EliteTopFraction {
		return fmt.Sprintf("fraction(%g)", e.Fraction)
	}
	return e.Kind.String()
}

// Validate checks the policy on its own
func (e ElitePolicy) Validate() error {
	switch e.Kind {
	case EliteNone, EliteSingleBest:
		return nil
	case EliteTopFraction:
		if !(e.Fraction > 0 && e.Fraction <= 1) {
			return fmt.Errorf("%w: elite fraction must be in (0,1] (got %v)", ErrInvalidConfig, e.Fraction)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown elite kind %d", ErrInvalidConfig, int(e.Kind))
	}
}

// ParseElitePolicy reads "none", "single" or "fraction"; fraction is used by the latter
func ParseElitePolicy(name string, fraction float64) (ElitePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "off", "false":
		return NoElite(), nil
	case "single", "single-best", "best", "true", "":
		return SingleBest(), nil
	case "fraction", "top-fraction", "top":
		p := TopFraction(fraction)
		return p, p.Validate()
	default:
		return ElitePolicy{}, fmt.Errorf("%w: unknown elite policy %q", ErrInvalidConfig, name)
	}
}

// SweepMode selects the comparison used by the local-improvement sweep
type SweepMode int

const (
	// SweepExact compares the two edges that actually change when cities i and i+1 trade places
	SweepExact SweepMode = iota
	// SweepLegacy compares d(i-1,i)+d(i,i+1) with d(i-1,i+1)+d(i+1,i), counting the middle edge on both sides
	SweepLegacy
)

func (m SweepMode) String() string {
	switch m {
	case SweepExact:
		return "exact"
	case SweepLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseSweepMode reads "exact" or "legacy"
func ParseSweepMode(name string) (SweepMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact", "":
		return SweepExact, nil
	case "legacy":
		return SweepLegacy, nil
	default:
		return 0, fmt.Errorf("%w: unknown sweep mode %q", ErrInvalidConfig, name)
	}
}

// Config parameterizes one optimization run
type Config struct {
	Population     int
	Generations    int
	MutationRate   float64
	TournamentSize int
	Elite          ElitePolicy
	Sweep          SweepMode

	// Seed drives every random decision of the run. Zero draws a seed from the clock.
	Seed int64

	// CheckInvariants validates every child route; a failure aborts with ErrInvariantViolation
	CheckInvariants bool
}

// Validate reports the first problem that would keep the run from starting
func (c Config) Validate() error {
	if c.Population < 2 {
		return fmt.Errorf("%w: population must be >= 2 (got %d)", ErrInvalidConfig, c.Population)
	}
	if c.Generations < 1 {
		return fmt.Errorf("%w: generations must be >= 1 (got %d)", ErrInvalidConfig, c.Generations)
	}
	if !(c.MutationRate >= 0 && c.MutationRate <= 1) {
		return fmt.Errorf("%w: mutation rate must be in [0,1] (got %v)", ErrInvalidConfig, c.MutationRate)
	}
	if c.TournamentSize < 1 || c.TournamentSize > c.Population {
		return fmt.Errorf("%w: tournament size must be in [1, %d] (got %d)",
			ErrInvalidConfig, c.Population, c.TournamentSize)
	}
	if err := c.Elite.Validate(); err != nil {
		return err
	}
	if c.Sweep != SweepExact && c.Sweep != SweepLegacy {
		return fmt.Errorf("%w: unknown sweep mode %d", ErrInvalidConfig, int(c.Sweep))
	}
	return nil
}

func (c Config) newRand() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// DefaultConfig returns the parameters used when nothing else is specified
func DefaultConfig() Config {
	return Config{
		Population:     100,
		Generations:    100,
		MutationRate:   0.08,
		TournamentSize: 3,
		Elite:          SingleBest(),
		Sweep:          SweepExact,
	}
}

// Preset returns one of the named experiment variants:
//
//	classic       population 200, 200 generations, mutation 0.16, tournament 3, single best
//	interactive   population 100, 50 generations, mutation 0.08, tournament 3, single best
//	top-fraction  population 200, 200 generations, mutation 0.02, tournament 5, top 5%
func Preset(name string) (Config, error) {
	c := DefaultConfig()
	switch name {
	case "classic":
		c.Population, c.Generations, c.MutationRate = 200, 200, 0.16
	case "interactive":
		c.Population, c.Generations, c.MutationRate = 100, 50, 0.08
	case "top-fraction":
		c.Population, c.Generations, c.MutationRate = 200, 200, 0.02
		c.TournamentSize = 5
		c.Elite = TopFraction(0.05)
	default:
		return Config{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidConfig, name)
	}
	return c, nil
}
