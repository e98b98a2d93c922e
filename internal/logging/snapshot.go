package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tspga/internal/ga"
	"tspga/internal/geom"
)

// Snapshot stores a route together with the points it indexes, so it can be re-rendered alone
type Snapshot struct {
	RunID      string        `json:"run_id"`
	Generation int           `json:"generation"`
	Cost       float64       `json:"cost"`
	Fitness    float64       `json:"fitness"`
	Seed       int64         `json:"seed,omitempty"`
	Points     geom.PointSet `json:"points"`
	Route      ga.Route      `json:"route"`
}

// NewSnapshot copies points and route so later in-place changes do not leak into the snapshot
func NewSnapshot(runID string, gen int, cost float64, points geom.PointSet, route ga.Route) *Snapshot {
	s := &Snapshot{
		RunID:      runID,
		Generation: gen,
		Cost:       cost,
		Points:     points.Clone(),
		Route:      route.Clone(),
	}
	if cost > 0 {
		s.Fitness = 1 / cost
	}
	return s
}

// Validate checks that the route is a permutation over the stored points
func (s *Snapshot) Validate() error {
	if err := s.Points.Validate(); err != nil {
		return err
	}
	return ga.ValidateRoute(s.Route, len(s.Points))
}

// Save writes the snapshot to a file
func (s *Snapshot) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadSnapshot loads and validates a snapshot from a file
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	return &s, nil
}

// SnapshotPath names the artifact for a generation; gen < 0 means the final route
func SnapshotPath(dir string, gen int) string {
	if gen < 0 {
		return filepath.Join(dir, "route_final.json")
	}
	return filepath.Join(dir, fmt.Sprintf("route_gen%d.json", gen))
}
