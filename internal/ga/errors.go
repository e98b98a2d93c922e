package ga

import (
	"errors"

	"tspga/internal/eval"
)

var (
	// ErrInvalidConfig is returned before any generation runs when the configuration cannot drive a search
	ErrInvalidConfig = errors.New("ga: invalid configuration")

	// ErrInvariantViolation means an operator produced a route that is not a permutation.
	// It indicates a bug, not bad input.
	ErrInvariantViolation = errors.New("ga: route invariant violated")

	// ErrDegenerateTour is re-exported from eval so callers can match it without importing eval
	ErrDegenerateTour = eval.ErrDegenerateTour
)
