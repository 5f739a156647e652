package mdbuilder

import "errors"

var (
	// ErrTooFewNodes is returned when a constructor's node count is below
	// its structural minimum (e.g. Cycle needs at least 3).
	ErrTooFewNodes = errors.New("mdbuilder: too few nodes")

	// ErrInvalidProbability is returned when RandomMultiplex's edge
	// probability falls outside [0,1].
	ErrInvalidProbability = errors.New("mdbuilder: probability out of range")

	// ErrNoLayers is returned when RandomMultiplex is asked to build a
	// graph with zero layers.
	ErrNoLayers = errors.New("mdbuilder: at least one layer is required")
)
