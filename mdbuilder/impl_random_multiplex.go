// File: impl_random_multiplex.go
// Role: RandomMultiplex — an Erdős–Rényi-like stochastic constructor,
// generalized from the original builder package's RandomSparse to emit
// one independent layer of weighted edges per (i,j) pair considered,
// rather than a single scalar weight (spec's multiplex data model, §3).
//
// Canonical model:
//   - Directed: for every ordered pair (i,j), i != j, each of numLayers
//     candidate layers independently gets an edge with probability p.
//   - Layers are distinguished by LayerWeightIndex 0..numLayers-1, all
//     sharing LayerStart=0, LayerEnd=numLayers-1 (spec's layer triple).
//
// Contract:
//   - n >= 1 (else ErrTooFewNodes).
//   - numLayers >= 1 (else ErrNoLayers).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - Deterministic given a fixed seed/rng and fixed trial order (i asc,
//     j asc, layer asc).

package mdbuilder

import (
	"fmt"

	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
)

const (
	minRandomMultiplexNodes = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomMultiplex builds a random directed multiplex graph over n nodes
// and numLayers layers, with independent per-layer edge probability p.
func RandomMultiplex(n, numLayers int, p float64, opts ...Option) (*mgraph.Graph, error) {
	if n < minRandomMultiplexNodes {
		return nil, fmt.Errorf("RandomMultiplex: n=%d < min=%d: %w", n, minRandomMultiplexNodes, ErrTooFewNodes)
	}
	if numLayers < 1 {
		return nil, fmt.Errorf("RandomMultiplex: numLayers=%d: %w", numLayers, ErrNoLayers)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomMultiplex: p=%.6f not in [%.1f,%.1f]: %w", p, probMin, probMax, ErrInvalidProbability)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := mgraph.New()
	for i := 0; i < n; i++ {
		g.AddNode(mgraph.NodeID(i))
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for layerIdx := 0; layerIdx < numLayers; layerIdx++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				layer := multidist.LayerID{LayerStart: 0, LayerEnd: uint64(numLayers - 1), LayerWeightIndex: uint64(layerIdx)}
				w := cfg.weightFn(cfg.rng)

				existing, ok := g.EdgeWeight(mgraph.NodeID(i), mgraph.NodeID(j))
				if ok {
					existing = multidist.Add(existing, multidist.Single(layer, w))
				} else {
					existing = multidist.Single(layer, w)
				}
				g.AddEdge(mgraph.NodeID(i), mgraph.NodeID(j), existing)
			}
		}
	}

	return g, nil
}
