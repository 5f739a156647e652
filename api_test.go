package mdbackbone_test

import (
	"context"
	"testing"

	mdbackbone "github.com/katalvlaran/mdbackbone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDistanceClosure_TwoLayerDiamond is scenario S1 end to end.
func TestDistanceClosure_TwoLayerDiamond(t *testing.T) {
	edges := []mdbackbone.EdgeTuple{
		{Source: 0, Target: 1, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 1.0},
		{Source: 0, Target: 3, LayerStart: 0, LayerEnd: 1, LayerWeightIndex: 0, Weight: 2.0},
		{Source: 1, Target: 2, LayerStart: 0, LayerEnd: 1, LayerWeightIndex: 0, Weight: 1.0},
		{Source: 2, Target: 3, LayerStart: 1, LayerEnd: 1, LayerWeightIndex: 0, Weight: 1.0},
	}

	c, err := mdbackbone.DistanceClosure(context.Background(), edges)
	require.NoError(t, err)
	assert.Len(t, c[0][3], 2)
}

// TestMultilayerBackbone_TwoLayerDiamondKeepsAllEdges is scenario S1's
// backbone expectation: all four edges survive.
func TestMultilayerBackbone_TwoLayerDiamondKeepsAllEdges(t *testing.T) {
	edges := []mdbackbone.EdgeTuple{
		{Source: 0, Target: 1, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 1.0},
		{Source: 0, Target: 3, LayerStart: 0, LayerEnd: 1, LayerWeightIndex: 0, Weight: 2.0},
		{Source: 1, Target: 2, LayerStart: 0, LayerEnd: 1, LayerWeightIndex: 0, Weight: 1.0},
		{Source: 2, Target: 3, LayerStart: 1, LayerEnd: 1, LayerWeightIndex: 0, Weight: 1.0},
	}

	kept, err := mdbackbone.MultilayerBackbone(context.Background(), edges)
	require.NoError(t, err)
	assert.Len(t, kept, 4)
}

// TestStructuralBackboneCosta_Scenario2 is scenario S2 end to end.
func TestStructuralBackboneCosta_Scenario2(t *testing.T) {
	tied := []mdbackbone.EdgeTuple{
		{Source: 0, Target: 1, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 2.0},
		{Source: 1, Target: 2, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 2.0},
		{Source: 0, Target: 2, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 4.0},
	}
	g, err := mdbackbone.StructuralBackboneCosta(context.Background(), tied)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 2))

	dominated := []mdbackbone.EdgeTuple{
		{Source: 0, Target: 1, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 2.0},
		{Source: 1, Target: 2, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 2.0},
		{Source: 0, Target: 2, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 5.0},
	}
	g2, err := mdbackbone.StructuralBackboneCosta(context.Background(), dominated)
	require.NoError(t, err)
	assert.False(t, g2.HasEdge(0, 2))
}

// TestStructuralBackboneNaive_CycleDoesNotExplode is scenario S3's shape
// run through the naive unbounded backbone.
func TestStructuralBackboneNaive_CycleDoesNotExplode(t *testing.T) {
	edges := []mdbackbone.EdgeTuple{
		{Source: 0, Target: 1, Weight: 2.0},
		{Source: 1, Target: 0, Weight: 2.0},
		{Source: 1, Target: 2, Weight: 2.0},
		{Source: 2, Target: 1, Weight: 2.0},
		{Source: 0, Target: 2, Weight: 4.0},
	}
	g, err := mdbackbone.StructuralBackboneNaive(context.Background(), edges, nil)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 2), "0->2 ties the 0->1->2 path (2+2 == 4) and is not strictly dominated")
}

// TestStructuralBackboneSimas_Scenario5 is scenario S5 end to end.
func TestStructuralBackboneSimas_Scenario5(t *testing.T) {
	edges := []mdbackbone.EdgeTuple{
		{Source: 0, Target: 1, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 1.0},
		{Source: 1, Target: 2, LayerStart: 1, LayerEnd: 1, LayerWeightIndex: 0, Weight: 1.0},
		{Source: 0, Target: 2, LayerStart: 0, LayerEnd: 0, LayerWeightIndex: 0, Weight: 2.0},
	}
	g, err := mdbackbone.StructuralBackboneSimas(context.Background(), edges)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 2), "incomparable two-hop composite must not remove the shortcut")
}

func TestStructuralBackboneNaive_RejectsNegativeDepth(t *testing.T) {
	n := -1
	_, err := mdbackbone.StructuralBackboneNaive(context.Background(), nil, &n)
	require.Error(t, err)
}
