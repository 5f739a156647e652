package sssp_test

import (
	"testing"

	"github.com/katalvlaran/mdbackbone/mgraph"
	"github.com/katalvlaran/mdbackbone/multidist"
	"github.com/katalvlaran/mdbackbone/sssp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layer(start, end, idx uint64) multidist.LayerID {
	return multidist.LayerID{LayerStart: start, LayerEnd: end, LayerWeightIndex: idx}
}

// TestShortestDistances_TwoLayerDiamond is scenario S1 of the spec: the
// front at node 3 must contain two mutually incomparable distances.
func TestShortestDistances_TwoLayerDiamond(t *testing.T) {
	g := mgraph.New()
	g.AddEdge(0, 1, multidist.Single(layer(0, 0, 0), 1.0))
	g.AddEdge(0, 3, multidist.Single(layer(0, 1, 0), 2.0))
	g.AddEdge(1, 2, multidist.Single(layer(0, 1, 0), 1.0))
	g.AddEdge(2, 3, multidist.Single(layer(1, 1, 0), 1.0))

	result, err := sssp.ShortestDistances(g, 0)
	require.NoError(t, err)

	front3 := result[3]
	require.Len(t, front3, 2)

	viaShortcut := multidist.Single(layer(0, 1, 0), 2.0)
	viaPath := multidist.Add(multidist.Add(multidist.Single(layer(0, 0, 0), 1.0), multidist.Single(layer(0, 1, 0), 1.0)), multidist.Single(layer(1, 1, 0), 1.0))

	assert.True(t, multidist.Contains(front3, viaShortcut))
	assert.True(t, multidist.Contains(front3, viaPath))
}

// TestShortestDistances_CycleDoesNotExplode is scenario S3: a graph with
// two back-and-forth cycles must settle, with node 0 absent (no zero
// cycle) and single-element fronts elsewhere.
func TestShortestDistances_CycleDoesNotExplode(t *testing.T) {
	g := mgraph.New()
	g.AddEdge(0, 1, multidist.Single(layer(0, 0, 0), 2.0))
	g.AddEdge(1, 0, multidist.Single(layer(0, 0, 0), 2.0))
	g.AddEdge(1, 2, multidist.Single(layer(0, 0, 0), 2.0))
	g.AddEdge(2, 1, multidist.Single(layer(0, 0, 0), 2.0))
	g.AddEdge(0, 2, multidist.Single(layer(0, 0, 0), 4.0))

	result, err := sssp.ShortestDistances(g, 0)
	require.NoError(t, err)

	_, hasSource := result[0]
	assert.False(t, hasSource)

	require.Contains(t, result, mgraph.NodeID(1))
	require.Contains(t, result, mgraph.NodeID(2))
	assert.True(t, multidist.Contains(result[1], multidist.Single(layer(0, 0, 0), 2.0)))
	assert.True(t, multidist.Contains(result[2], multidist.Single(layer(0, 0, 0), 4.0)))
}

// TestShortestDistances_EdgeCompareEarlyExit is scenario S6: an
// incomparable alternative path does not trigger early exit (oracle would
// report metric=true), while a strictly shorter alternative does.
func TestShortestDistances_EdgeCompareEarlyExit(t *testing.T) {
	g := mgraph.New()
	g.AddEdge(0, 1, multidist.Single(layer(0, 0, 0), 1.0))
	g.AddEdge(1, 3, multidist.Single(layer(0, 0, 0), 1.0))
	direct := multidist.Single(layer(1, 1, 0), 5.0)
	g.AddEdge(0, 3, direct)

	result, err := sssp.ShortestDistances(g, 0, sssp.WithEdgeCompare(3, direct))
	require.NoError(t, err)
	assert.False(t, anyLess(result[3], direct), "incomparable path must not early-exit")

	g2 := mgraph.New()
	g2.AddEdge(0, 1, multidist.Single(layer(0, 0, 0), 1.0))
	g2.AddEdge(1, 3, multidist.Single(layer(0, 0, 0), 1.0))
	direct2 := multidist.Single(layer(0, 0, 0), 5.0)
	g2.AddEdge(0, 3, direct2)

	result2, err := sssp.ShortestDistances(g2, 0, sssp.WithEdgeCompare(3, direct2))
	require.NoError(t, err)
	assert.True(t, anyLess(result2[3], direct2), "strictly shorter path must early-exit")
}

func TestShortestDistances_NilGraph(t *testing.T) {
	_, err := sssp.ShortestDistances(nil, 0)
	require.Error(t, err)
}

func anyLess(front []multidist.MultiDistance, w multidist.MultiDistance) bool {
	for _, d := range front {
		if multidist.StrictlyLess(d, w) {
			return true
		}
	}

	return false
}
