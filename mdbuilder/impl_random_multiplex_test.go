package mdbuilder_test

import (
	"testing"

	"github.com/katalvlaran/mdbackbone/mdbuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomMultiplex_ValidatesInput(t *testing.T) {
	_, err := mdbuilder.RandomMultiplex(0, 1, 0.5)
	require.Error(t, err)

	_, err = mdbuilder.RandomMultiplex(3, 0, 0.5)
	require.Error(t, err)

	_, err = mdbuilder.RandomMultiplex(3, 1, 1.5)
	require.Error(t, err)
}

func TestRandomMultiplex_AllNodesEnumerable(t *testing.T) {
	g, err := mdbuilder.RandomMultiplex(6, 2, 0.0, mdbuilder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestRandomMultiplex_FullProbabilityConnectsEveryPair(t *testing.T) {
	g, err := mdbuilder.RandomMultiplex(4, 1, 1.0, mdbuilder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 4*3, g.EdgeCount())
}

func TestRandomMultiplex_DeterministicUnderSameSeed(t *testing.T) {
	a, err := mdbuilder.RandomMultiplex(10, 2, 0.5, mdbuilder.WithSeed(99))
	require.NoError(t, err)
	b, err := mdbuilder.RandomMultiplex(10, 2, 0.5, mdbuilder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
}
