package graph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hdastar/graph"
	"github.com/stretchr/testify/require"
)

func TestGenerateKNearestShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, err := graph.GenerateKNearest(100, 50, 5, rng)
	require.NoError(t, err)
	require.Equal(t, 50, g.NumVertices())

	for v := 0; v < g.NumVertices(); v++ {
		require.GreaterOrEqual(t, len(g.Neighbors(graph.NodeId(v))), 5)
	}
}

func TestGenerateKNearestDeterministic(t *testing.T) {
	g1, err := graph.GenerateKNearest(100, 30, 4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	g2, err := graph.GenerateKNearest(100, 30, 4, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for v := 0; v < g1.NumVertices(); v++ {
		require.Equal(t, g1.Position(graph.NodeId(v)), g2.Position(graph.NodeId(v)))
		require.Equal(t, len(g1.Neighbors(graph.NodeId(v))), len(g2.Neighbors(graph.NodeId(v))))
	}
}

func TestGenerateKNearestRejectsTooManyVertices(t *testing.T) {
	_, err := graph.GenerateKNearest(2, 10, 1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, graph.ErrTooManyVertices)
}

func TestGenerateKNearestRejectsBadK(t *testing.T) {
	_, err := graph.GenerateKNearest(100, 5, 5, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, graph.ErrTooManyNeighbors)
}
