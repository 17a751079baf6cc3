package astar_test

import (
	"testing"

	"github.com/katalvlaran/hdastar/astar"
	"github.com/katalvlaran/hdastar/graph"
	"github.com/stretchr/testify/require"
)

// buildSquare is scenario #1 from the spec's testable-properties table:
// a 4-node square with a cheap 3-edge route and an expensive direct edge.
func buildSquare(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(4)
	g.SetPosition(0, graph.Position{X: 0, Y: 0})
	g.SetPosition(1, graph.Position{X: 3, Y: 0})
	g.SetPosition(2, graph.Position{X: 3, Y: 3})
	g.SetPosition(3, graph.Position{X: 0, Y: 3})
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(0, 3, 10))
	return g
}

func TestSequentialSquare(t *testing.T) {
	g := buildSquare(t)
	res, err := astar.Sequential(g, 0, 3)
	require.NoError(t, err)
	require.InDelta(t, 3.0, res.Cost, 1e-9)
	require.Len(t, res.Path, 4)
	require.Equal(t, graph.NodeId(0), res.Path[0])
	require.Equal(t, graph.NodeId(3), res.Path[len(res.Path)-1])
}

func TestSequentialTriangle(t *testing.T) {
	g := graph.New(3)
	g.SetPosition(0, graph.Position{X: 0, Y: 0})
	g.SetPosition(1, graph.Position{X: 1, Y: 0})
	g.SetPosition(2, graph.Position{X: 0.5, Y: 0.87})
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))

	res, err := astar.Sequential(g, 0, 2)
	require.NoError(t, err)
	require.InDelta(t, 1.0, res.Cost, 1e-9)
	require.Len(t, res.Path, 2)
}

func TestSequentialLine(t *testing.T) {
	g := graph.New(5)
	for i := 0; i < 5; i++ {
		g.SetPosition(graph.NodeId(i), graph.Position{X: float64(i), Y: 0})
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(graph.NodeId(i), graph.NodeId(i+1), 2))
	}

	res, err := astar.Sequential(g, 0, 4)
	require.NoError(t, err)
	require.InDelta(t, 8.0, res.Cost, 1e-9)
	require.Len(t, res.Path, 5)
}

func TestSequentialDisconnectedNoPath(t *testing.T) {
	g := graph.New(4)
	for i := 0; i < 4; i++ {
		g.SetPosition(graph.NodeId(i), graph.Position{X: float64(i), Y: 0})
	}
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	_, err := astar.Sequential(g, 0, 3)
	require.ErrorIs(t, err, astar.ErrNoPath)
}

func TestSequentialSingleNode(t *testing.T) {
	g := graph.New(1)
	g.SetPosition(0, graph.Position{X: 0, Y: 0})

	res, err := astar.Sequential(g, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Cost)
	require.Equal(t, []graph.NodeId{0}, res.Path)
}

func TestSequentialOutOfRange(t *testing.T) {
	g := graph.New(2)
	_, err := astar.Sequential(g, 0, 5)
	require.ErrorIs(t, err, astar.ErrVertexOutOfRange)
}

func TestSequentialNilGraph(t *testing.T) {
	_, err := astar.Sequential(nil, 0, 1)
	require.ErrorIs(t, err, astar.ErrNilGraph)
}
