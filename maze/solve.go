package maze

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// Undirected returns the passage graph as a gonum graph. Node IDs are the
// cells' linear indices, row*rowSize + col.
func (g *Graph) Undirected() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := 0; i < g.rowSize*g.colSize; i++ {
		ug.AddNode(simple.Node(i))
	}
	for _, p := range g.passages {
		ug.SetEdge(ug.NewEdge(simple.Node(g.index(p.A)), simple.Node(g.index(p.B))))
	}
	return ug
}

// exitTree returns the shortest-path tree rooted at the exit. It is computed
// on first use and shared by later calls.
func (g *Graph) exitTree() path.Shortest {
	g.solveOnce.Do(func() {
		g.toExit = path.DijkstraFrom(simple.Node(g.index(g.exit)), g.Undirected())
	})
	return g.toExit
}

// PathToExit returns the cells on the path from the given cell to the exit,
// both ends included.
func (g *Graph) PathToExit(from *Cell) ([]*Cell, error) {
	if !g.owns(from) {
		return nil, ErrCellNotInMaze
	}

	nodes, _ := g.exitTree().To(int64(g.index(from)))
	if len(nodes) == 0 {
		return nil, fmt.Errorf("no path from (%d, %d) to the exit", from.col, from.row)
	}

	// The tree is rooted at the exit, so nodes run exit first.
	cells := make([]*Cell, len(nodes))
	for i, n := range nodes {
		cells[i] = g.cellByIndex(int(n.ID()))
	}
	slices.Reverse(cells)
	return cells, nil
}
