/*
Package maze generates perfect rectangular mazes with randomized Kruskal's
algorithm.

Every wall between two neighbouring cells is listed once, the list is
shuffled, and walls are opened in that order whenever they join two regions
that are not yet connected. The result is a spanning tree over the grid: a
single path between any two cells. One boundary cell is marked as the exit,
and the remaining cells with a single open side form the dead-end set.

Generated graphs are read-only and expose lookups by grid coordinate and a
passage test for adjacent cells.
*/
package maze

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"github.com/beka-birhanu/vinom-maze/disjointset"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/graph/path"
)

var (
	// ErrInvalidDimensions is returned when a maze is not at least 1x1.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	// ErrNilRandomSource is returned when no random source is supplied.
	ErrNilRandomSource = errors.New("random source is nil")
	// ErrCellNotInMaze is returned for cells that belong to another maze.
	ErrCellNotInMaze = errors.New("cell does not belong to the maze")
)

// Rand is the source of randomness used for shuffling walls and picking
// dead ends. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Option configures a Build call.
type Option func(*builder)

// WithLogger sets the logger used to report generation details.
func WithLogger(l *log.Logger) Option {
	return func(b *builder) {
		b.logger = l
	}
}

// WithExitSide selects the boundary the exit is placed on.
func WithExitSide(side ExitSide) Option {
	return func(b *builder) {
		b.exitSide = side
	}
}

type builder struct {
	exitSide ExitSide
	logger   *log.Logger
}

// Graph is a generated maze: its cells, the passages between them, the exit
// and the initial dead ends. It is not modified after Build returns.
type Graph struct {
	id       uuid.UUID           // Identifier of this generation.
	rowSize  int                 // Number of columns.
	colSize  int                 // Number of rows.
	cells    [][]*Cell           // Grid of cells, addressed [col][row].
	passages []Wall              // Accepted walls, in acceptance order.
	opened   map[[2]int]struct{} // Linear index pairs of passages, smaller index first.
	exit     *Cell               // The designated exit cell.
	exitSide ExitSide            // Boundary the exit opens onto.
	deadEnds []*Cell             // Cells with exactly one open side.

	solveOnce sync.Once     // Guards toExit.
	toExit    path.Shortest // Shortest-path tree rooted at the exit.
}

// Build generates a rowSize x colSize maze, rowSize being the number of
// columns and colSize the number of rows.
func Build(rowSize, colSize int, rng Rand, opts ...Option) (*Graph, error) {
	if rowSize <= 0 || colSize <= 0 {
		return nil, ErrInvalidDimensions
	}
	cellCount := rowSize * colSize
	// Check for overflow.
	if cellCount/rowSize != colSize {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		return nil, ErrNilRandomSource
	}

	b := &builder{exitSide: ExitRight}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		// Discard logging if no logger is set
		b.logger = log.New(io.Discard, "", 0)
	}

	g := &Graph{
		id:      uuid.New(),
		rowSize: rowSize,
		colSize: colSize,
		cells:   newGrid(rowSize, colSize),
	}

	walls := g.candidateWalls()
	shuffle(walls, rng)

	examined, err := g.openPassages(walls)
	if err != nil {
		return nil, fmt.Errorf("generating maze: %w", err)
	}
	b.logger.Printf("maze %s: %dx%d, %d candidate walls, %d examined, %d passages",
		g.id, rowSize, colSize, len(walls), examined, len(g.passages))

	if err := g.markExit(b.exitSide); err != nil {
		return nil, err
	}
	g.collectDeadEnds()
	b.logger.Printf("maze %s: exit at (%d, %d), %d dead ends",
		g.id, g.exit.col, g.exit.row, len(g.deadEnds))

	return g, nil
}

// newGrid allocates every cell of the maze.
func newGrid(rowSize, colSize int) [][]*Cell {
	cells := make([][]*Cell, rowSize)
	for col := range cells {
		cells[col] = make([]*Cell, colSize)
		for row := range cells[col] {
			cells[col][row] = &Cell{col: col, row: row}
		}
	}
	return cells
}

// candidateWalls lists each interior wall once: every cell paired with its
// right neighbour and with the neighbour below it, where they exist.
func (g *Graph) candidateWalls() []Wall {
	walls := make([]Wall, 0, (g.rowSize-1)*g.colSize+g.rowSize*(g.colSize-1))
	for col := 0; col < g.rowSize; col++ {
		for row := 0; row < g.colSize; row++ {
			if col != g.rowSize-1 {
				walls = append(walls, Wall{A: g.cells[col][row], B: g.cells[col+1][row]})
			}
			if row != g.colSize-1 {
				walls = append(walls, Wall{A: g.cells[col][row], B: g.cells[col][row+1]})
			}
		}
	}
	return walls
}

// shuffle permutes items uniformly in place (Fisher-Yates).
func shuffle[T any](items []T, rng Rand) {
	for i := 0; i < len(items)-1; i++ {
		j := i + rng.Intn(len(items)-i)
		items[i], items[j] = items[j], items[i]
	}
}

// openPassages runs Kruskal's algorithm over the shuffled walls. It returns
// the number of walls examined before the grid became a single region.
func (g *Graph) openPassages(walls []Wall) (int, error) {
	subtrees, err := disjointset.New(g.rowSize * g.colSize)
	if err != nil {
		return 0, err
	}

	g.passages = make([]Wall, 0, g.rowSize*g.colSize-1)
	g.opened = make(map[[2]int]struct{}, g.rowSize*g.colSize-1)

	examined := 0
	for _, wall := range walls {
		if subtrees.SetCount() == 1 {
			break
		}
		examined++

		merged, err := subtrees.Union(g.index(wall.A), g.index(wall.B))
		if err != nil {
			return examined, err
		}
		// Both cells are already reachable from one another.
		if !merged {
			continue
		}

		g.passages = append(g.passages, wall)
		g.opened[g.key(wall.A, wall.B)] = struct{}{}
		wall.A.neighborNum++
		wall.B.neighborNum++
	}

	if subtrees.SetCount() != 1 {
		return examined, fmt.Errorf("%d regions left disconnected", subtrees.SetCount())
	}
	return examined, nil
}

// markExit flags the exit cell and counts its external opening.
func (g *Graph) markExit(side ExitSide) error {
	col, row, err := side.position(g.rowSize, g.colSize)
	if err != nil {
		return err
	}
	g.exit = g.cells[col][row]
	g.exitSide = side
	g.exit.neighborNum++
	g.exit.final = true
	return nil
}

func (g *Graph) collectDeadEnds() {
	g.deadEnds = nil
	for _, column := range g.cells {
		for _, cell := range column {
			if cell.IsDeadEnd() {
				g.deadEnds = append(g.deadEnds, cell)
			}
		}
	}
}

// index returns the cell's linear index, row*rowSize + col.
func (g *Graph) index(c *Cell) int {
	return c.row*g.rowSize + c.col
}

func (g *Graph) cellByIndex(i int) *Cell {
	return g.cells[i%g.rowSize][i/g.rowSize]
}

func (g *Graph) key(a, b *Cell) [2]int {
	i, j := g.index(a), g.index(b)
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

// owns reports whether c is one of this maze's cells.
func (g *Graph) owns(c *Cell) bool {
	return c != nil && g.CellAt(c.col, c.row) == c
}

// ID returns the identifier assigned to this maze at generation time.
func (g *Graph) ID() uuid.UUID {
	return g.id
}

// RowSize returns the number of columns.
func (g *Graph) RowSize() int {
	return g.rowSize
}

// ColSize returns the number of rows.
func (g *Graph) ColSize() int {
	return g.colSize
}

// CellAt returns the cell at the given column and row, or nil when the
// position is outside the maze.
func (g *Graph) CellAt(col, row int) *Cell {
	if col < 0 || col >= g.rowSize || row < 0 || row >= g.colSize {
		return nil
	}
	return g.cells[col][row]
}

// Cells returns the grid of cells addressed [col][row].
func (g *Graph) Cells() [][]*Cell {
	cells := make([][]*Cell, len(g.cells))
	for col := range g.cells {
		cells[col] = append([]*Cell(nil), g.cells[col]...)
	}
	return cells
}

// Passages returns the accepted walls in the order they were opened.
func (g *Graph) Passages() []Wall {
	return append([]Wall(nil), g.passages...)
}

// Exit returns the exit cell.
func (g *Graph) Exit() *Cell {
	return g.exit
}

// DeadEnds returns the cells that had exactly one open side once the maze
// was generated.
func (g *Graph) DeadEnds() []*Cell {
	return append([]*Cell(nil), g.deadEnds...)
}

// IsConnectedPassage reports whether a and b are grid neighbours joined by
// an open passage.
func (g *Graph) IsConnectedPassage(a, b *Cell) bool {
	if !g.owns(a) || !g.owns(b) {
		return false
	}
	if manhattan(a, b) != 1 {
		return false
	}
	_, ok := g.opened[g.key(a, b)]
	return ok
}

// Neighbors returns the cells reachable from c through a single passage.
func (g *Graph) Neighbors(c *Cell) []*Cell {
	if !g.owns(c) {
		return nil
	}
	var result []*Cell
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		other := g.CellAt(c.col+d[0], c.row+d[1])
		if other != nil && g.IsConnectedPassage(c, other) {
			result = append(result, other)
		}
	}
	return result
}

// String provides a textual representation of the maze. Dead ends are
// marked with a dot and the exit with an E.
func (g *Graph) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+" + strings.Repeat("---+", g.rowSize) + "\n")

	for row := 0; row < g.colSize; row++ {
		// Cell rows
		output.WriteString("|")
		for col := 0; col < g.rowSize; col++ {
			cell := g.cells[col][row]
			switch {
			case cell.final:
				output.WriteString(" E ")
			case cell.IsDeadEnd():
				output.WriteString(" . ")
			default:
				output.WriteString("   ")
			}

			right := g.CellAt(col+1, row)
			open := g.IsConnectedPassage(cell, right) || (right == nil && cell.final && g.exitSide == ExitRight)
			if open {
				output.WriteString(" ")
			} else {
				output.WriteString("|")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for col := 0; col < g.rowSize; col++ {
			cell := g.cells[col][row]
			below := g.CellAt(col, row+1)
			if g.IsConnectedPassage(cell, below) || (below == nil && cell.final && g.exitSide == ExitBottom) {
				output.WriteString("   +")
			} else {
				output.WriteString("---+")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
