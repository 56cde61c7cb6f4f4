package maze

// Cell represents a single cell in a maze grid. Its state is fixed once the
// maze has been built.
type Cell struct {
	col         int  // Column index, in [0, rowSize).
	row         int  // Row index, in [0, colSize).
	neighborNum int  // Number of open sides, counting the exit's external opening.
	final       bool // Marks the maze exit.
}

// Col returns the cell's column index.
func (c *Cell) Col() int {
	return c.col
}

// Row returns the cell's row index.
func (c *Cell) Row() int {
	return c.row
}

// NeighborNum returns the number of open sides of the cell. The exit counts
// its external opening.
func (c *Cell) NeighborNum() int {
	return c.neighborNum
}

// IsFinal reports whether the cell is the maze exit.
func (c *Cell) IsFinal() bool {
	return c.final
}

// IsDeadEnd reports whether the cell has exactly one open side. The exit is
// never a dead end.
func (c *Cell) IsDeadEnd() bool {
	return !c.final && c.neighborNum == 1
}

// Wall is an unordered pair of grid-adjacent cells. Once accepted by the
// generator it becomes a passage.
type Wall struct {
	A *Cell
	B *Cell
}

// manhattan returns the grid distance between two cells.
func manhattan(a, b *Cell) int {
	return abs(a.col-b.col) + abs(a.row-b.row)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
