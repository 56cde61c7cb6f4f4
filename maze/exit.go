package maze

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownExitSide is returned for exit sides other than right and bottom.
var ErrUnknownExitSide = errors.New("unknown exit side")

// ExitSide selects the boundary cell that becomes the maze exit.
type ExitSide int

const (
	// ExitRight opens the vertical centre of the rightmost column.
	ExitRight ExitSide = iota
	// ExitBottom opens the horizontal centre of the bottom row.
	ExitBottom
)

func (s ExitSide) String() string {
	switch s {
	case ExitRight:
		return "right"
	case ExitBottom:
		return "bottom"
	}
	return fmt.Sprintf("ExitSide(%d)", int(s))
}

// ParseExitSide converts "right" or "bottom" (case insensitive) to an
// ExitSide.
func ParseExitSide(s string) (ExitSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return ExitRight, nil
	case "bottom":
		return ExitBottom, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownExitSide, s)
}

// position returns the column and row of the exit cell on a grid with
// rowSize columns and colSize rows.
func (s ExitSide) position(rowSize, colSize int) (int, int, error) {
	switch s {
	case ExitRight:
		return rowSize - 1, colSize / 2, nil
	case ExitBottom:
		return rowSize / 2, colSize - 1, nil
	}
	return 0, 0, fmt.Errorf("%w: %s", ErrUnknownExitSide, s)
}
