package maze

import (
	"errors"
	"slices"
)

var (
	// ErrNilMaze is returned when a pool is created without a maze.
	ErrNilMaze = errors.New("maze is nil")
	// ErrNoFreeDeadEnd is returned by Claim once every dead end holds a letter.
	ErrNoFreeDeadEnd = errors.New("no free dead end")
	// ErrDeadEndNotClaimed is returned when releasing a cell that holds no letter.
	ErrDeadEndNotClaimed = errors.New("dead end is not claimed")
)

const letterCount = 26 // Letters 'a' through 'z'.

// DeadEndPool hands out the maze's dead ends one at a time, tagging each
// claimed dead end with a random lowercase letter until it is released.
// It is not safe for concurrent use.
type DeadEndPool struct {
	rng     Rand           // Source for picking dead ends and letters.
	free    []*Cell        // Dead ends without a letter.
	claimed []*Cell        // Dead ends holding a letter, in claim order.
	letters map[*Cell]rune // Letter held by each claimed dead end.
}

// NewDeadEndPool returns a pool in which every dead end of g is free.
func NewDeadEndPool(g *Graph, rng Rand) (*DeadEndPool, error) {
	if g == nil {
		return nil, ErrNilMaze
	}
	if rng == nil {
		return nil, ErrNilRandomSource
	}

	return &DeadEndPool{
		rng:     rng,
		free:    g.DeadEnds(),
		letters: make(map[*Cell]rune),
	}, nil
}

// Claim picks a random free dead end and assigns it a random letter.
func (p *DeadEndPool) Claim() (*Cell, rune, error) {
	if len(p.free) == 0 {
		return nil, 0, ErrNoFreeDeadEnd
	}

	letter := rune('a' + p.rng.Intn(letterCount))
	i := p.rng.Intn(len(p.free))
	cell := p.free[i]
	p.free = slices.Delete(p.free, i, i+1)

	p.claimed = append(p.claimed, cell)
	p.letters[cell] = letter
	return cell, letter, nil
}

// Release returns a claimed dead end to the free set and drops its letter.
func (p *DeadEndPool) Release(c *Cell) error {
	i := slices.Index(p.claimed, c)
	if i < 0 {
		return ErrDeadEndNotClaimed
	}

	p.claimed = slices.Delete(p.claimed, i, i+1)
	delete(p.letters, c)
	p.free = append(p.free, c)
	return nil
}

// Letter returns the letter held by c, if it is claimed.
func (p *DeadEndPool) Letter(c *Cell) (rune, bool) {
	letter, ok := p.letters[c]
	return letter, ok
}

// Free returns the number of dead ends available to Claim.
func (p *DeadEndPool) Free() int {
	return len(p.free)
}

// Claimed returns the claimed dead ends, oldest first.
func (p *DeadEndPool) Claimed() []*Cell {
	return slices.Clone(p.claimed)
}
