package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadEndPool(t *testing.T) {
	g, err := Build(9, 9, newRand(17))
	require.NoError(t, err)
	require.NotEmpty(t, g.DeadEnds())

	t.Run("Claim every dead end", func(t *testing.T) {
		pool, err := NewDeadEndPool(g, newRand(1))
		require.NoError(t, err)
		total := pool.Free()
		assert.Equal(t, len(g.DeadEnds()), total)

		seen := make(map[*Cell]bool)
		for i := 0; i < total; i++ {
			cell, letter, err := pool.Claim()
			require.NoError(t, err)
			assert.True(t, cell.IsDeadEnd())
			assert.False(t, seen[cell], "dead end claimed twice")
			seen[cell] = true

			assert.GreaterOrEqual(t, letter, 'a')
			assert.LessOrEqual(t, letter, 'z')
			got, ok := pool.Letter(cell)
			assert.True(t, ok)
			assert.Equal(t, letter, got)
		}

		assert.Equal(t, 0, pool.Free())
		assert.Len(t, pool.Claimed(), total)

		_, _, err = pool.Claim()
		assert.ErrorIs(t, err, ErrNoFreeDeadEnd)
	})

	t.Run("Release returns the dead end", func(t *testing.T) {
		pool, err := NewDeadEndPool(g, newRand(2))
		require.NoError(t, err)
		total := pool.Free()

		cell, _, err := pool.Claim()
		require.NoError(t, err)
		assert.Equal(t, total-1, pool.Free())
		assert.Equal(t, []*Cell{cell}, pool.Claimed())

		require.NoError(t, pool.Release(cell))
		assert.Equal(t, total, pool.Free())
		assert.Empty(t, pool.Claimed())

		_, ok := pool.Letter(cell)
		assert.False(t, ok)

		assert.ErrorIs(t, pool.Release(cell), ErrDeadEndNotClaimed)
		assert.ErrorIs(t, pool.Release(g.Exit()), ErrDeadEndNotClaimed)
	})

	t.Run("Claimed keeps claim order", func(t *testing.T) {
		pool, err := NewDeadEndPool(g, newRand(3))
		require.NoError(t, err)
		if pool.Free() < 3 {
			t.Skip("maze has fewer than three dead ends")
		}

		var order []*Cell
		for i := 0; i < 3; i++ {
			cell, _, err := pool.Claim()
			require.NoError(t, err)
			order = append(order, cell)
		}
		require.NoError(t, pool.Release(order[1]))
		assert.Equal(t, []*Cell{order[0], order[2]}, pool.Claimed())
	})

	t.Run("Pool does not touch the maze", func(t *testing.T) {
		pool, err := NewDeadEndPool(g, newRand(4))
		require.NoError(t, err)
		_, _, err = pool.Claim()
		require.NoError(t, err)
		assert.Len(t, g.DeadEnds(), pool.Free()+1)
	})

	t.Run("Invalid arguments", func(t *testing.T) {
		_, err := NewDeadEndPool(nil, newRand(1))
		assert.ErrorIs(t, err, ErrNilMaze)
		_, err = NewDeadEndPool(g, nil)
		assert.ErrorIs(t, err, ErrNilRandomSource)
	})
}

func TestDeadEndPoolSingleCell(t *testing.T) {
	g, err := Build(1, 1, newRand(1))
	require.NoError(t, err)

	pool, err := NewDeadEndPool(g, newRand(1))
	require.NoError(t, err)
	_, _, err = pool.Claim()
	assert.ErrorIs(t, err, ErrNoFreeDeadEnd)
}
