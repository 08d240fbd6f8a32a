package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/student/tetris-mcts/pkg/piece"
)

func TestCanPlaceRejectsOutOfBounds(t *testing.T) {
	b := &Board{}
	require.False(t, b.CanPlace(piece.O, 0, piece.Cell{X: -2, Y: 0}))
	require.False(t, b.CanPlace(piece.O, 0, piece.Cell{X: Width - 1, Y: 0}))
}

func TestLockIgnoresOutOfBoundsCells(t *testing.T) {
	b := &Board{}
	require.NotPanics(t, func() {
		b.Lock(piece.I, 1, piece.Cell{X: Width - 1, Y: -3})
	})
}

func TestClearFullLinesCompactsAndCounts(t *testing.T) {
	b := &Board{}
	for x := 0; x < Width; x++ {
		b.Grid[Height-1][x] = 1
	}
	b.Grid[Height-2][0] = 2

	cleared := b.ClearFullLines()
	require.Equal(t, 1, cleared)
	require.Equal(t, int8(2), b.Grid[Height-1][0])
	for x := 1; x < Width; x++ {
		require.Equal(t, int8(0), b.Grid[Height-1][x])
	}
	for y := 0; y < Height-1; y++ {
		for x := 0; x < Width; x++ {
			require.Equal(t, int8(0), b.Grid[y][x])
		}
	}
}

func TestClearFullLinesNoneCleared(t *testing.T) {
	b := &Board{}
	b.Grid[Height-1][0] = 1
	cleared := b.ClearFullLines()
	require.Equal(t, 0, cleared)
	require.Equal(t, int8(1), b.Grid[Height-1][0])
}
