// Package board implements the fixed-size Tetris playfield grid.
package board

import "github.com/student/tetris-mcts/pkg/piece"

const (
	Width  = 10
	Height = 20
)

// Board is a 10x20 occupancy grid. A zero value is an empty board. Cell
// values are 0 for empty, or pieceID+1 for occupied, matching the reference
// engine's storage convention.
type Board struct {
	Grid [Height][Width]int8
}

// Occupied reports whether (x, y) is occupied. Out-of-bounds coordinates
// are reported as occupied, matching the reference engine's canPlace
// boundary check.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return true
	}
	return b.Grid[y][x] != 0
}

// CanPlace reports whether all four cells of the given piece at the given
// rotation/origin are empty and in bounds.
func (b *Board) CanPlace(id piece.ID, rotation int, origin piece.Cell) bool {
	cells, err := piece.Cells(id, rotation, origin)
	if err != nil {
		return false
	}
	for _, c := range cells {
		if b.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock writes the piece's cells into the grid. Cells that fall outside the
// board are silently ignored, matching the reference engine's Board::lock.
// The environment only locks poses that already passed CanPlace, so this
// path is purely defensive.
func (b *Board) Lock(id piece.ID, rotation int, origin piece.Cell) {
	cells, err := piece.Cells(id, rotation, origin)
	if err != nil {
		return
	}
	for _, c := range cells {
		if c.X < 0 || c.X >= Width || c.Y < 0 || c.Y >= Height {
			continue
		}
		b.Grid[c.Y][c.X] = int8(id) + 1
	}
}

// ClearFullLines removes every full row, compacting remaining rows downward
// in place, and returns the number of rows cleared. The algorithm mirrors
// the reference engine: scan bottom-to-top with a moving write pointer,
// then zero whatever rows are left at the top.
func (b *Board) ClearFullLines() int {
	targetRow := Height - 1
	cleared := 0
	for row := Height - 1; row >= 0; row-- {
		full := true
		for x := 0; x < Width; x++ {
			if b.Grid[row][x] == 0 {
				full = false
				break
			}
		}
		if full {
			cleared++
			continue
		}
		if targetRow != row {
			b.Grid[targetRow] = b.Grid[row]
		}
		targetRow--
	}
	for row := targetRow; row >= 0; row-- {
		for x := 0; x < Width; x++ {
			b.Grid[row][x] = 0
		}
	}
	return cleared
}
