package piece

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellsDecodesFourCellsForEveryPieceAndRotation(t *testing.T) {
	for id := ID(0); id < NumPieces; id++ {
		for rot := 0; rot < NumRotations; rot++ {
			cells, err := Cells(id, rot, Cell{})
			require.NoError(t, err)
			require.Len(t, cells, 4)
		}
	}
}

func TestCellsTranslatesByOrigin(t *testing.T) {
	origin := Cell{X: 3, Y: 5}
	atOrigin, err := Cells(O, 0, origin)
	require.NoError(t, err)

	atZero, err := Cells(O, 0, Cell{})
	require.NoError(t, err)

	for i := range atZero {
		require.Equal(t, atZero[i].X+origin.X, atOrigin[i].X)
		require.Equal(t, atZero[i].Y+origin.Y, atOrigin[i].Y)
	}
}

func TestCellsNormalizesNegativeRotation(t *testing.T) {
	a, err := Cells(T, -1, Cell{})
	require.NoError(t, err)
	b, err := Cells(T, 3, Cell{})
	require.NoError(t, err)
	require.Equal(t, b, a)
}

func TestOccupiedAgreesWithCells(t *testing.T) {
	for id := ID(0); id < NumPieces; id++ {
		for rot := 0; rot < NumRotations; rot++ {
			cells, err := Cells(id, rot, Cell{})
			require.NoError(t, err)

			want := make(map[Cell]bool, 4)
			for _, c := range cells {
				want[c] = true
			}

			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					require.Equal(t, want[Cell{X: x, Y: y}], Occupied(id, rot, x, y))
				}
			}
		}
	}
}

func TestOccupiedOutOfBoundsIsFalse(t *testing.T) {
	require.False(t, Occupied(O, 0, -1, 0))
	require.False(t, Occupied(O, 0, 0, 4))
	require.False(t, Occupied(O, 0, 4, 4))
}

func TestOccupiedNormalizesNegativeRotation(t *testing.T) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, Occupied(T, 3, x, y), Occupied(T, -1, x, y))
		}
	}
}
