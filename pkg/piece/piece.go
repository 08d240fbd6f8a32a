// Package piece defines the seven tetromino shapes and their rotation
// states as 4x4 bitmasks.
package piece

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrInvalidShapeTable is returned, wrapped with the offending piece and
// rotation, when a rotation mask does not decode to exactly four cells.
// Nothing aborts on it: the board and environment treat such a piece as
// unplaceable.
var ErrInvalidShapeTable = errors.New("piece: shape table entry does not decode to exactly four cells")

// ID identifies one of the seven tetromino kinds.
type ID int

const (
	I ID = iota
	Z
	S
	T
	L
	J
	O
	NumPieces
)

// Cell is a single cell coordinate within the 4x4 rotation box, or within
// the board once translated by an origin.
type Cell struct {
	X, Y int
}

// masks holds, per piece and per rotation, a 16-bit mask over a 4x4 box.
// Bit index is y*4+x, row-major, matching the reference engine's layout.
var masks = [NumPieces][4]uint16{
	I: {0x2222, 0x00F0, 0x2222, 0x00F0},
	Z: {0x2310, 0x3600, 0x2310, 0x0360},
	S: {0x1320, 0x0630, 0x2640, 0x6300},
	T: {0x2320, 0x0720, 0x2620, 0x2700},
	L: {0x2230, 0x0074, 0x0622, 0x02E0},
	J: {0x3220, 0x0710, 0x2260, 0x4700},
	O: {0x0660, 0x0660, 0x0660, 0x0660},
}

var (
	cellTableOnce sync.Once
	cellTable     [NumPieces][4][4]Cell
	cellTableErr  error
)

func buildCellTable() {
	for id := ID(0); id < NumPieces; id++ {
		for rot := 0; rot < 4; rot++ {
			mask := masks[id][rot]
			n := 0
			var cells [4]Cell
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					bit := uint(y*4 + x)
					if mask&(1<<bit) == 0 {
						continue
					}
					if n == 4 {
						cellTableErr = errors.Wrapf(ErrInvalidShapeTable, "piece %d rotation %d", id, rot)
						return
					}
					cells[n] = Cell{X: x, Y: y}
					n++
				}
			}
			if n != 4 {
				cellTableErr = errors.Wrapf(ErrInvalidShapeTable, "piece %d rotation %d", id, rot)
				return
			}
			cellTable[id][rot] = cells
		}
	}
}

// Cells returns the four occupied cells of the given piece/rotation,
// translated by origin. It returns a wrapped ErrInvalidShapeTable only if
// the compiled-in shape table itself is corrupt, which indicates a
// programming error rather than a runtime condition.
func Cells(id ID, rotation int, origin Cell) ([4]Cell, error) {
	cellTableOnce.Do(buildCellTable)
	if cellTableErr != nil {
		return [4]Cell{}, cellTableErr
	}
	rotation = ((rotation % 4) + 4) % 4
	base := cellTable[id][rotation]
	var out [4]Cell
	for i, c := range base {
		out[i] = Cell{X: c.X + origin.X, Y: c.Y + origin.Y}
	}
	return out, nil
}

// NumRotations is the number of distinct rotation states tracked per piece.
const NumRotations = 4

// Occupied reports whether (x, y) within the 4x4 rotation box is set for the
// given piece/rotation. x and y outside [0,4) are never occupied. This is a
// direct bitmask query against masks, distinct from the lazily-built
// cellTable that Cells uses.
func Occupied(id ID, rotation, x, y int) bool {
	if x < 0 || x >= 4 || y < 0 || y >= 4 {
		return false
	}
	rotation = ((rotation % 4) + 4) % 4
	bit := uint(y*4 + x)
	return masks[id][rotation]&(1<<bit) != 0
}
