package entity

// Cell is one square of the board.
type Cell string

const (
	Empty   Cell = ""
	SymbolA Cell = "X"
	SymbolB Cell = "O"
)

// BoardSize is the number of cells on a 3x3 grid.
const BoardSize = 9

const side = 3

// Board is a 3x3 grid indexed 0..8 row by row:
//
//	0 1 2
//	3 4 5
//	6 7 8
type Board struct {
	cells [BoardSize]Cell
}

func NewBoard() *Board {
	return &Board{}
}

// Place marks the cell with the symbol. An occupied cell is left as is and false is returned.
func (that *Board) Place(symbol Cell, index int) bool {
	if that.cells[index] != Empty {
		return false
	}

	that.cells[index] = symbol

	return true
}

func (that *Board) IsFull() bool {
	return isFull(that.cells)
}

func (that *Board) Reset() {
	that.cells = [BoardSize]Cell{}
}

// Snapshot returns a copy of the cells.
func (that *Board) Snapshot() [BoardSize]Cell {
	return that.cells
}

func isFull(cells [BoardSize]Cell) bool {
	for _, cell := range cells {
		if cell == Empty {
			return false
		}
	}

	return true
}

func IsValidIndex(index int) bool {
	return index >= 0 && index < BoardSize
}

func Row(index int) int {
	return index / side
}

func Column(index int) int {
	return index % side
}
