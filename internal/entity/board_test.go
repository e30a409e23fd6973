package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Place(t *testing.T) {
	t.Run("Places symbol into empty cell", func(t *testing.T) {
		// Given: a new board
		board := NewBoard()

		// When: placing X into cell 4
		ok := board.Place(SymbolA, 4)

		// Then: the move is accepted and the cell holds X
		require.True(t, ok)
		assert.Equal(t, SymbolA, board.Snapshot()[4])
	})

	t.Run("Occupied cell is never overwritten", func(t *testing.T) {
		// Given: a board with X in cell 0
		board := NewBoard()
		require.True(t, board.Place(SymbolA, 0))

		// When: placing O and then X into the same cell
		first := board.Place(SymbolB, 0)
		second := board.Place(SymbolA, 0)

		// Then: both calls are rejected and the cell still holds X
		assert.False(t, first)
		assert.False(t, second)
		assert.Equal(t, SymbolA, board.Snapshot()[0])
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: a new board
	board := NewBoard()
	assert.False(t, board.IsFull())

	// When: every cell but the last is filled
	for i := range BoardSize - 1 {
		board.Place(SymbolA, i)
	}

	// Then: the board is not full yet
	assert.False(t, board.IsFull())

	// When: the last cell is filled
	board.Place(SymbolB, BoardSize-1)

	// Then: the board is full
	assert.True(t, board.IsFull())
}

func TestIsFull(t *testing.T) {
	// Given: a full board with one cell cleared in turn
	for i := range BoardSize {
		var cells [BoardSize]Cell
		for j := range cells {
			cells[j] = SymbolA
		}
		cells[i] = Empty

		// Then: a single empty cell anywhere means the board is not full
		assert.False(t, isFull(cells), "empty cell %d", i)
	}
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with a few marks
	board := NewBoard()
	board.Place(SymbolA, 0)
	board.Place(SymbolB, 8)

	// When: resetting the board
	board.Reset()

	// Then: all cells are empty again
	assert.Equal(t, [BoardSize]Cell{}, board.Snapshot())
}

func TestBoard_Snapshot(t *testing.T) {
	// Given: a board and a snapshot of it
	board := NewBoard()
	snapshot := board.Snapshot()

	// When: the snapshot is modified
	snapshot[3] = SymbolB

	// Then: the board is not affected
	assert.Equal(t, Empty, board.Snapshot()[3])
}

func TestRowColumn(t *testing.T) {
	tests := []struct {
		index  int
		row    int
		column int
	}{
		{index: 0, row: 0, column: 0},
		{index: 2, row: 0, column: 2},
		{index: 4, row: 1, column: 1},
		{index: 5, row: 1, column: 2},
		{index: 6, row: 2, column: 0},
		{index: 8, row: 2, column: 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.row, Row(tt.index), "row of %d", tt.index)
		assert.Equal(t, tt.column, Column(tt.index), "column of %d", tt.index)
	}
}
