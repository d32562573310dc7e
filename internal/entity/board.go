package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// Board is a square grid of marks. Accessors return copies.
type Board struct {
	cells [][]Mark
}

func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	cells := make([][]Mark, size)
	for i := range cells {
		cells[i] = make([]Mark, size)
	}

	return &Board{cells: cells}, nil
}

func (that *Board) Size() int {
	return len(that.cells)
}

// PlaceMark writes mark into the cell, overwriting whatever is there.
func (that *Board) PlaceMark(row, col int, mark Mark) error {
	if !that.inBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	that.cells[row][col] = mark

	return nil
}

func (that *Board) Cell(row, col int) (Mark, error) {
	if !that.inBounds(row, col) {
		return Empty, fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[row][col], nil
}

func (that *Board) HasEmptyCells() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				return true
			}
		}
	}

	return false
}

// Clear resets every cell to Empty.
func (that *Board) Clear() {
	for _, row := range that.cells {
		for i := range row {
			row[i] = Empty
		}
	}
}

// Row returns a copy of the row, or nil if the index is out of range.
func (that *Board) Row(i int) []Mark {
	if i < 0 || i >= that.Size() {
		return nil
	}

	row := make([]Mark, that.Size())
	copy(row, that.cells[i])

	return row
}

// Col returns a copy of the column, or nil if the index is out of range.
func (that *Board) Col(i int) []Mark {
	if i < 0 || i >= that.Size() {
		return nil
	}

	col := make([]Mark, 0, that.Size())
	for _, row := range that.cells {
		col = append(col, row[i])
	}

	return col
}

func (that *Board) Rows() [][]Mark {
	rows := make([][]Mark, 0, that.Size())
	for i := range that.cells {
		rows = append(rows, that.Row(i))
	}

	return rows
}

func (that *Board) Cols() [][]Mark {
	cols := make([][]Mark, 0, that.Size())
	for i := range that.cells {
		cols = append(cols, that.Col(i))
	}

	return cols
}

func (that *Board) MainDiagonal() []Mark {
	diagonal := make([]Mark, 0, that.Size())
	for i := range that.cells {
		diagonal = append(diagonal, that.cells[i][i])
	}

	return diagonal
}

// SecondaryDiagonal runs from the bottom-left corner to the top-right one.
func (that *Board) SecondaryDiagonal() []Mark {
	size := that.Size()

	diagonal := make([]Mark, 0, size)
	for i := range that.cells {
		diagonal = append(diagonal, that.cells[size-1-i][i])
	}

	return diagonal
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.Size() && col >= 0 && col < that.Size()
}
