package board

import (
	"errors"
	"fmt"
)

const (
	DefaultWidth  = 7
	DefaultHeight = 6
	DefaultStreak = 4
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = fmt.Errorf("%w: coordinates out of range", ErrInvalidArgument)
	ErrInvalidPlayer   = fmt.Errorf("%w: player must be 1 or 2", ErrInvalidArgument)
)

// Occupant - tag stored in every cell of the grid.
type Occupant int

const (
	Empty   Occupant = 0
	Player1 Occupant = 1
	Player2 Occupant = 2
)

func (that Occupant) IsPlayer() bool {
	return that == Player1 || that == Player2
}

// Opponent - returns the other player, Empty for non-player values.
func (that Occupant) Opponent() Occupant {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

func (that Occupant) String() string {
	switch that {
	case Empty:
		return "empty"
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return fmt.Sprintf("occupant(%d)", int(that))
	}
}

// Board - a connect-four grid. Row 0 is the top, column 0 is the left.
// A Board is not safe for concurrent use.
type Board struct {
	width  int
	height int
	streak int
	cells  [][]Occupant
}

// New - creates an empty board of height rows by width columns.
func New(width, height, streak int) *Board {
	cells := make([][]Occupant, height)
	for i := range cells {
		cells[i] = make([]Occupant, width)
	}

	return &Board{
		width:  width,
		height: height,
		streak: streak,
		cells:  cells,
	}
}

// NewDefault - creates an empty 7x6 board with a streak of 4.
func NewDefault() *Board {
	return New(DefaultWidth, DefaultHeight, DefaultStreak)
}

// Restore - resumes a board from a saved grid. The grid is trusted to have the
// given shape and to satisfy gravity; it is copied, never validated.
func Restore(width, height, streak int, cells [][]Occupant) *Board {
	return &Board{
		width:  width,
		height: height,
		streak: streak,
		cells:  copyCells(cells),
	}
}

// Dimensions - returns height and width, in that order.
func (that *Board) Dimensions() (int, int) {
	return that.height, that.width
}

func (that *Board) Streak() int {
	return that.streak
}

// Occupant - returns who holds the cell at row, col.
func (that *Board) Occupant(row, col int) (Occupant, error) {
	if !that.inBounds(row, col) {
		return Empty, fmt.Errorf("%w: row %d, column %d", ErrOutOfRange, row, col)
	}

	return that.cells[row][col], nil
}

// AddPiece - drops a piece of player into column. It reports false when the
// column is already full, in which case the board is left untouched.
func (that *Board) AddPiece(column int, player Occupant) (bool, error) {
	if column < 0 || column >= that.width {
		return false, fmt.Errorf("%w: column %d", ErrOutOfRange, column)
	}

	if !player.IsPlayer() {
		return false, fmt.Errorf("%w: got %d", ErrInvalidPlayer, int(player))
	}

	for row := that.height - 1; row >= 0; row-- {
		if that.cells[row][column] == Empty {
			that.cells[row][column] = player
			return true, nil
		}
	}

	return false, nil
}

// ColumnFull - reports whether column has no empty cell left.
func (that *Board) ColumnFull(column int) (bool, error) {
	if column < 0 || column >= that.width {
		return false, fmt.Errorf("%w: column %d", ErrOutOfRange, column)
	}

	for row := 0; row < that.height; row++ {
		if that.cells[row][column] == Empty {
			return false, nil
		}
	}

	return true, nil
}

// Count - number of cells held by the given occupant.
func (that *Board) Count(occupant Occupant) int {
	count := 0
	for row := 0; row < that.height; row++ {
		for col := 0; col < that.width; col++ {
			if that.cells[row][col] == occupant {
				count++
			}
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return that.Count(Empty) == 0
}

// NextPlayer - infers whose turn it is from the pieces on the board.
// The player with fewer pieces moves next; a tie goes to Player1.
func (that *Board) NextPlayer() Occupant {
	if that.Count(Player2) < that.Count(Player1) {
		return Player2
	}

	return Player1
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && row < that.height && col >= 0 && col < that.width
}

func copyCells(cells [][]Occupant) [][]Occupant {
	out := make([][]Occupant, len(cells))
	for i := range cells {
		out[i] = make([]Occupant, len(cells[i]))
		copy(out[i], cells[i])
	}

	return out
}
