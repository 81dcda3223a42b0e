package entity

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/board"
)

// Snapshot - serialized form of a board, enough to resume it later.
type Snapshot struct {
	ID     string             `json:"id"`
	Width  int                `json:"width"`
	Height int                `json:"height"`
	Streak int                `json:"streak"`
	Cells  [][]board.Occupant `json:"cells"`
	State  board.State        `json:"state"`
}

func NewSnapshot(id string, b *board.Board) *Snapshot {
	height, width := b.Dimensions()

	return &Snapshot{
		ID:     id,
		Width:  width,
		Height: height,
		Streak: b.Streak(),
		Cells:  b.Cells(),
		State:  b.GameOver(),
	}
}

// Validate - checks that the stored grid has the declared shape and holds only
// known occupants. Gravity is not checked.
func (that *Snapshot) Validate() error {
	if that.Width < 1 || that.Height < 1 || that.Streak < 2 {
		return fmt.Errorf("%w: %dx%d, streak %d", apperror.ErrInvalidBoard, that.Width, that.Height, that.Streak)
	}

	if len(that.Cells) != that.Height {
		return fmt.Errorf("%w: %d rows, want %d", apperror.ErrInvalidBoard, len(that.Cells), that.Height)
	}

	for i, row := range that.Cells {
		if len(row) != that.Width {
			return fmt.Errorf("%w: row %d has %d cells, want %d", apperror.ErrInvalidBoard, i, len(row), that.Width)
		}

		for j, cell := range row {
			if cell != board.Empty && !cell.IsPlayer() {
				return fmt.Errorf("%w: unknown occupant %d at row %d, column %d", apperror.ErrInvalidBoard, int(cell), i, j)
			}
		}
	}

	return nil
}

// Board - restores a playable board from the snapshot.
func (that *Snapshot) Board() *board.Board {
	return board.Restore(that.Width, that.Height, that.Streak, that.Cells)
}

// Update - refreshes cells and state from b after a move.
func (that *Snapshot) Update(b *board.Board) {
	that.Cells = b.Cells()
	that.State = b.GameOver()
}

func (that *Snapshot) IsFinished() bool {
	return that.State.IsOver()
}
