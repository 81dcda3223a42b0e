package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/board"
)

func TestNewSnapshot(t *testing.T) {
	// Given: a board with a piece
	b := board.New(5, 4, 3)
	ok, err := b.AddPiece(2, board.Player1)
	require.NoError(t, err)
	require.True(t, ok)

	// When: a snapshot is taken
	snap := NewSnapshot("abc", b)

	// Then: it should carry the board settings, cells and state
	assert.Equal(t, "abc", snap.ID)
	assert.Equal(t, 5, snap.Width)
	assert.Equal(t, 4, snap.Height)
	assert.Equal(t, 3, snap.Streak)
	assert.Equal(t, board.Player1, snap.Cells[3][2])
	assert.Equal(t, board.NotOver, snap.State)
	assert.False(t, snap.IsFinished())
}

func TestSnapshot_Board(t *testing.T) {
	t.Run("Restored board continues where the snapshot left off", func(t *testing.T) {
		// Given: a snapshot of a board after one move
		b := board.NewDefault()
		_, err := b.AddPiece(0, board.Player1)
		require.NoError(t, err)
		snap := NewSnapshot("abc", b)

		// When: the board is restored
		restored := snap.Board()

		// Then: it should infer player 2 as next and hold the same cells
		assert.Equal(t, board.Player2, restored.NextPlayer())
		assert.Equal(t, b.Cells(), restored.Cells())
	})

	t.Run("Update refreshes the state after a winning move", func(t *testing.T) {
		// Given: a snapshot of a board one move away from a vertical win
		b := board.NewDefault()
		for i := 0; i < 3; i++ {
			_, err := b.AddPiece(0, board.Player1)
			require.NoError(t, err)
		}
		snap := NewSnapshot("abc", b)

		// When: the winning piece is dropped on the restored board
		restored := snap.Board()
		_, err := restored.AddPiece(0, board.Player1)
		require.NoError(t, err)
		snap.Update(restored)

		// Then: the snapshot reports the win
		assert.Equal(t, board.Player1Won, snap.State)
		assert.True(t, snap.IsFinished())
	})
}

func TestSnapshot_Validate(t *testing.T) {
	valid := func() *Snapshot {
		return NewSnapshot("abc", board.NewDefault())
	}

	t.Run("Snapshot of a real board is valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	tests := []struct {
		name   string
		mutate func(s *Snapshot)
	}{
		{"Zero width", func(s *Snapshot) { s.Width = 0 }},
		{"Streak below two", func(s *Snapshot) { s.Streak = 1 }},
		{"Missing row", func(s *Snapshot) { s.Cells = s.Cells[:5] }},
		{"Square grid on a 7x6 board", func(s *Snapshot) { s.Cells = board.New(7, 7, 4).Cells() }},
		{"Short row", func(s *Snapshot) { s.Cells[2] = s.Cells[2][:6] }},
		{"Unknown occupant", func(s *Snapshot) { s.Cells[5][0] = board.Occupant(3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a snapshot corrupted in one way
			snap := valid()
			tt.mutate(snap)

			// When: it is validated
			err := snap.Validate()

			// Then: ErrInvalidBoard is returned
			assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
		})
	}
}
