package board

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_Render(t *testing.T) {
	t.Run("Plain style uses numeric tags", func(t *testing.T) {
		// Given: a small board with one piece per player
		b := Restore(3, 2, 2, parseGrid("...", "12."))

		// When: rendering in plain style
		got := b.Render(StylePlain)

		// Then: cells should be 0, 1 and 2
		assert.Equal(t, [][]string{
			{"0", "0", "0"},
			{"1", "2", "0"},
		}, got)
	})

	t.Run("Symbolic style uses dots", func(t *testing.T) {
		// Given: a small board with one piece per player
		b := Restore(3, 2, 2, parseGrid("...", "12."))

		// When: rendering in symbolic style
		got := b.Render(StyleSymbolic)

		// Then: player 1 is a filled dot, player 2 an open dot, empty a space
		assert.Equal(t, [][]string{
			{" ", " ", " "},
			{"●", "○", " "},
		}, got)
	})

	t.Run("Rendered copy is independent of the board", func(t *testing.T) {
		// Given: a rendering and a plain copy of an empty board
		b := NewDefault()
		rendered := b.Render(StylePlain)
		cells := b.Cells()

		// When: the caller corrupts both
		rendered[5][0] = "2"
		cells[5][0] = Player2

		// Then: the board still reports an empty cell
		got, err := b.Occupant(5, 0)
		require.NoError(t, err)
		assert.Equal(t, Empty, got)
	})
}

func TestBoard_Display(t *testing.T) {
	// Given: a small board with pieces
	b := Restore(3, 2, 2, parseGrid("...", "21."))

	// When: displaying it
	var buf bytes.Buffer
	err := b.Display(&buf, StylePlain)

	// Then: each row is printed on its own line
	require.NoError(t, err)
	assert.Equal(t, "[0 0 0]\n[2 1 0]\n", buf.String())
	assert.Equal(t, buf.String(), b.String())

	// When: displaying it with symbols
	buf.Reset()
	require.NoError(t, b.Display(&buf, StyleSymbolic))

	// Then: symbols are used
	assert.Equal(t, "[     ]\n[○ ●  ]\n", buf.String())
}
