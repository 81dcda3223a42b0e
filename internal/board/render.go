package board

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Style int

const (
	// StylePlain - numeric tags 0, 1 and 2.
	StylePlain Style = iota
	// StyleSymbolic - blank, filled dot and open dot.
	StyleSymbolic
)

const (
	symbolEmpty   = " "
	symbolPlayer1 = "●"
	symbolPlayer2 = "○"
)

// Cells - returns a deep copy of the grid.
func (that *Board) Cells() [][]Occupant {
	return copyCells(that.cells)
}

// Render - maps every cell to its textual form in the given style.
// The result shares no memory with the board.
func (that *Board) Render(style Style) [][]string {
	out := make([][]string, len(that.cells))
	for i, row := range that.cells {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = cellText(cell, style)
		}
	}

	return out
}

// Display - writes the rendered grid to w, one row per line.
func (that *Board) Display(w io.Writer, style Style) error {
	for _, row := range that.Render(style) {
		if _, err := fmt.Fprintf(w, "[%s]\n", strings.Join(row, " ")); err != nil {
			return fmt.Errorf("failed to write board row: %w", err)
		}
	}

	return nil
}

func (that *Board) String() string {
	var sb strings.Builder
	_ = that.Display(&sb, StylePlain) // strings.Builder never fails

	return sb.String()
}

func cellText(cell Occupant, style Style) string {
	if style != StyleSymbolic {
		return strconv.Itoa(int(cell))
	}

	switch cell {
	case Player1:
		return symbolPlayer1
	case Player2:
		return symbolPlayer2
	default:
		return symbolEmpty
	}
}
