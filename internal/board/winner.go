package board

// State - terminal state of a board.
type State int

const (
	NotOver State = iota
	Player1Won
	Player2Won
	Draw
)

func (that State) String() string {
	switch that {
	case NotOver:
		return "not over"
	case Player1Won:
		return "player 1 won"
	case Player2Won:
		return "player 2 won"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

func (that State) IsOver() bool {
	return that != NotOver
}

type direction struct {
	dRow int
	dCol int
}

// horizontal, vertical, down-right and up-right.
var directions = [...]direction{
	{dRow: 0, dCol: 1},
	{dRow: 1, dCol: 0},
	{dRow: 1, dCol: 1},
	{dRow: -1, dCol: 1},
}

// IsWinner - reports whether player holds streak consecutive cells in a row,
// a column or either diagonal. Runs never wrap around the edges.
func (that *Board) IsWinner(player Occupant) bool {
	if !player.IsPlayer() || that.streak < 1 {
		return false
	}

	for _, dir := range directions {
		if that.hasRun(player, dir) {
			return true
		}
	}

	return false
}

// GameOver - Player1 is checked before Player2, so a board where both have a
// run reports Player1Won.
func (that *Board) GameOver() State {
	switch {
	case that.IsWinner(Player1):
		return Player1Won
	case that.IsWinner(Player2):
		return Player2Won
	case that.IsFull():
		return Draw
	default:
		return NotOver
	}
}

// hasRun - scans every anchor from which a full run along dir stays on the board.
func (that *Board) hasRun(player Occupant, dir direction) bool {
	rowFrom, rowTo := anchorRange(dir.dRow, that.height, that.streak)
	colFrom, colTo := anchorRange(dir.dCol, that.width, that.streak)

	for row := rowFrom; row <= rowTo; row++ {
		for col := colFrom; col <= colTo; col++ {
			if that.runFrom(player, row, col, dir) {
				return true
			}
		}
	}

	return false
}

func (that *Board) runFrom(player Occupant, row, col int, dir direction) bool {
	for k := 0; k < that.streak; k++ {
		if that.cells[row+k*dir.dRow][col+k*dir.dCol] != player {
			return false
		}
	}

	return true
}

// anchorRange - inclusive bounds for an anchor coordinate along one axis.
// The range is empty (from > to) when the run does not fit.
func anchorRange(delta, size, streak int) (int, int) {
	span := streak - 1

	switch {
	case delta > 0:
		return 0, size - 1 - span
	case delta < 0:
		return span, size - 1
	default:
		return 0, size - 1
	}
}
