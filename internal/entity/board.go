package entity

const (
	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 3
)

// Cell is a board coordinate, row and column both in [0,2].
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is the 3x3 grid. Every cell holds PlayerX, PlayerO or EmptyCell.
type Board [BoardSize][BoardSize]string

// winLines are the 8 lines that decide a game: 3 rows, 3 columns, 2 diagonals.
var winLines = [8][3]Cell{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{2, 0}, {1, 1}, {0, 2}},
}

// EmptyCells returns every unmarked cell in row-major order.
func (that *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, BoardSize*BoardSize)

	for row := range that {
		for col, mark := range that[row] {
			if mark == EmptyCell {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}

	return cells
}

// IsMoveValid reports whether the cell is on the board and still empty.
func (that *Board) IsMoveValid(row, col int) bool {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return false
	}

	return that[row][col] == EmptyCell
}

// ApplyMove writes the mark into the cell. The caller is expected to have
// validated the move first.
func (that *Board) ApplyMove(mark string, row, col int) {
	that[row][col] = mark
}

// WinningLineExists reports whether mark fully occupies any of the 8 lines.
func (that *Board) WinningLineExists(mark string) bool {
	for _, line := range winLines {
		if that[line[0].Row][line[0].Col] == mark &&
			that[line[1].Row][line[1].Col] == mark &&
			that[line[2].Row][line[2].Col] == mark {
			return true
		}
	}

	return false
}

// IsFull reports whether no empty cells remain.
func (that *Board) IsFull() bool {
	for row := range that {
		for _, mark := range that[row] {
			if mark == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Copy returns an independent value copy of the board.
func (that *Board) Copy() Board {
	return *that
}

// OpponentMark returns the mark of the other player.
func OpponentMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}

	return PlayerX
}
