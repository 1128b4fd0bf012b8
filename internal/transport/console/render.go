package console

import (
	"strconv"
	"strings"

	"github.com/rocketpen/tictactoe-cli/internal/entity"
)

const rowSeparator = "---+---+---"

// Render draws the board as an ascii grid. Empty cells show the digit a
// player would type to claim them; those digits never enter the board state.
func Render(board entity.Board) string {
	var sb strings.Builder

	sb.WriteString("\n")

	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, 0, entity.BoardSize)

		for col := 0; col < entity.BoardSize; col++ {
			mark := board[row][col]
			if mark == entity.EmptyCell {
				mark = strconv.Itoa(row*entity.BoardSize + col + 1)
			}
			cells = append(cells, " "+mark+" ")
		}

		sb.WriteString(strings.Join(cells, "|"))
		sb.WriteString("\n")

		if row < entity.BoardSize-1 {
			sb.WriteString(rowSeparator)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
