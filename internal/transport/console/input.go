package console

import (
	"fmt"
	"strings"

	"github.com/rocketpen/tictactoe-cli/internal/apperror"
	"github.com/rocketpen/tictactoe-cli/internal/entity"
)

// coordLookup maps the digits 1-9, as printed on the board, to coordinates
// in row-major order.
var coordLookup = map[string]entity.Cell{
	"1": {Row: 0, Col: 0},
	"2": {Row: 0, Col: 1},
	"3": {Row: 0, Col: 2},
	"4": {Row: 1, Col: 0},
	"5": {Row: 1, Col: 1},
	"6": {Row: 1, Col: 2},
	"7": {Row: 2, Col: 0},
	"8": {Row: 2, Col: 1},
	"9": {Row: 2, Col: 2},
}

// TranslateToCell converts a human-entered cell number into a board
// coordinate. Anything that is not a digit from 1 to 9 is rejected.
func TranslateToCell(input string) (entity.Cell, error) {
	cell, ok := coordLookup[strings.TrimSpace(input)]
	if !ok {
		return entity.Cell{}, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, input)
	}

	return cell, nil
}
