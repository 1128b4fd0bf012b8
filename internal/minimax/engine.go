package minimax

import (
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/rocketpen/tictactoe-cli/internal/apperror"
	"github.com/rocketpen/tictactoe-cli/internal/entity"
)

// noCell is returned from terminal positions, where no move is made.
var noCell = entity.Cell{Row: -1, Col: -1}

// Engine picks moves for the computer player with an exhaustive minimax
// search. The game tree is small enough that full-depth search is always
// feasible, so there is no pruning and no cutoff besides the number of
// empty cells.
type Engine struct {
	rng *rand.Rand
}

// NewEngine creates an engine. The rng decides the opening move only; pass
// a seeded generator to make openings reproducible.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// ChooseMove returns the best cell for self, assuming opponent answers every
// move optimally. It must be called with at least one empty cell on the
// board, otherwise it reports apperror.ErrNoAvailableMoves.
//
// On a completely empty board it plays a random cell instead of searching:
// every opening scores a draw under optimal play, and a fixed opening would
// make the computer perfectly predictable.
func (that *Engine) ChooseMove(board entity.Board, self, opponent string) (entity.Cell, error) {
	empties := board.EmptyCells()
	if len(empties) == 0 {
		return noCell, apperror.ErrNoAvailableMoves
	}

	if len(empties) == entity.BoardSize*entity.BoardSize {
		return empties[that.rng.Intn(len(empties))], nil
	}

	// Root candidates are independent, so each first move is searched on its
	// own goroutine. Scores land in a slice indexed by candidate, and the
	// scan below walks it in order, keeping the pick identical to a
	// sequential row-major sweep: among equal scores the first cell wins.
	scores := make([]int, len(empties))

	var group errgroup.Group
	for i, cell := range empties {
		i, cell := i, cell
		group.Go(func() error {
			branch := board.Copy()
			branch.ApplyMove(self, cell.Row, cell.Col)

			_, scores[i] = that.search(branch, len(empties)-1, opponent, self, opponent)

			return nil
		})
	}

	_ = group.Wait() // branches never return an error

	best := empties[0]
	bestScore := scores[0]

	for i := 1; i < len(empties); i++ {
		if scores[i] > bestScore {
			best = empties[i]
			bestScore = scores[i]
		}
	}

	return best, nil
}

// search walks the game tree below board, with player to move, and returns
// the cell that is best for player together with the subtree score from
// self's perspective. Terminal positions report noCell and the position's
// evaluation.
//
// Every branch mutates a private copy of the board, so sibling branches
// never see each other's moves.
func (that *Engine) search(board entity.Board, depth int, player, self, opponent string) (entity.Cell, int) {
	if depth == 0 || board.WinningLineExists(self) || board.WinningLineExists(opponent) {
		return noCell, evaluate(board, self, opponent)
	}

	best := noCell
	bestScore := math.MinInt

	if player != self {
		bestScore = math.MaxInt
	}

	for _, cell := range board.EmptyCells() {
		branch := board.Copy()
		branch.ApplyMove(player, cell.Row, cell.Col)

		next := self
		if player == self {
			next = opponent
		}

		_, score := that.search(branch, depth-1, next, self, opponent)

		if player == self {
			// max value
			if score > bestScore {
				best, bestScore = cell, score
			}
		} else {
			// min value
			if score < bestScore {
				best, bestScore = cell, score
			}
		}
	}

	return best, bestScore
}

// evaluate scores a position from self's perspective: 1 when self holds a
// winning line, -1 when opponent does, 0 otherwise (draws included).
func evaluate(board entity.Board, self, opponent string) int {
	switch {
	case board.WinningLineExists(self):
		return 1
	case board.WinningLineExists(opponent):
		return -1
	default:
		return 0
	}
}
