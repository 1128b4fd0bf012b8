package entity

import (
	"fmt"

	"github.com/rocketpen/tictactoe-cli/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

type Game struct {
	ID      string    `json:"id"`
	Board   Board     `json:"board"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Turn    string    `json:"player_turn"`
	Players []*Player `json:"players,omitempty"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  Board{},
		Turn:   PlayerX,
		Status: StatusWaiting,
	}
}

// DetermineGameResult returns the winning mark, PlayerTie when the board is
// full without a winner, or "" while the game can continue.
func (that *Game) DetermineGameResult() string {
	for _, mark := range []string{PlayerX, PlayerO} {
		if that.Board.WinningLineExists(mark) {
			return mark
		}
	}

	// the game will continue until all the squares are full
	if !that.Board.IsFull() {
		return ""
	}

	return PlayerTie
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if !that.Board.IsMoveValid(row, col) {
		return apperror.ErrCellOccupied
	}

	that.Board.ApplyMove(playerMark, row, col)
	that.Turn = OpponentMark(playerMark)

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", apperror.ErrUnknownGameStatus, that.Status)
	}
}

// ActivePlayer returns the player whose mark matches the current turn, or
// nil once the game is finished.
func (that *Game) ActivePlayer() *Player {
	for _, player := range that.Players {
		if player.Mark == that.Turn {
			return player
		}
	}

	return nil
}
