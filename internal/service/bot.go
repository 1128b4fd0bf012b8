package service

import (
	"fmt"

	"github.com/rocketpen/tictactoe-cli/internal/apperror"
	"github.com/rocketpen/tictactoe-cli/internal/entity"
)

// moveChooser is the search engine contract the bot relies on.
type moveChooser interface {
	ChooseMove(board entity.Board, self, opponent string) (entity.Cell, error)
}

type BotService interface {
	MakeTurn(game *entity.Game) (entity.Cell, error)
}

type botService struct {
	engine moveChooser
}

func NewBotService(engine moveChooser) BotService {
	return &botService{engine: engine}
}

// MakeTurn finds the bot player whose turn it is, asks the engine for a
// move and applies it to the game.
func (that *botService) MakeTurn(game *entity.Game) (entity.Cell, error) {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() && player.Mark == game.Turn {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return entity.Cell{}, apperror.ErrBotNotFound
	}

	cell, err := that.engine.ChooseMove(game.Board, botPlayer.Mark, entity.OpponentMark(botPlayer.Mark))
	if err != nil {
		return entity.Cell{}, fmt.Errorf("failed to choose move: %w", err)
	}

	if err = game.MakeTurn(botPlayer.Mark, cell.Row, cell.Col); err != nil {
		return entity.Cell{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}
