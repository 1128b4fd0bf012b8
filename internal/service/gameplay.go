package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketpen/tictactoe-cli/internal/apperror"
	"github.com/rocketpen/tictactoe-cli/internal/entity"
)

type GamePlayService interface {
	NewMatch(playerOneType, playerTwoType string) (*entity.Game, error)
	Game() *entity.Game

	MakeHumanTurn(row, col int) error
	MakeBotTurn(ctx context.Context) (entity.Cell, error)

	ActivePlayer() *entity.Player
}

type gamePlayService struct {
	logger *slog.Logger

	botService BotService
	botDelay   time.Duration

	game *entity.Game
}

// NewGamePlayService creates the service that owns the live game. botDelay
// is how long a bot pretends to think before its move lands.
func NewGamePlayService(logger *slog.Logger, botService BotService, botDelay time.Duration) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
		botDelay:   botDelay,
	}
}

// NewMatch starts a fresh game. Player one always plays X and moves first.
func (that *gamePlayService) NewMatch(playerOneType, playerTwoType string) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	game.Players = []*entity.Player{
		{Mark: entity.PlayerX, Type: playerOneType},
		{Mark: entity.PlayerO, Type: playerTwoType},
	}
	game.Status = entity.StatusOngoing

	that.game = game
	that.logger.Info("match started", "game_id", game.ID, "player_x", playerOneType, "player_o", playerTwoType)

	return game, nil
}

func (that *gamePlayService) Game() *entity.Game {
	return that.game
}

func (that *gamePlayService) ActivePlayer() *entity.Player {
	if that.game == nil {
		return nil
	}

	return that.game.ActivePlayer()
}

// MakeHumanTurn applies a turn for the active human player.
func (that *gamePlayService) MakeHumanTurn(row, col int) error {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("cannot make turn: %w", err)
	}

	active := that.game.ActivePlayer()
	if active == nil || active.IsBot() {
		return apperror.ErrNotYourTurn
	}

	if err := that.game.MakeTurn(active.Mark, row, col); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

// MakeBotTurn lets the active bot player move after the thinking delay.
func (that *gamePlayService) MakeBotTurn(ctx context.Context) (entity.Cell, error) {
	if err := that.game.ConfirmOngoingState(); err != nil {
		return entity.Cell{}, fmt.Errorf("cannot make turn: %w", err)
	}

	active := that.game.ActivePlayer()
	if active == nil || !active.IsBot() {
		return entity.Cell{}, apperror.ErrNotYourTurn
	}

	if that.botDelay > 0 {
		select {
		case <-ctx.Done():
			return entity.Cell{}, fmt.Errorf("bot turn canceled: %w", ctx.Err())
		case <-time.After(that.botDelay):
		}
	}

	cell, err := that.botService.MakeTurn(that.game)
	if err != nil {
		return entity.Cell{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot moved", "game_id", that.game.ID, "mark", active.Mark, "row", cell.Row, "col", cell.Col)

	return cell, nil
}
