package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketpen/tictactoe-cli/internal/apperror"
	"github.com/rocketpen/tictactoe-cli/internal/entity"
	"github.com/rocketpen/tictactoe-cli/internal/minimax"
)

func newTestBotService() BotService {
	return NewBotService(minimax.NewEngine(rand.New(rand.NewSource(1))))
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Bot takes its winning cell", func(t *testing.T) {
		// Given: an ongoing game where the bot plays O and can win the
		// middle row
		game := &entity.Game{
			ID: "g1",
			Board: entity.Board{
				{entity.PlayerX, entity.PlayerX, entity.EmptyCell},
				{entity.PlayerO, entity.PlayerO, entity.EmptyCell},
				{entity.PlayerX, entity.EmptyCell, entity.EmptyCell},
			},
			Turn:   entity.PlayerO,
			Status: entity.StatusOngoing,
			Players: []*entity.Player{
				{Mark: entity.PlayerX, Type: entity.HumanType},
				{Mark: entity.PlayerO, Type: entity.BotType},
			},
		}

		// When: the bot makes its turn
		cell, err := newTestBotService().MakeTurn(game)

		// Then: the bot completes the row and the game is finished
		require.NoError(t, err)
		assert.Equal(t, entity.Cell{Row: 1, Col: 2}, cell)
		assert.Equal(t, entity.PlayerO, game.Winner)
		assert.True(t, game.IsFinished())
	})

	t.Run("Error when no bot has the turn", func(t *testing.T) {
		// Given: an ongoing game between two humans
		game := entity.NewGame("g2")
		game.Status = entity.StatusOngoing
		game.Players = []*entity.Player{
			{Mark: entity.PlayerX, Type: entity.HumanType},
			{Mark: entity.PlayerO, Type: entity.HumanType},
		}

		// When: the bot service is asked to move
		_, err := newTestBotService().MakeTurn(game)

		// Then: it reports that no bot player was found
		assert.ErrorIs(t, err, apperror.ErrBotNotFound)
	})

	t.Run("Error when the board has no moves left", func(t *testing.T) {
		// Given: a drawn board that was never marked finished
		game := &entity.Game{
			ID: "g3",
			Board: entity.Board{
				{entity.PlayerX, entity.PlayerO, entity.PlayerX},
				{entity.PlayerO, entity.PlayerX, entity.PlayerO},
				{entity.PlayerO, entity.PlayerX, entity.PlayerO},
			},
			Turn:   entity.PlayerO,
			Status: entity.StatusOngoing,
			Players: []*entity.Player{
				{Mark: entity.PlayerO, Type: entity.BotType},
			},
		}

		// When: the bot service is asked to move
		_, err := newTestBotService().MakeTurn(game)

		// Then: the engine's refusal surfaces
		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}
