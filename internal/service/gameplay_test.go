package service

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketpen/tictactoe-cli/internal/apperror"
	"github.com/rocketpen/tictactoe-cli/internal/entity"
	"github.com/rocketpen/tictactoe-cli/internal/minimax"
)

func newTestGamePlayService(botDelay time.Duration) GamePlayService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	botService := NewBotService(minimax.NewEngine(rand.New(rand.NewSource(1))))

	return NewGamePlayService(logger, botService, botDelay)
}

func TestGamePlayService_NewMatch(t *testing.T) {
	// Given: a fresh gameplay service
	gamePlay := newTestGamePlayService(0)

	// When: starting a human vs bot match
	game, err := gamePlay.NewMatch(entity.HumanType, entity.BotType)
	require.NoError(t, err)

	// Then: the game is ongoing, X is human, O is bot, X moves first
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, entity.StatusOngoing, game.Status)
	assert.Equal(t, entity.PlayerX, game.Turn)

	require.Len(t, game.Players, 2)
	assert.Equal(t, entity.PlayerX, game.Players[0].Mark)
	assert.False(t, game.Players[0].IsBot())
	assert.Equal(t, entity.PlayerO, game.Players[1].Mark)
	assert.True(t, game.Players[1].IsBot())

	// And: the service hands back the same live game
	assert.Same(t, game, gamePlay.Game())
}

func TestGamePlayService_MakeHumanTurn(t *testing.T) {
	t.Run("Applies the active human's move", func(t *testing.T) {
		// Given: a human vs human match
		gamePlay := newTestGamePlayService(0)
		game, err := gamePlay.NewMatch(entity.HumanType, entity.HumanType)
		require.NoError(t, err)

		// When: the first player takes the center
		err = gamePlay.MakeHumanTurn(1, 1)

		// Then: the move lands and the turn passes to O
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[1][1])
		assert.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Rejects a human move when a bot is active", func(t *testing.T) {
		// Given: a bot vs human match, bot moves first
		gamePlay := newTestGamePlayService(0)
		_, err := gamePlay.NewMatch(entity.BotType, entity.HumanType)
		require.NoError(t, err)

		// When: a human move comes in out of turn
		err = gamePlay.MakeHumanTurn(0, 0)

		// Then: it is refused
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Occupied cell errors pass through", func(t *testing.T) {
		// Given: a human vs human match with the center taken
		gamePlay := newTestGamePlayService(0)
		_, err := gamePlay.NewMatch(entity.HumanType, entity.HumanType)
		require.NoError(t, err)
		require.NoError(t, gamePlay.MakeHumanTurn(1, 1))

		// When: the next player tries the same cell
		err = gamePlay.MakeHumanTurn(1, 1)

		// Then: the occupancy error surfaces for the caller to re-prompt on
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
	})
}

func TestGamePlayService_MakeBotTurn(t *testing.T) {
	t.Run("Rejects a bot move when a human is active", func(t *testing.T) {
		// Given: a human vs bot match, human moves first
		gamePlay := newTestGamePlayService(0)
		_, err := gamePlay.NewMatch(entity.HumanType, entity.BotType)
		require.NoError(t, err)

		// When: a bot turn is requested anyway
		_, err = gamePlay.MakeBotTurn(context.Background())

		// Then: it is refused
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Canceled context aborts the thinking delay", func(t *testing.T) {
		// Given: a bot vs human match with a long thinking delay
		gamePlay := newTestGamePlayService(time.Minute)
		_, err := gamePlay.NewMatch(entity.BotType, entity.HumanType)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: the bot's turn starts on a canceled context
		_, err = gamePlay.MakeBotTurn(ctx)

		// Then: the turn aborts instead of sleeping
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGamePlayService_BotVsBotPlaysToDraw(t *testing.T) {
	// Given: a bot vs bot match with no thinking delay
	gamePlay := newTestGamePlayService(0)
	game, err := gamePlay.NewMatch(entity.BotType, entity.BotType)
	require.NoError(t, err)

	// When: the bots play the game out
	for !game.IsFinished() {
		_, err = gamePlay.MakeBotTurn(context.Background())
		require.NoError(t, err)
	}

	// Then: optimal play on both sides ends in a tie
	assert.Equal(t, entity.PlayerTie, game.Winner)
	assert.Nil(t, gamePlay.ActivePlayer())
}
