package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"

	"github.com/rocketpen/tictactoe-cli/internal/apperror"
	"github.com/rocketpen/tictactoe-cli/internal/entity"
)

var errQuit = errors.New("player quit")

type gamePlay interface {
	NewMatch(playerOneType, playerTwoType string) (*entity.Game, error)
	Game() *entity.Game

	MakeHumanTurn(row, col int) error
	MakeBotTurn(ctx context.Context) (entity.Cell, error)

	ActivePlayer() *entity.Player
}

// Server runs one game of tic-tac-toe on the terminal.
type Server struct {
	logger   *slog.Logger
	gamePlay gamePlay

	line *readline.Instance
	out  io.Writer
}

func New(logger *slog.Logger, gamePlay gamePlay) (*Server, error) {
	line, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}

	return &Server{
		logger:   logger.With("component", "console"),
		gamePlay: gamePlay,
		line:     line,
		out:      line.Stdout(),
	}, nil
}

// Run drives a full game: matchup menu, turn loop, final verdict. It
// returns nil both on a finished game and on a player-initiated quit.
func (that *Server) Run(ctx context.Context) error {
	defer func() {
		if err := that.line.Close(); err != nil {
			that.logger.Error("could not close readline instance", "error", err)
		}
	}()

	playerOneType, playerTwoType, err := that.promptMatchup()
	if errors.Is(err, errQuit) {
		that.show("\nProcess terminated.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to pick a matchup: %w", err)
	}

	game, err := that.gamePlay.NewMatch(playerOneType, playerTwoType)
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}

	that.show(Render(game.Board))

	for {
		select {
		case <-ctx.Done():
			that.show("\nProcess terminated.")
			return nil
		default:
		}

		active := that.gamePlay.ActivePlayer()

		if active.IsBot() {
			err = that.playBotTurn(ctx, active)
		} else {
			err = that.playHumanTurn(active)
		}

		if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
			that.show("\nProcess terminated.")
			return nil
		}
		if err != nil {
			return err
		}

		that.show(Render(game.Board))

		if game.IsFinished() {
			that.announceResult(game)
			return nil
		}
	}
}

// promptMatchup shows the game type menu and keeps asking until it gets a
// valid selection.
func (that *Server) promptMatchup() (string, string, error) {
	that.show("Tic-tac-toe\n")
	that.show("1) Human vs Human")
	that.show("2) Human vs Computer")
	that.show("3) Computer vs Human")
	that.show("4) Computer vs Computer\n")

	for {
		input, err := that.prompt("Game type [1, 2, 3, 4]: ")
		if err != nil {
			return "", "", err
		}

		switch input {
		case "1":
			return entity.HumanType, entity.HumanType, nil
		case "2":
			return entity.HumanType, entity.BotType, nil
		case "3":
			return entity.BotType, entity.HumanType, nil
		case "4":
			return entity.BotType, entity.BotType, nil
		default:
			that.show("\nPlease enter 1, 2, 3, or 4\n")
		}
	}
}

// playHumanTurn asks the active player for a cell number until a playable
// one comes in. Bad input is a re-prompt, never an error.
func (that *Server) playHumanTurn(active *entity.Player) error {
	for {
		input, err := that.prompt(fmt.Sprintf("\n%s's turn, enter a number: ", active.Mark))
		if err != nil {
			return err
		}

		cell, err := TranslateToCell(input)
		if err != nil {
			that.show("Please enter a number from 1 to 9.")
			continue
		}

		err = that.gamePlay.MakeHumanTurn(cell.Row, cell.Col)
		if errors.Is(err, apperror.ErrCellOccupied) {
			that.show("That cell is already taken.")
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		return nil
	}
}

func (that *Server) playBotTurn(ctx context.Context, active *entity.Player) error {
	that.show(fmt.Sprintf("\n%s's turn (computer thinking...)", active.Mark))

	if _, err := that.gamePlay.MakeBotTurn(ctx); err != nil {
		return fmt.Errorf("bot turn failed: %w", err)
	}

	return nil
}

func (that *Server) announceResult(game *entity.Game) {
	if game.Winner == entity.PlayerTie {
		that.show("\nGame over. Draw.")
		return
	}

	that.show(fmt.Sprintf("\nGame over! %s wins.", game.Winner))
}

// prompt reads one trimmed line. Ctrl-C and Ctrl-D both surface as errQuit.
func (that *Server) prompt(text string) (string, error) {
	that.line.SetPrompt(text)

	input, err := that.line.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", errQuit
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return input, nil
}

func (that *Server) show(msg string) {
	_, _ = io.WriteString(that.out, msg+"\n")
}
