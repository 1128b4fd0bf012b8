package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketpen/tictactoe-cli/internal/config"
	"github.com/rocketpen/tictactoe-cli/internal/minimax"
	"github.com/rocketpen/tictactoe-cli/internal/service"
	"github.com/rocketpen/tictactoe-cli/internal/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	seed := conf.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // the rng only varies the opening move

	engine := minimax.NewEngine(rng)
	botService := service.NewBotService(engine)
	gamePlay := service.NewGamePlayService(logger, botService, conf.BotDelay())

	consoleServer, err := console.New(logger, gamePlay)
	if err != nil {
		return fmt.Errorf("could not create console server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting console game", "seed", seed)
		errCh <- consoleServer.Run(ctx)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("console game error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
