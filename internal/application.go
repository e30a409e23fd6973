package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

// RunApp - runs the application.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameRepo := repository.NewGameRepository()
	gameUseCase := usecase.NewGameManager(logger, gameRepo)

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Debug("Starting console")
		consoleErrCh <- console.New(logger, gameUseCase, conf.Players, in, out).Start(ctx)
	}()

	select {
	case err := <-consoleErrCh:
		// errors caused by shutdown are not failures
		if err != nil && ctx.Err() == nil {
			return fmt.Errorf("console error: %w", err)
		}
		log.Debug("Console closed")
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
