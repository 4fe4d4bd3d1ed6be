package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/noughts/internal/config"
	"github.com/rocketscienceinc/noughts/internal/entity"
	"github.com/rocketscienceinc/noughts/internal/service"
	"github.com/rocketscienceinc/noughts/internal/telemetry"
	"github.com/rocketscienceinc/noughts/internal/usecase"
	"github.com/rocketscienceinc/noughts/transport/terminal"
)

// Version is reported by the version command and attached to exported spans.
const Version = "v0.1.0"

// RunApp - runs one game against the bot on the given terminal streams.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
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

	shutdown, err := telemetry.Init(conf.Tracing, os.Stderr, Version)
	if err != nil {
		return fmt.Errorf("could not init telemetry: %w", err)
	}

	defer func() {
		if err = shutdown(context.Background()); err != nil {
			log.Error("could not shut down telemetry", "error", err)
		}
	}()

	return run(ctx, logger, conf, in, out)
}

func run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	one, two := conf.Symbols()
	board := entity.NewBoard(entity.WithSymbols(entity.Symbols{PlayerOne: one, PlayerTwo: two}))

	console := terminal.New(logger, in, out, terminal.WithStyles(conf.StyledOutput))
	bot := service.NewBotService(logger)
	session := usecase.NewGameSession(logger, board, console, console, bot, usecase.WithBotDelay(conf.AIDelay))

	log.Debug("session created", "session_id", session.ID())

	// a blocked stdin read cannot be interrupted, so the session runs on its own goroutine
	errCh := make(chan error, 1)
	go func() {
		result, playErr := session.Play(ctx)
		if playErr == nil {
			log.Debug("session finished", "session_id", session.ID(), "result", result.String())
		}
		errCh <- playErr
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}
		if err != nil {
			return fmt.Errorf("game session failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
