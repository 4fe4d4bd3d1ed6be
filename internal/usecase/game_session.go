package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/noughts/internal/apperror"
	"github.com/rocketscienceinc/noughts/internal/entity"
	"github.com/rocketscienceinc/noughts/internal/tictactoe"
)

// humanInput returns the coordinates of player one's next move.
type humanInput interface {
	RequestMove(ctx context.Context, board *entity.Board) (entity.Coord, error)
}

type presenter interface {
	Announce(message string) error
	Render(board *entity.Board) error
}

// botPlayer picks player two's move and applies it to the board.
type botPlayer interface {
	MakeTurn(ctx context.Context, board *entity.Board) (entity.Coord, error)
}

// GameSession runs one game between the human (player one) and the bot (player two).
// The session owns the board for the lifetime of the game.
type GameSession struct {
	logger *slog.Logger
	id     string

	board *entity.Board
	human humanInput
	out   presenter
	bot   botPlayer

	botDelay time.Duration
}

type SessionOption func(*GameSession)

// WithBotDelay - pauses after announcing the bot's turn.
func WithBotDelay(delay time.Duration) SessionOption {
	return func(session *GameSession) {
		session.botDelay = delay
	}
}

func NewGameSession(logger *slog.Logger, board *entity.Board, human humanInput, out presenter, bot botPlayer, opts ...SessionOption) *GameSession {
	id := uuid.NewString()

	session := &GameSession{
		logger: logger.With("component", "session", "session_id", id),
		id:     id,

		board: board,
		human: human,
		out:   out,
		bot:   bot,
	}

	for _, opt := range opts {
		opt(session)
	}

	return session
}

func (that *GameSession) ID() string {
	return that.id
}

// Play - alternates turns until the board is terminal, then announces the result.
func (that *GameSession) Play(ctx context.Context) (tictactoe.Result, error) {
	log := that.logger.With("method", "Play")
	log.InfoContext(ctx, "game started", "turn", that.board.CurrentTurnNumber())

	for tictactoe.CheckGameStatus(that.board) == tictactoe.InProgress {
		if err := ctx.Err(); err != nil {
			return tictactoe.InProgress, fmt.Errorf("game interrupted: %w", err)
		}

		var err error
		switch that.board.Turn() {
		case entity.PlayerOne:
			err = that.humanTurn(ctx)
		case entity.PlayerTwo:
			err = that.botTurn(ctx)
		}

		if err != nil {
			return tictactoe.InProgress, err
		}

		if err = that.out.Render(that.board); err != nil {
			return tictactoe.InProgress, fmt.Errorf("could not render board: %w", err)
		}
	}

	result, err := tictactoe.FinalResult(that.board)
	if err != nil {
		log.ErrorContext(ctx, "game loop exited on a non-terminal board", "error", err)
		return result, err
	}

	log.InfoContext(ctx, "game finished", "result", result.String(), "turn", that.board.CurrentTurnNumber())

	if err = that.out.Announce(result.String()); err != nil {
		return result, fmt.Errorf("could not announce result: %w", err)
	}

	if err = that.out.Announce(tictactoe.MessageEndBoardState); err != nil {
		return result, fmt.Errorf("could not announce result: %w", err)
	}

	if err = that.out.Render(that.board); err != nil {
		return result, fmt.Errorf("could not render board: %w", err)
	}

	return result, nil
}

// humanTurn - asks for coordinates until a legal move is applied.
func (that *GameSession) humanTurn(ctx context.Context) error {
	if err := that.out.Announce(tictactoe.MessageYourTurn); err != nil {
		return fmt.Errorf("could not announce turn: %w", err)
	}

	for {
		cell, err := that.human.RequestMove(ctx, that.board)
		if err != nil {
			return fmt.Errorf("could not read move: %w", err)
		}

		err = tictactoe.MakeTurn(that.board, entity.PlayerOne, cell)
		if err == nil {
			that.logger.DebugContext(ctx, "human made a move", "cell", cell.String())
			return nil
		}

		if !errors.Is(err, apperror.ErrCellOccupied) && !errors.Is(err, apperror.ErrCellOutOfRange) {
			return fmt.Errorf("failed make turn: %w", err)
		}

		that.logger.DebugContext(ctx, "rejected human move", "cell", cell.String(), "error", err)

		if err = that.out.Announce(tictactoe.MessageInvalidCoordinates); err != nil {
			return fmt.Errorf("could not announce invalid move: %w", err)
		}
	}
}

func (that *GameSession) botTurn(ctx context.Context) error {
	if err := that.out.Announce(tictactoe.MessageBotThinking); err != nil {
		return fmt.Errorf("could not announce turn: %w", err)
	}

	if err := wait(ctx, that.botDelay); err != nil {
		return fmt.Errorf("game interrupted: %w", err)
	}

	if _, err := that.bot.MakeTurn(ctx, that.board); err != nil {
		return fmt.Errorf("bot failed make turn: %w", err)
	}

	return nil
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
