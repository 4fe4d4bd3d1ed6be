package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/noughts/internal/apperror"
	"github.com/rocketscienceinc/noughts/internal/entity"
	"github.com/rocketscienceinc/noughts/internal/minimax"
)

const tracerName = "github.com/rocketscienceinc/noughts/internal/service"

// BotService plays player two's turns.
type BotService interface {
	MakeTurn(ctx context.Context, board *entity.Board) (entity.Coord, error)
}

type botService struct {
	logger *slog.Logger
	tracer trace.Tracer
}

func NewBotService(logger *slog.Logger) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		tracer: otel.Tracer(tracerName),
	}
}

// MakeTurn - searches the board for player two's best move and applies it.
func (that *botService) MakeTurn(ctx context.Context, board *entity.Board) (entity.Coord, error) {
	ctx, span := that.tracer.Start(ctx, "bot.MakeTurn", trace.WithAttributes(
		attribute.Int("board.turn", board.CurrentTurnNumber()),
		attribute.Int("board.free_cells", len(board.FreeCells())),
	))
	defer span.End()

	if board.Turn() != entity.PlayerTwo {
		span.SetStatus(codes.Error, apperror.ErrNotYourTurn.Error())
		return entity.Coord{}, fmt.Errorf("bot on turn %d: %w", board.CurrentTurnNumber(), apperror.ErrNotYourTurn)
	}

	candidates, err := minimax.Evaluate(board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entity.Coord{}, fmt.Errorf("bot failed to evaluate board: %w", err)
	}

	for _, candidate := range candidates {
		that.logger.DebugContext(ctx, "candidate scored", "cell", candidate.Cell.String(), "value", candidate.Value)
	}

	best := minimax.Best(candidates)

	if _, err = board.ApplyMove(best.Cell, entity.PlayerTwo); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return entity.Coord{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	span.SetAttributes(
		attribute.Int("move.row", best.Cell.Row),
		attribute.Int("move.col", best.Cell.Col),
		attribute.Int("move.value", best.Value),
	)
	that.logger.InfoContext(ctx, "bot made a move", "cell", best.Cell.String(), "value", best.Value, "candidates", len(candidates))

	return best.Cell, nil
}
