package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/noughts/internal/apperror"
	"github.com/rocketscienceinc/noughts/internal/entity"
	"github.com/rocketscienceinc/noughts/internal/tictactoe"
)

const (
	promptRow    = "Enter row (0, 1, or 2) : "
	promptColumn = "Enter column (0, 1, or 2) : "
)

// Console reads the human's moves from a line-oriented reader and prints the game to a writer.
type Console struct {
	logger *slog.Logger
	in     *bufio.Scanner
	out    io.Writer
	styles Styles
}

type Option func(*Console)

// WithStyles - enables coloured output.
func WithStyles(enabled bool) Option {
	return func(console *Console) {
		console.styles = NewStyles(enabled)
	}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, opts ...Option) *Console {
	console := &Console{
		logger: logger.With("component", "console"),
		in:     bufio.NewScanner(in),
		out:    out,
		styles: NewStyles(false),
	}

	for _, opt := range opts {
		opt(console)
	}

	return console
}

// RequestMove - prompts for a row and a column until they name a free cell.
func (that *Console) RequestMove(ctx context.Context, board *entity.Board) (entity.Coord, error) {
	for {
		row, err := that.prompt(ctx, promptRow)
		if err != nil {
			return entity.Coord{}, err
		}

		col, err := that.prompt(ctx, promptColumn)
		if err != nil {
			return entity.Coord{}, err
		}

		coord, err := ParseCoordinates(row, col)
		if err == nil && board.At(coord) == entity.Empty {
			return coord, nil
		}

		that.logger.DebugContext(ctx, "invalid coordinates", "row", row, "col", col)

		if _, err = fmt.Fprintf(that.out, "%s\n\n", that.styles.Message(tictactoe.MessageInvalidCoordinates)); err != nil {
			return entity.Coord{}, fmt.Errorf("could not write to console: %w", err)
		}
	}
}

func (that *Console) Announce(message string) error {
	if _, err := fmt.Fprintln(that.out, that.styles.Message(message)); err != nil {
		return fmt.Errorf("could not write to console: %w", err)
	}

	return nil
}

func (that *Console) Render(board *entity.Board) error {
	if _, err := fmt.Fprintf(that.out, "\n%s\n\n", that.styles.Board(board)); err != nil {
		return fmt.Errorf("could not write to console: %w", err)
	}

	return nil
}

func (that *Console) prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(that.out, text); err != nil {
		return "", fmt.Errorf("could not write to console: %w", err)
	}

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("could not read from console: %w", err)
		}
		return "", apperror.ErrInputClosed
	}

	return strings.TrimSpace(that.in.Text()), nil
}

// ParseCoordinates - accepts a row and a column given as a single digit 0, 1 or 2.
func ParseCoordinates(row, col string) (entity.Coord, error) {
	r, okRow := parseIndex(row)
	c, okCol := parseIndex(col)
	if !okRow || !okCol {
		return entity.Coord{}, fmt.Errorf("%w: %q, %q", apperror.ErrInvalidCoordinates, row, col)
	}

	return entity.Coord{Row: r, Col: c}, nil
}

func parseIndex(text string) (int, bool) {
	if len(text) != 1 || text[0] < '0' || text[0] >= '0'+entity.Size {
		return 0, false
	}

	return int(text[0] - '0'), true
}
