package suite

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/noughts/internal/entity"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// Board - builds a board from three rows of X, O and spaces, e.g. "XO ".
// The turn counter follows the number of marks, so it is player two's turn when X has one mark more than O.
func (that *Suite) Board(rows ...string) *entity.Board {
	that.Helper()

	if len(rows) != entity.Size {
		that.Fatalf("board needs %d rows, got %d", entity.Size, len(rows))
	}

	const frame = "     |- - -|"

	lines := make([]string, 0, entity.Size+2)
	lines = append(lines, frame)
	for _, row := range rows {
		lines = append(lines, "     |"+strings.Join(strings.Split(row, ""), " ")+"|")
	}
	lines = append(lines, frame)

	board, err := entity.ParseBoard(strings.Join(lines, "\n"))
	if err != nil {
		that.Fatalf("could not parse board %q: %v", rows, err)
	}

	return board
}
