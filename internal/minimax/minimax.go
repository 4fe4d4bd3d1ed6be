// Package minimax picks the automated player's move by exhaustive game-tree search.
//
// Player one maximises the score and player two minimises it. A win for player one
// scores +1, a win for player two -1 and a full board without a winner 0.
// The search applies and undoes moves on the caller's board in place and leaves it
// unchanged on return; the caller must not touch the board during a call.
package minimax

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/noughts/internal/apperror"
	"github.com/rocketscienceinc/noughts/internal/entity"
)

const (
	PlayerOneWins = 1
	PlayerTwoWins = -1
	Tie           = 0
)

// ScoredMove is a candidate move for player two with its minimax value.
type ScoredMove struct {
	Cell  entity.Coord `json:"cell"`
	Value int          `json:"value"`
}

// Value - returns the minimax value of the board with playerToMove on turn.
func Value(board *entity.Board, playerToMove entity.Player) (int, error) {
	if err := playerToMove.Validate(); err != nil {
		return 0, err
	}

	return value(board, playerToMove), nil
}

// SelectMove - returns the move for player two with the smallest value.
// Ties go to the cell that comes first in board.FreeCells.
func SelectMove(board *entity.Board) (entity.Coord, error) {
	candidates, err := Evaluate(board)
	if err != nil {
		return entity.Coord{}, err
	}

	return Best(candidates).Cell, nil
}

// Best - returns the candidate with the strictly smallest value, the earliest one on ties.
// An empty slice yields a zero ScoredMove with Value math.MaxInt.
func Best(candidates []ScoredMove) ScoredMove {
	best := ScoredMove{Value: math.MaxInt}
	for _, candidate := range candidates {
		if candidate.Value < best.Value {
			best = candidate
		}
	}

	return best
}

// Evaluate - scores every free cell as player two's move, in board.FreeCells order.
func Evaluate(board *entity.Board) ([]ScoredMove, error) {
	if terminal, score := terminalScore(board); terminal {
		if score == Tie {
			return nil, apperror.ErrNoLegalMoves
		}
		return nil, fmt.Errorf("%w: score %d", apperror.ErrGameAlreadyOver, score)
	}

	cells := board.FreeCells()
	candidates := make([]ScoredMove, 0, len(cells))

	for _, cell := range cells {
		mustApply(board, cell, entity.PlayerTwo)
		score := value(board, entity.PlayerOne)
		mustUndo(board, cell)

		candidates = append(candidates, ScoredMove{Cell: cell, Value: score})
	}

	return candidates, nil
}

func value(board *entity.Board, playerToMove entity.Player) int {
	if terminal, score := terminalScore(board); terminal {
		return score
	}

	best := math.MinInt
	if playerToMove == entity.PlayerTwo {
		best = math.MaxInt
	}

	for _, cell := range board.FreeCells() {
		mustApply(board, cell, playerToMove)
		score := value(board, playerToMove.Opponent())
		mustUndo(board, cell)

		if playerToMove == entity.PlayerOne {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

func terminalScore(board *entity.Board) (bool, int) {
	if won, _ := board.IsWinFor(entity.PlayerOne); won {
		return true, PlayerOneWins
	}

	if won, _ := board.IsWinFor(entity.PlayerTwo); won {
		return true, PlayerTwoWins
	}

	if board.Occupied() == entity.Size*entity.Size {
		return true, Tie
	}

	return false, 0
}

// Cells come from FreeCells and are undone in LIFO order, so a failure here is a broken board invariant.
func mustApply(board *entity.Board, cell entity.Coord, player entity.Player) {
	if _, err := board.ApplyMove(cell, player); err != nil {
		panic(fmt.Errorf("minimax: apply %s: %w", cell, err))
	}
}

func mustUndo(board *entity.Board, cell entity.Coord) {
	if err := board.UndoMove(cell); err != nil {
		panic(fmt.Errorf("minimax: undo %s: %w", cell, err))
	}
}
