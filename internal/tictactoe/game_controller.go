package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/noughts/internal/apperror"
	"github.com/rocketscienceinc/noughts/internal/entity"
)

// Result is the state of a game as seen by the session loop.
type Result int

const (
	InProgress Result = iota
	PlayerOneWon
	PlayerTwoWon
	Tie
)

func (that Result) String() string {
	switch that {
	case InProgress:
		return "in progress"
	case PlayerOneWon:
		return "Player 1 won!"
	case PlayerTwoWon:
		return "Player 2 won!"
	case Tie:
		return "Tie!"
	default:
		return fmt.Sprintf("Result(%d)", int(that))
	}
}

// MakeTurn - applies a move for the player whose turn it is.
func MakeTurn(board *entity.Board, player entity.Player, cell entity.Coord) error {
	if CheckGameStatus(board) != InProgress {
		return apperror.ErrGameAlreadyOver
	}

	if err := validateMove(board, player, cell); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	if _, err := board.ApplyMove(cell, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(board *entity.Board, player entity.Player, cell entity.Coord) error {
	if err := player.Validate(); err != nil {
		return err
	}

	if board.Turn() != player {
		return apperror.ErrNotYourTurn
	}

	if !cell.InRange() {
		return fmt.Errorf("%w: %s", apperror.ErrCellOutOfRange, cell)
	}

	if board.At(cell) != entity.Empty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// CheckGameStatus - reports a win for either player, a tie on a full board, or InProgress.
func CheckGameStatus(board *entity.Board) Result {
	if won, _ := board.IsWinFor(entity.PlayerOne); won {
		return PlayerOneWon
	}

	if won, _ := board.IsWinFor(entity.PlayerTwo); won {
		return PlayerTwoWon
	}

	if len(board.FreeCells()) == 0 {
		return Tie
	}

	return InProgress
}

// FinalResult - returns the result of a finished game.
// A board that is not terminal here means the session loop exited early, which is a programming error.
func FinalResult(board *entity.Board) (Result, error) {
	result := CheckGameStatus(board)
	if result == InProgress {
		return InProgress, fmt.Errorf("%w: turn %d with %d free cells",
			apperror.ErrUnreachableTerminalState, board.CurrentTurnNumber(), len(board.FreeCells()))
	}

	return result, nil
}

// Terminal messages shared by the session loop and the console.
const (
	MessageYourTurn           = "Your turn!"
	MessageBotThinking        = "AI is making a move..."
	MessageInvalidCoordinates = "Invalid coordinates."
	MessageEndBoardState      = "End board state:"
)
