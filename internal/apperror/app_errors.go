package apperror

import "errors"

var (
	ErrInvalidPlayer  = errors.New("player must be one of [1, 2]")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrCellOutOfRange = errors.New("cell is out of range")
	ErrUndoUnderflow  = errors.New("no moves to undo")
	ErrUndoOutOfOrder = errors.New("undo does not match the most recent move")
	ErrMalformedBoard = errors.New("malformed board")

	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrNoLegalMoves    = errors.New("no legal moves")
	ErrGameAlreadyOver = errors.New("game is already over")

	ErrInvalidCoordinates       = errors.New("invalid coordinates")
	ErrInputClosed              = errors.New("input closed")
	ErrUnreachableTerminalState = errors.New("the game ended in an unexpected way")
)
