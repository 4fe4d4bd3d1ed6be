package entity

import (
	"fmt"

	"github.com/rocketscienceinc/noughts/internal/apperror"
)

// Board holds the 3x3 grid and the turn counter.
//
// The counter starts at 1 and always equals the number of occupied cells plus one.
// Only ApplyMove and UndoMove change the grid, and undo follows strict LIFO order
// against an internal history of applied moves.
type Board struct {
	cells     [Size][Size]Mark
	moveCount int
	history   []Coord
	symbols   Symbols
}

type Option func(*Board)

// WithSymbols - sets the characters used by Render and ParseBoard.
func WithSymbols(symbols Symbols) Option {
	return func(board *Board) {
		board.symbols = symbols
	}
}

func NewBoard(opts ...Option) *Board {
	board := &Board{
		moveCount: 1,
		history:   make([]Coord, 0, Size*Size),
		symbols:   DefaultSymbols,
	}

	for _, opt := range opts {
		opt(board)
	}

	return board
}

// ApplyMove - places the player's mark on an empty cell and advances the turn counter.
// On error the board is left untouched.
func (that *Board) ApplyMove(coord Coord, player Player) (*Board, error) {
	if err := player.Validate(); err != nil {
		return that, err
	}

	if !coord.InRange() {
		return that, fmt.Errorf("%w: %s", apperror.ErrCellOutOfRange, coord)
	}

	if that.cells[coord.Row][coord.Col] != Empty {
		return that, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, coord)
	}

	that.cells[coord.Row][coord.Col] = player.Mark()
	that.moveCount++
	that.history = append(that.history, coord)

	return that, nil
}

// UndoMove - reverts the most recent move. coord must be the cell of that move.
func (that *Board) UndoMove(coord Coord) error {
	if len(that.history) == 0 {
		return apperror.ErrUndoUnderflow
	}

	last := that.history[len(that.history)-1]
	if last != coord {
		return fmt.Errorf("%w: last move %s, got %s", apperror.ErrUndoOutOfOrder, last, coord)
	}

	that.cells[coord.Row][coord.Col] = Empty
	that.moveCount--
	that.history = that.history[:len(that.history)-1]

	return nil
}

// CurrentTurnNumber - returns the turn counter, which starts at 1.
func (that *Board) CurrentTurnNumber() int {
	return that.moveCount
}

// Turn - returns the player to move: player one on odd turns, player two on even ones.
func (that *Board) Turn() Player {
	if that.moveCount%2 == 1 {
		return PlayerOne
	}
	return PlayerTwo
}

// IsWinFor - reports whether the player owns a complete win line.
func (that *Board) IsWinFor(player Player) (bool, error) {
	if err := player.Validate(); err != nil {
		return false, err
	}

	mark := player.Mark()
	for _, line := range WinLines {
		if that.At(line[0]) == mark && that.At(line[1]) == mark && that.At(line[2]) == mark {
			return true, nil
		}
	}

	return false, nil
}

// FreeCells - returns the empty cells column by column, top to bottom within a column.
// Search tie-breaks depend on this order.
func (that *Board) FreeCells() []Coord {
	free := make([]Coord, 0, Size*Size)
	for col := range Size {
		for row := range Size {
			if that.cells[row][col] == Empty {
				free = append(free, Coord{Row: row, Col: col})
			}
		}
	}

	return free
}

// At - returns the mark in a cell. coord must be in range.
func (that *Board) At(coord Coord) Mark {
	return that.cells[coord.Row][coord.Col]
}

// Occupied - counts non-empty cells.
func (that *Board) Occupied() int {
	return len(that.history)
}

// LastMove - returns the most recently applied move.
func (that *Board) LastMove() (Coord, bool) {
	if len(that.history) == 0 {
		return Coord{}, false
	}
	return that.history[len(that.history)-1], true
}

func (that *Board) Symbols() Symbols {
	return that.symbols
}

// Equal - boards are equal when their cells and turn counters match.
func (that *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return that.cells == other.cells && that.moveCount == other.moveCount
}

func (that *Board) Clone() *Board {
	clone := *that
	clone.history = make([]Coord, len(that.history), Size*Size)
	copy(clone.history, that.history)

	return &clone
}

func (that *Board) String() string {
	return that.Render()
}
