package entity

import (
	"fmt"

	"github.com/rocketscienceinc/noughts/internal/apperror"
)

// Player identifies one side of the game. Player one is the human and moves first.
type Player int

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

// Validate - reports whether the player is one of the two seats.
func (that Player) Validate() error {
	if that != PlayerOne && that != PlayerTwo {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidPlayer, int(that))
	}

	return nil
}

// Opponent - returns the other seat. The player must be valid.
func (that Player) Opponent() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Mark - returns the cell mark placed by the player.
func (that Player) Mark() Mark {
	switch that {
	case PlayerOne:
		return PlayerOneMark
	case PlayerTwo:
		return PlayerTwoMark
	default:
		return Empty
	}
}

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerOneMark
	PlayerTwoMark
)

func (that Mark) String() string {
	switch that {
	case Empty:
		return "empty"
	case PlayerOneMark:
		return "player 1"
	case PlayerTwoMark:
		return "player 2"
	default:
		return fmt.Sprintf("Mark(%d)", uint8(that))
	}
}

// Symbols are the characters used to draw each player's mark.
type Symbols struct {
	PlayerOne rune
	PlayerTwo rune
}

var DefaultSymbols = Symbols{PlayerOne: 'X', PlayerTwo: 'O'}

func (that Symbols) forMark(mark Mark) rune {
	switch mark {
	case PlayerOneMark:
		return that.PlayerOne
	case PlayerTwoMark:
		return that.PlayerTwo
	default:
		return emptySymbol
	}
}

func (that Symbols) toMark(symbol rune) (Mark, bool) {
	switch symbol {
	case emptySymbol:
		return Empty, true
	case that.PlayerOne:
		return PlayerOneMark, true
	case that.PlayerTwo:
		return PlayerTwoMark, true
	default:
		return Empty, false
	}
}
