package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/noughts/internal/apperror"
)

const (
	emptySymbol = ' '
	rowIndent   = "     "
	boardFrame  = rowIndent + "|- - -|"
)

// Render - draws the grid inside a frame, one row per line, empty cells as spaces.
func (that *Board) Render() string {
	var sb strings.Builder

	sb.WriteString(boardFrame)
	for row := range Size {
		sb.WriteString("\n" + rowIndent + "|")
		for col := range Size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(that.symbols.forMark(that.cells[row][col]))
		}
		sb.WriteString("|")
	}
	sb.WriteString("\n" + boardFrame)

	return sb.String()
}

// ParseBoard - rebuilds a board from the output of Render.
// The original move order is not recoverable, so the history is rebuilt row by row.
// The board must be reachable by alternating play: player one has as many marks as
// player two or one more, and at most one player has a completed line.
func ParseBoard(text string, opts ...Option) (*Board, error) {
	board := NewBoard(opts...)
	counts := map[Mark]int{}

	lines := strings.Split(strings.Trim(strings.ReplaceAll(text, "\r\n", "\n"), "\n"), "\n")
	if len(lines) != Size+2 {
		return nil, fmt.Errorf("%w: expected %d lines, got %d", apperror.ErrMalformedBoard, Size+2, len(lines))
	}

	if lines[0] != boardFrame || lines[len(lines)-1] != boardFrame {
		return nil, fmt.Errorf("%w: missing frame", apperror.ErrMalformedBoard)
	}

	for row, line := range lines[1 : Size+1] {
		inner, ok := strings.CutPrefix(line, rowIndent+"|")
		if ok {
			inner, ok = strings.CutSuffix(inner, "|")
		}
		if !ok {
			return nil, fmt.Errorf("%w: row %d is not framed", apperror.ErrMalformedBoard, row)
		}

		symbols := []rune(inner)
		if len(symbols) != 2*Size-1 {
			return nil, fmt.Errorf("%w: row %d has width %d", apperror.ErrMalformedBoard, row, len(symbols))
		}

		for col := range Size {
			if col > 0 && symbols[2*col-1] != ' ' {
				return nil, fmt.Errorf("%w: row %d has no separator before column %d", apperror.ErrMalformedBoard, row, col)
			}

			mark, known := board.symbols.toMark(symbols[2*col])
			if !known {
				return nil, fmt.Errorf("%w: unknown symbol %q at %s", apperror.ErrMalformedBoard, symbols[2*col], Coord{Row: row, Col: col})
			}

			board.cells[row][col] = mark
			counts[mark]++
			if mark != Empty {
				board.moveCount++
				board.history = append(board.history, Coord{Row: row, Col: col})
			}
		}
	}

	if diff := counts[PlayerOneMark] - counts[PlayerTwoMark]; diff != 0 && diff != 1 {
		return nil, fmt.Errorf("%w: %d marks for player one and %d for player two",
			apperror.ErrMalformedBoard, counts[PlayerOneMark], counts[PlayerTwoMark])
	}

	oneWon, _ := board.IsWinFor(PlayerOne)
	twoWon, _ := board.IsWinFor(PlayerTwo)
	if oneWon && twoWon {
		return nil, fmt.Errorf("%w: both players have a completed line", apperror.ErrMalformedBoard)
	}

	return board, nil
}
