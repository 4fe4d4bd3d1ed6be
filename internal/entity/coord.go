package entity

import "fmt"

// Size is the side length of the board.
const Size = 3

// Coord addresses a cell by row and column, both in [0, Size).
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// WinLines - every row, column and diagonal. A player owning all three cells of one line wins.
var WinLines = [8][3]Coord{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}
