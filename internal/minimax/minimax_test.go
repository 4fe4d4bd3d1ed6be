package minimax

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/noughts/internal/apperror"
	"github.com/rocketscienceinc/noughts/internal/entity"
	"github.com/rocketscienceinc/noughts/testing/suite"
)

func TestValue(t *testing.T) {
	_, s := suite.New(t)

	t.Run("Empty board is a tie", func(t *testing.T) {
		// Given: an empty board
		board := entity.NewBoard()

		// When: computing its value with player one to move
		score, err := Value(board, entity.PlayerOne)

		// Then: perfect play ends in a tie and the board is untouched
		require.NoError(t, err)
		assert.Equal(t, Tie, score)
		assert.True(t, board.Equal(entity.NewBoard()))
	})

	t.Run("Terminal scores", func(t *testing.T) {
		cases := []struct {
			name  string
			rows  []string
			score int
		}{
			{name: "player one line", rows: []string{"XXX", "OO ", "   "}, score: PlayerOneWins},
			{name: "player two line", rows: []string{"XX ", "OOO", "X  "}, score: PlayerTwoWins},
			{name: "full board", rows: []string{"XOX", "XOO", "OXX"}, score: Tie},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				// Given: a terminal board
				board := s.Board(tc.rows...)

				// When: computing its value for either player
				one, err := Value(board, entity.PlayerOne)
				require.NoError(t, err)
				two, err := Value(board, entity.PlayerTwo)
				require.NoError(t, err)

				// Then: the terminal score is returned regardless of who moves
				assert.Equal(t, tc.score, one)
				assert.Equal(t, tc.score, two)
			})
		}
	})

	t.Run("Player to move takes a winning line", func(t *testing.T) {
		// Given: both players threaten a line
		board := s.Board(
			"XX ",
			"OO ",
			"   ",
		)

		// Then: whoever moves next wins
		one, err := Value(board, entity.PlayerOne)
		require.NoError(t, err)
		two, err := Value(board, entity.PlayerTwo)
		require.NoError(t, err)

		assert.Equal(t, PlayerOneWins, one)
		assert.Equal(t, PlayerTwoWins, two)
	})

	t.Run("Error on invalid player", func(t *testing.T) {
		// When: asking for an unknown player's value
		_, err := Value(entity.NewBoard(), entity.Player(7))

		// Then: ErrInvalidPlayer is returned
		require.ErrorIs(t, err, apperror.ErrInvalidPlayer)
	})
}

func TestSelectMove(t *testing.T) {
	_, s := suite.New(t)

	t.Run("Empty board picks a corner or the centre with a tie value", func(t *testing.T) {
		// Given: an empty board with the automated player moving first
		board := entity.NewBoard()

		// When: selecting a move
		move, err := SelectMove(board)
		require.NoError(t, err)

		// Then: the move is a corner or the centre and keeps the game a tie
		strong := []entity.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 2}, {Row: 1, Col: 1}}
		assert.Contains(t, strong, move)
		assert.Equal(t, entity.Coord{Row: 0, Col: 0}, move)

		_, err = board.ApplyMove(move, entity.PlayerTwo)
		require.NoError(t, err)
		score, err := Value(board, entity.PlayerOne)
		require.NoError(t, err)
		assert.Equal(t, Tie, score)
	})

	t.Run("Blocks an open line", func(t *testing.T) {
		// Given: player one holds (0,0) and (0,1) with (0,2) empty
		board := s.Board(
			"XX ",
			" O ",
			"   ",
		)

		// When: selecting a move
		move, err := SelectMove(board)
		require.NoError(t, err)

		// Then: the automated player blocks at (0,2) and does not lose
		assert.Equal(t, entity.Coord{Row: 0, Col: 2}, move)

		_, err = board.ApplyMove(move, entity.PlayerTwo)
		require.NoError(t, err)
		score, err := Value(board, entity.PlayerOne)
		require.NoError(t, err)
		assert.LessOrEqual(t, score, Tie)
	})

	t.Run("Takes a winning line over a block", func(t *testing.T) {
		// Given: both players threaten a line
		board := s.Board(
			"XX ",
			"OO ",
			"X  ",
		)

		// When: selecting a move
		move, err := SelectMove(board)

		// Then: the automated player completes its own row
		require.NoError(t, err)
		assert.Equal(t, entity.Coord{Row: 1, Col: 2}, move)
	})

	t.Run("Single free cell", func(t *testing.T) {
		// Given: a board with one free cell and no winner
		board := s.Board(
			"XOX",
			"XOO",
			"OX ",
		)

		// When: selecting a move
		move, err := SelectMove(board)
		require.NoError(t, err)

		// Then: the sole free cell is returned and the game is a tie
		assert.Equal(t, entity.Coord{Row: 2, Col: 2}, move)

		_, err = board.ApplyMove(move, entity.PlayerTwo)
		require.NoError(t, err)
		score, err := Value(board, entity.PlayerOne)
		require.NoError(t, err)
		assert.Equal(t, Tie, score)
	})

	t.Run("Leaves the board unchanged and returns a free cell", func(t *testing.T) {
		boards := []*entity.Board{
			entity.NewBoard(),
			s.Board("X  ", "   ", "   "),
			s.Board("   ", " X ", "   "),
			s.Board("X  ", " O ", "  X"),
			s.Board("XO ", " X ", "   "),
		}

		for _, board := range boards {
			// Given: a snapshot of the board
			before := board.Clone()
			free := board.FreeCells()

			// When: selecting a move
			move, err := SelectMove(board)
			require.NoError(t, err)

			// Then: the board is unchanged and the move was free
			assert.True(t, board.Equal(before), board.Render())
			assert.True(t, slices.Contains(free, move), "move %s not free", move)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		// Given: the same position
		board := s.Board("X  ", "   ", "   ")

		// When: selecting twice
		first, err := SelectMove(board)
		require.NoError(t, err)
		second, err := SelectMove(board)
		require.NoError(t, err)

		// Then: the same move is returned
		assert.Equal(t, first, second)
	})

	t.Run("Error on full board", func(t *testing.T) {
		// Given: a full tied board
		board := s.Board("XOX", "XOO", "OXX")

		// When: selecting a move
		_, err := SelectMove(board)

		// Then: ErrNoLegalMoves is returned
		require.ErrorIs(t, err, apperror.ErrNoLegalMoves)
	})

	t.Run("Error after a win", func(t *testing.T) {
		// Given: player one has already won
		board := s.Board("XXX", "OO ", "   ")

		// When: selecting a move
		_, err := SelectMove(board)

		// Then: ErrGameAlreadyOver is returned
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
	})
}

func TestEvaluate(t *testing.T) {
	_, s := suite.New(t)

	// Given: player one threatens the top row
	board := s.Board(
		"XX ",
		" O ",
		"   ",
	)

	// When: evaluating every candidate
	candidates, err := Evaluate(board)
	require.NoError(t, err)

	// Then: candidates follow the free-cell order and only the block avoids a loss
	require.Len(t, candidates, len(board.FreeCells()))
	for i, cell := range board.FreeCells() {
		assert.Equal(t, cell, candidates[i].Cell)

		if cell == (entity.Coord{Row: 0, Col: 2}) {
			assert.LessOrEqual(t, candidates[i].Value, Tie)
		} else {
			assert.Equal(t, PlayerOneWins, candidates[i].Value)
		}
	}
}
