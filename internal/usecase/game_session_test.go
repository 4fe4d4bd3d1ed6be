package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/noughts/internal/apperror"
	"github.com/rocketscienceinc/noughts/internal/entity"
	"github.com/rocketscienceinc/noughts/internal/service"
	"github.com/rocketscienceinc/noughts/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/noughts/mocks/usecase"
	"github.com/rocketscienceinc/noughts/testing/suite"
)

var errBotCrashed = errors.New("bot crashed")

// scriptedBot applies the given cells for player two in order.
func scriptedBot(t *testing.T, cells ...entity.Coord) *mockedUseCase.MockbotPlayer {
	t.Helper()

	bot := mockedUseCase.NewMockbotPlayer(t)
	next := 0
	bot.EXPECT().
		MakeTurn(mock.Anything, mock.AnythingOfType("*entity.Board")).
		RunAndReturn(func(_ context.Context, board *entity.Board) (entity.Coord, error) {
			cell := cells[next]
			next++
			_, err := board.ApplyMove(cell, entity.PlayerTwo)
			return cell, err
		}).
		Times(len(cells))

	return bot
}

func TestGameSession_Play(t *testing.T) {
	ctx, s := suite.New(t)

	t.Run("Player one wins", func(t *testing.T) {
		// Given: a human completing the top row while the bot plays the middle row
		human := mockedUseCase.NewMockhumanInput(t)
		for _, cell := range []entity.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}} {
			human.EXPECT().RequestMove(mock.Anything, mock.Anything).Return(cell, nil).Once()
		}
		bot := scriptedBot(t, entity.Coord{Row: 1, Col: 0}, entity.Coord{Row: 1, Col: 1})

		out := mockedUseCase.NewMockpresenter(t)
		out.EXPECT().Announce(tictactoe.MessageYourTurn).Return(nil).Times(3)
		out.EXPECT().Announce(tictactoe.MessageBotThinking).Return(nil).Times(2)
		out.EXPECT().Announce("Player 1 won!").Return(nil).Once()
		out.EXPECT().Announce(tictactoe.MessageEndBoardState).Return(nil).Once()
		out.EXPECT().Render(mock.Anything).Return(nil).Times(6)

		board := entity.NewBoard()
		session := NewGameSession(s.Logger, board, human, out, bot)

		// When: the game is played
		result, err := session.Play(ctx)

		// Then: player one has won
		require.NoError(t, err)
		assert.Equal(t, tictactoe.PlayerOneWon, result)
		assert.Equal(t, 6, board.CurrentTurnNumber())
		assert.NotEmpty(t, session.ID())
	})

	t.Run("Occupied cell is rejected and asked again", func(t *testing.T) {
		// Given: a board with only the bottom row free and player one to move
		board := s.Board(
			"XOX",
			"XOO",
			"   ",
		)

		human := mockedUseCase.NewMockhumanInput(t)
		human.EXPECT().RequestMove(mock.Anything, board).Return(entity.Coord{Row: 1, Col: 1}, nil).Once()
		human.EXPECT().RequestMove(mock.Anything, board).Return(entity.Coord{Row: 2, Col: 1}, nil).Once()
		human.EXPECT().RequestMove(mock.Anything, board).Return(entity.Coord{Row: 2, Col: 2}, nil).Once()
		bot := scriptedBot(t, entity.Coord{Row: 2, Col: 0})

		out := mockedUseCase.NewMockpresenter(t)
		out.EXPECT().Announce(tictactoe.MessageYourTurn).Return(nil).Times(2)
		out.EXPECT().Announce(tictactoe.MessageInvalidCoordinates).Return(nil).Once()
		out.EXPECT().Announce(tictactoe.MessageBotThinking).Return(nil).Once()
		out.EXPECT().Announce("Tie!").Return(nil).Once()
		out.EXPECT().Announce(tictactoe.MessageEndBoardState).Return(nil).Once()
		out.EXPECT().Render(board).Return(nil).Times(4)

		session := NewGameSession(s.Logger, board, human, out, bot)

		// When: the game is played
		result, err := session.Play(ctx)

		// Then: the occupied cell was refused and the game ends in a tie
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Tie, result)
		assert.Equal(t, entity.PlayerOneMark, board.At(entity.Coord{Row: 2, Col: 1}))
	})

	t.Run("Minimax bot never loses", func(t *testing.T) {
		// Given: a human who always takes the first free cell, against the real bot
		human := mockedUseCase.NewMockhumanInput(t)
		human.EXPECT().
			RequestMove(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, board *entity.Board) (entity.Coord, error) {
				return board.FreeCells()[0], nil
			})

		out := mockedUseCase.NewMockpresenter(t)
		out.EXPECT().Announce(mock.Anything).Return(nil)
		out.EXPECT().Render(mock.Anything).Return(nil)

		board := entity.NewBoard()
		session := NewGameSession(s.Logger, board, human, out, service.NewBotService(s.Logger))

		// When: the game is played
		result, err := session.Play(ctx)

		// Then: the bot wins or ties
		require.NoError(t, err)
		assert.Contains(t, []tictactoe.Result{tictactoe.PlayerTwoWon, tictactoe.Tie}, result)
	})

	t.Run("Closed input ends the session", func(t *testing.T) {
		// Given: the human input is closed
		human := mockedUseCase.NewMockhumanInput(t)
		human.EXPECT().RequestMove(mock.Anything, mock.Anything).Return(entity.Coord{}, apperror.ErrInputClosed).Once()

		out := mockedUseCase.NewMockpresenter(t)
		out.EXPECT().Announce(tictactoe.MessageYourTurn).Return(nil).Once()

		session := NewGameSession(s.Logger, entity.NewBoard(), human, out, mockedUseCase.NewMockbotPlayer(t))

		// When: the game is played
		result, err := session.Play(ctx)

		// Then: ErrInputClosed is returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Equal(t, tictactoe.InProgress, result)
	})

	t.Run("Bot failure is returned", func(t *testing.T) {
		// Given: a bot that fails on its first turn
		human := mockedUseCase.NewMockhumanInput(t)
		human.EXPECT().RequestMove(mock.Anything, mock.Anything).Return(entity.Coord{Row: 1, Col: 1}, nil).Once()

		bot := mockedUseCase.NewMockbotPlayer(t)
		bot.EXPECT().MakeTurn(mock.Anything, mock.Anything).Return(entity.Coord{}, errBotCrashed).Once()

		out := mockedUseCase.NewMockpresenter(t)
		out.EXPECT().Announce(mock.Anything).Return(nil).Times(2)
		out.EXPECT().Render(mock.Anything).Return(nil).Once()

		session := NewGameSession(s.Logger, entity.NewBoard(), human, out, bot)

		// When: the game is played
		_, err := session.Play(ctx)

		// Then: the bot error is returned
		require.ErrorIs(t, err, errBotCrashed)
	})

	t.Run("Cancellation during the bot delay", func(t *testing.T) {
		// Given: a long bot delay and a context cancelled once the bot starts thinking
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		board := s.Board(
			"X  ",
			"   ",
			"   ",
		)

		out := mockedUseCase.NewMockpresenter(t)
		out.EXPECT().Announce(tictactoe.MessageBotThinking).Run(func(string) { cancel() }).Return(nil).Once()

		session := NewGameSession(s.Logger, board, mockedUseCase.NewMockhumanInput(t), out,
			mockedUseCase.NewMockbotPlayer(t), WithBotDelay(time.Hour))

		// When: the game is played
		_, err := session.Play(ctx)

		// Then: the session stops with the context error
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Cancelled context before the first turn", func(t *testing.T) {
		// Given: a cancelled context
		ctx, cancel := context.WithCancel(ctx)
		cancel()

		session := NewGameSession(s.Logger, entity.NewBoard(), mockedUseCase.NewMockhumanInput(t),
			mockedUseCase.NewMockpresenter(t), mockedUseCase.NewMockbotPlayer(t))

		// When: the game is played
		_, err := session.Play(ctx)

		// Then: the context error is returned
		require.ErrorIs(t, err, context.Canceled)
	})
}
