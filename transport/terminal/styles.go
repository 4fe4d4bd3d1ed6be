package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/noughts/internal/entity"
	"github.com/rocketscienceinc/noughts/internal/tictactoe"
)

var (
	ColorPlayerOne = lipgloss.Color("#2CD7C7")
	ColorPlayerTwo = lipgloss.Color("#F4D03F")
	ColorFrame     = lipgloss.Color("#2C4A54")
	ColorError     = lipgloss.Color("#E74C3C")
)

// Styles colours the console output. The zero value prints plain text.
type Styles struct {
	enabled bool

	playerOne lipgloss.Style
	playerTwo lipgloss.Style
	frame     lipgloss.Style
	title     lipgloss.Style
	warning   lipgloss.Style
}

func NewStyles(enabled bool) Styles {
	return Styles{
		enabled: enabled,

		playerOne: lipgloss.NewStyle().Bold(true).Foreground(ColorPlayerOne),
		playerTwo: lipgloss.NewStyle().Bold(true).Foreground(ColorPlayerTwo),
		frame:     lipgloss.NewStyle().Foreground(ColorFrame),
		title:     lipgloss.NewStyle().Bold(true),
		warning:   lipgloss.NewStyle().Foreground(ColorError),
	}
}

// Board - colours each player's symbol and the frame of a rendered board.
func (that Styles) Board(board *entity.Board) string {
	text := board.Render()
	if !that.enabled {
		return text
	}

	symbols := board.Symbols()

	var sb strings.Builder
	for _, r := range text {
		switch r {
		case symbols.PlayerOne:
			sb.WriteString(that.playerOne.Render(string(r)))
		case symbols.PlayerTwo:
			sb.WriteString(that.playerTwo.Render(string(r)))
		case '|', '-':
			sb.WriteString(that.frame.Render(string(r)))
		default:
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

func (that Styles) Message(message string) string {
	if !that.enabled {
		return message
	}

	switch message {
	case tictactoe.MessageInvalidCoordinates:
		return that.warning.Render(message)
	case tictactoe.PlayerOneWon.String():
		return that.playerOne.Render(message)
	case tictactoe.PlayerTwoWon.String():
		return that.playerTwo.Render(message)
	case tictactoe.Tie.String(), tictactoe.MessageEndBoardState:
		return that.title.Render(message)
	default:
		return message
	}
}
