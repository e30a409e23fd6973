package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const rowSeparator = "---+---+---\n"

// messageFor translates recoverable game errors into text for the players.
func messageFor(err error) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrInvalidState):
		return apperror.ErrInvalidState.Error(), true
	case errors.Is(err, apperror.ErrCellOccupied):
		return apperror.ErrCellOccupied.Error(), true
	case errors.Is(err, apperror.ErrInvalidCell):
		return "choose a square between 1 and 9", true
	default:
		return "", false
	}
}

func outcomeMessage(state entity.GameState) string {
	switch {
	case state.Winner != nil:
		return fmt.Sprintf("%s (%s) wins!", state.Winner.Name, state.Winner.Symbol)
	case state.Outcome.IsTie():
		return "It's a tie!"
	default:
		return ""
	}
}

// renderBoard draws the grid. Empty squares show the number to type for them.
func renderBoard(board [entity.BoardSize]entity.Cell) string {
	var out strings.Builder

	out.WriteString("\n")

	for i, cell := range board {
		label := string(cell)
		if cell == entity.Empty {
			label = strconv.Itoa(i + 1)
		}

		out.WriteString(" " + label + " ")

		switch {
		case entity.Column(i) < 2:
			out.WriteString("|")
		case entity.Row(i) < 2:
			out.WriteString("\n" + rowSeparator)
		default:
			out.WriteString("\n")
		}
	}

	out.WriteString("\n")

	return out.String()
}
