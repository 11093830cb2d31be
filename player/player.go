package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"ttt/display"
	"ttt/game"
)

var ErrInputClosed = errors.New("player: input closed")

// Human represents a person typing coordinates such as "b2".
type Human struct {
	in       *bufio.Scanner
	renderer *display.Renderer
}

// NewHuman reads moves from in and writes prompts through renderer.
func NewHuman(in io.Reader, renderer *display.Renderer) *Human {
	return &Human{
		in:       bufio.NewScanner(in),
		renderer: renderer,
	}
}

// TakeTurn prompts until a legal coordinate is entered.
func (h *Human) TakeTurn(board *game.Board, mark game.Mark) (int, error) {
	for {
		h.renderer.Print("Player %s, enter your move (e.g. A1):", mark)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return -1, fmt.Errorf("%w: %w", ErrInputClosed, err)
			}
			return -1, ErrInputClosed
		}

		move, err := game.ParseNotation(h.in.Text(), board.Width())
		if err != nil {
			h.renderer.Print("Invalid move: %v. Try again.", err)
			continue
		}
		if board.At(move) != game.Empty {
			h.renderer.Print("Square %s is already taken. Try again.", game.Notation(move, board.Width()))
			continue
		}
		return move, nil
	}
}
