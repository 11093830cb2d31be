package player

import (
	"bytes"
	"strings"
	"testing"

	"ttt/display"
	"ttt/game"

	"github.com/stretchr/testify/require"
)

func TestTakeTurn(t *testing.T) {
	board, err := game.ParseBoard(game.NewStandardRules(), "X...O....")
	require.NoError(t, err)

	t.Run("accepts lower case coordinates", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("c3\n"), display.NewRenderer(&out, true))
		move, err := h.TakeTurn(board, game.X)
		require.NoError(t, err)
		require.Equal(t, 8, move)
		require.Contains(t, out.String(), "Player X, enter your move")
	})

	t.Run("re-prompts on invalid and occupied squares", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman(strings.NewReader("z9\nb2\nhello\n a2 \n"), display.NewRenderer(&out, true))
		move, err := h.TakeTurn(board, game.O)
		require.NoError(t, err)
		require.Equal(t, 3, move, "a2 is the first legal entry")
		require.Equal(t, 4, strings.Count(out.String(), "enter your move"))
		require.Contains(t, out.String(), "Square B2 is already taken")
		require.Contains(t, out.String(), "Invalid move")
	})

	t.Run("closed input is an error", func(t *testing.T) {
		h := NewHuman(strings.NewReader("b2\n"), display.NewRenderer(&bytes.Buffer{}, true))
		_, err := h.TakeTurn(board, game.X)
		require.ErrorIs(t, err, ErrInputClosed)
	})
}
