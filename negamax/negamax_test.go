package negamax

import (
	"testing"

	"ttt/game"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(game.NewStandardRules(), s)
	require.NoError(t, err)
	return b
}

func TestDecide(t *testing.T) {
	t.Run("takes a win in one", func(t *testing.T) {
		move, err := NewSolver(0).Decide(parse(t, "XX.OO...."), game.X)
		require.NoError(t, err)
		require.Equal(t, 2, move)
	})

	t.Run("blocks the opponent", func(t *testing.T) {
		move, err := NewSolver(0).Decide(parse(t, "XX..O...."), game.O)
		require.NoError(t, err)
		require.Equal(t, 2, move)
	})

	t.Run("prefers winning over blocking", func(t *testing.T) {
		move, err := NewSolver(2).Decide(parse(t, "XX.OO.X.."), game.O)
		require.NoError(t, err)
		require.Equal(t, 5, move)
	})

	t.Run("rejects decided games", func(t *testing.T) {
		_, err := NewSolver(0).Decide(parse(t, "XXXOO...."), game.O)
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("leaves the board untouched", func(t *testing.T) {
		b := parse(t, "X...O....")
		before := b.String()
		_, err := NewSolver(0).Decide(b, game.X)
		require.NoError(t, err)
		require.Equal(t, before, b.String())
	})

	t.Run("perfect play from the start is a draw", func(t *testing.T) {
		b := game.NewBoard(game.NewStandardRules())
		s := NewSolver(0)
		mark := game.X
		for !b.Evaluate().Over() {
			move, err := s.Decide(b, mark)
			require.NoError(t, err)
			require.NoError(t, b.Play(move, mark))
			mark = mark.Opponent()
		}
		require.Equal(t, game.Draw, b.Evaluate().Status)
		require.Greater(t, s.Nodes(), 0)
	})
}
