package searcher

import (
	"testing"

	"ttt/fixed"
	"ttt/game"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(game.NewStandardRules(), s)
	require.NoError(t, err)
	return b
}

func TestSearch(t *testing.T) {
	t.Run("single legal move is returned for any budget", func(t *testing.T) {
		b := parse(t, "XOXXOOOX.")
		for _, iterations := range []int{1, 2, 10, 500} {
			move, err := NewMCTS(WithIterations(iterations), WithSeed(1)).Search(b, game.X)
			require.NoError(t, err)
			require.Equal(t, 8, move, "iterations=%d should pick the only empty cell", iterations)
		}
	})

	t.Run("finds a win in one", func(t *testing.T) {
		b := parse(t, "XX.OO....")
		move, err := NewMCTS(WithIterations(3000), WithSeed(7)).Search(b, game.X)
		require.NoError(t, err)
		require.Equal(t, 2, move, "X should complete the top row")
	})

	t.Run("finds the win for O as well", func(t *testing.T) {
		b := parse(t, "XX.OO.X..")
		move, err := NewMCTS(WithIterations(3000), WithSeed(7)).Search(b, game.O)
		require.NoError(t, err)
		require.Equal(t, 5, move, "O should complete the middle row")
	})

	t.Run("blocks an immediate threat", func(t *testing.T) {
		b := parse(t, "XX..O....")
		move, err := NewMCTS(WithIterations(5000), WithSeed(3)).Search(b, game.O)
		require.NoError(t, err)
		require.Equal(t, 2, move, "O must block the top row")
	})

	t.Run("does not modify the board", func(t *testing.T) {
		b := parse(t, "X...O....")
		before := b.String()
		_, err := NewMCTS(WithIterations(200), WithSeed(1)).Search(b, game.X)
		require.NoError(t, err)
		require.Equal(t, before, b.String())
	})

	t.Run("rejects finished games", func(t *testing.T) {
		won := parse(t, "XXXOO....")
		_, err := NewMCTS(WithIterations(10)).Search(won, game.O)
		require.ErrorIs(t, err, ErrTerminalBoard)

		drawn := parse(t, "XOXXOOOXX")
		_, err = NewMCTS(WithIterations(10)).Search(drawn, game.O)
		require.ErrorIs(t, err, ErrTerminalBoard)
	})

	t.Run("package search requires a positive budget", func(t *testing.T) {
		_, err := Search(game.NewBoard(game.NewStandardRules()), game.X, 0)
		require.ErrorIs(t, err, ErrNoIterations)

		move, err := Search(parse(t, "XOXXOOOX."), game.X, 1)
		require.NoError(t, err)
		require.Equal(t, 8, move)
	})

	t.Run("seeded searches are reproducible", func(t *testing.T) {
		b := game.NewBoard(game.NewStandardRules())
		first, err := NewMCTS(WithIterations(300), WithSeed(42)).Search(b, game.X)
		require.NoError(t, err)
		second, err := NewMCTS(WithIterations(300), WithSeed(42)).Search(b, game.X)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestVisitAccounting(t *testing.T) {
	m := NewMCTS(WithIterations(800), WithSeed(5))
	b := game.NewBoard(game.NewStandardRules())
	tr := m.buildTree(b, game.X)

	require.Equal(t, uint32(800), tr.at(root).visits, "root visits should equal the iteration budget")

	for i := range tr.nodes {
		n := tr.at(int32(i))
		if !n.expanded() {
			continue
		}
		var sum uint32
		for c := n.first; c < n.first+n.count; c++ {
			child := tr.at(c)
			require.Equal(t, int32(i), child.parent)
			require.Equal(t, n.player.Opponent(), child.player, "children are played by the other mark")
			sum += child.visits
		}
		require.Equal(t, n.visits, 1+sum, "node %d visits should be one more than its children's", i)
		require.LessOrEqual(t, n.score, fixed.FromInt(int(n.visits)))
	}
}

func TestMetrics(t *testing.T) {
	m := NewMCTS(WithIterations(100), WithSeed(1), WithMetrics())
	_, err := m.Search(game.NewBoard(game.NewStandardRules()), game.X)
	require.NoError(t, err)

	metric := m.LastMetric()
	require.Equal(t, "mcts", metric.Agent)
	require.Equal(t, 100, metric.Iterations)
	require.Equal(t, 100, metric.FullPlayouts+metric.TerminalHits, "every iteration ends in a rollout or a terminal node")
	require.Greater(t, metric.TreeSize, 1)
}

func TestTree(t *testing.T) {
	t.Run("expansion orders children by move", func(t *testing.T) {
		b := parse(t, "XOXOXO.X.")
		tr := newTree(game.O, 4)
		tr.expand(root, b)

		r := tr.at(root)
		require.Equal(t, int32(2), r.count)
		require.Equal(t, 6, tr.at(r.first).move)
		require.Equal(t, 8, tr.at(r.first+1).move)
		require.Equal(t, game.O, tr.at(r.first).player)
		require.Panics(t, func() { tr.expand(root, b) }, "Should panic when expanding twice")
	})

	t.Run("backup flips the value at every ply", func(t *testing.T) {
		b := parse(t, "XOXOXO.X.")
		tr := newTree(game.O, 4)
		tr.expand(root, b)
		child := tr.at(root).first

		tr.backup(child, fixed.One)
		require.Equal(t, fixed.One, tr.at(child).score)
		require.Equal(t, fixed.Zero, tr.at(root).score)
		require.Equal(t, uint32(1), tr.at(root).visits)

		tr.backup(child, fixed.Half)
		require.Equal(t, fixed.One+fixed.Half, tr.at(child).score)
		require.Equal(t, fixed.Half, tr.at(root).score)
	})

	t.Run("most visited keeps the first of equals", func(t *testing.T) {
		b := game.NewBoard(game.NewStandardRules())
		tr := newTree(game.X, 16)
		tr.expand(root, b)
		first := tr.at(root).first
		tr.at(first + 3).visits = 5
		tr.at(first + 6).visits = 5
		require.Equal(t, first+3, tr.mostVisited(root))
	})
}

func TestSelection(t *testing.T) {
	b := parse(t, "XOXOXO.X.")

	t.Run("unvisited child is preferred", func(t *testing.T) {
		tr := newTree(game.O, 4)
		tr.expand(root, b)
		r := tr.at(root)
		r.visits = 2
		tr.at(r.first).visits = 1
		tr.at(r.first).score = fixed.One

		m := NewMCTS(WithSeed(1))
		require.Equal(t, r.first+1, m.pickChild(tr, root))
	})

	t.Run("falls back to a random child when nothing scores", func(t *testing.T) {
		tr := newTree(game.O, 4)
		tr.expand(root, b)
		r := tr.at(root)
		r.visits = 2
		tr.at(r.first).visits = 1
		tr.at(r.first + 1).visits = 1

		m := NewMCTS(WithSeed(1), WithExploration(0))
		for i := 0; i < 20; i++ {
			picked := m.pickChild(tr, root)
			require.GreaterOrEqual(t, picked, r.first)
			require.Less(t, picked, r.first+r.count)
		}
	})
}
