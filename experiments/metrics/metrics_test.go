package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts a search", func(t *testing.T) {
		c := NewCollector()
		c.Start("mcts")
		c.AddIteration()
		c.AddIteration()
		c.AddFullPlayout()
		c.AddTerminalHit()
		c.SetTreeSize(10)

		m := c.Complete()
		require.Equal(t, "mcts", m.Agent)
		require.Equal(t, 2, m.Iterations)
		require.Equal(t, 1, m.FullPlayouts)
		require.Equal(t, 1, m.TerminalHits)
		require.Equal(t, 10, m.TreeSize)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("a")
		c.AddIteration()
		c.Start("b")
		require.Zero(t, c.Complete().Iterations)
	})

	t.Run("dummy collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("mcts")
		c.AddIteration()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "arena")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "mcts", Iterations: 100, Exploration: 1.5}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Agent1: 1, Agent2: 2,
		GameMetric: GameMetric{StartingPlayer: "X", Winner: "O", StartTime: time.Now(), EndTime: time.Now(), TotalMoves: 6},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: "X", Move: "B2", SearchMetric: SearchMetric{Agent: "mcts", Iterations: 100}},
	}}))

	read := func(file string) [][]string {
		f, err := os.Open(filepath.Join(w.Dir(), file))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	configs := read("agent_configs.csv")
	require.Len(t, configs, 2)
	require.Equal(t, []string{"1", "mcts", "100", "1.5", "0", "0"}, configs[1])

	games := read("game_records.csv")
	require.Len(t, games, 2)
	require.Equal(t, "O", games[1][4])
	require.Equal(t, "6", games[1][8])

	moves := read("move_records.csv")
	require.Len(t, moves, 2)
	require.Equal(t, []string{"1", "1", "X", "B2", "mcts"}, moves[1][:5])
}
