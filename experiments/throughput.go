package experiments

import (
	"time"

	"ttt/experiments/metrics"
	"ttt/game"
	"ttt/searcher"

	"github.com/rs/zerolog/log"
)

// Throughput is the speed of one MCTS budget measured from the empty board.
type Throughput struct {
	Iterations int
	Duration   time.Duration
	TreeSize   int
	PerSecond  float64
}

// RunThroughputExperiment times a search for each iteration budget.
func RunThroughputExperiment(rules game.Rules, budgets []int, seed uint64) ([]Throughput, error) {
	log.Info().Msg("starting throughput experiment...")

	board := game.NewBoard(rules)
	results := make([]Throughput, 0, len(budgets))
	for _, budget := range budgets {
		mcts := searcher.NewMCTS(searcher.WithIterations(budget), searcher.WithSeed(seed), searcher.WithMetrics())
		if _, err := mcts.Search(board, game.X); err != nil {
			return nil, err
		}
		results = append(results, throughput(mcts.LastMetric()))
		log.Info().Msgf("budget %d: %.0f iterations/s", budget, results[len(results)-1].PerSecond)
	}

	log.Info().Msg("completed throughput experiment")
	return results, nil
}

func throughput(m metrics.SearchMetric) Throughput {
	t := Throughput{
		Iterations: m.Iterations,
		Duration:   m.Duration,
		TreeSize:   m.TreeSize,
	}
	if m.Duration > 0 {
		t.PerSecond = float64(m.Iterations) / m.Duration.Seconds()
	}
	return t
}
