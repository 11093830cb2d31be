package experiments

import (
	"context"
	"fmt"

	"ttt/agent"
	"ttt/engine"
	"ttt/experiments/metrics"
	"ttt/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ArenaConfig describes a series of games between two agents.
type ArenaConfig struct {
	Name    string                 `yaml:"name"`
	Games   int                    `yaml:"games"`
	Workers int                    `yaml:"workers"`
	OutDir  string                 `yaml:"out_dir"` // Empty disables CSV output
	Rules   game.Rules             `yaml:"-"`
	Agents  [2]metrics.AgentConfig `yaml:"-"`
}

// Summary counts the outcomes of an arena run.
type Summary struct {
	Games int
	Wins  map[int]int // By AgentConfig.ID
	Draws int
	Dir   string // Where the records were written, if anywhere
}

func (s Summary) String() string {
	return fmt.Sprintf("%d games, wins %v, %d draws", s.Games, s.Wins, s.Draws)
}

type gameResult struct {
	x, o   metrics.AgentConfig
	report engine.Report
}

// RunArena plays cfg.Games games, at most cfg.Workers at a time. The agents
// swap marks every game so each moves first in half of them.
func RunArena(ctx context.Context, cfg ArenaConfig) (Summary, error) {
	if cfg.Games < 1 {
		return Summary{}, fmt.Errorf("arena needs at least one game, got %d", cfg.Games)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return Summary{}, err
	}
	for _, config := range cfg.Agents {
		if config.Kind == agent.KindHuman {
			return Summary{}, fmt.Errorf("arena cannot seat a %s agent", config.Kind)
		}
	}

	log.Info().Msgf("starting %s arena: %d games, agent1=%+v agent2=%+v", cfg.Name, cfg.Games, cfg.Agents[0], cfg.Agents[1])

	results := make([]gameResult, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i := range cfg.Games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			x, o := cfg.Agents[0], cfg.Agents[1]
			if i%2 == 1 {
				x, o = o, x
			}
			report, err := runGame(cfg.Rules, reseed(x, i), reseed(o, i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = gameResult{x: x, o: o, report: report}
			log.Info().Msgf("completed game %d of %d: %s", i+1, cfg.Games, report.Result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	summary := summarize(results)
	log.Info().Msgf("completed %s arena: %s", cfg.Name, summary)

	if cfg.OutDir == "" {
		return summary, nil
	}
	dir, err := store(cfg, results)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

// reseed gives each game its own deterministic seed when the agent has one.
func reseed(config metrics.AgentConfig, game int) metrics.AgentConfig {
	if config.Seed != 0 {
		config.Seed += uint64(game)
	}
	return config
}

// runGame executes a single game between two agents
func runGame(rules game.Rules, x, o metrics.AgentConfig) (engine.Report, error) {
	agentX, err := agent.New(x, nil)
	if err != nil {
		return engine.Report{}, err
	}
	agentO, err := agent.New(o, nil)
	if err != nil {
		return engine.Report{}, err
	}
	return engine.LocalEngine(rules, agentX, agentO).Run()
}

func summarize(results []gameResult) Summary {
	decided := lo.Filter(results, func(r gameResult, _ int) bool {
		return r.report.Result.Status == game.Won
	})
	winners := lo.Map(decided, func(r gameResult, _ int) int {
		if r.report.Result.Winner == game.X {
			return r.x.ID
		}
		return r.o.ID
	})
	return Summary{
		Games: len(results),
		Wins:  lo.CountValues(winners),
		Draws: len(results) - len(decided),
	}
}

func store(cfg ArenaConfig, results []gameResult) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents[:]); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	gameRecords := lo.Map(results, func(r gameResult, i int) metrics.GameRecord {
		return metrics.GameRecord{
			ID:         i + 1,
			Agent1:     r.x.ID,
			Agent2:     r.o.ID,
			GameMetric: r.report.GameMetric,
		}
	})
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	moveRecords := lo.FlatMap(results, func(r gameResult, i int) []metrics.MoveRecord {
		return lo.Map(r.report.MoveMetrics, func(m metrics.MoveMetric, _ int) metrics.MoveRecord {
			return metrics.MoveRecord{Game: i + 1, MoveMetric: m}
		})
	})
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
