package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"ttt/agent"
	"ttt/config"
	"ttt/display"
	"ttt/engine"
	"ttt/experiments"
	"ttt/game"
	"ttt/player"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	mode := flag.String("mode", "", "Game mode: cvc, pvc, arena or bench")
	iterations := flag.Int("iterations", 0, "MCTS iterations per move for both computer players")
	seed := flag.Uint64("seed", 0, "Seed for computer players (0 uses the clock)")
	verbose := flag.Bool("v", false, "Log scheduler switches and search summaries")
	plain := flag.Bool("plain", false, "Disable colors")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *verbose {
		cfg.LogLevel = zerolog.LevelDebugValue
	}
	cfg.Plain = cfg.Plain || *plain
	for i := range cfg.Players {
		if *iterations > 0 {
			cfg.Players[i].Iterations = *iterations
		}
		if *seed != 0 {
			cfg.Players[i].Seed = *seed + uint64(i)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.Mode)
	}
}

func run(cfg config.Config) error {
	renderer := display.NewRenderer(os.Stdout, cfg.Plain)

	switch cfg.Mode {
	case config.ModeArena:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		summary, err := experiments.RunArena(ctx, cfg.ArenaSetup())
		if err != nil {
			return err
		}
		renderer.Highlight("%s", summary)
		if summary.Dir != "" {
			renderer.Print("Records written to %s", summary.Dir)
		}
		return nil

	case config.ModeBench:
		results, err := experiments.RunThroughputExperiment(cfg.Rules, cfg.Budgets, cfg.Players[0].Seed)
		if err != nil {
			return err
		}
		for _, r := range results {
			renderer.Print("%8d iterations  %12s  %8d nodes  %10.0f it/s", r.Iterations, r.Duration, r.TreeSize, r.PerSecond)
		}
		return nil
	}

	x, o, err := seat(cfg, renderer)
	if err != nil {
		return err
	}
	_, err = engine.LocalEngine(cfg.Rules, x, o, engine.WithRenderer(renderer)).Run()
	return err
}

// seat builds the X and O agents for an interactive game.
func seat(cfg config.Config, renderer *display.Renderer) (agent.Agent, agent.Agent, error) {
	if cfg.Mode == config.ModeCVC {
		x, err := agent.New(cfg.Players[0], nil)
		if err != nil {
			return nil, nil, err
		}
		o, err := agent.New(cfg.Players[1], nil)
		return x, o, err
	}

	humanMark, err := game.ParseMark(cfg.HumanMark)
	if err != nil {
		return nil, nil, err
	}
	human := agent.NewHumanAgent(player.NewHuman(os.Stdin, renderer))
	computer, err := agent.New(cfg.Players[1], nil)
	if err != nil {
		return nil, nil, fmt.Errorf("computer player: %w", err)
	}
	renderer.Print("You play %s against %s.", humanMark, computer.Name())
	if humanMark == game.X {
		return human, computer, nil
	}
	return computer, human, nil
}
