// Package config loads run settings from YAML on top of compiled defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"ttt/agent"
	"ttt/experiments"
	"ttt/experiments/metrics"
	"ttt/game"
	"ttt/meta"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	ModeCVC   = "cvc"   // computer against computer
	ModePVC   = "pvc"   // human against computer
	ModeArena = "arena" // many computer games with records
	ModeBench = "bench" // search throughput
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Mode     string     `yaml:"mode"`
	LogLevel string     `yaml:"log_level"`
	Plain    bool       `yaml:"plain"` // Disable colors
	Rules    game.Rules `yaml:"rules"`

	// HumanMark is the mark the human plays in pvc mode.
	HumanMark string                  `yaml:"human_mark"`
	Players   [2]metrics.AgentConfig  `yaml:"players"`
	Arena     experiments.ArenaConfig `yaml:"arena"`
	Budgets   []int                   `yaml:"bench_budgets"`
}

func Default() Config {
	return Config{
		Mode:      ModeCVC,
		LogLevel:  "info",
		Rules:     game.Rules{Width: meta.BoardWidth, Goal: meta.Goal},
		HumanMark: "X",
		Players: [2]metrics.AgentConfig{
			{ID: 1, Kind: agent.KindMCTS, Iterations: meta.Iterations},
			{ID: 2, Kind: agent.KindNegamax, Depth: meta.Depth},
		},
		Arena: experiments.ArenaConfig{
			Name:    "arena",
			Games:   meta.Games,
			Workers: meta.Workers,
			OutDir:  meta.OutDir,
		},
		Budgets: []int{100, 1000, 10000},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeCVC, ModePVC, ModeArena, ModeBench:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Rules.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := game.ParseMark(c.HumanMark); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, p := range c.Players {
		if p.Iterations < 0 || p.Depth < 0 || p.Exploration < 0 {
			return fmt.Errorf("%w: player %d has negative settings", ErrInvalid, p.ID)
		}
	}
	if c.Mode == ModeArena && c.Arena.Games < 1 {
		return fmt.Errorf("%w: arena needs at least one game", ErrInvalid)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// ArenaSetup returns the arena settings with the configured players and rules.
func (c Config) ArenaSetup() experiments.ArenaConfig {
	arena := c.Arena
	arena.Rules = c.Rules
	arena.Agents = c.Players
	return arena
}
