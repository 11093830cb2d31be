package engine

import (
	"fmt"
	"time"

	"ttt/agent"
	"ttt/experiments/metrics"
	"ttt/game"
	"ttt/scheduler"

	"github.com/rs/zerolog/log"
)

// Engine plays one game between two agents. Each agent runs as a task on a
// cooperative scheduler and yields after every move, so the shared board is
// never touched by two agents at once.
type Engine struct {
	board    *game.Board
	agents   map[game.Mark]agent.Agent
	renderer Renderer

	log     *game.MoveLog
	results map[game.Mark]game.Result
	moves   []metrics.MoveMetric
	err     error
}

// LocalEngine pairs x and o on a fresh board of the given rules.
func LocalEngine(rules game.Rules, x, o agent.Agent, options ...Option) *Engine {
	if x == nil || o == nil {
		panic("need two agents")
	}
	e := &Engine{
		board:   game.NewBoard(rules),
		agents:  map[game.Mark]agent.Agent{game.X: x, game.O: o},
		results: map[game.Mark]game.Result{},
	}
	for _, option := range options {
		option(e)
	}
	e.log = game.NewMoveLog(e.board.Width())
	return e
}

// Run executes the entire game loop until the board is decided or an agent
// fails. The first agent error ends the game and is returned.
func (e *Engine) Run() (Report, error) {
	first := e.board.Turn()
	start := time.Now()

	log.Info().Msgf("player %s (%s) is starting", first, e.agents[first].Name())
	if e.renderer != nil {
		e.renderer.DrawInitial(e.board)
	}

	s := scheduler.New()
	for _, mark := range []game.Mark{first, first.Opponent()} {
		s.Register(mark.String(), e.play(mark))
	}
	s.Run()
	log.Debug().Int("switches", s.Switches()).Msg("scheduler drained")

	result := e.board.Evaluate()
	report := Report{
		Result:  result,
		Log:     e.log,
		Results: e.results,
		GameMetric: metrics.GameMetric{
			StartingPlayer: first.String(),
			StartTime:      start,
			EndTime:        time.Now(),
			Duration:       time.Since(start),
			TotalMoves:     e.log.Len(),
		},
		MoveMetrics: e.moves,
	}
	if result.Status == game.Won {
		report.GameMetric.Winner = result.Winner.String()
	}
	if e.err != nil {
		return report, e.err
	}

	log.Info().Msgf("game over after %d moves: %s", e.log.Len(), result)
	if e.renderer != nil {
		e.renderer.Highlight("%s", result)
		e.renderer.Print("%s", e.log)
	}
	return report, nil
}

// play is the control loop of the task moving for mark.
func (e *Engine) play(mark game.Mark) scheduler.Entry {
	a := e.agents[mark]
	return func(t *scheduler.Task) {
		for {
			if e.err != nil {
				return
			}
			if result := e.board.Evaluate(); result.Over() {
				e.results[mark] = result
				log.Info().Str("task", t.Name()).Str("result", result.String()).Msgf("%s: complete", t.Name())
				return
			}

			move, metric, err := a.FindMove(e.board.Clone(), mark)
			if err != nil {
				e.err = fmt.Errorf("player %s (%s): %w", mark, a.Name(), err)
				return
			}
			if err := e.board.Play(move, mark); err != nil {
				e.err = fmt.Errorf("player %s (%s) played an illegal move: %w", mark, a.Name(), err)
				return
			}
			e.log.Append(move, mark)

			notation := game.Notation(move, e.board.Width())
			e.moves = append(e.moves, metrics.MoveMetric{
				Step:         e.log.Len(),
				Player:       mark.String(),
				Move:         notation,
				SearchMetric: metric,
			})
			log.Debug().Str("player", mark.String()).Str("move", notation).Int("step", e.log.Len()).Msg("move")
			if e.renderer != nil {
				e.renderer.Print("%s plays %s", mark, notation)
				e.renderer.Draw(e.board, move)
			}

			if !t.Yield() {
				return
			}
		}
	}
}
