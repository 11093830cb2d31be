package agent

import (
	"errors"
	"fmt"
	"time"

	"ttt/experiments/metrics"
	"ttt/game"
	"ttt/negamax"
	"ttt/player"
	"ttt/searcher"

	"golang.org/x/exp/rand"
)

const (
	KindMCTS    = "mcts"
	KindNegamax = "negamax"
	KindRandom  = "random"
	KindHuman   = "human"
)

var (
	ErrNoLegalMove = errors.New("agent: no legal move")
	ErrUnknownKind = errors.New("agent: unknown kind")
	ErrNoInput     = errors.New("agent: human agent needs an input")
)

type Agent interface {
	Name() string
	// FindMove returns a move for mark and performance metrics (if collected)
	// of the decision. The board is a private copy.
	FindMove(board *game.Board, mark game.Mark) (int, metrics.SearchMetric, error)
}

// New builds the agent described by config. Human agents read from human,
// which may be nil for every other kind.
func New(config metrics.AgentConfig, human *player.Human) (Agent, error) {
	switch config.Kind {
	case KindMCTS:
		options := []searcher.Option{searcher.WithMetrics()}
		if config.Iterations > 0 {
			options = append(options, searcher.WithIterations(config.Iterations))
		}
		if config.Exploration > 0 {
			options = append(options, searcher.WithExploration(config.Exploration))
		}
		if config.Seed != 0 {
			options = append(options, searcher.WithSeed(config.Seed))
		}
		return NewMCTSAgent(searcher.NewMCTS(options...)), nil
	case KindNegamax:
		return NewNegamaxAgent(negamax.NewSolver(config.Depth)), nil
	case KindRandom:
		return NewRandomAgent(config.Seed), nil
	case KindHuman:
		if human == nil {
			return nil, ErrNoInput
		}
		return NewHumanAgent(human), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, config.Kind)
}

type mctsAgent struct {
	mcts *searcher.MCTS
}

func NewMCTSAgent(mcts *searcher.MCTS) Agent {
	return mctsAgent{mcts: mcts}
}

func (a mctsAgent) Name() string {
	return KindMCTS
}

func (a mctsAgent) FindMove(board *game.Board, mark game.Mark) (int, metrics.SearchMetric, error) {
	move, err := a.mcts.Search(board, mark)
	if err != nil {
		return move, metrics.SearchMetric{}, err
	}
	return move, a.mcts.LastMetric(), nil
}

type negamaxAgent struct {
	solver *negamax.Solver
}

func NewNegamaxAgent(solver *negamax.Solver) Agent {
	return negamaxAgent{solver: solver}
}

func (a negamaxAgent) Name() string {
	return KindNegamax
}

func (a negamaxAgent) FindMove(board *game.Board, mark game.Mark) (int, metrics.SearchMetric, error) {
	collector := metrics.NewCollector()
	collector.Start(a.Name())
	move, err := a.solver.Decide(board, mark)
	if err != nil {
		return move, metrics.SearchMetric{}, err
	}
	collector.SetTreeSize(a.solver.Nodes())
	return move, collector.Complete(), nil
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent plays uniformly random legal moves. A zero seed uses the
// clock.
func NewRandomAgent(seed uint64) Agent {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Name() string {
	return KindRandom
}

func (a *randomAgent) FindMove(board *game.Board, mark game.Mark) (int, metrics.SearchMetric, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return -1, metrics.SearchMetric{}, ErrNoLegalMove
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Agent: a.Name()}, nil
}

type humanAgent struct {
	human *player.Human
}

func NewHumanAgent(human *player.Human) Agent {
	return humanAgent{human: human}
}

func (a humanAgent) Name() string {
	return KindHuman
}

func (a humanAgent) FindMove(board *game.Board, mark game.Mark) (int, metrics.SearchMetric, error) {
	start := time.Now()
	move, err := a.human.TakeTurn(board, mark)
	return move, metrics.SearchMetric{Agent: a.Name(), Duration: time.Since(start)}, err
}
