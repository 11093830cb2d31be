package searcher

import (
	"fmt"
	"time"

	"ttt/experiments/metrics"
	"ttt/fixed"
	"ttt/game"
	"ttt/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	iterations  int
	exploration fixed.Fixed
	rng         *rand.Rand
	metrics     metrics.Collector
	last        metrics.SearchMetric
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

// WithExploration sets the UCT exploration constant.
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = fixed.FromFloat(c)
		}
	}
}

// WithSeed makes rollouts reproducible.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  meta.Iterations,
		exploration: C,
		rng:         rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Search runs a fresh search with the given iteration budget.
func Search(board *game.Board, player game.Mark, iterations int) (int, error) {
	if iterations < 1 {
		return noMove, ErrNoIterations
	}
	return NewMCTS(WithIterations(iterations)).Search(board, player)
}

// Search returns the move the most robust root child plays for player. The
// board is not modified.
func (m *MCTS) Search(board *game.Board, player game.Mark) (int, error) {
	if board.Evaluate().Over() {
		return noMove, ErrTerminalBoard
	}

	m.metrics.Start("mcts")
	t := m.buildTree(board, player)
	if !t.at(root).expanded() {
		// A budget of one iteration never gets past the root's rollout
		t.expand(root, board)
	}
	best := t.at(t.mostVisited(root))
	m.metrics.SetTreeSize(t.size())
	m.last = m.metrics.Complete()

	log.Debug().
		Str("player", player.String()).
		Str("move", game.Notation(best.move, board.Width())).
		Uint32("visits", best.visits).
		Str("score", fmt.Sprintf("%.3f", ratio(best.score, best.visits))).
		Int("nodes", t.size()).
		Msg("mcts-search")

	return best.move, nil
}

// LastMetric reports the statistics of the previous search when metrics
// are enabled.
func (m *MCTS) LastMetric() metrics.SearchMetric {
	return m.last
}

func (m *MCTS) buildTree(board *game.Board, player game.Mark) *tree {
	t := newTree(player, m.iterations+board.Len())
	scratch := board.Clone()
	for i := 0; i < m.iterations; i++ {
		scratch.CopyFrom(board)
		m.simulate(t, scratch)
		m.metrics.AddIteration()
	}
	return t
}

// simulate runs one selection, expansion, rollout and backup pass on the
// private board b.
func (m *MCTS) simulate(t *tree, b *game.Board) {
	i := root
	for {
		n := t.at(i)
		if result := b.Evaluate(); result.Over() {
			m.metrics.AddTerminalHit()
			t.backup(i, game.OutcomeValue(result, n.player))
			return
		}
		if n.visits == 0 {
			t.backup(i, m.rollout(b, n.player))
			return
		}
		if !n.expanded() {
			t.expand(i, b)
		}
		i = m.pickChild(t, i)
		child := t.at(i)
		if err := b.Play(child.move, child.player); err != nil {
			panic(fmt.Sprintf("tree out of sync with board: %v", err))
		}
	}
}

// pickChild selects the child of i with the highest UCT score.
func (m *MCTS) pickChild(t *tree, i int32) int32 {
	parent := t.at(i)
	policy := newUCT(m.exploration, parent.visits)

	best := noParent
	bestScore := fixed.Zero
	for c := parent.first; c < parent.first+parent.count; c++ {
		child := t.at(c)
		if score := policy.evaluate(child.score, child.visits); score > bestScore {
			bestScore = score
			best = c
		}
	}
	if best == noParent {
		best = parent.first + int32(m.rng.Intn(int(parent.count)))
	}
	return best
}

// rollout plays uniformly random moves until the game ends and scores the
// result for perspective, who has just moved.
func (m *MCTS) rollout(b *game.Board, perspective game.Mark) fixed.Fixed {
	m.metrics.AddFullPlayout()
	moves := make([]int, 0, b.Len())
	current := perspective.Opponent()
	for {
		if result := b.Evaluate(); result.Over() {
			return game.OutcomeValue(result, perspective)
		}
		moves = moves[:0]
		for move := range b.Moves() {
			moves = append(moves, move)
		}
		move := moves[m.rng.Intn(len(moves))]
		if err := b.Play(move, current); err != nil {
			panic(err)
		}
		current = current.Opponent()
	}
}

func ratio(score fixed.Fixed, visits uint32) float64 {
	if visits == 0 {
		return 0
	}
	return score.Float64() / float64(visits)
}
