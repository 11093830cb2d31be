// Package negamax implements a depth-limited alpha-beta search over game
// boards. Wins found sooner score higher than wins found later.
package negamax

import (
	"errors"
	"math"

	"ttt/game"

	"github.com/rs/zerolog/log"
)

/*
function negamax(node, depth, α, β) is
    if depth = 0 or node is terminal then
        return the heuristic value of node for the player to move
    value := −∞
    foreach child of node do
        value := max(value, −negamax(child, depth − 1, −β, −α))
        α := max(α, value)
        if α ≥ β then
            break
    return value
*/

const winScore = 1000.0

var (
	ErrGameOver = errors.New("negamax: game is already decided")
)

type Solver struct {
	depth int // 0 searches to the end of the game
	nodes int
}

func NewSolver(depth int) *Solver {
	return &Solver{depth: max(depth, 0)}
}

// Nodes reports how many positions the last Decide call visited.
func (s *Solver) Nodes() int {
	return s.nodes
}

// Decide returns the best move for mark. The lowest move wins ties.
func (s *Solver) Decide(board *game.Board, mark game.Mark) (int, error) {
	if board.Evaluate().Over() {
		return -1, ErrGameOver
	}
	s.nodes = 0
	b := board.Clone()
	depth := s.depth
	if depth == 0 {
		depth = b.EmptyCount()
	}

	bestMove := -1
	bestScore := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)
	for _, move := range b.LegalMoves() {
		mustPlay(b, move, mark)
		score := -s.search(b, mark.Opponent(), depth-1, -beta, -alpha)
		b.Undo(move)

		if score > bestScore {
			bestScore, bestMove = score, move
		}
		alpha = max(alpha, bestScore)
	}

	log.Debug().
		Str("player", mark.String()).
		Str("move", game.Notation(bestMove, b.Width())).
		Float64("score", bestScore).
		Int("nodes", s.nodes).
		Msg("negamax-search")

	return bestMove, nil
}

// search scores b for toMove.
func (s *Solver) search(b *game.Board, toMove game.Mark, depth int, alpha, beta float64) float64 {
	s.nodes++
	result := b.Evaluate()
	switch {
	case result.Status == game.Won:
		// The previous mover completed a line
		return -(winScore + float64(b.EmptyCount()))
	case result.Status == game.Draw:
		return 0
	case depth <= 0:
		return game.EvaluateLines(b, toMove)
	}

	value := math.Inf(-1)
	for move := range b.Moves() {
		mustPlay(b, move, toMove)
		value = max(value, -s.search(b, toMove.Opponent(), depth-1, -beta, -alpha))
		b.Undo(move)

		alpha = max(alpha, value)
		if alpha >= beta {
			break
		}
	}
	return value
}

func mustPlay(b *game.Board, move int, m game.Mark) {
	if err := b.Play(move, m); err != nil {
		panic(err)
	}
}
