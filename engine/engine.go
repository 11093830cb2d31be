package engine

import (
	"ttt/experiments/metrics"
	"ttt/game"
)

// Report is the outcome of one game.
type Report struct {
	Result game.Result
	Log    *game.MoveLog
	// Results holds the classification each task observed when it ended.
	Results     map[game.Mark]game.Result
	GameMetric  metrics.GameMetric
	MoveMetrics []metrics.MoveMetric
}

type Option func(e *Engine)

// WithRenderer draws the board after every move and announces the result.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithBoard starts the game from a position instead of an empty board. The
// mark to move is derived from the position.
func WithBoard(b *game.Board) Option {
	return func(e *Engine) {
		e.board = b.Clone()
	}
}

// Renderer is the part of display.Renderer the engine uses.
type Renderer interface {
	DrawInitial(b *game.Board)
	Draw(b *game.Board, last int)
	Highlight(format string, args ...any)
	Print(format string, args ...any)
}
