// meta/meta.go
package meta

// Iterations is the default MCTS budget per move.
const Iterations = 10000

// Board geometry of the classic game.
const (
	BoardWidth = 3
	Goal       = 3
)

// Depth defines the default negamax search depth; 0 searches to the end.
const Depth = 0

// Games defines the number of games per arena run.
const Games = 20

// Workers defines how many arena games run at the same time.
const Workers = 4

const OutDir = "experiments"
