package searcher

import (
	"errors"

	"ttt/fixed"
)

// Hyperparameters for MCTS

var C = fixed.Sqrt2 // Exploration constant

const noMove = -1
const noParent int32 = -1

var (
	ErrTerminalBoard = errors.New("search on a finished game")
	ErrNoIterations  = errors.New("iteration budget must be at least one")
)
