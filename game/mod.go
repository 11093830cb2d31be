package game

import "fmt"

// Mark is the content of a board cell: empty or one player's mark.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	}
	panic(fmt.Sprintf("mark %d has no opponent", m))
}

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return " "
}

// ParseMark accepts "X" or "O" in either case.
func ParseMark(s string) (Mark, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	}
	return Empty, fmt.Errorf("unknown mark %q", s)
}

type Status int

const (
	Ongoing Status = iota
	Draw
	Won
)

// Result classifies a board: still ongoing, drawn, or won by Winner.
type Result struct {
	Status Status
	Winner Mark
}

func (r Result) Over() bool {
	return r.Status != Ongoing
}

func (r Result) String() string {
	switch r.Status {
	case Draw:
		return "It is a draw!"
	case Won:
		return fmt.Sprintf("%s won!", r.Winner)
	}
	return "ongoing"
}
