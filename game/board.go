package game

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

var (
	ErrOutOfRange = errors.New("move out of range")
	ErrOccupied   = errors.New("cell already marked")
)

// Board is a square grid of marks indexed row-major: move = row*width + col.
// A Board is not safe for concurrent use; searches work on clones.
type Board struct {
	rules Rules
	cells []Mark
	lines [][]int // shared between clones, never written after construction
}

func NewBoard(rules Rules) *Board {
	if err := rules.Validate(); err != nil {
		panic(err)
	}
	return &Board{
		rules: rules,
		cells: make([]Mark, rules.Cells()),
		lines: rules.lines(),
	}
}

// ParseBoard builds a board from a row-major string of 'X', 'O' and '.'
// (or space). Newlines are ignored.
func ParseBoard(rules Rules, s string) (*Board, error) {
	b := NewBoard(rules)
	s = strings.ReplaceAll(s, "\n", "")
	if len(s) != len(b.cells) {
		return nil, fmt.Errorf("board string has %d cells, want %d", len(s), len(b.cells))
	}
	for i, c := range s {
		switch c {
		case 'X', 'x':
			b.cells[i] = X
		case 'O', 'o':
			b.cells[i] = O
		case '.', ' ':
		default:
			return nil, fmt.Errorf("unexpected character %q at %d", c, i)
		}
	}
	return b, nil
}

func (b *Board) Rules() Rules {
	return b.rules
}

func (b *Board) Width() int {
	return b.rules.Width
}

// Len is the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) At(move int) Mark {
	return b.cells[move]
}

func (b *Board) Play(move int, m Mark) error {
	if move < 0 || move >= len(b.cells) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, move)
	}
	if b.cells[move] != Empty {
		return fmt.Errorf("%w: %s", ErrOccupied, Notation(move, b.Width()))
	}
	b.cells[move] = m
	return nil
}

// Undo clears a previously played cell.
func (b *Board) Undo(move int) {
	if b.cells[move] == Empty {
		panic(fmt.Sprintf("undo of empty cell %d", move))
	}
	b.cells[move] = Empty
}

func (b *Board) Clone() *Board {
	cells := make([]Mark, len(b.cells))
	copy(cells, b.cells)
	return &Board{rules: b.rules, cells: cells, lines: b.lines}
}

// CopyFrom overwrites b with the cells of src, which must share its rules.
func (b *Board) CopyFrom(src *Board) {
	if b.rules != src.rules {
		panic("copying between boards with different rules")
	}
	copy(b.cells, src.cells)
}

// Moves yields the empty cells in ascending order.
func (b *Board) Moves() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, c := range b.cells {
			if c == Empty && !yield(i) {
				return
			}
		}
	}
}

// LegalMoves returns the empty cells in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, len(b.cells))
	for move := range b.Moves() {
		moves = append(moves, move)
	}
	return moves
}

func (b *Board) EmptyCount() int {
	n := 0
	for _, c := range b.cells {
		if c == Empty {
			n++
		}
	}
	return n
}

// Turn returns the mark to move next assuming X moved first.
func (b *Board) Turn() Mark {
	xs, os := 0, 0
	for _, c := range b.cells {
		switch c {
		case X:
			xs++
		case O:
			os++
		}
	}
	if xs > os {
		return O
	}
	return X
}

// Evaluate classifies the board.
func (b *Board) Evaluate() Result {
	for _, line := range b.lines {
		first := b.cells[line[0]]
		if first == Empty {
			continue
		}
		complete := true
		for _, i := range line[1:] {
			if b.cells[i] != first {
				complete = false
				break
			}
		}
		if complete {
			return Result{Status: Won, Winner: first}
		}
	}
	for _, c := range b.cells {
		if c == Empty {
			return Result{Status: Ongoing}
		}
	}
	return Result{Status: Draw}
}

func (b *Board) String() string {
	var sb strings.Builder
	for i, c := range b.cells {
		if c == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(c.String())
		}
		if (i+1)%b.Width() == 0 && i+1 < len(b.cells) {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
