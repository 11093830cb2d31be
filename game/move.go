package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

var ErrBadNotation = errors.New("invalid coordinate")

// Notation renders a move as column letter and 1-based row, e.g. 4 -> "B2"
// on a 3x3 board.
func Notation(move, width int) string {
	return fmt.Sprintf("%c%d", 'A'+move%width, 1+move/width)
}

// ParseNotation reads coordinates such as "b2" or "C3". Surrounding spaces
// are ignored, letters are case-insensitive.
func ParseNotation(s string, width int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1, fmt.Errorf("%w: empty input", ErrBadNotation)
	}
	r := []rune(s)
	if !unicode.IsLetter(r[0]) {
		return -1, fmt.Errorf("%w: %q has no leading letter", ErrBadNotation, s)
	}
	col := int(unicode.ToLower(r[0]) - 'a')
	if col < 0 || col >= width {
		return -1, fmt.Errorf("%w: column %c exceeds board size", ErrBadNotation, r[0])
	}
	if len(r) == 1 {
		return -1, fmt.Errorf("%w: %q has no row", ErrBadNotation, s)
	}
	row := 0
	for _, c := range r[1:] {
		if !unicode.IsDigit(c) {
			return -1, fmt.Errorf("%w: unexpected %q in %q", ErrBadNotation, c, s)
		}
		row = row*10 + int(c-'0')
		if row > width {
			return -1, fmt.Errorf("%w: row exceeds board size", ErrBadNotation)
		}
	}
	if row < 1 {
		return -1, fmt.Errorf("%w: rows start at 1", ErrBadNotation)
	}
	return (row-1)*width + col, nil
}

// Record is one entry of the move log.
type Record struct {
	Move int
	Mark Mark
}

// MoveLog is the append-only list of moves in play order. It is used for
// reporting only.
type MoveLog struct {
	width   int
	records []Record
}

func NewMoveLog(width int) *MoveLog {
	return &MoveLog{width: width}
}

func (l *MoveLog) Append(move int, m Mark) {
	l.records = append(l.records, Record{Move: move, Mark: m})
}

func (l *MoveLog) Len() int {
	return len(l.records)
}

// Records returns a copy of the log.
func (l *MoveLog) Records() []Record {
	return append([]Record(nil), l.records...)
}

func (l *MoveLog) String() string {
	coords := lo.Map(l.records, func(r Record, _ int) string {
		return Notation(r.Move, l.width)
	})
	return "Moves: " + strings.Join(coords, " -> ")
}
