package game

import "ttt/fixed"

// OutcomeValue maps a finished game to a value from perspective's point of
// view: a win is fixed.One, a loss zero and a draw half way.
func OutcomeValue(r Result, perspective Mark) fixed.Fixed {
	switch r.Status {
	case Won:
		if r.Winner == perspective {
			return fixed.One
		}
		return fixed.Zero
	case Draw:
		return fixed.Half
	}
	panic("outcome value of an ongoing game")
}

// EvaluateLines scores a position between -1 and 1 from m's perspective by
// counting the lines each player can still complete, weighted by how many
// marks they already hold on them.
func EvaluateLines(b *Board, m Mark) float64 {
	var own, opp, total float64
	for _, line := range b.lines {
		mine, theirs := 0, 0
		for _, i := range line {
			switch b.cells[i] {
			case m:
				mine++
			case Empty:
			default:
				theirs++
			}
		}
		weight := float64(len(line))
		total += weight * weight
		if theirs == 0 && mine > 0 {
			own += float64(mine * mine)
		}
		if mine == 0 && theirs > 0 {
			opp += float64(theirs * theirs)
		}
	}
	if total == 0 {
		return 0
	}
	return (own - opp) / total
}
