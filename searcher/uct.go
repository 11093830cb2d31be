package searcher

import (
	"ttt/fixed"
)

type uct struct {
	c    fixed.Fixed
	logN fixed.Fixed
}

func newUCT(c fixed.Fixed, N uint32) uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return uct{c: c, logN: fixed.Log(fixed.FromInt(int(N)))}
}

// evaluate returns q/n + c*sqrt(ln(N)/n). Unvisited children score the
// maximum value so that every child is tried once before any exploitation.
func (u uct) evaluate(q fixed.Fixed, n uint32) fixed.Fixed {
	if n == 0 {
		return fixed.Max
	}
	visits := fixed.FromInt(int(n))
	return fixed.Div(q, visits) + fixed.Mul(u.c, fixed.Sqrt(fixed.Div(u.logN, visits)))
}
