// Package fixed implements unsigned fixed-point arithmetic used by the
// search engine's scoring formula.
//
// A Fixed holds a real number scaled by 2^ScaleBits, so One represents 1.0.
package fixed

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

const ScaleBits = 16

type Fixed uint64

const (
	One  Fixed = 1 << ScaleBits
	Half Fixed = One >> 1
	Zero Fixed = 0
	Max  Fixed = math.MaxUint64

	// Sqrt2 is the default UCT exploration constant.
	Sqrt2 Fixed = 92682
	// Ln2 converts binary logarithms to natural ones.
	Ln2 Fixed = 45426
)

// FromInt scales a non-negative integer into the fixed-point domain.
func FromInt(n int) Fixed {
	if n < 0 {
		panic(fmt.Sprintf("fixed: negative integer %d", n))
	}
	return Fixed(n) << ScaleBits
}

// FromFloat converts f to the nearest representable value.
func FromFloat(f float64) Fixed {
	if f < 0 || math.IsNaN(f) {
		panic(fmt.Sprintf("fixed: cannot represent %v", f))
	}
	return Fixed(math.Round(f * float64(One)))
}

func (x Fixed) Float64() float64 {
	return float64(x) / float64(One)
}

func (x Fixed) String() string {
	return strconv.FormatFloat(x.Float64(), 'f', 4, 64)
}

// Mul returns the rounded product a*b. Half a unit is added before the final
// shift so that results round to nearest instead of truncating.
func Mul(a, b Fixed) Fixed {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	lo, carry := bits.Add64(lo, uint64(Half), 0)
	hi += carry
	if hi>>ScaleBits != 0 {
		panic(fmt.Sprintf("fixed: %v * %v overflows", a, b))
	}
	return Fixed(hi<<(64-ScaleBits) | lo>>ScaleBits)
}

// Div returns the truncated quotient a/b. A zero divisor is a contract
// violation and panics.
func Div(a, b Fixed) Fixed {
	if b == 0 {
		panic("fixed: division by zero")
	}
	hi := uint64(a) >> (64 - ScaleBits)
	lo := uint64(a) << ScaleBits
	if hi >= uint64(b) {
		panic(fmt.Sprintf("fixed: %v / %v overflows", a, b))
	}
	quo, _ := bits.Div64(hi, lo, uint64(b))
	return Fixed(quo)
}

// Sqrt returns floor(sqrt(x)) in the fixed-point domain using Babylonian
// iteration. The first guess never undershoots the root, so the iterates
// decrease strictly until they settle and the loop always terminates.
func Sqrt(x Fixed) Fixed {
	if x == 0 {
		return 0
	}
	r := max(x, One)
	for {
		d := Div(x, r)
		next := r/2 + d/2 + (r & d & 1)
		if next >= r {
			return r
		}
		r = next
	}
}

// Log2 returns the binary logarithm of x. It is defined for x >= One only.
func Log2(x Fixed) Fixed {
	if x < One {
		panic(fmt.Sprintf("fixed: log of %v is undefined here", x))
	}
	n := bits.Len64(uint64(x)) - 1 - ScaleBits
	y := x >> n
	result := Fixed(n) << ScaleBits
	for b := Half; b > 0; b >>= 1 {
		y = Mul(y, y)
		if y >= 2*One {
			y >>= 1
			result += b
		}
	}
	return result
}

// Log returns the natural logarithm of x >= One.
func Log(x Fixed) Fixed {
	return Mul(Log2(x), Ln2)
}
