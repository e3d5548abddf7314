package music

import (
	"errors"
	"fmt"
)

// ErrZeroDenominator indicates a Rational was constructed with denominator 0.
var ErrZeroDenominator = errors.New("music: rational denominator is zero")

// Rational is an exact non-negative rational number of beats.
//
// It backs both Note durations and Note positions: species rules are
// stated on an exact beat grid (half- and quarter-note subdivisions,
// half-beat suspension spacing), so floating point is not an option.
//
// The zero value is 0/1. Values are always stored normalized: the
// numerator and denominator are coprime and the denominator is positive.
type Rational struct {
	num int64
	den int64
}

// NewRational returns the normalized rational num/den.
// Returns ErrZeroDenominator when den == 0.
//
// Complexity: O(log min(num,den)) for the gcd reduction.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}
	return makeRational(num, den), nil
}

// MustRational is NewRational that panics on a zero denominator.
// Intended for literals in tests and examples, where the denominator is
// a compile-time constant.
func MustRational(num, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// Whole returns n/1.
func Whole(n int64) Rational {
	return Rational{num: n, den: 1}
}

// makeRational normalizes num/den; den must be non-zero.
func makeRational(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd64(abs64(num), den)
	if g > 1 {
		num /= g
		den /= g
	}
	if den == 0 { // only reachable when num==den==0 pre-normalization
		den = 1
	}
	return Rational{num: num, den: den}
}

// Num returns the normalized numerator (sign-carrying).
func (r Rational) Num() int64 { return r.num }

// Den returns the normalized denominator (always positive; 1 for the zero value).
func (r Rational) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	return makeRational(r.Num()*o.Den()+o.Num()*r.Den(), r.Den()*o.Den())
}

// Sub returns r − o.
func (r Rational) Sub(o Rational) Rational {
	return makeRational(r.Num()*o.Den()-o.Num()*r.Den(), r.Den()*o.Den())
}

// Div returns r / n for a positive integer divisor n.
// Division by a non-positive n panics: it is only ever called with the
// fixed species subdivision factors 2 and 4.
func (r Rational) Div(n int64) Rational {
	if n <= 0 {
		panic("music: Rational.Div requires a positive divisor")
	}
	return makeRational(r.Num(), r.Den()*n)
}

// Cmp compares r and o: −1 if r<o, 0 if r==o, +1 if r>o.
func (r Rational) Cmp(o Rational) int {
	lhs := r.Num() * o.Den()
	rhs := o.Num() * r.Den()
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Equal reports whether r == o. Normalization makes this a field compare.
func (r Rational) Equal(o Rational) bool {
	return r.Num() == o.Num() && r.Den() == o.Den()
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.Num() == 0 }

// Positive reports whether r > 0.
func (r Rational) Positive() bool { return r.Num() > 0 }

// IsInteger reports whether r is a whole number of beats.
// Normalized form makes this a denominator check.
func (r Rational) IsInteger() bool { return r.Den() == 1 }

// Float64 returns the closest float64 to r. For display and scoring only;
// all rule checks stay exact.
func (r Rational) Float64() float64 {
	return float64(r.Num()) / float64(r.Den())
}

// String renders r as "n" for integers and "n/d" otherwise.
func (r Rational) String() string {
	if r.IsInteger() {
		return fmt.Sprintf("%d", r.Num())
	}
	return fmt.Sprintf("%d/%d", r.Num(), r.Den())
}

// gcd64 is the iterative Euclid gcd over non-negative inputs.
func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs64 returns |x|.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
