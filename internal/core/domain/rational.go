package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rational is an exact fraction stored in lowest terms.
// The sign is carried by the numerator and the denominator is always
// positive; zero is stored as 0/1. The zero value of Rational is 0.
type Rational struct {
	num int64
	den int64 // 0 only in the zero value, read as 1
}

// Zero is the rational value 0.
var Zero = Rational{num: 0, den: 1}

// One is the rational value 1.
var One = Rational{num: 1, den: 1}

// NewInt returns the whole number n.
func NewInt(n int64) Rational {
	return Rational{num: n, den: 1}
}

// NewFraction returns n/d reduced to lowest terms.
func NewFraction(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, fmt.Errorf("%w: %d/0", ErrDivisionByZero, n)
	}
	return reduce(n, d)
}

// NewMixed returns the mixed number "w n/d" as a reduced fraction.
// The whole and fractional parts share a single sign: the result is
// negative iff w*n < 0, so "-2 1/3" is -7/3 while "0 -1/3" is 1/3.
func NewMixed(w, n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, fmt.Errorf("%w: %d %d/0", ErrDivisionByZero, w, n)
	}
	improper, err := improperNumerator(w, n, d)
	if err != nil {
		return Rational{}, err
	}
	return reduce(improper, d)
}

// improperNumerator computes |w|*|d| + |n| in uint64 so that a negative
// result may reach math.MinInt64.
func improperNumerator(w, n, d int64) (int64, error) {
	uw, un, ud := absU(w), absU(n), absU(d)
	if uw != 0 && ud > math.MaxUint64/uw {
		return 0, ErrOverflow
	}
	magnitude := uw * ud
	if magnitude > math.MaxUint64-un {
		return 0, ErrOverflow
	}
	magnitude += un

	if (w < 0 && n > 0) || (w > 0 && n < 0) {
		if magnitude > 1<<63 {
			return 0, ErrOverflow
		}
		return int64(-magnitude), nil
	}
	if magnitude > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(magnitude), nil
}

// reduce divides n and d by their greatest common divisor and moves the
// sign onto the numerator. d must be non-zero.
func reduce(n, d int64) (Rational, error) {
	if n == 0 {
		return Zero, nil
	}
	negative := (n < 0) != (d < 0)
	un, ud := absU(n), absU(d)
	g := gcd(un, ud)
	un, ud = un/g, ud/g
	if ud > math.MaxInt64 {
		return Rational{}, ErrOverflow
	}
	if negative {
		if un > 1<<63 {
			return Rational{}, ErrOverflow
		}
		return Rational{num: int64(-un), den: int64(ud)}, nil
	}
	if un > math.MaxInt64 {
		return Rational{}, ErrOverflow
	}
	return Rational{num: int64(un), den: int64(ud)}, nil
}

// gcd is Euclid's algorithm; gcd(x, 0) == x.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func absU(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

func add64(a, b int64) (int64, error) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, ErrOverflow
	}
	return c, nil
}

func mul64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	c := a * b
	if c/b != a {
		return 0, ErrOverflow
	}
	return c, nil
}

// Numerator returns the signed numerator.
func (r Rational) Numerator() int64 {
	return r.num
}

// Denominator returns the positive denominator.
func (r Rational) Denominator() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// Whole returns the integral part, truncated toward zero.
func (r Rational) Whole() int64 {
	return r.num / r.Denominator()
}

// IsZero reports whether r is 0.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// IsInteger reports whether r has no fractional part.
func (r Rational) IsInteger() bool {
	return r.Denominator() == 1
}

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Equal reports exact equality of the canonical forms.
func (r Rational) Equal(other Rational) bool {
	return r.num == other.num && r.Denominator() == other.Denominator()
}

// Add returns r + other.
func (r Rational) Add(other Rational) (Rational, error) {
	left, err := mul64(r.num, other.Denominator())
	if err != nil {
		return Rational{}, err
	}
	right, err := mul64(other.num, r.Denominator())
	if err != nil {
		return Rational{}, err
	}
	num, err := add64(left, right)
	if err != nil {
		return Rational{}, err
	}
	den, err := mul64(r.Denominator(), other.Denominator())
	if err != nil {
		return Rational{}, err
	}
	return reduce(num, den)
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) (Rational, error) {
	neg, err := other.Neg()
	if err != nil {
		return Rational{}, err
	}
	return r.Add(neg)
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) (Rational, error) {
	num, err := mul64(r.num, other.num)
	if err != nil {
		return Rational{}, err
	}
	den, err := mul64(r.Denominator(), other.Denominator())
	if err != nil {
		return Rational{}, err
	}
	return reduce(num, den)
}

// Div returns r / other. Dividing by zero fails with ErrDivisionByZero.
func (r Rational) Div(other Rational) (Rational, error) {
	if other.IsZero() {
		return Rational{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, r)
	}
	num, err := mul64(r.num, other.Denominator())
	if err != nil {
		return Rational{}, err
	}
	den, err := mul64(r.Denominator(), other.num)
	if err != nil {
		return Rational{}, err
	}
	return reduce(num, den)
}

// Neg returns -r.
func (r Rational) Neg() (Rational, error) {
	if r.num == math.MinInt64 {
		return Rational{}, ErrOverflow
	}
	return Rational{num: -r.num, den: r.Denominator()}, nil
}

// Pow raises numerator and denominator to the integer power k.
// A negative k inverts first; 0 to a negative power fails with ErrDivisionByZero.
func (r Rational) Pow(k int) (Rational, error) {
	base := Rational{num: r.num, den: r.Denominator()}
	if k < 0 {
		inv, err := One.Div(base)
		if err != nil {
			return Rational{}, err
		}
		base, k = inv, -k
	}
	num, den := int64(1), int64(1)
	var err error
	for i := 0; i < k; i++ {
		if num, err = mul64(num, base.num); err != nil {
			return Rational{}, err
		}
		if den, err = mul64(den, base.den); err != nil {
			return Rational{}, err
		}
	}
	return reduce(num, den)
}

// Float64 returns the nearest floating point value.
// It is only used where approximation is acceptable (magnitudes, angles).
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Denominator())
}

// String formats r as "n", "n/d" or "w r/d" (mixed, whole truncated toward zero).
func (r Rational) String() string {
	den := r.Denominator()
	if den == 1 {
		return strconv.FormatInt(r.num, 10)
	}
	whole := r.num / den
	if whole == 0 {
		return fmt.Sprintf("%d/%d", r.num, den)
	}
	return fmt.Sprintf("%d %d/%d", whole, absU(r.num%den), den)
}

// ParseRational parses a whole number ("-3"), an improper fraction ("7 / 2")
// or a mixed number ("-2 1/3"). Whitespace around "/" is insignificant.
func ParseRational(text string) (Rational, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Rational{}, fmt.Errorf("%w: empty number", ErrFormat)
	}

	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		n, err := parseInteger(s)
		if err != nil {
			return Rational{}, err
		}
		return NewInt(n), nil
	}
	if strings.Count(s, "/") > 1 {
		return Rational{}, fmt.Errorf("%w: %q has more than one '/'", ErrFormat, s)
	}

	den, err := parseInteger(strings.TrimSpace(s[slash+1:]))
	if err != nil {
		return Rational{}, err
	}

	fields := strings.Fields(s[:slash])
	switch len(fields) {
	case 1:
		num, err := parseInteger(fields[0])
		if err != nil {
			return Rational{}, err
		}
		return NewFraction(num, den)
	case 2:
		whole, err := parseInteger(fields[0])
		if err != nil {
			return Rational{}, err
		}
		num, err := parseInteger(fields[1])
		if err != nil {
			return Rational{}, err
		}
		return NewMixed(whole, num, den)
	default:
		return Rational{}, fmt.Errorf("%w: %q is not a whole number, fraction or mixed number", ErrFormat, s)
	}
}

// parseInteger accepts -?digit+ and nothing else.
func parseInteger(s string) (int64, error) {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrFormat, s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrFormat, s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, s)
	}
	return n, nil
}
