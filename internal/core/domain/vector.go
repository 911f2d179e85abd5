package domain

import (
	"fmt"
	"math"
	"strings"
)

// MaxDimension is the largest supported vector dimension.
const MaxDimension = 3

// Vector is a 1, 2 or 3 dimensional tuple of Rationals.
// Only the first Dimension() components exist; the remaining slots are
// never observable.
type Vector struct {
	comps [MaxDimension]Rational
	dim   int
}

// Vec1 returns the 1-dimensional vector [x].
func Vec1(x Rational) Vector {
	return Vector{comps: [MaxDimension]Rational{x}, dim: 1}
}

// Vec2 returns the 2-dimensional vector [x, y].
func Vec2(x, y Rational) Vector {
	return Vector{comps: [MaxDimension]Rational{x, y}, dim: 2}
}

// Vec3 returns the 3-dimensional vector [x, y, z].
func Vec3(x, y, z Rational) Vector {
	return Vector{comps: [MaxDimension]Rational{x, y, z}, dim: 3}
}

// NewVector builds a vector whose dimension is the number of components.
func NewVector(comps ...Rational) (Vector, error) {
	if len(comps) < 1 || len(comps) > MaxDimension {
		return Vector{}, fmt.Errorf("%w: vectors have 1 to %d components, got %d",
			ErrDimensionMismatch, MaxDimension, len(comps))
	}
	v := Vector{dim: len(comps)}
	copy(v.comps[:], comps)
	return v, nil
}

// Dimension returns the number of components (1, 2 or 3).
func (v Vector) Dimension() int {
	return v.dim
}

// Components returns a copy of the components.
func (v Vector) Components() []Rational {
	out := make([]Rational, v.dim)
	copy(out, v.comps[:v.dim])
	return out
}

// At returns component i. It panics if i is outside [0, Dimension()).
func (v Vector) At(i int) Rational {
	if i < 0 || i >= v.dim {
		panic(fmt.Sprintf("domain: component %d out of range for %dD vector", i, v.dim))
	}
	return v.comps[i]
}

// X returns the first component, which every vector has.
func (v Vector) X() Rational {
	return v.comps[0]
}

// mapPair applies fn to corresponding components of v and other.
func (v Vector) mapPair(other Vector, op string, fn func(a, b Rational) (Rational, error)) (Vector, error) {
	if err := v.sameDimension(other, op); err != nil {
		return Vector{}, err
	}
	out := Vector{dim: v.dim}
	for i := 0; i < v.dim; i++ {
		c, err := fn(v.comps[i], other.comps[i])
		if err != nil {
			return Vector{}, err
		}
		out.comps[i] = c
	}
	return out, nil
}

func (v Vector) sameDimension(other Vector, op string) error {
	if v.dim != other.dim {
		return fmt.Errorf("%w: cannot %s %dD and %dD vectors", ErrDimensionMismatch, op, v.dim, other.dim)
	}
	return nil
}

// Add returns v + other.
func (v Vector) Add(other Vector) (Vector, error) {
	return v.mapPair(other, "add", Rational.Add)
}

// Sub returns v - other.
func (v Vector) Sub(other Vector) (Vector, error) {
	return v.mapPair(other, "subtract", Rational.Sub)
}

// Scale multiplies every component by s.
func (v Vector) Scale(s Rational) (Vector, error) {
	out := Vector{dim: v.dim}
	for i := 0; i < v.dim; i++ {
		c, err := v.comps[i].Mul(s)
		if err != nil {
			return Vector{}, err
		}
		out.comps[i] = c
	}
	return out, nil
}

// Dot returns the dot product wrapped in a 1-dimensional vector.
func (v Vector) Dot(other Vector) (Vector, error) {
	if err := v.sameDimension(other, "dot"); err != nil {
		return Vector{}, err
	}
	sum := Zero
	for i := 0; i < v.dim; i++ {
		p, err := v.comps[i].Mul(other.comps[i])
		if err != nil {
			return Vector{}, err
		}
		if sum, err = sum.Add(p); err != nil {
			return Vector{}, err
		}
	}
	return Vec1(sum), nil
}

// Cross returns the cross product of two 3-dimensional vectors.
// For two 1-dimensional vectors it is their product, as a 1-dimensional
// vector; 2-dimensional operands fail with ErrDimensionMismatch.
func (v Vector) Cross(other Vector) (Vector, error) {
	if err := v.sameDimension(other, "cross"); err != nil {
		return Vector{}, err
	}
	switch v.dim {
	case 1:
		return v.Dot(other)
	case 3:
		x, err := det(v.comps[1], other.comps[2], v.comps[2], other.comps[1])
		if err != nil {
			return Vector{}, err
		}
		y, err := det(v.comps[2], other.comps[0], v.comps[0], other.comps[2])
		if err != nil {
			return Vector{}, err
		}
		z, err := det(v.comps[0], other.comps[1], v.comps[1], other.comps[0])
		if err != nil {
			return Vector{}, err
		}
		return Vec3(x, y, z), nil
	default:
		return Vector{}, fmt.Errorf("%w: cross product requires 3 dimensions, got %dD", ErrDimensionMismatch, v.dim)
	}
}

// det returns a*b - c*d.
func det(a, b, c, d Rational) (Rational, error) {
	ab, err := a.Mul(b)
	if err != nil {
		return Rational{}, err
	}
	cd, err := c.Mul(d)
	if err != nil {
		return Rational{}, err
	}
	return ab.Sub(cd)
}

// Equal reports whether all components are exactly equal.
// Vectors of different dimension are not comparable.
func (v Vector) Equal(other Vector) (bool, error) {
	if err := v.sameDimension(other, "compare"); err != nil {
		return false, err
	}
	for i := 0; i < v.dim; i++ {
		if !v.comps[i].Equal(other.comps[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Magnitude returns the Euclidean length.
func (v Vector) Magnitude() float64 {
	var sum float64
	for i := 0; i < v.dim; i++ {
		f := v.comps[i].Float64()
		sum += f * f
	}
	return math.Sqrt(sum)
}

// Angle returns the angle between a and b in whole degrees.
// A zero-length operand fails with ErrUndefinedAngle.
func Angle(a, b Vector) (int, error) {
	dot, err := a.Dot(b)
	if err != nil {
		return 0, err
	}
	lengths := a.Magnitude() * b.Magnitude()
	if lengths == 0 {
		return 0, ErrUndefinedAngle
	}
	cos := dot.X().Float64() / lengths
	// Rounding can push parallel vectors just outside acos's domain.
	cos = math.Max(-1, math.Min(1, cos))
	return int(math.Round(math.Acos(cos) * 180 / math.Pi)), nil
}

// String formats v as "[a, b, c]".
func (v Vector) String() string {
	parts := make([]string, v.dim)
	for i := 0; i < v.dim; i++ {
		parts[i] = v.comps[i].String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ParseVector parses "[a]", "[a, b]" or "[a, b, c]" where each slot is a
// Rational literal.
func ParseVector(text string) (Vector, error) {
	s := strings.TrimSpace(text)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return Vector{}, fmt.Errorf("%w: %q is not a bracketed vector", ErrFormat, s)
	}
	inner := s[1 : len(s)-1]
	if strings.ContainsAny(inner, "[]") {
		return Vector{}, fmt.Errorf("%w: nested brackets in %q", ErrFormat, s)
	}

	slots := strings.Split(inner, ",")
	if len(slots) > MaxDimension {
		return Vector{}, fmt.Errorf("%w: %q has more than %d components", ErrFormat, s, MaxDimension)
	}
	comps := make([]Rational, len(slots))
	for i, slot := range slots {
		c, err := ParseRational(slot)
		if err != nil {
			return Vector{}, fmt.Errorf("component %d of %s: %w", i+1, s, err)
		}
		comps[i] = c
	}
	return NewVector(comps...)
}
