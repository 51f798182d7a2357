package ptgeom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Lerp linearly interpolates between a and b, returning (1-t)*a + t*b.
// Values of t outside [0, 1] extrapolate.
func Lerp[T constraints.Float](a, b, t T) T {
	return (1-t)*a + t*b
}

// BoundValue wraps val into the half-open range [min, max) with a period of
// |max−min|. A value exactly at max wraps to min, and values below min are
// moved forward by whole periods.
//
// It returns an error wrapping [ErrDomain] if min == max.
func BoundValue(val, min, max float64) (float64, error) {
	if min == max {
		return 0, fmt.Errorf("bounding %g to [%g, %g): %w", val, min, max, ErrDomain)
	}
	if min > max {
		min, max = max, min
	}
	return wrap(val, min, max-min), nil
}

// wrap maps val into [lo, lo+period). period must be positive.
func wrap(val, lo, period float64) float64 {
	a := math.Mod(val-lo, period)
	if a < 0 {
		a += period
	}
	// a+period can round up to period for tiny negative a.
	if a >= period {
		a -= period
	}
	return lo + a
}

// Within reports whether p lies in the inclusive range spanned by a and b, in
// either order.
func Within[T constraints.Ordered](p, a, b T) bool {
	return p >= min(a, b) && p <= max(a, b)
}

// Clamp limits v to the inclusive range spanned by a and b, in either order.
func Clamp[T constraints.Ordered](v, a, b T) T {
	return min(max(v, min(a, b)), max(a, b))
}

// Equals reports whether a and b differ by no more than threshold.
func Equals(a, b, threshold float64) bool {
	return math.Abs(a-b) <= threshold
}

// RandomRange returns a number uniformly sampled from [min(a, b), max(a, b)],
// using the package's default random source. Pass b = 0 to sample between 0
// and a.
func RandomRange(a, b float64) float64 {
	return defaultRand.Range(a, b)
}

// NormalizeValue maps n linearly so that min(a, b) maps to 0 and max(a, b)
// maps to 1.
//
// This produces NaN or an infinity if a == b.
func NormalizeValue(n, a, b float64) float64 {
	lo, hi := min(a, b), max(a, b)
	return (n - lo) / (hi - lo)
}

// MapToRange maps n from the range spanned by currA and currB to the range
// spanned by targetA and targetB. Both ranges are treated as unordered: the
// smaller bound of one maps to the smaller bound of the other.
//
// It returns an error wrapping [ErrDomain] if currA == currB.
func MapToRange(n, currA, currB, targetA, targetB float64) (float64, error) {
	if currA == currB {
		return 0, fmt.Errorf("mapping from [%g, %g]: %w", currA, currB, ErrDomain)
	}
	lo, hi := min(targetA, targetB), max(targetA, targetB)
	return NormalizeValue(n, currA, currB)*(hi-lo) + lo, nil
}

// Sum returns the componentwise sum of the points in g. The result has as
// many components as the first point; components missing from shorter points
// count as 0, and extra components of longer points are ignored.
//
// It returns an error wrapping [ErrEmptyInput] if g is empty.
func Sum(g Group) (Pt, error) {
	if len(g) == 0 {
		return nil, fmt.Errorf("sum: %w", ErrEmptyInput)
	}
	c := g[0].Clone()
	for _, p := range g[1:] {
		n := shorter(c, p)
		floats.Add(c[:n], p[:n])
	}
	return c, nil
}

// Average returns the componentwise mean of the points in g, following the
// same dimensionality rules as [Sum].
//
// It returns an error wrapping [ErrEmptyInput] if g is empty.
func Average(g Group) (Pt, error) {
	c, err := Sum(g)
	if err != nil {
		return nil, fmt.Errorf("average: %w", err)
	}
	floats.Scale(1/float64(len(g)), c)
	return c, nil
}
