package ptgeom

import (
	"fmt"
	"math"
)

// BoundAngle wraps an angle in degrees into [0, 360).
func BoundAngle(deg float64) float64 {
	return wrap(deg, 0, 360)
}

// BoundRadian wraps an angle in radians into [0, 2π).
func BoundRadian(rad float64) float64 {
	return wrap(rad, 0, 2*math.Pi)
}

// ToRadian converts an angle from degrees to radians.
func ToRadian(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegree converts an angle from radians to degrees.
func ToDegree(rad float64) float64 {
	return rad * 180 / math.Pi
}

// BoundingBox returns the group [min, max] of the componentwise extrema of
// the points in g. Both points have as many components as the first point of
// g; shorter points don't contribute to components they lack.
//
// It returns an error wrapping [ErrEmptyInput] if g is empty.
func BoundingBox(g Group) (Group, error) {
	if len(g) == 0 {
		return nil, fmt.Errorf("bounding box: %w", ErrEmptyInput)
	}
	lo := g[0].Clone()
	hi := g[0].Clone()
	for _, p := range g[1:] {
		for i := range shorter(lo, p) {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	return Group{lo, hi}, nil
}

// Centroid returns the average of the points in g. See [Average].
func Centroid(g Group) (Pt, error) {
	return Average(g)
}

// Interpolate returns the point at t along the way from a to b. The result
// has as many components as the shorter of the two.
func Interpolate(a, b Pt, t float64) Pt {
	out := make(Pt, shorter(a, b))
	for i := range out {
		out[i] = Lerp(a[i], b[i], t)
	}
	return out
}

// Perpendicular returns the two vectors perpendicular to p within the plane
// named by axis: (−p[j], p[i]) and (p[j], −p[i]). All other components are
// copied from p.
func Perpendicular(p Pt, axis AxisPair) Group {
	i, j := axis.Indices()
	x, y := p.at(i), p.at(j)
	a, b := p.Clone(), p.Clone()
	set := func(q Pt, k int, v float64) {
		if k < len(q) {
			q[k] = v
		}
	}
	set(a, i, -y)
	set(a, j, x)
	set(b, i, y)
	set(b, j, -x)
	return Group{a, b}
}

// IsPerpendicular reports whether the vectors a and b are perpendicular.
func IsPerpendicular(a, b Pt) bool {
	return a.Dot(b) == 0
}

// WithinBound reports whether pt lies within the box spanned by b1 and b2,
// inclusive, in every component the three points share.
func WithinBound(pt, b1, b2 Pt) bool {
	n := min(len(pt), len(b1), len(b2))
	for i := range n {
		if !Within(pt[i], b1[i], b2[i]) {
			return false
		}
	}
	return true
}

// ScaleFactor is a scale (or, for [Shear2D], an angle) given either
// uniformly or per axis.
type ScaleFactor struct {
	x, y float64
}

// Uniform returns a factor of s on both axes.
func Uniform(s float64) ScaleFactor {
	return ScaleFactor{s, s}
}

// PerAxis returns a factor of x on the first and y on the second axis.
func PerAxis(x, y float64) ScaleFactor {
	return ScaleFactor{x, y}
}

// ScaleFromPt returns the factor given by the first two components of p.
func ScaleFromPt(p Pt) ScaleFactor {
	return ScaleFactor{p.X(), p.Y()}
}

// Vec returns the factors for the first and second axis.
func (s ScaleFactor) Vec() (float64, float64) {
	return s.x, s.y
}

// anchored returns the anchor's coordinates in the plane named by axis.
// A nil anchor is the origin.
func anchored(anchor Pt, axis AxisPair) (Pt, bool) {
	if anchor == nil {
		return nil, false
	}
	return anchor.Take(axis), true
}

func applyAll(g Group, aff Affine, axis AxisPair) {
	for _, p := range g {
		aff.applyTo(p, axis)
	}
}

// Rotate2D rotates every point in g by angle radians about anchor, within
// the plane named by axis. A nil anchor rotates about the origin.
//
// The points of g are modified in place; g is owned by Rotate2D for the
// duration of the call. Use [Rotated2D] to leave g untouched. A single point
// p is rotated in place with Rotate2D(Group{p}, ...).
func Rotate2D(g Group, angle float64, anchor Pt, axis AxisPair) {
	var aff Affine
	if c, ok := anchored(anchor, axis); ok {
		aff = RotateAbout(angle, c)
	} else {
		aff = Rotate(angle)
	}
	applyAll(g, aff, axis)
}

// Scale2D scales every point in g by s about anchor, within the plane named
// by axis. A nil anchor scales about the origin.
//
// The points of g are modified in place. Use [Scaled2D] to leave g
// untouched.
func Scale2D(g Group, s ScaleFactor, anchor Pt, axis AxisPair) {
	x, y := s.Vec()
	var aff Affine
	if c, ok := anchored(anchor, axis); ok {
		aff = ScaleAbout(x, y, c)
	} else {
		aff = Scale(x, y)
	}
	applyAll(g, aff, axis)
}

// Shear2D shears every point in g about anchor, within the plane named by
// axis. The factors of s are angles in radians; the shear factors used are
// their tangents. A nil anchor shears about the origin.
//
// The points of g are modified in place. Use [Sheared2D] to leave g
// untouched.
func Shear2D(g Group, s ScaleFactor, anchor Pt, axis AxisPair) {
	x, y := s.Vec()
	x, y = math.Tan(x), math.Tan(y)
	var aff Affine
	if c, ok := anchored(anchor, axis); ok {
		aff = SkewAbout(x, y, c)
	} else {
		aff = Skew(x, y)
	}
	applyAll(g, aff, axis)
}

// Reflect2D reflects every point in g about the infinite line l, within the
// plane named by axis.
//
// The points of g are modified in place. Use [Reflected2D] to leave g
// untouched.
func Reflect2D(g Group, l Line, axis AxisPair) {
	applyAll(g, Reflect(l.P0.Take(axis), l.P1.Take(axis)), axis)
}

// Rotated2D is like [Rotate2D] but returns transformed copies.
func Rotated2D(g Group, angle float64, anchor Pt, axis AxisPair) Group {
	out := g.Clone()
	Rotate2D(out, angle, anchor, axis)
	return out
}

// Scaled2D is like [Scale2D] but returns transformed copies.
func Scaled2D(g Group, s ScaleFactor, anchor Pt, axis AxisPair) Group {
	out := g.Clone()
	Scale2D(out, s, anchor, axis)
	return out
}

// Sheared2D is like [Shear2D] but returns transformed copies.
func Sheared2D(g Group, s ScaleFactor, anchor Pt, axis AxisPair) Group {
	out := g.Clone()
	Shear2D(out, s, anchor, axis)
	return out
}

// Reflected2D is like [Reflect2D] but returns transformed copies.
func Reflected2D(g Group, l Line, axis AxisPair) Group {
	out := g.Clone()
	Reflect2D(out, l, axis)
	return out
}
