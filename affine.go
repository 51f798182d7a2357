package ptgeom

import (
	"math"
)

// Affine describes a 2D affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
//
// An Affine only ever sees two components of a point. Which two is decided by
// the [AxisPair] it is applied on.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Translate creates an affine transform representing translation by (x, y).
func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// ScaleAbout creates an affine transform scaling by (x, y) about center.
func ScaleAbout(x, y float64, center Pt) Affine {
	cx, cy := center.X(), center.Y()
	return Translate(-cx, -cy).ThenScale(x, y).ThenTranslate(cx, cy)
}

// Rotate creates an affine transform representing rotation.
//
// A positive angle rotates the positive X direction into positive Y. Thus,
// in a Y-down coordinate system it is a clockwise rotation, and in Y-up it
// is anti-clockwise.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about center. Only the first two components of center are used.
func RotateAbout(th float64, center Pt) Affine {
	cx, cy := center.X(), center.Y()
	return Translate(-cx, -cy).ThenRotate(th).ThenTranslate(cx, cy)
}

// Skew creates an affine transformation representing a skew.
//
// The x and y parameters are skew factors for the horizontal and vertical
// directions, respectively: x' = x + sx*y and y' = sy*x + y.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// SkewAbout creates a skew by (x, y) that leaves center in place.
func SkewAbout(x, y float64, center Pt) Affine {
	cx, cy := center.X(), center.Y()
	return Skew(x, y).PreTranslate(-cx, -cy).ThenTranslate(cx, cy)
}

// Reflect creates an affine transform that represents reflection about the
// infinite line through p0 and p1. Only the first two components of each
// point are used.
//
// This produces NaN coefficients if p0 and p1 coincide.
func Reflect(p0, p1 Pt) Affine {
	dx, dy := p1.X()-p0.X(), p1.Y()-p0.Y()
	l := math.Hypot(dx, dy)
	nx, ny := dy/l, -dx/l

	// Householder reflection, with the post translation folded in.
	x2 := nx * nx
	xy := nx * ny
	y2 := ny * ny
	aff := Affine{
		1.0 - 2.0*x2,
		-2.0 * xy,
		-2.0 * xy,
		1.0 - 2.0*y2,
		p0.X(),
		p0.Y(),
	}
	return aff.PreTranslate(-p0.X(), -p0.Y())
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// PreTranslate creates a translation of (x, y) followed by aff.
//
// Equivalent to "aff * Translate(x, y)"
func (aff Affine) PreTranslate(x, y float64) Affine {
	return aff.Mul(Translate(x, y))
}

// ThenTranslate creates aff followed by a translation of (x, y).
//
// Equivalent to "Translate(x, y) * aff"
func (aff Affine) ThenTranslate(x, y float64) Affine {
	aff.N4 += x
	aff.N5 += y
	return aff
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}

// applyTo transforms the components of p named by axis, in place. Components
// p doesn't have are read as 0 and not written.
func (aff Affine) applyTo(p Pt, axis AxisPair) {
	i, j := axis.Indices()
	x, y := p.at(i), p.at(j)
	if i < len(p) {
		p[i] = aff.N0*x + aff.N2*y + aff.N4
	}
	if j < len(p) {
		p[j] = aff.N1*x + aff.N3*y + aff.N5
	}
}

// Transform returns a copy of p with the components named by axis
// transformed by aff. All other components are copied unchanged.
func (p Pt) Transform(aff Affine, axis AxisPair) Pt {
	out := p.Clone()
	aff.applyTo(out, axis)
	return out
}
