package ptgeom

import (
	"math"
)

// Line is defined by two points. Depending on the operation it is either the
// bounded segment between them or the infinite line through them. Operations
// ending in 2D only look at the first two components.
type Line struct {
	P0 Pt
	P1 Pt
}

// LineFromAngle returns the segment of the given length starting at anchor
// and heading in the direction of angle, in radians.
func LineFromAngle(anchor Pt, angle, length float64) Line {
	sin, cos := math.Sincos(angle)
	end := anchor.Clone()
	end = append(end, make(Pt, max(0, 2-len(end)))...)
	end[0] += cos * length
	end[1] += sin * length
	return Line{P0: anchor.Clone(), P1: end}
}

// Magnitude returns the length of the segment.
func (l Line) Magnitude() float64 {
	return l.P1.Sub(l.P0).Magnitude()
}

// Eval returns the point at t along the segment, with t = 0 at P0 and t = 1 at
// P1.
func (l Line) Eval(t float64) Pt {
	return Interpolate(l.P0, l.P1, t)
}

// Slope returns the slope of the line through p1 and p2. It returns false if
// the line is vertical.
func Slope(p1, p2 Pt) (float64, bool) {
	dx := p2.X() - p1.X()
	if dx == 0 {
		return 0, false
	}
	return (p2.Y() - p1.Y()) / dx, true
}

// SlopeForm describes a non-vertical line as y = Slope*x + YIntercept.
type SlopeForm struct {
	Slope      float64
	YIntercept float64
	// XIntercept is absent for horizontal lines.
	XIntercept Option[float64]
}

// Intercept returns the slope form of the line through p1 and p2. It returns
// false if the line is vertical.
func Intercept(p1, p2 Pt) (SlopeForm, bool) {
	m, ok := Slope(p1, p2)
	if !ok {
		return SlopeForm{}, false
	}
	c := p1.Y() - m*p1.X()
	sf := SlopeForm{Slope: m, YIntercept: c}
	if m != 0 {
		sf.XIntercept = Some(-c / m)
	}
	return sf, true
}

// Collinear reports whether p1, p2 and p3 lie on one line. The test is exact;
// callers working with computed coordinates should round them first.
func Collinear(p1, p2, p3 Pt) bool {
	return p2.Sub(p1).Cross(p1.Sub(p3)).IsZero()
}

// ProjectionFromPt returns the vector from pt to the closest point on the
// infinite line l. It returns false if l has zero length.
func (l Line) ProjectionFromPt(pt Pt) (Pt, bool) {
	if l.P0.Equal(l.P1) {
		return nil, false
	}
	a := l.P0.Sub(l.P1)
	b := l.P1.Sub(pt)
	return b.Sub(b.Project(a)), true
}

// PerpendicularFromPt returns the foot of the perpendicular dropped from pt
// onto the infinite line l. It returns false if l has zero length.
func (l Line) PerpendicularFromPt(pt Pt) (Pt, bool) {
	proj, ok := l.ProjectionFromPt(pt)
	if !ok {
		return nil, false
	}
	return proj.Add(pt), true
}

// DistanceFromPt returns the distance between pt and the infinite line l. It
// returns false if l has zero length.
func (l Line) DistanceFromPt(pt Pt) (float64, bool) {
	proj, ok := l.ProjectionFromPt(pt)
	if !ok {
		return 0, false
	}
	return proj.Magnitude(), true
}

// IntersectPath2D returns the point where the infinite lines a and b cross.
//
// It returns false for parallel lines. Coincident non-vertical lines report
// a.P0 as their intersection. Two vertical lines never intersect, even if
// they coincide.
func IntersectPath2D(a, b Line) (Pt, bool) {
	fa, okA := Intercept(a.P0, a.P1)
	fb, okB := Intercept(b.P0, b.P1)
	pa, pb := a.P0, b.P0

	switch {
	case !okA && !okB:
		return nil, false
	case !okA:
		return Pt{pa.X(), fb.Slope*(pa.X()-pb.X()) + pb.Y()}, true
	case !okB:
		return Pt{pb.X(), fa.Slope*(pb.X()-pa.X()) + pa.Y()}, true
	case fb.Slope == 0 && fa.Slope != 0:
		// A horizontal line pins y exactly.
		y := pb.Y()
		return Pt{pa.X() + (y-pa.Y())/fa.Slope, y}, true
	case fa.Slope == 0 && fb.Slope != 0:
		y := pa.Y()
		return Pt{pb.X() + (y-pb.Y())/fb.Slope, y}, true
	case fa.Slope != fb.Slope:
		// Solve in slope order so that swapping a and b gives the same point.
		if fa.Slope < fb.Slope {
			fa, fb = fb, fa
			pa, pb = pb, pa
		}
		px := (fa.Slope*pa.X() - fb.Slope*pb.X() + pb.Y() - pa.Y()) / (fa.Slope - fb.Slope)
		py := fa.Slope*(px-pa.X()) + pa.Y()
		return Pt{px, py}, true
	case fa.YIntercept == fb.YIntercept:
		return Pt{pa.X(), pa.Y()}, true
	default:
		return nil, false
	}
}

// IntersectLine2D returns the intersection of the segments a and b. The
// infinite lines' intersection is accepted if it lies within the bounding
// boxes of both segments.
func IntersectLine2D(a, b Line) (Pt, bool) {
	pt, ok := IntersectPath2D(a, b)
	if !ok || !WithinBound(pt, a.P0, a.P1) || !WithinBound(pt, b.P0, b.P1) {
		return nil, false
	}
	return pt, true
}

// IntersectLineWithPath2D returns the intersection of the segment l with the
// infinite line path.
func IntersectLineWithPath2D(l, path Line) (Pt, bool) {
	pt, ok := IntersectPath2D(l, path)
	if !ok || !WithinBound(pt, l.P0, l.P1) {
		return nil, false
	}
	return pt, true
}

// IntersectGrid2D returns where the horizontal and the vertical grid line
// through gridPt cross the vertical and horizontal lines through pt, in that
// order.
func IntersectGrid2D(pt, gridPt Pt) Group {
	return Group{
		{pt.X(), gridPt.Y()},
		{gridPt.X(), pt.Y()},
	}
}

// IntersectRect2D returns the intersections of the segment l with the sides
// of rect, in the order of [RectSides].
func IntersectRect2D(l Line, rect Group) Group {
	var out Group
	for _, side := range RectSides(rect) {
		if pt, ok := IntersectLine2D(l, side); ok {
			out = append(out, pt)
		}
	}
	return out
}

// Subpoints returns n evenly spaced points strictly between the endpoints of
// l, at t = i/(n+1) for i = 1..n.
func Subpoints(l Line, n int) Group {
	out := make(Group, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		out = append(out, l.Eval(float64(i)/float64(n+1)))
	}
	return out
}
