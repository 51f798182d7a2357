package ptgeom

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// Pt is a point or vector with an arbitrary, fixed number of components.
// Most of the kernel works on 2D and 3D points.
//
// Methods that combine two points truncate the result to the shorter of the
// two. Unless documented otherwise, methods return fresh points and leave
// their receivers untouched.
type Pt []float64

// P returns the point with the given components.
func P(v ...float64) Pt {
	return Pt(v)
}

// X returns the first component, or 0 if the point has none.
func (p Pt) X() float64 { return p.at(0) }

// Y returns the second component, or 0 if the point has fewer than two.
func (p Pt) Y() float64 { return p.at(1) }

// Z returns the third component, or 0 if the point has fewer than three.
func (p Pt) Z() float64 { return p.at(2) }

func (p Pt) at(i int) float64 {
	if i < len(p) {
		return p[i]
	}
	return 0
}

func (p Pt) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Clone returns a copy of p that doesn't share storage with it.
func (p Pt) Clone() Pt {
	if p == nil {
		return nil
	}
	return append(Pt(nil), p...)
}

// Fill sets every component of p to v, in place, and returns p.
func (p Pt) Fill(v float64) Pt {
	for i := range p {
		p[i] = v
	}
	return p
}

// To copies the components of o into p, in place, and returns p. Only the
// components both points have are copied.
func (p Pt) To(o Pt) Pt {
	copy(p, o)
	return p
}

func shorter(p, o Pt) int {
	return min(len(p), len(o))
}

// Add returns p+o.
func (p Pt) Add(o Pt) Pt {
	n := shorter(p, o)
	return floats.AddTo(make(Pt, n), p[:n], o[:n])
}

// Sub returns p−o.
func (p Pt) Sub(o Pt) Pt {
	n := shorter(p, o)
	return floats.SubTo(make(Pt, n), p[:n], o[:n])
}

// Mul returns p scaled by f.
func (p Pt) Mul(f float64) Pt {
	return floats.ScaleTo(make(Pt, len(p)), f, p)
}

// Dot returns the dot product of p and o.
func (p Pt) Dot(o Pt) float64 {
	n := shorter(p, o)
	return floats.Dot(p[:n], o[:n])
}

// Magnitude returns the euclidean length of p.
func (p Pt) Magnitude() float64 {
	return floats.Norm(p, 2)
}

// Cross returns the 3D cross product of p and o. Points with fewer than three
// components are lifted into 3D with the missing components set to 0, so the
// cross product of two 2D points is ⟨0, 0, p×o⟩.
func (p Pt) Cross(o Pt) Pt {
	a := r3.Vec{X: p.X(), Y: p.Y(), Z: p.Z()}
	b := r3.Vec{X: o.X(), Y: o.Y(), Z: o.Z()}
	c := r3.Cross(a, b)
	return Pt{c.X, c.Y, c.Z}
}

// Project returns the vector projection of p onto o.
//
// This produces a NaN vector if o has zero magnitude.
func (p Pt) Project(o Pt) Pt {
	return o.Mul(p.Dot(o) / o.Dot(o))
}

// Equal reports whether p and o have the same length and components.
func (p Pt) Equal(o Pt) bool {
	return floats.Equal(p, o)
}

// IsZero reports whether all components of p are zero.
func (p Pt) IsZero() bool {
	for _, v := range p {
		if v != 0 {
			return false
		}
	}
	return true
}

// Take returns the two components named by axis as a new 2D point.
func (p Pt) Take(axis AxisPair) Pt {
	i, j := axis.Indices()
	return Pt{p.at(i), p.at(j)}
}

// Group is an ordered sequence of points, such as a polyline, the boundary of
// a polygon, or a point cloud.
type Group []Pt

// Clone returns a deep copy of g.
func (g Group) Clone() Group {
	if g == nil {
		return nil
	}
	out := make(Group, len(g))
	for i, p := range g {
		out[i] = p.Clone()
	}
	return out
}

func (g Group) String() string {
	parts := make([]string, len(g))
	for i, p := range g {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// AxisPair names the two components a 2D operation acts on.
type AxisPair uint8

const (
	// AxisXY is the zero value and the default for 2D operations.
	AxisXY AxisPair = iota
	AxisYZ
	AxisXZ
)

// Indices returns the component indices of the axis pair.
func (axis AxisPair) Indices() (int, int) {
	switch axis {
	case AxisXY:
		return 0, 1
	case AxisYZ:
		return 1, 2
	case AxisXZ:
		return 0, 2
	default:
		panic(fmt.Sprintf("invalid axis pair %d", axis))
	}
}

func (axis AxisPair) String() string {
	switch axis {
	case AxisXY:
		return "xy"
	case AxisYZ:
		return "yz"
	case AxisXZ:
		return "xz"
	default:
		return fmt.Sprintf("AxisPair(%d)", uint8(axis))
	}
}
