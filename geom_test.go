package ptgeom

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestBoundAngle(t *testing.T) {
	for _, tc := range [][2]float64{{0, 0}, {360, 0}, {-90, 270}, {725, 5}} {
		if got := BoundAngle(tc[0]); got != tc[1] {
			t.Errorf("BoundAngle(%g) = %g, want %g", tc[0], got, tc[1])
		}
	}
	if got := BoundRadian(-math.Pi / 2); math.Abs(got-3*math.Pi/2) > 1e-12 {
		t.Errorf("got %g, want 3π/2", got)
	}
	if got := BoundRadian(2 * math.Pi); got != 0 {
		t.Errorf("got %g, want 0", got)
	}
}

func TestAngleConversion(t *testing.T) {
	if got := ToRadian(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("got %g, want π", got)
	}
	if got := ToDegree(math.Pi / 2); math.Abs(got-90) > 1e-12 {
		t.Errorf("got %g, want 90", got)
	}
}

func TestBoundingBox(t *testing.T) {
	got, err := BoundingBox(Group{P(0, 5), P(3, 1), P(-2, 7)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, Group{P(-2, 1), P(3, 7)})

	got, err = BoundingBox(Group{P(1, 2, 3)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, Group{P(1, 2, 3), P(1, 2, 3)})

	if _, err := BoundingBox(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got error %v, want ErrEmptyInput", err)
	}
}

func TestCentroid(t *testing.T) {
	got, err := Centroid(Group{P(0, 0), P(4, 0), P(4, 4), P(0, 4)})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, got, P(2, 2))
}

func TestInterpolate(t *testing.T) {
	diff(t, Interpolate(P(0, 0), P(10, 20), 0.5), P(5, 10))
	diff(t, Interpolate(P(0, 0, 8), P(10, 20), 0.25), P(2.5, 5))
	diff(t, Interpolate(P(0, 0), P(10, 20), 2), P(20, 40))
}

func TestPerpendicular(t *testing.T) {
	diff(t, Perpendicular(P(3, 4), AxisXY), Group{P(-4, 3), P(4, -3)})
	diff(t, Perpendicular(P(1, 3, 4), AxisYZ), Group{P(1, -4, 3), P(1, 4, -3)})
	for _, p := range Perpendicular(P(3, 4), AxisXY) {
		if !IsPerpendicular(p, P(3, 4)) {
			t.Errorf("%s isn't perpendicular to (3, 4)", p)
		}
	}
	if IsPerpendicular(P(1, 1), P(1, 0)) {
		t.Error("(1, 1) and (1, 0) aren't perpendicular")
	}
}

func TestWithinBound(t *testing.T) {
	if !WithinBound(P(1, 1), P(0, 2), P(2, 0)) {
		t.Error("expected (1, 1) within the box")
	}
	if !WithinBound(P(2, 0), P(0, 2), P(2, 0)) {
		t.Error("expected corners to be inclusive")
	}
	if WithinBound(P(1, 3), P(0, 2), P(2, 0)) {
		t.Error("expected (1, 3) outside the box")
	}
	// Only shared components count.
	if !WithinBound(P(1, 1, 100), P(0, 0), P(2, 2, 2)) {
		t.Error("expected the third component to be ignored")
	}
}

func TestRotate2D(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)

	p := P(1, 0)
	g := Group{p, P(0, 1)}
	Rotate2D(g, math.Pi/2, nil, AxisXY)
	diff(t, g, Group{P(0, 1), P(-1, 0)}, opt)
	// In place: the caller's point was modified.
	diff(t, p, P(0, 1), opt)

	g = Group{P(2, 1)}
	Rotate2D(g, math.Pi, P(1, 1), AxisXY)
	diff(t, g, Group{P(0, 1)}, opt)

	g = Group{P(7, 1, 0)}
	Rotate2D(g, math.Pi/2, nil, AxisYZ)
	diff(t, g, Group{P(7, 0, 1)}, opt)
}

func TestTransformSinglePoint(t *testing.T) {
	p := P(3, 4, 5)
	Scale2D(Group{p}, PerAxis(2, 3), P(1, 1), AxisXY)
	diff(t, p, P(5, 10, 5))

	Reflect2D(Group{p}, Line{P(0, 0), P(1, 0)}, AxisXY)
	diff(t, p, P(5, -10, 5), cmpopts.EquateApprox(0, 1e-12))

	q := P(1, 0)
	got := q.Transform(RotateAbout(math.Pi/2, P(0, 0)), AxisXY)
	diff(t, got, P(0, 1), cmpopts.EquateApprox(0, 1e-12))
	diff(t, q, P(1, 0))
}

func TestRotated2D(t *testing.T) {
	g := Group{P(1, 0)}
	out := Rotated2D(g, math.Pi/2, nil, AxisXY)
	diff(t, out, Group{P(0, 1)}, cmpopts.EquateApprox(0, 1e-9))
	diff(t, g, Group{P(1, 0)})
}

func TestScale2D(t *testing.T) {
	g := Group{P(1, 2), P(-1, 3)}
	Scale2D(g, Uniform(2), nil, AxisXY)
	diff(t, g, Group{P(2, 4), P(-2, 6)})

	g = Group{P(2, 2)}
	Scale2D(g, PerAxis(2, 3), P(1, 1), AxisXY)
	diff(t, g, Group{P(3, 4)})

	g = Group{P(1, 2, 3)}
	Scale2D(g, ScaleFromPt(P(10, 100)), nil, AxisXZ)
	diff(t, g, Group{P(10, 2, 300)})

	out := Scaled2D(Group{P(1, 1)}, Uniform(-1), P(2, 2), AxisXY)
	diff(t, out, Group{P(3, 3)})
}

func TestShear2D(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)

	g := Group{P(0, 1), P(1, 0)}
	Shear2D(g, PerAxis(math.Pi/4, 0), nil, AxisXY)
	diff(t, g, Group{P(1, 1), P(1, 0)}, opt)

	g = Group{P(1, 2)}
	Shear2D(g, PerAxis(math.Pi/4, 0), P(1, 1), AxisXY)
	diff(t, g, Group{P(2, 2)}, opt)

	out := Sheared2D(Group{P(1, 0)}, Uniform(math.Pi/4), nil, AxisXY)
	diff(t, out, Group{P(1, 1)}, opt)
}

func TestReflect2D(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-9)

	g := Group{P(1, 2), P(3, -1)}
	Reflect2D(g, Line{P(0, 0), P(1, 1)}, AxisXY)
	diff(t, g, Group{P(2, 1), P(-1, 3)}, opt)

	g = Group{P(5, 3)}
	Reflect2D(g, Line{P(0, 1), P(10, 1)}, AxisXY)
	diff(t, g, Group{P(5, -1)}, opt)

	orig := Group{P(5, 3)}
	out := Reflected2D(orig, Line{P(2, 0), P(2, 10)}, AxisXY)
	diff(t, out, Group{P(-1, 3)}, opt)
	diff(t, orig, Group{P(5, 3)})
}
