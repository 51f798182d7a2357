package ptgeom

import (
	"fmt"
)

// Size is the extent of a rectangle.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// AsPt returns the size as the 2D vector ⟨w, h⟩.
func (sz Size) AsPt() Pt {
	return Pt{sz.Width, sz.Height}
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

func (sz Size) Area() float64 {
	return sz.Width * sz.Height
}
