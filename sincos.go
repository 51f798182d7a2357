package ptgeom

import "math"

// SinCosTable holds sine and cosine sampled at every whole degree. Lookups
// are approximations: the angle is truncated to the whole degree below it.
//
// A SinCosTable is read-only after construction and safe for concurrent use.
type SinCosTable struct {
	sin [360]float64
	cos [360]float64
}

// NewSinCosTable returns a table precomputed for 0° to 359°.
func NewSinCosTable() *SinCosTable {
	tbl := new(SinCosTable)
	for i := range 360 {
		rad := ToRadian(float64(i))
		tbl.sin[i] = math.Sin(rad)
		tbl.cos[i] = math.Cos(rad)
	}
	return tbl
}

func (tbl *SinCosTable) index(rad float64) int {
	// NaN and infinities land outside the table.
	idx := int(math.Floor(BoundAngle(ToDegree(rad))))
	if idx < 0 || idx >= 360 {
		return 0
	}
	return idx
}

// Sin returns the approximate sine of rad.
func (tbl *SinCosTable) Sin(rad float64) float64 {
	return tbl.sin[tbl.index(rad)]
}

// Cos returns the approximate cosine of rad.
func (tbl *SinCosTable) Cos(rad float64) float64 {
	return tbl.cos[tbl.index(rad)]
}

// Sincos returns the approximate sine and cosine of rad.
func (tbl *SinCosTable) Sincos(rad float64) (sin, cos float64) {
	i := tbl.index(rad)
	return tbl.sin[i], tbl.cos[i]
}
