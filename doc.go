// Package ptgeom is a small computational-geometry kernel for 2D and 3D point
// sets. It provides scalar helpers, point algebra, 2D affine transforms and
// line/segment geometry.
//
// # Points and groups
//
// A [Pt] is a slice of components and doubles as a vector. Most operations
// look at two or three components. Operations that combine two points
// truncate to the shorter one. A [Group] is an ordered sequence of points: a
// polyline, the boundary of a polygon, or a point cloud. Rectangles are
// groups of two points, [min, max], which is also what [BoundingBox]
// returns.
//
// # Scalars and statistics
//
// [Lerp], [BoundValue], [Within], [RandomRange], [NormalizeValue] and
// [MapToRange] operate on plain numbers. [Sum] and [Average] aggregate a
// group componentwise.
//
// # Transforms
//
// [Rotate2D], [Scale2D], [Shear2D] and [Reflect2D] transform every point of a
// group in place, in the plane named by an [AxisPair], optionally about an
// anchor point. Their counterparts [Rotated2D], [Scaled2D], [Sheared2D] and
// [Reflected2D] return transformed copies instead. All of them are built on
// [Affine], a 2×3 matrix that can also be used directly.
//
// To transform a single point, wrap it in a group. Group{p} shares storage
// with p, so the in-place variants modify p itself:
//
//	Rotate2D(Group{p}, math.Pi/2, nil, AxisXY)
//
// [Pt.Transform] applies an [Affine] to one point and returns a copy.
//
// # Lines
//
// A [Line] is defined by two points. Functions ending in Path2D treat it as
// an infinite line, functions ending in Line2D as a bounded segment. Missing
// answers, such as the slope of a vertical line or the intersection of
// parallel lines, are reported with a boolean, never with NaN.
//
// # Errors
//
// Degenerate input is reported with errors wrapping [ErrDomain] or
// [ErrEmptyInput]. Where documented, degenerate input instead produces NaN or
// infinities.
package ptgeom
