package ptgeom

// Rectangles are axis-aligned and represented as the group [min, max] of two
// diagonal corners, the same shape [BoundingBox] returns. In a y-down space
// min is the top left and max the bottom right corner.

// RectFromTopLeft returns the rectangle with the given size, extending to the
// right and down (for positive sizes) from topLeft. The result is normalized
// so that its first point is the minimum corner.
func RectFromTopLeft(topLeft Pt, size Size) Group {
	return rectFromPoints(topLeft, topLeft.Add(size.AsPt()))
}

// RectFromCenter returns the rectangle with the given size, centered around
// center.
func RectFromCenter(center Pt, size Size) Group {
	half := size.Scale(0.5).AsPt()
	return rectFromPoints(center.Sub(half), center.Add(half))
}

func rectFromPoints(p0, p1 Pt) Group {
	return Group{
		{min(p0.X(), p1.X()), min(p0.Y(), p1.Y())},
		{max(p0.X(), p1.X()), max(p0.Y(), p1.Y())},
	}
}

// RectCorners returns the four corners of rect: top left, top right, bottom
// right, bottom left.
func RectCorners(rect Group) Group {
	p0, p1 := rect[0], rect[1]
	return Group{
		{p0.X(), p0.Y()},
		{p1.X(), p0.Y()},
		{p1.X(), p1.Y()},
		{p0.X(), p1.Y()},
	}
}

// RectSides returns the four sides of rect: top, right, bottom, left. Each
// side starts where the previous one ends.
func RectSides(rect Group) [4]Line {
	c := RectCorners(rect)
	return [4]Line{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

// RectCenter returns the center of rect.
func RectCenter(rect Group) Pt {
	return Interpolate(rect[0], rect[1], 0.5)
}

// RectSize returns the size of rect. Width and height are negative if rect
// isn't normalized.
func RectSize(rect Group) Size {
	d := rect[1].Sub(rect[0])
	return Sz(d.X(), d.Y())
}
