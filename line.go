package trail

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// LineMetrics describes the vector from a line's start to its end point.
type LineMetrics struct {
	// Length is the euclidean distance between the end points. It is never
	// negative.
	Length float64
	// Angle is the direction of the line in radians, in (−π, π], following the
	// atan2 convention.
	Angle float64
}

// Metrics returns the length and direction of the line from a to b.
func Metrics(a, b Point) LineMetrics {
	return Line{a, b}.Metrics()
}

// Metrics returns the line's length and direction.
func (l Line) Metrics() LineMetrics {
	d := l.P1.Sub(l.P0)
	return LineMetrics{
		Length: d.Hypot(),
		Angle:  d.Angle(),
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Seg returns the line as a path segment.
func (l Line) Seg() PathSegment {
	return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1}
}
