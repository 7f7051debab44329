package trail

import (
	"fmt"
	"iter"
	"math"
)

// DefaultSmoothing is the smoothing factor used by [DefaultSmoother].
const DefaultSmoothing = 0.2

// DefaultSmoother is the smoother used by the package-level functions.
var DefaultSmoother = Smoother{Smoothing: DefaultSmoothing}

// Smoother turns a sequence of waypoints into a smooth curve made of cubic
// Béziers that passes through every waypoint in order.
//
// The tangent at each waypoint is parallel to the line between its two
// neighbors, as in a Catmull-Rom spline. At the first and last waypoint, the
// missing neighbor is replaced by the waypoint itself. Control points are
// placed Smoothing times the neighbor distance away from their waypoint.
//
// A Smoother has no state besides its factor and is safe for concurrent use.
type Smoother struct {
	// Smoothing scales the distance between a waypoint and its control
	// points. 0 places the control points on the waypoints, which draws the
	// polyline through them.
	Smoothing float64
}

// ControlPoint computes a control point for current using [DefaultSmoother].
func ControlPoint(current Point, previous, next *Point, reverse bool) Point {
	return DefaultSmoother.ControlPoint(current, previous, next, reverse)
}

// ControlPoint returns the control point of a curve at current. previous and
// next are the neighbors of current; nil means the neighbor doesn't exist and
// current is used in its place.
//
// The control point lies on the line through current that is parallel to
// previous→next, pointing towards next, or towards previous if reverse is set.
// When both neighbors are missing, the result is current.
func (s Smoother) ControlPoint(current Point, previous, next *Point, reverse bool) Point {
	p, n := current, current
	if previous != nil {
		p = *previous
	}
	if next != nil {
		n = *next
	}
	m := Metrics(p, n)
	angle := m.Angle
	if reverse {
		angle += math.Pi
	}
	return current.Translate(VecFromAngle(angle).Mul(m.Length * s.Smoothing))
}

// BezierCommand returns the cubic Bézier command ending at points[i], using
// [DefaultSmoother].
func BezierCommand(points []Point, i int) PathElement {
	return DefaultSmoother.BezierCommand(points, i)
}

// BezierCommand returns the cubic Bézier command that continues a path from
// points[i-1] to points[i]. The first control point belongs to points[i-1]
// and the second to points[i].
//
// i must be in [1, len(points)).
func (s Smoother) BezierCommand(points []Point, i int) PathElement {
	if i < 1 || i >= len(points) {
		panic(fmt.Sprintf("trail: bezier command index %d out of range [1, %d)", i, len(points)))
	}
	cps := s.ControlPoint(points[i-1], at(points, i-2), &points[i], false)
	cpe := s.ControlPoint(points[i], &points[i-1], at(points, i+1), true)
	return CubicTo(cps, cpe, points[i])
}

// at returns a pointer to points[i], or nil if i is out of range.
func at(points []Point, i int) *Point {
	if i < 0 || i >= len(points) {
		return nil
	}
	return &points[i]
}

// SmoothPath returns the smooth path through points, using [DefaultSmoother].
func SmoothPath(points []Point) BezPath {
	return DefaultSmoother.Path(points)
}

// SmoothPathSVG is like [SmoothPath] but returns the path as an SVG path
// string. It returns the empty string for no points.
func SmoothPathSVG(points []Point, opts SVGOptions) string {
	return DefaultSmoother.Path(points).SVG(opts)
}

// Path returns one continuous path through all points: a MoveTo to the first
// point, followed by one CubicTo per remaining point.
//
// No points yield an empty path and a single point yields a path consisting
// only of a MoveTo.
func (s Smoother) Path(points []Point) BezPath {
	if len(points) == 0 {
		return nil
	}
	p := make(BezPath, 0, len(points))
	p.MoveTo(points[0])
	for i := 1; i < len(points); i++ {
		p.Push(s.BezierCommand(points, i))
	}
	return p
}

// SegmentPaths returns independent paths for each pair of consecutive points,
// using [DefaultSmoother].
func SegmentPaths(points []Point) []BezPath {
	return DefaultSmoother.SegmentPaths(points)
}

// SegmentPathsSVG is like [SegmentPaths] but returns SVG path strings.
func SegmentPathsSVG(points []Point, opts SVGOptions) []string {
	paths := DefaultSmoother.SegmentPaths(points)
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.SVG(opts)
	}
	return out
}

// SegmentPaths returns one standalone path per pair of consecutive points.
// Path i-1 moves to points[i-1] and draws exactly the curve that [Smoother.Path]
// draws between points[i-1] and points[i], so the paths can be stroked
// individually, for example in different colors, and still join up seamlessly.
//
// The result has max(0, len(points)-1) elements.
func (s Smoother) SegmentPaths(points []Point) []BezPath {
	if len(points) < 2 {
		return []BezPath{}
	}
	out := make([]BezPath, 0, len(points)-1)
	for seg := range s.Segments(points) {
		out = append(out, seg.Path())
	}
	return out
}

// Segments returns an iterator over the cubic segments of the smooth path
// through points.
func (s Smoother) Segments(points []Point) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		for i := 1; i < len(points); i++ {
			el := s.BezierCommand(points, i)
			seg := CubicBez{points[i-1], el.P0, el.P1, el.P2}.Seg()
			if !yield(seg) {
				return
			}
		}
	}
}
