package trail

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a single drawing command of a Bézier path.
//
// For MoveTo and LineTo, P0 is the target point. For CubicTo, P0 and P1 are
// the control points and P2 is the end point.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

// SVG returns the element as a single SVG path command, such as
// "C 2,0 8,-2 10,0".
func (el PathElement) SVG(opts SVGOptions) string {
	return SVG(slices.Values([]PathElement{el}), opts)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment is a self-contained portion of a path, with an explicit start
// point. It acts as a tagged union of [Line] and [CubicBez].
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0, seg.P1, seg.P1}
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return seg.Line().BoundingBox()
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		panic("unreachable")
	}
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}

// Path returns the segment as a standalone path: a MoveTo to its start point
// followed by its drawing command.
func (seg PathSegment) Path() BezPath {
	return BezPath{MoveTo(seg.P0), seg.PathElement()}
}

// Tangents returns the segment's direction at its start and at its end.
func (seg PathSegment) Tangents() (Vec2, Vec2) {
	switch seg.Kind {
	case LineKind:
		d := seg.P1.Sub(seg.P0)
		return d, d
	case CubicKind:
		return seg.Cubic().Tangents()
	default:
		panic(fmt.Sprintf("invalid PathSegment kind %v", seg.Kind))
	}
}

// BezPath is a Bézier path, represented as a slice of path elements.
//
// Each subpath begins with a MoveTo, followed by zero or more LineTo and
// CubicTo elements, and optionally ends with a ClosePath.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(p.Elements()) }

// Transform returns a new path with an affine transformation applied to every
// element.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make(BezPath, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// EndPoints returns the end points of the path's elements in order, skipping
// ClosePath. For a path built by [Smoother.Path] these are exactly the input
// waypoints.
func (p BezPath) EndPoints() []Point {
	out := make([]Point, 0, len(p))
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			out = append(out, pt)
		}
	}
	return out
}

// BoundingBox returns the smallest rectangle enclosing the path. It reports
// false for a path without any points.
func (p BezPath) BoundingBox() (Rect, bool) {
	pts := p.EndPoints()
	if len(pts) == 0 {
		return Rect{}, false
	}
	bbox := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	for seg := range p.Segments() {
		bbox = bbox.Union(seg.BoundingBox())
	}
	return bbox, true
}

// SVG converts the path to an SVG path string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// Segments converts a sequence of path elements to a sequence of path segments.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		first := true
		var start, last Point
		for el := range seq {
			if first {
				first = false
				switch el.Kind {
				case MoveToKind, LineToKind:
					start = el.P0
				case CubicToKind:
					start = el.P2
				case ClosePathKind:
					panic("first path element mustn't be ClosePath")
				}
				last = start
			}

			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0
				if !yield(Line{p, el.P0}.Seg()) {
					return
				}
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(CubicBez{p, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ClosePathKind:
				if last != start {
					p := last
					last = start
					if !yield(Line{p, start}.Seg()) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}
