// Package trail draws smooth curves through waypoints and emits them as SVG
// path data. It was written for winding "roadmap" trails, where a sequence of
// milestones is connected by one continuous curve whose stretches can be
// stroked in different colors.
//
// # Smoothing
//
// [Smoother] connects consecutive waypoints with cubic Béziers. The tangent at
// each waypoint is parallel to the line between its two neighbors, so the
// curve is smooth at every interior waypoint without the caller having to
// supply handles. The first and last waypoint use themselves as their missing
// neighbor. [DefaultSmoother] uses a smoothing factor of 0.2, which is what
// the package-level functions ([SmoothPath], [SegmentPaths], [ControlPoint],
// [BezierCommand]) use.
//
// The same control points are used whether the curve is produced as a single
// path ([Smoother.Path]) or as one path per stretch ([Smoother.SegmentPaths]),
// which is what makes per-segment styling seamless.
//
// # Paths, elements, and segments
//
// Like PostScript-style drawing APIs, a [BezPath] is a slice of
// [PathElement] drawing commands ([MoveTo], [LineTo], [CubicTo], [ClosePath]).
// [PathSegment] is the self-contained alternative, carrying its own start
// point. [Segments] converts the former to the latter.
//
// # SVG
//
// [SVG] and [WriteSVG] serialize path elements using absolute coordinates, for
// example "M 0,0 C 2,0 8,-2 10,0". [SVGOptions] limits the number of fraction
// digits.
//
// # Waypoint text format
//
// [ParseWaypoints] and [FormatWaypoints] handle the compact "x,y|x,y" form
// used on command lines and in query strings.
package trail
