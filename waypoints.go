package trail

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// WaypointSeparator separates waypoints in the text format.
	WaypointSeparator = "|"
	// CoordSeparator separates the x and y coordinate of a waypoint.
	CoordSeparator = ","
)

// ErrWaypointSyntax is returned by [ParseWaypoints] for malformed input.
var ErrWaypointSyntax = errors.New("invalid waypoint syntax")

// ParseWaypoints parses waypoints written as "x,y|x,y|...". Whitespace around
// coordinates is ignored. The empty string yields no waypoints.
func ParseWaypoints(s string) ([]Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []Point{}, nil
	}
	parts := strings.Split(s, WaypointSeparator)
	pts := make([]Point, 0, len(parts))
	for i, part := range parts {
		xy := strings.Split(part, CoordSeparator)
		if len(xy) != 2 {
			return nil, fmt.Errorf("waypoint %d %q: %w: want x,y", i, part, ErrWaypointSyntax)
		}
		x, err := parseCoord(xy[0])
		if err != nil {
			return nil, fmt.Errorf("waypoint %d: x: %w", i, err)
		}
		y, err := parseCoord(xy[1])
		if err != nil {
			return nil, fmt.Errorf("waypoint %d: y: %w", i, err)
		}
		pts = append(pts, Pt(x, y))
	}
	return pts, nil
}

func parseCoord(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrWaypointSyntax, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrWaypointSyntax, s)
	}
	return f, nil
}

// FormatWaypoints is the inverse of [ParseWaypoints].
func FormatWaypoints(pts []Point) string {
	var sb strings.Builder
	for i, pt := range pts {
		if i > 0 {
			sb.WriteString(WaypointSeparator)
		}
		sb.WriteString(formatCoord(pt.X, 0))
		sb.WriteString(CoordSeparator)
		sb.WriteString(formatCoord(pt.Y, 0))
	}
	return sb.String()
}
