package roadmap

import (
	"github.com/roadmapkit/trail"
)

// Segment is the stretch of trail between milestones From and To.
type Segment struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Path  string `json:"path"`
	Color string `json:"color"`
}

// Trail is a roadmap's smooth path, drawn once as a whole and once per
// segment.
type Trail struct {
	Path     string      `json:"path"`
	Segments []Segment   `json:"segments"`
	// Bounds encloses the curve, not its stroke. It is nil for a roadmap
	// without milestones.
	Bounds   *trail.Rect `json:"bounds,omitempty"`
}

// Trail smooths the roadmap's waypoints. Segment i joins milestones i and i+1
// and takes the topic color of milestone i+1, so a topic's color starts right
// after the previous topic's last milestone.
func (rm *Roadmap) Trail(s trail.Smoother, opts trail.SVGOptions) Trail {
	pts := rm.Waypoints()
	full := s.Path(pts)
	paths := s.SegmentPaths(pts)
	t := Trail{
		Path:     full.SVG(opts),
		Segments: make([]Segment, len(paths)),
	}
	if bbox, ok := full.BoundingBox(); ok {
		t.Bounds = &bbox
	}
	for i, p := range paths {
		t.Segments[i] = Segment{
			From:  i,
			To:    i + 1,
			Path:  p.SVG(opts),
			Color: rm.TopicColor(i + 1),
		}
	}
	return t
}
