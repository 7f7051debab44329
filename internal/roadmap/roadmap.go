// Package roadmap describes a learning roadmap as a sequence of milestones laid
// out on a map, and turns it into a smooth trail whose stretches are colored by
// topic.
package roadmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roadmapkit/trail"
)

// DefaultColor is used for trail segments and milestones that no topic covers.
const DefaultColor = "#cbd5e1"

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid roadmap")

type Timeline string

const (
	Daily   Timeline = "daily"
	Monthly Timeline = "monthly"
	Yearly  Timeline = "yearly"
)

type Status string

const (
	Completed Status = "completed"
	Current   Status = "current"
	Locked    Status = "locked"
)

// ViewBox is the coordinate space the trail is drawn in. Milestone positions
// are given in percent of the view box.
type ViewBox struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Topic groups the milestones Start through End, inclusive.
type Topic struct {
	Label string `yaml:"label" json:"label"`
	Start int    `yaml:"start" json:"start"`
	End   int    `yaml:"end" json:"end"`
	Color string `yaml:"color" json:"color"`
}

type Milestone struct {
	Title    string      `yaml:"title" json:"title"`
	Position trail.Point `yaml:"position" json:"position"`
	Status   Status      `yaml:"status,omitempty" json:"status,omitempty"`
	Color    string      `yaml:"color,omitempty" json:"color,omitempty"`
}

type Roadmap struct {
	Title    string   `yaml:"title" json:"title"`
	Timeline Timeline `yaml:"timeline" json:"timeline"`
	ViewBox  ViewBox  `yaml:"view_box" json:"view_box"`
	// DefaultColor replaces the package's DefaultColor when set.
	DefaultColor string `yaml:"default_color,omitempty" json:"default_color,omitempty"`
	// Current is the index of the milestone being worked on. Milestones
	// without an explicit status are completed before it and locked after it.
	Current    *int        `yaml:"current,omitempty" json:"current,omitempty"`
	Topics     []Topic     `yaml:"topics" json:"topics"`
	Milestones []Milestone `yaml:"milestones" json:"milestones"`
}

// Load decodes a roadmap from YAML or JSON, fills in defaults and validates
// it. The input must hold exactly one document.
func Load(r io.Reader) (*Roadmap, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var rm Roadmap
	if err := dec.Decode(&rm); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("decode roadmap: %w", err)
	}
	switch err := dec.Decode(new(yaml.Node)); {
	case err == nil:
		return nil, fmt.Errorf("%w: more than one document", ErrInvalid)
	case !errors.Is(err, io.EOF):
		return nil, fmt.Errorf("decode roadmap: %w", err)
	}
	rm.applyDefaults()
	if err := rm.Validate(); err != nil {
		return nil, err
	}
	return &rm, nil
}

// Parse is like Load but reads from a byte slice.
func Parse(data []byte) (*Roadmap, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile loads a roadmap from a file.
func LoadFile(path string) (*Roadmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roadmap: %w", err)
	}
	defer f.Close()
	rm, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rm, nil
}

func (rm *Roadmap) applyDefaults() {
	if rm.Timeline == "" {
		rm.Timeline = Monthly
	}
	if rm.ViewBox == (ViewBox{}) {
		rm.ViewBox = ViewBox{Width: 100, Height: 100}
	}
	if rm.DefaultColor == "" {
		rm.DefaultColor = DefaultColor
	}
	for i := range rm.Milestones {
		if rm.Milestones[i].Status == "" {
			rm.Milestones[i].Status = rm.derivedStatus(i)
		}
	}
}

func (rm *Roadmap) derivedStatus(i int) Status {
	if rm.Current == nil {
		return Locked
	}
	switch cur := *rm.Current; {
	case i == 0 || i < cur:
		return Completed
	case i == cur:
		return Current
	default:
		return Locked
	}
}

// Validate reports all problems with the roadmap. Every returned error wraps
// ErrInvalid.
func (rm *Roadmap) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	switch rm.Timeline {
	case Daily, Monthly, Yearly:
	default:
		invalid("unknown timeline %q", rm.Timeline)
	}
	if !(rm.ViewBox.Width > 0) || !(rm.ViewBox.Height > 0) ||
		math.IsInf(rm.ViewBox.Width, 0) || math.IsInf(rm.ViewBox.Height, 0) {
		invalid("view box %gx%g must be positive", rm.ViewBox.Width, rm.ViewBox.Height)
	}
	if rm.Current != nil && (*rm.Current < 0 || *rm.Current >= len(rm.Milestones)) {
		invalid("current milestone %d out of range [0, %d)", *rm.Current, len(rm.Milestones))
	}
	for i, m := range rm.Milestones {
		switch m.Status {
		case Completed, Current, Locked:
		default:
			invalid("milestone %d: unknown status %q", i, m.Status)
		}
		if m.Position.IsNaN() || m.Position.IsInf() {
			invalid("milestone %d: position %s is not finite", i, m.Position)
		}
	}

	for i, t := range rm.Topics {
		if strings.TrimSpace(t.Label) == "" {
			invalid("topic %d: missing label", i)
		}
	}
	topics := slices.Clone(rm.Topics)
	slices.SortFunc(topics, func(a, b Topic) int { return a.Start - b.Start })
	for i, t := range topics {
		if t.Start > t.End {
			invalid("topic %q: start %d after end %d", t.Label, t.Start, t.End)
		}
		if t.Start < 0 || t.End >= len(rm.Milestones) {
			invalid("topic %q: range [%d, %d] outside of %d milestones", t.Label, t.Start, t.End, len(rm.Milestones))
		}
		if i > 0 && t.Start <= topics[i-1].End {
			invalid("topic %q overlaps topic %q", t.Label, topics[i-1].Label)
		}
	}
	return errors.Join(errs...)
}

// Positions returns the milestone positions in percent of the view box.
func (rm *Roadmap) Positions() []trail.Point {
	pts := make([]trail.Point, len(rm.Milestones))
	for i, m := range rm.Milestones {
		pts[i] = m.Position
	}
	return pts
}

// Transform maps percent positions into view box coordinates.
func (rm *Roadmap) Transform() trail.Affine {
	return trail.Scale(rm.ViewBox.Width/100, rm.ViewBox.Height/100)
}

// Waypoints returns the milestone positions in view box coordinates.
func (rm *Roadmap) Waypoints() []trail.Point {
	return rm.Transform().Points(rm.Positions())
}

// TopicAt returns the topic covering milestone i.
func (rm *Roadmap) TopicAt(i int) (Topic, bool) {
	for _, t := range rm.Topics {
		if i >= t.Start && i <= t.End {
			return t, true
		}
	}
	return Topic{}, false
}

// Checkpoint returns the label of the checkpoint at milestone i. The last
// milestone of each topic is a checkpoint, unless it is the final milestone
// of the roadmap.
func (rm *Roadmap) Checkpoint(i int) (string, bool) {
	t, ok := rm.TopicAt(i)
	if !ok || i != t.End || i == len(rm.Milestones)-1 {
		return "", false
	}
	return t.Label + " Complete", true
}

// TopicColor returns the color of the topic covering milestone i, falling
// back to the milestone's own color and then the roadmap's default color.
func (rm *Roadmap) TopicColor(i int) string {
	if t, ok := rm.TopicAt(i); ok && t.Color != "" {
		return t.Color
	}
	if i >= 0 && i < len(rm.Milestones) && rm.Milestones[i].Color != "" {
		return rm.Milestones[i].Color
	}
	return rm.defaultColor()
}

// NodeColor is the color of the marker of milestone i. Locked milestones are
// drawn in the default color.
func (rm *Roadmap) NodeColor(i int) string {
	if rm.Milestones[i].Status == Locked {
		return rm.defaultColor()
	}
	return rm.TopicColor(i)
}

func (rm *Roadmap) defaultColor() string {
	if rm.DefaultColor != "" {
		return rm.DefaultColor
	}
	return DefaultColor
}

type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// Progress counts completed milestones.
func (rm *Roadmap) Progress() Progress {
	p := Progress{Total: len(rm.Milestones)}
	for _, m := range rm.Milestones {
		if m.Status == Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = 100 * float64(p.Completed) / float64(p.Total)
	}
	return p
}
