// Package render draws a roadmap trail as a standalone SVG document.
package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/roadmapkit/trail"
	"github.com/roadmapkit/trail/internal/roadmap"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Style controls the look of the trail. The layers are drawn bottom to top:
// shadow, cutout, colored segments, center line, markers.
type Style struct {
	Background string `mapstructure:"background" yaml:"background"`

	ShadowColor   string  `mapstructure:"shadow_color" yaml:"shadow_color"`
	ShadowWidth   float64 `mapstructure:"shadow_width" yaml:"shadow_width"`
	ShadowOpacity float64 `mapstructure:"shadow_opacity" yaml:"shadow_opacity"`
	ShadowDX      float64 `mapstructure:"shadow_dx" yaml:"shadow_dx"`
	ShadowDY      float64 `mapstructure:"shadow_dy" yaml:"shadow_dy"`

	CutoutColor string  `mapstructure:"cutout_color" yaml:"cutout_color"`
	CutoutWidth float64 `mapstructure:"cutout_width" yaml:"cutout_width"`

	SegmentWidth float64 `mapstructure:"segment_width" yaml:"segment_width"`

	CenterColor   string  `mapstructure:"center_color" yaml:"center_color"`
	CenterWidth   float64 `mapstructure:"center_width" yaml:"center_width"`
	CenterDash    string  `mapstructure:"center_dash" yaml:"center_dash"`
	CenterOpacity float64 `mapstructure:"center_opacity" yaml:"center_opacity"`

	// MarkerRadius is the radius of the milestone markers. 0 disables them.
	MarkerRadius float64 `mapstructure:"marker_radius" yaml:"marker_radius"`

	// FitTrail crops the view box to the drawn trail, padded by the widest
	// stroke, instead of using the roadmap's view box.
	FitTrail bool `mapstructure:"fit_trail" yaml:"fit_trail"`
}

// padding is how far the drawing extends past the trail's center line.
func (st Style) padding() float64 {
	return max(st.ShadowWidth/2, st.CutoutWidth/2, st.SegmentWidth/2, st.CenterWidth/2, st.MarkerRadius)
}

// DefaultStyle returns the style of the monthly roadmap map.
func DefaultStyle() Style {
	return Style{
		ShadowColor:   "#000000",
		ShadowWidth:   90,
		ShadowOpacity: 0.15,
		ShadowDX:      15,
		ShadowDY:      15,
		CutoutColor:   "#dcfce7",
		CutoutWidth:   85,
		SegmentWidth:  70,
		CenterColor:   "#ffffff",
		CenterWidth:   5,
		CenterDash:    "15 15",
		CenterOpacity: 0.6,
		MarkerRadius:  0,
	}
}

type Options struct {
	Style    Style
	Smoother trail.Smoother
	SVG      trail.SVGOptions
}

// DefaultOptions uses the default style and smoother.
func DefaultOptions() Options {
	return Options{Style: DefaultStyle(), Smoother: trail.DefaultSmoother}
}

// Render is like Write but returns the document.
func Render(rm *roadmap.Roadmap, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, rm, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes rm's trail as an SVG document to w.
func Write(w io.Writer, rm *roadmap.Roadmap, opts Options) error {
	st := opts.Style
	pts := rm.Waypoints()
	full := opts.Smoother.Path(pts)
	segs := opts.Smoother.SegmentPaths(pts)
	shadow := full.Transform(trail.Translate(trail.Vec(st.ShadowDX, st.ShadowDY)))

	e := &encoder{enc: xml.NewEncoder(w), svg: opts.SVG}
	e.start("svg",
		"xmlns", svgNamespace,
		"viewBox", viewBox(rm, st, full, shadow),
		"preserveAspectRatio", "xMidYMid meet",
	)
	if rm.Title != "" {
		e.start("title")
		e.text(rm.Title)
		e.end("title")
	}
	if st.Background != "" {
		e.empty("rect", "width", "100%", "height", "100%", "fill", st.Background)
	}

	if len(full) > 1 {
		e.path(shadow, "fill", "none",
			"stroke", st.ShadowColor,
			"stroke-width", num(st.ShadowWidth),
			"stroke-opacity", num(st.ShadowOpacity),
			"stroke-linecap", "round",
			"stroke-linejoin", "round",
		)
		e.path(full, "fill", "none",
			"stroke", st.CutoutColor,
			"stroke-width", num(st.CutoutWidth),
			"stroke-linecap", "round",
			"stroke-linejoin", "round",
		)
		e.start("g", "class", "segments", "fill", "none", "stroke-width", num(st.SegmentWidth), "stroke-linecap", "butt")
		for i, seg := range segs {
			e.path(seg, "stroke", rm.TopicColor(i+1))
		}
		e.end("g")
		e.path(full, "fill", "none",
			"stroke", st.CenterColor,
			"stroke-width", num(st.CenterWidth),
			"stroke-dasharray", st.CenterDash,
			"stroke-opacity", num(st.CenterOpacity),
			"stroke-linecap", "round",
		)
	}

	if st.MarkerRadius > 0 {
		e.start("g", "class", "milestones")
		for i, pt := range pts {
			m := rm.Milestones[i]
			e.start("circle",
				"cx", num(pt.X),
				"cy", num(pt.Y),
				"r", num(st.MarkerRadius),
				"fill", rm.NodeColor(i),
				"data-status", string(m.Status),
			)
			e.start("title")
			if label, ok := rm.Checkpoint(i); ok {
				e.text(label)
			} else {
				e.text(m.Title)
			}
			e.end("title")
			e.end("circle")
		}
		e.end("g")
	}

	e.end("svg")
	if e.err != nil {
		return fmt.Errorf("render roadmap: %w", e.err)
	}
	if err := e.enc.Flush(); err != nil {
		return fmt.Errorf("render roadmap: %w", err)
	}
	return nil
}

func viewBox(rm *roadmap.Roadmap, st Style, full, shadow trail.BezPath) string {
	vb := trail.Rect{X1: rm.ViewBox.Width, Y1: rm.ViewBox.Height}
	if bounds, ok := full.BoundingBox(); ok && st.FitTrail {
		if len(full) > 1 {
			sb, _ := shadow.BoundingBox()
			bounds = bounds.Union(sb)
		}
		pad := st.padding()
		vb = bounds.Inflate(pad, pad)
	}
	return fmt.Sprintf("%s %s %s %s", num(vb.X0), num(vb.Y0), num(vb.Width()), num(vb.Height()))
}

// encoder remembers the first error, so that documents can be written
// without checking every token.
type encoder struct {
	enc *xml.Encoder
	svg trail.SVGOptions
	err error
}

func attrs(kv []string) []xml.Attr {
	out := make([]xml.Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, xml.Attr{Name: xml.Name{Local: kv[i]}, Value: kv[i+1]})
	}
	return out
}

func (e *encoder) token(t xml.Token) {
	if e.err != nil {
		return
	}
	e.err = e.enc.EncodeToken(t)
}

func (e *encoder) start(name string, kv ...string) {
	e.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs(kv)})
}

func (e *encoder) end(name string) {
	e.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (e *encoder) empty(name string, kv ...string) {
	e.start(name, kv...)
	e.end(name)
}

func (e *encoder) text(s string) {
	e.token(xml.CharData(s))
}

func (e *encoder) path(p trail.BezPath, kv ...string) {
	e.empty("path", append([]string{"d", p.SVG(e.svg)}, kv...)...)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
