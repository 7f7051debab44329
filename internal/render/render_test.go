package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmapkit/trail"
	"github.com/roadmapkit/trail/internal/roadmap"
)

func loadMonthly(t *testing.T) *roadmap.Roadmap {
	t.Helper()
	rm, err := roadmap.LoadFile("../roadmap/testdata/monthly.yaml")
	require.NoError(t, err)
	return rm
}

type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
	Text    string     `xml:",chardata"`
}

func (n node) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (n node) walk(fn func(node)) {
	fn(n)
	for _, c := range n.Nodes {
		c.walk(fn)
	}
}

func parse(t *testing.T, doc []byte) node {
	t.Helper()
	var root node
	require.NoError(t, xml.Unmarshal(doc, &root))
	return root
}

func TestRenderLayers(t *testing.T) {
	rm := loadMonthly(t)
	doc, err := Render(rm, DefaultOptions())
	require.NoError(t, err)

	root := parse(t, doc)
	assert.Equal(t, "svg", root.XMLName.Local)
	assert.Equal(t, "0 0 1000 700", root.attr("viewBox"))

	var paths []node
	root.walk(func(n node) {
		if n.XMLName.Local == "path" {
			paths = append(paths, n)
		}
	})
	// Shadow, cutout, 30 segments, center line.
	require.Len(t, paths, 33)

	full := trail.SmoothPathSVG(rm.Waypoints(), trail.SVGOptions{})
	assert.Equal(t, full, paths[1].attr("d"))
	assert.Equal(t, "#dcfce7", paths[1].attr("stroke"))
	assert.Equal(t, "85", paths[1].attr("stroke-width"))
	assert.Equal(t, full, paths[32].attr("d"))
	assert.Equal(t, "15 15", paths[32].attr("stroke-dasharray"))
	assert.Equal(t, "0.6", paths[32].attr("stroke-opacity"))

	assert.True(t, strings.HasPrefix(paths[0].attr("d"), "M 95,610 C "), "shadow is offset: %s", paths[0].attr("d"))
	assert.Equal(t, "90", paths[0].attr("stroke-width"))

	segs := trail.SegmentPathsSVG(rm.Waypoints(), trail.SVGOptions{})
	for i, p := range paths[2:32] {
		assert.Equal(t, segs[i], p.attr("d"))
		assert.Equal(t, rm.TopicColor(i+1), p.attr("stroke"))
	}
	assert.Equal(t, "#3b82f6", paths[2].attr("stroke"))
	assert.Equal(t, "#22c55e", paths[31].attr("stroke"))
}

func TestRenderMarkers(t *testing.T) {
	rm := loadMonthly(t)
	opts := DefaultOptions()
	opts.Style.MarkerRadius = 20
	doc, err := Render(rm, opts)
	require.NoError(t, err)

	var circles []node
	parse(t, doc).walk(func(n node) {
		if n.XMLName.Local == "circle" {
			circles = append(circles, n)
		}
	})
	require.Len(t, circles, 31)
	assert.Equal(t, "80", circles[0].attr("cx"))
	assert.Equal(t, "595", circles[0].attr("cy"))
	assert.Equal(t, "current", circles[13].attr("data-status"))
	assert.Equal(t, "#3b82f6", circles[13].attr("fill"))
	assert.Equal(t, roadmap.DefaultColor, circles[14].attr("fill"))
	require.Len(t, circles[15].Nodes, 1)
	assert.Equal(t, "Foundation Complete", circles[15].Nodes[0].Text)
	assert.Equal(t, "Day 30", circles[30].Nodes[0].Text)
}

func TestRenderEscapes(t *testing.T) {
	rm, err := roadmap.Parse([]byte(`
title: "Maps & <Trails>"
milestones:
  - {title: A, position: {x: 10, y: 10}}
  - {title: B, position: {x: 90, y: 90}}
`))
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Style.Background = `#fff" onload="x`
	doc, err := Render(rm, opts)
	require.NoError(t, err)

	assert.Contains(t, string(doc), "Maps &amp; &lt;Trails&gt;")
	assert.NotContains(t, string(doc), `" onload="`)
	root := parse(t, doc)
	assert.Equal(t, "Maps & <Trails>", root.Nodes[0].Text)
}

func TestRenderDegenerate(t *testing.T) {
	rm, err := roadmap.Parse([]byte(`milestones: [{title: Only, position: {x: 50, y: 50}}]`))
	require.NoError(t, err)
	doc, err := Render(rm, DefaultOptions())
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "<path")
	parse(t, doc)
}

func viewBoxOf(t *testing.T, doc []byte) []float64 {
	t.Helper()
	fields := strings.Fields(parse(t, doc).attr("viewBox"))
	require.Len(t, fields, 4)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestRenderFitTrail(t *testing.T) {
	rm, err := roadmap.Parse([]byte(`
milestones:
  - {title: A, position: {x: 10, y: 10}}
  - {title: B, position: {x: 90, y: 90}}
`))
	require.NoError(t, err)
	opts := DefaultOptions()
	doc, err := Render(rm, opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 100, 100}, viewBoxOf(t, doc))

	// The trail spans (10,10)-(90,90), the shadow is shifted by (15,15) and
	// the widest stroke is 90.
	opts.Style.FitTrail = true
	doc, err = Render(rm, opts)
	require.NoError(t, err)
	got := viewBoxOf(t, doc)
	assert.InDeltaSlice(t, []float64{-35, -35, 185, 185}, got, 1e-9)

	opts.Style.MarkerRadius = 60
	doc, err = Render(rm, opts)
	require.NoError(t, err)
	got = viewBoxOf(t, doc)
	assert.InDeltaSlice(t, []float64{-50, -50, 215, 215}, got, 1e-9)
}

func TestRenderFitTrailDegenerate(t *testing.T) {
	rm, err := roadmap.Parse([]byte(`milestones: [{title: Only, position: {x: 50, y: 50}}]`))
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Style.FitTrail = true
	doc, err := Render(rm, opts)
	require.NoError(t, err)
	assert.Equal(t, "5 5 90 90", parse(t, doc).attr("viewBox"))
}

func TestRenderPrecision(t *testing.T) {
	rm := loadMonthly(t)
	opts := DefaultOptions()
	opts.SVG = trail.SVGOptions{MaxPrecision: 1}
	doc, err := Render(rm, opts)
	require.NoError(t, err)
	want := trail.SmoothPathSVG(rm.Waypoints(), opts.SVG)
	assert.Contains(t, string(doc), `d="`+want+`"`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteError(t *testing.T) {
	err := Write(failingWriter{}, loadMonthly(t), DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, loadMonthly(t), DefaultOptions()))
}
