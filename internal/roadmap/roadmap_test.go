package roadmap

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmapkit/trail"
)

func TestLoadMonthly(t *testing.T) {
	rm, err := LoadFile("testdata/monthly.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Monthly Map", rm.Title)
	assert.Equal(t, Monthly, rm.Timeline)
	assert.Equal(t, ViewBox{Width: 1000, Height: 700}, rm.ViewBox)
	assert.Equal(t, DefaultColor, rm.DefaultColor)
	require.Len(t, rm.Milestones, 31)
	require.Len(t, rm.Topics, 2)

	assert.Equal(t, Completed, rm.Milestones[0].Status)
	assert.Equal(t, Completed, rm.Milestones[12].Status)
	assert.Equal(t, Current, rm.Milestones[13].Status)
	assert.Equal(t, Locked, rm.Milestones[14].Status)
	assert.Equal(t, Locked, rm.Milestones[30].Status)
}

func TestLoadJSON(t *testing.T) {
	doc := `{
		"title": "Daily Map",
		"timeline": "daily",
		"milestones": [
			{"title": "DSA", "position": {"x": 10, "y": 20}, "status": "completed", "color": "#3b82f6"},
			{"title": "Algorithms", "position": {"x": 30, "y": 40}, "status": "current", "color": "#eab308"}
		]
	}`
	rm, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, Daily, rm.Timeline)
	assert.Equal(t, ViewBox{Width: 100, Height: 100}, rm.ViewBox)
	assert.Equal(t, []trail.Point{trail.Pt(10, 20), trail.Pt(30, 40)}, rm.Waypoints())
}

func TestWaypointsScaled(t *testing.T) {
	rm, err := LoadFile("testdata/monthly.yaml")
	require.NoError(t, err)

	pts := rm.Waypoints()
	require.Len(t, pts, 31)
	assert.Equal(t, trail.Pt(80, 595), pts[0])
	assert.Equal(t, trail.Pt(920, 644), pts[30])
	// Positions are left in percent.
	assert.Equal(t, trail.Pt(8, 85), rm.Milestones[0].Position)
}

func TestTopicsAndCheckpoints(t *testing.T) {
	rm, err := LoadFile("testdata/monthly.yaml")
	require.NoError(t, err)

	_, ok := rm.TopicAt(0)
	assert.False(t, ok, "the start isn't part of a topic")
	topic, ok := rm.TopicAt(15)
	require.True(t, ok)
	assert.Equal(t, "Foundation", topic.Label)
	topic, ok = rm.TopicAt(16)
	require.True(t, ok)
	assert.Equal(t, "DSA", topic.Label)

	label, ok := rm.Checkpoint(15)
	assert.True(t, ok)
	assert.Equal(t, "Foundation Complete", label)
	_, ok = rm.Checkpoint(30)
	assert.False(t, ok, "the final milestone is the finish, not a checkpoint")
	_, ok = rm.Checkpoint(7)
	assert.False(t, ok)
}

func TestColors(t *testing.T) {
	rm, err := LoadFile("testdata/monthly.yaml")
	require.NoError(t, err)

	assert.Equal(t, DefaultColor, rm.TopicColor(0))
	assert.Equal(t, "#3b82f6", rm.TopicColor(1))
	assert.Equal(t, "#22c55e", rm.TopicColor(30))

	assert.Equal(t, "#3b82f6", rm.NodeColor(13))
	assert.Equal(t, DefaultColor, rm.NodeColor(14), "locked milestones are grey")

	yearly, err := LoadFile("testdata/yearly.yaml")
	require.NoError(t, err)
	assert.Equal(t, "#ef4444", yearly.TopicColor(2), "without topics the milestone color is used")
}

func TestTrailMonthly(t *testing.T) {
	rm, err := LoadFile("testdata/monthly.yaml")
	require.NoError(t, err)

	opts := trail.SVGOptions{MaxPrecision: 3}
	tr := rm.Trail(trail.DefaultSmoother, opts)
	assert.True(t, strings.HasPrefix(tr.Path, "M 80,595 C "), tr.Path)
	assert.Equal(t, 30, strings.Count(tr.Path, "C "))
	require.Len(t, tr.Segments, 30)

	segs := trail.SegmentPathsSVG(rm.Waypoints(), opts)
	for i, seg := range tr.Segments {
		assert.Equal(t, i, seg.From)
		assert.Equal(t, i+1, seg.To)
		assert.Equal(t, segs[i], seg.Path)
	}
	// Segment i takes the topic of the milestone it leads to.
	assert.Equal(t, "#3b82f6", tr.Segments[0].Color)
	assert.Equal(t, "#3b82f6", tr.Segments[14].Color)
	assert.Equal(t, "#22c55e", tr.Segments[15].Color)
	assert.Equal(t, "#22c55e", tr.Segments[29].Color)

	require.NotNil(t, tr.Bounds)
	for _, pt := range rm.Waypoints() {
		assert.True(t, tr.Bounds.Contains(pt), "%s outside of %s", pt, tr.Bounds)
	}
	// The curve bulges past the outermost waypoints but stays near them.
	assert.LessOrEqual(t, tr.Bounds.X0, 60.0)
	assert.Greater(t, tr.Bounds.X0, 0.0)
}

func TestTrailDegenerate(t *testing.T) {
	rm, err := Parse([]byte(`milestones: [{title: Only, position: {x: 50, y: 50}}]`))
	require.NoError(t, err)
	tr := rm.Trail(trail.DefaultSmoother, trail.SVGOptions{})
	assert.Equal(t, "M 50,50", tr.Path)
	assert.Empty(t, tr.Segments)
	assert.Equal(t, &trail.Rect{X0: 50, Y0: 50, X1: 50, Y1: 50}, tr.Bounds)

	rm, err = Parse([]byte(`title: Empty`))
	require.NoError(t, err)
	tr = rm.Trail(trail.DefaultSmoother, trail.SVGOptions{})
	assert.Equal(t, "", tr.Path)
	assert.Empty(t, tr.Segments)
	assert.Nil(t, tr.Bounds)
}

func TestProgress(t *testing.T) {
	rm, err := LoadFile("testdata/monthly.yaml")
	require.NoError(t, err)
	p := rm.Progress()
	assert.Equal(t, 13, p.Completed)
	assert.Equal(t, 31, p.Total)
	assert.InDelta(t, 41.935, p.Percent, 0.001)

	assert.Equal(t, Progress{}, (&Roadmap{}).Progress())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"timeline", `timeline: weekly`, `unknown timeline "weekly"`},
		{"status", `milestones: [{position: {x: 1, y: 1}, status: skipped}]`, `unknown status "skipped"`},
		{"view box", `view_box: {width: -1, height: 10}`, "must be positive"},
		{"current", "current: 3\nmilestones: [{position: {x: 1, y: 1}}]", "current milestone 3 out of range"},
		{"position", `milestones: [{position: {x: .nan, y: 1}}]`, "is not finite"},
		{"topic order", "topics: [{label: A, start: 1, end: 0}]\nmilestones: [{position: {x: 1, y: 1}}, {position: {x: 2, y: 2}}]", "start 1 after end 0"},
		{"topic range", "topics: [{label: A, start: 0, end: 5}]\nmilestones: [{position: {x: 1, y: 1}}]", "outside of 1 milestones"},
		{"topic label", "topics: [{label: A, start: 0, end: 0}, {label: \" \", start: 1, end: 1}]\nmilestones: [{position: {x: 1, y: 1}}, {position: {x: 2, y: 2}}]", "topic 1: missing label"},
		{"overlap", "topics: [{label: A, start: 0, end: 1}, {label: B, start: 1, end: 1}]\nmilestones: [{position: {x: 1, y: 1}}, {position: {x: 2, y: 2}}]", `topic "B" overlaps topic "A"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "error %v doesn't wrap ErrInvalid", err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte(`unknown_field: 1`))
	assert.Error(t, err)

	_, err = Parse([]byte("title: A\n---\ntitle: B\n"))
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "more than one document")

	_, err = Parse([]byte("title: A\n---\n[unclosed\n"))
	assert.ErrorContains(t, err, "decode roadmap")

	_, err = LoadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
