package trail_test

import (
	"fmt"

	"github.com/roadmapkit/trail"
)

func ExampleSmoothPathSVG() {
	pts := []trail.Point{trail.Pt(0, 0), trail.Pt(10, 0), trail.Pt(10, 10)}
	fmt.Println(trail.SmoothPathSVG(pts, trail.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M 0,0 C 2,0 8,-2 10,0 C 12,2 10,8 10,10
}

func ExampleSegmentPathsSVG() {
	pts := []trail.Point{trail.Pt(0, 0), trail.Pt(10, 0), trail.Pt(10, 10)}
	colors := []string{"#3b82f6", "#22c55e"}
	for i, d := range trail.SegmentPathsSVG(pts, trail.SVGOptions{MaxPrecision: 3}) {
		fmt.Printf("<path d=%q stroke=%q />\n", d, colors[i])
	}
	// Output:
	// <path d="M 0,0 C 2,0 8,-2 10,0" stroke="#3b82f6" />
	// <path d="M 10,0 C 12,2 10,8 10,10" stroke="#22c55e" />
}

func ExampleParseWaypoints() {
	pts, err := trail.ParseWaypoints("0,0|4,0")
	if err != nil {
		panic(err)
	}
	fmt.Println(trail.SmoothPathSVG(pts, trail.SVGOptions{MaxPrecision: 3}))
	// Output:
	// M 0,0 C 0.8,0 3.2,0 4,0
}
