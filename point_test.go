package trail

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(0, 0).Lerp(Pt(10, -10), 0.5), Pt(5, -5))
}

func TestVecAngle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{Vec(0, 0), 0},
		{Vec(1, 0), 0},
		{Vec(0, 1), math.Pi / 2},
		{Vec(-1, 0), math.Pi},
		{Vec(-1, math.Copysign(0, -1)), math.Pi},
		{Vec(0, -1), -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); got != tt.want {
			t.Errorf("%s.Angle() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVecFromAngle(t *testing.T) {
	const epsilon = 1e-12
	assertNear(t, Point(VecFromAngle(0)), Pt(1, 0), epsilon)
	assertNear(t, Point(VecFromAngle(math.Pi/2)), Pt(0, 1), epsilon)
	assertNear(t, Point(VecFromAngle(math.Pi)), Pt(-1, 0), epsilon)
}
