package trail

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineMetrics(t *testing.T) {
	tests := []struct {
		a, b Point
		want LineMetrics
	}{
		{Pt(0, 0), Pt(10, 0), LineMetrics{Length: 10, Angle: 0}},
		{Pt(0, 0), Pt(0, 10), LineMetrics{Length: 10, Angle: math.Pi / 2}},
		{Pt(10, 0), Pt(0, 0), LineMetrics{Length: 10, Angle: math.Pi}},
		{Pt(1, 1), Pt(4, -3), LineMetrics{Length: 5, Angle: math.Atan2(-4, 3)}},
		{Pt(2, 2), Pt(2, 2), LineMetrics{Length: 0, Angle: 0}},
	}
	for _, tt := range tests {
		got := Metrics(tt.a, tt.b)
		diff(t, tt.want, got, cmpopts.EquateApprox(0, 1e-12))
		if got.Length < 0 || got.Angle <= -math.Pi || got.Angle > math.Pi {
			t.Errorf("Metrics(%s, %s) = %+v out of range", tt.a, tt.b, got)
		}
	}
}

func TestLineEval(t *testing.T) {
	l := Line{Pt(0, 0), Pt(4, 2)}
	diff(t, Pt(2, 1), l.Eval(0.5))
	diff(t, Pt(4, 2), l.Eval(1))
}
