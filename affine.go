package trail

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Points applies the transform to every point, returning a new slice.
func (aff Affine) Points(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = pt.Transform(aff)
	}
	return out
}
