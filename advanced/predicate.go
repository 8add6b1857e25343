package advanced

import "github.com/go-gl/mathgl/mgl64"

// Geometric predicates. These are plain floating point tests with no epsilon
// and no exact arithmetic fallback. For collinear or cocircular input the
// determinant is near zero and its sign is whatever rounding makes it.

// Reports whether p lies strictly inside the circle through a, b and c, which
// must be in counterclockwise order. Each point is lifted onto the paraboloid
// as (x, y, x²+y², 1) and the sign of the 4x4 determinant of the rows
// [a, b, c, p] decides.
func InCircumcircle(p, a, b, c Point) bool {
	// mgl64 matrices are column major, so this literal is the transpose of the
	// row layout above. The determinant is the same.
	m := mgl64.Mat4{
		a.X, a.Y, a.X*a.X + a.Y*a.Y, 1,
		b.X, b.Y, b.X*b.X + b.Y*b.Y, 1,
		c.X, c.Y, c.X*c.X + c.Y*c.Y, 1,
		p.X, p.Y, p.X*p.X + p.Y*p.Y, 1,
	}
	return m.Det() > 0
}

// Twice the signed area of the triangle a, b, c. Positive when the points
// wind counterclockwise, negative when clockwise, zero when collinear.
func Orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func IsCCW(a, b, c Point) bool {
	return Orientation(a, b, c) > 0
}

func IsCW(a, b, c Point) bool {
	return Orientation(a, b, c) < 0
}
