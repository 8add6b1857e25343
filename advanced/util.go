package advanced

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func newTriangle(a, b, c int) Triangle {
	tri := Triangle{A: a, B: b, C: c}
	vertices := tri.Vertices()
	for i := range vertices {
		tri.Edges[i] = NewEdge(vertices[i], vertices[CircularIndex(i+1, len(vertices))])
	}
	return tri
}

func (t Triangle) Vertices() [3]int {
	return [3]int{t.A, t.B, t.C}
}

func (t Triangle) Has(i int) bool {
	return t.A == i || t.B == i || t.C == i
}

// A key that identifies the triangle's vertex set regardless of rotation or
// winding. Useful for comparing triangulations whose triangle order differs.
func (t Triangle) Key() [3]int {
	a, b, c := t.A, t.B, t.C
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return [3]int{a, b, c}
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Strict containment. Points on the boundary are not inside.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// Grow the rect by a fraction of its size on every side.
func (r Rect) Dilate(fraction float64) Rect {
	dx := r.Width() * fraction
	dy := r.Height() * fraction
	return Rect{
		Min: Point{r.Min.X - dx, r.Min.Y - dy},
		Max: Point{r.Max.X + dx, r.Max.Y + dy},
	}
}

// The smallest rect containing every point. The zero Rect for no points.
func BoundingRect(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r
}
