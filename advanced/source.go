package advanced

// Point sources feed the Inserter when stepping without an explicit queue.

type PointSource interface {
	// The next point, or false when the source is exhausted.
	Next() (Point, bool)
}

type SliceSource struct {
	Points []Point
}

func (s *SliceSource) Next() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	p := s.Points[0]
	s.Points = s.Points[1:]
	return p, true
}

// Deterministic integer hash. Consecutive seeds give uncorrelated outputs, so
// a plain counter makes a usable pseudo-random sequence.
func KHash(state uint32) uint32 {
	state = (state ^ 2747636419) * 2654435769
	state = (state ^ (state >> 16)) * 2654435769
	state = (state ^ (state >> 16)) * 2654435769
	return state
}

// A value in [0, 1] derived from the seed.
func KRand(seed uint32) float64 {
	return float64(KHash(seed)) / 4294967295.0
}

// A value in [min, max] derived from the seed.
func KUniform(seed uint32, min, max float64) float64 {
	return min + KRand(seed)*(max-min)
}

// An endless, reproducible stream of points inside Bounds, driven by a counter
// hashed together with Seed. Inset shrinks the bounds by that fraction of
// their size on every side, so that points never land on the bootstrap hull.
// A zero Inset uses DefaultInset.
type HashSource struct {
	Seed   uint32
	Bounds Rect
	Inset  float64

	counter uint32
}

const DefaultInset = 1e-3

func NewHashSource(seed uint32, bounds Rect) *HashSource {
	return &HashSource{Seed: seed, Bounds: bounds}
}

func (s *HashSource) Next() (Point, bool) {
	inset := s.Inset
	if inset == 0 {
		inset = DefaultInset
	}
	r := s.Bounds.Dilate(-inset)

	// Two hashes per point, one per axis
	n := s.counter * 2
	s.counter++
	return Point{
		X: KUniform(s.Seed+n*489172373, r.Min.X, r.Max.X),
		Y: KUniform(s.Seed+(n+1)*489172373, r.Min.Y, r.Max.Y),
	}, true
}

// Take the next n points.
func (s *HashSource) Take(n int) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p, _ := s.Next()
		points = append(points, p)
	}
	return points
}
