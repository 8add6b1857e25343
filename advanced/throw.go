package advanced

import "github.com/pkg/errors"

// Every engine operation is a synchronous transformation of explicit state,
// and a failure always means the caller broke a contract. Rather than thread
// errors through every phase, the engine panics with a *DelaunayError, and the
// public API recovers to convert it back into an error. Foreign panics pass
// through untouched.

var (
	// The new point lies outside the triangulated region, so no triangle's
	// circumcircle contains it. Enlarge the bootstrap bounds instead.
	ErrOutsideTriangulation = errors.New("point is outside the triangulation")

	ErrDegenerateEdge  = errors.New("degenerate edge")
	ErrRemoveOrder     = errors.New("triangle indices must be strictly descending")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNoPendingPoint  = errors.New("no pending point to insert")
	ErrCycleInProgress = errors.New("an insertion cycle is already in progress")
	ErrNotManifold     = errors.New("triangulation is not manifold")
	ErrNotDelaunay     = errors.New("triangulation is not delaunay")
)

type DelaunayError struct {
	err error
}

func (e *DelaunayError) Error() string {
	return e.err.Error()
}

func (e *DelaunayError) Unwrap() error {
	return e.err
}

// Panic with a DelaunayError wrapping the given sentinel.
func fatalf(sentinel error, format string, args ...interface{}) {
	panic(&DelaunayError{errors.Wrapf(sentinel, format, args...)})
}

func HandleDelaunayPanicRecover(r interface{}) error {
	if r != nil {
		if delaunayError, ok := r.(*DelaunayError); ok {
			return delaunayError
		}
		panic(r)
	}
	return nil
}
