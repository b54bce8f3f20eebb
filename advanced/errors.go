package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinels for errors.Is. The typed errors below carry the details.
var (
	ErrInvalidPolygon    = errors.New("invalid polygon")
	ErrAmbiguousWinding  = errors.New("ambiguous winding")
	ErrDegeneratePolygon = errors.New("degenerate polygon")
)

// Returned when a polygon is built from fewer than three vertices.
type InvalidPolygonError struct {
	Count int
}

func (e *InvalidPolygonError) Error() string {
	return fmt.Sprintf("invalid polygon: need at least %d vertices, got %d", MinVertices, e.Count)
}

func (e *InvalidPolygonError) Is(target error) bool {
	return target == ErrInvalidPolygon
}

// Returned by WindingDirection when the first vertex lies to the right of the
// middle vertex. The heuristic has nothing to say about such polygons, so the
// caller has to decide (Classify falls back to AntiClockwise).
type AmbiguousWindingError struct {
	First, Middle Point
}

func (e *AmbiguousWindingError) Error() string {
	return fmt.Sprintf(
		"ambiguous winding: first vertex %s is right of middle vertex %s; inspect the polygon manually to decide the direction",
		e.First, e.Middle,
	)
}

func (e *AmbiguousWindingError) Is(target error) bool {
	return target == ErrAmbiguousWinding
}

// Returned by ShoelaceDirection when the polygon encloses no area.
type DegeneratePolygonError struct {
	Count int
}

func (e *DegeneratePolygonError) Error() string {
	return fmt.Sprintf("degenerate polygon: %d vertices enclose zero area", e.Count)
}

func (e *DegeneratePolygonError) Is(target error) bool {
	return target == ErrDegeneratePolygon
}
