package advanced

import (
	"github.com/osuushi/pointinpolygon/internal/log"
)

// Direction assumed by Classify when WindingDirection can't decide.
const FallbackDirection = AntiClockwise

// Guess whether the vertices are listed clockwise or anticlockwise.
//
// This is a cheap heuristic, not a signed area computation. The vertex list is
// split at m = n/2, and if the mean Y of the second half is greater than the
// mean Y of the first half, the polygon is taken to be anticlockwise.
// Otherwise it is clockwise.
//
// The heuristic assumes the first vertex is no further right than vertex m. If
// that is not the case, an *AmbiguousWindingError is returned rather than a
// guess. Use ShoelaceDirection when a reliable answer is needed.
func WindingDirection(poly *Polygon) (Direction, error) {
	n := poly.VertexCount()
	if n < MinVertices {
		return Unknown, &InvalidPolygonError{Count: n}
	}
	m := n / 2
	first, middle := poly.VertexAt(0), poly.VertexAt(m)
	if first.X > middle.X {
		return Unknown, &AmbiguousWindingError{First: first, Middle: middle}
	}

	var firstSum, secondSum float64
	for i := 0; i < m; i++ {
		firstSum += poly.VertexAt(i).Y
	}
	for i := m; i < n; i++ {
		secondSum += poly.VertexAt(i).Y
	}
	if secondSum/float64(n-m) > firstSum/float64(m) {
		return AntiClockwise, nil
	}
	return Clockwise, nil
}

// Twice the signed area would do for the sign alone, but the real area is more
// useful to callers. Positive for anticlockwise polygons.
func SignedArea(poly *Polygon) float64 {
	var sum float64
	for _, edge := range poly.Edges() {
		sum += edge.Start.X*edge.End.Y - edge.End.X*edge.Start.Y
	}
	return sum / 2
}

// Winding direction by the shoelace formula. Unlike WindingDirection this is
// correct for every simple polygon, but it is not what Classify uses by
// default.
func ShoelaceDirection(poly *Polygon) (Direction, error) {
	n := poly.VertexCount()
	if n < MinVertices {
		return Unknown, &InvalidPolygonError{Count: n}
	}
	area := SignedArea(poly)
	switch {
	case area > 0:
		return AntiClockwise, nil
	case area < 0:
		return Clockwise, nil
	}
	return Unknown, &DegeneratePolygonError{Count: n}
}

// Turn a direction hint into a concrete direction. A known direction is
// returned as is. Unknown runs WindingDirection, and if that fails, logs a
// warning and returns FallbackDirection.
func ResolveDirection(poly *Polygon, direction Direction) Direction {
	if direction != Unknown {
		return direction
	}
	detected, err := WindingDirection(poly)
	if err == nil {
		return detected
	}
	fields := log.Fields{"fallback": FallbackDirection.String()}
	if ambiguous, ok := err.(*AmbiguousWindingError); ok {
		fields["first"] = ambiguous.First.String()
		fields["middle"] = ambiguous.Middle.String()
	}
	log.WithFields(fields).WithError(err).
		Warn("Could not detect polygon direction; results may be unreliable and should be checked manually")
	return FallbackDirection
}
