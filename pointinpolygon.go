// A point-in-polygon classifier for Go.
//
// Points are classified as Inside, Outside or on the Boundary of a simple
// polygon by casting a horizontal ray and counting the edges it crosses. Points
// exactly on an edge are detected as Boundary. The polygon's winding direction
// decides how crossings near the test point are counted; if you don't know it,
// pass Unknown and it will be guessed.
//
// The advanced package exposes the pieces (bounding boxes, winding detection,
// edges) for callers who need them.
package pointinpolygon

import (
	"context"

	"github.com/osuushi/pointinpolygon/advanced"
)

type Point = advanced.Point
type Polygon = advanced.Polygon
type Direction = advanced.Direction
type Classification = advanced.Classification

const (
	Unknown       = advanced.Unknown
	Clockwise     = advanced.Clockwise
	AntiClockwise = advanced.AntiClockwise

	Inside   = advanced.Inside
	Outside  = advanced.Outside
	Boundary = advanced.Boundary
)

var (
	ErrInvalidPolygon    = advanced.ErrInvalidPolygon
	ErrAmbiguousWinding  = advanced.ErrAmbiguousWinding
	ErrDegeneratePolygon = advanced.ErrDegeneratePolygon
)

// Build a polygon from (x, y) pairs. At least three are required.
func NewPolygon(vertices ...Point) (*Polygon, error) {
	return advanced.NewPolygon(vertices)
}

// Guess the winding direction of a polygon. Fails with ErrAmbiguousWinding
// when the polygon's first vertex is right of its middle vertex.
func WindingDirection(poly *Polygon) (Direction, error) {
	return advanced.WindingDirection(poly)
}

// Classify a point. Pass Unknown if you don't know the polygon's direction.
func Classify(poly *Polygon, p Point, direction Direction) Classification {
	return advanced.Classify(poly, p, direction)
}

// Classify many points at once, concurrently.
func ClassifyAll(ctx context.Context, poly *Polygon, points []Point, direction Direction) ([]Classification, error) {
	return advanced.ClassifyAll(ctx, poly, points, direction)
}
