package advanced

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Point is a plain value; vertices and query points are both Points.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// An edge of a polygon. Edges are derived from the vertex list on demand and
// never stored.
type Edge struct {
	Start Point
	End   Point
}

func (e Edge) MinX() float64 { return min(e.Start.X, e.End.X) }
func (e Edge) MaxX() float64 { return max(e.Start.X, e.End.X) }
func (e Edge) MinY() float64 { return min(e.Start.Y, e.End.Y) }
func (e Edge) MaxY() float64 { return max(e.Start.Y, e.End.Y) }

func (e Edge) IsHorizontal() bool {
	return e.Start.Y == e.End.Y
}

func (e Edge) IsVertical() bool {
	return e.Start.X == e.End.X
}

func (e Edge) String() string {
	return fmt.Sprintf("[%s->%s]", e.Start, e.End)
}

// The order in which a polygon's vertices are listed. Unknown is accepted by
// Classify, which then works the direction out for itself, but it is never
// returned by a winding detector.
type Direction int

const (
	Unknown Direction = iota
	Clockwise
	AntiClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case AntiClockwise:
		return "AntiClockwise"
	default:
		return "Unknown"
	}
}

// Parse a user supplied direction hint. The empty string means Unknown.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unknown":
		return Unknown, nil
	case "clockwise", "cw":
		return Clockwise, nil
	case "anticlockwise", "counterclockwise", "ccw", "acw":
		return AntiClockwise, nil
	}
	return Unknown, errors.Errorf("unrecognized direction %q", s)
}

// Where a point sits relative to a polygon.
type Classification int

const (
	Outside Classification = iota
	Inside
	Boundary
)

func (c Classification) String() string {
	switch c {
	case Inside:
		return "Inside"
	case Boundary:
		return "Boundary"
	default:
		return "Outside"
	}
}
