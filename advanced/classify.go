package advanced

import (
	"github.com/osuushi/pointinpolygon/dbg"
	"github.com/osuushi/pointinpolygon/internal/log"
)

// Slope of a line, with an explicit flag for vertical lines so that we never
// divide by zero. A vertical gradient compares greater than every finite
// gradient, and equal to any other vertical gradient.
type gradient struct {
	vertical bool
	slope    float64
}

// Slope of the line through a and b.
func gradientBetween(a, b Point) gradient {
	along := a.X - b.X
	if along == 0 {
		return gradient{vertical: true}
	}
	return gradient{slope: (a.Y - b.Y) / along}
}

// Exact, with no tolerance. A point has to be precisely collinear with an edge
// to count as on the boundary.
func (g gradient) equal(other gradient) bool {
	if g.vertical || other.vertical {
		return g.vertical == other.vertical
	}
	return g.slope == other.slope
}

func (g gradient) less(other gradient) bool {
	if g.vertical {
		return false
	}
	if other.vertical {
		return true
	}
	return g.slope < other.slope
}

// Cast a horizontal ray rightwards from p and decide whether it crosses edge,
// and whether p lies on it. The rules are tried in order and the first match
// wins. The reason is only used for tracing.
func castAgainstEdge(edge Edge, p Point, direction Direction) (crosses, boundary bool, reason string) {
	// The ray at p.Y can't reach an edge that is entirely above or below it
	if p.Y > edge.MaxY() || p.Y < edge.MinY() {
		return false, false, "out of y range"
	}
	// Directly left of a horizontal edge at the same height
	if p.X < edge.MinX() && p.Y == edge.Start.Y && p.Y == edge.End.Y {
		return true, false, "left of horizontal edge"
	}
	// Entirely right of the edge, so the ray moves away from it
	if p.X > edge.MaxX() {
		return false, false, "right of edge"
	}
	// Level with the top vertex. The crossing at that vertex is counted by the
	// adjacent edge, so that shared vertices aren't counted twice.
	if p.Y == edge.MaxY() && p.X < edge.MinX() {
		return false, false, "level with top vertex"
	}
	// Left of the edge and between its y extremes, so the ray must cross
	if p.X < edge.MinX() {
		return true, false, "left of edge"
	}

	// The point is inside the edge's bounding box. Compare the slope of the edge
	// with the slope of the line from the edge's end vertex to the point.
	lineGradient := gradientBetween(edge.Start, edge.End)
	pointGradient := gradientBetween(p, edge.End)

	boundary = lineGradient.equal(pointGradient)
	switch direction {
	case AntiClockwise:
		crosses = lineGradient.less(pointGradient)
	case Clockwise:
		crosses = pointGradient.less(lineGradient)
	}
	return crosses, boundary, "gradient test"
}

// Classify a point against a polygon by ray casting.
//
// Points outside the polygon's bounding box are reported Outside without
// looking at any edges. If direction is Unknown, it is resolved with
// ResolveDirection first. A point collinear with any edge and within its span
// is reported as Boundary, regardless of the crossing count.
//
// Polygons with fewer than MinVertices vertices contain nothing. Results for
// self-intersecting polygons, or polygons with repeated or all-collinear
// vertices, are not meaningful.
func Classify(poly *Polygon, p Point, direction Direction) Classification {
	if poly.VertexCount() < MinVertices || !InBoundingBox(poly, p) {
		return Outside
	}
	return castRay(poly, p, ResolveDirection(poly, direction))
}

// The edge by edge pass, with the direction already resolved.
func castRay(poly *Polygon, p Point, direction Direction) Classification {
	tracing := log.IsTrace()
	var name string
	if tracing {
		name = dbg.Name(poly)
	}

	crossings := 0
	onBoundary := false
	for i, edge := range poly.Edges() {
		crosses, boundary, reason := castAgainstEdge(edge, p, direction)
		if crosses {
			crossings++
		}
		if boundary {
			onBoundary = true
		}
		if tracing {
			log.WithFields(log.Fields{
				"polygon":   name,
				"edge":      i,
				"point":     p.String(),
				"crossings": crossings,
			}).Trace(reason)
		}
	}

	if onBoundary {
		return Boundary
	}
	if crossings%2 == 1 {
		return Inside
	}
	return Outside
}
