package advanced

import "math"

// Axis aligned bounding box of a polygon's vertices.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// Computed fresh on every call. An empty polygon gets an inverted (empty) box.
func BoundsOf(poly *Polygon) BoundingBox {
	box := BoundingBox{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
	for _, p := range poly.vertices {
		box.MinX = math.Min(box.MinX, p.X)
		box.MinY = math.Min(box.MinY, p.Y)
		box.MaxX = math.Max(box.MaxX, p.X)
		box.MaxY = math.Max(box.MaxY, p.Y)
	}
	return box
}

// Inclusive on all four sides.
func (box BoundingBox) Contains(p Point) bool {
	return p.X >= box.MinX && p.X <= box.MaxX && p.Y >= box.MinY && p.Y <= box.MaxY
}

func (box BoundingBox) Width() float64  { return box.MaxX - box.MinX }
func (box BoundingBox) Height() float64 { return box.MaxY - box.MinY }

// The cheap rejection test run before ray casting.
func InBoundingBox(poly *Polygon, p Point) bool {
	return BoundsOf(poly).Contains(p)
}
