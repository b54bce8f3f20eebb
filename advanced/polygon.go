package advanced

// The fewest vertices a polygon can have.
const MinVertices = 3

// An ordered, implicitly closed list of vertices. The last vertex connects back
// to the first. Vertex order is significant: it defines the edges and the
// winding direction.
//
// A Polygon may be appended to while it is being built, but it must not be
// modified while any classification is running against it. Reads are safe to
// run concurrently.
type Polygon struct {
	vertices []Point
}

// Build a polygon from a list of vertices. The slice is copied.
func NewPolygon(vertices []Point) (*Polygon, error) {
	if len(vertices) < MinVertices {
		return nil, &InvalidPolygonError{Count: len(vertices)}
	}
	poly := &Polygon{vertices: make([]Point, len(vertices))}
	copy(poly.vertices, vertices)
	return poly, nil
}

// Add a vertex to the end of the list. There is no deduplication and no
// simplicity check; self-intersecting polygons are accepted, but their
// classification results are meaningless.
func (poly *Polygon) Append(p Point) {
	poly.vertices = append(poly.vertices, p)
}

func (poly *Polygon) VertexCount() int {
	return len(poly.vertices)
}

func (poly *Polygon) VertexAt(i int) Point {
	return poly.vertices[i]
}

// A copy of the vertex list.
func (poly *Polygon) Points() []Point {
	result := make([]Point, len(poly.vertices))
	copy(result, poly.vertices)
	return result
}

// The edge starting at vertex i, wrapping around at the end.
func (poly *Polygon) EdgeAt(i int) Edge {
	n := len(poly.vertices)
	return Edge{
		Start: poly.vertices[CircularIndex(i, n)],
		End:   poly.vertices[CircularIndex(i+1, n)],
	}
}

// All n edges, including the closing edge from the last vertex to the first.
// Recomputed on every call.
func (poly *Polygon) Edges() []Edge {
	edges := make([]Edge, len(poly.vertices))
	for i := range poly.vertices {
		edges[i] = poly.EdgeAt(i)
	}
	return edges
}

// The same polygon with the vertex order (and so the winding) flipped.
func (poly *Polygon) Reverse() *Polygon {
	newPoly := &Polygon{vertices: make([]Point, 0, len(poly.vertices))}
	for i := len(poly.vertices) - 1; i >= 0; i-- {
		newPoly.vertices = append(newPoly.vertices, poly.vertices[i])
	}
	return newPoly
}

// The same cyclic sequence starting at vertex k. Winding is preserved.
func (poly *Polygon) Rotate(k int) *Polygon {
	n := len(poly.vertices)
	newPoly := &Polygon{vertices: make([]Point, n)}
	for i := range newPoly.vertices {
		newPoly.vertices[i] = poly.vertices[CircularIndex(i+k, n)]
	}
	return newPoly
}
