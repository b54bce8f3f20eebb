package advanced

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Points per goroutine in ClassifyAll.
const batchSize = 1000

// Classify many points against one polygon. The direction is resolved once up
// front, so an ambiguous polygon only produces one warning, and then the points
// are split into chunks and classified concurrently. Results are in the same
// order as points.
//
// The polygon must not be modified until ClassifyAll returns. The only error
// is the context's.
func ClassifyAll(ctx context.Context, poly *Polygon, points []Point, direction Direction) ([]Classification, error) {
	results := make([]Classification, len(points))
	if poly.VertexCount() < MinVertices {
		return results, ctx.Err()
	}
	direction = ResolveDirection(poly, direction)
	bounds := BoundsOf(poly)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for start := 0; start < len(points); start += batchSize {
		start := start
		end := min(start+batchSize, len(points))
		group.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if !bounds.Contains(points[i]) {
					results[i] = Outside
					continue
				}
				results[i] = castRay(poly, points[i], direction)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
