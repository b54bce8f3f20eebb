package pointinpolygon

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestClassify(t *testing.T) {
	square, err := NewPolygon(
		Point{X: 0, Y: 0},
		Point{X: 1, Y: 0},
		Point{X: 1, Y: 1},
		Point{X: 0, Y: 1},
	)
	require.NoError(t, err)

	direction, err := WindingDirection(square)
	require.NoError(t, err)
	assert.Equal(t, AntiClockwise, direction)

	assert.Equal(t, Inside, Classify(square, Point{X: 0.5, Y: 0.5}, Unknown))
	assert.Equal(t, Outside, Classify(square, Point{X: 2, Y: 2}, Unknown))
	assert.Equal(t, Boundary, Classify(square, Point{X: 0.5, Y: 0}, direction))

	results, err := ClassifyAll(context.Background(), square, []Point{{X: 0.5, Y: 0.5}, {X: 1, Y: 0.5}, {X: 3, Y: 0}}, Unknown)
	require.NoError(t, err)
	assert.Equal(t, []Classification{Inside, Boundary, Outside}, results)
}

func TestNewPolygonInvalid(t *testing.T) {
	_, err := NewPolygon(Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	assert.True(t, errors.Is(err, ErrInvalidPolygon))
}
