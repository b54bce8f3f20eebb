package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/pointinpolygon/advanced"
)

func run(t *testing.T, script ...string) (*Result, string, error) {
	t.Helper()
	var out bytes.Buffer
	session := NewSession(strings.NewReader(strings.Join(script, "\n")+"\n"), &out, false)
	session.Open = func(path string) ([]advanced.Point, error) {
		if path != "square.csv" {
			return nil, errors.Errorf("no such file %q", path)
		}
		return []advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, nil
	}
	result, err := session.Run(context.Background())
	return result, out.String(), err
}

func TestManualSession(t *testing.T) {
	// An unknown menu choice, a manual polygon with one bad line, a clockwise
	// direction (wrong, but the user said so), then manual points.
	result, out, err := run(t,
		"5",
		"2", "0,0", "4,0", "nonsense", "4,2", "2,2", "q",
		"2",
		"2", "3,1", "10,10", "q",
	)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Polygon.VertexCount())
	assert.Equal(t, advanced.Clockwise, result.Direction)
	assert.Equal(t, []advanced.Point{{X: 3, Y: 1}, {X: 10, Y: 10}}, result.Points)
	require.Len(t, result.Classes, 2)
	assert.Equal(t, advanced.Outside, result.Classes[1])

	assert.Contains(t, out, "Sorry, I didn't recognise that input")
	assert.Contains(t, out, "Sorry, that input wasn't what I was expecting")
	assert.Contains(t, out, "10 10 Outside")
}

func TestFileSession(t *testing.T) {
	// Polygon from a file after one bad path, direction not known.
	result, out, err := run(t,
		"1", "missing.csv", "square.csv",
		"3",
		"2", "0.5,0.5", "0.5,0", "2,2", "Q",
	)
	require.NoError(t, err)

	assert.Equal(t, advanced.AntiClockwise, result.Direction)
	assert.Equal(t, []advanced.Classification{advanced.Inside, advanced.Boundary, advanced.Outside}, result.Classes)
	assert.Contains(t, out, "couldn't load that file")
	assert.Contains(t, out, "Using AntiClockwise direction.")
	assert.Contains(t, out, "1 inside, 1 outside, 1 on the boundary")
}

func TestSessionInvalidPolygon(t *testing.T) {
	_, out, err := run(t, "2", "0,0", "1,1", "q")
	assert.True(t, errors.Is(err, advanced.ErrInvalidPolygon))
	assert.Contains(t, out, "Can't build a polygon")
}

func TestSessionInputClosed(t *testing.T) {
	_, _, err := run(t, "2", "0,0")
	assert.Equal(t, ErrInputClosed, err)
}

func TestColour(t *testing.T) {
	session := NewSession(strings.NewReader(""), &bytes.Buffer{}, true)
	assert.Contains(t, session.Colour(advanced.Inside).String(), "Inside")
	assert.Contains(t, session.Colour(advanced.Inside).String(), "\x1b[")

	plain := NewSession(strings.NewReader(""), &bytes.Buffer{}, false)
	assert.Equal(t, "Boundary", plain.Colour(advanced.Boundary).String())
}
