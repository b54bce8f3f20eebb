package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/pointinpolygon/advanced"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
	}
	return dir
}

func TestClassifyCommand(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"trapezoid.txt": "0 0\n4 0\n4 2\n2 2\n",
		"points.csv":    "x,y\n3,1\n1,2\n1,1\n",
	})
	var out bytes.Buffer
	cli := &app{out: &out}
	plotPath := filepath.Join(dir, "plot.png")
	err := cli.classify(context.Background(), classifyOptions{
		polygonPath: filepath.Join(dir, "trapezoid.txt"),
		pointsPath:  filepath.Join(dir, "points.csv"),
		direction:   "unknown",
		plotPath:    plotPath,
		size:        100,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"3 1 Inside",
		"1 2 Outside",
		"1 1 Boundary",
		"1 inside, 1 outside, 1 on the boundary",
	}, lines)
	assert.FileExists(t, plotPath)
}

func TestClassifyCommandErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"line.txt":   "0 0\n1 1\n",
		"points.csv": "1,1\n",
	})
	cli := &app{out: &bytes.Buffer{}}

	err := cli.classify(context.Background(), classifyOptions{
		polygonPath: filepath.Join(dir, "line.txt"),
		pointsPath:  filepath.Join(dir, "points.csv"),
	})
	assert.True(t, errors.Is(err, advanced.ErrInvalidPolygon))

	err = cli.classify(context.Background(), classifyOptions{direction: "sideways"})
	assert.Error(t, err)
}

func TestWindingCommand(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"square.txt":  "0 0\n1 0\n1 1\n0 1\n",
		"rotated.txt": "1 0\n1 1\n0 1\n0 0\n",
	})

	var out bytes.Buffer
	cli := &app{out: &out}
	require.NoError(t, cli.winding(filepath.Join(dir, "square.txt"), false))
	assert.Equal(t, "AntiClockwise\n", out.String())

	err := cli.winding(filepath.Join(dir, "rotated.txt"), false)
	assert.True(t, errors.Is(err, advanced.ErrAmbiguousWinding))

	out.Reset()
	require.NoError(t, cli.winding(filepath.Join(dir, "rotated.txt"), true))
	assert.Equal(t, "AntiClockwise\n", out.String())
}

func TestSessionCommand(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"session.yaml": "direction: clockwise\npolygon: [[0, 0], [0, 1], [1, 1], [1, 0]]\npoints: [[0.5, 0.5], [3, 3]]\nplot: out.png\n",
	})
	var out bytes.Buffer
	cli := &app{out: &out}
	require.NoError(t, cli.session(context.Background(), filepath.Join(dir, "session.yaml"), classifyOptions{size: 50}))
	assert.Contains(t, out.String(), "0.5 0.5 Inside")
	assert.Contains(t, out.String(), "3 3 Outside")
	assert.FileExists(t, filepath.Join(dir, "out.png"))
}

func TestInteractiveCommand(t *testing.T) {
	var out bytes.Buffer
	cli := &app{
		in:  strings.NewReader("2\n0,0\n1,0\n1,1\n0,1\nq\n1\n2\n0.5,0.5\nq\n"),
		out: &out,
	}
	require.NoError(t, cli.interactive(context.Background(), classifyOptions{}))
	assert.Contains(t, out.String(), "0.5 0.5 Inside")
}
