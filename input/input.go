// Package input reads vertex and point lists from files. Whatever the format,
// anything that isn't a pair of finite numbers is skipped, so the classifier
// only ever sees well formed points.
package input

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/pointinpolygon/advanced"
)

type Point = advanced.Point

// Read points from a file, choosing the format by extension: .csv, .svg, or
// anything else as plain text.
func Open(path string) ([]Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer file.Close()

	var points []Point
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		points, err = ReadCSV(file)
	case ".svg":
		points, err = ReadSVG(file)
	default:
		points, err = ReadText(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return points, nil
}

// Like Open, but builds a polygon from the points.
func OpenPolygon(path string) (*advanced.Polygon, error) {
	points, err := Open(path)
	if err != nil {
		return nil, err
	}
	poly, err := advanced.NewPolygon(points)
	if err != nil {
		return nil, errors.Wrapf(err, "polygon from %q", path)
	}
	return poly, nil
}

// Parse a point from two fields. ok is false unless both are finite numbers.
func ParsePair(xField, yField string) (p Point, ok bool) {
	x, err := strconv.ParseFloat(strings.TrimSpace(xField), 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return Point{}, false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(yField), 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// Parse "x,y" or "x y" as typed by a person.
func ParsePoint(s string) (Point, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return Point{}, false
	}
	return ParsePair(fields[0], fields[1])
}
