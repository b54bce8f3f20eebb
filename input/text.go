package input

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/osuushi/pointinpolygon/internal/log"
)

// Read newline separated points in the form "x y" (or "x,y"), with each
// polygon separated by one or more blank lines. Lines that aren't a point are
// skipped.
func ReadPolygons(r io.Reader) ([][]Point, error) {
	polygons := [][]Point{}
	scanner := bufio.NewScanner(r)
	points := []Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		// If it's empty, and we collected any points, this is the end of the polygon
		if isBlank(line) {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = []Point{}
			}
			continue
		}

		point, ok := ParsePoint(line)
		if !ok {
			log.WithFields(log.Fields{"line": lineNumber, "text": line}).Debug("Skipping line without x,y values")
			continue
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

// All the points in a text file, ignoring polygon breaks.
func ReadText(r io.Reader) ([]Point, error) {
	polygons, err := ReadPolygons(r)
	if err != nil {
		return nil, err
	}
	var points []Point
	for _, polygon := range polygons {
		points = append(points, polygon...)
	}
	return points, nil
}

func isBlank(line string) bool {
	for _, r := range line {
		if r != ' ' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}
