package input

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read the vertices of the first <polygon> (or, failing that, <polyline>) in
// an SVG document. This is not a full SVG parser: transforms and other shapes
// are ignored. Note that SVG's Y axis points down, so a polygon that looks
// anticlockwise in a viewer is listed clockwise.
func ReadSVG(r io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "svg")
	}

	var shape *svgparser.Element
	for _, name := range []string{"polygon", "polyline"} {
		if found := root.FindAll(name); len(found) > 0 {
			shape = found[0]
			break
		}
	}
	if shape == nil {
		return nil, errors.New("svg: no polygon or polyline element")
	}

	return parseSVGPoints(shape.Attributes["points"])
}

// SVG allows any mix of commas and whitespace between coordinates.
func parseSVGPoints(attr string) ([]Point, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("svg: odd number of coordinates in points %q", attr)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		p, ok := ParsePair(fields[i], fields[i+1])
		if !ok {
			return nil, errors.Errorf("svg: invalid point %q,%q", fields[i], fields[i+1])
		}
		points = append(points, p)
	}
	return points, nil
}
