package input

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/pointinpolygon/advanced"
)

// A classification session described in YAML. Vertices and points can be given
// inline, or as paths to files in any format Open understands. Relative paths
// are relative to the session file.
//
//	direction: anticlockwise
//	polygon: [[0, 0], [1, 0], [1, 1], [0, 1]]
//	points_file: points.csv
//	plot: out.png
type Session struct {
	Direction   string       `yaml:"direction"`
	Polygon     [][2]float64 `yaml:"polygon"`
	PolygonFile string       `yaml:"polygon_file"`
	Points      [][2]float64 `yaml:"points"`
	PointsFile  string       `yaml:"points_file"`
	Plot        string       `yaml:"plot"`

	dir string
}

// A session with everything loaded and checked.
type ResolvedSession struct {
	Polygon   *advanced.Polygon
	Points    []Point
	Direction advanced.Direction
	Plot      string
}

func LoadSession(path string) (*Session, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening session %q", path)
	}
	defer file.Close()

	session, err := DecodeSession(file)
	if err != nil {
		return nil, errors.Wrapf(err, "session %q", path)
	}
	session.dir = filepath.Dir(path)
	return session, nil
}

// Decode a session. Unknown keys are an error, so that typos don't silently
// drop settings.
func DecodeSession(r io.Reader) (*Session, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	session := &Session{}
	if err := decoder.Decode(session); err != nil {
		return nil, errors.Wrap(err, "yaml")
	}
	return session, nil
}

// Load any referenced files and build the polygon.
func (s *Session) Resolve() (*ResolvedSession, error) {
	direction, err := advanced.ParseDirection(s.Direction)
	if err != nil {
		return nil, err
	}

	vertices, err := s.collect(s.Polygon, s.PolygonFile)
	if err != nil {
		return nil, errors.Wrap(err, "polygon")
	}
	poly, err := advanced.NewPolygon(vertices)
	if err != nil {
		return nil, err
	}

	points, err := s.collect(s.Points, s.PointsFile)
	if err != nil {
		return nil, errors.Wrap(err, "points")
	}

	plot := s.Plot
	if plot != "" {
		plot = s.path(plot)
	}
	return &ResolvedSession{Polygon: poly, Points: points, Direction: direction, Plot: plot}, nil
}

// Inline pairs first, then anything in the file.
func (s *Session) collect(inline [][2]float64, file string) ([]Point, error) {
	points := make([]Point, 0, len(inline))
	for i, pair := range inline {
		if !finite(pair[0]) || !finite(pair[1]) {
			return nil, errors.Errorf("pair %d %v is not a finite point", i, pair)
		}
		points = append(points, Point{X: pair[0], Y: pair[1]})
	}
	if file != "" {
		filePoints, err := Open(s.path(file))
		if err != nil {
			return nil, err
		}
		points = append(points, filePoints...)
	}
	return points, nil
}

func (s *Session) path(p string) string {
	if filepath.IsAbs(p) || s.dir == "" {
		return p
	}
	return filepath.Join(s.dir, p)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
