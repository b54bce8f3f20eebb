// Package console runs an interactive classification session over a pair of
// streams: the user builds a polygon and a list of points, either from files or
// by typing them in, and gets each point classified.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/osuushi/pointinpolygon/advanced"
	"github.com/osuushi/pointinpolygon/input"
)

// Returned when the input runs out before the session is complete.
var ErrInputClosed = errors.New("input closed")

type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	au      aurora.Aurora

	// Loads points from a path. Defaults to input.Open.
	Open func(path string) ([]advanced.Point, error)
}

// Everything the user entered, plus the results.
type Result struct {
	Polygon   *advanced.Polygon
	Direction advanced.Direction
	Points    []advanced.Point
	Classes   []advanced.Classification
}

func NewSession(in io.Reader, out io.Writer, colour bool) *Session {
	return &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
		au:      aurora.NewAurora(colour),
		Open:    input.Open,
	}
}

func (s *Session) Run(ctx context.Context) (*Result, error) {
	s.say("Welcome to Point in Polygon.")
	s.say("First, let's create the polygon.")

	vertices, err := s.loadPoints("polygon")
	if err != nil {
		return nil, err
	}
	poly, err := advanced.NewPolygon(vertices)
	if err != nil {
		s.say(s.au.Red(fmt.Sprintf("Can't build a polygon: %v", err)).String())
		return nil, err
	}
	s.say(fmt.Sprintf("Polygon created with %d vertices.", poly.VertexCount()))

	direction, err := s.askDirection()
	if err != nil {
		return nil, err
	}

	s.say("")
	s.say("Now let's load the points to test against the polygon.")
	points, err := s.loadPoints("points")
	if err != nil {
		return nil, err
	}

	// Resolve once here so the user sees which direction was used
	if direction == advanced.Unknown {
		direction = advanced.ResolveDirection(poly, direction)
		s.say(fmt.Sprintf("Using %s direction.", direction))
	}
	classes, err := advanced.ClassifyAll(ctx, poly, points, direction)
	if err != nil {
		return nil, err
	}
	s.Report(points, classes)

	return &Result{Polygon: poly, Direction: direction, Points: points, Classes: classes}, nil
}

// Print one line per point and a summary.
func (s *Session) Report(points []advanced.Point, classes []advanced.Classification) {
	counts := map[advanced.Classification]int{}
	for i, p := range points {
		counts[classes[i]]++
		fmt.Fprintf(s.out, "%g %g %s\n", p.X, p.Y, s.Colour(classes[i]))
	}
	fmt.Fprintf(s.out, "%d inside, %d outside, %d on the boundary\n",
		counts[advanced.Inside], counts[advanced.Outside], counts[advanced.Boundary])
}

// The classification name in its plot colour.
func (s *Session) Colour(class advanced.Classification) aurora.Value {
	switch class {
	case advanced.Inside:
		return s.au.Green(class)
	case advanced.Boundary:
		return s.au.Blue(class)
	default:
		return s.au.Red(class)
	}
}

func (s *Session) say(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprintln(s.out, "")
	fmt.Fprintln(s.out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "read input")
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// Ask until one of the choices is given.
func (s *Session) choose(prompt string, choices ...string) (string, error) {
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return "", err
		}
		for _, choice := range choices {
			if answer == choice {
				return answer, nil
			}
		}
		s.say(fmt.Sprintf("Sorry, I didn't recognise that input. It should be one of %s.", strings.Join(choices, ", ")))
	}
}

func (s *Session) loadPoints(what string) ([]advanced.Point, error) {
	method, err := s.choose(
		fmt.Sprintf("Enter 1 to load the %s from a file (CSV, SVG or text), or 2 to enter them one by one.", what),
		"1", "2",
	)
	if err != nil {
		return nil, err
	}
	if method == "1" {
		return s.loadFromFile()
	}
	return s.loadManually()
}

func (s *Session) loadFromFile() ([]advanced.Point, error) {
	s.say("Rows that don't start with numeric x,y values are ignored.")
	for {
		path, err := s.ask("Enter the path of the file.")
		if err != nil {
			return nil, err
		}
		points, err := s.Open(path)
		if err != nil {
			s.say(fmt.Sprintf("Sorry, I couldn't load that file (%v). Please try again.", err))
			continue
		}
		s.say(fmt.Sprintf("Loaded %d points.", len(points)))
		return points, nil
	}
}

func (s *Session) loadManually() ([]advanced.Point, error) {
	var points []advanced.Point
	for {
		line, err := s.ask("Enter an x and y coordinate separated by a comma (eg. 1,2), or Q when you are done.")
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(line, "q") {
			return points, nil
		}
		p, ok := input.ParsePoint(line)
		if !ok {
			s.say("Sorry, that input wasn't what I was expecting. Please try again.")
			continue
		}
		points = append(points, p)
		s.say(fmt.Sprintf("Points so far: %v", points))
	}
}

func (s *Session) askDirection() (advanced.Direction, error) {
	s.say("If you know which direction the polygon was specified in, let me know.")
	s.say("(If you're not sure, I can work it out.)")
	answer, err := s.choose("Enter 1 for anticlockwise, 2 for clockwise, or 3 if you're not sure.", "1", "2", "3")
	if err != nil {
		return advanced.Unknown, err
	}
	switch answer {
	case "1":
		return advanced.AntiClockwise, nil
	case "2":
		return advanced.Clockwise, nil
	}
	return advanced.Unknown, nil
}
