// Package render draws a polygon and a set of classified points to an image,
// with each point coloured by its classification.
package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/pointinpolygon/advanced"
)

const (
	defaultSize  = 600
	padding      = 40
	legendHeight = 30
	pointRadius  = 4
)

type rgb struct{ r, g, b float64 }

var (
	polygonColour = rgb{0, 0.75, 0.75}
	pointColours  = map[advanced.Classification]rgb{
		advanced.Outside:  {0.85, 0, 0},
		advanced.Inside:   {0, 0.65, 0},
		advanced.Boundary: {0, 0, 0.85},
	}
	legendOrder = []advanced.Classification{advanced.Outside, advanced.Inside, advanced.Boundary}
)

type Options struct {
	// Length in pixels of the longer side of the plotted area. Defaults to 600.
	Size int
}

// A drawn plot. The context keeps the world to pixel transform, so points can
// be projected after drawing.
type Plot struct {
	c *gg.Context
}

// Draw the polygon outline and the points. classes must be the same length as
// points.
func Draw(poly *advanced.Polygon, points []advanced.Point, classes []advanced.Classification, opts Options) (*Plot, error) {
	if len(points) != len(classes) {
		return nil, errors.Errorf("render: %d points but %d classifications", len(points), len(classes))
	}
	size := opts.Size
	if size <= 0 {
		size = defaultSize
	}

	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, list := range [][]advanced.Point{poly.Points(), points} {
		for _, p := range list {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	// Don't divide by zero for degenerate extents
	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 {
		extent = 1
	}
	scale := float64(size) / extent

	width := int(math.Round(scale*(maxX-minX))) + padding*2
	height := int(math.Round(scale*(maxY-minY))) + padding*2 + legendHeight
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(padding, padding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	plot := &Plot{c: c}
	plot.drawPolygon(poly)
	for i, p := range points {
		plot.drawPoint(p, pointColours[classes[i]])
	}
	plot.drawLegend()
	return plot, nil
}

func (plot *Plot) drawPolygon(poly *advanced.Polygon) {
	c := plot.c
	if poly.VertexCount() == 0 {
		return
	}
	first := poly.VertexAt(0)
	c.MoveTo(first.X, first.Y)
	for i := 1; i < poly.VertexCount(); i++ {
		p := poly.VertexAt(i)
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetLineWidth(2)
	c.SetRGB(polygonColour.r, polygonColour.g, polygonColour.b)
	c.Stroke()
}

// Points are drawn in pixel space so they stay the same size at any scale.
func (plot *Plot) drawPoint(p advanced.Point, colour rgb) {
	c := plot.c
	x, y := plot.Project(p)
	c.Push()
	c.Identity()
	c.DrawCircle(x, y, pointRadius)
	c.SetRGB(colour.r, colour.g, colour.b)
	c.Fill()
	c.Pop()
}

func (plot *Plot) drawLegend() {
	c := plot.c
	c.Push()
	c.Identity()
	x := float64(padding)
	y := float64(legendHeight) / 2
	for _, class := range legendOrder {
		colour := pointColours[class]
		c.DrawCircle(x, y, pointRadius)
		c.SetRGB(colour.r, colour.g, colour.b)
		c.Fill()
		c.SetRGB(0, 0, 0)
		label := class.String()
		c.DrawStringAnchored(label, x+pointRadius*2, y, 0, 0.5)
		w, _ := c.MeasureString(label)
		x += w + pointRadius*2 + 20
	}
	c.SetRGB(polygonColour.r, polygonColour.g, polygonColour.b)
	c.SetLineWidth(2)
	c.DrawLine(x-pointRadius, y, x+pointRadius*2, y)
	c.Stroke()
	c.SetRGB(0, 0, 0)
	c.DrawStringAnchored("Polygon", x+pointRadius*3, y, 0, 0.5)
	c.Pop()
}

// Pixel coordinates of a point in world space.
func (plot *Plot) Project(p advanced.Point) (x, y float64) {
	return plot.c.TransformPoint(p.X, p.Y)
}

func (plot *Plot) Image() image.Image {
	return plot.c.Image()
}

func (plot *Plot) EncodePNG(w io.Writer) error {
	return errors.Wrap(plot.c.EncodePNG(w), "encode png")
}

func (plot *Plot) SavePNG(path string) error {
	return errors.Wrapf(plot.c.SavePNG(path), "save png %q", path)
}

// Print the plot inline in the terminal (iTerm only).
func (plot *Plot) Display(w io.Writer) error {
	return errors.Wrap(imgcat.CatImage(plot.c.Image(), w), "imgcat")
}
