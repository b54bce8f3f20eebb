package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/osuushi/pointinpolygon/advanced"
	"github.com/osuushi/pointinpolygon/console"
	"github.com/osuushi/pointinpolygon/input"
	"github.com/osuushi/pointinpolygon/internal/log"
	"github.com/osuushi/pointinpolygon/render"
)

type app struct {
	in     io.Reader
	out    io.Writer
	colour bool
}

type classifyOptions struct {
	polygonPath string
	pointsPath  string
	direction   string
	plotPath    string
	inline      bool
	size        int
}

func (a *app) classify(ctx context.Context, opts classifyOptions) error {
	direction, err := advanced.ParseDirection(opts.direction)
	if err != nil {
		return err
	}
	poly, err := input.OpenPolygon(opts.polygonPath)
	if err != nil {
		return err
	}
	points, err := input.Open(opts.pointsPath)
	if err != nil {
		return err
	}
	return a.classifyAndReport(ctx, poly, points, direction, opts)
}

func (a *app) session(ctx context.Context, path string, opts classifyOptions) error {
	session, err := input.LoadSession(path)
	if err != nil {
		return err
	}
	resolved, err := session.Resolve()
	if err != nil {
		return err
	}
	if opts.plotPath == "" {
		opts.plotPath = resolved.Plot
	}
	return a.classifyAndReport(ctx, resolved.Polygon, resolved.Points, resolved.Direction, opts)
}

func (a *app) classifyAndReport(ctx context.Context, poly *advanced.Polygon, points []advanced.Point, direction advanced.Direction, opts classifyOptions) error {
	log.WithFields(log.Fields{
		"vertices":  poly.VertexCount(),
		"points":    len(points),
		"direction": direction.String(),
	}).Info("Classifying")

	classes, err := advanced.ClassifyAll(ctx, poly, points, direction)
	if err != nil {
		return err
	}
	console.NewSession(a.in, a.out, a.colour).Report(points, classes)
	return a.plot(poly, points, classes, opts)
}

func (a *app) winding(path string, shoelace bool) error {
	poly, err := input.OpenPolygon(path)
	if err != nil {
		return err
	}
	detect := advanced.WindingDirection
	if shoelace {
		detect = advanced.ShoelaceDirection
	}
	direction, err := detect(poly)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, direction)
	return nil
}

func (a *app) interactive(ctx context.Context, opts classifyOptions) error {
	result, err := console.NewSession(a.in, a.out, a.colour).Run(ctx)
	if err != nil {
		return err
	}
	return a.plot(result.Polygon, result.Points, result.Classes, opts)
}

func (a *app) plot(poly *advanced.Polygon, points []advanced.Point, classes []advanced.Classification, opts classifyOptions) error {
	if opts.plotPath == "" && !opts.inline {
		return nil
	}
	plot, err := render.Draw(poly, points, classes, render.Options{Size: opts.size})
	if err != nil {
		return err
	}
	if opts.plotPath != "" {
		if err := plot.SavePNG(opts.plotPath); err != nil {
			return err
		}
		log.WithField("path", opts.plotPath).Info("Saved plot")
	}
	if opts.inline {
		return errors.Wrap(plot.Display(a.out), "display plot")
	}
	return nil
}
