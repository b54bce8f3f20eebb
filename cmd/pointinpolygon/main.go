// Command pointinpolygon classifies points against a polygon.
//
// Vertices and points can be read from CSV, SVG, or plain text files with one
// "x y" pair per line. Results are printed one point per line, and can also be
// plotted to a PNG.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/pointinpolygon/internal/log"
)

func main() {
	// Settings can come from a .env file, but it's fine if there isn't one
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "loading .env:", err)
		os.Exit(1)
	}

	a := kingpin.New("pointinpolygon", "Classify points as inside, outside, or on the boundary of a polygon.")
	logLevel := a.Flag("log-level", "Log level.").Default("warn").Envar("PIP_LOG_LEVEL").
		Enum("trace", "debug", "info", "warn", "error")
	logFormat := a.Flag("log-format", "Log format.").Default("text").Envar("PIP_LOG_FORMAT").Enum("text", "json")
	logOutput := a.Flag("log-output", "stderr, stdout, none, or a file path.").Default("stderr").Envar("PIP_LOG_OUTPUT").String()
	noColour := a.Flag("no-colour", "Don't colour the output.").Envar("PIP_NO_COLOUR").Bool()

	classifyCmd := a.Command("classify", "Classify every point in a file against a polygon.")
	classifyOpts := classifyOptions{}
	classifyCmd.Arg("polygon", "File with the polygon's vertices.").Required().ExistingFileVar(&classifyOpts.polygonPath)
	classifyCmd.Arg("points", "File with the points to classify.").Required().ExistingFileVar(&classifyOpts.pointsPath)
	classifyCmd.Flag("direction", "Winding direction of the polygon: clockwise, anticlockwise, or unknown to detect it.").
		Short('d').Default("unknown").Envar("PIP_DIRECTION").StringVar(&classifyOpts.direction)
	addPlotFlags(classifyCmd, &classifyOpts)

	windingCmd := a.Command("winding", "Print the winding direction of a polygon.")
	windingPath := windingCmd.Arg("polygon", "File with the polygon's vertices.").Required().ExistingFile()
	shoelace := windingCmd.Flag("shoelace", "Use the signed area instead of the quick heuristic.").Bool()

	sessionCmd := a.Command("session", "Run a session described in a YAML file.")
	sessionPath := sessionCmd.Arg("file", "Session file.").Required().ExistingFile()
	sessionOpts := classifyOptions{}
	addPlotFlags(sessionCmd, &sessionOpts)

	interactiveCmd := a.Command("interactive", "Build the polygon and points by answering prompts.")
	interactiveOpts := classifyOptions{}
	addPlotFlags(interactiveCmd, &interactiveOpts)

	command := kingpin.MustParse(a.Parse(os.Args[1:]))

	a.FatalIfError(log.SetLevel(*logLevel), "")
	a.FatalIfError(log.SetFormat(*logFormat), "")
	a.FatalIfError(log.SetOutput(*logOutput), "")

	cli := &app{
		in:     os.Stdin,
		out:    os.Stdout,
		colour: !*noColour && isatty.IsTerminal(os.Stdout.Fd()),
	}
	ctx := context.Background()

	var err error
	switch command {
	case classifyCmd.FullCommand():
		err = cli.classify(ctx, classifyOpts)
	case windingCmd.FullCommand():
		err = cli.winding(*windingPath, *shoelace)
	case sessionCmd.FullCommand():
		err = cli.session(ctx, *sessionPath, sessionOpts)
	case interactiveCmd.FullCommand():
		err = cli.interactive(ctx, interactiveOpts)
	}
	a.FatalIfError(err, "%s", command)
}

func addPlotFlags(cmd *kingpin.CmdClause, opts *classifyOptions) {
	cmd.Flag("plot", "Write a PNG plot to this path.").Short('p').Envar("PIP_PLOT").StringVar(&opts.plotPath)
	cmd.Flag("inline", "Show the plot in the terminal (iTerm only).").Envar("PIP_INLINE").BoolVar(&opts.inline)
	cmd.Flag("size", "Size of the plot in pixels.").Default("600").Envar("PIP_PLOT_SIZE").IntVar(&opts.size)
}
