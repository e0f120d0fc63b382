// Command plotholds draws a route's holds onto a wall image and saves the
// result as <route-image-directory>/r<route-id>-<wall-image-filename>.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"climb-routes/internal/app"
	"climb-routes/internal/config"
	"climb-routes/internal/render"
	"climb-routes/internal/route"
	"climb-routes/internal/version"
	"climb-routes/pkg/geometry"
)

const usage = "Usage: plotholds [flags] <wall-image-filename> <wall-image-directory> " +
	"<route-image-directory> <route-id> <holds-json>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("plotholds", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Settings file (.toml, .yaml)")
	rendererName := fs.String("renderer", "", fmt.Sprintf("Marker backend %v (default %q)", render.Available(), render.DefaultRenderer))
	verbose := fs.Bool("v", false, "Log progress to stderr")
	showVersion := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	app.SetupLogging(*verbose)

	if *showVersion {
		fmt.Fprintln(stdout, version.String("plotholds"))
		return 0
	}

	if fs.NArg() != 5 {
		fs.Usage()
		return 1
	}
	wallFilename, wallDir, routeDir, routeID, holdsJSON :=
		fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3), fs.Arg(4)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	if *rendererName != "" {
		cfg.Renderer = *rendererName
	}

	out, err := plot(cfg, wallFilename, wallDir, routeDir, routeID, holdsJSON)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, out)
	return 0
}

func plot(cfg config.Config, wallFilename, wallDir, routeDir, routeID, holdsJSON string) (string, error) {
	if err := route.ValidateRouteID(routeID); err != nil {
		return "", err
	}

	holds, err := geometry.ParseRoute([]byte(holdsJSON))
	if err != nil {
		return "", fmt.Errorf("failed to parse holds: %w", err)
	}

	style, err := cfg.Style()
	if err != nil {
		return "", err
	}
	renderer, err := cfg.NewRenderer()
	if err != nil {
		return "", err
	}

	b, err := route.NewBuilder(renderer, style)
	if err != nil {
		return "", err
	}
	return b.Plot(wallDir, wallFilename, routeDir, routeID, holds)
}
