// Command routegen prints a Warwick MoonBoard route for a grade as JSON.
//
// Grades 1-3 and 10-14 print the static route; grades 4-9 print a random
// route from the pre-generated cache.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"climb-routes/internal/app"
	"climb-routes/internal/config"
	"climb-routes/internal/route"
	"climb-routes/internal/version"

	"golang.org/x/exp/rand"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("routegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cachePath := fs.String("cache", "", "Route cache file (default: "+route.CacheFilename+" next to the binary)")
	configPath := fs.String("config", "", "Settings file (.toml, .yaml)")
	seed := fs.Uint64("seed", 0, "Seed for the random pick on cached grades (0 = unseeded)")
	stats := fs.Bool("stats", false, "Print the number of cached routes per grade and exit")
	verbose := fs.Bool("v", false, "Log progress to stderr")
	showVersion := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: routegen [flags] <grade>")
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
		fmt.Fprintln(stdout, version.String("routegen"))
		return 0
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	if *cachePath == "" {
		*cachePath = cfg.Cache
	}
	if *cachePath == "" {
		*cachePath = app.DefaultCachePath()
	}

	if *stats {
		return printStats(*cachePath, stdout, stderr)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}

	grade, err := route.ParseGrade(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	// Static grades never need the cache file.
	var cache route.Cache
	if !route.IsStatic(grade) {
		if cache, err = route.LoadCache(*cachePath); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	var src rand.Source
	if *seed != 0 {
		src = rand.NewSource(*seed)
	}

	r, err := route.NewSelector(cache, src).Select(grade)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := json.NewEncoder(stdout).Encode(r); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printStats(cachePath string, stdout, stderr io.Writer) int {
	cache, err := route.LoadCache(cachePath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "%-6s %8s\n", "Grade", "Routes")
	for _, gc := range cache.Stats() {
		fmt.Fprintf(stdout, "%-6s %8d\n", gc.Key, gc.Routes)
	}
	fmt.Fprintf(stdout, "%-6s %8d\n", "Total", cache.Len())
	return 0
}
