package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-raycaster/pkg/core"
	"github.com/df07/go-raycaster/pkg/imageio"
	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// errUsage marks command line mistakes, which also print the usage text
var errUsage = errors.New("incorrect usage")

// options holds the parsed command line
type options struct {
	width      int
	height     int
	input      string
	output     string
	format     imageio.Format
	workers    int
	maxObjects int
	verbose    bool
	dumpJSON   bool
}

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps the result of run to a process status. Asking for help is not a failure.
func exitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 1
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *options, *string) {
	opts := &options{}
	fs := flag.NewFlagSet("raycast", flag.ContinueOnError)
	fs.SetOutput(stderr)

	format := fs.String("format", string(imageio.FormatAuto), "Output format: auto, p6, p3, png, bmp or tiff (auto uses the file extension)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = number of CPUs)")
	fs.IntVar(&opts.maxObjects, "max-objects", scene.DefaultMaxObjects, "Maximum number of objects in a scene")
	fs.BoolVar(&opts.verbose, "v", false, "Print the parsed scene and render progress")
	fs.BoolVar(&opts.dumpJSON, "dump-json", false, "Print the parsed scene in canonical form before rendering")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: raycast [options] width height input.json output.ppm")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	return fs, opts, format
}

// parseArgs validates the command line before any file is touched
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs, opts, format := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	positional := fs.Args()
	if len(positional) != 4 {
		fs.Usage()
		return nil, fmt.Errorf("%w: expected 4 arguments, got %d", errUsage, len(positional))
	}

	var err error
	if opts.width, err = parseDimension("width", positional[0]); err != nil {
		return nil, err
	}
	if opts.height, err = parseDimension("height", positional[1]); err != nil {
		return nil, err
	}
	opts.input = positional[2]
	opts.output = positional[3]

	if opts.format, err = imageio.ParseFormat(*format); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if opts.format == imageio.FormatAuto {
		if _, err := imageio.FormatFromFilename(opts.output); err != nil {
			return nil, fmt.Errorf("%w: %v (use -format)", errUsage, err)
		}
	}
	if opts.maxObjects <= 0 {
		return nil, fmt.Errorf("%w: -max-objects must be positive", errUsage)
	}

	return opts, nil
}

func parseDimension(name, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", errUsage, name, value)
	}
	return n, nil
}

// run parses the command line, loads the scene, renders it and writes the image
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	var logger core.Logger = core.NopLogger{}
	if opts.verbose {
		logger = log.New(stderr, "", log.LstdFlags)
	}

	s, err := loaders.LoadScene(opts.input, loaders.Options{
		MaxObjects: opts.maxObjects,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if opts.verbose {
		if err := s.Describe(stdout); err != nil {
			return err
		}
	}
	if opts.dumpJSON {
		if err := loaders.WriteScene(stdout, s); err != nil {
			return err
		}
	}

	config := renderer.DefaultConfig(opts.width, opts.height)
	config.Workers = opts.workers
	config.Logger = logger

	img, stats, err := renderer.NewRaycaster(s, config).Render(ctx)
	if err != nil {
		return err
	}

	if err := imageio.WriteFile(opts.output, img, opts.format); err != nil {
		return err
	}

	logger.Printf("Wrote %s (%dx%d, %d of %d pixels hit)\n", opts.output, img.Width, img.Height, stats.HitPixels, stats.TotalPixels)
	return nil
}
