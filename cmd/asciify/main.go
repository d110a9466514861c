// asciify renders an image as ASCII art
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"git.sr.ht/~rockorager/asciify"
)

const usage = `usage: asciify [flags] <image>

Renders an image (png, jpeg, gif, bmp, tiff or webp) as ASCII art.

flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the exit status
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	fs := flag.NewFlagSet("asciify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	var (
		output  string
		width   int
		ramp    string
		filter  string
		invert  bool
		verbose bool
	)
	fs.StringVar(&output, "o", "-", "output file, \"-\" for stdout")
	fs.IntVar(&width, "w", asciify.DefaultWidth, "width of the output in characters")
	fs.StringVar(&ramp, "ramp", "coarse", "character ramp: fine or coarse")
	fs.StringVar(&filter, "filter", asciify.CatmullRom.String(),
		"resampling filter: nearest, approx-bilinear, bilinear, catmullrom, lanczos3 or mitchell")
	fs.BoolVar(&invert, "invert", false, "reverse the character ramp")
	fs.BoolVar(&verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	input := fs.Arg(0)

	log := newLogger(stderr, verbose)

	if width <= 0 {
		log.Error("invalid configuration", "err", fmt.Errorf("%w: %d", asciify.ErrInvalidWidth, width))
		return 1
	}
	r, err := asciify.ParseRamp(ramp)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		return 1
	}
	if invert {
		r = r.Reverse()
	}
	f, err := asciify.ParseFilter(filter)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		return 1
	}

	conv, err := asciify.New(asciify.Options{
		Width:  width,
		Ramp:   r,
		Filter: f,
		Logger: log,
	})
	if err != nil {
		log.Error("invalid configuration", "err", err)
		return 1
	}
	art, err := conv.ConvertFile(input)
	if err != nil {
		log.Error("couldn't convert image", "path", input, "err", err)
		return 1
	}

	if output == "-" {
		_, err = fmt.Fprintln(stdout, art)
	} else {
		err = writeFile(output, []byte(art))
	}
	if err != nil {
		log.Error("couldn't write output", "path", output, "err", err)
		return 1
	}
	log.Debug("wrote ascii art", "path", output)
	return 0
}

// newLogger returns a tint logger writing to w. Color is only used when w is
// a terminal
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	}))
}
