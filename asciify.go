// Package asciify renders raster images as plain text.
//
// An image is resized to a target width, converted to greyscale, and each
// pixel is replaced by a character from a [Ramp] according to its luminance.
// The characters are folded into lines of the target width.
package asciify

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/exp/slog"
)

// DefaultWidth is the output width used when Options.Width is 0
const DefaultWidth = 250

type Options struct {
	// Width is the number of characters per line of output. If 0,
	// DefaultWidth is used
	Width int
	// Ramp maps luminance to characters. If empty, the Coarse ramp is used
	Ramp Ramp
	// Filter is the resampling filter used to resize the image. The zero
	// value is CatmullRom
	Filter Filter
	// Background is the color transparent pixels are composited over. If
	// nil, white is used
	Background color.Color
	// Logger is an optional slog.Logger that asciify will log to. asciify
	// uses stdlib levels for logging
	Logger *slog.Logger
}

// Converter converts images to ASCII art. A Converter holds no state between
// conversions
type Converter struct {
	width  int
	ramp   Ramp
	filter Filter
	bg     color.Color
	log    *slog.Logger
}

// New creates a Converter from opts
func New(opts Options) (*Converter, error) {
	c := &Converter{
		width:  opts.Width,
		ramp:   opts.Ramp,
		filter: opts.Filter,
		bg:     opts.Background,
		log:    opts.Logger,
	}
	switch {
	case c.width == 0:
		c.width = DefaultWidth
	case c.width < 0:
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, c.width)
	}
	if c.ramp.Len() == 0 {
		c.ramp = Coarse()
	}
	if _, ok := filterNames[c.filter]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFilter, c.filter)
	}
	if c.bg == nil {
		c.bg = color.White
	}
	if c.log == nil {
		c.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c, nil
}

// Width is the number of characters per line the Converter produces
func (c *Converter) Width() int {
	return c.width
}

// ConvertFile loads the image at path and converts it
func (c *Converter) ConvertFile(path string) (string, error) {
	img, err := Load(path)
	if err != nil {
		return "", err
	}
	c.log.Debug("loaded image", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return c.Convert(img)
}

// Convert renders img as lines of text. Lines are separated by '\n' and the
// final line is not terminated
func (c *Converter) Convert(img image.Image) (string, error) {
	resized, err := resizeOver(img, c.width, c.filter, c.bg)
	if err != nil {
		return "", err
	}
	b := resized.Bounds()
	c.log.Debug("resized image", "width", b.Dx(), "height", b.Dy(), "filter", c.filter)

	grey := Greyscale(resized)
	chars := PixelToASCII(grey, c.ramp)
	c.log.Debug("mapped pixels", "chars", b.Dx()*b.Dy(), "ramp", c.ramp.Len())

	return Lines(chars, c.width), nil
}
