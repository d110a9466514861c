package asciify

import (
	"fmt"
	"image"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Filter is a resampling filter used when resizing an image
type Filter int

const (
	CatmullRom Filter = iota
	NearestNeighbor
	ApproxBiLinear
	BiLinear
	Lanczos3
	MitchellNetravali
)

var filterNames = map[Filter]string{
	CatmullRom:        "catmullrom",
	NearestNeighbor:   "nearest",
	ApproxBiLinear:    "approx-bilinear",
	BiLinear:          "bilinear",
	Lanczos3:          "lanczos3",
	MitchellNetravali: "mitchell",
}

// ParseFilter returns the Filter with the given name. Names are those
// returned by [Filter.String]
func ParseFilter(name string) (Filter, error) {
	name = strings.ToLower(name)
	for f, n := range filterNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

func (f Filter) String() string {
	if n, ok := filterNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// scale resamples src to a w x h image with its origin at (0,0)
func (f Filter) scale(src image.Image, w int, h int) image.Image {
	switch f {
	case Lanczos3:
		return resize.Resize(uint(w), uint(h), src, resize.Lanczos3)
	case MitchellNetravali:
		return resize.Resize(uint(w), uint(h), src, resize.MitchellNetravali)
	}
	var interp draw.Interpolator
	switch f {
	case NearestNeighbor:
		interp = draw.NearestNeighbor
	case ApproxBiLinear:
		interp = draw.ApproxBiLinear
	case BiLinear:
		interp = draw.BiLinear
	default:
		interp = draw.CatmullRom
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	interp.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	return dst
}
