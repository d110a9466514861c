package asciify

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load opens and decodes the image at path. A path which can't be opened
// returns an error wrapping [ErrNotFound], a file which can't be decoded
// returns an error wrapping [ErrDecode]
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	defer f.Close()
	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode decodes an image in any of the registered formats: png, jpeg, gif,
// bmp, tiff and webp. The format name is returned along with the image
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, "", ErrEmptyImage
	}
	return img, format, nil
}

// ScaledHeight returns the height of a w x h image resized to width target.
// The aspect ratio is h/w and the new height is target / aspect, truncated
// toward zero. The result is never less than 1
func ScaledHeight(w int, h int, target int) int {
	aspect := float64(h) / float64(w)
	n := int(float64(target) / aspect)
	if n < 1 {
		return 1
	}
	return n
}

// Resize resamples img to the given width using filter f. The height is
// given by [ScaledHeight]. Transparent areas are composited over white
func Resize(img image.Image, width int, f Filter) (image.Image, error) {
	return resizeOver(img, width, f, color.White)
}

func resizeOver(img image.Image, width int, f Filter, bg color.Color) (image.Image, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}
	h := ScaledHeight(b.Dx(), b.Dy(), width)
	return f.scale(flatten(img, bg), width, h), nil
}

// flatten draws img over an opaque background. The returned image has its
// origin at (0,0)
func flatten(img image.Image, bg color.Color) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Over)
	return dst
}

// Greyscale converts img to a single luminance channel using the ITU-R
// BT.601 weights. The result has its origin at (0,0)
func Greyscale(img image.Image) *image.Gray {
	g := gift.New(gift.Grayscale())
	dst := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
