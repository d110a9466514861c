package asciify

import (
	"image"
	"strings"
)

// PixelToASCII maps every pixel of img to a character of r. Pixels are
// visited in row-major order and the result contains exactly one character
// per pixel
func PixelToASCII(img *image.Gray, r Ramp) string {
	b := img.Bounds()
	var sb strings.Builder
	// Ramps are usually ASCII, so one byte per pixel is a good first guess
	sb.Grow(b.Dx() * b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y += 1 {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x += 1 {
			sb.WriteRune(r.Char(row[x]))
		}
	}
	return sb.String()
}

// Lines folds a flat character sequence into lines of width characters,
// separated by '\n'. The last line may be shorter. No trailing newline is
// added. Lines panics if width <= 0
func Lines(chars string, width int) string {
	if width <= 0 {
		panic("asciify: Lines width must be positive")
	}
	runes := []rune(chars)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(chars) + len(runes)/width)
	for i := 0; i < len(runes); i += width {
		if i > 0 {
			sb.WriteByte('\n')
		}
		end := i + width
		if end > len(runes) {
			end = len(runes)
		}
		sb.WriteString(string(runes[i:end]))
	}
	return sb.String()
}
