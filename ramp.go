package asciify

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Character sets for the built in ramps. Both are ordered from the densest
// character to the lightest, so dark pixels select dense characters.
const (
	// FineChars is Paul Bourke's 70 level ramp
	FineChars = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "
	// CoarseChars is the 10 level ramp " .:-=+*#%@", reversed
	CoarseChars = "@%#*+=-:. "
)

// Ramp is an ordered, immutable set of single cell characters used to
// approximate luminance with text
type Ramp struct {
	chars []rune
}

// Fine returns the 70 character ramp
func Fine() Ramp {
	return mustRamp(FineChars)
}

// Coarse returns the 10 character ramp
func Coarse() Ramp {
	return mustRamp(CoarseChars)
}

func mustRamp(s string) Ramp {
	r, err := NewRamp(s)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRamp creates a Ramp from chars, in order. Every grapheme in chars must be
// a single rune which occupies exactly one terminal cell
func NewRamp(chars string) (Ramp, error) {
	if chars == "" {
		return Ramp{}, fmt.Errorf("%w: no characters", ErrInvalidRamp)
	}
	r := Ramp{
		chars: make([]rune, 0, utf8.RuneCountInString(chars)),
	}
	g := uniseg.NewGraphemes(chars)
	for g.Next() {
		egc := g.Str()
		if utf8.RuneCountInString(egc) != 1 {
			return Ramp{}, fmt.Errorf("%w: %q is not a single character", ErrInvalidRamp, egc)
		}
		if w := runewidth.StringWidth(egc); w != 1 {
			return Ramp{}, fmt.Errorf("%w: %q is %d cells wide", ErrInvalidRamp, egc, w)
		}
		r.chars = append(r.chars, g.Runes()[0])
	}
	return r, nil
}

// ParseRamp returns the built in ramp with the given name
func ParseRamp(name string) (Ramp, error) {
	switch strings.ToLower(name) {
	case "fine":
		return Fine(), nil
	case "coarse":
		return Coarse(), nil
	default:
		return Ramp{}, fmt.Errorf("%w: unknown ramp %q", ErrInvalidRamp, name)
	}
}

// Len is the number of characters in the ramp
func (r Ramp) Len() int {
	return len(r.chars)
}

// Index maps a luminance value onto the ramp. 0 maps to the first character
// and 255 maps to the last, with values in between truncated toward the
// start of the ramp
func (r Ramp) Index(v uint8) int {
	return int(v) * (len(r.chars) - 1) / 255
}

// Char returns the character for luminance v
func (r Ramp) Char(v uint8) rune {
	return r.chars[r.Index(v)]
}

// Reverse returns a copy of the ramp in the opposite order
func (r Ramp) Reverse() Ramp {
	rev := make([]rune, len(r.chars))
	for i, c := range r.chars {
		rev[len(rev)-1-i] = c
	}
	return Ramp{chars: rev}
}

// String returns the characters of the ramp, in order
func (r Ramp) String() string {
	return string(r.chars)
}
