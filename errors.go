package asciify

import "errors"

var (
	// ErrNotFound is returned when an input path cannot be opened
	ErrNotFound = errors.New("image not found")
	// ErrDecode is returned when a file is not a supported image
	ErrDecode = errors.New("couldn't decode image")
	// ErrInvalidWidth is returned for a target width <= 0
	ErrInvalidWidth = errors.New("invalid width")
	// ErrEmptyImage is returned when an image has no pixels
	ErrEmptyImage = errors.New("empty image")
	// ErrInvalidRamp is returned when a string can't be used as a ramp
	ErrInvalidRamp = errors.New("invalid ramp")
	// ErrUnknownFilter is returned by ParseFilter for an unknown name
	ErrUnknownFilter = errors.New("unknown filter")
)
