package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInvalidDimension indicates a width, height or side below 1.
	ErrInvalidDimension = errors.New("shape: dimensions must be at least 1")
	// ErrNilShape indicates a nil Shape argument.
	ErrNilShape = errors.New("shape: shape is nil")
)

const (
	// MaxPictureSide is the largest side Picture will draw.
	MaxPictureSide = 50
	// TooBigForPicture is returned by Picture when a side exceeds MaxPictureSide.
	TooBigForPicture = "Too big for picture."
)

// Shape is the set of capabilities shared by Rectangle and Square.
type Shape interface {
	Width() int
	Height() int
	Area() int
	Perimeter() int
	Diagonal() float64
	Picture() string
	FitCount(other Shape) (int, error)
	String() string
}

var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Square)(nil)
)

func checkSide(name string, v int) error {
	if v < 1 {
		return fmt.Errorf("%w: %s=%d", ErrInvalidDimension, name, v)
	}
	return nil
}

// The helpers below implement the capabilities once for any width×height.

func area(w, h int) int { return w * h }

func perimeter(w, h int) int { return 2*w + 2*h }

func diagonal(w, h int) float64 { return math.Hypot(float64(w), float64(h)) }

func picture(w, h int) string {
	if w > MaxPictureSide || h > MaxPictureSide {
		return TooBigForPicture
	}
	return strings.Repeat(strings.Repeat("*", w)+"\n", h)
}

func fitCount(w, h int, other Shape) (int, error) {
	if other == nil {
		return 0, ErrNilShape
	}
	ow, oh := other.Width(), other.Height()
	if ow < 1 || oh < 1 {
		return 0, fmt.Errorf("%w: other is %dx%d", ErrInvalidDimension, ow, oh)
	}
	return (w / ow) * (h / oh), nil
}
