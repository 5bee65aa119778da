package shape

import "fmt"

// Rectangle is a width×height rectangle with integer sides.
type Rectangle struct {
	width  int
	height int
}

// NewRectangle returns a rectangle; both sides must be at least 1.
func NewRectangle(width, height int) (*Rectangle, error) {
	if err := checkSide("width", width); err != nil {
		return nil, err
	}
	if err := checkSide("height", height); err != nil {
		return nil, err
	}
	return &Rectangle{width: width, height: height}, nil
}

// SetWidth changes the width.
func (r *Rectangle) SetWidth(width int) error {
	if err := checkSide("width", width); err != nil {
		return err
	}
	r.width = width
	return nil
}

// SetHeight changes the height.
func (r *Rectangle) SetHeight(height int) error {
	if err := checkSide("height", height); err != nil {
		return err
	}
	r.height = height
	return nil
}

func (r *Rectangle) Width() int        { return r.width }
func (r *Rectangle) Height() int       { return r.height }
func (r *Rectangle) Area() int         { return area(r.width, r.height) }
func (r *Rectangle) Perimeter() int    { return perimeter(r.width, r.height) }
func (r *Rectangle) Diagonal() float64 { return diagonal(r.width, r.height) }

// Picture draws height rows of width stars, each ending in "\n".
func (r *Rectangle) Picture() string { return picture(r.width, r.height) }

// FitCount reports how many copies of other fit inside r without rotation.
func (r *Rectangle) FitCount(other Shape) (int, error) { return fitCount(r.width, r.height, other) }

// String returns "Rectangle(width=W, height=H)".
func (r *Rectangle) String() string {
	return fmt.Sprintf("Rectangle(width=%d, height=%d)", r.width, r.height)
}
