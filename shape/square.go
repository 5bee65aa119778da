package shape

import "fmt"

// Square is a shape with four equal integer sides.
type Square struct {
	side int
}

// NewSquare returns a square; side must be at least 1.
func NewSquare(side int) (*Square, error) {
	if err := checkSide("side", side); err != nil {
		return nil, err
	}
	return &Square{side: side}, nil
}

// SetSide changes the length of every side.
func (s *Square) SetSide(side int) error {
	if err := checkSide("side", side); err != nil {
		return err
	}
	s.side = side
	return nil
}

// SetWidth is SetSide; a square has no independent width.
func (s *Square) SetWidth(width int) error { return s.SetSide(width) }

// SetHeight is SetSide; a square has no independent height.
func (s *Square) SetHeight(height int) error { return s.SetSide(height) }

func (s *Square) Side() int                         { return s.side }
func (s *Square) Width() int                        { return s.side }
func (s *Square) Height() int                       { return s.side }
func (s *Square) Area() int                         { return area(s.side, s.side) }
func (s *Square) Perimeter() int                    { return perimeter(s.side, s.side) }
func (s *Square) Diagonal() float64                 { return diagonal(s.side, s.side) }
func (s *Square) Picture() string                   { return picture(s.side, s.side) }
func (s *Square) FitCount(other Shape) (int, error) { return fitCount(s.side, s.side, other) }

// String returns "Square(side=S)".
func (s *Square) String() string {
	return fmt.Sprintf("Square(side=%d)", s.side)
}
