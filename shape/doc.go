// Package shape provides rectangle and square geometry behind one Shape
// interface.
//
// Rectangle and Square are separate types built by their own factories
// (NewRectangle, NewSquare); a Square is not a Rectangle, it simply offers
// the same capabilities. Square's SetWidth and SetHeight resize both sides,
// so a Square can never become non-square.
//
// Capabilities:
//
//   - Area, Perimeter, Diagonal.
//   - Picture: rows of '*', or "Too big for picture." beyond MaxPictureSide.
//   - FitCount: how many copies of another shape fit inside, without rotation.
//
// Errors:
//
//   - ErrInvalidDimension: a side shorter than 1.
//   - ErrNilShape: FitCount called with a nil shape.
package shape
