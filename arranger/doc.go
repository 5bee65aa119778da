// Package arranger lays out short addition and subtraction problems
// vertically and side by side, the way they are written on paper.
//
//	   32      3801
//	+ 698    -    2
//	-----    ------
//	  730      3799
//
// Each problem is as wide as its longest operand plus two (operator and
// space); problems are separated by four spaces. Answers are printed only
// when requested.
//
// Errors are sentinel values whose messages are the familiar
// "Error: ..." strings, so err.Error() can be shown to a user as is.
package arranger
