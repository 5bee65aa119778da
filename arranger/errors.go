package arranger

import "errors"

var (
	// ErrTooManyProblems indicates more than MaxProblems problems.
	ErrTooManyProblems = errors.New("Error: Too many problems.")
	// ErrMalformedProblem indicates a problem that is not "<a> <op> <b>".
	ErrMalformedProblem = errors.New("Error: Problem must be '<number> <operator> <number>'.")
	// ErrTooManyDigits indicates an operand longer than MaxDigits.
	ErrTooManyDigits = errors.New("Error: Numbers cannot be more than four digits.")
	// ErrNotDigits indicates an operand with a non-digit character.
	ErrNotDigits = errors.New("Error: Numbers must only contain digits.")
	// ErrBadOperator indicates an operator other than + or -.
	ErrBadOperator = errors.New("Error: Operator must be '+' or '-'.")
)
