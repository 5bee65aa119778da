package arranger

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxProblems is the largest number of problems Arrange accepts.
	MaxProblems = 5
	// MaxDigits is the longest operand Arrange accepts.
	MaxDigits = 4

	columnGap = "    "
)

// Problem is one parsed "<Left> <Operator> <Right>" problem.
type Problem struct {
	Left     string
	Operator byte
	Right    string
}

// Answer returns Left + Right or Left - Right.
func (p Problem) Answer() int {
	// Operands are validated digit strings of at most MaxDigits.
	a, _ := strconv.Atoi(p.Left)
	b, _ := strconv.Atoi(p.Right)
	if p.Operator == '-' {
		return a - b
	}
	return a + b
}

func (p Problem) width() int {
	return max(len(p.Left), len(p.Right)) + 2
}

// ParseProblem splits s on whitespace and validates it. Checks run in the
// order length, digits, operator, so "24 + 85215" reports ErrTooManyDigits
// even though it is also well-formed otherwise.
func ParseProblem(s string) (Problem, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Problem{}, fmt.Errorf("%w: %q", ErrMalformedProblem, s)
	}
	left, op, right := fields[0], fields[1], fields[2]

	if len(left) > MaxDigits || len(right) > MaxDigits {
		return Problem{}, ErrTooManyDigits
	}
	if !isDigits(left) || !isDigits(right) {
		return Problem{}, ErrNotDigits
	}
	if op != "+" && op != "-" {
		return Problem{}, ErrBadOperator
	}
	return Problem{Left: left, Operator: op[0], Right: right}, nil
}

// Arrange formats problems as columns. With showAnswers a fourth line
// holds the right-aligned results. The first invalid problem aborts the
// whole arrangement.
func Arrange(problems []string, showAnswers bool) (string, error) {
	if len(problems) > MaxProblems {
		return "", ErrTooManyProblems
	}
	parsed := make([]Problem, 0, len(problems))
	for _, s := range problems {
		p, err := ParseProblem(s)
		if err != nil {
			return "", err
		}
		parsed = append(parsed, p)
	}

	rows := 3
	if showAnswers {
		rows = 4
	}
	lines := make([][]string, rows)
	for _, p := range parsed {
		w := p.width()
		lines[0] = append(lines[0], fmt.Sprintf("%*s", w, p.Left))
		lines[1] = append(lines[1], fmt.Sprintf("%c%*s", p.Operator, w-1, p.Right))
		lines[2] = append(lines[2], strings.Repeat("-", w))
		if showAnswers {
			lines[3] = append(lines[3], fmt.Sprintf("%*d", w, p.Answer()))
		}
	}

	out := make([]string, rows)
	for i, cols := range lines {
		out[i] = strings.Join(cols, columnGap)
	}
	return strings.Join(out, "\n"), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
