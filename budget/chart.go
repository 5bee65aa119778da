package budget

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	chartTitle  = "Percentage spent by category"
	bucketSize  = 10  // percentages are floored to a multiple of this
	maxPercent  = 100 // top row of the chart
	barMark     = "o  "
	barGap      = "   "
	axisIndent  = "    -"
	labelIndent = "     "
)

// CategoryTotal is the amount withdrawn from one named category.
type CategoryTotal struct {
	Name      string
	Withdrawn decimal.Decimal
}

// Totals collects the withdrawal total of each category, in order.
// Nil categories are skipped.
func Totals(categories ...*Category) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		out = append(out, CategoryTotal{Name: c.name, Withdrawn: c.TotalWithdrawn()})
	}
	return out
}

// PercentagesSpent returns, for each total, its share of the grand total
// floored to a multiple of 10: floor(w*10/total)*10. The division is exact,
// so a share of exactly 40% never lands in the 30% bucket.
//
// Errors: ErrNegativeAmount, ErrEmptyOrZeroTotals.
func PercentagesSpent(totals []CategoryTotal) ([]int, error) {
	if len(totals) == 0 {
		return nil, ErrEmptyOrZeroTotals
	}
	grand := decimal.Zero
	for _, t := range totals {
		if t.Withdrawn.IsNegative() {
			return nil, fmt.Errorf("%w: %q withdrew %s", ErrNegativeAmount, t.Name, t.Withdrawn)
		}
		grand = grand.Add(t.Withdrawn)
	}
	if grand.IsZero() {
		return nil, ErrEmptyOrZeroTotals
	}

	buckets := decimal.NewFromInt(maxPercent / bucketSize)
	pct := make([]int, len(totals))
	for i, t := range totals {
		q, _ := t.Withdrawn.Mul(buckets).QuoRem(grand, 0)
		pct[i] = int(q.IntPart()) * bucketSize
	}
	return pct, nil
}

// RenderSpendChart draws the spending chart for totals, one column per
// category in input order. Lines are joined with "\n" and the last label
// row is not followed by a newline.
//
// Errors: ErrNegativeAmount, ErrEmptyOrZeroTotals.
func RenderSpendChart(totals []CategoryTotal) (string, error) {
	pct, err := PercentagesSpent(totals)
	if err != nil {
		return "", err
	}

	lines := []string{chartTitle}
	var row strings.Builder
	for threshold := maxPercent; threshold >= 0; threshold -= bucketSize {
		row.Reset()
		fmt.Fprintf(&row, "%3d| ", threshold)
		for _, p := range pct {
			if p >= threshold {
				row.WriteString(barMark)
			} else {
				row.WriteString(barGap)
			}
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, axisIndent+strings.Repeat("---", len(totals)))

	return strings.Join(append(lines, labelRows(totals)...), "\n"), nil
}

// CreateSpendChart is RenderSpendChart over the withdrawals of categories.
func CreateSpendChart(categories ...*Category) (string, error) {
	return RenderSpendChart(Totals(categories...))
}

// labelRows spells every name vertically, one rune per row, padding
// shorter names with spaces.
func labelRows(totals []CategoryTotal) []string {
	names := make([][]rune, len(totals))
	longest := 0
	for i, t := range totals {
		names[i] = []rune(t.Name)
		if len(names[i]) > longest {
			longest = len(names[i])
		}
	}

	rows := make([]string, 0, longest)
	cells := make([]string, len(names))
	for i := 0; i < longest; i++ {
		for j, name := range names {
			if i < len(name) {
				cells[j] = string(name[i])
			} else {
				cells[j] = " "
			}
		}
		rows = append(rows, labelIndent+strings.Join(cells, "  ")+"  ")
	}
	return rows
}
