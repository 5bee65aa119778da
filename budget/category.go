package budget

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	titleWidth       = 30 // width of the "****Name****" header
	descriptionWidth = 23 // descriptions are cut and padded to this many runes
	amountWidth      = 7  // amounts are right-aligned in this many characters
)

// Entry is a single ledger line. Withdrawals are stored as negative amounts.
type Entry struct {
	Amount      decimal.Decimal
	Description string
}

// Category is a named spending ledger. It is not safe for concurrent use.
type Category struct {
	name   string
	ledger []Entry
}

// NewCategory returns an empty ledger called name.
func NewCategory(name string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Category{name: name}, nil
}

// Name returns the category name.
func (c *Category) Name() string { return c.name }

// Entries returns a copy of the ledger in insertion order.
func (c *Category) Entries() []Entry {
	out := make([]Entry, len(c.ledger))
	copy(out, c.ledger)
	return out
}

// Deposit appends amount to the ledger.
func (c *Category) Deposit(amount decimal.Decimal, description string) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: deposit %s", ErrNegativeAmount, amount)
	}
	c.ledger = append(c.ledger, Entry{Amount: amount, Description: description})
	return nil
}

// Withdraw records amount as a negative entry. It reports false and leaves
// the ledger untouched when amount is negative or exceeds the balance.
func (c *Category) Withdraw(amount decimal.Decimal, description string) bool {
	if amount.IsNegative() || !c.CheckFunds(amount) {
		return false
	}
	c.ledger = append(c.ledger, Entry{Amount: amount.Neg(), Description: description})
	return true
}

// Transfer moves amount from c to dst, describing both sides of the move.
// It reports false and changes neither ledger when dst is nil, amount is
// negative or c cannot cover it.
func (c *Category) Transfer(amount decimal.Decimal, dst *Category) bool {
	if dst == nil || !c.Withdraw(amount, "Transfer to "+dst.name) {
		return false
	}
	dst.ledger = append(dst.ledger, Entry{Amount: amount, Description: "Transfer from " + c.name})
	return true
}

// Balance is the sum of every ledger entry.
func (c *Category) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.ledger {
		total = total.Add(e.Amount)
	}
	return total
}

// CheckFunds reports whether amount is covered by the current balance.
func (c *Category) CheckFunds(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(c.Balance())
}

// TotalWithdrawn sums every withdrawal, outgoing transfers included, as a
// positive amount.
func (c *Category) TotalWithdrawn() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c.ledger {
		if e.Amount.IsNegative() {
			total = total.Sub(e.Amount)
		}
	}
	return total
}

// String renders the ledger as a statement:
//
//	*************Food*************
//	initial deposit        1000.00
//	groceries               -10.15
//	Total: 989.85
func (c *Category) String() string {
	lines := make([]string, 0, len(c.ledger)+2)
	lines = append(lines, center(c.name, titleWidth, '*'))
	for _, e := range c.ledger {
		lines = append(lines, fmt.Sprintf("%s%*s",
			padRight(truncate(e.Description, descriptionWidth), descriptionWidth),
			amountWidth, e.Amount.StringFixed(2)))
	}
	lines = append(lines, "Total: "+c.Balance().StringFixed(2))
	return strings.Join(lines, "\n")
}

// center pads s on both sides with fill up to width runes; the odd pad rune
// goes to the right. s is returned unchanged when it is already wide enough.
func center(s string, width int, fill rune) string {
	pad := width - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// padRight pads s with spaces up to n runes.
func padRight(s string, n int) string {
	if pad := n - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
