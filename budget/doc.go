// Package budget keeps per-category spending ledgers and renders the
// "Percentage spent by category" ASCII bar chart.
//
// What:
//
//   - Category is an ordered ledger of deposits and withdrawals held as
//     exact decimals (github.com/shopspring/decimal). Withdrawals and
//     transfers refuse to overdraw the balance.
//   - RenderSpendChart buckets each category's withdrawals as a share of all
//     withdrawals, floored to a multiple of 10%, and draws 11 bar rows
//     (100..0), a dash separator and vertical category labels.
//
// Chart layout for Food (withdrew 100) and Clothing (withdrew 150):
//
//	Percentage spent by category
//	100|
//	 90|
//	 ...
//	 60|    o
//	 40| o  o
//	 ...
//	  0| o  o
//	    -------
//	     F  C
//	     o  l
//	     ...
//
// Each category owns a 3-character column, so rows keep their trailing
// spaces and every line of a chart has the same width.
//
// Complexity:
//
//   - Deposit / Withdraw / Transfer: O(n) for the balance check, n = ledger entries.
//   - RenderSpendChart: O(c·L), c = categories, L = longest name.
//
// Errors:
//
//   - ErrEmptyName: a category needs a name.
//   - ErrNegativeAmount: deposits and chart totals must not be negative.
//   - ErrEmptyOrZeroTotals: nothing to chart, or nothing was spent at all.
package budget
