package budget

import "errors"

// Sentinel errors for budget operations.
var (
	// ErrEmptyName indicates a category was created without a name.
	ErrEmptyName = errors.New("budget: category name must not be empty")
	// ErrNegativeAmount indicates a negative deposit or withdrawal total.
	ErrNegativeAmount = errors.New("budget: amount must not be negative")
	// ErrEmptyOrZeroTotals indicates a chart with no categories or no spending.
	ErrEmptyOrZeroTotals = errors.New("budget: spend chart needs at least one category with spending")
)
