package budget_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/scicalc/budget"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateSpendChart_TwoCategories checks exact layout for Food 40% and Clothing 60%.
func TestCreateSpendChart_TwoCategories(t *testing.T) {
	food := newCategory(t, "Food")
	clothing := newCategory(t, "Clothing")
	require.NoError(t, food.Deposit(dec("1000"), ""))
	food.Withdraw(dec("100"), "groceries")
	require.NoError(t, clothing.Deposit(dec("500"), ""))
	clothing.Withdraw(dec("150"), "clothes")

	got, err := budget.CreateSpendChart(food, clothing)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Percentage spent by category",
		"100|       ",
		" 90|       ",
		" 80|       ",
		" 70|       ",
		" 60|    o  ",
		" 50|    o  ",
		" 40| o  o  ",
		" 30| o  o  ",
		" 20| o  o  ",
		" 10| o  o  ",
		"  0| o  o  ",
		"    -------",
		"     F  C  ",
		"     o  l  ",
		"     o  o  ",
		"     d  t  ",
		"        h  ",
		"        i  ",
		"        n  ",
		"        g  ",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestCreateSpendChart_ThreeCategories floors 7.3%, 70.4% and 22.3%.
func TestCreateSpendChart_ThreeCategories(t *testing.T) {
	business := newCategory(t, "Business")
	food := newCategory(t, "Food")
	entertainment := newCategory(t, "Entertainment")
	for _, c := range []*budget.Category{business, food, entertainment} {
		require.NoError(t, c.Deposit(dec("900"), "deposit"))
	}
	food.Withdraw(dec("105.55"), "")
	entertainment.Withdraw(dec("33.40"), "")
	business.Withdraw(dec("10.99"), "")

	got, err := budget.CreateSpendChart(business, food, entertainment)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Percentage spent by category",
		"100|          ",
		" 90|          ",
		" 80|          ",
		" 70|    o     ",
		" 60|    o     ",
		" 50|    o     ",
		" 40|    o     ",
		" 30|    o     ",
		" 20|    o  o  ",
		" 10|    o  o  ",
		"  0| o  o  o  ",
		"    ----------",
		"     B  F  E  ",
		"     u  o  n  ",
		"     s  o  t  ",
		"     i  d  e  ",
		"     n     r  ",
		"     e     t  ",
		"     s     a  ",
		"     s     i  ",
		"           n  ",
		"           m  ",
		"           e  ",
		"           n  ",
		"           t  ",
	}, "\n")
	assert.Equal(t, want, got)
}

// TestRenderSpendChart_SingleCategory fills a single column to 100%.
func TestRenderSpendChart_SingleCategory(t *testing.T) {
	got, err := budget.RenderSpendChart([]budget.CategoryTotal{{Name: "Tax", Withdrawn: dec("12")}})
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 1+11+1+3)
	assert.Equal(t, "100| o  ", lines[1])
	assert.Equal(t, "  0| o  ", lines[11])
	assert.Equal(t, "    ----", lines[12])
	assert.Equal(t, "     T  ", lines[13])
	assert.Equal(t, "     x  ", lines[15])
}

// TestRenderSpendChart_Errors reports empty, zero and negative totals.
func TestRenderSpendChart_Errors(t *testing.T) {
	_, err := budget.RenderSpendChart(nil)
	assert.ErrorIs(t, err, budget.ErrEmptyOrZeroTotals)

	_, err = budget.RenderSpendChart([]budget.CategoryTotal{
		{Name: "A", Withdrawn: decimal.Zero},
		{Name: "B", Withdrawn: decimal.Zero},
	})
	assert.ErrorIs(t, err, budget.ErrEmptyOrZeroTotals)

	_, err = budget.RenderSpendChart([]budget.CategoryTotal{{Name: "A", Withdrawn: dec("-1")}})
	assert.ErrorIs(t, err, budget.ErrNegativeAmount)

	untouched := newCategory(t, "Idle")
	_, err = budget.CreateSpendChart(untouched)
	assert.ErrorIs(t, err, budget.ErrEmptyOrZeroTotals)
}

// TestPercentagesSpent_ExactBoundaries keeps exact multiples in their own bucket.
func TestPercentagesSpent_ExactBoundaries(t *testing.T) {
	got, err := budget.PercentagesSpent([]budget.CategoryTotal{
		{Name: "a", Withdrawn: dec("0.1")},
		{Name: "b", Withdrawn: dec("0.2")},
		{Name: "c", Withdrawn: dec("0.7")},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 70}, got)

	got, err = budget.PercentagesSpent([]budget.CategoryTotal{
		{Name: "a", Withdrawn: dec("1")},
		{Name: "b", Withdrawn: dec("2")},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{30, 60}, got)
}

// TestRenderSpendChart_UnicodeLabels aligns multi-byte names per rune.
func TestRenderSpendChart_UnicodeLabels(t *testing.T) {
	got, err := budget.RenderSpendChart([]budget.CategoryTotal{
		{Name: "Café", Withdrawn: dec("1")},
		{Name: "Tea", Withdrawn: dec("1")},
	})
	require.NoError(t, err)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "     é     ", lines[len(lines)-1])
}

// TestTotals_SkipsNil ignores nil categories.
func TestTotals_SkipsNil(t *testing.T) {
	food := newCategory(t, "Food")
	require.NoError(t, food.Deposit(dec("10"), ""))
	food.Withdraw(dec("4"), "")

	got := budget.Totals(nil, food, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].Name)
	assert.True(t, got[0].Withdrawn.Equal(dec("4")))
}
