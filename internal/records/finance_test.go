package records

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinanceAdd(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewFinanceStore(deps, KeyFinances)

	require.True(t, s.Add("expense", "12.50", "Food", "lunch", "2024-01-05"))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "expense", items[0].Type)
	assert.True(t, items[0].Amount.Equal(decimal.RequireFromString("12.50")))
	assert.Equal(t, "Food", items[0].Category)
	assert.Equal(t, "lunch", items[0].Note)
	assert.Equal(t, "2024-01-05", items[0].Date)
}

func TestFinanceAddDefaults(t *testing.T) {
	deps, _, clock := testDeps()
	s := NewFinanceStore(deps, KeyFinances)

	require.True(t, s.Add("income", "100", "  ", "", ""))

	tx := s.Items()[0]
	assert.Equal(t, "General", tx.Category)
	assert.Equal(t, clock.Now().Format("2006-01-02"), tx.Date)
}

func TestFinanceAddRejectsInvalidAmount(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewFinanceStore(deps, KeyFinances)

	assert.False(t, s.Add("expense", "-5", "Food", "", ""))
	assert.False(t, s.Add("expense", "0", "Food", "", ""))
	assert.False(t, s.Add("expense", "abc", "Food", "", ""))
	assert.False(t, s.Add("expense", "", "Food", "", ""))
	assert.False(t, s.Add("transfer", "10", "Food", "", ""))
	assert.Empty(t, s.Items())
}

func TestFinanceTotals(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewFinanceStore(deps, KeyFinances)
	s.Add("income", "1000", "Salary", "", "")
	s.Add("expense", "250.75", "Rent", "", "")
	s.Add("expense", "49.25", "Food", "", "")
	s.Add("income", "20", "Refund", "", "")

	totals := s.Totals()
	assert.True(t, totals.Income.Equal(decimal.RequireFromString("1020")))
	assert.True(t, totals.Expense.Equal(decimal.RequireFromString("300")))
	assert.True(t, totals.Net.Equal(totals.Income.Sub(totals.Expense)))
}

func TestFinanceTotalsOrderInvariant(t *testing.T) {
	depsA, _, _ := testDeps()
	depsB, _, _ := testDeps()
	a := NewFinanceStore(depsA, KeyFinances)
	b := NewFinanceStore(depsB, KeyFinances)

	a.Add("income", "10", "", "", "")
	a.Add("expense", "3", "", "", "")
	a.Add("expense", "4.50", "", "", "")

	b.Add("expense", "4.50", "", "", "")
	b.Add("income", "10", "", "", "")
	b.Add("expense", "3", "", "", "")

	ta, tb := a.Totals(), b.Totals()
	assert.True(t, ta.Income.Equal(tb.Income))
	assert.True(t, ta.Expense.Equal(tb.Expense))
	assert.True(t, ta.Net.Equal(tb.Net))
}

func TestFinanceSearch(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewFinanceStore(deps, KeyFinances)
	s.Add("income", "1000", "Salary", "January paycheck", "")
	s.Add("expense", "12", "Food", "coffee beans", "")
	s.Add("expense", "800", "Rent", "", "")

	// Case-insensitive match over category
	results := s.Search("FOOD")
	require.Len(t, results, 1)
	assert.Equal(t, "Food", results[0].Category)

	// Match over note
	results = s.Search("paycheck")
	require.Len(t, results, 1)
	assert.Equal(t, "Salary", results[0].Category)

	// Match over type
	assert.Len(t, s.Search("expense"), 2)

	// Blank query returns everything in collection order
	assert.Equal(t, s.Items(), s.Search("  "))

	assert.Empty(t, s.Search("vacation"))
}

func TestFinanceRemove(t *testing.T) {
	deps, _, _ := testDeps()
	s := NewFinanceStore(deps, KeyFinances)
	s.Add("expense", "5", "Food", "", "")
	id := s.Items()[0].ID

	s.Remove("missing")
	assert.Len(t, s.Items(), 1)

	s.Remove(id)
	assert.Empty(t, s.Items())
}
