package records

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rkeller/levelup/internal/models"
)

// Totals is the aggregate view over the transaction list
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// FinanceStore holds the transaction list. Transactions have no done flag;
// they are aggregated and searched, never toggled.
type FinanceStore struct {
	collection[models.Transaction]
}

// NewFinanceStore loads the transactions stored under key
func NewFinanceStore(deps Deps, key string) *FinanceStore {
	return &FinanceStore{newCollection[models.Transaction](deps, key)}
}

// Add creates a transaction from draft input. The amount must parse as a
// number greater than zero and typ must be income or expense, otherwise the
// draft is silently dropped. A blank category defaults to General and a blank
// date to today.
func (s *FinanceStore) Add(typ, amount, category, note, date string) bool {
	if typ != models.TypeIncome && typ != models.TypeExpense {
		return false
	}
	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || !amt.IsPositive() {
		return false
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "General"
	}
	if strings.TrimSpace(date) == "" {
		date = s.deps.Now().Format("2006-01-02")
	}
	s.set(prepend(s.items, models.Transaction{
		ID:       s.deps.NewID(),
		Type:     typ,
		Amount:   amt,
		Category: category,
		Note:     strings.TrimSpace(note),
		Date:     date,
	}))
	return true
}

// Remove deletes the transaction matching id
func (s *FinanceStore) Remove(id string) {
	s.set(removeByID(s.items, id))
}

// Search filters transactions by a case-insensitive substring match over
// type, category, and note. A blank query returns the full list.
func (s *FinanceStore) Search(query string) []models.Transaction {
	return searchFilter(s.items, query, func(t models.Transaction) string {
		return t.Type + " " + t.Category + " " + t.Note
	})
}

// Totals sums incomes and expenses over the whole list. Net is income minus
// expense.
func (s *FinanceStore) Totals() Totals {
	var totals Totals
	for _, t := range s.items {
		if t.Type == models.TypeIncome {
			totals.Income = totals.Income.Add(t.Amount)
		} else {
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expense)
	return totals
}
