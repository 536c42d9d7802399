package core

// Aggregation over a transaction slice. Every function here is pure,
// total over empty input, and O(n) over the supplied set: totals are
// rebuilt from scratch on each call so they can never drift from the
// append-only ledger.

// Sum adds the amounts of every transaction matching the predicate.
func Sum(txs []Transaction, match func(Transaction) bool) Money {
	var total Money
	for _, t := range txs {
		if match(t) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

func TotalIncome(txs []Transaction) Money {
	return Sum(txs, func(t Transaction) bool { return t.Type == Income })
}

func TotalExpenses(txs []Transaction) Money {
	return Sum(txs, func(t Transaction) bool { return t.Type == Expense })
}

func Balance(txs []Transaction) Money {
	return TotalIncome(txs).Sub(TotalExpenses(txs))
}

// SpentForCategory sums the expenses recorded under a category.
func SpentForCategory(txs []Transaction, category string) Money {
	return Sum(txs, func(t Transaction) bool {
		return t.Type == Expense && t.Category == category
	})
}

// ExpensesByCategory groups expense amounts by category. A category
// appears as a key only if at least one expense references it.
func ExpensesByCategory(txs []Transaction) map[string]Money {
	byCategory := make(map[string]Money)
	for _, t := range txs {
		if t.Type != Expense {
			continue
		}
		byCategory[t.Category] = byCategory[t.Category].Add(t.Amount)
	}
	return byCategory
}

// Totals is the dashboard view: live recomputed income, expenses and
// balance.
type Totals struct {
	TotalIncome   Money `json:"total_income"`
	TotalExpenses Money `json:"total_expenses"`
	Balance       Money `json:"balance"`
}

func ComputeTotals(txs []Transaction) Totals {
	income := TotalIncome(txs)
	expenses := TotalExpenses(txs)
	return Totals{
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       income.Sub(expenses),
	}
}
