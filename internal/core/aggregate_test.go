package core

import (
	"testing"
	"time"

	"github.com/carlmjohnson/be"
	"github.com/google/uuid"
)

func tx(typ TransactionType, cents int64, category string, date time.Time) Transaction {
	return Transaction{
		ID:          uuid.New(),
		OwnerID:     "owner",
		Type:        typ,
		Amount:      Money{Cents: cents},
		Description: "test",
		Category:    category,
		Date:        date,
	}
}

func TestSumEmptySetIsZero(t *testing.T) {
	be.Equal(t, int64(0), Sum(nil, func(Transaction) bool { return true }).Cents)
	be.Equal(t, int64(0), Sum([]Transaction{}, func(Transaction) bool { return false }).Cents)
}

func TestTotalsSplitByType(t *testing.T) {
	txs := []Transaction{
		tx(Income, 100000, "Salary", testDate),
		tx(Expense, 25000, "Food", testDate),
		tx(Expense, 10000, "Transportation", testDate),
		tx(Income, 5000, "Freelance", testDate),
	}

	be.Equal(t, int64(105000), TotalIncome(txs).Cents)
	be.Equal(t, int64(35000), TotalExpenses(txs).Cents)
	be.Equal(t, int64(70000), Balance(txs).Cents)
}

func TestBalanceEqualsIncomeMinusExpenses(t *testing.T) {
	// The identity must hold at every prefix of the ledger, not just at
	// the end, since views can be computed between any two appends.
	txs := []Transaction{
		tx(Income, 333, "Salary", testDate),
		tx(Expense, 111, "Food", testDate),
		tx(Expense, 997, "Housing", testDate),
		tx(Income, 13, "Other", testDate),
	}
	for i := range txs {
		prefix := txs[:i+1]
		want := TotalIncome(prefix).Sub(TotalExpenses(prefix))
		be.Equal(t, want.Cents, Balance(prefix).Cents)
	}
}

func TestExpensesByCategory(t *testing.T) {
	txs := []Transaction{
		tx(Expense, 1000, "Food", testDate),
		tx(Expense, 2500, "Food", testDate),
		tx(Expense, 700, "Utilities", testDate),
		tx(Income, 99999, "Salary", testDate),
	}

	got := ExpensesByCategory(txs)
	be.Equal(t, 2, len(got))
	be.Equal(t, int64(3500), got["Food"].Cents)
	be.Equal(t, int64(700), got["Utilities"].Cents)

	// Income categories never appear, even when no expense shares them.
	_, ok := got["Salary"]
	be.Equal(t, false, ok)
}

func TestSpentForCategoryIgnoresIncome(t *testing.T) {
	txs := []Transaction{
		tx(Expense, 1500, "Food", testDate),
		tx(Income, 8000, "Food", testDate),
	}
	be.Equal(t, int64(1500), SpentForCategory(txs, "Food").Cents)
	be.Equal(t, int64(0), SpentForCategory(txs, "Housing").Cents)
}

func TestComputeTotals(t *testing.T) {
	txs := []Transaction{
		tx(Income, 100000, "Salary", testDate),
		tx(Expense, 25000, "Food", testDate),
	}
	totals := ComputeTotals(txs)
	be.Equal(t, int64(100000), totals.TotalIncome.Cents)
	be.Equal(t, int64(25000), totals.TotalExpenses.Cents)
	be.Equal(t, int64(75000), totals.Balance.Cents)
}
