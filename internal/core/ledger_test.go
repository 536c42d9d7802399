package core

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestLedgerAppendPreservesOrder(t *testing.T) {
	l := NewLedger()
	first := tx(Income, 100, "Salary", testDate)
	second := tx(Expense, 50, "Food", testDate)
	l.Append(first)
	l.Append(second)

	all := l.All()
	be.Equal(t, 2, len(all))
	be.Equal(t, first.ID, all[0].ID)
	be.Equal(t, second.ID, all[1].ID)
}

func TestLedgerAllReturnsCopy(t *testing.T) {
	l := NewLedger()
	l.Append(tx(Income, 100, "Salary", testDate))

	view := l.All()
	view[0].Amount = Money{Cents: 999999}
	view[0].Description = "tampered"

	again := l.All()
	be.Equal(t, int64(100), again[0].Amount.Cents)
	be.Equal(t, "test", again[0].Description)
}

func TestLedgerAppendDoesNotDisturbEarlierReads(t *testing.T) {
	l := NewLedger()
	l.Append(tx(Income, 100, "Salary", testDate))
	snapshot := l.All()

	l.Append(tx(Expense, 50, "Food", testDate))

	be.Equal(t, 1, len(snapshot))
	be.Equal(t, int64(100), snapshot[0].Amount.Cents)
	be.Equal(t, 2, l.Len())
}
