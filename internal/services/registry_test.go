package services

import (
	"context"
	"sync"
	"testing"

	"github.com/carlmjohnson/be"

	"fintrack/internal/core"
)

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry(WithClock(fixedClock()))

	alice := r.GetOrCreate("alice")
	bob := r.GetOrCreate("bob")
	if alice == bob {
		t.Fatal("distinct owners must get distinct trackers")
	}
	be.Equal(t, 2, r.Len())

	// Repeated access returns the same instance.
	again := r.GetOrCreate("alice")
	if alice != again {
		t.Fatal("same owner must get the same tracker")
	}
	be.Equal(t, 2, r.Len())
}

func TestRegistryIsolatesOwners(t *testing.T) {
	r := NewRegistry(WithClock(fixedClock()))

	addExpense(t, r.GetOrCreate("alice"), 5000, "Food")

	be.Equal(t, 1, len(r.GetOrCreate("alice").Transactions()))
	be.Equal(t, 0, len(r.GetOrCreate("bob").Transactions()))
	be.Equal(t, 0, len(r.GetOrCreate("bob").Notifications()))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry(WithClock(fixedClock()))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr := r.GetOrCreate("shared")
			if _, err := tr.AddTransaction(context.Background(), core.Income, core.Money{Cents: 100}, "income", "Salary", testDate); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	be.Equal(t, 1, r.Len())
	tr := r.GetOrCreate("shared")
	be.Equal(t, 16, len(tr.Transactions()))
	be.Equal(t, int64(1600), tr.Totals().TotalIncome.Cents)
}
