package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

var testDate = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestNewTransactionValidates(t *testing.T) {
	good, err := NewTransaction("owner", Expense, Money{Cents: 1250}, "groceries", "Food", testDate)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if good.ID.String() == "" || good.OwnerID != "owner" {
		t.Fatalf("transaction not populated: %+v", good)
	}

	cases := []struct {
		name  string
		typ   TransactionType
		cents int64
		desc  string
		cat   string
		date  time.Time
		field string
		want  error
	}{
		{"bad type", "transfer", 100, "d", "c", testDate, "type", ErrInvalidType},
		{"zero amount", Expense, 0, "d", "c", testDate, "amount", ErrInvalidAmount},
		{"negative amount", Income, -5, "d", "c", testDate, "amount", ErrInvalidAmount},
		{"blank description", Expense, 100, "  ", "c", testDate, "description", ErrEmptyDescription},
		{"long description", Expense, 100, strings.Repeat("x", 201), "c", testDate, "description", nil},
		{"blank category", Expense, 100, "d", "", testDate, "category", ErrEmptyCategory},
		{"zero date", Expense, 100, "d", "c", time.Time{}, "date", ErrInvalidDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTransaction("owner", tc.typ, Money{Cents: tc.cents}, tc.desc, tc.cat, tc.date)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("field = %q, want %q", verr.Field, tc.field)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewBudgetValidates(t *testing.T) {
	if _, err := NewBudget("owner", "Food", Money{Cents: 20000}, Monthly); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		name   string
		cat    string
		cents  int64
		period BudgetPeriod
		want   error
	}{
		{"blank category", " ", 100, Monthly, ErrEmptyCategory},
		{"zero limit", "Food", 0, Monthly, ErrInvalidAmount},
		{"bad period", "Food", 100, "weekly", ErrInvalidPeriod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBudget("owner", tc.cat, Money{Cents: tc.cents}, tc.period)
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNewGoalValidates(t *testing.T) {
	g, err := NewGoal("owner", "Buy a house", Money{Cents: 5000000}, testDate, []string{" a@example.com ", "", "b@example.com"})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if g.Current.Cents != 0 {
		t.Fatalf("current must start at zero, got %d", g.Current.Cents)
	}
	if len(g.Collaborators) != 2 || g.Collaborators[0] != "a@example.com" {
		t.Fatalf("collaborators not cleaned: %v", g.Collaborators)
	}

	if _, err := NewGoal("owner", "", Money{Cents: 1}, testDate, nil); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := NewGoal("owner", "t", Money{Cents: 0}, testDate, nil); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := NewGoal("owner", "t", Money{Cents: 1}, time.Time{}, nil); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
