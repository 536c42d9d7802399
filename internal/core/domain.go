// Package core implements the financial aggregation engine: the ledger,
// the pure aggregate functions, budget and goal evaluation, and report
// building. Nothing in this package performs I/O; callers supply state
// and receive derived views.
package core

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

type BudgetPeriod string

const (
	Monthly BudgetPeriod = "monthly"
	Yearly  BudgetPeriod = "yearly"
)

type NotificationKind string

const (
	KindAlert        NotificationKind = "alert"
	KindReminder     NotificationKind = "reminder"
	KindOverspending NotificationKind = "overspending"
)

// Transaction is an immutable ledger entry. There is no edit or delete
// path; once appended it stays as recorded.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Type        TransactionType `json:"type"`
	Amount      Money           `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
}

// Budget is configuration only. The amount spent against it is never
// stored; it is always derived from the ledger at read time.
type Budget struct {
	ID       uuid.UUID    `json:"id"`
	OwnerID  string       `json:"owner_id"`
	Category string       `json:"category"`
	Limit    Money        `json:"limit"`
	Period   BudgetPeriod `json:"period"`
}

// Goal is a savings target. Current starts at zero and has no mutator;
// goals are display-only in the current scope.
type Goal struct {
	ID            uuid.UUID `json:"id"`
	OwnerID       string    `json:"owner_id"`
	Title         string    `json:"title"`
	Target        Money     `json:"target"`
	Current       Money     `json:"current"`
	Deadline      time.Time `json:"deadline"`
	Collaborators []string  `json:"collaborators"`
}

// Notification is created only by the alert rules in the services layer.
// Read flips false to true exactly once; no other field changes after
// creation.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	OwnerID   string           `json:"owner_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Kind      NotificationKind `json:"kind"`
	CreatedAt time.Time        `json:"created_at"`
	Read      bool             `json:"read"`
}

var (
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrEmptyCategory    = errors.New("category cannot be empty")
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidType      = errors.New("unknown transaction type")
	ErrInvalidPeriod    = errors.New("unknown period")
	ErrInvalidDate      = errors.New("invalid date")
)

// ValidationError ties a sentinel error to the offending input field so
// callers can report it back. Inputs are rejected before any state
// mutation happens.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

func (t Transaction) Validate() error {
	if t.Type != Income && t.Type != Expense {
		return invalid("type", ErrInvalidType)
	}
	if t.Amount.Cents <= 0 {
		return invalid("amount", ErrInvalidAmount)
	}
	if strings.TrimSpace(t.Description) == "" {
		return invalid("description", ErrEmptyDescription)
	}
	if len(t.Description) > 200 {
		return invalid("description", errors.New("description too long (max 200 characters)"))
	}
	if strings.TrimSpace(t.Category) == "" {
		return invalid("category", ErrEmptyCategory)
	}
	if t.Date.IsZero() {
		return invalid("date", ErrInvalidDate)
	}
	return nil
}

func (b Budget) Validate() error {
	if strings.TrimSpace(b.Category) == "" {
		return invalid("category", ErrEmptyCategory)
	}
	if b.Limit.Cents <= 0 {
		return invalid("amount", ErrInvalidAmount)
	}
	if b.Period != Monthly && b.Period != Yearly {
		return invalid("period", ErrInvalidPeriod)
	}
	return nil
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return invalid("title", ErrEmptyTitle)
	}
	if g.Target.Cents <= 0 {
		return invalid("target_amount", ErrInvalidAmount)
	}
	if g.Deadline.IsZero() {
		return invalid("deadline", ErrInvalidDate)
	}
	return nil
}

// NewTransaction validates the inputs and returns the record that will be
// stored. Validation failures leave no trace anywhere.
func NewTransaction(ownerID string, typ TransactionType, amount Money, description, category string, date time.Time) (Transaction, error) {
	t := Transaction{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Type:        typ,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		Category:    strings.TrimSpace(category),
		Date:        date,
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func NewBudget(ownerID, category string, limit Money, period BudgetPeriod) (Budget, error) {
	b := Budget{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Category: strings.TrimSpace(category),
		Limit:    limit,
		Period:   period,
	}
	if err := b.Validate(); err != nil {
		return Budget{}, err
	}
	return b, nil
}

func NewGoal(ownerID, title string, target Money, deadline time.Time, collaborators []string) (Goal, error) {
	cleaned := make([]string, 0, len(collaborators))
	for _, c := range collaborators {
		if c = strings.TrimSpace(c); c != "" {
			cleaned = append(cleaned, c)
		}
	}
	g := Goal{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Title:         strings.TrimSpace(title),
		Target:        target,
		Deadline:      deadline,
		Collaborators: cleaned,
	}
	if err := g.Validate(); err != nil {
		return Goal{}, err
	}
	return g, nil
}
