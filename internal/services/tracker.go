// Package services orchestrates the per-owner financial state: ledger
// appends, budget and goal configuration, derived views, and the alert
// rules that fire on every append.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

// Publisher fans out freshly created notifications. Implementations must
// not block the append path for long; delivery failures are logged and
// swallowed.
type Publisher interface {
	PublishNotification(ctx context.Context, n core.Notification) error
}

// Tracker holds all financial state for a single owner. All methods are
// safe for concurrent use; a mutex serializes appends and reads so every
// derived view observes a consistent ledger snapshot.
type Tracker struct {
	mu sync.Mutex

	ownerID       string
	ledger        *core.Ledger
	budgets       []core.Budget
	goals         []core.Goal
	notifications []core.Notification

	logger    *log.Logger
	publisher Publisher
	now       func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

func WithLogger(logger *log.Logger) Option {
	return func(t *Tracker) { t.logger = logger }
}

// WithPublisher attaches a notification publisher. Pass a non-nil
// implementation only; omitting the option disables fan-out.
func WithPublisher(p Publisher) Option {
	return func(t *Tracker) { t.publisher = p }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

func NewTracker(ownerID string, opts ...Option) *Tracker {
	t := &Tracker{
		ownerID: ownerID,
		ledger:  core.NewLedger(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = log.New(log.DefaultConfig()).WithComponent(log.ComponentTracker)
	}
	return t
}

func (t *Tracker) OwnerID() string { return t.ownerID }

// AddTransaction validates and appends a transaction, then runs the
// alert rules against the post-append state. Validation failures leave
// the ledger untouched and produce no notifications.
func (t *Tracker) AddTransaction(ctx context.Context, typ core.TransactionType, amount core.Money, description, category string, date time.Time) (core.Transaction, error) {
	txn, err := core.NewTransaction(t.ownerID, typ, amount, description, category, date)
	if err != nil {
		return core.Transaction{}, err
	}

	t.mu.Lock()
	t.ledger.Append(txn)
	fired := t.runAlertRules(txn)
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "transaction recorded",
		log.FieldOwnerID, t.ownerID,
		log.FieldTransactionID, txn.ID.String(),
		log.FieldCategory, txn.Category,
		log.FieldAmountCents, txn.Amount.Cents,
	)

	t.publish(ctx, fired)
	return txn, nil
}

// AddBudget registers a budget. Duplicates for the same category are
// allowed; each is evaluated independently.
func (t *Tracker) AddBudget(ctx context.Context, category string, limit core.Money, period core.BudgetPeriod) (core.Budget, error) {
	b, err := core.NewBudget(t.ownerID, category, limit, period)
	if err != nil {
		return core.Budget{}, err
	}

	t.mu.Lock()
	t.budgets = append(t.budgets, b)
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "budget registered",
		log.FieldOwnerID, t.ownerID,
		log.FieldBudgetID, b.ID.String(),
		log.FieldCategory, b.Category,
	)
	return b, nil
}

func (t *Tracker) AddGoal(ctx context.Context, title string, target core.Money, deadline time.Time, collaborators []string) (core.Goal, error) {
	g, err := core.NewGoal(t.ownerID, title, target, deadline, collaborators)
	if err != nil {
		return core.Goal{}, err
	}

	t.mu.Lock()
	t.goals = append(t.goals, g)
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "goal registered",
		log.FieldOwnerID, t.ownerID,
		log.FieldGoalID, g.ID.String(),
	)
	return g, nil
}

// MarkNotificationRead flips the read flag on a notification. Unknown
// IDs are a no-op, as is marking an already-read notification.
func (t *Tracker) MarkNotificationRead(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.notifications {
		if t.notifications[i].ID == id {
			t.notifications[i].Read = true
			return
		}
	}
}

// Transactions returns the ledger contents in append order.
func (t *Tracker) Transactions() []core.Transaction {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ledger.All()
}

func (t *Tracker) Budgets() []core.Budget {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]core.Budget, len(t.budgets))
	copy(out, t.budgets)
	return out
}

func (t *Tracker) Goals() []core.Goal {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]core.Goal, len(t.goals))
	copy(out, t.goals)
	return out
}

// Notifications returns notifications newest first.
func (t *Tracker) Notifications() []core.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]core.Notification, len(t.notifications))
	copy(out, t.notifications)
	return out
}

// UnreadCount reports how many notifications are still unread.
func (t *Tracker) UnreadCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	count := 0
	for _, n := range t.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Totals recomputes income, expenses and balance from the full ledger.
func (t *Tracker) Totals() core.Totals {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.ComputeTotals(t.ledger.All())
}

// BudgetStatuses evaluates every budget against the full ledger.
func (t *Tracker) BudgetStatuses() []core.BudgetStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.EvaluateBudgets(t.budgets, t.ledger.All())
}

// GoalStatuses evaluates every goal against the current clock.
func (t *Tracker) GoalStatuses() []core.GoalStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.EvaluateGoals(t.goals, t.now())
}

// Dashboard is the aggregate view served to clients: totals, per-budget
// and per-goal evaluations, and the notification list.
type Dashboard struct {
	Totals        core.Totals         `json:"totals"`
	Budgets       []core.BudgetStatus `json:"budgets"`
	Goals         []core.GoalStatus   `json:"goals"`
	Notifications []core.Notification `json:"notifications"`
}

func (t *Tracker) Dashboard() Dashboard {
	t.mu.Lock()
	defer t.mu.Unlock()
	txs := t.ledger.All()
	notifications := make([]core.Notification, len(t.notifications))
	copy(notifications, t.notifications)
	return Dashboard{
		Totals:        core.ComputeTotals(txs),
		Budgets:       core.EvaluateBudgets(t.budgets, txs),
		Goals:         core.EvaluateGoals(t.goals, t.now()),
		Notifications: notifications,
	}
}

// Report builds a period-scoped snapshot of the tracker state.
func (t *Tracker) Report(p core.Period) core.Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	return core.BuildReport(t.ledger.All(), t.budgets, t.goals, p, t.now())
}

func (t *Tracker) publish(ctx context.Context, fired []core.Notification) {
	if t.publisher == nil || len(fired) == 0 {
		return
	}
	for _, n := range fired {
		if err := t.publisher.PublishNotification(ctx, n); err != nil {
			t.logger.ErrorContext(ctx, "failed to publish notification",
				log.FieldNotificationID, n.ID.String(),
				log.FieldError, err,
			)
			// Don't fail the append - state is already updated locally
		}
	}
}
