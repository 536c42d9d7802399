package services

import (
	"fmt"

	"github.com/google/uuid"

	"fintrack/internal/core"
)

// Alert rules run synchronously on every append, against the
// post-append ledger. There is no deduplication: a state that keeps
// qualifying keeps producing notifications on each append. New
// notifications are prepended so the list stays newest first.
//
// The budget rule only applies to expense appends; the cashflow rule is
// evaluated on every append, so an income that still leaves expenses
// ahead re-fires it. Rule order matters for the final list: the budget
// rule runs first and the cashflow rule second, so when both fire the
// cashflow alert ends up at the head.

// runAlertRules must be called with t.mu held. It returns the
// notifications created by this append, in creation order.
func (t *Tracker) runAlertRules(txn core.Transaction) []core.Notification {
	txs := t.ledger.All()
	var fired []core.Notification

	// Budget rule: the first configured budget matching the expense's
	// category decides; later duplicates are ignored.
	if txn.Type == core.Expense {
		for _, b := range t.budgets {
			if b.Category != txn.Category {
				continue
			}
			spent := core.SpentForCategory(txs, b.Category)
			if spent.GreaterThan(b.Limit) {
				fired = append(fired, core.Notification{
					ID:        uuid.New(),
					OwnerID:   t.ownerID,
					Title:     "Budget Alert",
					Message:   fmt.Sprintf("You've exceeded your budget for %s", b.Category),
					Kind:      core.KindOverspending,
					CreatedAt: t.now(),
				})
			}
			break
		}
	}

	// Cashflow rule: total expenses strictly above total income.
	if core.TotalExpenses(txs).GreaterThan(core.TotalIncome(txs)) {
		fired = append(fired, core.Notification{
			ID:        uuid.New(),
			OwnerID:   t.ownerID,
			Title:     "Overspending Alert",
			Message:   "Your expenses have exceeded your income!",
			Kind:      core.KindAlert,
			CreatedAt: t.now(),
		})
	}

	for _, n := range fired {
		t.notifications = append([]core.Notification{n}, t.notifications...)
	}
	return fired
}
