package core

import "math"

type BudgetState string

const (
	OnTrack    BudgetState = "on_track"
	OverBudget BudgetState = "over_budget"
)

// BudgetStatus is the live evaluation of one budget against the ledger.
// Spent is derived on every call; the Budget entity never carries it.
type BudgetStatus struct {
	Budget  Budget      `json:"budget"`
	Spent   Money       `json:"spent"`
	Percent float64     `json:"percent"`
	State   BudgetState `json:"state"`
}

// EvaluateBudget computes category spend over the supplied transactions
// and classifies the budget. Spending exactly the limit is still on
// track; only percent > 100 is over. A non-positive limit cannot be
// created through validation, but if one is supplied it is treated as
// already exceeded.
func EvaluateBudget(b Budget, txs []Transaction) BudgetStatus {
	spent := SpentForCategory(txs, b.Category)
	status := BudgetStatus{Budget: b, Spent: spent, State: OnTrack}
	if b.Limit.Cents <= 0 {
		status.Percent = math.Inf(1)
		status.State = OverBudget
		return status
	}
	status.Percent = float64(spent.Cents) / float64(b.Limit.Cents) * 100
	if status.Percent > 100 {
		status.State = OverBudget
	}
	return status
}

// EvaluateBudgets evaluates each budget independently, duplicates
// included, preserving configuration order.
func EvaluateBudgets(budgets []Budget, txs []Transaction) []BudgetStatus {
	statuses := make([]BudgetStatus, len(budgets))
	for i, b := range budgets {
		statuses[i] = EvaluateBudget(b, txs)
	}
	return statuses
}
