package core

import "time"

// BudgetLine is one row of a report's budget section. Spent is computed
// over the period-filtered transactions, so a yearly report and a weekly
// report show different spend for the same budget.
type BudgetLine struct {
	Category  string `json:"category"`
	Budgeted  Money  `json:"budgeted"`
	Spent     Money  `json:"spent"`
	Remaining Money  `json:"remaining"`
}

type GoalLine struct {
	Title          string  `json:"title"`
	Progress       float64 `json:"progress_percent"`
	Remaining      Money   `json:"remaining_amount"`
	DaysToDeadline int     `json:"days_to_deadline"`
}

// Report is an immutable point-in-time snapshot assembled for external
// rendering. Building one has no effect on engine state.
type Report struct {
	Period             Period           `json:"period"`
	GeneratedAt        time.Time        `json:"generated_at"`
	TotalIncome        Money            `json:"total_income"`
	TotalExpenses      Money            `json:"total_expenses"`
	NetSavings         Money            `json:"net_savings"`
	SavingsRate        float64          `json:"savings_rate"`
	ExpensesByCategory map[string]Money `json:"expenses_by_category"`
	BudgetStatus       []BudgetLine     `json:"budget_status"`
	Goals              []GoalLine       `json:"goals"`
}

// BuildReport filters the ledger to the period window and assembles the
// snapshot. All budgets and goals are listed regardless of period; only
// transaction-derived numbers are window-scoped.
func BuildReport(txs []Transaction, budgets []Budget, goals []Goal, p Period, now time.Time) Report {
	window := FilterByPeriod(txs, p, now)
	income := TotalIncome(window)
	expenses := TotalExpenses(window)
	net := income.Sub(expenses)
	byCategory := ExpensesByCategory(window)

	// Zero income would divide by zero; the savings rate is defined as 0
	// in that case.
	var rate float64
	if income.Cents > 0 {
		rate = float64(net.Cents) / float64(income.Cents) * 100
	}

	report := Report{
		Period:             p,
		GeneratedAt:        now,
		TotalIncome:        income,
		TotalExpenses:      expenses,
		NetSavings:         net,
		SavingsRate:        rate,
		ExpensesByCategory: byCategory,
		BudgetStatus:       make([]BudgetLine, 0, len(budgets)),
		Goals:              make([]GoalLine, 0, len(goals)),
	}

	for _, b := range budgets {
		spent := byCategory[b.Category]
		report.BudgetStatus = append(report.BudgetStatus, BudgetLine{
			Category:  b.Category,
			Budgeted:  b.Limit,
			Spent:     spent,
			Remaining: b.Limit.Sub(spent),
		})
	}

	for _, g := range goals {
		status := EvaluateGoal(g, now)
		report.Goals = append(report.Goals, GoalLine{
			Title:          g.Title,
			Progress:       status.Percent,
			Remaining:      status.Remaining,
			DaysToDeadline: status.DaysLeft,
		})
	}

	return report
}
