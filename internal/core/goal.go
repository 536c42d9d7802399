package core

import (
	"math"
	"time"
)

// GoalStatus is the derived view of a savings goal. Nothing here mutates
// the goal.
type GoalStatus struct {
	Goal      Goal    `json:"goal"`
	Percent   float64 `json:"percent"`
	Remaining Money   `json:"remaining"`
	DaysLeft  int     `json:"days_left"`
}

// DaysUntil returns the number of whole days from now to the deadline,
// rounded up. A negative result means the deadline has passed; that is a
// display fact, not an error.
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

func EvaluateGoal(g Goal, now time.Time) GoalStatus {
	return GoalStatus{
		Goal:      g,
		Percent:   float64(g.Current.Cents) / float64(g.Target.Cents) * 100,
		Remaining: g.Target.Sub(g.Current),
		DaysLeft:  DaysUntil(g.Deadline, now),
	}
}

func EvaluateGoals(goals []Goal, now time.Time) []GoalStatus {
	statuses := make([]GoalStatus, len(goals))
	for i, g := range goals {
		statuses[i] = EvaluateGoal(g, now)
	}
	return statuses
}
