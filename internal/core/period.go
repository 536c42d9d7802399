package core

import (
	"strings"
	"time"
)

// Period is a rolling reporting window ending at now.
type Period string

const (
	Week  Period = "week"
	Month Period = "month"
	Year  Period = "year"
)

// ParsePeriod maps user input to a Period. Empty input selects the
// default month window.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return Month, nil
	case Week:
		return Week, nil
	case Month:
		return Month, nil
	case Year:
		return Year, nil
	default:
		return "", invalid("period", ErrInvalidPeriod)
	}
}

// Start returns the lower bound of the window ending at now. Month and
// year use calendar-aware subtraction, not fixed day counts, so a report
// generated on March 31st reaches back to the prior month's closest
// valid date.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Week:
		return now.AddDate(0, 0, -7)
	case Year:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// FilterByPeriod keeps transactions dated within [now - period, now],
// bounds inclusive.
func FilterByPeriod(txs []Transaction, p Period, now time.Time) []Transaction {
	start := p.Start(now)
	var out []Transaction
	for _, t := range txs {
		if t.Date.Before(start) || t.Date.After(now) {
			continue
		}
		out = append(out, t)
	}
	return out
}
