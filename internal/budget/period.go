package budget

import (
	"time"

	"github.com/rocjay1/family-budget/internal/models"
)

// ResolvePeriod computes the concrete [start, end] window for a recurrence
// cadence anchored at the given date. The end is always the last tracked
// millisecond of the window.
//
// WEEKLY and MONTHLY windows start at the anchor itself; QUARTERLY and
// YEARLY snap to the calendar quarter/year containing the anchor.
func ResolvePeriod(period models.Period, anchor time.Time) (start, end time.Time) {
	switch period {
	case models.PeriodWeekly:
		start = anchor
		end = anchor.AddDate(0, 0, 7).Add(-time.Millisecond)
	case models.PeriodMonthly:
		start = anchor
		firstOfNext := time.Date(anchor.Year(), anchor.Month()+1, 1, 0, 0, 0, 0, anchor.Location())
		end = firstOfNext.Add(-time.Millisecond)
	case models.PeriodQuarterly:
		quarter := (int(anchor.Month()) - 1) / 3
		start = time.Date(anchor.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, anchor.Location())
		end = start.AddDate(0, 3, 0).Add(-time.Millisecond)
	case models.PeriodYearly:
		start = time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		end = start.AddDate(1, 0, 0).Add(-time.Millisecond)
	default:
		start = anchor
		end = anchor
	}
	return start, end
}

// NextWindow returns the window that follows the given one for the same
// cadence, used when a budget rolls over into its next period instance.
func NextWindow(period models.Period, start, end time.Time) (time.Time, time.Time) {
	next := end.Add(time.Millisecond)
	return ResolvePeriod(period, next)
}
