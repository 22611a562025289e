package budget

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Progress holds the derived spend metrics for one budget window.
type Progress struct {
	Allocated decimal.Decimal `json:"allocated"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	// Percentage is capped at 100 for display; IsOverBudget is not, so
	// both 100% and over-budget can be reported at once.
	Percentage   float64 `json:"percentage"`
	IsOverBudget bool    `json:"isOverBudget"`
}

// SavingsMetrics holds the derived metrics for one savings goal.
type SavingsMetrics struct {
	Current         decimal.Decimal `json:"current"`
	Target          decimal.Decimal `json:"target"`
	Remaining       decimal.Decimal `json:"remaining"`
	Percentage      float64         `json:"percentage"`
	IsCompleted     bool            `json:"isCompleted"`
	DaysRemaining   int             `json:"daysRemaining"`
	MonthlyRequired decimal.Decimal `json:"monthlyRequired"`
}

// CalculateProgress derives spend metrics from an allocated amount and the
// aggregated spend. A zero allocation reports 100% immediately and is
// over budget only when something was actually spent.
func CalculateProgress(allocated, spent decimal.Decimal) Progress {
	p := Progress{
		Allocated: allocated,
		Spent:     spent,
		Remaining: decimal.Max(decimal.Zero, allocated.Sub(spent)),
	}

	if allocated.IsZero() {
		p.Percentage = 100
		p.IsOverBudget = spent.IsPositive()
		return p
	}

	p.Percentage = math.Min(100, spent.Div(allocated).InexactFloat64()*100)
	p.IsOverBudget = spent.GreaterThan(allocated)
	return p
}

// usagePercent returns the uncapped spend percentage used for threshold
// checks. A zero allocation with positive spend exceeds every threshold;
// zero spend against a zero allocation crosses none.
func usagePercent(allocated, spent decimal.Decimal) float64 {
	if allocated.IsZero() {
		if spent.IsPositive() {
			return math.Inf(1)
		}
		return 0
	}
	return spent.Div(allocated).InexactFloat64() * 100
}

// CalculateSavings derives goal metrics from the current and target
// amounts. MonthlyRequired spreads the remaining amount over the months
// left before the deadline, with at least one month once the deadline is
// today or past.
func CalculateSavings(current, target decimal.Decimal, targetDate, now time.Time) SavingsMetrics {
	m := SavingsMetrics{
		Current:   current,
		Target:    target,
		Remaining: decimal.Max(decimal.Zero, target.Sub(current)),
	}

	if target.IsZero() {
		m.Percentage = 100
	} else {
		m.Percentage = math.Min(100, current.Div(target).InexactFloat64()*100)
	}
	m.IsCompleted = current.GreaterThanOrEqual(target)

	if days := math.Ceil(targetDate.Sub(now).Hours() / 24); days > 0 {
		m.DaysRemaining = int(days)
	}

	months := math.Max(1, float64(m.DaysRemaining)/30)
	m.MonthlyRequired = m.Remaining.Div(decimal.NewFromFloat(months)).Round(2)
	return m
}
