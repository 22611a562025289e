package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateProgress_Normal(t *testing.T) {
	p := CalculateProgress(decimal.NewFromInt(1000), decimal.NewFromInt(400))

	assert.True(t, p.Remaining.Equal(decimal.NewFromInt(600)))
	assert.InDelta(t, 40.0, p.Percentage, 0.001)
	assert.False(t, p.IsOverBudget)
}

func TestCalculateProgress_OverBudgetCapsPercentage(t *testing.T) {
	p := CalculateProgress(decimal.NewFromInt(1000000), decimal.NewFromInt(1200000))

	assert.Equal(t, 100.0, p.Percentage)
	assert.True(t, p.IsOverBudget)
	assert.True(t, p.Remaining.IsZero())
}

func TestCalculateProgress_ExactlyAtLimit(t *testing.T) {
	p := CalculateProgress(decimal.NewFromInt(500), decimal.NewFromInt(500))

	assert.Equal(t, 100.0, p.Percentage)
	assert.False(t, p.IsOverBudget)
	assert.True(t, p.Remaining.IsZero())
}

func TestCalculateProgress_ZeroAllocation(t *testing.T) {
	p := CalculateProgress(decimal.Zero, decimal.Zero)

	assert.Equal(t, 100.0, p.Percentage)
	assert.False(t, p.IsOverBudget)

	p = CalculateProgress(decimal.Zero, decimal.NewFromInt(10))
	assert.Equal(t, 100.0, p.Percentage)
	assert.True(t, p.IsOverBudget)
}

func TestUsagePercent_Uncapped(t *testing.T) {
	percent := usagePercent(decimal.NewFromInt(1000), decimal.NewFromInt(1200))
	assert.InDelta(t, 120.0, percent, 0.001)

	assert.Equal(t, 0.0, usagePercent(decimal.Zero, decimal.Zero))
	assert.True(t, usagePercent(decimal.Zero, decimal.NewFromInt(1)) > 100)
}

func TestCalculateSavings_InProgress(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	targetDate := now.AddDate(0, 0, 60)

	m := CalculateSavings(decimal.NewFromInt(2500), decimal.NewFromInt(10000), targetDate, now)

	assert.True(t, m.Remaining.Equal(decimal.NewFromInt(7500)))
	assert.InDelta(t, 25.0, m.Percentage, 0.001)
	assert.False(t, m.IsCompleted)
	assert.Equal(t, 60, m.DaysRemaining)
	// 7500 spread over two months
	assert.True(t, m.MonthlyRequired.Equal(decimal.NewFromInt(3750)), "got %s", m.MonthlyRequired)
}

func TestCalculateSavings_DeadlinePassed(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	targetDate := now.AddDate(0, 0, -10)

	m := CalculateSavings(decimal.NewFromInt(100), decimal.NewFromInt(1000), targetDate, now)

	assert.Equal(t, 0, m.DaysRemaining)
	// Guard divides by one month, never by zero.
	assert.True(t, m.MonthlyRequired.Equal(decimal.NewFromInt(900)), "got %s", m.MonthlyRequired)
}

func TestCalculateSavings_Completed(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	m := CalculateSavings(decimal.NewFromInt(12000), decimal.NewFromInt(10000), now.AddDate(0, 1, 0), now)

	assert.True(t, m.IsCompleted)
	assert.Equal(t, 100.0, m.Percentage)
	assert.True(t, m.Remaining.IsZero())
	assert.True(t, m.MonthlyRequired.IsZero())
}
