package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal represents a workspace savings target with a deadline.
type SavingsGoal struct {
	ID            string          `json:"id"`
	WorkspaceID   string          `json:"workspaceId"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    time.Time       `json:"targetDate"`
	IsActive      bool            `json:"isActive"`

	// IsCompleted and CompletedAt are set exactly once, when
	// CurrentAmount first reaches TargetAmount.
	IsCompleted bool       `json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// SavingsContribution is a single deposit toward a goal. The sum of a
// goal's contributions equals its CurrentAmount; both are written in
// the same storage transaction.
type SavingsContribution struct {
	ID          string          `json:"id"`
	GoalID      string          `json:"goalId"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}
