package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period represents the recurrence cadence of a budget.
type Period string

const (
	PeriodWeekly    Period = "WEEKLY"
	PeriodMonthly   Period = "MONTHLY"
	PeriodQuarterly Period = "QUARTERLY"
	PeriodYearly    Period = "YEARLY"
)

// Valid reports whether p is one of the known cadences.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return true
	}
	return false
}

// AlertType identifies one of the three spend thresholds tracked per budget.
type AlertType string

const (
	Alert80  AlertType = "ALERT_80"
	Alert90  AlertType = "ALERT_90"
	Alert100 AlertType = "ALERT_100"
)

// AlertTypes lists all tracked thresholds in ascending order.
var AlertTypes = []AlertType{Alert80, Alert90, Alert100}

// Threshold returns the spend percentage at which the alert fires.
func (a AlertType) Threshold() float64 {
	switch a {
	case Alert80:
		return 80
	case Alert90:
		return 90
	case Alert100:
		return 100
	}
	return 0
}

// Budget represents a spending limit for a category or a whole workspace
// over one recurrence window.
type Budget struct {
	ID          string          `json:"id"`
	WorkspaceID string          `json:"workspaceId"`
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"categoryId,omitempty"` // empty = whole workspace
	Period      Period          `json:"period"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     time.Time       `json:"endDate"`
	IsActive    bool            `json:"isActive"`

	// Spent is a cache of the last aggregation; it is always recomputed
	// from transactions, never edited directly.
	Spent decimal.Decimal `json:"spent"`

	Alert80Sent  bool `json:"alert80Sent"`
	Alert90Sent  bool `json:"alert90Sent"`
	Alert100Sent bool `json:"alert100Sent"`

	CreatedAt time.Time `json:"createdAt"`
}

// Scope returns the transaction matching scope for the budget.
func (b *Budget) Scope() Scope {
	return Scope{WorkspaceID: b.WorkspaceID, CategoryID: b.CategoryID}
}

// AlertSent reports whether the flag for the given threshold is set.
func (b *Budget) AlertSent(t AlertType) bool {
	switch t {
	case Alert80:
		return b.Alert80Sent
	case Alert90:
		return b.Alert90Sent
	case Alert100:
		return b.Alert100Sent
	}
	return false
}

// SetAlertSent sets the flag for the given threshold.
func (b *Budget) SetAlertSent(t AlertType) {
	switch t {
	case Alert80:
		b.Alert80Sent = true
	case Alert90:
		b.Alert90Sent = true
	case Alert100:
		b.Alert100Sent = true
	}
}

// BudgetAlert is the per-threshold trigger record owned by a budget.
// At most one exists per (budget, type); Triggered only ever goes
// false -> true within a period.
type BudgetAlert struct {
	BudgetID  string    `json:"budgetId"`
	Type      AlertType `json:"type"`
	Threshold float64   `json:"threshold"`
	Triggered bool      `json:"triggered"`
}
