package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "INCOME"
	TypeExpense TransactionType = "EXPENSE"
)

// Transaction represents a single financial transaction in a workspace.
type Transaction struct {
	ID          string          `json:"id"`
	WorkspaceID string          `json:"workspaceId"`
	Name        string          `json:"name"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Category    Category        `json:"category"`
}

// Signed returns the amount with its balance sign applied: income adds,
// expense subtracts.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Scope selects the transactions a budget counts against: a single
// category within a workspace, or the whole workspace when CategoryID
// is empty.
type Scope struct {
	WorkspaceID string `json:"workspaceId"`
	CategoryID  string `json:"categoryId,omitempty"`
}
