package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/rocjay1/family-budget/internal/models"
	"github.com/shopspring/decimal"
)

// Store is the data access the engine needs from the backing store.
type Store interface {
	GetBudget(ctx context.Context, workspaceID, budgetID string) (*models.Budget, error)
	ListBudgets(ctx context.Context, workspaceID string) ([]models.Budget, error)
	SaveBudget(ctx context.Context, budget models.Budget) error
	GetBudgetAlerts(ctx context.Context, workspaceID, budgetID string) ([]models.BudgetAlert, error)
	// MarkAlertTriggered flips the alert record and the matching budget
	// flag in a single storage transaction.
	MarkAlertTriggered(ctx context.Context, budget models.Budget, alertType models.AlertType) error
	ResetAlerts(ctx context.Context, budget models.Budget) error
	SumTransactions(ctx context.Context, scope models.Scope, start, end time.Time, txType models.TransactionType) (decimal.Decimal, error)
}

// Notifier delivers budget alert notifications. Delivery is best-effort;
// the engine logs and ignores send failures.
type Notifier interface {
	SendBudgetAlert(ctx context.Context, budget models.Budget, threshold, percent float64) error
}

// Report pairs a budget with its evaluated progress.
type Report struct {
	Budget   models.Budget `json:"budget"`
	Progress Progress      `json:"progress"`
}

// Engine evaluates budget spend against transactions and drives the
// threshold alert state machine. All state lives in the injected store.
type Engine struct {
	Store    Store
	Notifier Notifier
	Now      func() time.Time

	// ResetAlertsOnRollover controls whether the fired-alert flags clear
	// when a budget advances to its next period window.
	ResetAlertsOnRollover bool
}

// NewEngine returns an engine using the wall clock.
func NewEngine(store Store, notifier Notifier) *Engine {
	return &Engine{Store: store, Notifier: notifier, Now: time.Now}
}

// Evaluate recomputes a budget's spend from transactions, persists the
// cached total, and fires any newly crossed threshold alerts.
func (e *Engine) Evaluate(ctx context.Context, workspaceID, budgetID string) (Progress, error) {
	b, err := e.Store.GetBudget(ctx, workspaceID, budgetID)
	if err != nil {
		return Progress{}, fmt.Errorf("failed to get budget %s: %w", budgetID, err)
	}
	if b == nil {
		return Progress{}, fmt.Errorf("budget %s: %w", budgetID, models.ErrNotFound)
	}
	if !b.IsActive {
		return Progress{}, fmt.Errorf("budget %s is inactive: %w", budgetID, models.ErrInvalidState)
	}

	spent, err := e.Store.SumTransactions(ctx, b.Scope(), b.StartDate, b.EndDate, models.TypeExpense)
	if err != nil {
		return Progress{}, fmt.Errorf("failed to sum expenses for budget %s: %w", budgetID, err)
	}

	progress := CalculateProgress(b.Amount, spent)

	b.Spent = spent
	if err := e.Store.SaveBudget(ctx, *b); err != nil {
		return Progress{}, fmt.Errorf("failed to persist spent for budget %s: %w", budgetID, err)
	}

	if err := e.checkThresholds(ctx, b); err != nil {
		return Progress{}, err
	}

	return progress, nil
}

// EvaluateAll evaluates every active budget in a workspace. Inactive
// budgets are skipped, not errors.
func (e *Engine) EvaluateAll(ctx context.Context, workspaceID string) ([]Report, error) {
	budgets, err := e.Store.ListBudgets(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	reports := make([]Report, 0, len(budgets))
	for _, b := range budgets {
		if !b.IsActive {
			continue
		}
		progress, err := e.Evaluate(ctx, workspaceID, b.ID)
		if err != nil {
			return nil, err
		}
		b.Spent = progress.Spent
		reports = append(reports, Report{Budget: b, Progress: progress})
	}
	return reports, nil
}

// Rollover advances a budget into its next period window and clears the
// cached spend. Fired-alert flags reset only when configured to.
func (e *Engine) Rollover(ctx context.Context, workspaceID, budgetID string) (*models.Budget, error) {
	b, err := e.Store.GetBudget(ctx, workspaceID, budgetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget %s: %w", budgetID, err)
	}
	if b == nil {
		return nil, fmt.Errorf("budget %s: %w", budgetID, models.ErrNotFound)
	}
	if !b.IsActive {
		return nil, fmt.Errorf("budget %s is inactive: %w", budgetID, models.ErrInvalidState)
	}

	b.StartDate, b.EndDate = NextWindow(b.Period, b.StartDate, b.EndDate)
	b.Spent = decimal.Zero

	if e.ResetAlertsOnRollover {
		b.Alert80Sent = false
		b.Alert90Sent = false
		b.Alert100Sent = false
		if err := e.Store.ResetAlerts(ctx, *b); err != nil {
			return nil, fmt.Errorf("failed to reset alerts for budget %s: %w", budgetID, err)
		}
	}

	if err := e.Store.SaveBudget(ctx, *b); err != nil {
		return nil, fmt.Errorf("failed to save rolled-over budget %s: %w", budgetID, err)
	}
	return b, nil
}
