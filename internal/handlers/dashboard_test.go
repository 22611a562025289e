package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rocjay1/family-budget/internal/budget"
	"github.com/rocjay1/family-budget/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHandleDashboard(t *testing.T) {
	mockDB := &MockDatabaseClient{
		ListBudgetsFunc: func(ctx context.Context, workspaceID string) ([]models.Budget, error) {
			active := sampleBudget("b-1")
			inactive := sampleBudget("b-2")
			inactive.IsActive = false
			return []models.Budget{active, inactive}, nil
		},
		GetBudgetFunc: func(ctx context.Context, workspaceID, budgetID string) (*models.Budget, error) {
			b := sampleBudget(budgetID)
			return &b, nil
		},
		SumTransactionsFunc: func(ctx context.Context, scope models.Scope, start, end time.Time, txType models.TransactionType) (decimal.Decimal, error) {
			return decimal.NewFromInt(250), nil
		},
		ListGoalsFunc: func(ctx context.Context, workspaceID string) ([]models.SavingsGoal, error) {
			return []models.SavingsGoal{sampleGoal("g-1")}, nil
		},
	}
	deps := testDeps(mockDB)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	w := httptest.NewRecorder()
	deps.HandleDashboard(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Budgets []budget.Report     `json:"budgets"`
		Goals   []budget.GoalReport `json:"goals"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// The inactive budget is evaluated out of the view, not an error.
	assert.Len(t, resp.Budgets, 1)
	assert.InDelta(t, 25.0, resp.Budgets[0].Progress.Percentage, 0.001)
	assert.Len(t, resp.Goals, 1)
	assert.Equal(t, budget.StatusOnTrack, resp.Goals[0].Status)
}

func TestHandleDashboard_MethodNotAllowed(t *testing.T) {
	deps := testDeps(&MockDatabaseClient{})

	req := httptest.NewRequest(http.MethodPost, "/api/dashboard", nil)
	w := httptest.NewRecorder()
	deps.HandleDashboard(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
