package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rocjay1/family-budget/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleGoal(id string) models.SavingsGoal {
	return models.SavingsGoal{
		ID:            id,
		WorkspaceID:   "ws-1",
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(50000),
		CurrentAmount: decimal.NewFromInt(35000),
		TargetDate:    time.Now().AddDate(1, 0, 0),
		IsActive:      true,
		CreatedAt:     time.Now().AddDate(0, -2, 0),
	}
}

func TestHandleGoals_List(t *testing.T) {
	mockDB := &MockDatabaseClient{
		ListGoalsFunc: func(ctx context.Context, workspaceID string) ([]models.SavingsGoal, error) {
			return []models.SavingsGoal{sampleGoal("g-1")}, nil
		},
	}
	deps := testDeps(mockDB)

	req := httptest.NewRequest(http.MethodGet, "/api/goals", nil)
	w := httptest.NewRecorder()
	deps.HandleGoals(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Vacation")
}

func TestHandleGoals_Create(t *testing.T) {
	var created models.SavingsGoal
	mockDB := &MockDatabaseClient{
		CreateGoalFunc: func(ctx context.Context, g models.SavingsGoal) error {
			created = g
			return nil
		},
	}
	deps := testDeps(mockDB)

	body := `{"name":"New Car","targetAmount":20000,"targetDate":"2030-01-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(body))
	w := httptest.NewRecorder()
	deps.HandleGoals(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.True(t, created.CurrentAmount.IsZero())
}

func TestHandleGoals_CreatePastTargetDate(t *testing.T) {
	deps := testDeps(&MockDatabaseClient{})

	body := `{"name":"Too Late","targetAmount":1000,"targetDate":"2020-01-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(body))
	w := httptest.NewRecorder()
	deps.HandleGoals(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleGoals_CreatePlanLimit(t *testing.T) {
	mockDB := &MockDatabaseClient{
		ListGoalsFunc: func(ctx context.Context, workspaceID string) ([]models.SavingsGoal, error) {
			return []models.SavingsGoal{sampleGoal("g-1")}, nil
		},
	}
	deps := testDeps(mockDB)
	deps.Plan = models.PlanFree // free allows 1 goal

	body := `{"name":"Second","targetAmount":1000,"targetDate":"2030-01-01T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals", strings.NewReader(body))
	w := httptest.NewRecorder()
	deps.HandleGoals(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandleGoals_DeleteSoft(t *testing.T) {
	var saved models.SavingsGoal
	mockDB := &MockDatabaseClient{
		GetSavingsGoalFunc: func(ctx context.Context, goalID string) (*models.SavingsGoal, error) {
			g := sampleGoal(goalID)
			return &g, nil
		},
		CreateGoalFunc: func(ctx context.Context, g models.SavingsGoal) error {
			saved = g
			return nil
		},
	}
	deps := testDeps(mockDB)

	req := httptest.NewRequest(http.MethodDelete, "/api/goals?id=g-1", nil)
	w := httptest.NewRecorder()
	deps.HandleGoals(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, saved.IsActive)
}

func TestHandleGoalProgress(t *testing.T) {
	mockDB := &MockDatabaseClient{
		GetSavingsGoalFunc: func(ctx context.Context, goalID string) (*models.SavingsGoal, error) {
			g := sampleGoal(goalID)
			return &g, nil
		},
	}
	deps := testDeps(mockDB)

	req := httptest.NewRequest(http.MethodGet, "/api/goals/progress?id=g-1", nil)
	w := httptest.NewRecorder()
	deps.HandleGoalProgress(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status"`)
	assert.Contains(t, w.Body.String(), `"percentage":70`)
}

func TestHandleContributions_Add(t *testing.T) {
	var appliedGoal models.SavingsGoal
	mockDB := &MockDatabaseClient{
		GetSavingsGoalFunc: func(ctx context.Context, goalID string) (*models.SavingsGoal, error) {
			g := sampleGoal(goalID)
			return &g, nil
		},
		ApplyContributionFunc: func(ctx context.Context, goal models.SavingsGoal, contribution models.SavingsContribution) error {
			appliedGoal = goal
			return nil
		},
	}
	deps := testDeps(mockDB)

	body := `{"goalId":"g-1","amount":5000,"description":"bonus"}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals/contributions", strings.NewReader(body))
	w := httptest.NewRecorder()
	deps.HandleContributions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, appliedGoal.CurrentAmount.Equal(decimal.NewFromInt(40000)))
	assert.False(t, appliedGoal.IsCompleted)
}

func TestHandleContributions_AddCompletesGoal(t *testing.T) {
	var appliedGoal models.SavingsGoal
	mockDB := &MockDatabaseClient{
		GetSavingsGoalFunc: func(ctx context.Context, goalID string) (*models.SavingsGoal, error) {
			g := sampleGoal(goalID)
			return &g, nil
		},
		ApplyContributionFunc: func(ctx context.Context, goal models.SavingsGoal, contribution models.SavingsContribution) error {
			appliedGoal = goal
			return nil
		},
	}
	deps := testDeps(mockDB)

	body := `{"goalId":"g-1","amount":15000}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals/contributions", strings.NewReader(body))
	w := httptest.NewRecorder()
	deps.HandleContributions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, appliedGoal.IsCompleted)
	assert.NotNil(t, appliedGoal.CompletedAt)
}

func TestHandleContributions_AddInactiveGoal(t *testing.T) {
	mockDB := &MockDatabaseClient{
		GetSavingsGoalFunc: func(ctx context.Context, goalID string) (*models.SavingsGoal, error) {
			g := sampleGoal(goalID)
			g.IsActive = false
			return &g, nil
		},
	}
	deps := testDeps(mockDB)

	body := `{"goalId":"g-1","amount":100}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals/contributions", strings.NewReader(body))
	w := httptest.NewRecorder()
	deps.HandleContributions(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleContributions_AddRejectsZeroAmount(t *testing.T) {
	deps := testDeps(&MockDatabaseClient{})

	body := `{"goalId":"g-1","amount":0}`
	req := httptest.NewRequest(http.MethodPost, "/api/goals/contributions", strings.NewReader(body))
	w := httptest.NewRecorder()
	deps.HandleContributions(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleContributions_UpdateRequiresID(t *testing.T) {
	deps := testDeps(&MockDatabaseClient{})

	body := `{"goalId":"g-1","amount":100}`
	req := httptest.NewRequest(http.MethodPut, "/api/goals/contributions", strings.NewReader(body))
	w := httptest.NewRecorder()
	deps.HandleContributions(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleContributions_Delete(t *testing.T) {
	var removedGoal models.SavingsGoal
	mockDB := &MockDatabaseClient{
		GetSavingsGoalFunc: func(ctx context.Context, goalID string) (*models.SavingsGoal, error) {
			g := sampleGoal(goalID)
			return &g, nil
		},
		GetContributionFunc: func(ctx context.Context, goalID, contributionID string) (*models.SavingsContribution, error) {
			return &models.SavingsContribution{
				ID:     contributionID,
				GoalID: goalID,
				Amount: decimal.NewFromInt(5000),
			}, nil
		},
		RemoveContributionFunc: func(ctx context.Context, goal models.SavingsGoal, contributionID string) error {
			removedGoal = goal
			return nil
		},
	}
	deps := testDeps(mockDB)

	req := httptest.NewRequest(http.MethodDelete, "/api/goals/contributions?goalId=g-1&id=c-1", nil)
	w := httptest.NewRecorder()
	deps.HandleContributions(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, removedGoal.CurrentAmount.Equal(decimal.NewFromInt(30000)))
}

func TestHandleContributionList(t *testing.T) {
	mockDB := &MockDatabaseClient{
		ListContributionsFunc: func(ctx context.Context, goalID string) ([]models.SavingsContribution, error) {
			return []models.SavingsContribution{
				{ID: "c-1", GoalID: goalID, Amount: decimal.NewFromInt(5000)},
			}, nil
		},
	}
	deps := testDeps(mockDB)

	req := httptest.NewRequest(http.MethodGet, "/api/goals/contributions?goalId=g-1", nil)
	w := httptest.NewRecorder()
	deps.HandleContributionList(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "c-1")
}
