package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rocjay1/family-budget/internal/budget"
	"github.com/rocjay1/family-budget/internal/models"
	"github.com/shopspring/decimal"
)

type createGoalRequest struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	TargetDate   time.Time       `json:"targetDate"`
}

type contributionRequest struct {
	GoalID      string          `json:"goalId"`
	ID          string          `json:"id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`
}

// HandleGoals handles GET, POST, and DELETE requests for savings goals.
func (d *Dependencies) HandleGoals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		d.listGoals(w, r)
	case http.MethodPost:
		d.createGoal(w, r)
	case http.MethodDelete:
		d.deleteGoal(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (d *Dependencies) listGoals(w http.ResponseWriter, r *http.Request) {
	goals, err := d.Database.ListGoals(r.Context(), d.WorkspaceID)
	if err != nil {
		slog.Error("failed to list goals", "workspace_id", d.WorkspaceID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list goals: "+err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, goals)
}

func (d *Dependencies) createGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("invalid goal request body", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		WriteDomainError(w, models.Invalid("name", "is required"))
		return
	}
	if !req.TargetAmount.IsPositive() {
		WriteDomainError(w, models.Invalid("targetAmount", "must be greater than zero"))
		return
	}
	if !req.TargetDate.After(time.Now()) {
		WriteDomainError(w, models.Invalid("targetDate", "must be in the future"))
		return
	}

	existing, err := d.Database.ListGoals(r.Context(), d.WorkspaceID)
	if err != nil {
		slog.Error("failed to count goals", "workspace_id", d.WorkspaceID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list goals: "+err.Error())
		return
	}
	if caps := d.capabilities(); len(existing) >= caps.MaxGoals {
		slog.Warn("goal limit reached for plan", "plan", d.Plan, "limit", caps.MaxGoals)
		WriteError(w, http.StatusForbidden, fmt.Sprintf("Plan %s allows at most %d goals", d.Plan, caps.MaxGoals))
		return
	}

	g := models.SavingsGoal{
		ID:            uuid.NewString(),
		WorkspaceID:   d.WorkspaceID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    req.TargetDate,
		IsActive:      true,
		CreatedAt:     time.Now(),
	}

	if err := d.Database.CreateGoal(r.Context(), g); err != nil {
		slog.Error("failed to create goal", "name", g.Name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to create goal: "+err.Error())
		return
	}

	slog.Info("created goal", "goal_id", g.ID, "name", g.Name, "target_date", g.TargetDate)
	WriteJSON(w, http.StatusOK, g)
}

// deleteGoal soft-deletes by default; ?hard=true removes the goal and
// every contribution it owns.
func (d *Dependencies) deleteGoal(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "id parameter is required")
		return
	}

	g, err := d.Database.GetSavingsGoal(r.Context(), id)
	if err != nil {
		slog.Error("failed to get goal", "goal_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to get goal: "+err.Error())
		return
	}
	if g == nil {
		WriteDomainError(w, fmt.Errorf("goal %s: %w", id, models.ErrNotFound))
		return
	}

	if r.URL.Query().Get("hard") == "true" {
		if err := d.Database.DeleteGoal(r.Context(), id); err != nil {
			slog.Error("failed to delete goal", "goal_id", id, "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to delete goal: "+err.Error())
			return
		}
		slog.Info("deleted goal", "goal_id", id)
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		return
	}

	g.IsActive = false
	if err := d.Database.CreateGoal(r.Context(), *g); err != nil {
		slog.Error("failed to deactivate goal", "goal_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to deactivate goal: "+err.Error())
		return
	}
	slog.Info("deactivated goal", "goal_id", id)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// HandleGoalProgress returns a goal's metrics and tracking status.
func (d *Dependencies) HandleGoalProgress(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "id parameter is required")
		return
	}

	g, err := d.Database.GetSavingsGoal(r.Context(), id)
	if err != nil {
		slog.Error("failed to get goal", "goal_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to get goal: "+err.Error())
		return
	}
	if g == nil {
		WriteDomainError(w, fmt.Errorf("goal %s: %w", id, models.ErrNotFound))
		return
	}

	WriteJSON(w, http.StatusOK, budget.ReportGoal(*g, time.Now()))
}

// HandleContributions handles POST (create), PUT (update), and DELETE
// for goal contributions. Every operation adjusts the parent goal's
// current amount in the same storage transaction.
func (d *Dependencies) HandleContributions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost, http.MethodPut:
		d.saveContribution(w, r)
	case http.MethodDelete:
		d.deleteContribution(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (d *Dependencies) saveContribution(w http.ResponseWriter, r *http.Request) {
	var req contributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("invalid contribution request body", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GoalID == "" {
		WriteDomainError(w, models.Invalid("goalId", "is required"))
		return
	}

	svc := d.savingsService()
	var (
		contribution *models.SavingsContribution
		err          error
	)
	if r.Method == http.MethodPut {
		if req.ID == "" {
			WriteDomainError(w, models.Invalid("id", "is required for update"))
			return
		}
		contribution, err = svc.Update(r.Context(), req.GoalID, req.ID, req.Amount, req.Description)
	} else {
		contribution, err = svc.Add(r.Context(), req.GoalID, req.Amount, req.Date, req.Description)
	}
	if err != nil {
		slog.Error("failed to save contribution", "goal_id", req.GoalID, "error", err)
		WriteDomainError(w, err)
		return
	}

	slog.Info("saved contribution", "goal_id", req.GoalID, "contribution_id", contribution.ID, "amount", contribution.Amount)
	WriteJSON(w, http.StatusOK, contribution)
}

func (d *Dependencies) deleteContribution(w http.ResponseWriter, r *http.Request) {
	goalID := r.URL.Query().Get("goalId")
	id := r.URL.Query().Get("id")
	if goalID == "" || id == "" {
		WriteError(w, http.StatusBadRequest, "goalId and id parameters are required")
		return
	}

	if err := d.savingsService().Delete(r.Context(), goalID, id); err != nil {
		slog.Error("failed to delete contribution", "goal_id", goalID, "contribution_id", id, "error", err)
		WriteDomainError(w, err)
		return
	}
	slog.Info("deleted contribution", "goal_id", goalID, "contribution_id", id)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// HandleContributionList returns all contributions for a goal.
func (d *Dependencies) HandleContributionList(w http.ResponseWriter, r *http.Request) {
	goalID := r.URL.Query().Get("goalId")
	if goalID == "" {
		WriteError(w, http.StatusBadRequest, "goalId parameter is required")
		return
	}

	contributions, err := d.Database.ListContributions(r.Context(), goalID)
	if err != nil {
		slog.Error("failed to list contributions", "goal_id", goalID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list contributions: "+err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, contributions)
}
