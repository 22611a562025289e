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

type createBudgetRequest struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"categoryId"`
	Period     models.Period   `json:"period"`
	StartDate  time.Time       `json:"startDate"`
}

// HandleBudgets handles GET, POST, and DELETE requests for budgets.
func (d *Dependencies) HandleBudgets(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		d.listBudgets(w, r)
	case http.MethodPost:
		d.createBudget(w, r)
	case http.MethodDelete:
		d.deleteBudget(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (d *Dependencies) listBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := d.Database.ListBudgets(r.Context(), d.WorkspaceID)
	if err != nil {
		slog.Error("failed to list budgets", "workspace_id", d.WorkspaceID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list budgets: "+err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, budgets)
}

func (d *Dependencies) createBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("invalid budget request body", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		WriteDomainError(w, models.Invalid("name", "is required"))
		return
	}
	if !req.Amount.IsPositive() {
		WriteDomainError(w, models.Invalid("amount", "must be greater than zero"))
		return
	}
	if !req.Period.Valid() {
		WriteDomainError(w, models.Invalid("period", fmt.Sprintf("unknown period %q", req.Period)))
		return
	}

	existing, err := d.Database.ListBudgets(r.Context(), d.WorkspaceID)
	if err != nil {
		slog.Error("failed to count budgets", "workspace_id", d.WorkspaceID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list budgets: "+err.Error())
		return
	}
	if caps := d.capabilities(); len(existing) >= caps.MaxBudgets {
		slog.Warn("budget limit reached for plan", "plan", d.Plan, "limit", caps.MaxBudgets)
		WriteError(w, http.StatusForbidden, fmt.Sprintf("Plan %s allows at most %d budgets", d.Plan, caps.MaxBudgets))
		return
	}

	anchor := req.StartDate
	if anchor.IsZero() {
		anchor = time.Now()
	}
	start, end := budget.ResolvePeriod(req.Period, anchor)

	b := models.Budget{
		ID:          uuid.NewString(),
		WorkspaceID: d.WorkspaceID,
		Name:        req.Name,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Period:      req.Period,
		StartDate:   start,
		EndDate:     end,
		IsActive:    true,
		Spent:       decimal.Zero,
		CreatedAt:   time.Now(),
	}

	if err := d.Database.CreateBudget(r.Context(), b); err != nil {
		slog.Error("failed to create budget", "name", b.Name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to create budget: "+err.Error())
		return
	}

	slog.Info("created budget", "budget_id", b.ID, "name", b.Name, "period", b.Period)
	WriteJSON(w, http.StatusOK, b)
}

// deleteBudget soft-deletes by default; ?hard=true removes the budget
// and its alert records entirely.
func (d *Dependencies) deleteBudget(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "id parameter is required")
		return
	}

	b, err := d.Database.GetBudget(r.Context(), d.WorkspaceID, id)
	if err != nil {
		slog.Error("failed to get budget", "budget_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to get budget: "+err.Error())
		return
	}
	if b == nil {
		WriteDomainError(w, fmt.Errorf("budget %s: %w", id, models.ErrNotFound))
		return
	}

	if r.URL.Query().Get("hard") == "true" {
		if err := d.Database.DeleteBudget(r.Context(), d.WorkspaceID, id); err != nil {
			slog.Error("failed to delete budget", "budget_id", id, "error", err)
			WriteError(w, http.StatusInternalServerError, "Failed to delete budget: "+err.Error())
			return
		}
		slog.Info("deleted budget", "budget_id", id)
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		return
	}

	b.IsActive = false
	if err := d.Database.SaveBudget(r.Context(), *b); err != nil {
		slog.Error("failed to deactivate budget", "budget_id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to deactivate budget: "+err.Error())
		return
	}
	slog.Info("deactivated budget", "budget_id", id)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

// HandleBudgetProgress evaluates one budget: recomputes spend, persists
// the cache, and fires any newly crossed alerts.
func (d *Dependencies) HandleBudgetProgress(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "id parameter is required")
		return
	}

	progress, err := d.engine().Evaluate(r.Context(), d.WorkspaceID, id)
	if err != nil {
		slog.Error("failed to evaluate budget", "budget_id", id, "error", err)
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, progress)
}

// HandleBudgetRollover advances a budget into its next period window.
func (d *Dependencies) HandleBudgetRollover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "id parameter is required")
		return
	}

	b, err := d.engine().Rollover(r.Context(), d.WorkspaceID, id)
	if err != nil {
		slog.Error("failed to roll over budget", "budget_id", id, "error", err)
		WriteDomainError(w, err)
		return
	}
	slog.Info("rolled over budget", "budget_id", id, "start", b.StartDate, "end", b.EndDate)
	WriteJSON(w, http.StatusOK, b)
}
