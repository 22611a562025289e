package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rocjay1/family-budget/internal/budget"
)

type dashboardResponse struct {
	Budgets []budget.Report     `json:"budgets"`
	Goals   []budget.GoalReport `json:"goals"`
}

// HandleDashboard returns the workspace analytics view: evaluated
// progress for every active budget and status for every goal.
func (d *Dependencies) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	reports, err := d.engine().EvaluateAll(r.Context(), d.WorkspaceID)
	if err != nil {
		slog.Error("failed to evaluate budgets for dashboard", "workspace_id", d.WorkspaceID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to evaluate budgets: "+err.Error())
		return
	}

	goals, err := d.Database.ListGoals(r.Context(), d.WorkspaceID)
	if err != nil {
		slog.Error("failed to list goals for dashboard", "workspace_id", d.WorkspaceID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to list goals: "+err.Error())
		return
	}

	now := time.Now()
	goalReports := make([]budget.GoalReport, 0, len(goals))
	for _, g := range goals {
		goalReports = append(goalReports, budget.ReportGoal(g, now))
	}

	WriteJSON(w, http.StatusOK, dashboardResponse{Budgets: reports, Goals: goalReports})
}
