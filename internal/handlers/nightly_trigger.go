package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rocjay1/family-budget/internal/budget"
)

// HandleNightlyTrigger runs the nightly sweep: every active budget is
// re-evaluated (firing any crossed threshold alerts) and the household
// gets a digest of how its savings goals are tracking.
func (d *Dependencies) HandleNightlyTrigger(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slog.Info("starting nightly sweep", "workspace_id", d.WorkspaceID)

	reports, err := d.engine().EvaluateAll(ctx, d.WorkspaceID)
	if err != nil {
		slog.Error("failed to evaluate budgets in nightly sweep", "error", err)
		http.Error(w, "Failed to evaluate budgets", http.StatusInternalServerError)
		return
	}
	slog.Info("evaluated budgets", "count", len(reports))

	goals, err := d.Database.ListGoals(ctx, d.WorkspaceID)
	if err != nil {
		slog.Error("failed to list goals in nightly sweep", "error", err)
		http.Error(w, "Failed to list goals", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	var digest []budget.GoalReport
	for _, g := range goals {
		if !g.IsActive {
			continue
		}
		digest = append(digest, budget.ReportGoal(g, now))
	}

	if d.Email != nil && d.capabilities().EmailAlerts && len(digest) > 0 {
		if err := d.Email.SendGoalDigest(ctx, digest); err != nil {
			// Digest delivery is best-effort.
			slog.Error("failed to send goal digest", "error", err)
		} else {
			slog.Info("goal digest sent", "goals", len(digest))
		}
	}

	slog.Info("nightly sweep complete", "budgets", len(reports), "goals", len(digest))
	w.WriteHeader(http.StatusOK)
}
