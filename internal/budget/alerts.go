package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocjay1/family-budget/internal/models"
)

// checkThresholds walks the budget's alert records and fires each
// threshold the uncapped spend percentage has crossed, at most once per
// budget lifetime. The trigger flag is persisted before the notification
// is sent, so a crash between the two drops the email rather than
// duplicating it.
func (e *Engine) checkThresholds(ctx context.Context, b *models.Budget) error {
	percent := usagePercent(b.Amount, b.Spent)

	alerts, err := e.Store.GetBudgetAlerts(ctx, b.WorkspaceID, b.ID)
	if err != nil {
		return fmt.Errorf("failed to get alerts for budget %s: %w", b.ID, err)
	}

	for _, alert := range alerts {
		if alert.Triggered || percent < alert.Threshold {
			continue
		}

		if err := e.Store.MarkAlertTriggered(ctx, *b, alert.Type); err != nil {
			return fmt.Errorf("failed to mark alert %s triggered for budget %s: %w", alert.Type, b.ID, err)
		}
		b.SetAlertSent(alert.Type)

		if e.Notifier == nil {
			continue
		}
		if err := e.Notifier.SendBudgetAlert(ctx, *b, alert.Threshold, percent); err != nil {
			// Best-effort delivery; never abort the evaluation.
			slog.Warn("failed to send budget alert",
				"budget_id", b.ID,
				"budget_name", b.Name,
				"threshold", alert.Threshold,
				"error", err)
		} else {
			slog.Info("budget alert sent",
				"budget_id", b.ID,
				"budget_name", b.Name,
				"threshold", alert.Threshold,
				"percent", percent)
		}
	}

	return nil
}
