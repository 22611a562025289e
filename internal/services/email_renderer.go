package services

import (
	"fmt"
	"strings"

	"github.com/rocjay1/family-budget/internal/budget"
	"github.com/rocjay1/family-budget/internal/models"
)

func emailShell(headerColor, title, inner string) string {
	return fmt.Sprintf(`
		<html>
		<body style="font-family: 'Segoe UI', sans-serif; color: #333; line-height: 1.6; background-color: #f4f4f4; margin: 0; padding: 20px;">
			<div style="max-width: 600px; margin: 0 auto; background: white; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1);">
				<div style="background-color: %s; padding: 20px; text-align: center; color: white;">
					<h2 style="margin: 0;">%s</h2>
				</div>
				<div style="padding: 20px;">
					%s
				</div>
			</div>
		</body>
		</html>
	`, headerColor, title, inner)
}

// RenderBudgetAlertBody renders the HTML body for a threshold alert email.
func RenderBudgetAlertBody(b models.Budget, threshold, percent float64) string {
	color := "#ca8a04"
	if threshold >= 100 {
		color = "#d13438"
	}

	scope := "all spending"
	if b.CategoryID != "" {
		scope = b.CategoryID
	}

	inner := fmt.Sprintf(`
		<p>Your <b>%s</b> budget (%s) has reached <b>%.0f%%</b> of its limit.</p>
		<h2 style="color: %s;">$%s of $%s spent</h2>
		<p>Window: %s &ndash; %s</p>
	`,
		b.Name,
		scope,
		percent,
		color,
		b.Spent.StringFixed(2),
		b.Amount.StringFixed(2),
		b.StartDate.Format("Jan 2, 2006"),
		b.EndDate.Format("Jan 2, 2006"),
	)
	return emailShell(color, fmt.Sprintf("Budget Alert &mdash; %.0f%%", threshold), inner)
}

// RenderGoalDigestBody renders the HTML body for the savings goal digest.
func RenderGoalDigestBody(items []budget.GoalReport) string {
	var rows strings.Builder
	for _, item := range items {
		statusColor := "#107c10"
		if item.Status == budget.StatusBehind {
			statusColor = "#d13438"
		}
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
				<td style="padding: 8px; border-bottom: 1px solid #eee;">$%s / $%s</td>
				<td style="padding: 8px; border-bottom: 1px solid #eee;">%.0f%%</td>
				<td style="padding: 8px; border-bottom: 1px solid #eee; color: %s;">%s</td>
			</tr>
		`,
			item.Goal.Name,
			item.Metrics.Current.StringFixed(2),
			item.Metrics.Target.StringFixed(2),
			item.Metrics.Percentage,
			statusColor,
			item.Status,
		))
	}

	inner := fmt.Sprintf(`
		<p>Here is how your savings goals are tracking:</p>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr>
				<th style="text-align: left; padding: 8px;">Goal</th>
				<th style="text-align: left; padding: 8px;">Saved</th>
				<th style="text-align: left; padding: 8px;">Progress</th>
				<th style="text-align: left; padding: 8px;">Status</th>
			</tr>
			%s
		</table>
	`, rows.String())
	return emailShell("#0078d4", "Savings Goals Update", inner)
}
