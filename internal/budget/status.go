package budget

import (
	"time"

	"github.com/rocjay1/family-budget/internal/models"
)

// GoalStatus categorizes how a savings goal is tracking toward its deadline.
type GoalStatus string

const (
	StatusInactive  GoalStatus = "inactive"
	StatusCompleted GoalStatus = "completed"
	StatusBehind    GoalStatus = "behind"
	StatusOnTrack   GoalStatus = "on-track"
)

// GoalReport pairs a goal with its derived metrics and status.
type GoalReport struct {
	Goal    models.SavingsGoal `json:"goal"`
	Status  GoalStatus         `json:"status"`
	Metrics SavingsMetrics     `json:"metrics"`
}

// ReportGoal evaluates a goal's metrics and status as of now.
func ReportGoal(goal models.SavingsGoal, now time.Time) GoalReport {
	return GoalReport{
		Goal:    goal,
		Status:  ClassifyGoal(goal, now),
		Metrics: CalculateSavings(goal.CurrentAmount, goal.TargetAmount, goal.TargetDate, now),
	}
}

// ClassifyGoal determines a goal's status. Checks are ordered: inactive
// wins over completed, completed over behind. A goal past its deadline is
// behind; otherwise it is behind once more than half the time has elapsed
// with less than half the money saved.
func ClassifyGoal(goal models.SavingsGoal, now time.Time) GoalStatus {
	if !goal.IsActive {
		return StatusInactive
	}
	if goal.IsCompleted {
		return StatusCompleted
	}
	if now.After(goal.TargetDate) {
		return StatusBehind
	}

	totalDays := goal.TargetDate.Sub(goal.CreatedAt).Hours() / 24
	if totalDays > 0 {
		elapsedDays := now.Sub(goal.CreatedAt).Hours() / 24
		timeProgress := elapsedDays / totalDays

		metrics := CalculateSavings(goal.CurrentAmount, goal.TargetAmount, goal.TargetDate, now)
		if timeProgress > 0.5 && metrics.Percentage < 50 {
			return StatusBehind
		}
	}

	return StatusOnTrack
}
