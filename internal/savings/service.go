// Package savings manages goal contributions. Every contribution write
// adjusts the parent goal's current amount in the same storage
// transaction, so the goal total always equals the sum of its
// contributions.
package savings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rocjay1/family-budget/internal/models"
	"github.com/shopspring/decimal"
)

// Store is the data access the service needs. Apply and Remove must
// write the goal and contribution rows as one atomic unit.
type Store interface {
	GetSavingsGoal(ctx context.Context, goalID string) (*models.SavingsGoal, error)
	GetContribution(ctx context.Context, goalID, contributionID string) (*models.SavingsContribution, error)
	ApplyContribution(ctx context.Context, goal models.SavingsGoal, contribution models.SavingsContribution) error
	RemoveContribution(ctx context.Context, goal models.SavingsGoal, contributionID string) error
}

// Service implements contribution operations against a goal.
type Service struct {
	Store Store
	Now   func() time.Time
}

// NewService returns a contribution service using the wall clock.
func NewService(store Store) *Service {
	return &Service{Store: store, Now: time.Now}
}

// Add records a new contribution and raises the goal's current amount by
// the same delta. The goal is stamped completed the first time its
// current amount reaches the target.
func (s *Service) Add(ctx context.Context, goalID string, amount decimal.Decimal, date time.Time, description string) (*models.SavingsContribution, error) {
	if !amount.IsPositive() {
		return nil, models.Invalid("amount", "must be greater than zero")
	}

	goal, err := s.activeGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = s.Now()
	}
	contribution := models.SavingsContribution{
		ID:          uuid.NewString(),
		GoalID:      goalID,
		Amount:      amount,
		Date:        date,
		Description: description,
	}

	s.applyDelta(goal, amount)
	if err := s.Store.ApplyContribution(ctx, *goal, contribution); err != nil {
		return nil, fmt.Errorf("failed to apply contribution to goal %s: %w", goalID, err)
	}
	return &contribution, nil
}

// Update changes a contribution's amount and shifts the goal's current
// amount by the difference.
func (s *Service) Update(ctx context.Context, goalID, contributionID string, amount decimal.Decimal, description string) (*models.SavingsContribution, error) {
	if !amount.IsPositive() {
		return nil, models.Invalid("amount", "must be greater than zero")
	}

	goal, err := s.activeGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Store.GetContribution(ctx, goalID, contributionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contribution %s: %w", contributionID, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("contribution %s: %w", contributionID, models.ErrNotFound)
	}

	s.applyDelta(goal, amount.Sub(existing.Amount))
	existing.Amount = amount
	if description != "" {
		existing.Description = description
	}

	if err := s.Store.ApplyContribution(ctx, *goal, *existing); err != nil {
		return nil, fmt.Errorf("failed to update contribution %s: %w", contributionID, err)
	}
	return existing, nil
}

// Delete removes a contribution and reverses its effect on the goal's
// current amount, clamped at zero.
func (s *Service) Delete(ctx context.Context, goalID, contributionID string) error {
	goal, err := s.activeGoal(ctx, goalID)
	if err != nil {
		return err
	}

	existing, err := s.Store.GetContribution(ctx, goalID, contributionID)
	if err != nil {
		return fmt.Errorf("failed to get contribution %s: %w", contributionID, err)
	}
	if existing == nil {
		return fmt.Errorf("contribution %s: %w", contributionID, models.ErrNotFound)
	}

	s.applyDelta(goal, existing.Amount.Neg())
	if err := s.Store.RemoveContribution(ctx, *goal, contributionID); err != nil {
		return fmt.Errorf("failed to delete contribution %s: %w", contributionID, err)
	}
	return nil
}

func (s *Service) activeGoal(ctx context.Context, goalID string) (*models.SavingsGoal, error) {
	goal, err := s.Store.GetSavingsGoal(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal %s: %w", goalID, err)
	}
	if goal == nil {
		return nil, fmt.Errorf("goal %s: %w", goalID, models.ErrNotFound)
	}
	if !goal.IsActive {
		return nil, fmt.Errorf("goal %s is inactive: %w", goalID, models.ErrInvalidState)
	}
	return goal, nil
}

// applyDelta shifts the goal's current amount, clamped at zero, and
// stamps completion exactly once when the target is first reached.
func (s *Service) applyDelta(goal *models.SavingsGoal, delta decimal.Decimal) {
	goal.CurrentAmount = decimal.Max(decimal.Zero, goal.CurrentAmount.Add(delta))
	if !goal.IsCompleted && goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
		goal.IsCompleted = true
		now := s.Now()
		goal.CompletedAt = &now
	}
}
