package handlers

import (
	"context"

	"github.com/rocjay1/family-budget/internal/budget"
	"github.com/rocjay1/family-budget/internal/models"
	"github.com/rocjay1/family-budget/internal/savings"
)

// DatabaseClient defines the store operations used by handlers. It
// covers the budget engine and savings service contracts plus the CRUD
// the HTTP surface needs directly.
type DatabaseClient interface {
	budget.Store
	savings.Store

	CreateBudget(ctx context.Context, b models.Budget) error
	DeleteBudget(ctx context.Context, workspaceID, budgetID string) error

	CreateGoal(ctx context.Context, g models.SavingsGoal) error
	ListGoals(ctx context.Context, workspaceID string) ([]models.SavingsGoal, error)
	DeleteGoal(ctx context.Context, goalID string) error
	ListContributions(ctx context.Context, goalID string) ([]models.SavingsContribution, error)

	SaveTransactions(ctx context.Context, workspaceID string, transactions []models.Transaction) ([]models.Transaction, error)
}

// BlobClient defines the interface for blob storage operations used by handlers.
type BlobClient interface {
	UploadText(ctx context.Context, containerName, blobName, content string) error
	DownloadText(ctx context.Context, containerName, blobName string) (string, error)
}

// QueueClient defines the interface for queue operations used by handlers.
type QueueClient interface {
	EnqueueMessage(ctx context.Context, queueName string, message any) error
}

// EmailClient defines the interface for email operations used by handlers.
type EmailClient interface {
	SendBudgetAlert(ctx context.Context, b models.Budget, threshold, percent float64) error
	SendGoalDigest(ctx context.Context, items []budget.GoalReport) error
}
