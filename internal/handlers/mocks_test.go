package handlers

import (
	"context"
	"time"

	"github.com/rocjay1/family-budget/internal/budget"
	"github.com/rocjay1/family-budget/internal/models"
	"github.com/shopspring/decimal"
)

// MockDatabaseClient is a mock implementation of DatabaseClient. Tests
// set only the function fields a handler touches; unset fields return
// zero values.
type MockDatabaseClient struct {
	GetBudgetFunc          func(ctx context.Context, workspaceID, budgetID string) (*models.Budget, error)
	ListBudgetsFunc        func(ctx context.Context, workspaceID string) ([]models.Budget, error)
	SaveBudgetFunc         func(ctx context.Context, b models.Budget) error
	CreateBudgetFunc       func(ctx context.Context, b models.Budget) error
	DeleteBudgetFunc       func(ctx context.Context, workspaceID, budgetID string) error
	GetBudgetAlertsFunc    func(ctx context.Context, workspaceID, budgetID string) ([]models.BudgetAlert, error)
	MarkAlertTriggeredFunc func(ctx context.Context, b models.Budget, alertType models.AlertType) error
	ResetAlertsFunc        func(ctx context.Context, b models.Budget) error
	SumTransactionsFunc    func(ctx context.Context, scope models.Scope, start, end time.Time, txType models.TransactionType) (decimal.Decimal, error)

	GetSavingsGoalFunc     func(ctx context.Context, goalID string) (*models.SavingsGoal, error)
	CreateGoalFunc         func(ctx context.Context, g models.SavingsGoal) error
	ListGoalsFunc          func(ctx context.Context, workspaceID string) ([]models.SavingsGoal, error)
	DeleteGoalFunc         func(ctx context.Context, goalID string) error
	GetContributionFunc    func(ctx context.Context, goalID, contributionID string) (*models.SavingsContribution, error)
	ListContributionsFunc  func(ctx context.Context, goalID string) ([]models.SavingsContribution, error)
	ApplyContributionFunc  func(ctx context.Context, goal models.SavingsGoal, contribution models.SavingsContribution) error
	RemoveContributionFunc func(ctx context.Context, goal models.SavingsGoal, contributionID string) error

	SaveTransactionsFunc func(ctx context.Context, workspaceID string, transactions []models.Transaction) ([]models.Transaction, error)
}

func (m *MockDatabaseClient) GetBudget(ctx context.Context, workspaceID, budgetID string) (*models.Budget, error) {
	if m.GetBudgetFunc != nil {
		return m.GetBudgetFunc(ctx, workspaceID, budgetID)
	}
	return nil, nil
}

func (m *MockDatabaseClient) ListBudgets(ctx context.Context, workspaceID string) ([]models.Budget, error) {
	if m.ListBudgetsFunc != nil {
		return m.ListBudgetsFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *MockDatabaseClient) SaveBudget(ctx context.Context, b models.Budget) error {
	if m.SaveBudgetFunc != nil {
		return m.SaveBudgetFunc(ctx, b)
	}
	return nil
}

func (m *MockDatabaseClient) CreateBudget(ctx context.Context, b models.Budget) error {
	if m.CreateBudgetFunc != nil {
		return m.CreateBudgetFunc(ctx, b)
	}
	return nil
}

func (m *MockDatabaseClient) DeleteBudget(ctx context.Context, workspaceID, budgetID string) error {
	if m.DeleteBudgetFunc != nil {
		return m.DeleteBudgetFunc(ctx, workspaceID, budgetID)
	}
	return nil
}

func (m *MockDatabaseClient) GetBudgetAlerts(ctx context.Context, workspaceID, budgetID string) ([]models.BudgetAlert, error) {
	if m.GetBudgetAlertsFunc != nil {
		return m.GetBudgetAlertsFunc(ctx, workspaceID, budgetID)
	}
	return nil, nil
}

func (m *MockDatabaseClient) MarkAlertTriggered(ctx context.Context, b models.Budget, alertType models.AlertType) error {
	if m.MarkAlertTriggeredFunc != nil {
		return m.MarkAlertTriggeredFunc(ctx, b, alertType)
	}
	return nil
}

func (m *MockDatabaseClient) ResetAlerts(ctx context.Context, b models.Budget) error {
	if m.ResetAlertsFunc != nil {
		return m.ResetAlertsFunc(ctx, b)
	}
	return nil
}

func (m *MockDatabaseClient) SumTransactions(ctx context.Context, scope models.Scope, start, end time.Time, txType models.TransactionType) (decimal.Decimal, error) {
	if m.SumTransactionsFunc != nil {
		return m.SumTransactionsFunc(ctx, scope, start, end, txType)
	}
	return decimal.Zero, nil
}

func (m *MockDatabaseClient) GetSavingsGoal(ctx context.Context, goalID string) (*models.SavingsGoal, error) {
	if m.GetSavingsGoalFunc != nil {
		return m.GetSavingsGoalFunc(ctx, goalID)
	}
	return nil, nil
}

func (m *MockDatabaseClient) CreateGoal(ctx context.Context, g models.SavingsGoal) error {
	if m.CreateGoalFunc != nil {
		return m.CreateGoalFunc(ctx, g)
	}
	return nil
}

func (m *MockDatabaseClient) ListGoals(ctx context.Context, workspaceID string) ([]models.SavingsGoal, error) {
	if m.ListGoalsFunc != nil {
		return m.ListGoalsFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *MockDatabaseClient) DeleteGoal(ctx context.Context, goalID string) error {
	if m.DeleteGoalFunc != nil {
		return m.DeleteGoalFunc(ctx, goalID)
	}
	return nil
}

func (m *MockDatabaseClient) GetContribution(ctx context.Context, goalID, contributionID string) (*models.SavingsContribution, error) {
	if m.GetContributionFunc != nil {
		return m.GetContributionFunc(ctx, goalID, contributionID)
	}
	return nil, nil
}

func (m *MockDatabaseClient) ListContributions(ctx context.Context, goalID string) ([]models.SavingsContribution, error) {
	if m.ListContributionsFunc != nil {
		return m.ListContributionsFunc(ctx, goalID)
	}
	return nil, nil
}

func (m *MockDatabaseClient) ApplyContribution(ctx context.Context, goal models.SavingsGoal, contribution models.SavingsContribution) error {
	if m.ApplyContributionFunc != nil {
		return m.ApplyContributionFunc(ctx, goal, contribution)
	}
	return nil
}

func (m *MockDatabaseClient) RemoveContribution(ctx context.Context, goal models.SavingsGoal, contributionID string) error {
	if m.RemoveContributionFunc != nil {
		return m.RemoveContributionFunc(ctx, goal, contributionID)
	}
	return nil
}

func (m *MockDatabaseClient) SaveTransactions(ctx context.Context, workspaceID string, transactions []models.Transaction) ([]models.Transaction, error) {
	if m.SaveTransactionsFunc != nil {
		return m.SaveTransactionsFunc(ctx, workspaceID, transactions)
	}
	return transactions, nil
}

// MockBlobClient is a mock implementation of BlobClient.
type MockBlobClient struct {
	UploadTextFunc   func(ctx context.Context, containerName, blobName, content string) error
	DownloadTextFunc func(ctx context.Context, containerName, blobName string) (string, error)
}

func (m *MockBlobClient) UploadText(ctx context.Context, containerName, blobName, content string) error {
	if m.UploadTextFunc != nil {
		return m.UploadTextFunc(ctx, containerName, blobName, content)
	}
	return nil
}

func (m *MockBlobClient) DownloadText(ctx context.Context, containerName, blobName string) (string, error) {
	if m.DownloadTextFunc != nil {
		return m.DownloadTextFunc(ctx, containerName, blobName)
	}
	return "", nil
}

// MockQueueClient is a mock implementation of QueueClient.
type MockQueueClient struct {
	EnqueueMessageFunc func(ctx context.Context, queueName string, message any) error
}

func (m *MockQueueClient) EnqueueMessage(ctx context.Context, queueName string, message any) error {
	if m.EnqueueMessageFunc != nil {
		return m.EnqueueMessageFunc(ctx, queueName, message)
	}
	return nil
}

// MockEmailClient is a mock implementation of EmailClient.
type MockEmailClient struct {
	SendBudgetAlertFunc func(ctx context.Context, b models.Budget, threshold, percent float64) error
	SendGoalDigestFunc  func(ctx context.Context, items []budget.GoalReport) error
}

func (m *MockEmailClient) SendBudgetAlert(ctx context.Context, b models.Budget, threshold, percent float64) error {
	if m.SendBudgetAlertFunc != nil {
		return m.SendBudgetAlertFunc(ctx, b, threshold, percent)
	}
	return nil
}

func (m *MockEmailClient) SendGoalDigest(ctx context.Context, items []budget.GoalReport) error {
	if m.SendGoalDigestFunc != nil {
		return m.SendGoalDigestFunc(ctx, items)
	}
	return nil
}
