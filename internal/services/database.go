package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/aztables"
	"github.com/rocjay1/family-budget/internal/models"
	"github.com/shopspring/decimal"
)

// Row layout:
//   budgets table:      PK = workspace ID, RK = "B_<id>" (budget) or
//                       "B_<id>_ALERT_<type>" (alert record). Same partition,
//                       so flag + alert updates share one transaction batch.
//   savings table:      PK = goal ID, RK = "GOAL" or "C_<id>". Goal and
//                       contribution writes share one transaction batch.
//   transactions table: PK = workspace ID, RK = content hash (dedup on import).
const (
	rowKindBudget       = "BUDGET"
	rowKindAlert        = "ALERT"
	rowKindGoal         = "GOAL"
	rowKindContribution = "CONTRIBUTION"

	goalRowKey = "GOAL"
)

// DatabaseService handles interactions with Azure Table Storage.
type DatabaseService struct {
	serviceClient     *aztables.ServiceClient
	budgetsTable      string
	savingsTable      string
	transactionsTable string
}

// NewDatabaseService creates a new DatabaseService instance.
func NewDatabaseService() (*DatabaseService, error) {
	tableURL := os.Getenv("TABLE_SERVICE_URL")
	if tableURL == "" {
		return nil, fmt.Errorf("TABLE_SERVICE_URL environment variable is required")
	}

	budgetsTable := envOrDefault("BUDGETS_TABLE", "budgets")
	savingsTable := envOrDefault("SAVINGS_TABLE", "savings")
	transactionsTable := envOrDefault("TRANSACTIONS_TABLE", "transactions")

	var client *aztables.ServiceClient

	// Azurite locally, managed identity in production.
	if isLocal(tableURL) {
		name, key := getAzuriteCredentials()
		cred, err := aztables.NewSharedKeyCredential(name, key)
		if err != nil {
			return nil, fmt.Errorf("failed to create shared key credential: %w", err)
		}
		client, err = aztables.NewServiceClientWithSharedKey(tableURL, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create table service client with shared key: %w", err)
		}
	} else {
		cred, err := newDefaultAzureCredential()
		if err != nil {
			return nil, fmt.Errorf("failed to create default azure credential: %w", err)
		}
		client, err = aztables.NewServiceClient(tableURL, cred, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create table service client: %w", err)
		}
	}

	svc := &DatabaseService{
		serviceClient:     client,
		budgetsTable:      budgetsTable,
		savingsTable:      savingsTable,
		transactionsTable: transactionsTable,
	}

	if err := svc.createTables(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	slog.Info("database service initialized",
		"table_url", tableURL,
		"budgets_table", budgetsTable,
		"savings_table", savingsTable,
		"transactions_table", transactionsTable,
	)
	return svc, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (s *DatabaseService) createTables(ctx context.Context) error {
	for _, tableName := range []string{s.budgetsTable, s.savingsTable, s.transactionsTable} {
		_, err := s.serviceClient.CreateTable(ctx, tableName, nil)
		if err != nil {
			var azErr *azcore.ResponseError
			if errors.As(err, &azErr) && azErr.ErrorCode == "TableAlreadyExists" {
				continue
			}
			return fmt.Errorf("failed to create table %s: %w", tableName, err)
		}
	}
	return nil
}

func (s *DatabaseService) getClient(tableName string) *aztables.Client {
	return s.serviceClient.NewClient(tableName)
}

// ---- entity helpers ----

func getString(parsed map[string]any, key string) string {
	if v, ok := parsed[key].(string); ok {
		return v
	}
	return ""
}

func getBool(parsed map[string]any, key string) bool {
	v, _ := parsed[key].(bool)
	return v
}

func getFloat(parsed map[string]any, key string) float64 {
	if v, ok := parsed[key].(float64); ok {
		return v
	}
	return 0
}

// Amounts are stored as strings to keep decimal precision; older rows
// written as numbers still parse.
func getDecimal(parsed map[string]any, key string) decimal.Decimal {
	if v, ok := parsed[key].(string); ok {
		d, err := decimal.NewFromString(v)
		if err == nil {
			return d
		}
	}
	if v, ok := parsed[key].(float64); ok {
		return decimal.NewFromFloat(v)
	}
	return decimal.Zero
}

func getTime(parsed map[string]any, key string) time.Time {
	if v, ok := parsed[key].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func isNotFound(err error) bool {
	var azErr *azcore.ResponseError
	return errors.As(err, &azErr) && azErr.StatusCode == http.StatusNotFound
}

func marshalAction(actionType aztables.TransactionType, entity map[string]any) aztables.TransactionAction {
	raw, _ := json.Marshal(entity)
	return aztables.TransactionAction{ActionType: actionType, Entity: raw}
}

// listEntities pages through a filter and hands each parsed entity to fn.
func listEntities(ctx context.Context, client *aztables.Client, filter string, fn func(map[string]any)) error {
	pager := client.NewListEntitiesPager(&aztables.ListEntitiesOptions{Filter: &filter})
	for pager.More() {
		resp, err := pager.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to list entities: %w", err)
		}
		for _, entity := range resp.Entities {
			var parsed map[string]any
			if err := json.Unmarshal(entity, &parsed); err != nil {
				continue
			}
			fn(parsed)
		}
	}
	return nil
}

// submitChunked submits a transaction batch in chunks of the service's
// 100-action limit. Single-partition atomicity only holds within one
// chunk; callers that rely on it keep batches small.
func submitChunked(ctx context.Context, client *aztables.Client, batch []aztables.TransactionAction) error {
	const batchSize = 100
	for i := 0; i < len(batch); i += batchSize {
		end := min(i+batchSize, len(batch))
		if _, err := client.SubmitTransaction(ctx, batch[i:end], nil); err != nil {
			return fmt.Errorf("failed to submit transaction batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}

// ---- budgets ----

func budgetRowKey(budgetID string) string {
	return "B_" + budgetID
}

func alertRowKey(budgetID string, alertType models.AlertType) string {
	return fmt.Sprintf("B_%s_%s", budgetID, alertType)
}

func budgetEntity(b models.Budget) map[string]any {
	return map[string]any{
		"PartitionKey": b.WorkspaceID,
		"RowKey":       budgetRowKey(b.ID),
		"Kind":         rowKindBudget,
		"BudgetID":     b.ID,
		"Name":         b.Name,
		"Amount":       b.Amount.String(),
		"CategoryID":   b.CategoryID,
		"Period":       string(b.Period),
		"StartDate":    b.StartDate.Format(time.RFC3339Nano),
		"EndDate":      b.EndDate.Format(time.RFC3339Nano),
		"IsActive":     b.IsActive,
		"Spent":        b.Spent.String(),
		"Alert80Sent":  b.Alert80Sent,
		"Alert90Sent":  b.Alert90Sent,
		"Alert100Sent": b.Alert100Sent,
		"CreatedAt":    b.CreatedAt.Format(time.RFC3339Nano),
	}
}

func parseBudget(parsed map[string]any) models.Budget {
	return models.Budget{
		ID:           getString(parsed, "BudgetID"),
		WorkspaceID:  getString(parsed, "PartitionKey"),
		Name:         getString(parsed, "Name"),
		Amount:       getDecimal(parsed, "Amount"),
		CategoryID:   getString(parsed, "CategoryID"),
		Period:       models.Period(getString(parsed, "Period")),
		StartDate:    getTime(parsed, "StartDate"),
		EndDate:      getTime(parsed, "EndDate"),
		IsActive:     getBool(parsed, "IsActive"),
		Spent:        getDecimal(parsed, "Spent"),
		Alert80Sent:  getBool(parsed, "Alert80Sent"),
		Alert90Sent:  getBool(parsed, "Alert90Sent"),
		Alert100Sent: getBool(parsed, "Alert100Sent"),
		CreatedAt:    getTime(parsed, "CreatedAt"),
	}
}

// CreateBudget writes a budget row and its three alert rows in one batch.
func (s *DatabaseService) CreateBudget(ctx context.Context, b models.Budget) error {
	batch := []aztables.TransactionAction{
		marshalAction(aztables.TransactionTypeInsertReplace, budgetEntity(b)),
	}
	for _, alertType := range models.AlertTypes {
		batch = append(batch, marshalAction(aztables.TransactionTypeInsertReplace, map[string]any{
			"PartitionKey": b.WorkspaceID,
			"RowKey":       alertRowKey(b.ID, alertType),
			"Kind":         rowKindAlert,
			"BudgetID":     b.ID,
			"Type":         string(alertType),
			"Threshold":    alertType.Threshold(),
			"Triggered":    false,
		}))
	}
	return submitChunked(ctx, s.getClient(s.budgetsTable), batch)
}

// GetBudget returns a budget by ID, or nil when it does not exist.
func (s *DatabaseService) GetBudget(ctx context.Context, workspaceID, budgetID string) (*models.Budget, error) {
	resp, err := s.getClient(s.budgetsTable).GetEntity(ctx, workspaceID, budgetRowKey(budgetID), nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get budget %s: %w", budgetID, err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(resp.Value, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse budget %s: %w", budgetID, err)
	}
	b := parseBudget(parsed)
	return &b, nil
}

// ListBudgets returns all budget rows for a workspace.
func (s *DatabaseService) ListBudgets(ctx context.Context, workspaceID string) ([]models.Budget, error) {
	filter := fmt.Sprintf("PartitionKey eq '%s' and Kind eq '%s'", workspaceID, rowKindBudget)
	budgets := []models.Budget{}
	err := listEntities(ctx, s.getClient(s.budgetsTable), filter, func(parsed map[string]any) {
		budgets = append(budgets, parseBudget(parsed))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// SaveBudget upserts the budget row.
func (s *DatabaseService) SaveBudget(ctx context.Context, b models.Budget) error {
	raw, _ := json.Marshal(budgetEntity(b))
	if _, err := s.getClient(s.budgetsTable).UpsertEntity(ctx, raw, nil); err != nil {
		return fmt.Errorf("failed to save budget %s: %w", b.ID, err)
	}
	return nil
}

// DeleteBudget removes the budget row and all of its alert rows. Children
// never outlive the parent.
func (s *DatabaseService) DeleteBudget(ctx context.Context, workspaceID, budgetID string) error {
	batch := []aztables.TransactionAction{
		marshalAction(aztables.TransactionTypeDelete, map[string]any{
			"PartitionKey": workspaceID,
			"RowKey":       budgetRowKey(budgetID),
		}),
	}
	for _, alertType := range models.AlertTypes {
		batch = append(batch, marshalAction(aztables.TransactionTypeDelete, map[string]any{
			"PartitionKey": workspaceID,
			"RowKey":       alertRowKey(budgetID, alertType),
		}))
	}
	return submitChunked(ctx, s.getClient(s.budgetsTable), batch)
}

// GetBudgetAlerts returns the alert records for a budget, ascending by
// threshold.
func (s *DatabaseService) GetBudgetAlerts(ctx context.Context, workspaceID, budgetID string) ([]models.BudgetAlert, error) {
	client := s.getClient(s.budgetsTable)
	alerts := make([]models.BudgetAlert, 0, len(models.AlertTypes))
	for _, alertType := range models.AlertTypes {
		resp, err := client.GetEntity(ctx, workspaceID, alertRowKey(budgetID, alertType), nil)
		if err != nil {
			if isNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to get alert %s for budget %s: %w", alertType, budgetID, err)
		}
		var parsed map[string]any
		if err := json.Unmarshal(resp.Value, &parsed); err != nil {
			continue
		}
		alerts = append(alerts, models.BudgetAlert{
			BudgetID:  budgetID,
			Type:      models.AlertType(getString(parsed, "Type")),
			Threshold: getFloat(parsed, "Threshold"),
			Triggered: getBool(parsed, "Triggered"),
		})
	}
	return alerts, nil
}

// MarkAlertTriggered flips the alert record and the matching budget flag
// in one transaction, so the at-most-once guarantee survives a crash
// between the two writes.
func (s *DatabaseService) MarkAlertTriggered(ctx context.Context, b models.Budget, alertType models.AlertType) error {
	b.SetAlertSent(alertType)
	batch := []aztables.TransactionAction{
		marshalAction(aztables.TransactionTypeInsertMerge, map[string]any{
			"PartitionKey": b.WorkspaceID,
			"RowKey":       alertRowKey(b.ID, alertType),
			"Triggered":    true,
		}),
		marshalAction(aztables.TransactionTypeInsertReplace, budgetEntity(b)),
	}
	return submitChunked(ctx, s.getClient(s.budgetsTable), batch)
}

// ResetAlerts clears all trigger records and flags for a budget, used on
// an explicit period rollover when resets are enabled.
func (s *DatabaseService) ResetAlerts(ctx context.Context, b models.Budget) error {
	b.Alert80Sent = false
	b.Alert90Sent = false
	b.Alert100Sent = false
	batch := []aztables.TransactionAction{
		marshalAction(aztables.TransactionTypeInsertReplace, budgetEntity(b)),
	}
	for _, alertType := range models.AlertTypes {
		batch = append(batch, marshalAction(aztables.TransactionTypeInsertMerge, map[string]any{
			"PartitionKey": b.WorkspaceID,
			"RowKey":       alertRowKey(b.ID, alertType),
			"Triggered":    false,
		}))
	}
	return submitChunked(ctx, s.getClient(s.budgetsTable), batch)
}

// ---- savings goals and contributions ----

func contributionRowKey(contributionID string) string {
	return "C_" + contributionID
}

func goalEntity(g models.SavingsGoal) map[string]any {
	entity := map[string]any{
		"PartitionKey":  g.ID,
		"RowKey":        goalRowKey,
		"Kind":          rowKindGoal,
		"WorkspaceID":   g.WorkspaceID,
		"Name":          g.Name,
		"TargetAmount":  g.TargetAmount.String(),
		"CurrentAmount": g.CurrentAmount.String(),
		"TargetDate":    g.TargetDate.Format(time.RFC3339Nano),
		"IsActive":      g.IsActive,
		"IsCompleted":   g.IsCompleted,
		"CreatedAt":     g.CreatedAt.Format(time.RFC3339Nano),
	}
	if g.CompletedAt != nil {
		entity["CompletedAt"] = g.CompletedAt.Format(time.RFC3339Nano)
	}
	return entity
}

func parseGoal(parsed map[string]any) models.SavingsGoal {
	g := models.SavingsGoal{
		ID:            getString(parsed, "PartitionKey"),
		WorkspaceID:   getString(parsed, "WorkspaceID"),
		Name:          getString(parsed, "Name"),
		TargetAmount:  getDecimal(parsed, "TargetAmount"),
		CurrentAmount: getDecimal(parsed, "CurrentAmount"),
		TargetDate:    getTime(parsed, "TargetDate"),
		IsActive:      getBool(parsed, "IsActive"),
		IsCompleted:   getBool(parsed, "IsCompleted"),
		CreatedAt:     getTime(parsed, "CreatedAt"),
	}
	if _, ok := parsed["CompletedAt"]; ok {
		completedAt := getTime(parsed, "CompletedAt")
		g.CompletedAt = &completedAt
	}
	return g
}

// CreateGoal writes a new goal row.
func (s *DatabaseService) CreateGoal(ctx context.Context, g models.SavingsGoal) error {
	raw, _ := json.Marshal(goalEntity(g))
	if _, err := s.getClient(s.savingsTable).UpsertEntity(ctx, raw, nil); err != nil {
		return fmt.Errorf("failed to create goal %s: %w", g.ID, err)
	}
	return nil
}

// GetSavingsGoal returns a goal by ID, or nil when it does not exist.
func (s *DatabaseService) GetSavingsGoal(ctx context.Context, goalID string) (*models.SavingsGoal, error) {
	resp, err := s.getClient(s.savingsTable).GetEntity(ctx, goalID, goalRowKey, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get goal %s: %w", goalID, err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(resp.Value, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse goal %s: %w", goalID, err)
	}
	g := parseGoal(parsed)
	return &g, nil
}

// ListGoals returns all goals owned by a workspace.
func (s *DatabaseService) ListGoals(ctx context.Context, workspaceID string) ([]models.SavingsGoal, error) {
	filter := fmt.Sprintf("WorkspaceID eq '%s' and Kind eq '%s'", workspaceID, rowKindGoal)
	goals := []models.SavingsGoal{}
	err := listEntities(ctx, s.getClient(s.savingsTable), filter, func(parsed map[string]any) {
		goals = append(goals, parseGoal(parsed))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// DeleteGoal removes the goal row and every contribution in its
// partition.
func (s *DatabaseService) DeleteGoal(ctx context.Context, goalID string) error {
	client := s.getClient(s.savingsTable)

	filter := fmt.Sprintf("PartitionKey eq '%s'", goalID)
	var batch []aztables.TransactionAction
	err := listEntities(ctx, client, filter, func(parsed map[string]any) {
		batch = append(batch, marshalAction(aztables.TransactionTypeDelete, map[string]any{
			"PartitionKey": goalID,
			"RowKey":       getString(parsed, "RowKey"),
		}))
	})
	if err != nil {
		return fmt.Errorf("failed to list goal rows for delete: %w", err)
	}
	if len(batch) == 0 {
		return nil
	}
	return submitChunked(ctx, client, batch)
}

// GetContribution returns a contribution by ID, or nil when absent.
func (s *DatabaseService) GetContribution(ctx context.Context, goalID, contributionID string) (*models.SavingsContribution, error) {
	resp, err := s.getClient(s.savingsTable).GetEntity(ctx, goalID, contributionRowKey(contributionID), nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contribution %s: %w", contributionID, err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(resp.Value, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse contribution %s: %w", contributionID, err)
	}
	c := models.SavingsContribution{
		ID:          getString(parsed, "ContributionID"),
		GoalID:      goalID,
		Amount:      getDecimal(parsed, "Amount"),
		Date:        getTime(parsed, "Date"),
		Description: getString(parsed, "Description"),
	}
	return &c, nil
}

// ListContributions returns all contributions for a goal.
func (s *DatabaseService) ListContributions(ctx context.Context, goalID string) ([]models.SavingsContribution, error) {
	filter := fmt.Sprintf("PartitionKey eq '%s' and Kind eq '%s'", goalID, rowKindContribution)
	contributions := []models.SavingsContribution{}
	err := listEntities(ctx, s.getClient(s.savingsTable), filter, func(parsed map[string]any) {
		contributions = append(contributions, models.SavingsContribution{
			ID:          getString(parsed, "ContributionID"),
			GoalID:      goalID,
			Amount:      getDecimal(parsed, "Amount"),
			Date:        getTime(parsed, "Date"),
			Description: getString(parsed, "Description"),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	return contributions, nil
}

// ApplyContribution upserts the contribution row and the adjusted goal
// row in one transaction. Both live in the goal's partition, so the
// current amount can never drift from the contribution sum.
func (s *DatabaseService) ApplyContribution(ctx context.Context, goal models.SavingsGoal, contribution models.SavingsContribution) error {
	batch := []aztables.TransactionAction{
		marshalAction(aztables.TransactionTypeInsertReplace, goalEntity(goal)),
		marshalAction(aztables.TransactionTypeInsertReplace, map[string]any{
			"PartitionKey":   goal.ID,
			"RowKey":         contributionRowKey(contribution.ID),
			"Kind":           rowKindContribution,
			"ContributionID": contribution.ID,
			"Amount":         contribution.Amount.String(),
			"Date":           contribution.Date.Format(time.RFC3339Nano),
			"Description":    contribution.Description,
		}),
	}
	return submitChunked(ctx, s.getClient(s.savingsTable), batch)
}

// RemoveContribution deletes the contribution row and writes the
// adjusted goal row in one transaction.
func (s *DatabaseService) RemoveContribution(ctx context.Context, goal models.SavingsGoal, contributionID string) error {
	batch := []aztables.TransactionAction{
		marshalAction(aztables.TransactionTypeInsertReplace, goalEntity(goal)),
		marshalAction(aztables.TransactionTypeDelete, map[string]any{
			"PartitionKey": goal.ID,
			"RowKey":       contributionRowKey(contributionID),
		}),
	}
	return submitChunked(ctx, s.getClient(s.savingsTable), batch)
}

// ---- transactions ----

// transactionRowKey generates a deterministic key so re-imports of the
// same statement deduplicate.
func transactionRowKey(t models.Transaction, index int) string {
	uniqueString := fmt.Sprintf("%s|%s|%s|%s|%d",
		t.Date.Format("2006-01-02"), t.Name, t.Amount.String(), t.Type, index)
	hash := sha256.Sum256([]byte(uniqueString))
	return hex.EncodeToString(hash[:])
}

// SaveTransactions upserts transactions for a workspace, skipping rows
// already present. Returns the transactions that were actually new.
func (s *DatabaseService) SaveTransactions(ctx context.Context, workspaceID string, transactions []models.Transaction) ([]models.Transaction, error) {
	if len(transactions) == 0 {
		return []models.Transaction{}, nil
	}

	client := s.getClient(s.transactionsTable)

	// Repeated identical rows within one import get distinct keys.
	occurrences := make(map[string]int)
	type keyed struct {
		t   models.Transaction
		key string
	}
	var rows []keyed
	for _, t := range transactions {
		sig := fmt.Sprintf("%s|%s|%s|%s", t.Date.Format("2006-01-02"), t.Name, t.Amount.String(), t.Type)
		occurrences[sig]++
		rows = append(rows, keyed{t: t, key: transactionRowKey(t, occurrences[sig]-1)})
	}

	filter := fmt.Sprintf("PartitionKey eq '%s'", workspaceID)
	existing := make(map[string]bool)
	err := listEntities(ctx, client, filter, func(parsed map[string]any) {
		existing[getString(parsed, "RowKey")] = true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list existing transactions: %w", err)
	}

	var batch []aztables.TransactionAction
	var newTransactions []models.Transaction
	for _, row := range rows {
		if existing[row.key] {
			continue
		}
		t := row.t
		t.ID = row.key
		t.WorkspaceID = workspaceID
		batch = append(batch, marshalAction(aztables.TransactionTypeInsertReplace, map[string]any{
			"PartitionKey": workspaceID,
			"RowKey":       row.key,
			"Name":         t.Name,
			"Type":         string(t.Type),
			"Amount":       t.Amount.String(),
			"Date":         t.Date.Format(time.RFC3339Nano),
			"Category":     string(t.Category),
		}))
		newTransactions = append(newTransactions, t)
	}

	if len(batch) == 0 {
		return []models.Transaction{}, nil
	}
	if err := submitChunked(ctx, client, batch); err != nil {
		return nil, err
	}
	slog.Info("saved new transactions", "workspace_id", workspaceID, "new_count", len(newTransactions), "total", len(transactions))
	return newTransactions, nil
}

// SumTransactions sums the amounts of transactions matching a scope,
// inclusive date range, and type. Zero when nothing matches. The type
// and category are filtered server-side; dates are compared here since
// row properties store them as strings.
func (s *DatabaseService) SumTransactions(ctx context.Context, scope models.Scope, start, end time.Time, txType models.TransactionType) (decimal.Decimal, error) {
	filter := fmt.Sprintf("PartitionKey eq '%s' and Type eq '%s'", scope.WorkspaceID, txType)
	if scope.CategoryID != "" {
		filter += fmt.Sprintf(" and Category eq '%s'", scope.CategoryID)
	}

	total := decimal.Zero
	err := listEntities(ctx, s.getClient(s.transactionsTable), filter, func(parsed map[string]any) {
		date := getTime(parsed, "Date")
		if date.Before(start) || date.After(end) {
			return
		}
		total = total.Add(getDecimal(parsed, "Amount"))
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return total, nil
}
