// Package csvparse turns exported bank statement CSVs into workspace
// transactions.
package csvparse

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/rocjay1/family-budget/internal/models"
	"github.com/shopspring/decimal"
)

// ParseCSV parses transactions from a CSV string. It returns the valid
// transactions and an error message per rejected row.
//
// Expected columns: Date, Name, Amount, and optionally Type and
// Category. Type defaults to EXPENSE; Category defaults to Other.
func ParseCSV(content string) ([]models.Transaction, []string) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, []string{fmt.Sprintf("Failed to read CSV: %v", err)}
	}

	if len(records) < 2 {
		return []models.Transaction{}, nil // Empty or header-only
	}

	headers := parseHeaders(records[0])
	var transactions []models.Transaction
	var errors []string

	for i, record := range records[1:] {
		rowNum := i + 2
		if len(record) < len(headers) {
			errors = append(errors, fmt.Sprintf("Row %d: Not enough fields", rowNum))
			continue
		}

		rowMap := make(map[string]string)
		for j, header := range headers {
			if j < len(record) {
				rowMap[header] = strings.TrimSpace(record[j])
			}
		}

		t, err := mapToTransaction(rowMap)
		if err != nil {
			errors = append(errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		transactions = append(transactions, *t)
	}

	return transactions, errors
}

func parseHeaders(row []string) []string {
	headers := make([]string, len(row))
	for i, h := range row {
		headers[i] = strings.TrimSpace(h)
	}
	return headers
}

func mapToTransaction(row map[string]string) (*models.Transaction, error) {
	dateStr := row["Date"]
	if dateStr == "" {
		return nil, fmt.Errorf("missing Date")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Date format: %s", dateStr)
	}

	name := row["Name"]
	if name == "" {
		return nil, fmt.Errorf("missing Name")
	}

	amountStr := row["Amount"]
	if amountStr == "" {
		return nil, fmt.Errorf("missing Amount")
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(amountStr, ",", ""))
	if err != nil {
		return nil, fmt.Errorf("invalid Amount: %s", amountStr)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("Amount must be positive: %s", amountStr)
	}

	txType := models.TypeExpense
	switch strings.ToUpper(row["Type"]) {
	case "", string(models.TypeExpense):
	case string(models.TypeIncome):
		txType = models.TypeIncome
	default:
		return nil, fmt.Errorf("invalid Type: %s", row["Type"])
	}

	category := models.Category(row["Category"])
	if category == "" {
		category = models.CategoryOther
	}

	return &models.Transaction{
		Name:     name,
		Type:     txType,
		Amount:   amount,
		Date:     date,
		Category: category,
	}, nil
}
