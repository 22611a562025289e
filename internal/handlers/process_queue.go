package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocjay1/family-budget/internal/csvparse"
)

// invokeRequest represents the payload from the Azure Functions custom
// handler host.
type invokeRequest struct {
	Data     map[string]any `json:"Data"`
	Metadata map[string]any `json:"Metadata"`
}

// ProcessQueue handles the queue trigger for statement imports: it
// downloads the staged CSV, stores the parsed transactions, and
// re-evaluates the workspace budgets so threshold alerts fire.
func (d *Dependencies) ProcessQueue(w http.ResponseWriter, r *http.Request) {
	var invokeReq invokeRequest
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		slog.Error("failed to read queue request body", "error", err)
		WriteError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if err := json.Unmarshal(bodyBytes, &invokeReq); err != nil {
		slog.Error("failed to unmarshal queue request", "error", err)
		WriteError(w, http.StatusBadRequest, "Failed to unmarshal request")
		return
	}

	queueItemVal, ok := invokeReq.Data["queueItem"]
	if !ok {
		if queueItemVal, ok = invokeReq.Data["queueitem"]; !ok {
			WriteError(w, http.StatusBadRequest, "Missing queueItem in Data")
			return
		}
	}
	queueItemStr, ok := queueItemVal.(string)
	if !ok {
		WriteError(w, http.StatusBadRequest, "queueItem is not a string")
		return
	}

	var queueData map[string]string
	if err := json.Unmarshal([]byte(queueItemStr), &queueData); err != nil {
		slog.Error("failed to unmarshal queueItem", "error", err)
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid queueItem JSON: %v", err))
		return
	}

	blobName := queueData["blobName"]
	if blobName == "" {
		slog.Warn("queue message missing blobName", "queue_data", queueData)
		WriteError(w, http.StatusBadRequest, "Missing blobName")
		return
	}

	slog.Info("processing import job", "blob_name", blobName)

	csvContent, err := d.Blob.DownloadText(r.Context(), dataContainer, blobName)
	if err != nil {
		slog.Error("failed to download CSV from blob", "blob_name", blobName, "error", err)
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to download CSV: %v", err))
		return
	}

	transactions, parseErrors := csvparse.ParseCSV(csvContent)
	slog.Info("parsed statement CSV", "blob_name", blobName, "transactions_count", len(transactions), "errors_count", len(parseErrors))

	if len(parseErrors) > 0 && len(transactions) == 0 {
		slog.Warn("CSV validation failed with no valid transactions", "blob_name", blobName, "errors_count", len(parseErrors))
		// Consume the message so it doesn't retry forever.
		w.WriteHeader(http.StatusOK)
		return
	}

	newTransactions, err := d.Database.SaveTransactions(r.Context(), d.WorkspaceID, transactions)
	if err != nil {
		slog.Error("failed to save transactions", "total_count", len(transactions), "error", err)
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to save transactions: %v", err))
		return
	}

	if len(newTransactions) > 0 {
		if _, err := d.engine().EvaluateAll(r.Context(), d.WorkspaceID); err != nil {
			// The import itself succeeded; alerts will catch up on the
			// next evaluation.
			slog.Error("failed to re-evaluate budgets after import", "error", err)
		}
	}

	slog.Info("import job complete", "blob_name", blobName, "new_transactions_count", len(newTransactions))
	w.WriteHeader(http.StatusOK)
}
