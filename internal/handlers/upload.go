package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"
)

// dataContainer holds uploaded statement files until the queue worker
// picks them up.
const dataContainer = "family-budget-data"

const importQueue = "import-queue"

// HandleUpload handles statement CSV uploads: the file is staged in blob
// storage and an import job is queued.
func (d *Dependencies) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Warn("upload attempt with invalid method", "method", r.Method, "path", r.URL.Path)
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if !d.capabilities().CSVImport {
		slog.Warn("csv import not available on plan", "plan", d.Plan)
		WriteError(w, http.StatusForbidden, fmt.Sprintf("Plan %s does not include CSV import", d.Plan))
		return
	}

	// 10MB limit
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Warn("failed to parse multipart form", "error", err, "max_size_mb", 10)
		WriteError(w, http.StatusBadRequest, "File too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		slog.Warn("failed to get file from form", "error", err)
		WriteError(w, http.StatusBadRequest, "Failed to get file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read uploaded file", "filename", header.Filename, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}
	slog.Info("received file upload", "filename", header.Filename, "size_bytes", len(content))

	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Base(header.Filename)
	blobName := fmt.Sprintf("uploads/%s-%s", timestamp, filename)

	if err := d.Blob.UploadText(r.Context(), dataContainer, blobName, string(content)); err != nil {
		slog.Error("failed to upload blob", "blob_name", blobName, "container", dataContainer, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to upload blob: "+err.Error())
		return
	}

	msg := map[string]string{
		"blobName": blobName,
		"filename": filename,
	}
	if err := d.Queue.EnqueueMessage(r.Context(), importQueue, msg); err != nil {
		slog.Error("failed to enqueue import job", "queue", importQueue, "blob_name", blobName, "error", err)
		WriteError(w, http.StatusInternalServerError, "Failed to enqueue message: "+err.Error())
		return
	}
	slog.Info("queued statement import", "queue", importQueue, "filename", filename, "blob_name", blobName)

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":   "success",
		"blobName": blobName,
	})
}
