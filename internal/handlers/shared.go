package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocjay1/family-budget/internal/budget"
	"github.com/rocjay1/family-budget/internal/models"
	"github.com/rocjay1/family-budget/internal/savings"
)

// Dependencies holds the services and workspace settings required by the
// handlers.
type Dependencies struct {
	Database DatabaseClient
	Blob     BlobClient
	Queue    QueueClient
	Email    EmailClient

	WorkspaceID string
	Plan        models.PlanTier

	ResetAlertsOnRollover bool
}

// engine builds the budget engine for this workspace. Alert emails are
// wired in only when the plan grants them and an email client exists.
func (d *Dependencies) engine() *budget.Engine {
	e := budget.NewEngine(d.Database, nil)
	e.ResetAlertsOnRollover = d.ResetAlertsOnRollover
	if d.Email != nil && models.CapabilitiesFor(d.Plan).EmailAlerts {
		e.Notifier = d.Email
	}
	return e
}

func (d *Dependencies) savingsService() *savings.Service {
	return savings.NewService(d.Database)
}

// capabilities returns the workspace's plan capability set.
func (d *Dependencies) capabilities() models.Capabilities {
	return models.CapabilitiesFor(d.Plan)
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// WriteError writes an error response.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteDomainError maps the error taxonomy onto HTTP statuses: missing
// records are 404, lifecycle conflicts 409, rejected input 400,
// everything else 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidState):
		WriteError(w, http.StatusConflict, err.Error())
	case errors.As(err, &vErr):
		WriteError(w, http.StatusBadRequest, vErr.Error())
	default:
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
