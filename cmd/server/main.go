package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rocjay1/family-budget/internal/handlers"
	"github.com/rocjay1/family-budget/internal/models"
	"github.com/rocjay1/family-budget/internal/services"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	// Local dev convenience; the host injects env vars in production.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	workspaceID := os.Getenv("WORKSPACE_ID")
	if workspaceID == "" {
		slog.Error("WORKSPACE_ID environment variable is required")
		os.Exit(1)
	}

	plan := models.PlanTier(os.Getenv("WORKSPACE_PLAN"))
	if plan == "" {
		plan = models.PlanFree
	}

	dbService, err := services.NewDatabaseService()
	if err != nil {
		slog.Error("Failed to init DatabaseService", "error", err)
		os.Exit(1)
	}

	blobService, err := services.NewBlobService()
	if err != nil {
		slog.Error("Failed to init BlobService", "error", err)
		os.Exit(1)
	}

	queueService, err := services.NewQueueService()
	if err != nil {
		slog.Error("Failed to init QueueService", "error", err)
		os.Exit(1)
	}

	deps := &handlers.Dependencies{
		Database:              dbService,
		Blob:                  blobService,
		Queue:                 queueService,
		WorkspaceID:           workspaceID,
		Plan:                  plan,
		ResetAlertsOnRollover: os.Getenv("RESET_ALERTS_ON_ROLLOVER") == "true",
	}

	// Alerts degrade to log-only when email isn't configured.
	emailService, err := services.NewEmailService(nil)
	if err != nil {
		slog.Warn("Failed to init EmailService (continuing without alerts)", "error", err)
	} else {
		deps.Email = emailService
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/budgets", deps.HandleBudgets)
	mux.HandleFunc("POST /api/budgets", deps.HandleBudgets)
	mux.HandleFunc("DELETE /api/budgets", deps.HandleBudgets)
	mux.HandleFunc("GET /api/budgets/progress", deps.HandleBudgetProgress)
	mux.HandleFunc("POST /api/budgets/rollover", deps.HandleBudgetRollover)

	mux.HandleFunc("GET /api/goals", deps.HandleGoals)
	mux.HandleFunc("POST /api/goals", deps.HandleGoals)
	mux.HandleFunc("DELETE /api/goals", deps.HandleGoals)
	mux.HandleFunc("GET /api/goals/progress", deps.HandleGoalProgress)

	mux.HandleFunc("POST /api/goals/contributions", deps.HandleContributions)
	mux.HandleFunc("PUT /api/goals/contributions", deps.HandleContributions)
	mux.HandleFunc("DELETE /api/goals/contributions", deps.HandleContributions)
	mux.HandleFunc("GET /api/goals/contributions", deps.HandleContributionList)

	mux.HandleFunc("GET /api/dashboard", deps.HandleDashboard)

	mux.HandleFunc("POST /api/upload", deps.HandleUpload)

	// Host-invoked triggers (see host.json bindings).
	mux.HandleFunc("/HttpTrigger", deps.HandleHttpTrigger(mux))
	mux.HandleFunc("/ProcessQueue", deps.ProcessQueue)
	mux.HandleFunc("/NightlyTrigger", deps.HandleNightlyTrigger)

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	port := os.Getenv("FUNCTIONS_CUSTOMHANDLER_PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("Starting server", "port", port, "workspace_id", workspaceID, "plan", plan)
	if err := http.ListenAndServe(":"+port, loggingMiddleware(mux)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration", time.Since(start),
		)
	})
}
