package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bensmidt/switchlog/internal/database"
	"github.com/bensmidt/switchlog/internal/models"
)

// TaskLogHandler serves read access to the weekly task-log sheet.
type TaskLogHandler struct {
	taskLogRepo database.TaskLogRepositoryInterface
	logger      *zap.Logger
}

// NewTaskLogHandler creates a new task log handler
func NewTaskLogHandler(taskLogRepo database.TaskLogRepositoryInterface, logger *zap.Logger) *TaskLogHandler {
	return &TaskLogHandler{taskLogRepo: taskLogRepo, logger: logger}
}

// RegisterRoutes registers task log routes on the given router
func (h *TaskLogHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/log", h.ListRows).Methods("GET")
}

// ListRowsResponse is the body for GET /log.
type ListRowsResponse struct {
	From string           `json:"from"`
	To   string           `json:"to"`
	Rows []*models.LogRow `json:"rows"`
}

// ListRows handles GET /log?from=YYYY-MM-DD&to=YYYY-MM-DD. Missing
// bounds default to the current day.
func (h *TaskLogHandler) ListRows(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Format(models.DateLayout)
	from := r.URL.Query().Get("from")
	if from == "" {
		from = today
	}
	to := r.URL.Query().Get("to")
	if to == "" {
		to = today
	}
	if _, err := time.Parse(models.DateLayout, from); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "from must be YYYY-MM-DD")
		return
	}
	if _, err := time.Parse(models.DateLayout, to); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "to must be YYYY-MM-DD")
		return
	}

	rows, err := h.taskLogRepo.ListByDateRange(r.Context(), from, to)
	if err != nil {
		h.logger.Error("failed_to_list_log_rows", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to list log rows")
		return
	}

	respondJSON(w, http.StatusOK, ListRowsResponse{From: from, To: to, Rows: rows})
}
