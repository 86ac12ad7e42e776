package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bensmidt/switchlog/internal/database"
	"github.com/bensmidt/switchlog/internal/models"
)

// JournalHandler serves read access to the weekly journal documents.
type JournalHandler struct {
	journalRepo database.JournalReaderInterface
	logger      *zap.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalRepo database.JournalReaderInterface, logger *zap.Logger) *JournalHandler {
	return &JournalHandler{journalRepo: journalRepo, logger: logger}
}

// RegisterRoutes registers journal routes on the given router
func (h *JournalHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/journal", h.GetWeek).Methods("GET")
}

// GetWeekResponse is the body for GET /journal.
type GetWeekResponse struct {
	Document *models.JournalDocument `json:"document"`
	Entries  []*models.JournalEntry  `json:"entries"`
}

// GetWeek handles GET /journal?week=YYYY-MM-DD. Any day of a week
// selects that week's document; a missing parameter selects the
// current week.
func (h *JournalHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	weekStart := models.WeekStart(time.Now())
	if week := r.URL.Query().Get("week"); week != "" {
		day, err := time.Parse(models.DateLayout, week)
		if err != nil {
			respondJSONError(w, http.StatusBadRequest, "Bad Request", "week must be YYYY-MM-DD")
			return
		}
		weekStart = models.WeekStart(day)
	}

	doc, err := h.journalRepo.GetDocumentForWeek(r.Context(), weekStart)
	if err != nil {
		h.logger.Error("failed_to_get_journal_document", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to get journal document")
		return
	}
	if doc == nil {
		respondJSONError(w, http.StatusNotFound, "Not Found", "No journal document for week "+weekStart)
		return
	}

	entries, err := h.journalRepo.ListEntries(r.Context(), doc.ID)
	if err != nil {
		h.logger.Error("failed_to_list_journal_entries", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to list journal entries")
		return
	}

	respondJSON(w, http.StatusOK, GetWeekResponse{Document: doc, Entries: entries})
}
