package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bensmidt/switchlog/internal/analysis"
	"github.com/bensmidt/switchlog/internal/slack"
	"github.com/bensmidt/switchlog/internal/tasks"
	"github.com/bensmidt/switchlog/internal/validation"
)

// HistoryFetcher is the slice of the Slack client the audit path
// needs. The interface enables mock implementations in tests.
type HistoryFetcher interface {
	ConversationHistory(ctx context.Context, channelID string, opts slack.HistoryOptions) ([]slack.Message, error)
}

// AuditHandler serves on-demand time-accounting reports: it replays a
// channel's message history over a window, reconstructs task intervals
// and aggregates them by tag.
type AuditHandler struct {
	history  HistoryFetcher
	location *time.Location
	logger   *zap.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(history HistoryFetcher, location *time.Location, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{history: history, location: location, logger: logger}
}

// RegisterRoutes registers audit routes on the given router
func (h *AuditHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/audit", h.GetAudit).Methods("GET")
}

// auditQuery is the validated query parameter set for GET /audit.
type auditQuery struct {
	Channel  string `validate:"required"`
	Start    string `validate:"required"`
	End      string `validate:"required"`
	Grouping string `validate:"omitempty,oneof=first_tag all_tags"`
}

// AuditResponse is the JSON body for a successful audit.
type AuditResponse struct {
	Channel     string           `json:"channel"`
	WindowStart time.Time        `json:"window_start"`
	WindowEnd   time.Time        `json:"window_end"`
	Grouping    string           `json:"grouping"`
	NumTasks    int              `json:"num_tasks"`
	Report      *analysis.Report `json:"report"`
	Rendered    string           `json:"rendered"`
}

// GetAudit handles GET /audit?channel=...&start=...&end=...
func (h *AuditHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	q := auditQuery{
		Channel:  r.URL.Query().Get("channel"),
		Start:    r.URL.Query().Get("start"),
		End:      r.URL.Query().Get("end"),
		Grouping: r.URL.Query().Get("grouping"),
	}
	if err := validation.Struct(q); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "channel, start and end are required")
		return
	}

	start, err := time.ParseInLocation(time.RFC3339, q.Start, h.location)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "start must be RFC3339")
		return
	}
	end, err := time.ParseInLocation(time.RFC3339, q.End, h.location)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "end must be RFC3339")
		return
	}

	grouping := analysis.GroupFirstTag
	if q.Grouping == string(analysis.GroupAllTags) {
		grouping = analysis.GroupAllTags
	}

	report, rendered, numTasks, err := h.runAudit(r.Context(), q.Channel, start, end, grouping)
	if err != nil {
		var invalidWindow *tasks.InvalidWindowError
		switch {
		case errors.As(err, &invalidWindow):
			respondJSONError(w, http.StatusBadRequest, "Bad Request", err.Error())
		case errors.Is(err, analysis.ErrEmptyAnalysis):
			// "No data for window" is a result, not a failure
			respondJSON(w, http.StatusOK, AuditResponse{
				Channel:     q.Channel,
				WindowStart: start,
				WindowEnd:   end,
				Grouping:    string(grouping),
			})
		default:
			h.logger.Error("audit_failed",
				zap.String("channel", q.Channel),
				zap.Error(err),
			)
			respondJSONError(w, http.StatusBadGateway, "Bad Gateway", "Failed to replay channel history")
		}
		return
	}

	respondJSON(w, http.StatusOK, AuditResponse{
		Channel:     q.Channel,
		WindowStart: start,
		WindowEnd:   end,
		Grouping:    string(grouping),
		NumTasks:    numTasks,
		Report:      report,
		Rendered:    rendered,
	})
}

func (h *AuditHandler) runAudit(ctx context.Context, channelID string, start, end time.Time, grouping analysis.Grouping) (*analysis.Report, string, int, error) {
	messages, err := h.history.ConversationHistory(ctx, channelID, slack.HistoryOptions{
		Oldest: start,
		Latest: end,
		// Keep one message older than the window so the interval that
		// straddles the window start is attributable
		PrecedingOlderCount: 1,
	})
	if err != nil {
		return nil, "", 0, err
	}

	built, err := tasks.Build(slack.Events(messages), start, end)
	if err != nil {
		return nil, "", 0, err
	}

	ta := analysis.New(built, grouping)
	report, err := ta.Summarize()
	if err != nil {
		return nil, "", 0, err
	}
	rendered, err := ta.Render()
	if err != nil {
		return nil, "", 0, err
	}
	return report, rendered, len(built), nil
}
