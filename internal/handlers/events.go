package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/bensmidt/switchlog/internal/command"
	"github.com/bensmidt/switchlog/internal/dedupe"
	logpkg "github.com/bensmidt/switchlog/internal/logger"
	"github.com/bensmidt/switchlog/internal/queue"
	"github.com/bensmidt/switchlog/internal/slack"
	"github.com/bensmidt/switchlog/internal/validation"
)

// EventsHandler receives Slack Events API deliveries and turns logging
// commands into persistence jobs. Everything durable happens in the
// worker; this handler only validates, deduplicates and enqueues, so
// Slack's 3-second response deadline is easy to meet.
type EventsHandler struct {
	jobQueue queue.JobQueue
	events   *dedupe.Cache
	location *time.Location
	logger   *zap.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(jobQueue queue.JobQueue, events *dedupe.Cache, location *time.Location, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		jobQueue: jobQueue,
		events:   events,
		location: location,
		logger:   logger,
	}
}

// RegisterRoutes registers the events endpoint on the given router
func (h *EventsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/slack/events", h.HandleEvents).Methods("POST")
}

// HandleEvents handles one Events API delivery.
func (h *EventsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	var payload slack.EventsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid event payload")
		return
	}

	switch payload.Type {
	case slack.PayloadTypeURLVerification:
		// Slack's initial endpoint verification ping
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, payload.Challenge)
		return
	case slack.PayloadTypeEventCallback:
		h.handleMessageEvent(w, r, &payload)
		return
	default:
		// Unknown payload types are acknowledged so Slack stops retrying
		respondJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
	}
}

func (h *EventsHandler) handleMessageEvent(w http.ResponseWriter, r *http.Request, payload *slack.EventsPayload) {
	ctx := r.Context()
	event := payload.Event

	if !event.IsUserMessage() {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}

	seen, err := h.events.Seen(ctx, payload.EventID)
	if err != nil {
		// Fail open: a Redis outage should not drop log commands. The
		// worker's writes are keyed on the message timestamp, so a rare
		// duplicate is visible rather than corrupting.
		h.logger.Warn("event_dedupe_unavailable", zap.Error(err))
	}
	if seen {
		h.logger.Debug("duplicate_event_skipped",
			zap.String("event_id", payload.EventID),
		)
		respondJSON(w, http.StatusOK, map[string]string{"status": "duplicate"})
		return
	}

	cmd, ok := command.Parse(event.Text)
	if !ok {
		h.logger.Info("ignored_message_invalid_format",
			zap.String("text", logpkg.SanitizeText(event.Text)),
		)
		respondJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}
	if err := validation.Struct(cmd); err != nil {
		h.logger.Warn("rejected_command",
			zap.String("text", logpkg.SanitizeText(event.Text)),
			zap.Error(err),
		)
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Command failed validation")
		return
	}

	ts, err := slack.ParseTimestamp(event.TS)
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid event timestamp")
		return
	}
	ts = ts.In(h.location)

	jobType := queue.JobTypeSheetAppend
	if cmd.Kind == command.KindTodoDoc {
		jobType = queue.JobTypeJournalAppend
	}
	job := queue.NewJob(jobType, event.Channel, cmd.Task, cmd.Category, ts)

	if err := h.jobQueue.Enqueue(ctx, job); err != nil {
		// Un-record the event so Slack's retry gets another chance
		if forgetErr := h.events.Forget(ctx, payload.EventID); forgetErr != nil {
			h.logger.Warn("failed_to_forget_event", zap.Error(forgetErr))
		}
		h.logger.Error("failed_to_enqueue_job",
			zap.String("job_type", string(jobType)),
			zap.Error(err),
		)
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to enqueue log command")
		return
	}

	h.logger.Info("enqueued_log_command",
		zap.String("job_type", string(jobType)),
		zap.String("channel", event.Channel),
		zap.String("category", cmd.Category),
	)
	respondJSON(w, http.StatusOK, map[string]string{"status": "queued"})
}
