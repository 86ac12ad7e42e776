package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRespondJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	respondJSON(rr, http.StatusOK, map[string]string{"status": "queued"})

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != true {
		t.Error("success = false, want true")
	}
	if body["timestamp"] == nil {
		t.Error("timestamp missing from envelope")
	}
}

func TestRespondJSONError_TruncatesLongMessages(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	respondJSONError(rr, http.StatusBadRequest, "Bad Request", strings.Repeat("x", 500))

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	msg, ok := body["message"].(string)
	if !ok {
		t.Fatal("message missing")
	}
	if len(msg) != 203 {
		t.Errorf("message length = %d, want 200 chars plus ellipsis", len(msg))
	}
	if body["success"] != false {
		t.Error("success = true, want false")
	}
}
