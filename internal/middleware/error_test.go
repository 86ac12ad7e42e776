package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestErrorHandler_RecoversPanic(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := ErrorHandler(zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodPost, "/slack/events", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "Internal Server Error" {
		t.Errorf("error = %q, want Internal Server Error", resp.Error)
	}
	if resp.Path != "/slack/events" {
		t.Errorf("path = %q, want /slack/events", resp.Path)
	}
	// The panic value must not leak to the client
	if resp.Message == "boom" {
		t.Error("panic detail leaked into the response")
	}
}

func TestErrorHandler_PassesThroughNormally(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	handler := ErrorHandler(zap.NewNop())(next)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rr.Code)
	}
}
