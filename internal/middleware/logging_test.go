package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging_CapturesStatusCode(t *testing.T) {
	t.Parallel()

	core, recorded := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := Logging(logger)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/audit", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Message != "http_request" {
		t.Errorf("message = %q, want http_request", entry.Message)
	}

	fields := entry.ContextMap()
	if fields["status_code"] != int64(http.StatusTeapot) {
		t.Errorf("status_code = %v, want %d", fields["status_code"], http.StatusTeapot)
	}
	if fields["path"] != "/api/v1/audit" {
		t.Errorf("path = %v, want /api/v1/audit", fields["path"])
	}
	if fields["method"] != "GET" {
		t.Errorf("method = %v, want GET", fields["method"])
	}
}

func TestLogging_DefaultsTo200(t *testing.T) {
	t.Parallel()

	core, recorded := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handler writes nothing explicit
	})
	Logging(logger)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["status_code"]; got != int64(http.StatusOK) {
		t.Errorf("status_code = %v, want 200", got)
	}
}
