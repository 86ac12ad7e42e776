package dedupe

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNew_DefaultTTL(t *testing.T) {
	t.Parallel()

	c := New(nil, 0)
	if c.ttl != 24*time.Hour {
		t.Errorf("default ttl = %v, want 24h", c.ttl)
	}

	c = New(nil, time.Minute)
	if c.ttl != time.Minute {
		t.Errorf("ttl = %v, want 1m", c.ttl)
	}
}

func TestSeen_EmptyIDPassesThrough(t *testing.T) {
	t.Parallel()

	// Events without an ID cannot be deduplicated; they must pass
	// without touching Redis.
	c := New(nil, time.Minute)
	seen, err := c.Seen(context.Background(), "")
	if err != nil {
		t.Fatalf("Seen(\"\") error = %v", err)
	}
	if seen {
		t.Error("Seen(\"\") = true, want false")
	}
}

func TestForget_EmptyIDNoOp(t *testing.T) {
	t.Parallel()

	c := New(nil, time.Minute)
	if err := c.Forget(context.Background(), ""); err != nil {
		t.Errorf("Forget(\"\") error = %v", err)
	}
}

func TestSeen_ReportsBackendErrors(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	c := New(client, time.Minute)

	_, err := c.Seen(context.Background(), "Ev123")
	if err == nil {
		t.Error("Seen() with unreachable Redis expected error")
	}
}
