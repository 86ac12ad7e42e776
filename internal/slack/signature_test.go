package slack

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"
)

func signBody(secret, ts string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:", ts)
	mac.Write(body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func TestSignatureVerifier_Verify(t *testing.T) {
	t.Parallel()

	const secret = "8f742231b10e8888abcd99yyyzzz85a5"
	now := time.Unix(1700000000, 0)
	body := []byte(`{"type":"event_callback"}`)
	goodTS := strconv.FormatInt(now.Unix(), 10)

	tests := []struct {
		name      string
		ts        string
		signature string
		body      []byte
		wantErr   bool
	}{
		{
			name:      "valid signature",
			ts:        goodTS,
			signature: signBody(secret, goodTS, body),
			body:      body,
		},
		{
			name:      "tampered body",
			ts:        goodTS,
			signature: signBody(secret, goodTS, body),
			body:      []byte(`{"type":"tampered"}`),
			wantErr:   true,
		},
		{
			name:      "wrong secret",
			ts:        goodTS,
			signature: signBody("other-secret", goodTS, body),
			body:      body,
			wantErr:   true,
		},
		{
			name:      "stale timestamp",
			ts:        strconv.FormatInt(now.Add(-6*time.Minute).Unix(), 10),
			signature: signBody(secret, strconv.FormatInt(now.Add(-6*time.Minute).Unix(), 10), body),
			body:      body,
			wantErr:   true,
		},
		{
			name:      "future timestamp",
			ts:        strconv.FormatInt(now.Add(6*time.Minute).Unix(), 10),
			signature: signBody(secret, strconv.FormatInt(now.Add(6*time.Minute).Unix(), 10), body),
			body:      body,
			wantErr:   true,
		},
		{
			name:      "missing timestamp header",
			ts:        "",
			signature: signBody(secret, goodTS, body),
			body:      body,
			wantErr:   true,
		},
		{
			name:      "missing signature header",
			ts:        goodTS,
			signature: "",
			body:      body,
			wantErr:   true,
		},
		{
			name:      "non-numeric timestamp",
			ts:        "not-a-number",
			signature: signBody(secret, "not-a-number", body),
			body:      body,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := NewSignatureVerifier(secret)
			v.now = func() time.Time { return now }

			header := http.Header{}
			if tt.ts != "" {
				header.Set(TimestampHeader, tt.ts)
			}
			if tt.signature != "" {
				header.Set(SignatureHeader, tt.signature)
			}

			err := v.Verify(header, tt.body)
			if (err != nil) != tt.wantErr {
				t.Errorf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSignatureVerifier_SkewBoundary(t *testing.T) {
	t.Parallel()

	const secret = "secret"
	now := time.Unix(1700000000, 0)
	body := []byte("payload")

	// Exactly at the skew limit is still accepted.
	ts := strconv.FormatInt(now.Add(-5*time.Minute).Unix(), 10)
	v := NewSignatureVerifier(secret)
	v.now = func() time.Time { return now }

	header := http.Header{}
	header.Set(TimestampHeader, ts)
	header.Set(SignatureHeader, signBody(secret, ts, body))

	if err := v.Verify(header, body); err != nil {
		t.Errorf("Verify() at exact skew limit error = %v", err)
	}
}
