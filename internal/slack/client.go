package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the Slack Web API root.
const DefaultBaseURL = "https://slack.com/api"

// historyPageLimit is the per-page message count for
// conversations.history. Slack recommends no more than 200.
// https://api.slack.com/methods/conversations.history
const historyPageLimit = 200

// Client is a minimal Slack Web API client covering the conversation
// history calls the auditor needs.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient constructs a client using the given bot token. baseURL is
// the API root; pass "" for the public Slack API.
func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HistoryOptions bounds a ConversationHistory call.
type HistoryOptions struct {
	// Oldest and Latest bound the returned messages. Zero values mean
	// unbounded.
	Oldest time.Time
	Latest time.Time
	// PrecedingOlderCount is how many messages older than Oldest to
	// keep before stopping. Keeping one lets the caller attribute the
	// interval that straddles the window start.
	PrecedingOlderCount int
}

type historyResponse struct {
	OK               bool   `json:"ok"`
	Error            string `json:"error"`
	HasMore          bool   `json:"has_more"`
	Messages         []wireMessage `json:"messages"`
	ResponseMetadata struct {
		NextCursor string `json:"next_cursor"`
	} `json:"response_metadata"`
}

type wireMessage struct {
	Type  string `json:"type"`
	User  string `json:"user"`
	TS    string `json:"ts"`
	Text  string `json:"text"`
	BotID string `json:"bot_id"`
}

// ConversationHistory pages through conversations.history for the
// channel, newest first as Slack returns them, stopping once
// opts.PrecedingOlderCount messages older than opts.Oldest have been
// collected.
func (c *Client) ConversationHistory(ctx context.Context, channelID string, opts HistoryOptions) ([]Message, error) {
	var messages []Message
	cursor := ""
	foundOlder := 0

	for {
		page, err := c.historyPage(ctx, channelID, cursor, opts.Latest)
		if err != nil {
			return nil, err
		}
		for _, wm := range page.Messages {
			ts, err := ParseTimestamp(wm.TS)
			if err != nil {
				return nil, fmt.Errorf("parse message ts %q: %w", wm.TS, err)
			}
			msg := Message{User: wm.User, Type: wm.Type, Timestamp: ts, Text: wm.Text}
			if !opts.Oldest.IsZero() && ts.Before(opts.Oldest) {
				foundOlder++
			}
			if foundOlder > opts.PrecedingOlderCount {
				return messages, nil
			}
			messages = append(messages, msg)
		}
		if !page.HasMore {
			return messages, nil
		}
		cursor = page.ResponseMetadata.NextCursor
	}
}

func (c *Client) historyPage(ctx context.Context, channelID, cursor string, latest time.Time) (*historyResponse, error) {
	params := url.Values{}
	params.Set("channel", channelID)
	params.Set("limit", strconv.Itoa(historyPageLimit))
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	if !latest.IsZero() {
		params.Set("latest", FormatTimestamp(latest))
	}

	endpoint := c.baseURL + "/conversations.history?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build history request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("conversations.history request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("conversations.history returned status %d", resp.StatusCode)
	}

	var page historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}
	if !page.OK {
		return nil, fmt.Errorf("conversations.history failed: %s", page.Error)
	}
	return &page, nil
}

// ParseTimestamp converts a Slack "ts" value ("1629878400.000300")
// into a time.Time, preserving sub-second precision.
func ParseTimestamp(ts string) (time.Time, error) {
	secsPart, fracPart, _ := strings.Cut(ts, ".")
	secs, err := strconv.ParseInt(secsPart, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	var nsec int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		padded := fracPart + strings.Repeat("0", 9-len(fracPart))
		nsec, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Unix(secs, nsec).UTC(), nil
}

// FormatTimestamp renders a time.Time as a Slack "ts" parameter.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d.%06d", t.Unix(), t.Nanosecond()/1000)
}
