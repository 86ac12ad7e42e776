package slack

// EventsPayload is the outer envelope Slack posts to the events
// endpoint.
type EventsPayload struct {
	Type      string        `json:"type"`
	Challenge string        `json:"challenge,omitempty"`
	EventID   string        `json:"event_id,omitempty"`
	Event     *MessageEvent `json:"event,omitempty"`
}

// Payload types Slack sends to the events endpoint.
const (
	PayloadTypeURLVerification = "url_verification"
	PayloadTypeEventCallback   = "event_callback"
)

// MessageEvent is the inner message event.
type MessageEvent struct {
	Type    string `json:"type"`
	User    string `json:"user"`
	BotID   string `json:"bot_id,omitempty"`
	Text    string `json:"text"`
	TS      string `json:"ts"`
	Channel string `json:"channel"`
}

// IsUserMessage reports whether the event is a plain message from a
// human. Bot messages are ignored so the logger never reacts to its
// own output.
func (e *MessageEvent) IsUserMessage() bool {
	return e != nil && e.Type == "message" && e.BotID == ""
}
