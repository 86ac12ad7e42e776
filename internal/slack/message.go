package slack

import (
	"time"

	"github.com/bensmidt/switchlog/internal/tasks"
)

// Message is one message from a channel's conversation history.
type Message struct {
	User      string
	Type      string
	Timestamp time.Time
	Text      string
}

// Event converts the message into the analysis engine's event form.
func (m Message) Event() tasks.Event {
	return tasks.Event{Author: m.User, Timestamp: m.Timestamp, Text: m.Text}
}

// Events converts a message slice for the analysis engine, preserving
// order.
func Events(msgs []Message) []tasks.Event {
	out := make([]tasks.Event, len(msgs))
	for i, m := range msgs {
		out[i] = m.Event()
	}
	return out
}
