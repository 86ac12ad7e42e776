package models

import (
	"time"

	"github.com/google/uuid"
)

// LogRow is one appended row in the weekly task-log sheet, produced by
// the "ts:" command path.
type LogRow struct {
	ID        uuid.UUID `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD, in the channel's timezone
	Timestamp time.Time `json:"timestamp"`
	Task      string    `json:"task"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}
