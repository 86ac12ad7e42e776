package queue

import (
	"time"

	"github.com/google/uuid"
)

// JobType represents the type of job
type JobType string

const (
	// JobTypeSheetAppend appends a row to the weekly task-log sheet
	// (the "ts:" command path).
	JobTypeSheetAppend JobType = "sheet_append"
	// JobTypeJournalAppend appends an entry line to the daily journal
	// (the "tdo:" command path).
	JobTypeJournalAppend JobType = "journal_append"
)

// Job represents a persistence job in the queue. The webhook handler
// enqueues; the worker consumes and writes through the repositories.
type Job struct {
	ID        uuid.UUID `json:"id"`
	Type      JobType   `json:"type"`
	ChannelID string    `json:"channel_id"`
	Task      string    `json:"task"`
	Category  string    `json:"category"`
	// Timestamp is when the command message was posted, in the
	// channel's timezone. Both persistence paths key their output on
	// it, not on processing time.
	Timestamp  time.Time  `json:"timestamp"`
	NotBefore  *time.Time `json:"not_before,omitempty"` // Earliest time to process (nil = immediate)
	NotAfter   *time.Time `json:"not_after,omitempty"`  // Latest time to process (nil = no expiration)
	CreatedAt  time.Time  `json:"created_at"`
	RetryCount int        `json:"retry_count"`
	MaxRetries int        `json:"max_retries"`
}

// NewJob creates a new job
func NewJob(jobType JobType, channelID, task, category string, ts time.Time) *Job {
	return &Job{
		ID:         uuid.New(),
		Type:       jobType,
		ChannelID:  channelID,
		Task:       task,
		Category:   category,
		Timestamp:  ts,
		CreatedAt:  time.Now(),
		RetryCount: 0,
		MaxRetries: 3,
	}
}

// ShouldProcess checks if the job should be processed now
func (j *Job) ShouldProcess() bool {
	now := time.Now()
	if j.NotBefore != nil && now.Before(*j.NotBefore) {
		return false
	}
	if j.NotAfter != nil && now.After(*j.NotAfter) {
		return false
	}
	return true
}

// IsExpired checks if the job has expired
func (j *Job) IsExpired() bool {
	if j.NotAfter == nil {
		return false
	}
	return time.Now().After(*j.NotAfter)
}

// CanRetry checks if the job can be retried
func (j *Job) CanRetry() bool {
	return j.RetryCount < j.MaxRetries
}

// IncrementRetry increments the retry count
func (j *Job) IncrementRetry() {
	j.RetryCount++
}
