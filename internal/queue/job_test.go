package queue

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewJob(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	job := NewJob(JobTypeSheetAppend, "C123", "refactor consumer", "coding", ts)

	if job.ID == uuid.Nil {
		t.Error("Expected job ID to be set")
	}
	if job.Type != JobTypeSheetAppend {
		t.Errorf("Expected job type to be %s, got %s", JobTypeSheetAppend, job.Type)
	}
	if job.ChannelID != "C123" {
		t.Errorf("Expected channel ID to be C123, got %s", job.ChannelID)
	}
	if job.Task != "refactor consumer" {
		t.Errorf("Expected task to be set, got %q", job.Task)
	}
	if job.Category != "coding" {
		t.Errorf("Expected category to be coding, got %q", job.Category)
	}
	if !job.Timestamp.Equal(ts) {
		t.Errorf("Expected timestamp %v, got %v", ts, job.Timestamp)
	}
	if job.RetryCount != 0 {
		t.Errorf("Expected retry count to be 0, got %d", job.RetryCount)
	}
	if job.MaxRetries != 3 {
		t.Errorf("Expected max retries to be 3, got %d", job.MaxRetries)
	}
}

func TestJob_ShouldProcess(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name string
		job  *Job
		want bool
	}{
		{
			name: "no time constraints",
			job:  &Job{ID: uuid.New(), Type: JobTypeSheetAppend},
			want: true,
		},
		{
			name: "not before in past",
			job:  &Job{ID: uuid.New(), Type: JobTypeSheetAppend, NotBefore: timePtr(now.Add(-1 * time.Hour))},
			want: true,
		},
		{
			name: "not before in future",
			job:  &Job{ID: uuid.New(), Type: JobTypeSheetAppend, NotBefore: timePtr(now.Add(1 * time.Hour))},
			want: false,
		},
		{
			name: "not after in past",
			job:  &Job{ID: uuid.New(), Type: JobTypeJournalAppend, NotAfter: timePtr(now.Add(-1 * time.Hour))},
			want: false,
		},
		{
			name: "not after in future",
			job:  &Job{ID: uuid.New(), Type: JobTypeJournalAppend, NotAfter: timePtr(now.Add(1 * time.Hour))},
			want: true,
		},
		{
			name: "within time window",
			job: &Job{
				ID:        uuid.New(),
				Type:      JobTypeSheetAppend,
				NotBefore: timePtr(now.Add(-1 * time.Hour)),
				NotAfter:  timePtr(now.Add(1 * time.Hour)),
			},
			want: true,
		},
		{
			name: "outside time window",
			job: &Job{
				ID:        uuid.New(),
				Type:      JobTypeSheetAppend,
				NotBefore: timePtr(now.Add(1 * time.Hour)),
				NotAfter:  timePtr(now.Add(2 * time.Hour)),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.job.ShouldProcess()
			if got != tt.want {
				t.Errorf("ShouldProcess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJob_IsExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name string
		job  *Job
		want bool
	}{
		{
			name: "no expiration",
			job:  &Job{ID: uuid.New(), Type: JobTypeSheetAppend},
			want: false,
		},
		{
			name: "expired",
			job:  &Job{ID: uuid.New(), Type: JobTypeSheetAppend, NotAfter: timePtr(now.Add(-1 * time.Hour))},
			want: true,
		},
		{
			name: "not expired",
			job:  &Job{ID: uuid.New(), Type: JobTypeSheetAppend, NotAfter: timePtr(now.Add(1 * time.Hour))},
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.job.IsExpired()
			if got != tt.want {
				t.Errorf("IsExpired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJob_RetryAccounting(t *testing.T) {
	t.Parallel()

	job := &Job{ID: uuid.New(), Type: JobTypeSheetAppend, MaxRetries: 3}

	for i := 0; i < 3; i++ {
		if !job.CanRetry() {
			t.Fatalf("CanRetry() = false at retry count %d, want true", job.RetryCount)
		}
		job.IncrementRetry()
	}
	if job.RetryCount != 3 {
		t.Errorf("Expected retry count to be 3, got %d", job.RetryCount)
	}
	if job.CanRetry() {
		t.Error("CanRetry() = true at max retries, want false")
	}
}

// Helper function to create time pointers
func timePtr(t time.Time) *time.Time {
	return &t
}
