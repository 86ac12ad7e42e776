package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the canonical day key format used throughout the
// journal (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// JournalDocument is one week's narrative journal. A new document is
// started whenever an entry arrives for a week that has no document
// yet; day headers are written once per day.
type JournalDocument struct {
	ID          uuid.UUID `json:"id"`
	WeekStart   string    `json:"week_start"` // Monday of the week, YYYY-MM-DD
	Title       string    `json:"title"`
	DaysWritten []string  `json:"days_written"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasDay reports whether the document already carries a header for day.
func (d *JournalDocument) HasDay(day string) bool {
	for _, written := range d.DaysWritten {
		if written == day {
			return true
		}
	}
	return false
}

// JournalEntry is a single appended line under a day header, produced
// by the "tdo:" command path.
type JournalEntry struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	Day        string    `json:"day"` // YYYY-MM-DD
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// WeekStart returns the Monday of t's week as a day key.
func WeekStart(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -offset).Format(DateLayout)
}

// DocumentTitle renders the journal document title for a week.
func DocumentTitle(weekStart string) string {
	t, err := time.Parse(DateLayout, weekStart)
	if err != nil {
		return fmt.Sprintf("Todo Log - Week of %s", weekStart)
	}
	return fmt.Sprintf("Todo Log - Week of %s", t.Format("01.02.2006"))
}

// DayHeader renders the header line written once per day.
func DayHeader(day string) string {
	t, err := time.Parse(DateLayout, day)
	if err != nil {
		return day
	}
	return t.Format("Monday, 01.02.2006")
}

// EntryLine renders a journal entry line: "15:04:05 - task (category)".
func EntryLine(ts time.Time, task, category string) string {
	return fmt.Sprintf("%s - %s (%s)", ts.Format("15:04:05"), task, category)
}
