package database

import (
	"strings"
	"testing"
)

// Concurrent first appends for a week must collapse onto one document.
// That depends on two statements: the document insert deferring to the
// unique week_start index, and the re-select taking a row lock. Pin
// both so a refactor cannot quietly drop them.
func TestJournalDocumentQueriesSerializeWeekCreation(t *testing.T) {
	t.Parallel()

	if !strings.Contains(upsertJournalDocumentQuery, "ON CONFLICT (week_start) DO NOTHING") {
		t.Errorf("document insert lost its week_start conflict clause: %q", upsertJournalDocumentQuery)
	}
	if !strings.Contains(lockJournalDocumentQuery, "FOR UPDATE") {
		t.Errorf("document re-select lost its row lock: %q", lockJournalDocumentQuery)
	}
	if !strings.Contains(lockJournalDocumentQuery, "WHERE week_start = $1") {
		t.Errorf("document re-select no longer keyed by week_start: %q", lockJournalDocumentQuery)
	}
}
