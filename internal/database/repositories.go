package database

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bensmidt/switchlog/internal/models"
)

// TaskLogRepositoryInterface defines the persistence contract for the
// "ts:" command path. The interface enables mock implementations in
// worker and handler tests.
type TaskLogRepositoryInterface interface {
	AppendRow(ctx context.Context, row *models.LogRow) error
	ListByDateRange(ctx context.Context, from, to string) ([]*models.LogRow, error)
}

// JournalRepositoryInterface defines the persistence contract for the
// "tdo:" command path.
type JournalRepositoryInterface interface {
	AppendEntry(ctx context.Context, ts time.Time, text string) (*models.JournalEntry, error)
}

// JournalReaderInterface defines the read side of the journal, used by
// the journal API handler.
type JournalReaderInterface interface {
	GetDocumentForWeek(ctx context.Context, weekStart string) (*models.JournalDocument, error)
	ListEntries(ctx context.Context, documentID uuid.UUID) ([]*models.JournalEntry, error)
}

// Ensure concrete types implement the interfaces
var (
	_ TaskLogRepositoryInterface = (*TaskLogRepository)(nil)
	_ JournalRepositoryInterface = (*JournalRepository)(nil)
	_ JournalReaderInterface     = (*JournalRepository)(nil)
)
