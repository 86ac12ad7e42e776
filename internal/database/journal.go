package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/bensmidt/switchlog/internal/models"
)

// JournalRepository handles the narrative daily journal: week-scoped
// documents with day headers and appended entry lines, produced by the
// "tdo:" command path. It requires a unique index on
// journal_documents.week_start; that index is what keeps concurrent
// first appends for a week from creating two documents.
type JournalRepository struct {
	db *DB
}

const (
	upsertJournalDocumentQuery = `
		INSERT INTO journal_documents (id, week_start, title, days_written, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (week_start) DO NOTHING
	`
	lockJournalDocumentQuery = `
		SELECT id, week_start, title, days_written, created_at
		FROM journal_documents
		WHERE week_start = $1
		FOR UPDATE
	`
)

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// AppendEntry appends one entry line for ts, rotating to a fresh
// document when ts falls in a week with no document yet and recording
// the day the first time an entry lands on it. Two transactions racing
// on a week's first append both reach the insert; ON CONFLICT collapses
// the loser and the locking re-select returns whichever row won, so a
// week never splits across two documents.
func (r *JournalRepository) AppendEntry(ctx context.Context, ts time.Time, text string) (*models.JournalEntry, error) {
	day := ts.Format(models.DateLayout)
	weekStart := models.WeekStart(ts)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin journal transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	doc, err := lockDocumentForWeek(ctx, tx, weekStart)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		_, err = tx.ExecContext(ctx, upsertJournalDocumentQuery,
			uuid.New(), weekStart, models.DocumentTitle(weekStart), pq.Array([]string{}), time.Now(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create journal document: %w", err)
		}
		// ON CONFLICT blocks until a racing insert commits or aborts;
		// the re-select then locks whichever row exists for the
		// updates below.
		doc, err = lockDocumentForWeek(ctx, tx, weekStart)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, fmt.Errorf("journal document for week %s missing after insert", weekStart)
		}
	}

	if !doc.HasDay(day) {
		doc.DaysWritten = append(doc.DaysWritten, day)
		update := `UPDATE journal_documents SET days_written = $1 WHERE id = $2`
		if _, err := tx.ExecContext(ctx, update, pq.Array(doc.DaysWritten), doc.ID); err != nil {
			return nil, fmt.Errorf("failed to record journal day: %w", err)
		}
	}

	entry := &models.JournalEntry{
		ID:         uuid.New(),
		DocumentID: doc.ID,
		Day:        day,
		Text:       text,
	}
	insertEntry := `
		INSERT INTO journal_entries (id, document_id, day, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, insertEntry,
		entry.ID, entry.DocumentID, entry.Day, entry.Text, time.Now(),
	).Scan(&entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to append journal entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit journal transaction: %w", err)
	}

	return entry, nil
}

// GetDocumentForWeek retrieves the journal document covering weekStart,
// or nil when the week has no document.
func (r *JournalRepository) GetDocumentForWeek(ctx context.Context, weekStart string) (*models.JournalDocument, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin journal transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()
	return getDocumentForWeek(ctx, tx, weekStart)
}

// ListEntries retrieves a document's entries in append order.
func (r *JournalRepository) ListEntries(ctx context.Context, documentID uuid.UUID) ([]*models.JournalEntry, error) {
	query := `
		SELECT id, document_id, day, text, created_at
		FROM journal_entries
		WHERE document_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []*models.JournalEntry
	for rows.Next() {
		entry := &models.JournalEntry{}
		if err := rows.Scan(&entry.ID, &entry.DocumentID, &entry.Day, &entry.Text, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate journal entries: %w", err)
	}

	return out, nil
}

func getDocumentForWeek(ctx context.Context, tx *sql.Tx, weekStart string) (*models.JournalDocument, error) {
	query := `
		SELECT id, week_start, title, days_written, created_at
		FROM journal_documents
		WHERE week_start = $1
	`
	return scanDocument(tx.QueryRowContext(ctx, query, weekStart))
}

func lockDocumentForWeek(ctx context.Context, tx *sql.Tx, weekStart string) (*models.JournalDocument, error) {
	return scanDocument(tx.QueryRowContext(ctx, lockJournalDocumentQuery, weekStart))
}

func scanDocument(row *sql.Row) (*models.JournalDocument, error) {
	doc := &models.JournalDocument{}
	err := row.Scan(
		&doc.ID, &doc.WeekStart, &doc.Title, pq.Array(&doc.DaysWritten), &doc.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journal document: %w", err)
	}
	return doc, nil
}
