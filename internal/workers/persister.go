package workers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bensmidt/switchlog/internal/database"
	logpkg "github.com/bensmidt/switchlog/internal/logger"
	"github.com/bensmidt/switchlog/internal/models"
	"github.com/bensmidt/switchlog/internal/queue"
)

// JobProcessor handles one job type.
type JobProcessor func(ctx context.Context, job *queue.Job) error

// Persister consumes persistence jobs and writes them through the
// repositories: sheet rows for "ts:" commands, journal entries for
// "tdo:" commands.
type Persister struct {
	taskLogRepo database.TaskLogRepositoryInterface
	journalRepo database.JournalRepositoryInterface
	logger      *zap.Logger
	registry    map[queue.JobType]JobProcessor
}

// NewPersister creates a persister and registers both append processors.
func NewPersister(
	taskLogRepo database.TaskLogRepositoryInterface,
	journalRepo database.JournalRepositoryInterface,
	logger *zap.Logger,
) *Persister {
	p := &Persister{
		taskLogRepo: taskLogRepo,
		journalRepo: journalRepo,
		logger:      logger,
		registry:    make(map[queue.JobType]JobProcessor),
	}
	p.RegisterProcessor(queue.JobTypeSheetAppend, p.ProcessSheetAppendJob)
	p.RegisterProcessor(queue.JobTypeJournalAppend, p.ProcessJournalAppendJob)
	return p
}

// RegisterProcessor registers a processor for a job type.
func (p *Persister) RegisterProcessor(typ queue.JobType, proc JobProcessor) {
	p.registry[typ] = proc
}

// ProcessSheetAppendJob appends a (date, timestamp, task, category)
// row to the weekly task-log sheet.
func (p *Persister) ProcessSheetAppendJob(ctx context.Context, job *queue.Job) error {
	row := &models.LogRow{
		Date:      job.Timestamp.Format(models.DateLayout),
		Timestamp: job.Timestamp,
		Task:      job.Task,
		Category:  job.Category,
	}
	if err := p.taskLogRepo.AppendRow(ctx, row); err != nil {
		return fmt.Errorf("failed to append sheet row: %w", err)
	}
	p.logger.Info("appended_sheet_row",
		zap.String("row_id", row.ID.String()),
		zap.String("date", row.Date),
		zap.String("category", job.Category),
	)
	return nil
}

// ProcessJournalAppendJob appends an entry line to the daily journal,
// rotating the week document and writing the day header as needed.
func (p *Persister) ProcessJournalAppendJob(ctx context.Context, job *queue.Job) error {
	line := models.EntryLine(job.Timestamp, job.Task, job.Category)
	entry, err := p.journalRepo.AppendEntry(ctx, job.Timestamp, line)
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}
	p.logger.Info("appended_journal_entry",
		zap.String("entry_id", entry.ID.String()),
		zap.String("day", entry.Day),
		zap.String("document_id", entry.DocumentID.String()),
	)
	return nil
}

// ProcessJob dispatches a message to its processor and handles the
// ack/nack lifecycle. Failed jobs are nacked without requeue and land
// in the DLQ.
func (p *Persister) ProcessJob(ctx context.Context, msg queue.MessageInterface) error {
	job := msg.GetJob()
	if !job.ShouldProcess() {
		if ackErr := msg.Ack(); ackErr != nil {
			p.logger.Warn("failed_to_ack_expired_job",
				zap.String("job_id", job.ID.String()),
				zap.String("error", logpkg.SanitizeError(ackErr)),
			)
		}
		return nil
	}
	proc, ok := p.registry[job.Type]
	if !ok {
		if nackErr := msg.Nack(false); nackErr != nil {
			p.logger.Error("failed_to_nack_unknown_job_type",
				zap.String("job_id", job.ID.String()),
				zap.String("job_type", string(job.Type)),
				zap.String("error", logpkg.SanitizeError(nackErr)),
			)
		}
		return fmt.Errorf("unknown job type: %s", job.Type)
	}
	if err := proc(ctx, job); err != nil {
		p.logger.Error("persistence_job_failed",
			zap.String("job_id", job.ID.String()),
			zap.String("job_type", string(job.Type)),
			zap.String("error", logpkg.SanitizeError(err)),
		)
		if nackErr := msg.Nack(false); nackErr != nil {
			p.logger.Warn("failed_to_nack_persistence_job",
				zap.String("job_id", job.ID.String()),
				zap.String("error", logpkg.SanitizeError(nackErr)),
			)
		}
		return fmt.Errorf("persistence job failed: %w", err)
	}
	if ackErr := msg.Ack(); ackErr != nil {
		return fmt.Errorf("failed to ack persistence job: %w", ackErr)
	}
	return nil
}
