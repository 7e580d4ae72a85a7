package repository

import (
	"context"
	"time"

	"furnished-lease-engine/internal/infra"
	sqlc "furnished-lease-engine/internal/infra/sqlc/generated"
	"furnished-lease-engine/internal/pkg/pgconv"
	"furnished-lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxQueries interface {
	InsertOutboxJob(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxJobParams) error
	ClaimDueOutboxJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueOutboxJobsParams) ([]sqlc.OutboxJob, error)
	CompleteOutboxJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteOutboxJobParams) error
	RescheduleOutboxJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleOutboxJobParams) error
}

type OutboxRepository struct {
	queries OutboxQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, job shared.OutboxJob) error {
	id := job.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	params := sqlc.InsertOutboxJobParams{
		ID:        id,
		Kind:      string(job.Kind),
		Topic:     job.Topic,
		Payload:   job.Payload,
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
		CreatedAt: pgconv.TimeToPgtype(job.CreatedAt),
	}

	if err := r.queries.InsertOutboxJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox job", err)
	}
	return nil
}

func (r *OutboxRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now, staleBefore time.Time, limit int32) ([]shared.OutboxJob, error) {
	rows, err := r.queries.ClaimDueOutboxJobs(ctx, tx, sqlc.ClaimDueOutboxJobsParams{
		Now:         pgconv.TimeToPgtype(now),
		StaleBefore: pgconv.TimeToPgtype(staleBefore),
		MaxRows:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim outbox jobs", err)
	}

	jobs := make([]shared.OutboxJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.OutboxJob{
			ID:        row.ID,
			Kind:      shared.OutboxKind(row.Kind),
			Topic:     row.Topic,
			Payload:   row.Payload,
			Status:    shared.OutboxStatus(row.Status),
			Attempts:  row.Attempts,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			LastError: pgconv.StringPtrFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return jobs, nil
}

func (r *OutboxRepository) MarkDone(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	err := r.queries.CompleteOutboxJob(ctx, tx, sqlc.CompleteOutboxJobParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete outbox job", err)
	}
	return nil
}

func (r *OutboxRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, status shared.OutboxStatus, runAt time.Time, lastError string, now time.Time) error {
	params := sqlc.RescheduleOutboxJobParams{
		ID:        id,
		Status:    string(status),
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgtype.Text{String: lastError, Valid: lastError != ""},
		UpdatedAt: pgconv.TimeToPgtype(now),
	}

	if err := r.queries.RescheduleOutboxJob(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule outbox job", err)
	}
	return nil
}
