package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"menuflow/internal/domain"
	"menuflow/internal/port"
)

type importJobRepo struct {
	db *sqlx.DB
}

// NewImportJobRepo creates a new PostgreSQL-backed ImportJobRepository.
func NewImportJobRepo(db *sqlx.DB) port.ImportJobRepository {
	return &importJobRepo{db: db}
}

func (r *importJobRepo) Create(ctx context.Context, job *domain.ImportJob) error {
	job.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO import_jobs (
			id, restaurant_id, menu_id, menu_name, status, plan,
			created_item_ids, failed_candidates, processing_notes, error,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		job.ID, job.RestaurantID, job.MenuID, job.MenuName, job.Status,
		[]byte(job.Plan), job.CreatedItemIDs, job.FailedCandidates,
		job.ProcessingNotes, job.Error, job.CreatedAt)
	if err != nil {
		return wrapDBError("importJobRepo.Create", err)
	}
	return nil
}

func (r *importJobRepo) GetByID(ctx context.Context, restaurantID, jobID uuid.UUID) (*domain.ImportJob, error) {
	var job domain.ImportJob
	err := r.db.GetContext(ctx, &job,
		"SELECT * FROM import_jobs WHERE id = $1 AND restaurant_id = $2", jobID, restaurantID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, wrapDBError("importJobRepo.GetByID", err)
	}
	return &job, nil
}

// ClaimPending atomically flips up to limit pending jobs to running and
// returns them. SKIP LOCKED makes concurrent pollers claim disjoint sets,
// so each job leaves pending exactly once.
func (r *importJobRepo) ClaimPending(ctx context.Context, limit int) ([]domain.ImportJob, error) {
	var jobs []domain.ImportJob
	err := r.db.SelectContext(ctx, &jobs,
		`UPDATE import_jobs SET status = $1, started_at = $2
		 WHERE id IN (
			SELECT id FROM import_jobs WHERE status = $3
			ORDER BY created_at LIMIT $4
			FOR UPDATE SKIP LOCKED
		 )
		 RETURNING *`,
		domain.JobStatusRunning, time.Now().UTC(), domain.JobStatusPending, limit)
	if err != nil {
		return nil, wrapDBError("importJobRepo.ClaimPending", err)
	}
	return jobs, nil
}

// MarkCompleted finalizes a running job. The status guard keeps terminal
// states immutable.
func (r *importJobRepo) MarkCompleted(ctx context.Context, job *domain.ImportJob) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE import_jobs SET
			status = $1, created_item_ids = $2, failed_candidates = $3,
			processing_notes = $4, finished_at = $5
		 WHERE id = $6 AND status = $7`,
		domain.JobStatusCompleted, job.CreatedItemIDs, job.FailedCandidates,
		job.ProcessingNotes, time.Now().UTC(), job.ID, domain.JobStatusRunning)
	if err != nil {
		return wrapDBError("importJobRepo.MarkCompleted", err)
	}
	return ensureTransitioned(res, job.ID)
}

func (r *importJobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, reason string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE import_jobs SET status = $1, error = $2, finished_at = $3
		 WHERE id = $4 AND status = $5`,
		domain.JobStatusFailed, reason, time.Now().UTC(), jobID, domain.JobStatusRunning)
	if err != nil {
		return wrapDBError("importJobRepo.MarkFailed", err)
	}
	return ensureTransitioned(res, jobID)
}

func ensureTransitioned(res sql.Result, jobID uuid.UUID) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("job %s is not running or does not exist", jobID)
	}
	return nil
}
