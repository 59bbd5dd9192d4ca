package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-reviser/internal/types"
)

// CreateJob records a new revision job in the queued state and returns its ID
func (db *DB) CreateJob(ctx context.Context, documentID uuid.UUID, mode types.RewriteMode) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO revision_jobs (document_id, state, mode)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		documentID, string(types.JobQueued), string(mode),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a revision job by ID
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*types.RevisionJob, error) {
	var job types.RevisionJob
	var state, mode string
	err := db.pool.QueryRow(ctx,
		`SELECT id, document_id, state, mode, COALESCE(error, '')
		 FROM revision_jobs WHERE id = $1`,
		jobID,
	).Scan(&job.ID, &job.TargetDocumentID, &state, &mode, &job.Error)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	job.State = types.JobState(state)
	job.Mode = types.RewriteMode(mode)
	return &job, nil
}

// UpdateJobState advances a job from one state to the next. The WHERE guard
// on the current state makes the transition atomic: a row that already moved
// on is never rewound, so states only travel forward even under concurrent
// updates.
func (db *DB) UpdateJobState(ctx context.Context, jobID uuid.UUID, from, to types.JobState, errMsg string) error {
	if !from.CanTransition(to) {
		return fmt.Errorf("illegal job transition %s -> %s", from, to)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE revision_jobs
		 SET state = $1, error = NULLIF($2, ''), updated_at = NOW()
		 WHERE id = $3 AND state = $4`,
		string(to), errMsg, jobID, string(from),
	)
	if err != nil {
		return fmt.Errorf("failed to update job state: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job %s is not in state %s", jobID, from)
	}
	return nil
}

// ListJobs retrieves recent revision jobs for a document
func (db *DB) ListJobs(ctx context.Context, documentID uuid.UUID, limit int) ([]types.RevisionJob, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, document_id, state, mode, COALESCE(error, '')
		 FROM revision_jobs WHERE document_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		documentID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.RevisionJob
	for rows.Next() {
		var job types.RevisionJob
		var state, mode string
		if err := rows.Scan(&job.ID, &job.TargetDocumentID, &state, &mode, &job.Error); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		job.State = types.JobState(state)
		job.Mode = types.RewriteMode(mode)
		jobs = append(jobs, job)
	}
	return jobs, nil
}
