package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-reviser/internal/types"
)

// SaveProposal stores a job's per-section proposals and the assembled
// candidate document in one transaction, so a proposal is either fully
// visible or not at all.
func (db *DB) SaveProposal(ctx context.Context, jobID uuid.UUID, proposals []types.SectionProposal, assembledText string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO proposals (job_id, assembled_text)
		 VALUES ($1, $2)
		 ON CONFLICT (job_id) DO UPDATE SET assembled_text = $2, created_at = NOW()`,
		jobID, assembledText,
	)
	if err != nil {
		return fmt.Errorf("failed to save proposal: %w", err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM proposal_sections WHERE job_id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to clear proposal sections: %w", err)
	}

	for i, p := range proposals {
		_, err = tx.Exec(ctx,
			`INSERT INTO proposal_sections (job_id, kind, before_content, after_content, change_type, order_index)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			jobID, string(p.Kind), p.Before, p.After, string(p.ChangeType), i,
		)
		if err != nil {
			return fmt.Errorf("failed to save proposal section %s: %w", p.Kind, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit proposal: %w", err)
	}
	return nil
}

// GetProposal retrieves a job's proposal sections and assembled text
func (db *DB) GetProposal(ctx context.Context, jobID uuid.UUID) ([]types.SectionProposal, string, error) {
	var assembledText string
	err := db.pool.QueryRow(ctx,
		`SELECT assembled_text FROM proposals WHERE job_id = $1`,
		jobID,
	).Scan(&assembledText)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("failed to get proposal: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT kind, before_content, after_content, change_type
		 FROM proposal_sections WHERE job_id = $1 ORDER BY order_index ASC`,
		jobID,
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get proposal sections: %w", err)
	}
	defer rows.Close()

	var proposals []types.SectionProposal
	for rows.Next() {
		var p types.SectionProposal
		var kind, changeType string
		if err := rows.Scan(&kind, &p.Before, &p.After, &changeType); err != nil {
			return nil, "", fmt.Errorf("failed to scan proposal section: %w", err)
		}
		p.Kind = types.SectionKind(kind)
		p.ChangeType = types.ChangeType(changeType)
		proposals = append(proposals, p)
	}
	return proposals, assembledText, nil
}
