package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-reviser/internal/types"
)

// CreateSectionSet writes the section snapshot for a document in one
// transaction. The snapshot is written at most once: a second call for the
// same document fails rather than overwriting, since revisions operate on a
// frozen view of the document's structure.
func (db *DB) CreateSectionSet(ctx context.Context, documentID uuid.UUID, sections []types.Section) error {
	if err := types.ValidateSectionSet(sections); err != nil {
		return err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var existing int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM sections WHERE document_id = $1`,
		documentID,
	).Scan(&existing)
	if err != nil {
		return fmt.Errorf("failed to check section set: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("section set already exists for document %s", documentID)
	}

	for _, section := range sections {
		_, err = tx.Exec(ctx,
			`INSERT INTO sections (document_id, kind, content, order_index, is_locked)
			 VALUES ($1, $2, $3, $4, $5)`,
			documentID, string(section.Kind), section.Content, section.OrderIndex, section.IsLocked,
		)
		if err != nil {
			return fmt.Errorf("failed to insert section %s: %w", section.Kind, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit section set: %w", err)
	}
	return nil
}

// GetSections retrieves a document's section snapshot in order
func (db *DB) GetSections(ctx context.Context, documentID uuid.UUID) ([]types.Section, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT kind, content, order_index, is_locked
		 FROM sections WHERE document_id = $1 ORDER BY order_index ASC`,
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}
	defer rows.Close()

	var sections []types.Section
	for rows.Next() {
		var section types.Section
		var kind string
		if err := rows.Scan(&kind, &section.Content, &section.OrderIndex, &section.IsLocked); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		section.Kind = types.SectionKind(kind)
		sections = append(sections, section)
	}
	return sections, nil
}

// SetSectionLock updates the lock flag on one section of a document's
// snapshot. Lock state is the only mutable field of a snapshot, and it may
// only change while no job for the document is in flight.
func (db *DB) SetSectionLock(ctx context.Context, documentID uuid.UUID, kind types.SectionKind, locked bool) error {
	var active int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM revision_jobs WHERE document_id = $1 AND state = $2`,
		documentID, string(types.JobRunning),
	).Scan(&active)
	if err != nil {
		return fmt.Errorf("failed to check active jobs: %w", err)
	}
	if active > 0 {
		return fmt.Errorf("document %s has a running revision job; lock state is frozen until it finishes", documentID)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE sections SET is_locked = $1 WHERE document_id = $2 AND kind = $3`,
		locked, documentID, string(kind),
	)
	if err != nil {
		return fmt.Errorf("failed to set section lock: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("section %s not found for document %s", kind, documentID)
	}
	return nil
}
