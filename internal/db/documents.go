package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateDocument stores a new document and returns its ID
func (db *DB) CreateDocument(ctx context.Context, name, content string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO documents (name, content)
		 VALUES ($1, $2)
		 RETURNING id`,
		name, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create document: %w", err)
	}
	return id, nil
}

// GetContent retrieves a document's LaTeX content by ID
func (db *DB) GetContent(ctx context.Context, documentID uuid.UUID) (string, error) {
	var content string
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM documents WHERE id = $1`,
		documentID,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", fmt.Errorf("document not found: %s", documentID)
		}
		return "", fmt.Errorf("failed to get document content: %w", err)
	}
	return content, nil
}

// GetDocument retrieves a document record by ID
func (db *DB) GetDocument(ctx context.Context, documentID uuid.UUID) (*Document, error) {
	var doc Document
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM documents WHERE id = $1`,
		documentID,
	).Scan(&doc.ID, &doc.Name, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

// UpdateDocumentContent replaces a document's content
func (db *DB) UpdateDocumentContent(ctx context.Context, documentID uuid.UUID, content string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE documents SET content = $1, updated_at = NOW() WHERE id = $2`,
		content, documentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", documentID)
	}
	return nil
}

// ListDocuments retrieves recent documents
func (db *DB) ListDocuments(ctx context.Context, limit int) ([]Document, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, created_at, updated_at
		 FROM documents ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
