package db

import (
	"time"

	"github.com/google/uuid"
)

// Document represents a stored resume document record
type Document struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Proposal is one persisted revision proposal with its assembled output
type Proposal struct {
	JobID         uuid.UUID `json:"job_id"`
	AssembledText string    `json:"assembled_text"`
	CreatedAt     time.Time `json:"created_at"`
}
