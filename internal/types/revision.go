// Package types provides type definitions for structured data used throughout the resume-reviser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/google/uuid"
)

// JobState represents the lifecycle state of a revision job.
// Transitions are forward-only; a terminal job is immutable.
type JobState string

// JobState constants
const (
	JobQueued    JobState = "queued"
	JobRunning   JobState = "running"
	JobCompleted JobState = "completed"
	JobFailed    JobState = "failed"
)

// CanTransition reports whether moving from s to next is a legal forward
// transition. No state is ever revisited.
func (s JobState) CanTransition(next JobState) bool {
	switch s {
	case JobQueued:
		return next == JobRunning
	case JobRunning:
		return next == JobCompleted || next == JobFailed
	default:
		return false
	}
}

// Terminal reports whether the state admits no further transitions.
func (s JobState) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// RewriteMode controls how much latitude the generation step is given.
// It does not change validator behavior.
type RewriteMode string

// RewriteMode constants
const (
	ModeMinimal    RewriteMode = "minimal"
	ModeBalanced   RewriteMode = "balanced"
	ModeAggressive RewriteMode = "aggressive"
)

// ParseMode converts a raw mode string into a RewriteMode.
func ParseMode(raw string) (RewriteMode, error) {
	switch RewriteMode(raw) {
	case ModeMinimal, ModeBalanced, ModeAggressive:
		return RewriteMode(raw), nil
	default:
		return "", fmt.Errorf("unknown rewrite mode: %q", raw)
	}
}

// RevisionJob represents one request to revise a document's unlocked sections
type RevisionJob struct {
	ID               uuid.UUID   `json:"id"`
	TargetDocumentID uuid.UUID   `json:"target_document_id"`
	State            JobState    `json:"state"`
	Mode             RewriteMode `json:"mode"`
	Error            string      `json:"error,omitempty"`
}

// ChangeType classifies a proposal row as touched or untouched
type ChangeType string

// ChangeType constants
const (
	ChangeUnchanged ChangeType = "unchanged"
	ChangeModified  ChangeType = "modified"
)

// SectionProposal is one row of a job's generated result: the original
// section content and the candidate that replaces it if accepted.
type SectionProposal struct {
	Kind       SectionKind `json:"kind"`
	Before     string      `json:"before"`
	After      string      `json:"after"`
	ChangeType ChangeType  `json:"change_type"`
}
