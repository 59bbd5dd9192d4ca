package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-reviser/internal/types"
)

// localStore keeps the section snapshot and job bookkeeping in memory for
// file-based runs. Lock flags from the --lock flag are applied when the
// snapshot is first created.
type localStore struct {
	mu        sync.Mutex
	lockKinds map[types.SectionKind]bool
	sections  []types.Section
	created   bool
}

func newLocalStore(lockKinds map[types.SectionKind]bool) *localStore {
	return &localStore{lockKinds: lockKinds}
}

func (s *localStore) GetSections(_ context.Context, _ uuid.UUID) ([]types.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sections, nil
}

func (s *localStore) CreateSectionSet(_ context.Context, _ uuid.UUID, sections []types.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.created {
		return fmt.Errorf("section set already exists")
	}

	s.sections = make([]types.Section, len(sections))
	copy(s.sections, sections)
	for i := range s.sections {
		if s.lockKinds[s.sections[i].Kind] {
			s.sections[i].IsLocked = true
		}
	}
	s.created = true
	return nil
}

func (s *localStore) UpdateJobState(_ context.Context, _ uuid.UUID, from, to types.JobState, _ string) error {
	if !from.CanTransition(to) {
		return fmt.Errorf("illegal job transition %s -> %s", from, to)
	}
	return nil
}

func (s *localStore) SaveProposal(_ context.Context, _ uuid.UUID, _ []types.SectionProposal, _ string) error {
	// The revise command writes proposal output to files itself.
	return nil
}

// localSource reads document content from a file on demand.
type localSource struct {
	path string
}

func (s *localSource) GetContent(_ context.Context, _ uuid.UUID) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}
