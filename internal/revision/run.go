// Package revision drives the automated rewriting pipeline: it loads a
// document's section snapshot, sends unlocked sections to the generation
// gateway one at a time, validates every candidate, and produces a mergeable
// proposal. Locked sections pass through byte-identical, unconditionally.
package revision

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-reviser/internal/llm"
	"github.com/jonathan/resume-reviser/internal/schemas"
	"github.com/jonathan/resume-reviser/internal/sectioning"
	"github.com/jonathan/resume-reviser/internal/types"
	"github.com/jonathan/resume-reviser/internal/validation"
)

// Default pacing for calls to the generation backend. The throttle is a
// backpressure courtesy toward the provider's rate limits, not a
// correctness requirement.
const (
	DefaultThrottle       = 2 * time.Second
	DefaultGatewayTimeout = 30 * time.Second
)

// Store is the persistence collaborator for section snapshots, jobs, and
// proposals. A section snapshot is written once per revision and read-only
// afterwards; jobs move through forward-only states.
type Store interface {
	GetSections(ctx context.Context, documentID uuid.UUID) ([]types.Section, error)
	CreateSectionSet(ctx context.Context, documentID uuid.UUID, sections []types.Section) error
	UpdateJobState(ctx context.Context, jobID uuid.UUID, from, to types.JobState, errMsg string) error
	SaveProposal(ctx context.Context, jobID uuid.UUID, proposals []types.SectionProposal, assembledText string) error
}

// DocumentSource supplies the LaTeX content of the revision under review.
// The orchestrator never mutates stored content through this interface.
type DocumentSource interface {
	GetContent(ctx context.Context, documentID uuid.UUID) (string, error)
}

// JobRequest describes one revision job submission.
type JobRequest struct {
	DocumentID        uuid.UUID         `validate:"required"`
	Mode              types.RewriteMode `validate:"required,oneof=minimal balanced aggressive"`
	TargetDescription string            `validate:"omitempty,max=40000"`
	Instructions      string            `validate:"omitempty,max=10000"`
}

var requestValidator = validator.New()

// ValidateRequest checks a job request's field constraints.
func ValidateRequest(req JobRequest) error {
	if err := requestValidator.Struct(req); err != nil {
		return &RequestError{Message: "field validation failed", Cause: err}
	}
	return nil
}

// Result holds the output of a completed job before persistence.
type Result struct {
	Proposals     []types.SectionProposal
	AssembledText string
}

// ProgressEvent reports one section's outcome during job execution.
type ProgressEvent struct {
	Kind    types.SectionKind
	Change  types.ChangeType
	Message string
}

// ProgressCallback is invoked after each section is processed.
type ProgressCallback func(event ProgressEvent)

// Orchestrator executes revision jobs against injected collaborators. The
// gateway client is constructed once at process start and passed in by
// reference; the orchestrator holds no ambient global state.
type Orchestrator struct {
	store      Store
	source     DocumentSource
	gateway    llm.Client
	throttle   time.Duration
	timeout    time.Duration
	onProgress ProgressCallback
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithThrottle overrides the delay between successive generation calls.
func WithThrottle(d time.Duration) Option {
	return func(o *Orchestrator) { o.throttle = d }
}

// WithGatewayTimeout overrides the per-call gateway timeout.
func WithGatewayTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.timeout = d }
}

// WithProgress registers a per-section progress callback.
func WithProgress(cb ProgressCallback) Option {
	return func(o *Orchestrator) { o.onProgress = cb }
}

// NewOrchestrator wires an orchestrator to its collaborators.
func NewOrchestrator(store Store, source DocumentSource, gateway llm.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:    store,
		source:   source,
		gateway:  gateway,
		throttle: DefaultThrottle,
		timeout:  DefaultGatewayTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RunJob executes one revision job to a terminal state. Any failure between
// the RUNNING transition and persistence is recorded on the job as FAILED;
// no partial proposal is ever left visible as complete. The returned error
// mirrors what was recorded.
func (o *Orchestrator) RunJob(ctx context.Context, job *types.RevisionJob, req JobRequest) (*Result, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	if err := o.transition(ctx, job, types.JobQueued, types.JobRunning, ""); err != nil {
		return nil, err
	}

	result, err := o.execute(ctx, req)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "revision job failed"
		}
		if failErr := o.transition(ctx, job, types.JobRunning, types.JobFailed, msg); failErr != nil {
			log.Printf("revision: failed to record job failure for %s: %v", job.ID, failErr)
		}
		return nil, err
	}

	if err := schemas.ValidateProposalArtifact(result.Proposals, result.AssembledText); err != nil {
		if failErr := o.transition(ctx, job, types.JobRunning, types.JobFailed, err.Error()); failErr != nil {
			log.Printf("revision: failed to record job failure for %s: %v", job.ID, failErr)
		}
		return nil, err
	}

	if err := o.store.SaveProposal(ctx, job.ID, result.Proposals, result.AssembledText); err != nil {
		storeErr := &StoreError{Op: "save proposal", Cause: err}
		if failErr := o.transition(ctx, job, types.JobRunning, types.JobFailed, storeErr.Error()); failErr != nil {
			log.Printf("revision: failed to record job failure for %s: %v", job.ID, failErr)
		}
		return nil, storeErr
	}

	if err := o.transition(ctx, job, types.JobRunning, types.JobCompleted, ""); err != nil {
		return nil, err
	}
	return result, nil
}

// transition applies a forward-only state change to both the store and the
// in-memory job.
func (o *Orchestrator) transition(ctx context.Context, job *types.RevisionJob, from, to types.JobState, errMsg string) error {
	if !from.CanTransition(to) {
		return fmt.Errorf("illegal job transition %s -> %s", from, to)
	}
	if err := o.store.UpdateJobState(ctx, job.ID, from, to, errMsg); err != nil {
		return &StoreError{Op: fmt.Sprintf("transition to %s", to), Cause: err}
	}
	job.State = to
	job.Error = errMsg
	return nil
}

// execute runs the per-section pipeline and assembles the full candidate
// document. It does not touch job state; RunJob owns the state machine.
func (o *Orchestrator) execute(ctx context.Context, req JobRequest) (*Result, error) {
	doc, err := o.loadDocument(ctx, req.DocumentID)
	if err != nil {
		return nil, err
	}
	sections := doc.Sections
	if err := types.ValidateSectionSet(sections); err != nil {
		return nil, err
	}

	sort.Slice(sections, func(i, j int) bool {
		return sections[i].OrderIndex < sections[j].OrderIndex
	})

	locked := make(map[types.SectionKind]bool)
	unlockedCount := 0
	for _, s := range sections {
		if s.IsLocked {
			locked[s.Kind] = true
		} else {
			unlockedCount++
		}
	}
	if unlockedCount == 0 {
		return nil, &ErrNoUnlockedSections{DocumentID: req.DocumentID.String()}
	}

	proposals := make([]types.SectionProposal, 0, len(sections))
	generationCalls := 0

	for _, section := range sections {
		if section.IsLocked {
			proposals = append(proposals, unchangedProposal(section))
			o.emit(section.Kind, types.ChangeUnchanged, "locked")
			continue
		}

		// Throttle between successive generation calls, never before
		// the first one.
		if generationCalls > 0 && o.throttle > 0 {
			select {
			case <-time.After(o.throttle):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		generationCalls++

		proposal := o.reviseSection(ctx, section, req)
		proposals = append(proposals, proposal)
		o.emit(proposal.Kind, proposal.ChangeType, "")
	}

	doc.Sections = sections
	assembled := sectioning.AssembleWithModifications(doc, replacementsFrom(proposals), locked)

	return &Result{Proposals: proposals, AssembledText: assembled}, nil
}

// reviseSection runs generate+validate for one unlocked section. Every
// failure path degrades to an unchanged proposal; a single bad section never
// aborts the job and never leaves a section blank.
func (o *Orchestrator) reviseSection(ctx context.Context, section types.Section, req JobRequest) types.SectionProposal {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	raw, err := o.gateway.GenerateContent(callCtx,
		buildSystemPrompt(section.Kind, req.Mode),
		buildUserPrompt(section.Content, req.TargetDescription, req.Instructions),
	)
	if err != nil {
		log.Printf("revision: generation failed for section %s, keeping original: %v", section.Kind, err)
		return unchangedProposal(section)
	}

	candidate := llm.StripCodeFence(raw)
	if result := validation.ValidateSection(section.Content, candidate); !result.OK {
		log.Printf("revision: candidate rejected for section %s: %s", section.Kind, result.Reason)
		return unchangedProposal(section)
	}

	if candidate == section.Content {
		return unchangedProposal(section)
	}

	return types.SectionProposal{
		Kind:       section.Kind,
		Before:     section.Content,
		After:      candidate,
		ChangeType: types.ChangeModified,
	}
}

// loadDocument reads the document content, extracts its structure, and
// resolves the section snapshot: stored sections (which carry lock flags)
// win over freshly extracted ones; if no snapshot exists yet, the extracted
// sections are persisted as the snapshot for this revision.
func (o *Orchestrator) loadDocument(ctx context.Context, documentID uuid.UUID) (*types.ParsedDocument, error) {
	content, err := o.source.GetContent(ctx, documentID)
	if err != nil {
		return nil, &StoreError{Op: "get document content", Cause: err}
	}
	doc := sectioning.Extract(content)

	stored, err := o.store.GetSections(ctx, documentID)
	if err != nil {
		return nil, &StoreError{Op: "get sections", Cause: err}
	}
	if len(stored) > 0 {
		doc.Sections = stored
		return doc, nil
	}

	if err := o.store.CreateSectionSet(ctx, documentID, doc.Sections); err != nil {
		return nil, &StoreError{Op: "create section set", Cause: err}
	}

	// Read the snapshot back: the store owns the canonical copy and may
	// have applied lock flags on creation.
	stored, err = o.store.GetSections(ctx, documentID)
	if err != nil {
		return nil, &StoreError{Op: "get sections", Cause: err}
	}
	if len(stored) > 0 {
		doc.Sections = stored
	}
	return doc, nil
}

func (o *Orchestrator) emit(kind types.SectionKind, change types.ChangeType, message string) {
	if o.onProgress != nil {
		o.onProgress(ProgressEvent{Kind: kind, Change: change, Message: message})
	}
}

// unchangedProposal builds the pass-through proposal for a section.
func unchangedProposal(section types.Section) types.SectionProposal {
	return types.SectionProposal{
		Kind:       section.Kind,
		Before:     section.Content,
		After:      section.Content,
		ChangeType: types.ChangeUnchanged,
	}
}

// replacementsFrom builds the assembly replacement map from the modified
// proposals. The map is constructed fresh for each assembly and never
// mutated afterwards.
func replacementsFrom(proposals []types.SectionProposal) map[types.SectionKind]string {
	replacements := make(map[types.SectionKind]string)
	for _, p := range proposals {
		if p.ChangeType == types.ChangeModified {
			replacements[p.Kind] = p.After
		}
	}
	return replacements
}
