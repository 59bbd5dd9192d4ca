package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-reviser/internal/types"
)

//go:embed proposal.schema.json
var proposalSchema string

// proposalArtifact is the persisted shape of a completed job's output.
type proposalArtifact struct {
	Proposals     []types.SectionProposal `json:"proposals"`
	AssembledText string                  `json:"assembled_text"`
}

// ValidateProposalArtifact checks a job's output against the proposal schema
// before it is surfaced as complete.
func ValidateProposalArtifact(proposals []types.SectionProposal, assembledText string) error {
	artifact := proposalArtifact{
		Proposals:     proposals,
		AssembledText: assembledText,
	}

	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("failed to marshal proposal artifact: %w", err)
	}

	return ValidateJSONString(proposalSchema, string(data))
}
