package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-reviser/internal/types"
)

func TestValidateJSONString_Valid(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	err := ValidateJSONString(schema, `{"name": "ok"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingField(t *testing.T) {
	schema := `{"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}}`

	err := ValidateJSONString(schema, `{}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateProposalArtifact(t *testing.T) {
	proposals := []types.SectionProposal{
		{Kind: types.KindExperience, Before: "old", After: "new", ChangeType: types.ChangeModified},
		{Kind: types.KindEducation, Before: "same", After: "same", ChangeType: types.ChangeUnchanged},
	}

	assert.NoError(t, ValidateProposalArtifact(proposals, "assembled"))
}

func TestValidateProposalArtifact_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		proposals []types.SectionProposal
		assembled string
	}{
		{
			name:      "no proposals",
			proposals: nil,
			assembled: "assembled",
		},
		{
			name: "empty assembled text",
			proposals: []types.SectionProposal{
				{Kind: types.KindOther, Before: "a", After: "b", ChangeType: types.ChangeModified},
			},
			assembled: "",
		},
		{
			name: "unknown kind",
			proposals: []types.SectionProposal{
				{Kind: "HOBBIES", Before: "a", After: "b", ChangeType: types.ChangeModified},
			},
			assembled: "assembled",
		},
		{
			name: "unknown change type",
			proposals: []types.SectionProposal{
				{Kind: types.KindOther, Before: "a", After: "b", ChangeType: "rewritten"},
			},
			assembled: "assembled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProposalArtifact(tt.proposals, tt.assembled)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}
