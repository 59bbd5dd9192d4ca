package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		want  SectionKind
		valid bool
	}{
		{"Experience", "EXPERIENCE", KindExperience, true},
		{"Education", "EDUCATION", KindEducation, true},
		{"Other", "OTHER", KindOther, true},
		{"Unknown tag", "HOBBIES", "", false},
		{"Lowercase not accepted", "skills", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := ParseKind(tt.tag)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, kind)
			}
		})
	}
}

func TestValidateSectionSet(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
		wantErr  string
	}{
		{
			name:     "empty set is valid",
			sections: nil,
		},
		{
			name: "valid contiguous set",
			sections: []Section{
				{Kind: KindOther, OrderIndex: 0},
				{Kind: KindExperience, OrderIndex: 1},
				{Kind: KindEducation, OrderIndex: 2},
			},
		},
		{
			name: "duplicate kind rejected",
			sections: []Section{
				{Kind: KindExperience, OrderIndex: 0},
				{Kind: KindExperience, OrderIndex: 1},
			},
			wantErr: "duplicate section kind",
		},
		{
			name: "gap in indexes rejected",
			sections: []Section{
				{Kind: KindExperience, OrderIndex: 0},
				{Kind: KindEducation, OrderIndex: 2},
			},
			wantErr: "out of range",
		},
		{
			name: "repeated index rejected",
			sections: []Section{
				{Kind: KindExperience, OrderIndex: 0},
				{Kind: KindEducation, OrderIndex: 0},
			},
			wantErr: "appears twice",
		},
		{
			name: "negative index rejected",
			sections: []Section{
				{Kind: KindExperience, OrderIndex: -1},
			},
			wantErr: "out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSectionSet(tt.sections)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
