package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStateCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from JobState
		to   JobState
		want bool
	}{
		{"queued to running", JobQueued, JobRunning, true},
		{"running to completed", JobRunning, JobCompleted, true},
		{"running to failed", JobRunning, JobFailed, true},
		{"queued straight to completed", JobQueued, JobCompleted, false},
		{"completed is terminal", JobCompleted, JobRunning, false},
		{"failed is terminal", JobFailed, JobRunning, false},
		{"no re-entering running", JobRunning, JobRunning, false},
		{"no going back to queued", JobRunning, JobQueued, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestJobStateTerminal(t *testing.T) {
	assert.False(t, JobQueued.Terminal())
	assert.False(t, JobRunning.Terminal())
	assert.True(t, JobCompleted.Terminal())
	assert.True(t, JobFailed.Terminal())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    RewriteMode
		wantErr bool
	}{
		{"minimal", "minimal", ModeMinimal, false},
		{"balanced", "balanced", ModeBalanced, false},
		{"aggressive", "aggressive", ModeAggressive, false},
		{"unknown", "yolo", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseMode(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, mode)
		})
	}
}
