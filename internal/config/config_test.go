package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"target_url": "https://example.com/job",
		"provider": "gemini",
		"model": "gemini-2.5-flash",
		"mode": "balanced",
		"throttle_seconds": 5,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.TargetURL)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, "balanced", cfg.Mode)
	assert.Equal(t, 5, cfg.ThrottleSeconds)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tmpDoc := filepath.Join(t.TempDir(), "resume.tex")
	require.NoError(t, os.WriteFile(tmpDoc, []byte("x"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid config",
			cfg:  Config{Document: tmpDoc, Mode: "minimal", Temperature: 0.2},
		},
		{
			name:    "target and target_url are exclusive",
			cfg:     Config{Target: "a.txt", TargetURL: "https://example.com"},
			wantErr: "mutually exclusive",
		},
		{
			name:    "unknown mode",
			cfg:     Config{Mode: "turbo"},
			wantErr: "unknown mode",
		},
		{
			name:    "temperature out of range",
			cfg:     Config{Temperature: 3.5},
			wantErr: "temperature",
		},
		{
			name:    "negative throttle",
			cfg:     Config{ThrottleSeconds: -1},
			wantErr: "throttle_seconds",
		},
		{
			name:    "missing document file",
			cfg:     Config{Document: "/nonexistent/resume.tex"},
			wantErr: "document file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Mode: "aggressive", Verbose: true}
	defaults := Config{
		Provider:        "gemini",
		Model:           "gemini-2.5-flash",
		Mode:            "balanced",
		Temperature:     0.2,
		ThrottleSeconds: 2,
		TimeoutSeconds:  30,
	}

	merged := cfg.MergeWithDefaults(defaults)

	// Explicit values win
	assert.Equal(t, "aggressive", merged.Mode)
	assert.True(t, merged.Verbose)

	// Unset values fall back to defaults
	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
	assert.Equal(t, 0.2, merged.Temperature)
	assert.Equal(t, 2, merged.ThrottleSeconds)
	assert.Equal(t, 30, merged.TimeoutSeconds)

	// The input is not mutated
	assert.Empty(t, cfg.Provider)
}
