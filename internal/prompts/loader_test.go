package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("revision.json", "revise-section-system")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Never invent")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("revision.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestModePromptsExist(t *testing.T) {
	ClearCache()

	for _, key := range []string{"revise-mode-minimal", "revise-mode-balanced", "revise-mode-aggressive"} {
		prompt, err := Get("revision.json", key)
		require.NoError(t, err, key)
		assert.Contains(t, prompt, "Latitude")
	}
}

func TestFormat(t *testing.T) {
	out := Format("kind={{.Kind}} content={{.Content}}", map[string]string{
		"Kind":    "EXPERIENCE",
		"Content": "\\section{Experience}",
	})
	assert.Equal(t, "kind=EXPERIENCE content=\\section{Experience}", out)
}
