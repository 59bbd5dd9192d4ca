package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.NotEmpty(t, cfg.Model)
	assert.Less(t, cfg.Temperature, float32(0.5), "section rewrites should stay close to the source")
}

func TestWithModel(t *testing.T) {
	cfg := DefaultConfig()
	custom := cfg.WithModel("gemini-2.5-pro")

	assert.Equal(t, "gemini-2.5-pro", custom.Model)
	assert.NotEqual(t, custom.Model, cfg.Model, "original config must not be mutated")
	assert.Equal(t, cfg.Provider, custom.Provider)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	client, err := NewClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewClientUnknownProvider(t *testing.T) {
	cfg := &Config{Provider: "mystery", Model: "m"}
	client, err := NewClient(context.Background(), cfg, "key")
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "unsupported provider")
}
