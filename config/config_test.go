package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1, cfg.RandomMinLen)
	assert.Equal(t, 5, cfg.RandomMaxLen)
	assert.True(t, cfg.UseDictionary)
	assert.True(t, cfg.UseAlgorithm)
	assert.Equal(t, "OPENAI_API_KEY", cfg.AI.APIKeyEnv)
}

func TestSanitized(t *testing.T) {
	cfg := Config{
		RandomMinLen:    0,
		RandomMaxLen:    -3,
		RandomMinTokens: 0,
		LineLimit:       0,
		MinLineTail:     -1,
	}
	got := cfg.Sanitized()

	assert.Equal(t, 1, got.RandomMinLen)
	assert.Equal(t, 1, got.RandomMaxLen)
	assert.Equal(t, 1, got.RandomMinTokens)
	assert.Equal(t, 1, got.LineLimit)
	assert.Equal(t, 0, got.MinLineTail)
	assert.Equal(t, 30, got.AI.TimeoutSeconds)
}

func TestSanitized_KeepsValid(t *testing.T) {
	cfg := Default()
	assert.Equal(t, cfg, cfg.Sanitized())
}
