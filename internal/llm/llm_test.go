package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snippetlab/server/internal/config"
)

func TestNewGenerator_NilConfig(t *testing.T) {
	_, err := NewGenerator(nil)

	assert.Error(t, err)
}

func TestNewGenerator_Anthropic(t *testing.T) {
	gen, err := NewGenerator(&config.Config{
		GeneratorProvider: config.ProviderAnthropic,
		AnthropicKey:      "test-key",
		GeneratorModel:    "claude-sonnet-4-20250514",
	})

	require.NoError(t, err)
	require.IsType(t, &AnthropicGenerator{}, gen)
	assert.Equal(t, "claude-sonnet-4-20250514", gen.Model())
}

func TestNewGenerator_AnthropicMissingKey(t *testing.T) {
	_, err := NewGenerator(&config.Config{
		GeneratorProvider: config.ProviderAnthropic,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestNewGenerator_OpenAI(t *testing.T) {
	gen, err := NewGenerator(&config.Config{
		GeneratorProvider: config.ProviderOpenAI,
		OpenAIKey:         "test-key",
		GeneratorModel:    "gpt-4o",
	})

	require.NoError(t, err)
	require.IsType(t, &OpenAIGenerator{}, gen)
	assert.Equal(t, "gpt-4o", gen.Model())
}

func TestNewGenerator_UnsupportedProvider(t *testing.T) {
	_, err := NewGenerator(&config.Config{
		GeneratorProvider: "bard",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported generator provider")
}
