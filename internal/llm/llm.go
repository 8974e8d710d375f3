package llm

import (
	"fmt"

	"codeberg.org/snippetlab/server/internal/config"
)

// creates the configured text generator
func NewGenerator(cfg *config.Config) (TextGenerator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch Provider(cfg.GeneratorProvider) {
	case ProviderAnthropic:
		if cfg.AnthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}

		return NewAnthropicGenerator(AnthropicConfig{
			APIKey:      cfg.AnthropicKey,
			Model:       cfg.GeneratorModel,
			MaxTokens:   cfg.GeneratorMaxTokens,
			Temperature: cfg.GeneratorTemperature,
		}), nil
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}

		return NewOpenAIGenerator(OpenAIConfig{
			APIKey:      cfg.OpenAIKey,
			Model:       cfg.GeneratorModel,
			MaxTokens:   cfg.GeneratorMaxTokens,
			Temperature: cfg.GeneratorTemperature,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", cfg.GeneratorProvider)
	}
}
