package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"

	defaultAnthropicModel = "claude-sonnet-4-20250514"
	defaultOpenAIModel    = "gpt-4o"
	defaultMaxTokens      = 4096

	// low temperature favors stable JSON formatting over creative variance
	defaultTemperature = float32(0.2)

	// per-IP limit for the iterate endpoint, ulule formatted-rate syntax
	defaultRateLimit = "30-M"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	provider := os.Getenv("GENERATOR_PROVIDER")
	if provider == "" {
		provider = ProviderAnthropic
	}

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	openaiKey := os.Getenv("OPENAI_API_KEY")

	// credential absence is a configuration error, surfaced verbatim and
	// checked before anything else can reach the network
	switch provider {
	case ProviderAnthropic:
		if anthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
	case ProviderOpenAI:
		if openaiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", provider)
	}

	model := os.Getenv("GENERATOR_MODEL")
	if model == "" {
		if provider == ProviderOpenAI {
			model = defaultOpenAIModel
		} else {
			model = defaultAnthropicModel
		}
	}

	maxTokens := defaultMaxTokens
	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			maxTokens = val
		}
	}

	temperature := defaultTemperature
	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			temperature = float32(val)
		}
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	rateLimit := os.Getenv("RATE_LIMIT")
	if rateLimit == "" {
		rateLimit = defaultRateLimit
	}

	return &Config{
		AnthropicKey:         anthropicKey,
		OpenAIKey:            openaiKey,
		GeneratorProvider:    provider,
		GeneratorModel:       model,
		GeneratorMaxTokens:   maxTokens,
		GeneratorTemperature: temperature,
		Environment:          environment,
		Port:                 port,
		RateLimit:            rateLimit,
	}, nil
}
