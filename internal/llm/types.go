package llm

import "context"

// represents different LLM providers
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// generates text from a system prompt and conversation messages
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// a single conversation turn sent to the model
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

// inputs for a text generation call
type TextGenerationRequest struct {
	SystemPrompt string
	Messages     []Message
	MaxTokens    int     // 0 falls back to the client's configured value
	Temperature  float32 // 0 falls back to the client's configured value
}

// token accounting reported by the provider
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// raw generated text plus usage metadata
type TextGenerationResponse struct {
	Text  string
	Usage Usage
}
