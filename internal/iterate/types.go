package iterate

import (
	"codeberg.org/snippetlab/server/internal/llm"
)

// orchestrates prompt composition, generation, and response normalization
type Service struct {
	generator llm.TextGenerator
}

// contains all inputs for a code iteration
type IterationRequest struct {
	Code   string
	Prompt string
}

// the two-field structured outcome returned to the caller
// both fields are always populated, even when recovery degrades gracefully
type IterationResult struct {
	ModifiedCode string `json:"modifiedCode"`
	Explanation  string `json:"explanation"`
}

// contains the normalized result and generation metadata
type IterationResponse struct {
	Result       IterationResult
	Model        string
	InputTokens  int
	OutputTokens int
}
