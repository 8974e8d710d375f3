package iterate

import (
	"context"
	"fmt"

	"codeberg.org/snippetlab/server/internal/llm"
)

// creates a new iteration service backed by the given generator
func New(generator llm.TextGenerator) *Service {
	return &Service{
		generator: generator,
	}
}

// Iterate applies a natural-language change request to a code snippet.
// Validation failures and generation errors are returned as-is; malformed
// model output is never an error and is resolved by the normalizer, so a
// call either yields a fully populated result or fails outright.
func (s *Service) Iterate(ctx context.Context, req IterationRequest) (*IterationResponse, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("code is required")
	}

	if req.Prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	// temperature stays at the generator's configured low default, keeping
	// output formatting stable across calls
	response, err := s.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: getSystemPrompt(),
		Messages: []llm.Message{
			{Role: "user", Content: buildUserMessage(req.Code, req.Prompt)},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to generate iteration: %w", err)
	}

	result := ParseIterationResult(response.Text)

	return &IterationResponse{
		Result:       result,
		Model:        s.generator.Model(),
		InputTokens:  response.Usage.InputTokens,
		OutputTokens: response.Usage.OutputTokens,
	}, nil
}
