package iterate

// Request represents the request body for a code iteration
type Request struct {
	Code   string `json:"code" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

// Response represents the iteration result returned to the client
type Response struct {
	ModifiedCode string `json:"modifiedCode"`
	Explanation  string `json:"explanation"`
	Model        string `json:"model"`
	InputTokens  int    `json:"inputTokens"`
	OutputTokens int    `json:"outputTokens"`
}
