package iterate

import (
	"strings"
)

// returns the fixed system instruction demanding strict two-field JSON output
func getSystemPrompt() string {
	const prompt = `You are a code modification assistant.

Your task: Apply the requested change to the user's code and explain what you changed.

Return a JSON object with exactly this structure:
{
  "modifiedCode": "the complete modified code",
  "explanation": "a short explanation of what was changed and why"
}

Example:

Code:
function add(a, b) { return a + b }

Requested change: also log the result

{
  "modifiedCode": "function add(a, b) { const r = a + b; console.log(r); return r }",
  "explanation": "Stored the sum in a variable, logged it, and returned it."
}

Rules:
- Return the COMPLETE modified code, not a fragment or diff
- Preserve everything the change request does not touch
- Return ONLY valid JSON, no markdown fences, no surrounding prose`

	return prompt
}

// assembles the user message embedding the code and the requested change verbatim
func buildUserMessage(code, prompt string) string {
	var builder strings.Builder

	builder.WriteString("Code:\n")
	builder.WriteString(code)
	builder.WriteString("\n\nRequested change: ")
	builder.WriteString(prompt)

	return builder.String()
}
