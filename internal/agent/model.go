package agent

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_language_model.go -package=mocks agentic-rag/internal/agent LanguageModel

import (
	"context"

	"agentic-rag/internal/llm"
)

// LanguageModel is the model capability the loop depends on, defined from
// the consumer's perspective. Satisfied by llm.Client.
type LanguageModel interface {
	// Complete sends a single prompt and returns the reply text.
	Complete(ctx context.Context, prompt string) (string, error)
	// CompleteStructured sends a prompt constrained to a JSON schema and
	// unmarshals the reply into out.
	CompleteStructured(ctx context.Context, prompt string, schema llm.JSONSchema, out any) error
}
