package llm

import (
	"context"
)

// Provider defines the contract for a single text-generation backend.
// This interface allows swapping providers (Groq, Gemini, etc.) behind the
// Gateway without the conversation engine knowing which one answered.
type Provider interface {
	// Name identifies the backend in logs.
	Name() string

	// Complete sends the full message history and returns the assistant
	// reply text. Any transport, timeout, or malformed-response problem is
	// returned as an error; the provider never fabricates a reply.
	Complete(ctx context.Context, messages []Message, temperature float32, maxTokens int) (string, error)
}
