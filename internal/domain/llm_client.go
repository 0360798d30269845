package domain

import "context"

// Message is one turn of a chat prompt.
type Message struct {
	Role    string
	Content string
}

// LLMResponse carries the LLM output and whether the generation finished.
type LLMResponse struct {
	Text string
	Done bool
}

// LLMClient defines the capability to send a system+user prompt pair to an
// LLM. ChatStructured requests schema-constrained JSON output; conformance is
// not guaranteed and callers must parse defensively.
type LLMClient interface {
	Chat(ctx context.Context, messages []Message) (*LLMResponse, error)
	ChatStructured(ctx context.Context, messages []Message) (*LLMResponse, error)
	Version() string
}
